package parser

import (
	"fmt"
	"strings"

	"github.com/amerikrainian/sonar/internal/source"
)

// LexResult is the scanner's complete output: the token stream, always
// terminated by a single EOF token, and the line-offset index used to resolve
// byte offsets to locations.
type LexResult struct {
	Tokens    []Token
	LineIndex source.LineIndex
}

type Scanner struct {
	source  string
	tokens  []Token
	start   int
	current int
	lines   source.LineIndex
}

func NewScanner(src string) *Scanner {
	return &Scanner{
		source: src,
		lines:  source.NewLineIndex(),
	}
}

// Tokenize scans the whole source in one pass. The first lexical error aborts
// the scan; there is no recovery or multi-error collection.
func Tokenize(src string) (*LexResult, error) {
	return NewScanner(src).ScanTokens()
}

func (s *Scanner) ScanTokens() (*LexResult, error) {
	for !s.isAtEnd() {
		s.start = s.current
		if err := s.scanToken(); err != nil {
			return nil, err
		}
	}
	end := len(s.source)
	s.tokens = append(s.tokens, Token{Type: EOF, Span: source.Span{Start: end, End: end}})
	return &LexResult{Tokens: s.tokens, LineIndex: s.lines}, nil
}

func (s *Scanner) scanToken() error {
	c := s.advance()
	switch c {
	case ' ', '\r', '\t', '\n':
		return nil

	case '+':
		s.addToken(PLUS)
	case '*':
		s.addToken(STAR)
	case '(':
		s.addToken(LEFT_PAREN)
	case ')':
		s.addToken(RIGHT_PAREN)
	case ',':
		s.addToken(COMMA)
	case ':':
		s.addToken(COLON)
	case '{':
		s.addToken(LEFT_BRACE)
	case '}':
		s.addToken(RIGHT_BRACE)
	case ';':
		s.addToken(SEMICOLON)
	case '=':
		s.addToken(EQUAL)

	case '-':
		if s.matchNext('>') {
			s.addToken(ARROW)
		} else {
			s.addToken(MINUS)
		}
	case '&':
		if s.matchNext('&') {
			s.addToken(AND)
		} else {
			s.addToken(AMPERSAND)
		}
	case '|':
		if s.matchNext('|') {
			s.addToken(OR)
		} else {
			s.addToken(PIPE)
		}
	case '/':
		if s.matchNext('/') {
			s.scanLineComment()
		} else if s.matchNext('*') {
			return s.scanBlockComment()
		} else {
			s.addToken(SLASH)
		}

	case '"':
		return s.scanString()

	default:
		return s.scanDefault(c)
	}
	return nil
}

func (s *Scanner) scanDefault(c byte) error {
	if isDigit(c) || c == '.' {
		return s.scanNumber(c)
	}
	if c == 'r' && s.rawStringAhead() {
		return s.scanRawString()
	}
	if isAlpha(c) {
		s.scanIdentifier()
		return nil
	}
	return s.errorAt(fmt.Sprintf("Unexpected character '%c'", c), s.start, false)
}

// advance consumes one byte and keeps the line index current, so every
// multi-line construct (raw strings, block comments) is covered for free.
func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.lines.Mark(s.current)
	}
	return c
}

func (s *Scanner) matchNext(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) peek() byte {
	return s.peekAt(0)
}

func (s *Scanner) peekAt(k int) byte {
	if s.current+k >= len(s.source) {
		return 0
	}
	return s.source[s.current+k]
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) addToken(tokenType TokenType) {
	s.tokens = append(s.tokens, Token{
		Type:   tokenType,
		Lexeme: s.source[s.start:s.current],
		Span:   source.Span{Start: s.start, End: s.current},
	})
}

func (s *Scanner) errorAt(message string, offset int, incomplete bool) error {
	return &LexError{
		Msg:        message,
		Offset:     offset,
		Location:   s.lines.LocationFor(offset),
		Incomplete: incomplete,
	}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_'
}

func (s *Scanner) scanIdentifier() {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	s.addToken(lookupIdentifier(s.source[s.start:s.current]))
}

func lookupIdentifier(text string) TokenType {
	if t, ok := KEYWORDS[text]; ok {
		return t
	}
	return IDENTIFIER
}

// scanNumber accepts digits with at most one '.', then an optional exponent
// with an optional sign. The first character has already been consumed.
func (s *Scanner) scanNumber(first byte) error {
	seenDot := first == '.'
	for {
		next := s.peek()
		if isDigit(next) {
			s.advance()
			continue
		}
		if next == '.' && !seenDot {
			seenDot = true
			s.advance()
			continue
		}
		break
	}

	if s.current-s.start == 1 && first == '.' {
		return s.errorAt("Standalone '.' is not a valid number", s.start, false)
	}

	if s.peek() == 'e' || s.peek() == 'E' {
		s.advance()
		if s.peek() == '+' || s.peek() == '-' {
			s.advance()
		}
		if !isDigit(s.peek()) {
			return s.errorAt("Invalid exponent in number literal", s.start, false)
		}
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	s.addToken(NUMBER)
	return nil
}

// scanString decodes escape sequences into the token lexeme. Strings cannot
// span lines; a literal newline is as fatal as running off the end, but only
// the latter counts as incomplete input.
func (s *Scanner) scanString() error {
	var value strings.Builder
	for {
		if s.isAtEnd() {
			return s.errorAt("Unterminated string literal", s.start, true)
		}
		if s.peek() == '\n' {
			return s.errorAt("Unterminated string literal", s.start, false)
		}
		c := s.advance()
		if c == '"' {
			break
		}
		if c != '\\' {
			value.WriteByte(c)
			continue
		}
		if s.isAtEnd() {
			return s.errorAt("Unterminated string literal", s.start, true)
		}
		escOffset := s.current - 1
		switch esc := s.advance(); esc {
		case 'n':
			value.WriteByte('\n')
		case 't':
			value.WriteByte('\t')
		case 'r':
			value.WriteByte('\r')
		case '\\':
			value.WriteByte('\\')
		case '"':
			value.WriteByte('"')
		default:
			return s.errorAt(fmt.Sprintf("Invalid escape sequence '\\%c'", esc), escOffset, false)
		}
	}
	s.tokens = append(s.tokens, Token{
		Type:   STRING,
		Lexeme: value.String(),
		Span:   source.Span{Start: s.start, End: s.current},
	})
	return nil
}

// rawStringAhead reports whether the just-consumed 'r' opens a raw string:
// zero or more '#' followed by '"'. Otherwise the 'r' is an identifier head.
func (s *Scanner) rawStringAhead() bool {
	k := 0
	for s.peekAt(k) == '#' {
		k++
	}
	return s.peekAt(k) == '"'
}

// scanRawString copies the delimited text verbatim. The closer is '"'
// followed by exactly as many '#' as the opener; fewer hashes stay part of
// the string.
func (s *Scanner) scanRawString() error {
	hashes := 0
	for s.peek() == '#' {
		s.advance()
		hashes++
	}
	s.advance() // opening quote
	contentStart := s.current

	for {
		if s.isAtEnd() {
			return s.errorAt("Unterminated raw string literal", s.start, true)
		}
		if s.peek() == '"' && s.hashesFollow(hashes) {
			contentEnd := s.current
			s.advance() // closing quote
			for i := 0; i < hashes; i++ {
				s.advance()
			}
			s.tokens = append(s.tokens, Token{
				Type:   STRING,
				Lexeme: s.source[contentStart:contentEnd],
				Span:   source.Span{Start: s.start, End: s.current},
			})
			return nil
		}
		s.advance()
	}
}

func (s *Scanner) hashesFollow(n int) bool {
	for i := 1; i <= n; i++ {
		if s.peekAt(i) != '#' {
			return false
		}
	}
	return true
}

func (s *Scanner) scanLineComment() {
	for !s.isAtEnd() && s.peek() != '\n' {
		s.advance()
	}
}

// scanBlockComment handles nesting: each "/*" inside the comment must be
// matched by its own "*/".
func (s *Scanner) scanBlockComment() error {
	depth := 1
	for depth > 0 {
		if s.isAtEnd() {
			return s.errorAt("Unterminated block comment", s.current, true)
		}
		if s.peek() == '*' && s.peekAt(1) == '/' {
			s.advance()
			s.advance()
			depth--
			continue
		}
		if s.peek() == '/' && s.peekAt(1) == '*' {
			s.advance()
			s.advance()
			depth++
			continue
		}
		s.advance()
	}
	return nil
}
