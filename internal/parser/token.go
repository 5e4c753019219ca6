package parser

import "github.com/amerikrainian/sonar/internal/source"

type TokenType int

const (
	// Sentinel; always the last token, zero-width at end of source
	EOF TokenType = iota

	// Literals + identifiers
	NUMBER
	STRING
	IDENTIFIER
	TRUE
	FALSE

	// Keywords
	LET
	FN
	IF
	ELSE
	FOR
	WHILE
	IN

	// Operators
	PLUS
	MINUS
	STAR
	SLASH
	AMPERSAND
	PIPE
	AND
	OR
	EQUAL

	// Punctuation
	LEFT_PAREN
	RIGHT_PAREN
	COMMA
	COLON
	LEFT_BRACE
	RIGHT_BRACE
	SEMICOLON
	ARROW

	tokenTypeCount
)

func (tt TokenType) String() string {
	switch tt {
	case EOF:
		return "<eof>"
	case NUMBER:
		return "number"
	case STRING:
		return "string"
	case IDENTIFIER:
		return "identifier"
	case TRUE:
		return "true"
	case FALSE:
		return "false"
	case LET:
		return "let"
	case FN:
		return "fn"
	case IF:
		return "if"
	case ELSE:
		return "else"
	case FOR:
		return "for"
	case WHILE:
		return "while"
	case IN:
		return "in"
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case STAR:
		return "*"
	case SLASH:
		return "/"
	case AMPERSAND:
		return "&"
	case PIPE:
		return "|"
	case AND:
		return "&&"
	case OR:
		return "||"
	case EQUAL:
		return "="
	case LEFT_PAREN:
		return "("
	case RIGHT_PAREN:
		return ")"
	case COMMA:
		return ","
	case COLON:
		return ":"
	case LEFT_BRACE:
		return "{"
	case RIGHT_BRACE:
		return "}"
	case SEMICOLON:
		return ";"
	case ARROW:
		return "->"
	}
	return "<unknown>"
}

// Token is immutable once produced by the scanner. For STRING tokens the
// lexeme is the decoded value, not the raw source slice; the span still
// covers the full source extent including quotes and hashes.
type Token struct {
	Type   TokenType
	Lexeme string
	Span   source.Span
}
