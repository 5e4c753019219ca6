package parser

import "github.com/amerikrainian/sonar/internal/source"

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
		return p.previous()
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *Parser) check(tt TokenType) bool {
	return p.peek().Type == tt
}

func (p *Parser) match(tt TokenType) bool {
	if !p.check(tt) {
		return false
	}
	p.advance()
	return true
}

// consume requires the next token to be of the given type. Failing at the end
// of input yields an incomplete error so interactive callers can ask for more
// text instead of giving up.
func (p *Parser) consume(tt TokenType, message string) (Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return Token{}, p.errorAt(message, p.peek().Span, p.isAtEnd())
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) peekAt(offset int) Token {
	index := p.current + offset
	if index >= len(p.tokens) {
		index = len(p.tokens) - 1
	}
	return p.tokens[index]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == EOF
}

func (p *Parser) errorAt(message string, span source.Span, incomplete bool) error {
	return &ParseError{
		Msg:        message,
		Span:       span,
		Location:   p.lines.LocationFor(span.Start),
		SourceName: p.sourceName,
		Incomplete: incomplete,
	}
}
