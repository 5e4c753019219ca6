package parser

import (
	"github.com/amerikrainian/sonar/internal/ast"
	"github.com/amerikrainian/sonar/internal/source"
)

type Parser struct {
	tokens     []Token
	current    int
	lines      source.LineIndex
	sourceName string
}

func NewParser(tokens []Token, lines source.LineIndex, sourceName string) *Parser {
	if len(lines) == 0 {
		lines = source.NewLineIndex()
	}
	return &Parser{tokens: tokens, lines: lines, sourceName: sourceName}
}

// Parse consumes a complete token stream and returns the program expression.
// The first error aborts the parse; there is no recovery.
func Parse(tokens []Token, lines source.LineIndex, sourceName string) (ast.Expr, error) {
	return NewParser(tokens, lines, sourceName).Parse()
}

// ParseSource runs both stages. Each call is self-contained; independent
// sources can be parsed concurrently.
func ParseSource(sourceName, src string) (ast.Expr, error) {
	lex, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return Parse(lex.Tokens, lex.LineIndex, sourceName)
}

// Parse treats the whole input as one implicit block body. An empty input is
// Unit, a lone trailing expression is returned directly rather than wrapped,
// and anything else becomes a block.
func (p *Parser) Parse() (ast.Expr, error) {
	seq, err := p.parseSequence(EOF)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(EOF, "Expected end of input"); err != nil {
		return nil, err
	}

	if len(seq.statements) == 0 {
		if seq.value == nil {
			return &ast.Unit{Span: p.tokens[len(p.tokens)-1].Span}, nil
		}
		return seq.value, nil
	}

	span := seq.statements[0].NodeSpan()
	if seq.value != nil {
		span = source.Union(span, seq.value.NodeSpan())
	} else {
		span = source.Union(span, seq.statements[len(seq.statements)-1].NodeSpan())
	}
	return &ast.Block{Span: span, Statements: seq.statements, Tail: seq.value}, nil
}
