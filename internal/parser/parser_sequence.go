package parser

import (
	"github.com/amerikrainian/sonar/internal/ast"
	"github.com/amerikrainian/sonar/internal/source"
)

// statementSequence is the body of a block: zero or more terminated
// statements, then at most one unterminated trailing expression whose value
// becomes the value of the block.
type statementSequence struct {
	statements []ast.Stmt
	value      ast.Expr
}

// parseSequence is shared by the top level (terminator EOF) and braced
// blocks (terminator RIGHT_BRACE). The terminator itself is left for the
// caller to consume.
func (p *Parser) parseSequence(terminator TokenType) (statementSequence, error) {
	var seq statementSequence

	for !p.check(terminator) && !p.isAtEnd() {
		// empty statement
		if p.check(SEMICOLON) {
			p.advance()
			continue
		}

		if p.check(LET) {
			stmt, err := p.parseLetStatement()
			if err != nil {
				return seq, err
			}
			if _, err := p.consume(SEMICOLON, "Expected ';' after let statement"); err != nil {
				return seq, err
			}
			seq.statements = append(seq.statements, stmt)
			continue
		}

		// 'fn' followed by a name is a declaration; a bare 'fn' stays an
		// expression and falls through to parseExpression below.
		if p.check(FN) && p.peekAt(1).Type == IDENTIFIER {
			stmt, err := p.parseFnStatement()
			if err != nil {
				return seq, err
			}
			if p.check(SEMICOLON) {
				return seq, p.errorAt("Unexpected ';' after function definition", p.peek().Span, false)
			}
			seq.statements = append(seq.statements, stmt)
			continue
		}

		expr, err := p.parseExpression(precLowest)
		if err != nil {
			return seq, err
		}

		if p.match(SEMICOLON) {
			seq.statements = append(seq.statements, &ast.ExprStmt{Span: expr.NodeSpan(), Expr: expr})
			continue
		}

		seq.value = expr
		if !p.check(terminator) && !p.isAtEnd() {
			return seq, p.errorAt("Unexpected expression after final expression", p.peek().Span, false)
		}
		break
	}

	return seq, nil
}

func (p *Parser) parseLetStatement() (ast.Stmt, error) {
	letTok, err := p.consume(LET, "Expected 'let'")
	if err != nil {
		return nil, err
	}
	name, err := p.consume(IDENTIFIER, "Expected identifier after 'let'")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(EQUAL, "Expected '=' after identifier"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	return &ast.LetStmt{
		Span:     source.Union(letTok.Span, value.NodeSpan()),
		NameSpan: name.Span,
		Name:     name.Lexeme,
		Value:    value,
	}, nil
}

// parseFnStatement desugars `fn name(params) body` into a let statement
// binding a function literal to the name.
func (p *Parser) parseFnStatement() (ast.Stmt, error) {
	fnTok, err := p.consume(FN, "Expected 'fn'")
	if err != nil {
		return nil, err
	}
	name, err := p.consume(IDENTIFIER, "Expected function name after 'fn'")
	if err != nil {
		return nil, err
	}
	function, err := p.parseFunctionLiteral(fnTok)
	if err != nil {
		return nil, err
	}
	return &ast.LetStmt{
		Span:     source.Union(fnTok.Span, function.NodeSpan()),
		NameSpan: name.Span,
		Name:     name.Lexeme,
		Value:    function,
	}, nil
}
