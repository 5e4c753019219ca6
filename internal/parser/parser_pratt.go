package parser

import (
	"fmt"
	"strconv"

	"github.com/amerikrainian/sonar/internal/ast"
	"github.com/amerikrainian/sonar/internal/source"
)

type precedence int

const (
	precLowest precedence = iota
	precAssignment
	precLogicalOr
	precLogicalAnd
	precBitwiseOr
	precBitwiseAnd
	precSum
	precProduct
	precPrefix
)

type prefixRule func(*Parser, Token) (ast.Expr, error)

type infixRule struct {
	prec       precedence
	rightAssoc bool
	parse      func(*Parser, ast.Expr, Token, precedence, bool) (ast.Expr, error)
}

// Rule tables indexed by token type ordinal, so dispatch is a single array
// load and parsing stays linear in the token count.
var (
	prefixRules [tokenTypeCount]prefixRule
	infixRules  [tokenTypeCount]*infixRule
)

func init() {
	prefixRules[NUMBER] = (*Parser).parseNumber
	prefixRules[STRING] = (*Parser).parseString
	prefixRules[TRUE] = (*Parser).parseBoolean
	prefixRules[FALSE] = (*Parser).parseBoolean
	prefixRules[MINUS] = (*Parser).parsePrefixOperator
	prefixRules[LEFT_PAREN] = (*Parser).parseGrouping
	prefixRules[IDENTIFIER] = (*Parser).parseIdentifier
	prefixRules[FN] = (*Parser).parseFunctionLiteral
	prefixRules[LEFT_BRACE] = (*Parser).parseBlock
	prefixRules[IF] = (*Parser).parseIf
	prefixRules[WHILE] = (*Parser).parseWhile
	prefixRules[FOR] = (*Parser).parseFor

	binary := func(prec precedence) *infixRule {
		return &infixRule{prec: prec, parse: (*Parser).parseBinaryOperator}
	}
	infixRules[EQUAL] = &infixRule{prec: precAssignment, rightAssoc: true, parse: (*Parser).parseAssignment}
	infixRules[OR] = binary(precLogicalOr)
	infixRules[AND] = binary(precLogicalAnd)
	infixRules[PIPE] = binary(precBitwiseOr)
	infixRules[AMPERSAND] = binary(precBitwiseAnd)
	infixRules[PLUS] = binary(precSum)
	infixRules[MINUS] = binary(precSum)
	infixRules[STAR] = binary(precProduct)
	infixRules[SLASH] = binary(precProduct)
}

// parseExpression is the precedence-climbing core: one prefix dispatch, then
// a loop folding infix operators whose precedence clears the floor.
func (p *Parser) parseExpression(floor precedence) (ast.Expr, error) {
	if p.isAtEnd() {
		return nil, p.errorAt("Unexpected end of input while parsing expression", p.peek().Span, true)
	}

	tok := p.advance()
	rule := prefixRules[tok.Type]
	if rule == nil {
		if tok.Type == LET {
			return nil, p.errorAt("Unexpected 'let' while parsing expression", tok.Span, false)
		}
		return nil, p.errorAt(fmt.Sprintf("Unexpected token '%s' while parsing expression", tok.Lexeme), tok.Span, false)
	}

	left, err := rule(p, tok)
	if err != nil {
		return nil, err
	}

	for !p.isAtEnd() {
		infix := infixRules[p.peek().Type]
		if infix == nil || infix.prec < floor {
			break
		}
		op := p.advance()
		left, err = infix.parse(p, left, op, infix.prec, infix.rightAssoc)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

func (p *Parser) parseNumber(tok Token) (ast.Expr, error) {
	value, err := strconv.ParseFloat(tok.Lexeme, 64)
	if err != nil {
		return nil, p.errorAt(fmt.Sprintf("Invalid number literal '%s'", tok.Lexeme), tok.Span, false)
	}
	return &ast.NumberLit{Span: tok.Span, Value: value}, nil
}

func (p *Parser) parseBoolean(tok Token) (ast.Expr, error) {
	return &ast.BoolLit{Span: tok.Span, Value: tok.Type == TRUE}, nil
}

func (p *Parser) parseString(tok Token) (ast.Expr, error) {
	return &ast.StringLit{Span: tok.Span, Value: tok.Lexeme}, nil
}

func (p *Parser) parseIdentifier(tok Token) (ast.Expr, error) {
	return &ast.Variable{Span: tok.Span, NameSpan: tok.Span, Name: tok.Lexeme}, nil
}

func (p *Parser) parsePrefixOperator(op Token) (ast.Expr, error) {
	right, err := p.parseExpression(precPrefix)
	if err != nil {
		return nil, err
	}
	return &ast.Prefix{
		Span:   source.Union(op.Span, right.NodeSpan()),
		OpSpan: op.Span,
		Op:     op.Lexeme,
		Right:  right,
	}, nil
}

// parseGrouping handles both '()' (the unit value) and parenthesized
// expressions.
func (p *Parser) parseGrouping(open Token) (ast.Expr, error) {
	if p.check(RIGHT_PAREN) {
		close := p.advance()
		return &ast.Unit{Span: source.Span{Start: open.Span.Start, End: close.Span.End}}, nil
	}

	inner, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	close, err := p.consume(RIGHT_PAREN, "Expected ')' after expression")
	if err != nil {
		return nil, err
	}
	return &ast.Grouping{
		Span:  source.Span{Start: open.Span.Start, End: close.Span.End},
		Inner: inner,
	}, nil
}

// parseFunctionLiteral parses the parameter list and body following a 'fn'
// token. It is also called by the fn-declaration desugaring after the name
// has been consumed.
func (p *Parser) parseFunctionLiteral(fnTok Token) (ast.Expr, error) {
	if _, err := p.consume(LEFT_PAREN, "Expected '(' after 'fn'"); err != nil {
		return nil, err
	}

	var params []ast.Param
	if !p.check(RIGHT_PAREN) {
		for {
			name, err := p.consume(IDENTIFIER, "Expected parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, ast.Param{Span: name.Span, Name: name.Lexeme})
			if !p.match(COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(RIGHT_PAREN, "Expected ')' after parameter list"); err != nil {
		return nil, err
	}

	body, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	return &ast.Function{
		Span:   source.Union(fnTok.Span, body.NodeSpan()),
		Params: params,
		Body:   body,
	}, nil
}

func (p *Parser) parseBlock(open Token) (ast.Expr, error) {
	seq, err := p.parseSequence(RIGHT_BRACE)
	if err != nil {
		return nil, err
	}
	close, err := p.consume(RIGHT_BRACE, "Expected '}' after block")
	if err != nil {
		return nil, err
	}
	return &ast.Block{
		Span:       source.Span{Start: open.Span.Start, End: close.Span.End},
		Statements: seq.statements,
		Tail:       seq.value,
	}, nil
}

func (p *Parser) parseIf(ifTok Token) (ast.Expr, error) {
	cond, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	then, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}

	// 'else' binds to the nearest preceding 'if'
	var elseBranch ast.Expr
	if p.match(ELSE) {
		elseBranch, err = p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
	}

	end := then.NodeSpan()
	if elseBranch != nil {
		end = elseBranch.NodeSpan()
	}
	return &ast.If{
		Span: source.Union(ifTok.Span, end),
		Cond: cond,
		Then: then,
		Else: elseBranch,
	}, nil
}

func (p *Parser) parseWhile(whileTok Token) (ast.Expr, error) {
	cond, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	body, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	return &ast.While{
		Span: source.Union(whileTok.Span, body.NodeSpan()),
		Cond: cond,
		Body: body,
	}, nil
}

func (p *Parser) parseFor(forTok Token) (ast.Expr, error) {
	name, err := p.consume(IDENTIFIER, "Expected identifier after 'for'")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(IN, "Expected 'in' after loop variable"); err != nil {
		return nil, err
	}

	iterable, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	body, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	return &ast.For{
		Span:     source.Union(forTok.Span, body.NodeSpan()),
		NameSpan: name.Span,
		Name:     name.Lexeme,
		Iterable: iterable,
		Body:     body,
	}, nil
}

// parseBinaryOperator recurses at prec+1 for left-associative operators and
// at the same level for right-associative ones.
func (p *Parser) parseBinaryOperator(left ast.Expr, op Token, prec precedence, rightAssoc bool) (ast.Expr, error) {
	next := prec
	if !rightAssoc {
		next = prec + 1
	}
	right, err := p.parseExpression(next)
	if err != nil {
		return nil, err
	}
	return &ast.Infix{
		Span:   source.Union(left.NodeSpan(), right.NodeSpan()),
		OpSpan: op.Span,
		Op:     op.Lexeme,
		Left:   left,
		Right:  right,
	}, nil
}

// parseAssignment requires the already-reduced left side to be a variable;
// the error is anchored at the operator, not the operand.
func (p *Parser) parseAssignment(left ast.Expr, op Token, prec precedence, _ bool) (ast.Expr, error) {
	target, ok := left.(*ast.Variable)
	if !ok {
		return nil, p.errorAt("Left-hand side of assignment must be a variable", op.Span, false)
	}
	value, err := p.parseExpression(prec)
	if err != nil {
		return nil, err
	}
	return &ast.Assign{
		Span:     source.Union(left.NodeSpan(), value.NodeSpan()),
		NameSpan: target.NameSpan,
		Name:     target.Name,
		Value:    value,
	}, nil
}
