package ast

import "github.com/amerikrainian/sonar/internal/source"

// Stmt is the closed set of statement nodes appearing in blocks.
type Stmt interface {
	Node
	isStmt()
}

// LetStmt binds a name to the value of an expression.
type LetStmt struct {
	Span     source.Span
	NameSpan source.Span
	Name     string
	Value    Expr
}

// ExprStmt is an expression terminated by ';', evaluated for effect.
type ExprStmt struct {
	Span source.Span
	Expr Expr
}

func (*LetStmt) isStmt()  {}
func (*ExprStmt) isStmt() {}
