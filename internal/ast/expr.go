package ast

import "github.com/amerikrainian/sonar/internal/source"

// Expr is the closed set of expression nodes. The parser is the only
// producer; nodes are immutable once built and exclusively own their
// children, so a tree can be walked without cycle checks.
type Expr interface {
	Node
	isExpr()
}

// NumberLit is a numeric literal with its parsed value.
type NumberLit struct {
	Span  source.Span
	Value float64
}

// BoolLit is a `true` or `false` literal.
type BoolLit struct {
	Span  source.Span
	Value bool
}

// StringLit holds the decoded value of a quoted or raw string literal.
type StringLit struct {
	Span  source.Span
	Value string
}

// Variable is a bare identifier reference.
type Variable struct {
	Span     source.Span
	NameSpan source.Span
	Name     string
}

// Prefix is a unary operator application.
type Prefix struct {
	Span   source.Span
	OpSpan source.Span
	Op     string
	Right  Expr
}

// Infix is a binary operator application.
type Infix struct {
	Span   source.Span
	OpSpan source.Span
	Op     string
	Left   Expr
	Right  Expr
}

// Grouping is a parenthesized expression.
type Grouping struct {
	Span  source.Span
	Inner Expr
}

// Unit is the value of `()` and of an empty program.
type Unit struct {
	Span source.Span
}

// Assign rebinds a variable. The target is a name, never an arbitrary
// expression; the parser rejects anything else before construction.
type Assign struct {
	Span     source.Span
	NameSpan source.Span
	Name     string
	Value    Expr
}

// Block is a brace-delimited statement sequence. Tail is non-nil iff the last
// constituent was an expression not terminated by ';'; its value is the value
// of the block.
type Block struct {
	Span       source.Span
	Statements []Stmt
	Tail       Expr
}

// If is a conditional expression. Else is nil when no else branch was given.
type If struct {
	Span source.Span
	Cond Expr
	Then Expr
	Else Expr
}

// While is a loop expression.
type While struct {
	Span source.Span
	Cond Expr
	Body Expr
}

// For iterates a name over an iterable expression.
type For struct {
	Span     source.Span
	NameSpan source.Span
	Name     string
	Iterable Expr
	Body     Expr
}

// Param is a function parameter name with its source span.
type Param struct {
	Span source.Span
	Name string
}

// Function is a closure literal. Declarations (`fn name(...) ...`) desugar to
// a let statement binding one of these.
type Function struct {
	Span   source.Span
	Params []Param
	Body   Expr
}

func (*NumberLit) isExpr() {}
func (*BoolLit) isExpr()   {}
func (*StringLit) isExpr() {}
func (*Variable) isExpr()  {}
func (*Prefix) isExpr()    {}
func (*Infix) isExpr()     {}
func (*Grouping) isExpr()  {}
func (*Unit) isExpr()      {}
func (*Assign) isExpr()    {}
func (*Block) isExpr()     {}
func (*If) isExpr()        {}
func (*While) isExpr()     {}
func (*For) isExpr()       {}
func (*Function) isExpr()  {}
