package ast

import "github.com/amerikrainian/sonar/internal/source"

// Node is implemented by every AST node. Spans cover the node's exact source
// extent; a parent's span always contains the spans of its children.
type Node interface {
	NodeSpan() source.Span
	String() string
}

func (n *NumberLit) NodeSpan() source.Span { return n.Span }
func (b *BoolLit) NodeSpan() source.Span   { return b.Span }
func (s *StringLit) NodeSpan() source.Span { return s.Span }
func (v *Variable) NodeSpan() source.Span  { return v.Span }
func (p *Prefix) NodeSpan() source.Span    { return p.Span }
func (i *Infix) NodeSpan() source.Span     { return i.Span }
func (g *Grouping) NodeSpan() source.Span  { return g.Span }
func (u *Unit) NodeSpan() source.Span      { return u.Span }
func (a *Assign) NodeSpan() source.Span    { return a.Span }
func (b *Block) NodeSpan() source.Span     { return b.Span }
func (i *If) NodeSpan() source.Span        { return i.Span }
func (w *While) NodeSpan() source.Span     { return w.Span }
func (f *For) NodeSpan() source.Span       { return f.Span }
func (f *Function) NodeSpan() source.Span  { return f.Span }

func (l *LetStmt) NodeSpan() source.Span  { return l.Span }
func (e *ExprStmt) NodeSpan() source.Span { return e.Span }
