package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// The String methods render the tree in a deterministic parenthesized-prefix
// form used by the REPL and the golden tests. The rendered text is a debug
// dialect: it is not guaranteed to be valid surface syntax.

func (n *NumberLit) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (b *BoolLit) String() string {
	return strconv.FormatBool(b.Value)
}

func (s *StringLit) String() string {
	return strconv.Quote(s.Value)
}

func (v *Variable) String() string {
	return v.Name
}

func (p *Prefix) String() string {
	return fmt.Sprintf("(%s %s)", p.Op, p.Right.String())
}

func (i *Infix) String() string {
	return fmt.Sprintf("(%s %s %s)", i.Op, i.Left.String(), i.Right.String())
}

func (g *Grouping) String() string {
	return fmt.Sprintf("(group %s)", g.Inner.String())
}

func (u *Unit) String() string {
	return "(unit)"
}

func (a *Assign) String() string {
	return fmt.Sprintf("(assign %s = %s)", a.Name, a.Value.String())
}

func (b *Block) String() string {
	var out strings.Builder
	out.WriteString("{ ")
	for _, stmt := range b.Statements {
		out.WriteString(stmt.String())
		out.WriteByte(' ')
	}
	if b.Tail != nil {
		out.WriteString(b.Tail.String())
		out.WriteByte(' ')
	}
	out.WriteString("}")
	return out.String()
}

func (i *If) String() string {
	if i.Else == nil {
		return fmt.Sprintf("(if %s %s)", i.Cond.String(), i.Then.String())
	}
	return fmt.Sprintf("(if %s %s else %s)", i.Cond.String(), i.Then.String(), i.Else.String())
}

func (w *While) String() string {
	return fmt.Sprintf("(while %s %s)", w.Cond.String(), w.Body.String())
}

func (f *For) String() string {
	return fmt.Sprintf("(for %s in %s %s)", f.Name, f.Iterable.String(), f.Body.String())
}

func (f *Function) String() string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Name
	}
	return fmt.Sprintf("(fn (%s) %s)", strings.Join(names, " "), f.Body.String())
}

func (l *LetStmt) String() string {
	return fmt.Sprintf("(let %s = %s)", l.Name, l.Value.String())
}

func (e *ExprStmt) String() string {
	return e.Expr.String()
}
