package source

// Span is a half-open [Start, End) byte range into the original source text.
type Span struct {
	Start int
	End   int
}

// Union returns the smallest span covering both a and b.
func Union(a, b Span) Span {
	s := a
	if b.Start < s.Start {
		s.Start = b.Start
	}
	if b.End > s.End {
		s.End = b.End
	}
	return s
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}
