package source

import "sort"

// Location is a resolved 1-based line/column pair.
type Location struct {
	Line   int
	Column int
}

// LineIndex maps byte offsets to locations. Entry i is the byte offset where
// line i+1 begins; entry 0 is always 0. The scanner appends an entry each time
// it crosses a newline.
type LineIndex []int

func NewLineIndex() LineIndex {
	return LineIndex{0}
}

// Mark records that a new line begins at the given byte offset.
func (ix *LineIndex) Mark(offset int) {
	*ix = append(*ix, offset)
}

// LocationFor resolves a byte offset to its line and column by binary search
// for the greatest line start that does not exceed the offset.
func (ix LineIndex) LocationFor(offset int) Location {
	if len(ix) == 0 {
		return Location{Line: 1, Column: offset + 1}
	}
	i := sort.Search(len(ix), func(i int) bool { return ix[i] > offset })
	line := i // ix[i-1] <= offset < ix[i]
	if line < 1 {
		line = 1
	}
	return Location{Line: line, Column: offset - ix[line-1] + 1}
}
