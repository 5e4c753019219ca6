package parser

import (
	"errors"

	"github.com/amerikrainian/sonar/internal/source"
)

// LexError is a fatal lexical error at a byte offset. Incomplete is true only
// when the scanner ran off the end of the source inside a string, raw string,
// or block comment.
type LexError struct {
	Msg        string
	Offset     int
	Location   source.Location
	Incomplete bool
}

func (e *LexError) Error() string {
	return e.Msg
}

// ParseError aborts a parse. Incomplete marks errors attributable solely to
// the input ending early; an interactive caller can request more text instead
// of reporting them.
type ParseError struct {
	Msg        string
	Span       source.Span
	Location   source.Location
	SourceName string
	Incomplete bool
}

func (e *ParseError) Error() string {
	return e.Msg
}

// IsIncomplete reports whether err means "ran out of input" rather than
// "input is wrong", for either error kind.
func IsIncomplete(err error) bool {
	var lexErr *LexError
	if errors.As(err, &lexErr) {
		return lexErr.Incomplete
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Incomplete
	}
	return false
}
