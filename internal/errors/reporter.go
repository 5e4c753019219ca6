// Package errors renders lexical and parse errors for terminal output: the
// plain one-line diagnostic contract, and a colored caret snippet for the
// CLI.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/amerikrainian/sonar/internal/parser"
	"github.com/amerikrainian/sonar/internal/source"
)

// Line formats the diagnostic line consumed by front ends:
// <source_name>:<line>:<column>: error: <message>
func Line(sourceName string, err error) string {
	loc, _, ok := locate(err)
	if !ok {
		return fmt.Sprintf("%s: error: %v", sourceName, err)
	}
	return fmt.Sprintf("%s:%d:%d: error: %v", sourceName, loc.Line, loc.Column, err)
}

// locate extracts the resolved location and marker width from either error
// kind.
func locate(err error) (source.Location, int, bool) {
	var lexErr *parser.LexError
	if stderrors.As(err, &lexErr) {
		return lexErr.Location, 1, true
	}
	var parseErr *parser.ParseError
	if stderrors.As(err, &parseErr) {
		return parseErr.Location, parseErr.Span.Len(), true
	}
	return source.Location{}, 0, false
}

// Reporter formats errors against the source text they were raised for.
type Reporter struct {
	sourceName string
	lines      []string
}

func NewReporter(sourceName, src string) *Reporter {
	return &Reporter{
		sourceName: sourceName,
		lines:      strings.Split(src, "\n"),
	}
}

// Format renders the diagnostic line followed by a caret-underlined snippet:
//
//	demo.sn:2:9: error: Expected ')' after expression
//	   │
//	  2│let x = (1 + 2;
//	   │        ^
func (r *Reporter) Format(err error) string {
	loc, length, ok := locate(err)
	if !ok {
		return Line(r.sourceName, err) + "\n"
	}

	red := color.New(color.FgRed).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	var lineContent string
	if loc.Line-1 >= 0 && loc.Line-1 < len(r.lines) {
		lineContent = r.lines[loc.Line-1]
	}
	if length < 1 {
		length = 1
	}
	if remaining := len(lineContent) - (loc.Column - 1); remaining > 0 && length > remaining {
		length = remaining
	}
	marker := strings.Repeat(" ", max(0, loc.Column-1)) + strings.Repeat("^", length)

	lineNumberWidth := len(fmt.Sprintf("%d", loc.Line))
	if lineNumberWidth < 3 {
		lineNumberWidth = 3
	}
	indent := strings.Repeat(" ", lineNumberWidth)

	var out strings.Builder
	out.WriteString(fmt.Sprintf("%s:%d:%d: %s: %v\n", r.sourceName, loc.Line, loc.Column, red("error"), err))
	out.WriteString(fmt.Sprintf("%s%s\n", indent, dim("│")))
	out.WriteString(fmt.Sprintf("%*d%s%s\n", lineNumberWidth, loc.Line, dim("│"), lineContent))
	out.WriteString(fmt.Sprintf("%s%s%s\n", indent, dim("│"), bold(marker)))
	return out.String()
}
