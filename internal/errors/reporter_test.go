package errors

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amerikrainian/sonar/internal/parser"
	"github.com/amerikrainian/sonar/internal/source"
)

func init() {
	color.NoColor = true
}

func TestLineFormat(t *testing.T) {
	err := &parser.ParseError{
		Msg:      "Expected ')' after expression",
		Location: source.Location{Line: 2, Column: 5},
	}
	assert.Equal(t, "demo.sn:2:5: error: Expected ')' after expression", Line("demo.sn", err))
}

func TestLineFormatLexError(t *testing.T) {
	err := &parser.LexError{
		Msg:      "Unexpected character '@'",
		Location: source.Location{Line: 1, Column: 3},
	}
	assert.Equal(t, "<repl #1>:1:3: error: Unexpected character '@'", Line("<repl #1>", err))
}

func TestLineFallbackWithoutLocation(t *testing.T) {
	assert.Equal(t, "demo.sn: error: assert.AnError general error for testing", Line("demo.sn", assert.AnError))
}

func TestFormatCaretSnippet(t *testing.T) {
	src := "let x = (1 + 2;\nx"
	_, err := parser.ParseSource("demo.sn", src)
	require.Error(t, err)

	got := NewReporter("demo.sn", src).Format(err)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, "demo.sn:1:15: error: Expected ')' after expression", lines[0])
	assert.Equal(t, "   │", lines[1])
	assert.Equal(t, "  1│let x = (1 + 2;", lines[2])
	assert.Equal(t, "   │              ^", lines[3])
}

func TestFormatMarkerCoversSpan(t *testing.T) {
	src := "1 = 2"
	_, err := parser.ParseSource("demo.sn", src)
	require.Error(t, err)

	got := NewReporter("demo.sn", src).Format(err)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "   │  ^", lines[3])
}

func TestFormatWithoutLocationFallsBackToLine(t *testing.T) {
	got := NewReporter("demo.sn", "x").Format(assert.AnError)
	assert.Equal(t, Line("demo.sn", assert.AnError)+"\n", got)
}
