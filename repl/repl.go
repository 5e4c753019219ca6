// Package repl is the interactive front end. It accumulates lines into a
// buffer and reparses the whole buffer from scratch on every line; no parser
// state survives between attempts. An incomplete error keeps the buffer and
// switches to the continuation prompt, any other error prints a diagnostic
// and resets.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/amerikrainian/sonar/internal/errors"
	"github.com/amerikrainian/sonar/internal/parser"
)

const (
	Prompt             = "sonar> "
	ContinuationPrompt = "... "
)

func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	prompt := Prompt
	var buffer string
	snippet := 1
	sourceName := ""

	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}
		line := scanner.Text()

		if buffer == "" {
			sourceName = fmt.Sprintf("<repl #%d>", snippet)
			if line == "quit" || line == "exit" {
				return
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
		}

		if buffer != "" {
			buffer += "\n"
		}
		buffer += line

		expr, err := parser.ParseSource(sourceName, buffer)
		if err != nil {
			if parser.IsIncomplete(err) {
				prompt = ContinuationPrompt
				continue
			}
			fmt.Fprintln(out, errors.Line(sourceName, err))
		} else {
			fmt.Fprintln(out, expr.String())
		}

		buffer = ""
		prompt = Prompt
		snippet++
	}
}
