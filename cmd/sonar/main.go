package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/amerikrainian/sonar/internal/errors"
	"github.com/amerikrainian/sonar/internal/parser"
	"github.com/amerikrainian/sonar/repl"
)

const version = "0.1.0"

var verbose bool

var log = commonlog.GetLogger("sonar")

var rootCmd = &cobra.Command{
	Use:     "sonar [file]",
	Short:   "Parse sonar source and print the AST",
	Long:    "With a file argument, parses it and prints the rendered AST.\nWithout arguments, starts the interactive prompt.",
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verbosity := 0
		if verbose {
			verbosity = 1
		}
		commonlog.Configure(verbosity, nil)

		if len(args) == 0 {
			fmt.Printf("sonar %s - enter an expression, or type 'quit' to exit.\n", version)
			repl.Start(os.Stdin, os.Stdout)
			return nil
		}
		return runFile(args[0])
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	src := string(data)

	start := time.Now()
	lex, err := parser.Tokenize(src)
	if err != nil {
		reportAndExit(path, src, err)
	}
	log.Debugf("lexed %d tokens across %d lines", len(lex.Tokens), len(lex.LineIndex))

	expr, err := parser.Parse(lex.Tokens, lex.LineIndex, path)
	if err != nil {
		reportAndExit(path, src, err)
	}
	log.Debugf("parsed %s in %s", path, time.Since(start))

	fmt.Println(expr.String())
	return nil
}

// reportAndExit prints the diagnostic to stderr and terminates with a
// non-zero status; parse failures are reported, not returned.
func reportAndExit(path, src string, err error) {
	fmt.Fprint(os.Stderr, errors.NewReporter(path, src).Format(err))
	os.Exit(1)
}
