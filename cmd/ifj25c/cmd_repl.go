package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/subcommands"
	"github.com/liskarovh/ifj25c/compiler"
)

// replCmd is a line-oriented read-eval-print loop built on
// chzyer/readline for history and line editing. Each entered line is
// wrapped into a throwaway `class`/`static main()` so the existing
// pipeline can scan/parse/check/emit it without a separate
// REPL-specific grammar.
type replCmd struct{}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "Start an interactive IFJ25 read-eval-print loop" }
func (*replCmd) Usage() string {
	return `repl:
  Read one line of IFJ25 statements at a time and print its IFJcode25
  translation. Type "exit" to quit.
`
}
func (*replCmd) SetFlags(f *flag.FlagSet) {}

func wrapReplLine(line string) []byte {
	var b strings.Builder
	b.WriteString("import \"ifj25\" for Ifj\nclass Repl {\nstatic main() {\n")
	b.WriteString(line)
	b.WriteString("\n}\n}\n")
	return []byte(b.String())
}

func (*replCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rl, err := readline.New(">>> ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start readline: %v\n", err)
		return subcommands.ExitFailure
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			return subcommands.ExitSuccess
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return subcommands.ExitFailure
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if trimmed == "exit" {
			return subcommands.ExitSuccess
		}

		out, code := compiler.Compile(wrapReplLine(trimmed))
		if code != compiler.ExitSuccess {
			fmt.Fprintf(os.Stderr, "error (exit code %d)\n", code)
			continue
		}
		os.Stdout.Write(out)
	}
}
