package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/liskarovh/ifj25c/lexer"
)

// tokensCmd implements the `tokens` subcommand, a scanner-only debug
// aid: one line per token instead of a full compile.
type tokensCmd struct{}

func (*tokensCmd) Name() string     { return "tokens" }
func (*tokensCmd) Synopsis() string { return "Print the token stream for an IFJ25 source file" }
func (*tokensCmd) Usage() string {
	return `tokens <file>:
  Scan an IFJ25 source file and print one line per token.
`
}
func (*tokensCmd) SetFlags(f *flag.FlagSet) {}

func (*tokensCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "no source file provided")
		return subcommands.ExitUsageError
	}

	source, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", args[0], err)
		return subcommands.ExitFailure
	}

	ts, err := lexer.Tokenize(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lexical error: %v\n", err)
		return subcommands.ExitFailure
	}

	for tok, ok := ts.First(); ok; tok, ok = ts.Next() {
		fmt.Println(tok.String())
	}
	return subcommands.ExitSuccess
}
