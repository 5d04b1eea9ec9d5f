package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/liskarovh/ifj25c/compiler"
)

// compileCmd implements the `compile` subcommand: read a source file,
// run it through the full pipeline, write the IFJcode25 translation to
// stdout.
type compileCmd struct{}

func (*compileCmd) Name() string     { return "compile" }
func (*compileCmd) Synopsis() string { return "Compile an IFJ25 source file to IFJcode25" }
func (*compileCmd) Usage() string {
	return `compile <file>:
  Read an IFJ25 source file and write its IFJcode25 translation to stdout.
`
}
func (*compileCmd) SetFlags(f *flag.FlagSet) {}

func (*compileCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	out, code := compiler.Compile(source)
	if code != compiler.ExitSuccess {
		fmt.Fprintf(os.Stderr, "compilation failed with exit code %d\n", code)
		return subcommands.ExitStatus(code)
	}
	os.Stdout.Write(out)
	return subcommands.ExitStatus(code)
}
