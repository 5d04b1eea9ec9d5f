// Package compiler glues the scanner, parser, semantic pass, and
// emitter into the single entry point the driver commands call,
// mapping each stage's typed error onto the process exit code it is
// assigned. The pipeline is kept as one function (Compile) that a
// cmd_*.go file calls and checks the returned exit code of.
package compiler

import (
	"github.com/liskarovh/ifj25c/ast"
	"github.com/liskarovh/ifj25c/emitter"
	"github.com/liskarovh/ifj25c/lexer"
	"github.com/liskarovh/ifj25c/parser"
	"github.com/liskarovh/ifj25c/semantics"
)

// Process exit codes for each compilation outcome.
const (
	ExitSuccess          = 0
	ExitLexical          = 1
	ExitSyntax           = 2
	ExitUndefined        = 3
	ExitRedefinition     = 4
	ExitArgumentCount    = 5
	ExitTypeMismatch     = 6
	ExitOtherSemantic    = 10
	ExitRuntimeParamType = 25
	ExitRuntimeExprType  = 26
	ExitInternal         = 99
)

// Compile runs the full pipeline over source. On success it returns
// the emitted IFJcode25 text and exit code 0. On any error it returns
// a nil slice — partial output, including the header, is never
// surfaced to the caller — and the exit code assigned to that error's
// category.
func Compile(source []byte) ([]byte, int) {
	ts, err := lexer.Tokenize(source)
	if err != nil {
		return nil, ExitLexical
	}
	ts.First()

	prog, err := parser.Parse(ts)
	if err != nil {
		return nil, ExitSyntax
	}

	if err := semantics.Check(prog); err != nil {
		return nil, exitCodeForSemanticError(err)
	}

	out, err := emitProgram(prog)
	if err != nil {
		return nil, exitCodeForEmitError(err)
	}
	return out, ExitSuccess
}

func emitProgram(prog *ast.Program) ([]byte, error) {
	return emitter.Emit(prog)
}

func exitCodeForSemanticError(err error) int {
	if se, ok := err.(*semantics.SemanticError); ok {
		return se.Code
	}
	return ExitOtherSemantic
}

func exitCodeForEmitError(err error) int {
	switch e := err.(type) {
	case *semantics.SemanticError:
		return e.Code
	case *emitter.InternalError:
		return ExitInternal
	default:
		return ExitInternal
	}
}
