package emitter

import (
	"fmt"

	"github.com/liskarovh/ifj25c/ast"
	"github.com/liskarovh/ifj25c/semantics"
)

// callArgOperand renders a call argument directly, without emitting
// any instruction: the grammar restricts a call-context Param to a
// literal or a plain identifier, so no argument ever needs its own
// evaluation step.
func (e *Emitter) callArgOperand(arg ast.Expression) string {
	switch a := arg.(type) {
	case *ast.Literal:
		return literalOperand(a.Value)
	case *ast.Identifier:
		return varOperand(a.Name)
	default:
		e.fail(&InternalError{Message: "call argument is neither a literal nor an identifier"})
		return ""
	}
}

// emitUserCall pushes every argument in source order, calls, and, if
// the result is wanted (dest != ""),
// copy GF@fn_ret into it immediately, before anything else can
// overwrite that single shared slot.
func (e *Emitter) emitUserCall(name string, args []ast.Expression, dest string) {
	for _, arg := range args {
		operand := e.callArgOperand(arg)
		if e.err != nil {
			return
		}
		e.instr("PUSHS", operand)
	}
	e.instr("CALL", name)
	if dest != "" {
		e.instr("MOVE", dest, "GF@fn_ret")
	}
}

// emitBuiltinCall dispatches Ifj.name(args); the implemented set is
// exactly the eight names below. `chr` and `substring` are mentioned
// elsewhere as intended but never implemented, so they (and any other
// unrecognized name) are rejected the same as an undefined function.
// An implemented name called with the wrong number of arguments is
// rejected as a call-arity error rather than silently reading a
// missing argument.
func (e *Emitter) emitBuiltinCall(name string, args []ast.Expression, dest string, line, column int) {
	arity := func(want int) bool {
		if len(args) != want {
			e.fail(&semantics.SemanticError{
				Line: line, Column: column, Code: 5,
				Message: fmt.Sprintf("Ifj.%s expects %d argument(s), got %d", name, want, len(args)),
			})
			return false
		}
		return true
	}
	operand := func(i int) string { return e.callArgOperand(args[i]) }

	switch name {
	case "write":
		for _, arg := range args {
			o := e.callArgOperand(arg)
			if e.err != nil {
				return
			}
			e.instr("WRITE", o)
		}
	case "length":
		if !arity(1) {
			return
		}
		e.instr("STRLEN", dest, operand(0))
	case "floor":
		if !arity(1) {
			return
		}
		e.instr("FLOAT2INT", dest, operand(0))
	case "str":
		if !arity(1) {
			return
		}
		e.instr("FLOAT2CHAR", dest, operand(0))
	case "ord":
		if !arity(2) {
			return
		}
		e.instr("GETCHAR", "GF@tmp_ifj", operand(0), operand(1))
		e.instr("STRING2INT", dest, "GF@tmp_ifj")
	case "read_num":
		if !arity(0) {
			return
		}
		e.instr("READ", dest, "float")
	case "read_str":
		if !arity(0) {
			return
		}
		e.instr("READ", dest, "string")
	case "strcmp":
		if !arity(2) {
			return
		}
		e.instr("EQ", dest, operand(0), operand(1))
	default:
		e.fail(&semantics.SemanticError{
			Line: line, Column: column, Code: 3,
			Message: "undefined builtin Ifj." + name,
		})
	}
}
