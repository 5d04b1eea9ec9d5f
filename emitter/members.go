package emitter

import "github.com/liskarovh/ifj25c/ast"

// emitMember lowers one class-body member. Only function, getter, and
// setter statements carry executable code; every other statement kind
// the parser would structurally accept at class scope has no
// meaningful lowering and is rejected as an internal error.
func (e *Emitter) emitMember(stmt ast.Stmt) {
	switch m := stmt.(type) {
	case *ast.FunctionStmt:
		e.emitFunction(m.Name, m.Params, m.Body)
	case *ast.GetterStmt:
		e.emitFunction(m.Name, nil, m.Body)
	case *ast.SetterStmt:
		e.emitFunction(m.Name, []string{m.Param}, m.Body)
	default:
		e.fail(&InternalError{Message: "class body contains a statement kind with no code generation"})
	}
}

// emitFunction emits a function: LABEL, a fresh
// frame, formal parameters popped off the argument stack in reverse,
// the body, POPFRAME, and, for main only, a trailing EXIT. A Return
// reached inside main's own body (see VisitReturnStmt) takes this same
// EXIT path instead of RETURN, since nothing ever CALLs main.
func (e *Emitter) emitFunction(name string, params []string, body *ast.Block) {
	outerFunc := e.currentFunc
	e.currentFunc = name
	defer func() { e.currentFunc = outerFunc }()

	e.line("LABEL " + name)
	e.instr("CREATEFRAME")
	e.instr("PUSHFRAME")

	for i := len(params) - 1; i >= 0; i-- {
		operand := varOperand(params[i])
		e.instr("DEFVAR", operand)
		e.instr("POPS", operand)
	}

	e.emitBlock(body)
	if e.err != nil {
		return
	}

	e.instr("POPFRAME")
	if name == "main" {
		e.instr("EXIT", intOperand(0))
	} else {
		e.instr("RETURN")
	}
}
