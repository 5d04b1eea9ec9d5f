package emitter

import "github.com/liskarovh/ifj25c/ast"

func (e *Emitter) VisitLiteral(l *ast.Literal) any {
	e.instr("MOVE", e.dest, literalOperand(l.Value))
	return nil
}

func (e *Emitter) VisitIdentifier(i *ast.Identifier) any {
	e.instr("MOVE", e.dest, varOperand(i.Name))
	return nil
}

// VisitBinary lowers a binary expression: each
// operand is resolved (recursing only when it isn't already a leaf),
// then the operator's instruction(s) write into the destination the
// caller supplied via emitExprInto. `<=`/`>=`/`!=` have no direct VM
// instruction and are synthesized from LT/GT/EQ plus NOT/OR, using the
// dedicated GF@tmp1/GF@tmp2 scratch pair reserved for exactly
// this purpose. `is` is accepted by the parser and the semantic pass
// but has no target instruction at all, so reaching it here is an
// internal error.
func (e *Emitter) VisitBinary(b *ast.Binary) any {
	dest := e.dest
	left := e.resolveOperand(b.Left)
	if e.err != nil {
		return nil
	}
	right := e.resolveOperand(b.Right)
	if e.err != nil {
		return nil
	}

	switch b.Operator {
	case ast.OpAdd:
		e.instr("ADD", dest, left, right)
	case ast.OpSub:
		e.instr("SUB", dest, left, right)
	case ast.OpMul:
		e.instr("MUL", dest, left, right)
	case ast.OpDiv:
		e.instr("DIV", dest, left, right)
	case ast.OpLt:
		e.instr("LT", dest, left, right)
	case ast.OpGt:
		e.instr("GT", dest, left, right)
	case ast.OpEq:
		e.instr("EQ", dest, left, right)
	case ast.OpLe:
		e.instr("LT", "GF@tmp1", left, right)
		e.instr("EQ", "GF@tmp2", left, right)
		e.instr("OR", dest, "GF@tmp1", "GF@tmp2")
	case ast.OpGe:
		e.instr("GT", "GF@tmp1", left, right)
		e.instr("EQ", "GF@tmp2", left, right)
		e.instr("OR", dest, "GF@tmp1", "GF@tmp2")
	case ast.OpNeq:
		e.instr("EQ", "GF@tmp1", left, right)
		e.instr("NOT", dest, "GF@tmp1")
	case ast.OpIs:
		e.fail(&InternalError{Message: "'is' has no IFJcode25 instruction"})
	default:
		e.fail(&InternalError{Message: "unknown binary operator " + string(b.Operator)})
	}
	return nil
}

func (e *Emitter) VisitUnary(u *ast.Unary) any {
	dest := e.dest
	right := e.resolveOperand(u.Right)
	if e.err != nil {
		return nil
	}
	e.instr("NOT", dest, right)
	return nil
}

func (e *Emitter) VisitBuiltinCall(call *ast.BuiltinCall) any {
	e.emitBuiltinCall(call.Name, call.Args, e.dest, call.Line, call.Column)
	return nil
}

func (e *Emitter) VisitUserCall(call *ast.UserCall) any {
	e.emitUserCall(call.Name, call.Args, e.dest)
	return nil
}
