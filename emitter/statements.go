package emitter

import (
	"fmt"

	"github.com/liskarovh/ifj25c/ast"
)

func (e *Emitter) VisitBlockStmt(s *ast.BlockStmt) any {
	e.emitBlock(s.Block)
	return nil
}

// VisitIfStmt lowers an if statement. With no else branch,
// else_label and end_label are the same label and only one JUMPIFEQ is
// needed.
func (e *Emitter) VisitIfStmt(s *ast.IfStmt) any {
	n := e.labelCounter
	e.labelCounter++
	condLabel := labelName("conditionEnd", n)
	endLabel := labelName("ifEnd", n)

	e.emitExprInto(s.Cond, "GF@tmp_if")
	if e.err != nil {
		return nil
	}

	if s.Else == nil {
		e.instr("JUMPIFEQ", endLabel, "GF@tmp_if", "bool@false")
		e.emitBlock(s.Then)
		if e.err != nil {
			return nil
		}
		e.line("LABEL " + endLabel)
		return nil
	}

	e.instr("JUMPIFEQ", condLabel, "GF@tmp_if", "bool@false")
	e.emitBlock(s.Then)
	if e.err != nil {
		return nil
	}
	e.instr("JUMP", endLabel)
	e.line("LABEL " + condLabel)
	e.emitBlock(s.Else)
	if e.err != nil {
		return nil
	}
	e.line("LABEL " + endLabel)
	return nil
}

// VisitWhileStmt lowers a while loop: the condition is
// evaluated once before the loop to skip it entirely when false, and
// again at the bottom to decide whether to jump back. retestLabel is
// where a `continue` inside the body jumps to re-run the condition
// check; endLabel is where a `break` jumps to leave the loop.
func (e *Emitter) VisitWhileStmt(s *ast.WhileStmt) any {
	n := e.labelCounter
	e.labelCounter++
	startLabel := labelName("whileStart", n)
	retestLabel := labelName("whileRetest", n)
	endLabel := labelName("whileEnd", n)

	e.emitExprInto(s.Cond, "GF@tmp_while")
	if e.err != nil {
		return nil
	}
	e.instr("JUMPIFEQ", endLabel, "GF@tmp_while", "bool@false")
	e.line("LABEL " + startLabel)

	e.pushLoop(retestLabel, endLabel)
	e.emitBlock(s.Body)
	e.popLoop()
	if e.err != nil {
		return nil
	}

	e.line("LABEL " + retestLabel)
	e.emitExprInto(s.Cond, "GF@tmp_while")
	if e.err != nil {
		return nil
	}
	e.instr("JUMPIFNEQ", startLabel, "GF@tmp_while", "bool@false")
	e.line("LABEL " + endLabel)
	return nil
}

// VisitBreakStmt jumps past the innermost enclosing loop. The
// semantic pass already rejects a break outside any loop, so
// currentLoop always succeeds here.
func (e *Emitter) VisitBreakStmt(s *ast.BreakStmt) any {
	loop, ok := e.currentLoop()
	if !ok {
		e.fail(&InternalError{Message: "break outside a loop reached the emitter"})
		return nil
	}
	e.instr("JUMP", loop.breakLabel)
	return nil
}

// VisitContinueStmt jumps to the innermost enclosing loop's condition
// re-check.
func (e *Emitter) VisitContinueStmt(s *ast.ContinueStmt) any {
	loop, ok := e.currentLoop()
	if !ok {
		e.fail(&InternalError{Message: "continue outside a loop reached the emitter"})
		return nil
	}
	e.instr("JUMP", loop.continueLabel)
	return nil
}

func (e *Emitter) VisitExprStmt(s *ast.ExprStmt) any {
	e.emitExprInto(s.Expression, "GF@tmp_ifj")
	return nil
}

func (e *Emitter) VisitVarDeclStmt(s *ast.VarDeclStmt) any {
	e.instr("DEFVAR", varOperand(s.Name))
	return nil
}

func (e *Emitter) VisitAssignStmt(s *ast.AssignStmt) any {
	e.emitExprInto(s.Expression, varOperand(s.Name))
	return nil
}

// VisitFunctionStmt only reaches here for a function nested inside
// another function's body, which the grammar never produces; class-
// level functions are lowered by emitMember/emitFunction directly.
func (e *Emitter) VisitFunctionStmt(s *ast.FunctionStmt) any {
	e.fail(&InternalError{Message: "nested function definition has no IFJcode25 lowering"})
	return nil
}

func (e *Emitter) VisitCallStmt(s *ast.CallStmt) any {
	e.emitUserCall(s.Name, s.Args, "")
	return nil
}

// VisitReturnStmt lowers a return statement. Inside main,
// there is no caller to RETURN to, so a return there takes the same
// EXIT path the function's own fall-through end does.
func (e *Emitter) VisitReturnStmt(s *ast.ReturnStmt) any {
	if s.Expression != nil {
		e.emitExprInto(s.Expression, "GF@fn_ret")
		if e.err != nil {
			return nil
		}
	}
	e.instr("POPFRAME")
	if e.currentFunc == "main" {
		e.instr("EXIT", intOperand(0))
	} else {
		e.instr("RETURN")
	}
	return nil
}

func (e *Emitter) VisitGetterStmt(s *ast.GetterStmt) any {
	e.fail(&InternalError{Message: "nested getter definition has no IFJcode25 lowering"})
	return nil
}

func (e *Emitter) VisitSetterStmt(s *ast.SetterStmt) any {
	e.fail(&InternalError{Message: "nested setter definition has no IFJcode25 lowering"})
	return nil
}

func (e *Emitter) VisitIfjCallStmt(s *ast.IfjCallStmt) any {
	e.emitBuiltinCall(s.Name, s.Args, "GF@tmp_ifj", s.Line, s.Column)
	return nil
}

func labelName(prefix string, n int) string {
	return fmt.Sprintf("%s%d", prefix, n)
}
