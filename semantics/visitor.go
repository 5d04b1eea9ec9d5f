package semantics

import (
	"github.com/liskarovh/ifj25c/ast"
	"github.com/liskarovh/ifj25c/symtab"
	"github.com/liskarovh/ifj25c/token"
)

// withFrame pushes a scope frame, runs fn, and pops it. The frame is
// popped whether or not fn set an error.
func (c *Checker) withFrame(fn func()) {
	c.scopes.Push()
	fn()
	c.scopes.Pop()
}

func (c *Checker) declareVar(name string, line, column int) {
	ok := c.scopes.DeclareLocal(name, symtab.KindVariable, symtab.TypeUnknown, token.IsGlobal(name), false)
	if !ok {
		c.fail(line, column, 4, "redefinition of "+name)
	}
}

func (c *Checker) VisitBlockStmt(s *ast.BlockStmt) any {
	c.withFrame(func() { c.checkBlock(s.Block) })
	return nil
}

func (c *Checker) VisitIfStmt(s *ast.IfStmt) any {
	c.acceptExpr(s.Cond)
	if c.err != nil {
		return nil
	}
	c.withFrame(func() { c.checkBlock(s.Then) })
	if c.err != nil || s.Else == nil {
		return nil
	}
	c.withFrame(func() { c.checkBlock(s.Else) })
	return nil
}

func (c *Checker) VisitWhileStmt(s *ast.WhileStmt) any {
	c.acceptExpr(s.Cond)
	if c.err != nil {
		return nil
	}
	c.loopDepth++
	c.withFrame(func() { c.checkBlock(s.Body) })
	c.loopDepth--
	return nil
}

func (c *Checker) VisitBreakStmt(s *ast.BreakStmt) any {
	if c.loopDepth == 0 {
		c.fail(s.Line, s.Column, 10, "break outside a loop")
	}
	return nil
}

func (c *Checker) VisitContinueStmt(s *ast.ContinueStmt) any {
	if c.loopDepth == 0 {
		c.fail(s.Line, s.Column, 10, "continue outside a loop")
	}
	return nil
}

func (c *Checker) VisitExprStmt(s *ast.ExprStmt) any {
	c.acceptExpr(s.Expression)
	return nil
}

func (c *Checker) VisitVarDeclStmt(s *ast.VarDeclStmt) any {
	c.declareVar(s.Name, s.Line, s.Column)
	return nil
}

func (c *Checker) VisitAssignStmt(s *ast.AssignStmt) any {
	sym, ok := c.scopes.LookupAnywhere(s.Name)
	if !ok {
		c.fail(s.Line, s.Column, 3, "undefined identifier "+s.Name)
		return nil
	}
	sym.Defined = true
	c.acceptExpr(s.Expression)
	return nil
}

func (c *Checker) VisitFunctionStmt(s *ast.FunctionStmt) any {
	c.withFrame(func() {
		for _, param := range s.Params {
			c.scopes.DeclareLocal(param, symtab.KindVariable, symtab.TypeUnknown, token.IsGlobal(param), true)
		}
		c.checkBlock(s.Body)
	})
	return nil
}

func (c *Checker) VisitCallStmt(s *ast.CallStmt) any {
	sym, ok := c.scopes.LookupAnywhere(s.Name)
	if !ok {
		c.fail(s.Line, s.Column, 3, "undefined function "+s.Name)
		return nil
	}
	c.checkCallArity(sym, len(s.Args), s.Line, s.Column, s.Name)
	if c.err != nil {
		return nil
	}
	c.checkArgs(s.Args)
	return nil
}

func (c *Checker) VisitReturnStmt(s *ast.ReturnStmt) any {
	c.acceptExpr(s.Expression)
	return nil
}

func (c *Checker) VisitGetterStmt(s *ast.GetterStmt) any {
	c.withFrame(func() { c.checkBlock(s.Body) })
	return nil
}

func (c *Checker) VisitSetterStmt(s *ast.SetterStmt) any {
	c.withFrame(func() {
		c.scopes.DeclareLocal(s.Param, symtab.KindVariable, symtab.TypeUnknown, token.IsGlobal(s.Param), true)
		c.checkBlock(s.Body)
	})
	return nil
}

// VisitIfjCallStmt only resolves the call's arguments: the builtin
// library's own name/arity set is validated later, by the emitter's
// dispatch table, not by this pass.
func (c *Checker) VisitIfjCallStmt(s *ast.IfjCallStmt) any {
	c.checkArgs(s.Args)
	return nil
}

func (c *Checker) VisitLiteral(l *ast.Literal) any { return nil }

func (c *Checker) VisitIdentifier(i *ast.Identifier) any {
	if _, ok := c.scopes.LookupAnywhere(i.Name); !ok {
		c.fail(i.Line, i.Column, 3, "undefined identifier "+i.Name)
	}
	return nil
}

func (c *Checker) VisitBinary(b *ast.Binary) any {
	c.acceptExpr(b.Left)
	c.acceptExpr(b.Right)
	return nil
}

func (c *Checker) VisitUnary(u *ast.Unary) any {
	c.acceptExpr(u.Right)
	return nil
}

func (c *Checker) VisitBuiltinCall(call *ast.BuiltinCall) any {
	c.checkArgs(call.Args)
	return nil
}

func (c *Checker) VisitUserCall(call *ast.UserCall) any {
	sym, ok := c.scopes.LookupAnywhere(call.Name)
	if !ok {
		c.fail(call.Line, call.Column, 3, "undefined function "+call.Name)
		return nil
	}
	c.checkCallArity(sym, len(call.Args), call.Line, call.Column, call.Name)
	if c.err != nil {
		return nil
	}
	c.checkArgs(call.Args)
	return nil
}
