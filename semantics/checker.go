// Package semantics implements the one-pass semantic walk of spec
// §4.7: push a scope frame on entry to a class body, function body,
// loop body, or condition branch; declare locals and check for
// redeclaration; resolve every identifier and call against the scope
// stack and report an undefined reference. It reuses the ast
// visitor interfaces so the walk reads like the AST's own shape
// rather than a hand-rolled switch over node types.
package semantics

import (
	"fmt"

	"github.com/liskarovh/ifj25c/ast"
	"github.com/liskarovh/ifj25c/symtab"
)

// SemanticError reports a semantic violation at a source position
// together with the exit code it maps to (3 undefined, 4
// redefinition, 5 argument count, 6 type mismatch, 10 other).
type SemanticError struct {
	Line    int
	Column  int
	Code    int
	Message string
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("line:%d, column:%d - %s", e.Line, e.Column, e.Message)
}

// Checker walks a Program, threading a scope stack and the first
// error encountered. Visit methods return nil and are only ever
// invoked through acceptStmt/acceptExpr; once err is set, those become no-ops so
// the walk short-circuits without needing every call site to check it.
type Checker struct {
	scopes *symtab.ScopeStack
	err    error

	// loopDepth counts enclosing while loops, so break/continue outside
	// any loop can be rejected.
	loopDepth int
}

// Check runs the semantic pass over prog, returning the first
// SemanticError found, or nil if the program is well-formed.
func Check(prog *ast.Program) error {
	c := &Checker{scopes: symtab.NewScopeStack()}
	defer c.scopes.Dispose()

	for _, class := range prog.Classes {
		c.checkClass(class)
		if c.err != nil {
			return c.err
		}
	}
	return c.err
}

func (c *Checker) fail(line, column, code int, message string) {
	if c.err == nil {
		c.err = &SemanticError{Line: line, Column: column, Code: code, Message: message}
	}
}

// acceptStmt runs s.Accept unless a prior error already short-circuits
// the walk.
func (c *Checker) acceptStmt(s ast.Stmt) {
	if c.err != nil || s == nil {
		return
	}
	s.Accept(c)
}

func (c *Checker) acceptExpr(e ast.Expression) {
	if c.err != nil || e == nil {
		return
	}
	e.Accept(c)
}

func (c *Checker) checkBlock(block *ast.Block) {
	if block == nil {
		return
	}
	for _, stmt := range block.Statements {
		c.acceptStmt(stmt)
		if c.err != nil {
			return
		}
	}
}

// checkClass declares every member of the class up front (so one
// member may forward-reference another defined later in the same
// class) and then walks each member's body in its own frame.
func (c *Checker) checkClass(class *ast.Class) {
	c.scopes.Push()
	defer c.scopes.Pop()

	for _, stmt := range class.Body.Statements {
		switch member := stmt.(type) {
		case *ast.FunctionStmt:
			if !c.scopes.DeclareFunction(member.Name, len(member.Params)) {
				c.fail(member.Line, member.Column, 4, "redefinition of function "+member.Name)
				return
			}
		case *ast.GetterStmt:
			if !c.scopes.DeclareFunction(member.Name, 0) {
				c.fail(member.Line, member.Column, 4, "redefinition of "+member.Name)
				return
			}
		case *ast.SetterStmt:
			if !c.scopes.DeclareFunction(member.Name, 1) {
				c.fail(member.Line, member.Column, 4, "redefinition of "+member.Name)
				return
			}
		}
	}
	if c.err != nil {
		return
	}

	for _, stmt := range class.Body.Statements {
		c.acceptStmt(stmt)
		if c.err != nil {
			return
		}
	}
}

// checkArgs resolves every call argument (each one is a literal or a
// plain identifier, per the call-context Param restriction).
func (c *Checker) checkArgs(args []ast.Expression) {
	for _, arg := range args {
		c.acceptExpr(arg)
		if c.err != nil {
			return
		}
	}
}

// checkCallArity reports an argument-count mismatch (exit 5) if sym is
// a function whose declared arity doesn't match got.
func (c *Checker) checkCallArity(sym *symtab.Symbol, got int, line, column int, name string) {
	if sym.Kind == symtab.KindFunction && sym.Arity != got {
		c.fail(line, column, 5, fmt.Sprintf("%s expects %d argument(s), got %d", name, sym.Arity, got))
	}
}
