// Package emitter implements the final compilation stage: a
// depth-first walk of a checked Program that writes IFJcode25 textual
// instructions to an internal buffer. Expression nodes are visited
// with a caller-supplied destination operand (threaded through the
// Emitter's dest field, since ast.ExpressionVisitor's Accept carries
// no extra argument) rather than returning a value, mirroring the
// "generate into GF@tmp_l" phrasing of the target instruction model.
package emitter

import (
	"fmt"

	"github.com/liskarovh/ifj25c/ast"
	"github.com/liskarovh/ifj25c/internal/strbuf"
)

// preambleGlobals are the nine scratch globals the header declares
// once, per spec. tmp_op, tmp_l and tmp_r are declared for fidelity
// with that list but are never written here: a leaf operand of a binary
// operator is used directly, and a nested operand is routed through a
// freshly allocated local (see resolveOperand) since reusing a single
// pair of globals across recursive descent would let an outer pending
// value get overwritten by an inner one in an expression more than one
// level deep.
var preambleGlobals = []string{
	"GF@tmp_if", "GF@tmp_while", "GF@tmp_l", "GF@tmp_r",
	"GF@tmp_op", "GF@tmp_ifj", "GF@tmp1", "GF@tmp2", "GF@fn_ret",
}

// loopLabelPair holds the labels a break/continue inside a while loop
// need: continueLabel re-checks the condition, breakLabel falls out
// past the loop entirely.
type loopLabelPair struct {
	continueLabel string
	breakLabel    string
}

// Emitter walks one checked Program and accumulates IFJcode25 text.
// It is single-use.
type Emitter struct {
	out          *strbuf.Buffer
	labelCounter int
	tempCounter  int
	currentFunc  string

	// dest is the operand the expression currently being visited must
	// write its value into; set by emitExprInto before calling Accept.
	dest string

	// loopLabels is a stack of (continue, break) label pairs, one entry
	// per enclosing while loop, pushed by VisitWhileStmt around its body
	// so a nested break/continue statement jumps to the innermost loop.
	loopLabels []loopLabelPair

	// err holds the first error encountered; once set, line/instr
	// become no-ops so the walk can unwind without guarding every call
	// site, the same first-error-wins shape the semantic pass uses.
	err error
}

// Emit lowers prog into the IFJcode25 instruction text. Emission never
// returns a partial buffer on error: the caller discards the Emitter
// on any non-nil error.
func Emit(prog *ast.Program) ([]byte, error) {
	e := &Emitter{out: strbuf.New(4096)}
	e.line(".IFJcode25")
	for _, g := range preambleGlobals {
		e.line("DEFVAR " + g)
	}
	for _, class := range prog.Classes {
		for _, stmt := range class.Body.Statements {
			e.emitMember(stmt)
			if e.err != nil {
				return nil, e.err
			}
		}
	}
	return e.out.Bytes(), nil
}

func (e *Emitter) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

func (e *Emitter) line(s string) {
	if e.err != nil {
		return
	}
	e.out.AppendString(s)
	e.out.AppendChar('\n')
}

func (e *Emitter) instr(op string, operands ...string) {
	s := op
	for _, o := range operands {
		s += " " + o
	}
	e.line(s)
}

// acceptStmt runs s.Accept unless a prior error already short-circuits
// the walk.
func (e *Emitter) acceptStmt(s ast.Stmt) {
	if e.err != nil || s == nil {
		return
	}
	s.Accept(e)
}

func (e *Emitter) acceptExpr(expr ast.Expression) {
	if e.err != nil || expr == nil {
		return
	}
	expr.Accept(e)
}

func (e *Emitter) emitBlock(block *ast.Block) {
	if block == nil {
		return
	}
	for _, stmt := range block.Statements {
		e.acceptStmt(stmt)
		if e.err != nil {
			return
		}
	}
}

// nextLabel mints a label of the given prefix using a single
// program-wide monotonic counter, so labels never collide across
// functions.
func (e *Emitter) nextLabel(prefix string) string {
	n := e.labelCounter
	e.labelCounter++
	return fmt.Sprintf("%s%d", prefix, n)
}

// pushLoop records the labels a break/continue encountered while
// emitting the loop body should target.
func (e *Emitter) pushLoop(continueLabel, breakLabel string) {
	e.loopLabels = append(e.loopLabels, loopLabelPair{continueLabel, breakLabel})
}

func (e *Emitter) popLoop() {
	e.loopLabels = e.loopLabels[:len(e.loopLabels)-1]
}

// currentLoop returns the innermost enclosing loop's labels, or false
// if break/continue appears outside any loop — unreachable once the
// semantic pass has run, since it already rejects that case.
func (e *Emitter) currentLoop() (loopLabelPair, bool) {
	if len(e.loopLabels) == 0 {
		return loopLabelPair{}, false
	}
	return e.loopLabels[len(e.loopLabels)-1], true
}

// freshTemp declares and returns a new function-local scratch
// variable, used for any sub-expression result that isn't itself a
// leaf (literal or identifier).
func (e *Emitter) freshTemp() string {
	name := fmt.Sprintf("LF@%%t%d", e.tempCounter)
	e.tempCounter++
	e.line("DEFVAR " + name)
	return name
}

// emitExprInto evaluates expr, writing its value into dest.
func (e *Emitter) emitExprInto(expr ast.Expression, dest string) {
	outer := e.dest
	e.dest = dest
	e.acceptExpr(expr)
	e.dest = outer
}

// resolveOperand returns a ready-to-use symb operand for expr: the
// literal/variable form directly for a leaf, or a freshly allocated
// temporary holding the evaluated result for anything else.
func (e *Emitter) resolveOperand(expr ast.Expression) string {
	switch n := expr.(type) {
	case *ast.Literal:
		return literalOperand(n.Value)
	case *ast.Identifier:
		return varOperand(n.Name)
	default:
		tmp := e.freshTemp()
		e.emitExprInto(expr, tmp)
		return tmp
	}
}

func literalOperand(value any) string {
	switch v := value.(type) {
	case nil:
		return "nil@nil"
	case bool:
		return boolOperand(v)
	case int64:
		return intOperand(v)
	case float64:
		return floatOperand(v)
	case string:
		return stringOperand(v)
	default:
		panic(fmt.Sprintf("emitter: literal of unsupported Go type %T", value))
	}
}
