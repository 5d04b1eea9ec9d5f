package exprparser

import (
	"fmt"

	"github.com/liskarovh/ifj25c/ast"
	"github.com/liskarovh/ifj25c/token"
)

// SyntaxError reports a malformed expression at a source position.
type SyntaxError struct {
	Line    int
	Column  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line:%d, column:%d - %s", e.Line, e.Column, e.Message)
}

// ReadOperand parses a full operand that begins at an IDENT or the
// `Ifj` receiver token: either a bare identifier reference or a call
// expression (builtin or user-defined), consuming exactly the tokens
// that belong to it and leaving the stream cursor on the token that
// follows. The parser package supplies this callback so exprparser
// never needs to know the call grammar itself, avoiding an import
// cycle between the statement parser and the expression parser.
type ReadOperand func(ts *token.TokenStream) (ast.Expression, error)

// stackItem is one entry of the reducing symbol stack: either a
// terminal (with the token Kind that distinguishes which operator it
// is) or an already-reduced expression.
type stackItem struct {
	isExpr bool
	expr   ast.Expression
	term   Terminal
	kind   token.Kind
	line   int
	column int
}

func tokenTerminal(kind token.Kind) (Terminal, bool) {
	switch kind {
	case token.STAR, token.SLASH:
		return MULDIV, true
	case token.PLUS, token.MINUS:
		return ADDSUB, true
	case token.LT, token.LE, token.GT, token.GE:
		return REL, true
	case token.IS:
		return IS, true
	case token.EQ, token.NEQ:
		return EQNEQ, true
	case token.LPAREN:
		return LPAREN, true
	case token.RPAREN:
		return RPAREN, true
	default:
		return END, false
	}
}

func isDataKind(kind token.Kind) bool {
	switch kind {
	case token.INT, token.FLOAT, token.STRING, token.MLSTRING,
		token.TRUE, token.FALSE, token.NULL, token.IDENT,
		token.GLOBAL_IDENT, token.IFJ_RECEIVER, token.BANG:
		return true
	default:
		return false
	}
}

func binaryOpFor(kind token.Kind) ast.BinaryOp {
	switch kind {
	case token.PLUS:
		return ast.OpAdd
	case token.MINUS:
		return ast.OpSub
	case token.STAR:
		return ast.OpMul
	case token.SLASH:
		return ast.OpDiv
	case token.LT:
		return ast.OpLt
	case token.LE:
		return ast.OpLe
	case token.GT:
		return ast.OpGt
	case token.GE:
		return ast.OpGe
	case token.EQ:
		return ast.OpEq
	case token.NEQ:
		return ast.OpNeq
	case token.IS:
		return ast.OpIs
	}
	panic("exprparser: binaryOpFor called with a non-operator token kind")
}

// parseOperand consumes one "data" terminal: a literal, a plain
// identifier, or (via readOperand) a call expression.
func parseOperand(ts *token.TokenStream, readOperand ReadOperand) (ast.Expression, error) {
	cur, ok := ts.Current()
	if !ok {
		return nil, &SyntaxError{Message: "expected an operand, found end of input"}
	}
	switch cur.Kind {
	case token.BANG:
		ts.Next()
		right, err := parseOperand(ts, readOperand)
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Right: right}, nil
	case token.INT:
		ts.Next()
		return &ast.Literal{Value: cur.Value.(int64)}, nil
	case token.FLOAT:
		ts.Next()
		return &ast.Literal{Value: cur.Value.(float64)}, nil
	case token.STRING, token.MLSTRING:
		ts.Next()
		return &ast.Literal{Value: cur.Lexeme}, nil
	case token.TRUE:
		ts.Next()
		return &ast.Literal{Value: true}, nil
	case token.FALSE:
		ts.Next()
		return &ast.Literal{Value: false}, nil
	case token.NULL:
		ts.Next()
		return &ast.Literal{Value: nil}, nil
	case token.GLOBAL_IDENT:
		ts.Next()
		return &ast.Identifier{Name: cur.Lexeme, Line: cur.Line, Column: cur.Column}, nil
	case token.IDENT, token.IFJ_RECEIVER:
		return readOperand(ts)
	default:
		return nil, &SyntaxError{Line: cur.Line, Column: cur.Column, Message: "expected an operand"}
	}
}

func skipEOL(ts *token.TokenStream) {
	for {
		cur, ok := ts.Current()
		if !ok || cur.Kind != token.EOL {
			return
		}
		ts.Next()
	}
}

func topTerminal(stack []stackItem) Terminal {
	for i := len(stack) - 1; i >= 0; i-- {
		if !stack[i].isExpr {
			return stack[i].term
		}
	}
	return END
}

// reduce pops the longest matching production off the top of the
// stack and pushes the resulting expression: `E -> (E)` or
// `E -> E op E`.
func reduce(stack *[]stackItem) error {
	s := *stack
	n := len(s)

	if n >= 3 && !s[n-3].isExpr && s[n-3].term == LPAREN &&
		s[n-2].isExpr &&
		!s[n-1].isExpr && s[n-1].term == RPAREN {
		inner := s[n-2].expr
		*stack = append(s[:n-3], stackItem{isExpr: true, expr: inner})
		return nil
	}

	if n >= 3 && s[n-3].isExpr && !s[n-2].isExpr && isOperator(s[n-2].term) && s[n-1].isExpr {
		left := s[n-3].expr
		right := s[n-1].expr
		op := binaryOpFor(s[n-2].kind)
		*stack = append(s[:n-3], stackItem{isExpr: true, expr: &ast.Binary{Left: left, Operator: op, Right: right}})
		return nil
	}

	line, column := 0, 0
	if n > 0 {
		line, column = s[n-1].line, s[n-1].column
	}
	return &SyntaxError{Line: line, Column: column, Message: "no expression production matches"}
}

// Parse drives the shift/reduce/match algorithm starting
// at the token stream's current active token, returning the single
// reduced expression. It leaves the cursor positioned at the first
// token that is not part of the expression (end of input, the
// matching `)` of an enclosing, non-expression context, a comma in an
// argument list, or a statement-terminating EOL).
func Parse(ts *token.TokenStream, readOperand ReadOperand) (ast.Expression, error) {
	stack := []stackItem{{term: END}}

	for {
		fullyReduced := len(stack) == 2 && stack[1].isExpr

		if !fullyReduced {
			// After a complete operand (an expression or a closing
			// parenthesis), EOLs are skipped only when the next non-EOL
			// token continues the expression; otherwise the EOL ends it.
			last := stack[len(stack)-1]
			operandDone := last.isExpr || last.term == RPAREN
			if _, continues := tokenTerminal(ts.PeekKindIgnoringEOL()); !operandDone || continues {
				skipEOL(ts)
			}
		}

		cur, ok := ts.Current()
		var inTerm Terminal
		var inKind token.Kind
		var inExpr ast.Expression
		var inLine, inColumn int

		if !ok || cur.Kind == token.EOF {
			inTerm = END
		} else if t, isOp := tokenTerminal(cur.Kind); isOp {
			inTerm = t
			inKind = cur.Kind
			inLine, inColumn = cur.Line, cur.Column
		} else if isDataKind(cur.Kind) {
			inTerm = DATA
			inLine, inColumn = cur.Line, cur.Column
		} else {
			inTerm = END
		}

		if fullyReduced && (inTerm == END || inTerm == RPAREN) {
			return stack[1].expr, nil
		}

		top := topTerminal(stack)
		rel := table[top][inTerm]

		switch rel {
		case relShift, relMatch:
			if inTerm == DATA {
				expr, err := parseOperand(ts, readOperand)
				if err != nil {
					return nil, err
				}
				inExpr = expr
				stack = append(stack, stackItem{isExpr: true, expr: inExpr})
			} else {
				ts.Next()
				stack = append(stack, stackItem{term: inTerm, kind: inKind, line: inLine, column: inColumn})
			}
		case relReduce:
			if err := reduce(&stack); err != nil {
				return nil, err
			}
		default:
			line, column := inLine, inColumn
			if cur0, ok0 := ts.Current(); ok0 {
				line, column = cur0.Line, cur0.Column
			}
			return nil, &SyntaxError{Line: line, Column: column, Message: "malformed expression"}
		}
	}
}
