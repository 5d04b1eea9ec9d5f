// Package parser implements the recursive-descent statement parser of
// the grammar: one recursive entry point per grammar rule, dispatched on
// the current token, consuming tokens only on a successful match. It
// drives exprparser for every Expression production and supplies the
// exprparser.ReadOperand callback so call expressions (`foo(...)`,
// `Ifj.name(...)`) can be resolved without an import cycle between the
// two packages.
package parser

import (
	"github.com/liskarovh/ifj25c/ast"
	"github.com/liskarovh/ifj25c/exprparser"
	"github.com/liskarovh/ifj25c/token"
)

// Parser holds the mutable context the recursive descent threads
// explicitly instead of through package-level globals: the token
// stream cursor and the class currently being built. The "has own
// block" distinction the grammar draws between a construct whose body
// is a required Block (function, loop, branch) and a bare nested
// `{ ... }` statement is resolved structurally instead of through a
// context flag: parseBody is called directly by every construct in
// the former group, while parseStmt's LBRACE case (the latter) wraps
// the parsed block in a BlockStmt itself.
type Parser struct {
	ts           *token.TokenStream
	currentClass string
}

// Parse tokenizes nothing itself; it consumes ts from its current
// position (the caller is expected to have called ts.First()) and
// returns the full program AST.
func Parse(ts *token.TokenStream) (*ast.Program, error) {
	p := &Parser{ts: ts}

	p.skipEOL()
	imp, err := p.parseImport()
	if err != nil {
		return nil, err
	}
	p.skipEOL()

	var classes []*ast.Class
	for p.check(token.CLASS) {
		cls, err := p.parseClass()
		if err != nil {
			return nil, err
		}
		classes = append(classes, cls)
		p.skipEOL()
	}

	if !p.isFinished() {
		cur := p.current()
		return nil, &SyntaxError{Line: cur.Line, Column: cur.Column, Message: "expected a class declaration or end of input"}
	}

	return &ast.Program{Import: imp, Classes: classes}, nil
}

// current returns the token at the active cursor, or a synthetic EOF
// token once the stream is exhausted.
func (p *Parser) current() token.Token {
	cur, ok := p.ts.Current()
	if !ok {
		return token.New(token.EOF, 0, 0)
	}
	return cur
}

func (p *Parser) isFinished() bool {
	return p.current().Kind == token.EOF
}

func (p *Parser) check(kind token.Kind) bool {
	return p.current().Kind == kind
}

// advance consumes the current token and returns it.
func (p *Parser) advance() token.Token {
	cur := p.current()
	p.ts.Next()
	return cur
}

func (p *Parser) match(kind token.Kind) bool {
	if !p.check(kind) {
		return false
	}
	p.advance()
	return true
}

// consume requires the current token to have the given kind, advances
// past it, and returns it; otherwise it reports msg as a syntax error.
func (p *Parser) consume(kind token.Kind, msg string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	cur := p.current()
	return token.Token{}, &SyntaxError{Line: cur.Line, Column: cur.Column, Message: msg}
}

func (p *Parser) skipEOL() {
	for p.match(token.EOL) {
	}
}

// parseExpression hands the cursor to exprparser, supplying this
// parser's own call-expression resolution as the operand callback.
func (p *Parser) parseExpression() (ast.Expression, error) {
	return exprparser.Parse(p.ts, p.readOperand)
}

func (p *Parser) parseImport() (*ast.Import, error) {
	if !p.check(token.IMPORT) {
		cur := p.current()
		return nil, &SyntaxError{Line: cur.Line, Column: cur.Column, Message: "expected 'import \"ifj25\" for Ifj'"}
	}
	p.advance()

	pathTok, err := p.consume(token.STRING, "expected the import path string after 'import'")
	if err != nil {
		return nil, err
	}
	if pathTok.Lexeme != "ifj25" {
		return nil, &SyntaxError{Line: pathTok.Line, Column: pathTok.Column, Message: "import path must be \"ifj25\""}
	}

	if _, err := p.consume(token.FOR, "expected 'for' after the import path"); err != nil {
		return nil, err
	}

	aliasTok, err := p.consume(token.IFJ_RECEIVER, "import alias must be exactly 'Ifj'")
	if err != nil {
		return nil, err
	}

	return &ast.Import{Path: pathTok.Lexeme, Alias: aliasTok.Lexeme}, nil
}

func (p *Parser) parseClass() (*ast.Class, error) {
	if _, err := p.consume(token.CLASS, "expected 'class'"); err != nil {
		return nil, err
	}
	nameTok, err := p.consume(token.IDENT, "expected a class name after 'class'")
	if err != nil {
		return nil, err
	}

	outerClass := p.currentClass
	p.currentClass = nameTok.Lexeme
	defer func() { p.currentClass = outerClass }()

	body, err := p.parseBody(nil)
	if err != nil {
		return nil, err
	}
	return &ast.Class{Name: nameTok.Lexeme, Body: body}, nil
}

// parseBody implements `Body → "{" EOL Stmt* "}"`. It is used directly
// by every construct whose Body field is typed *ast.Block
// (class/function/getter/setter/if/while), so those never go through
// the generic statement dispatch and never risk the "spurious nested
// block" the has_own_block flag guards against in the source compiler.
func (p *Parser) parseBody(parent *ast.Block) (*ast.Block, error) {
	if _, err := p.consume(token.LBRACE, "expected '{'"); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.EOL, "expected end of line after '{'"); err != nil {
		return nil, err
	}

	block := &ast.Block{Parent: parent}
	for {
		p.skipEOL()
		if p.match(token.RBRACE) {
			break
		}
		if p.isFinished() {
			cur := p.current()
			return nil, &SyntaxError{Line: cur.Line, Column: cur.Column, Message: "expected '}' before end of input"}
		}
		stmts, err := p.parseStmt(block)
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmts...)
	}
	return block, nil
}
