package parser

import (
	"github.com/liskarovh/ifj25c/ast"
	"github.com/liskarovh/ifj25c/token"
)

// parseStmt dispatches on the current token and returns the one or
// more ast.Stmt nodes it produces (VarDecl with an initializer
// desugars into two: a VarDeclStmt followed by an AssignStmt).
func (p *Parser) parseStmt(enclosing *ast.Block) ([]ast.Stmt, error) {
	switch p.current().Kind {
	case token.STATIC:
		stmt, err := p.parseStaticMember()
		return one(stmt, err)
	case token.VAR:
		return p.parseVarDecl()
	case token.IFJ_RECEIVER:
		stmt, err := p.parseIfjCallStmt()
		return one(stmt, err)
	case token.IDENT:
		stmt, err := p.parseIdentStmt()
		return one(stmt, err)
	case token.IF:
		stmt, err := p.parseIf(enclosing)
		return one(stmt, err)
	case token.WHILE:
		stmt, err := p.parseWhile(enclosing)
		return one(stmt, err)
	case token.BREAK:
		tok := p.current()
		p.advance()
		return []ast.Stmt{&ast.BreakStmt{Line: tok.Line, Column: tok.Column}}, nil
	case token.CONTINUE:
		tok := p.current()
		p.advance()
		return []ast.Stmt{&ast.ContinueStmt{Line: tok.Line, Column: tok.Column}}, nil
	case token.RETURN:
		stmt, err := p.parseReturn()
		return one(stmt, err)
	case token.LBRACE:
		nested, err := p.parseBody(enclosing)
		if err != nil {
			return nil, err
		}
		return []ast.Stmt{&ast.BlockStmt{Block: nested}}, nil
	default:
		cur := p.current()
		return nil, &SyntaxError{Line: cur.Line, Column: cur.Column, Message: "unexpected token " + string(cur.Kind) + ", expected a statement"}
	}
}

func one(stmt ast.Stmt, err error) ([]ast.Stmt, error) {
	if err != nil {
		return nil, err
	}
	return []ast.Stmt{stmt}, nil
}

// parseStaticMember disambiguates the three `static` forms by a
// one-token lookahead after `static IDENT`: `(` is a function
// definition, `{` is a getter, `=` is a setter.
func (p *Parser) parseStaticMember() (ast.Stmt, error) {
	p.advance() // 'static'
	nameTok, err := p.consume(token.IDENT, "expected a member name after 'static'")
	if err != nil {
		return nil, err
	}

	switch p.current().Kind {
	case token.LBRACE:
		body, err := p.parseBody(nil)
		if err != nil {
			return nil, err
		}
		return &ast.GetterStmt{Name: nameTok.Lexeme, Body: body, Line: nameTok.Line, Column: nameTok.Column}, nil

	case token.ASSIGN:
		p.advance()
		if _, err := p.consume(token.LPAREN, "expected '(' after '=' in a setter definition"); err != nil {
			return nil, err
		}
		paramTok, err := p.consume(token.IDENT, "expected the setter parameter name")
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RPAREN, "expected ')' after the setter parameter"); err != nil {
			return nil, err
		}
		body, err := p.parseBody(nil)
		if err != nil {
			return nil, err
		}
		return &ast.SetterStmt{Name: nameTok.Lexeme, Param: paramTok.Lexeme, Body: body, Line: nameTok.Line, Column: nameTok.Column}, nil

	case token.LPAREN:
		params, err := p.parseFormalParams()
		if err != nil {
			return nil, err
		}
		body, err := p.parseBody(nil)
		if err != nil {
			return nil, err
		}
		return &ast.FunctionStmt{Name: nameTok.Lexeme, Params: params, Body: body, Line: nameTok.Line, Column: nameTok.Column}, nil

	default:
		cur := p.current()
		return nil, &SyntaxError{Line: cur.Line, Column: cur.Column, Message: "expected '(', '=', or '{' after a static member name"}
	}
}

func (p *Parser) parseVarDecl() ([]ast.Stmt, error) {
	p.advance() // 'var'
	nameTok, err := p.consume(token.IDENT, "expected a variable name after 'var'")
	if err != nil {
		return nil, err
	}
	decl := &ast.VarDeclStmt{Name: nameTok.Lexeme, Line: nameTok.Line, Column: nameTok.Column}

	if !p.match(token.ASSIGN) {
		return []ast.Stmt{decl}, nil
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	assign := &ast.AssignStmt{Name: nameTok.Lexeme, Expression: expr, Line: nameTok.Line, Column: nameTok.Column}
	return []ast.Stmt{decl, assign}, nil
}

// parseIdentStmt resolves the two statement-level identifier forms by
// consuming the name and then looking at what follows it: `=` is an
// assignment, `(` is a call statement.
func (p *Parser) parseIdentStmt() (ast.Stmt, error) {
	nameTok := p.advance()
	switch p.current().Kind {
	case token.ASSIGN:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.AssignStmt{Name: nameTok.Lexeme, Expression: expr, Line: nameTok.Line, Column: nameTok.Column}, nil
	case token.LPAREN:
		args, err := p.parseCallArgs()
		if err != nil {
			return nil, err
		}
		return &ast.CallStmt{Name: nameTok.Lexeme, Args: args, Line: nameTok.Line, Column: nameTok.Column}, nil
	default:
		cur := p.current()
		return nil, &SyntaxError{Line: cur.Line, Column: cur.Column, Message: "expected '=' or '(' after an identifier"}
	}
}

func (p *Parser) parseIfjCallStmt() (ast.Stmt, error) {
	receiverTok := p.advance() // 'Ifj'
	if _, err := p.consume(token.DOT, "expected '.' after 'Ifj'"); err != nil {
		return nil, err
	}
	nameTok, err := p.consume(token.IDENT, "expected a builtin name after 'Ifj.'")
	if err != nil {
		return nil, err
	}
	args, err := p.parseCallArgs()
	if err != nil {
		return nil, err
	}
	return &ast.IfjCallStmt{Name: nameTok.Lexeme, Args: args, Line: receiverTok.Line, Column: receiverTok.Column}, nil
}

func (p *Parser) parseIf(enclosing *ast.Block) (ast.Stmt, error) {
	p.advance() // 'if'
	if _, err := p.consume(token.LPAREN, "expected '(' after 'if'"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RPAREN, "expected ')' after the if condition"); err != nil {
		return nil, err
	}
	then, err := p.parseBody(enclosing)
	if err != nil {
		return nil, err
	}
	stmt := &ast.IfStmt{Cond: cond, Then: then}

	if p.check(token.ELSE) {
		p.advance()
		elseBlock, err := p.parseBody(enclosing)
		if err != nil {
			return nil, err
		}
		stmt.Else = elseBlock
	}
	return stmt, nil
}

func (p *Parser) parseWhile(enclosing *ast.Block) (ast.Stmt, error) {
	p.advance() // 'while'
	if _, err := p.consume(token.LPAREN, "expected '(' after 'while'"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RPAREN, "expected ')' after the while condition"); err != nil {
		return nil, err
	}
	body, err := p.parseBody(enclosing)
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Cond: cond, Body: body}, nil
}

// parseReturn allows a bare `return` when the next token cannot start
// an expression: end of line, the closing brace of the enclosing
// body, or end of input.
func (p *Parser) parseReturn() (ast.Stmt, error) {
	p.advance() // 'return'
	switch p.current().Kind {
	case token.EOL, token.RBRACE, token.EOF:
		return &ast.ReturnStmt{}, nil
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Expression: expr}, nil
}
