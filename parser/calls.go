package parser

import (
	"github.com/liskarovh/ifj25c/ast"
	"github.com/liskarovh/ifj25c/token"
)

// parseFormalParams implements Params in a function-definition
// context, where each Param must be a plain identifier.
func (p *Parser) parseFormalParams() ([]string, error) {
	if _, err := p.consume(token.LPAREN, "expected '('"); err != nil {
		return nil, err
	}
	var params []string
	if !p.check(token.RPAREN) {
		for {
			nameTok, err := p.consume(token.IDENT, "expected a parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, nameTok.Lexeme)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(token.RPAREN, "expected ')' after the parameter list"); err != nil {
		return nil, err
	}
	return params, nil
}

// parseCallArgs implements Params in a call context, where each Param
// may be any literal or identifier, not a full expression.
func (p *Parser) parseCallArgs() ([]ast.Expression, error) {
	if _, err := p.consume(token.LPAREN, "expected '('"); err != nil {
		return nil, err
	}
	var args []ast.Expression
	if !p.check(token.RPAREN) {
		for {
			arg, err := p.parseCallParam()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(token.RPAREN, "expected ')' after the argument list"); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parseCallParam() (ast.Expression, error) {
	cur := p.current()
	switch cur.Kind {
	case token.INT:
		p.advance()
		return &ast.Literal{Value: cur.Value.(int64)}, nil
	case token.FLOAT:
		p.advance()
		return &ast.Literal{Value: cur.Value.(float64)}, nil
	case token.STRING, token.MLSTRING:
		p.advance()
		return &ast.Literal{Value: cur.Lexeme}, nil
	case token.TRUE:
		p.advance()
		return &ast.Literal{Value: true}, nil
	case token.FALSE:
		p.advance()
		return &ast.Literal{Value: false}, nil
	case token.NULL:
		p.advance()
		return &ast.Literal{Value: nil}, nil
	case token.IDENT, token.GLOBAL_IDENT:
		p.advance()
		return &ast.Identifier{Name: cur.Lexeme, Line: cur.Line, Column: cur.Column}, nil
	default:
		return nil, &SyntaxError{Line: cur.Line, Column: cur.Column, Message: "expected a literal or identifier argument"}
	}
}

// readOperand is the exprparser.ReadOperand this parser supplies: it
// resolves an IDENT or the `Ifj` receiver token into a call expression
// when followed by `(`, or a bare identifier otherwise.
func (p *Parser) readOperand(ts *token.TokenStream) (ast.Expression, error) {
	if p.check(token.IFJ_RECEIVER) {
		receiverTok := p.advance()
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
		return &ast.BuiltinCall{Name: nameTok.Lexeme, Args: args, Line: receiverTok.Line, Column: receiverTok.Column}, nil
	}

	nameTok, err := p.consume(token.IDENT, "expected an identifier")
	if err != nil {
		return nil, err
	}
	if p.check(token.LPAREN) {
		args, err := p.parseCallArgs()
		if err != nil {
			return nil, err
		}
		return &ast.UserCall{Name: nameTok.Lexeme, Args: args, Line: nameTok.Line, Column: nameTok.Column}, nil
	}
	return &ast.Identifier{Name: nameTok.Lexeme, Line: nameTok.Line, Column: nameTok.Column}, nil
}
