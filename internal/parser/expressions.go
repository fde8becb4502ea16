package parser

import (
	"fmt"
	"strconv"

	"github.com/quackscript/quack/internal/ast"
	"github.com/quackscript/quack/pkg/token"
)

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.cur().Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) parseExpression(minPrec int) (ast.Expression, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		prec, ok := precedences[p.cur().Type]
		if !ok || prec <= minPrec {
			break
		}
		if p.cur().Type == token.DOT {
			left, err = p.parseAccessor(left)
			if err != nil {
				return nil, err
			}
			continue
		}
		op := p.advance()
		right, err := p.parseExpression(prec)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Operator: op.Literal, Left: left, Right: right, Position: op.Pos}
	}
	return left, nil
}

func (p *Parser) parseAccessor(receiver ast.Expression) (ast.Expression, error) {
	pos := p.cur().Pos
	p.advance() // .
	name, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	var selector ast.Expression
	if p.cur().Type == token.LPARENC {
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		selector = &ast.FuncCall{Identifier: name.Literal, Args: args, Position: name.Pos}
	} else {
		selector = &ast.Identifier{Name: name.Literal, Position: name.Pos}
	}
	return &ast.AccessorExpression{Receiver: receiver, Selector: selector, Position: pos}, nil
}

func (p *Parser) parseArgs() ([]ast.Expression, error) {
	if _, err := p.expect(token.LPARENC); err != nil {
		return nil, err
	}
	var args []ast.Expression
	for p.cur().Type != token.RPARENC {
		arg, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.cur().Type == token.COMMA {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RPARENC); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.cur()
	switch tok.Type {
	case token.NUMBER:
		p.advance()
		v, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, fmt.Errorf("SyntaxError at %s: invalid number %q", tok.Pos, tok.Literal)
		}
		return &ast.NumberLiteral{Value: v, Position: tok.Pos}, nil
	case token.STRING:
		p.advance()
		return &ast.TextLiteral{Value: tok.Literal, Position: tok.Pos}, nil
	case token.TRUE:
		p.advance()
		return &ast.BooleanLiteral{Value: true, Position: tok.Pos}, nil
	case token.FALSE:
		p.advance()
		return &ast.BooleanLiteral{Value: false, Position: tok.Pos}, nil
	case token.NOTHING:
		p.advance()
		return &ast.NothingLiteral{Position: tok.Pos}, nil
	case token.LPARENC:
		return p.parseFuncLiteral()
	case token.IDENT:
		p.advance()
		if p.cur().Type == token.LPARENC {
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			return &ast.FuncCall{Identifier: tok.Literal, Args: args, Position: tok.Pos}, nil
		}
		return &ast.Identifier{Name: tok.Literal, Position: tok.Pos}, nil
	default:
		return nil, fmt.Errorf("SyntaxError at %s: unexpected token %q", tok.Pos, tok.Literal)
	}
}

// parseFuncLiteral parses (:param, param:) :> {: body :}
func (p *Parser) parseFuncLiteral() (ast.Expression, error) {
	pos := p.cur().Pos
	if _, err := p.expect(token.LPARENC); err != nil {
		return nil, err
	}
	var params []ast.Param
	for p.cur().Type != token.RPARENC {
		name, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		declType := ""
		if p.cur().Type == token.COLON {
			p.advance()
			typeName, err := p.expect(token.IDENT)
			if err != nil {
				return nil, err
			}
			declType = typeName.Literal
		}
		params = append(params, ast.Param{Identifier: name.Literal, DeclaredType: declType})
		if p.cur().Type == token.COMMA {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RPARENC); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.FATARROW); err != nil {
		return nil, err
	}
	body, err := p.parseFuncBody()
	if err != nil {
		return nil, err
	}
	return &ast.FuncLiteral{Parameters: params, Body: body, Position: pos}, nil
}
