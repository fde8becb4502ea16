// Package parser builds a Module AST from a token stream (spec §1, §6.3):
// parse(tokens) → Module. It is an external collaborator of the evaluator,
// grounded on CWBudde-go-dws's internal/parser precedence-climbing design,
// scaled down to QuackScript's small expression grammar.
package parser

import (
	"fmt"

	"github.com/quackscript/quack/internal/ast"
	"github.com/quackscript/quack/pkg/token"
)

const (
	_ int = iota
	LOWEST
	OR
	AND
	EQUALS
	RELATIONAL
	SUM
	PRODUCT
	ACCESSOR
)

var precedences = map[token.Type]int{
	token.OR:      OR,
	token.AND:     AND,
	token.EQ:      EQUALS,
	token.NEQ:     EQUALS,
	token.LT:      RELATIONAL,
	token.LTE:     RELATIONAL,
	token.GT:      RELATIONAL,
	token.GTE:     RELATIONAL,
	token.PLUS:    SUM,
	token.MINUS:   SUM,
	token.STAR:    PRODUCT,
	token.SLASH:   PRODUCT,
	token.PERCENT: PRODUCT,
	token.DOT:     ACCESSOR,
}

// Parser is a recursive-descent/Pratt parser over a fixed token slice.
type Parser struct {
	toks []token.Token
	pos  int
}

// New returns a Parser over toks (as produced by lexer.Tokenize).
func New(toks []token.Token) *Parser {
	return &Parser{toks: toks}
}

// Parse tokenizes-then-parses is not this function's job; Parse builds a
// Module from an already-tokenized stream (spec §6.3).
func Parse(toks []token.Token) (*ast.Module, error) {
	p := New(toks)
	return p.ParseModule()
}

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.toks) {
		return token.Token{Type: token.EOF}
	}
	return p.toks[p.pos]
}

func (p *Parser) peek() token.Token {
	if p.pos+1 >= len(p.toks) {
		return token.Token{Type: token.EOF}
	}
	return p.toks[p.pos+1]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *Parser) expect(t token.Type) (token.Token, error) {
	if p.cur().Type != t {
		return token.Token{}, fmt.Errorf("SyntaxError at %s: expected token %d, got %d (%q)",
			p.cur().Pos, t, p.cur().Type, p.cur().Literal)
	}
	return p.advance(), nil
}

// ParseModule parses every statement until EOF.
func (p *Parser) ParseModule() (*ast.Module, error) {
	m := &ast.Module{}
	for p.cur().Type != token.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		m.Statements = append(m.Statements, stmt)
	}
	return m, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.cur().Type {
	case token.QUACK:
		return p.parseDeclaration()
	case token.IMPORT:
		return p.parseImport()
	case token.RETURN:
		return p.parseReturn()
	case token.IF:
		return p.parseIf()
	case token.IDENT:
		if p.peek().Type == token.ARROW {
			return p.parseAssignment()
		}
		return p.parseExpressionStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseDeclaration() (ast.Statement, error) {
	pos := p.cur().Pos
	p.advance() // QUACK

	declKind := "variable"
	if p.cur().Type == token.IDENT && p.cur().Literal == "const" {
		declKind = "constant"
		p.advance()
	}

	id, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}

	declaredType := ""
	isOptional := false
	if p.cur().Type == token.COLON {
		p.advance()
		typeName, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		declaredType = typeName.Literal
		if p.cur().Type == token.IDENT && p.cur().Literal == "optional" {
			isOptional = true
			p.advance()
		}
	}

	if _, err := p.expect(token.ARROW); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.TERMINATOR); err != nil {
		return nil, err
	}
	return &ast.Declaration{
		Identifier:     id.Literal,
		DeclaratorType: declKind,
		Value:          value,
		DeclaredType:   declaredType,
		IsOptional:     isOptional,
		Position:       pos,
	}, nil
}

func (p *Parser) parseAssignment() (ast.Statement, error) {
	id, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ARROW); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.TERMINATOR); err != nil {
		return nil, err
	}
	return &ast.Assignment{
		Identifier: id.Literal,
		Value:      &ast.ExpressionStatement{Expr: value, Position: id.Pos},
		Position:   id.Pos,
	}, nil
}

func (p *Parser) parseExpressionStatement() (ast.Statement, error) {
	pos := p.cur().Pos
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.TERMINATOR); err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Expr: expr, Position: pos}, nil
}

func (p *Parser) parseReturn() (ast.Statement, error) {
	pos := p.cur().Pos
	p.advance() // return
	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.TERMINATOR); err != nil {
		return nil, err
	}
	return &ast.ReturnStatement{Value: value, Position: pos}, nil
}

func (p *Parser) parseImport() (ast.Statement, error) {
	pos := p.cur().Pos
	p.advance() // import
	pathTok, err := p.expect(token.STRING)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.TERMINATOR); err != nil {
		return nil, err
	}
	return &ast.ImportStatement{Path: pathTok.Literal, Position: pos}, nil
}

func (p *Parser) parseIf() (ast.Statement, error) {
	pos := p.cur().Pos
	p.advance() // if
	cond, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.THEN); err != nil {
		return nil, err
	}
	trueBlock, err := p.parseBlockUntil(token.ELSE, token.END)
	if err != nil {
		return nil, err
	}
	var falseBlock *ast.CodeBlock
	if p.cur().Type == token.ELSE {
		p.advance()
		falseBlock, err = p.parseBlockUntil(token.END)
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.END); err != nil {
		return nil, err
	}
	if p.cur().Type == token.TERMINATOR {
		p.advance()
	}
	return &ast.IfStatement{Condition: cond, TrueBlock: trueBlock, FalseBlock: falseBlock, Position: pos}, nil
}

func (p *Parser) parseBlockUntil(stops ...token.Type) (*ast.CodeBlock, error) {
	pos := p.cur().Pos
	block := &ast.CodeBlock{Position: pos}
	for {
		cur := p.cur().Type
		for _, s := range stops {
			if cur == s {
				return block, nil
			}
		}
		if cur == token.EOF {
			return nil, fmt.Errorf("SyntaxError at %s: unexpected end of input in block", p.cur().Pos)
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
}

// parseFuncBody parses {: stmt* :}
func (p *Parser) parseFuncBody() (*ast.CodeBlock, error) {
	pos := p.cur().Pos
	if _, err := p.expect(token.LBRACEC); err != nil {
		return nil, err
	}
	block := &ast.CodeBlock{Position: pos}
	for p.cur().Type != token.RBRACEC {
		if p.cur().Type == token.EOF {
			return nil, fmt.Errorf("SyntaxError at %s: unterminated function body", pos)
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	if _, err := p.expect(token.RBRACEC); err != nil {
		return nil, err
	}
	return block, nil
}
