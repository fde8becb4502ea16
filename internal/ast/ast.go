// Package ast defines the abstract syntax tree produced by the parser and
// consumed by the evaluator. The evaluator treats these nodes as read-only:
// it tracks a statement cursor rather than mutating a Module in place, so
// the same parsed tree can be re-executed (see Module.LeadingImports).
package ast

import "github.com/quackscript/quack/pkg/token"

// Node is the common interface for every AST node.
type Node interface {
	Pos() token.Position
	String() string
}

// Statement is a top-level or block-level statement node.
type Statement interface {
	Node
	statementNode()
}

// Expression is a value-producing node.
type Expression interface {
	Node
	expressionNode()
}

// Module is the root of a parsed source file.
type Module struct {
	Statements []Statement
}

func (m *Module) Pos() token.Position {
	if len(m.Statements) == 0 {
		return token.Position{}
	}
	return m.Statements[0].Pos()
}

func (m *Module) String() string { return "Module" }

// LeadingImports returns the length of the contiguous run of ImportStatement
// nodes at the start of the module. It never mutates m.Statements.
func (m *Module) LeadingImports() int {
	n := 0
	for _, stmt := range m.Statements {
		if _, ok := stmt.(*ImportStatement); !ok {
			break
		}
		n++
	}
	return n
}

// CodeBlock is a sequence of statements evaluated in order, used for
// function bodies and if/else branches.
type CodeBlock struct {
	Statements []Statement
	Position   token.Position
}

func (b *CodeBlock) Pos() token.Position { return b.Position }
func (b *CodeBlock) String() string      { return "CodeBlock" }

// Param is a single declared function parameter.
type Param struct {
	Identifier   string
	DeclaredType string
}
