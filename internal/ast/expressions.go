package ast

import "github.com/quackscript/quack/pkg/token"

// Identifier references a bound name; resolves to the value of its cell,
// functions included, as first-class values.
type Identifier struct {
	Name     string
	Position token.Position
}

func (i *Identifier) Pos() token.Position { return i.Position }
func (i *Identifier) String() string      { return i.Name }
func (i *Identifier) expressionNode()     {}

// FuncCall invokes the function bound to Identifier with Args.
type FuncCall struct {
	Identifier string
	Args       []Expression
	Position   token.Position
}

func (f *FuncCall) Pos() token.Position { return f.Position }
func (f *FuncCall) String() string      { return f.Identifier + "(:...:)" }
func (f *FuncCall) expressionNode()     {}

// BinaryExpression applies Operator to Left and Right.
type BinaryExpression struct {
	Operator string
	Left     Expression
	Right    Expression
	Position token.Position
}

func (b *BinaryExpression) Pos() token.Position { return b.Position }
func (b *BinaryExpression) String() string      { return "(" + b.Operator + ")" }
func (b *BinaryExpression) expressionNode()     {}

// AccessorExpression is receiver.selector(:args:) — method-style dispatch
// on a primitive value. Selector is a *FuncCall for method calls; any other
// selector kind is a field access, which QuackScript does not yet define
// (UnknownAttribute).
type AccessorExpression struct {
	Receiver Expression
	Selector Expression
	Position token.Position
}

func (a *AccessorExpression) Pos() token.Position { return a.Position }
func (a *AccessorExpression) String() string      { return "(accessor)" }
func (a *AccessorExpression) expressionNode()     {}
