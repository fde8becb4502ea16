package ast

import "github.com/quackscript/quack/pkg/token"

// NumberLiteral is a double-precision real literal.
type NumberLiteral struct {
	Value    float64
	Position token.Position
}

func (n *NumberLiteral) Pos() token.Position { return n.Position }
func (n *NumberLiteral) String() string      { return "NumberLiteral" }
func (n *NumberLiteral) expressionNode()     {}

// TextLiteral is an immutable text literal.
type TextLiteral struct {
	Value    string
	Position token.Position
}

func (t *TextLiteral) Pos() token.Position { return t.Position }
func (t *TextLiteral) String() string      { return "TextLiteral" }
func (t *TextLiteral) expressionNode()     {}

// BooleanLiteral is a true/false literal.
type BooleanLiteral struct {
	Value    bool
	Position token.Position
}

func (b *BooleanLiteral) Pos() token.Position { return b.Position }
func (b *BooleanLiteral) String() string      { return "BooleanLiteral" }
func (b *BooleanLiteral) expressionNode()     {}

// NothingLiteral is the absent/unit value.
type NothingLiteral struct {
	Position token.Position
}

func (n *NothingLiteral) Pos() token.Position { return n.Position }
func (n *NothingLiteral) String() string      { return "NothingLiteral" }
func (n *NothingLiteral) expressionNode()     {}

// Vector2Literal is a 2-component vector literal. Arithmetic on vectors is
// not yet defined (spec §9); the evaluator only knows how to construct and
// print them.
type Vector2Literal struct {
	X, Y     float64
	Position token.Position
}

func (v *Vector2Literal) Pos() token.Position { return v.Position }
func (v *Vector2Literal) String() string      { return "Vector2Literal" }
func (v *Vector2Literal) expressionNode()     {}

// Vector3Literal is a 3-component vector literal.
type Vector3Literal struct {
	X, Y, Z  float64
	Position token.Position
}

func (v *Vector3Literal) Pos() token.Position { return v.Position }
func (v *Vector3Literal) String() string      { return "Vector3Literal" }
func (v *Vector3Literal) expressionNode()     {}

// FuncLiteral is a first-class function value: (:params:) :> {: body :}
type FuncLiteral struct {
	Parameters []Param
	Body       *CodeBlock
	Position   token.Position
}

func (f *FuncLiteral) Pos() token.Position { return f.Position }
func (f *FuncLiteral) String() string      { return "FuncLiteral" }
func (f *FuncLiteral) expressionNode()     {}
