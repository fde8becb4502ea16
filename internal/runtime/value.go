// Package runtime holds the QuackScript value model, environment, and call
// stack — the Memory/State components of §4.2–§4.3 of the spec.
package runtime

import (
	"fmt"
	"strconv"

	"github.com/quackscript/quack/internal/ast"
	"github.com/quackscript/quack/pkg/token"
)

// ValueKind tags the variant of a Value.
type ValueKind int

const (
	KindNumber ValueKind = iota
	KindText
	KindBoolean
	KindNothing
	KindVector2
	KindVector3
	KindFunc
	KindInternalFunc
)

// Value is a runtime value produced by expression evaluation. Every variant
// is an immutable record carrying its source position for diagnostics.
type Value interface {
	Kind() ValueKind
	String() string
	Pos() token.Position
}

// ValueKindToTypeName maps a Value's tag to its canonical declared type
// name, as used in Declaration nodes and error messages.
func ValueKindToTypeName(k ValueKind) string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindBoolean:
		return "bool"
	case KindNothing:
		return "nothing"
	case KindVector2:
		return "vector2"
	case KindVector3:
		return "vector3"
	case KindFunc:
		return "func"
	case KindInternalFunc:
		return "internalFunc"
	default:
		return "unknown"
	}
}

// ConvertValueToText renders any non-NothingLiteral value for stdout.
func ConvertValueToText(v Value) TextLiteral {
	return TextLiteral{Value: v.String()}
}

// NumberLiteral is a double-precision real value.
type NumberLiteral struct {
	Value    float64
	Position token.Position
}

func (n NumberLiteral) Kind() ValueKind      { return KindNumber }
func (n NumberLiteral) Pos() token.Position  { return n.Position }
func (n NumberLiteral) String() string       { return strconv.FormatFloat(n.Value, 'g', -1, 64) }

// TextLiteral is an immutable Unicode text value.
type TextLiteral struct {
	Value    string
	Position token.Position
}

func (t TextLiteral) Kind() ValueKind     { return KindText }
func (t TextLiteral) Pos() token.Position { return t.Position }
func (t TextLiteral) String() string      { return t.Value }

// BooleanLiteral is a true/false value.
type BooleanLiteral struct {
	Value    bool
	Position token.Position
}

func (b BooleanLiteral) Kind() ValueKind     { return KindBoolean }
func (b BooleanLiteral) Pos() token.Position { return b.Position }
func (b BooleanLiteral) String() string      { return strconv.FormatBool(b.Value) }

// NothingLiteral is the absent/unit value.
type NothingLiteral struct {
	Position token.Position
}

func (n NothingLiteral) Kind() ValueKind     { return KindNothing }
func (n NothingLiteral) Pos() token.Position { return n.Position }
func (n NothingLiteral) String() string      { return "nothing" }

// Vector2Literal is a 2-component vector value. Arithmetic is undefined
// (spec §9); it exists only to be constructed, stored, and printed.
type Vector2Literal struct {
	X, Y     float64
	Position token.Position
}

func (v Vector2Literal) Kind() ValueKind     { return KindVector2 }
func (v Vector2Literal) Pos() token.Position { return v.Position }
func (v Vector2Literal) String() string      { return fmt.Sprintf("(%g, %g)", v.X, v.Y) }

// Vector3Literal is a 3-component vector value.
type Vector3Literal struct {
	X, Y, Z  float64
	Position token.Position
}

func (v Vector3Literal) Kind() ValueKind     { return KindVector3 }
func (v Vector3Literal) Pos() token.Position { return v.Position }
func (v Vector3Literal) String() string      { return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z) }

// FuncDeclaration is a user-defined, first-class function value.
type FuncDeclaration struct {
	Parameters []ast.Param
	Body       *ast.CodeBlock
	Position   token.Position
}

func (f FuncDeclaration) Kind() ValueKind     { return KindFunc }
func (f FuncDeclaration) Pos() token.Position { return f.Position }
func (f FuncDeclaration) String() string      { return "<func>" }

// InternalFuncDeclaration is a reference to a host/standard-library routine,
// surfaced as a first-class value under Identifier.
type InternalFuncDeclaration struct {
	Identifier string
	Parameters []ast.Param
	Position   token.Position
}

func (f InternalFuncDeclaration) Kind() ValueKind     { return KindInternalFunc }
func (f InternalFuncDeclaration) Pos() token.Position { return f.Position }
func (f InternalFuncDeclaration) String() string      { return "<internal:" + f.Identifier + ">" }
