package evaluator

import (
	"math"

	"github.com/quackscript/quack/internal/ast"
	"github.com/quackscript/quack/internal/rerrors"
	"github.com/quackscript/quack/internal/runtime"
	"github.com/quackscript/quack/pkg/token"
)

// evalBinary implements spec §4.6.9: the right operand is evaluated first;
// the left is unwound from an Identifier if needed; callable operands on
// either side are rejected before any operator dispatch is attempted.
func (e *Evaluator) evalBinary(b *ast.BinaryExpression) (runtime.Value, error) {
	right, err := e.evalExpression(b.Right)
	if err != nil {
		return nil, err
	}
	if isCallable(right) {
		return nil, rerrors.New(rerrors.InvalidBinaryOperand, b.Position, "right operand of %q cannot be a function", b.Operator)
	}

	left, err := e.unwrapLeft(b.Left)
	if err != nil {
		return nil, err
	}
	if isCallable(left) {
		return nil, rerrors.New(rerrors.InvalidBinaryOperand, b.Position, "left operand of %q cannot be a function", b.Operator)
	}

	return dispatch(b.Operator, left, right, b.Position)
}

// unwrapLeft resolves an Identifier left operand through Memory; any other
// expression kind (literal, nested binary expression, call, accessor) is
// evaluated directly.
func (e *Evaluator) unwrapLeft(expr ast.Expression) (runtime.Value, error) {
	if id, ok := expr.(*ast.Identifier); ok {
		cell, err := e.Memory.Get(id.Name)
		if err != nil {
			return nil, err
		}
		return cell.Value, nil
	}
	return e.evalExpression(expr)
}

func isCallable(v runtime.Value) bool {
	return v.Kind() == runtime.KindFunc || v.Kind() == runtime.KindInternalFunc
}

// dispatch implements the operator type-signature table of spec §4.6.9.
func dispatch(op string, left, right runtime.Value, pos token.Position) (runtime.Value, error) {
	if left.Kind() != right.Kind() {
		switch op {
		case "==":
			return runtime.BooleanLiteral{Value: false, Position: pos}, nil
		case "!=":
			return runtime.BooleanLiteral{Value: true, Position: pos}, nil
		default:
			return nil, rerrors.New(rerrors.InvalidBinaryExpression, pos,
				"cannot apply %q to %s and %s", op, runtime.ValueKindToTypeName(left.Kind()), runtime.ValueKindToTypeName(right.Kind()))
		}
	}

	switch l := left.(type) {
	case runtime.BooleanLiteral:
		r := right.(runtime.BooleanLiteral)
		switch op {
		case "==":
			return runtime.BooleanLiteral{Value: l.Value == r.Value, Position: pos}, nil
		case "!=":
			return runtime.BooleanLiteral{Value: l.Value != r.Value, Position: pos}, nil
		case "&&":
			return runtime.BooleanLiteral{Value: l.Value && r.Value, Position: pos}, nil
		case "||":
			return runtime.BooleanLiteral{Value: l.Value || r.Value, Position: pos}, nil
		}
	case runtime.NumberLiteral:
		r := right.(runtime.NumberLiteral)
		switch op {
		case "==":
			return runtime.BooleanLiteral{Value: l.Value == r.Value, Position: pos}, nil
		case "!=":
			return runtime.BooleanLiteral{Value: l.Value != r.Value, Position: pos}, nil
		case "<":
			return runtime.BooleanLiteral{Value: l.Value < r.Value, Position: pos}, nil
		case "<=":
			return runtime.BooleanLiteral{Value: l.Value <= r.Value, Position: pos}, nil
		case ">":
			return runtime.BooleanLiteral{Value: l.Value > r.Value, Position: pos}, nil
		case ">=":
			return runtime.BooleanLiteral{Value: l.Value >= r.Value, Position: pos}, nil
		case "+":
			return runtime.NumberLiteral{Value: l.Value + r.Value, Position: pos}, nil
		case "-":
			return runtime.NumberLiteral{Value: l.Value - r.Value, Position: pos}, nil
		case "*":
			return runtime.NumberLiteral{Value: l.Value * r.Value, Position: pos}, nil
		case "/":
			return runtime.NumberLiteral{Value: l.Value / r.Value, Position: pos}, nil
		case "%":
			return runtime.NumberLiteral{Value: math.Mod(l.Value, r.Value), Position: pos}, nil
		}
	case runtime.TextLiteral:
		r := right.(runtime.TextLiteral)
		switch op {
		case "==":
			return runtime.BooleanLiteral{Value: l.Value == r.Value, Position: pos}, nil
		case "!=":
			return runtime.BooleanLiteral{Value: l.Value != r.Value, Position: pos}, nil
		case "+":
			return runtime.TextLiteral{Value: l.Value + r.Value, Position: pos}, nil
		}
	}

	return nil, rerrors.New(rerrors.InvalidBinaryExpression, pos,
		"operator %q is not defined for %s", op, runtime.ValueKindToTypeName(left.Kind()))
}
