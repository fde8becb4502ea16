package evaluator

import (
	"github.com/quackscript/quack/internal/ast"
	"github.com/quackscript/quack/internal/rerrors"
	"github.com/quackscript/quack/internal/runtime"
)

// evalExpression implements spec §4.6.8.
func (e *Evaluator) evalExpression(expr ast.Expression) (runtime.Value, error) {
	switch n := expr.(type) {
	case *ast.NumberLiteral:
		return runtime.NumberLiteral{Value: n.Value, Position: n.Position}, nil
	case *ast.TextLiteral:
		return runtime.TextLiteral{Value: n.Value, Position: n.Position}, nil
	case *ast.BooleanLiteral:
		return runtime.BooleanLiteral{Value: n.Value, Position: n.Position}, nil
	case *ast.NothingLiteral:
		return runtime.NothingLiteral{Position: n.Position}, nil
	case *ast.Vector2Literal:
		return runtime.Vector2Literal{X: n.X, Y: n.Y, Position: n.Position}, nil
	case *ast.Vector3Literal:
		return runtime.Vector3Literal{X: n.X, Y: n.Y, Z: n.Z, Position: n.Position}, nil
	case *ast.FuncLiteral:
		return runtime.FuncDeclaration{Parameters: n.Parameters, Body: n.Body, Position: n.Position}, nil
	case *ast.Identifier:
		cell, err := e.Memory.Get(n.Name)
		if err != nil {
			return nil, err
		}
		return cell.Value, nil
	case *ast.FuncCall:
		return e.evalFuncCall(n)
	case *ast.BinaryExpression:
		return e.evalBinary(n)
	case *ast.AccessorExpression:
		return e.evalAccessor(n)
	default:
		return nil, rerrors.New(rerrors.InternalAssignmentError, expr.Pos(), "unknown expression kind")
	}
}

// evalAccessor implements spec §4.6.8's accessor rule: if the selector is a
// FuncCall, dispatch through the static primitive attribute registry;
// otherwise it's a field access, which QuackScript does not define.
func (e *Evaluator) evalAccessor(a *ast.AccessorExpression) (runtime.Value, error) {
	recv, err := e.evalExpression(a.Receiver)
	if err != nil {
		return nil, err
	}

	call, ok := a.Selector.(*ast.FuncCall)
	if !ok {
		return nil, rerrors.New(rerrors.UnknownAttribute, a.Position, "field access is not supported")
	}

	args := make([]runtime.Value, len(call.Args))
	for i, argExpr := range call.Args {
		v, err := e.evalExpression(argExpr)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	typeName := runtime.ValueKindToTypeName(recv.Kind())
	return e.Attributes.Dispatch(typeName, call.Identifier, recv, args, e.Host, a.Position)
}
