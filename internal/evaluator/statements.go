package evaluator

import (
	"github.com/quackscript/quack/internal/ast"
	"github.com/quackscript/quack/internal/rerrors"
	"github.com/quackscript/quack/internal/runtime"
)

// ExecuteStatement dispatches a single statement per spec §4.6.2.
// ReturnStatement is normally handled by ExecuteCodeBlock; reaching it here
// outside any function context (e.g. a top-level return) raises
// ReturnOutsideFunction, and inside one it escapes via the same returnSignal.
func (e *Evaluator) ExecuteStatement(stmt ast.Statement) (runtime.Value, error) {
	switch s := stmt.(type) {
	case *ast.Declaration:
		return nil, e.executeDeclaration(s)
	case *ast.Assignment:
		return nil, e.executeAssignment(s)
	case *ast.ExpressionStatement:
		return e.evalExpression(s.Expr)
	case *ast.ReturnStatement:
		if !e.State.InFunction() {
			return nil, rerrors.New(rerrors.ReturnOutsideFunction, s.Position, "return used outside of a function")
		}
		v, err := e.evalExpression(s.Value)
		if err != nil {
			return nil, err
		}
		panic(returnSignal{value: v})
	case *ast.IfStatement:
		return nil, e.executeIf(s)
	case *ast.ImportStatement:
		return nil, rerrors.New(rerrors.ImportNotAtTop, s.Position, "import must appear before any other statement")
	default:
		return nil, rerrors.New(rerrors.InternalAssignmentError, stmt.Pos(), "unknown statement kind")
	}
}

// executeDeclaration implements spec §4.6.3.
func (e *Evaluator) executeDeclaration(d *ast.Declaration) error {
	v, err := e.evalExpression(d.Value)
	if err != nil {
		return err
	}

	declaredType := d.DeclaredType
	resolvedType := declaredType
	if resolvedType == "" {
		resolvedType = runtime.ValueKindToTypeName(v.Kind())
	}

	cell := &runtime.Cell{
		Identifier: d.Identifier,
		Value:      v,
	}
	if d.DeclaratorType == "constant" {
		cell.DeclarationKind = runtime.Constant
	} else {
		cell.DeclarationKind = runtime.Variable
	}

	if d.IsOptional {
		cell.Type = "optional"
		cell.IsOptional = true
		cell.InternalType = resolvedType
	} else {
		cell.Type = resolvedType
	}

	if v.Kind() != runtime.KindNothing {
		actual := runtime.ValueKindToTypeName(v.Kind())
		if actual != resolvedType {
			return rerrors.New(rerrors.TypeMismatch, d.Position,
				"cannot declare %q as %s with a value of type %s", d.Identifier, resolvedType, actual)
		}
	} else if !d.IsOptional {
		return rerrors.New(rerrors.NullToNonOptional, d.Position, "cannot declare non-optional %q as nothing", d.Identifier)
	}

	return e.Memory.Set(d.Identifier, cell)
}

// executeAssignment implements spec §4.6.4. The RHS is modeled as a
// Statement for forward compatibility; only ExpressionStatement is legal.
func (e *Evaluator) executeAssignment(a *ast.Assignment) error {
	exprStmt, ok := a.Value.(*ast.ExpressionStatement)
	if !ok {
		return rerrors.New(rerrors.InternalAssignmentError, a.Position, "assignment right-hand side must be an expression")
	}
	v, err := e.evalExpression(exprStmt.Expr)
	if err != nil {
		return err
	}
	return e.Memory.Update(a.Identifier, v)
}

// executeIf implements spec §4.6.6: truthiness is strict — only
// BooleanLiteral(true) is true, NothingLiteral is false, any other kind
// raises NonBooleanCondition.
func (e *Evaluator) executeIf(s *ast.IfStatement) error {
	cond, err := e.evalExpression(s.Condition)
	if err != nil {
		return err
	}

	var truthy bool
	switch c := cond.(type) {
	case runtime.BooleanLiteral:
		truthy = c.Value
	case runtime.NothingLiteral:
		truthy = false
	default:
		return rerrors.New(rerrors.NonBooleanCondition, s.Position,
			"if condition must be a boolean, got %s", runtime.ValueKindToTypeName(cond.Kind()))
	}

	if truthy {
		_, err := e.ExecuteCodeBlock(s.TrueBlock)
		return err
	}
	if s.FalseBlock != nil {
		_, err := e.ExecuteCodeBlock(s.FalseBlock)
		return err
	}
	return nil
}
