package evaluator

import (
	"github.com/quackscript/quack/internal/ast"
	"github.com/quackscript/quack/internal/host"
	"github.com/quackscript/quack/internal/rerrors"
	"github.com/quackscript/quack/internal/runtime"
	"github.com/quackscript/quack/pkg/token"
)

// InternalFunc is the signature a standard-library routine implements
// (spec §6.4): given the call's freshly bound argument scope and the host,
// produce a Value.
type InternalFunc func(scope *runtime.Environment, h host.System) (runtime.Value, error)

// RegisterInternalFunc installs fn under name. The evaluator only ever
// dispatches to these by name (spec §6.4); it never enumerates them.
func (e *Evaluator) RegisterInternalFunc(name string, fn InternalFunc) {
	if e.internalFuncs == nil {
		e.internalFuncs = make(map[string]InternalFunc)
	}
	e.internalFuncs[name] = fn
}

// evalFuncCall implements spec §4.6.5.
func (e *Evaluator) evalFuncCall(call *ast.FuncCall) (runtime.Value, error) {
	cell, err := e.Memory.Get(call.Identifier)
	if err != nil {
		return nil, err
	}

	switch cell.Value.Kind() {
	case runtime.KindNothing:
		return nil, rerrors.New(rerrors.CallOnNothing, call.Position, "%q is nothing and cannot be called", call.Identifier)
	case runtime.KindFunc, runtime.KindInternalFunc:
		// callable
	default:
		return nil, rerrors.New(rerrors.NotCallable, call.Position, "%q is not callable", call.Identifier)
	}

	frame, err := e.State.Push(runtime.ContextFunction, call.Identifier, call.Position)
	if err != nil {
		return nil, rerrors.New(rerrors.StackOverflow, call.Position, "%v", err)
	}
	e.Memory.CreateScope()
	e.logf("enter %s [%s]", call.Identifier, frame.CorrelationID)

	var result runtime.Value
	var callErr error
	func() {
		defer func() {
			e.Memory.ClearScope()
			e.State.Pop()
			e.logf("exit %s [%s]", call.Identifier, frame.CorrelationID)
			if r := recover(); r != nil {
				if ret, ok := r.(returnSignal); ok {
					result = ret.value
					return
				}
				panic(r)
			}
		}()

		switch fn := cell.Value.(type) {
		case runtime.InternalFuncDeclaration:
			if err := e.bindArgs(fn.Parameters, call.Args, call.Position); err != nil {
				callErr = err
				return
			}
			body, ok := e.internalFuncs[fn.Identifier]
			if !ok {
				callErr = rerrors.New(rerrors.NotCallable, call.Position, "internal function %q has no registered implementation", fn.Identifier)
				return
			}
			v, err := body(e.Memory, e.Host)
			if err != nil {
				callErr = err
				return
			}
			result = v
		case runtime.FuncDeclaration:
			if err := e.bindArgs(fn.Parameters, call.Args, call.Position); err != nil {
				callErr = err
				return
			}
			v, err := e.ExecuteCodeBlock(fn.Body)
			if err != nil {
				callErr = err
				return
			}
			result = v
		}
	}()

	if callErr != nil {
		return nil, callErr
	}
	if result == nil {
		result = runtime.NothingLiteral{Position: call.Position}
	}
	return result, nil
}

// bindArgs checks arity and per-parameter argument types, binding each
// parameter into the current (innermost) scope as an argument cell.
func (e *Evaluator) bindArgs(params []ast.Param, args []ast.Expression, pos token.Position) error {
	if len(params) != len(args) {
		return rerrors.New(rerrors.ArityMismatch, pos, "expected %d argument(s), got %d", len(params), len(args))
	}
	for i, param := range params {
		v, err := e.evalExpression(args[i])
		if err != nil {
			return err
		}
		if param.DeclaredType != "" && runtime.ValueKindToTypeName(v.Kind()) != param.DeclaredType {
			return rerrors.New(rerrors.ArgumentTypeMismatch, pos,
				"argument %q expects %s, got %s", param.Identifier, param.DeclaredType, runtime.ValueKindToTypeName(v.Kind()))
		}
		cell := &runtime.Cell{
			Identifier:      param.Identifier,
			DeclarationKind: runtime.Argument,
			Type:            runtime.ValueKindToTypeName(v.Kind()),
			Value:           v,
		}
		if err := e.Memory.Set(param.Identifier, cell); err != nil {
			return err
		}
	}
	return nil
}
