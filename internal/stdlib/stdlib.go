// Package stdlib installs QuackScript's standard-library routines (spec
// §6.4): each is surfaced as an InternalFuncDeclaration value in the
// global Environment, and its body is registered with the Evaluator so it
// can be dispatched to by name at call time. The evaluator itself never
// enumerates these routines.
package stdlib

import (
	"strconv"

	"github.com/quackscript/quack/internal/ast"
	"github.com/quackscript/quack/internal/evaluator"
	"github.com/quackscript/quack/internal/host"
	"github.com/quackscript/quack/internal/rerrors"
	"github.com/quackscript/quack/internal/runtime"
)

// routine pairs a parameter list with its implementation.
type routine struct {
	params []ast.Param
	body   evaluator.InternalFunc
}

func routines() map[string]routine {
	return map[string]routine{
		"print": {
			params: []ast.Param{{Identifier: "message", DeclaredType: "text"}},
			body: func(scope *runtime.Environment, h host.System) (runtime.Value, error) {
				cell, err := scope.Get("message")
				if err != nil {
					return nil, err
				}
				h.Stdout(cell.Value.(runtime.TextLiteral))
				return runtime.NothingLiteral{}, nil
			},
		},
		"toText": {
			params: []ast.Param{{Identifier: "value", DeclaredType: ""}},
			body: func(scope *runtime.Environment, h host.System) (runtime.Value, error) {
				cell, err := scope.Get("value")
				if err != nil {
					return nil, err
				}
				return runtime.ConvertValueToText(cell.Value), nil
			},
		},
		"toNumber": {
			params: []ast.Param{{Identifier: "value", DeclaredType: "text"}},
			body: func(scope *runtime.Environment, h host.System) (runtime.Value, error) {
				cell, err := scope.Get("value")
				if err != nil {
					return nil, err
				}
				text := cell.Value.(runtime.TextLiteral)
				n, err := strconv.ParseFloat(text.Value, 64)
				if err != nil {
					return nil, rerrors.New(rerrors.TypeMismatch, text.Position, "cannot convert %q to a number", text.Value)
				}
				return runtime.NumberLiteral{Value: n}, nil
			},
		},
		"vec2": {
			params: []ast.Param{{Identifier: "x", DeclaredType: "number"}, {Identifier: "y", DeclaredType: "number"}},
			body: func(scope *runtime.Environment, h host.System) (runtime.Value, error) {
				x, err := scope.Get("x")
				if err != nil {
					return nil, err
				}
				y, err := scope.Get("y")
				if err != nil {
					return nil, err
				}
				return runtime.Vector2Literal{X: x.Value.(runtime.NumberLiteral).Value, Y: y.Value.(runtime.NumberLiteral).Value}, nil
			},
		},
		"vec3": {
			params: []ast.Param{
				{Identifier: "x", DeclaredType: "number"},
				{Identifier: "y", DeclaredType: "number"},
				{Identifier: "z", DeclaredType: "number"},
			},
			body: func(scope *runtime.Environment, h host.System) (runtime.Value, error) {
				x, err := scope.Get("x")
				if err != nil {
					return nil, err
				}
				y, err := scope.Get("y")
				if err != nil {
					return nil, err
				}
				z, err := scope.Get("z")
				if err != nil {
					return nil, err
				}
				return runtime.Vector3Literal{
					X: x.Value.(runtime.NumberLiteral).Value,
					Y: y.Value.(runtime.NumberLiteral).Value,
					Z: z.Value.(runtime.NumberLiteral).Value,
				}, nil
			},
		},
	}
}

// Install registers every standard-library routine's body on ev and binds
// each one into ev.Memory as a constant InternalFuncDeclaration cell, ready
// for FuncCall dispatch. Installed via evaluator.WithStdlib so it reruns on
// every Execute, since Execute clears Memory each time (spec §4.2).
func Install(ev *evaluator.Evaluator) {
	for name, r := range routines() {
		ev.RegisterInternalFunc(name, r.body)
		_ = ev.Memory.Set(name, &runtime.Cell{
			Identifier:      name,
			DeclarationKind: runtime.Constant,
			Type:            "internalFunc",
			Value:           runtime.InternalFuncDeclaration{Identifier: name, Parameters: r.params},
		})
	}
}
