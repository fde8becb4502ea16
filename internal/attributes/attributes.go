// Package attributes implements the static primitive attribute registry of
// spec §4.4: built-in "methods" invocable via accessor syntax on
// primitives (receiver.method(:args:)).
package attributes

import (
	"github.com/quackscript/quack/internal/host"
	"github.com/quackscript/quack/internal/rerrors"
	"github.com/quackscript/quack/internal/runtime"
	"github.com/quackscript/quack/pkg/token"
)

// Func is a host-provided routine bound to (primitiveTypeName, name).
type Func func(receiver runtime.Value, args []runtime.Value, h host.System) (runtime.Value, error)

type key struct {
	typeName string
	name     string
}

// Registry resolves (primitiveTypeName, attributeName) pairs to Funcs. A
// Registry is constructed per-Evaluator rather than held as a package
// global, so registration order never leaks across evaluator instances
// (spec §9 testability note).
type Registry struct {
	funcs map[key]Func
}

// NewRegistry returns a Registry with every built-in attribute installed.
func NewRegistry() *Registry {
	r := &Registry{funcs: make(map[key]Func)}
	registerBuiltins(r)
	return r
}

// Register installs fn under (typeName, name), overwriting any prior
// registration — used by tests and by embedders extending the stdlib.
func (r *Registry) Register(typeName, name string, fn Func) {
	r.funcs[key{typeName, name}] = fn
}

// Resolve looks up the attribute for typeName/name.
func (r *Registry) Resolve(typeName, name string) (Func, bool) {
	fn, ok := r.funcs[key{typeName, name}]
	return fn, ok
}

// Dispatch resolves and invokes the attribute, raising UnknownAttribute if
// it is not registered for receiver's type.
func (r *Registry) Dispatch(typeName, name string, receiver runtime.Value, args []runtime.Value, h host.System, pos token.Position) (runtime.Value, error) {
	fn, ok := r.Resolve(typeName, name)
	if !ok {
		return nil, rerrors.New(rerrors.UnknownAttribute, pos, "%s has no attribute %q", typeName, name)
	}
	return fn(receiver, args, h)
}
