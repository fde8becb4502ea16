package runtime

import (
	"github.com/quackscript/quack/internal/rerrors"
	"github.com/quackscript/quack/pkg/token"
)

// DeclarationKind distinguishes how a Cell was bound (spec §3.2).
type DeclarationKind string

const (
	Constant DeclarationKind = "constant"
	Variable DeclarationKind = "variable"
	Argument DeclarationKind = "argument"
)

// Cell is a named, typed storage slot in a scope (spec §3.2).
type Cell struct {
	Identifier      string
	DeclarationKind DeclarationKind
	Type            string // declared/inferred type name, or "optional"
	Value           Value
	IsOptional      bool
	InternalType    string // underlying type name when IsOptional
}

type scope map[string]*Cell

// Environment is the Memory component: a stack of scopes, innermost last,
// generalizing the teacher's outer-pointer Environment (CWBudde-go-dws
// internal/interp/runtime.Environment) into an explicit stack so that
// CreateScope/ClearScope can be driven directly by the evaluator's function
// call frames (spec §4.2).
type Environment struct {
	scopes []scope
}

// NewEnvironment returns an environment with a single empty global scope,
// the state ClearMemory resets to at the start of every Execute call.
func NewEnvironment() *Environment {
	return &Environment{scopes: []scope{make(scope)}}
}

// CreateScope pushes a new, empty innermost scope.
func (e *Environment) CreateScope() {
	e.scopes = append(e.scopes, make(scope))
}

// ClearScope pops the innermost scope. It is always called by the
// evaluator on every function-call exit path, normal or exceptional
// (spec §4.2, §5 invariant 2).
func (e *Environment) ClearScope() {
	if len(e.scopes) > 1 {
		e.scopes = e.scopes[:len(e.scopes)-1]
	}
}

// ClearMemory resets to a single empty global scope.
func (e *Environment) ClearMemory() {
	e.scopes = []scope{make(scope)}
}

// Depth reports the number of scopes currently on the stack, for the
// invariant that a function call's scope depth is restored on every exit.
func (e *Environment) Depth() int {
	return len(e.scopes)
}

// Set inserts cell into the innermost scope. Fails with RedeclarationError
// if the identifier already exists in that scope.
func (e *Environment) Set(id string, cell *Cell) error {
	top := e.scopes[len(e.scopes)-1]
	if _, exists := top[id]; exists {
		return rerrors.New(rerrors.RedeclarationError, cell.Value.Pos(),
			"identifier %q is already declared in this scope", id)
	}
	top[id] = cell
	return nil
}

// Get searches scopes innermost-outward for id.
func (e *Environment) Get(id string) (*Cell, error) {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if cell, ok := e.scopes[i][id]; ok {
			return cell, nil
		}
	}
	return nil, rerrors.New(rerrors.UndefinedIdentifier, token.Position{}, "undefined identifier %q", id)
}

// Update locates id in any scope and replaces its Value, enforcing
// constant-immutability and the declared type (spec §4.2).
func (e *Environment) Update(id string, v Value) error {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		cell, ok := e.scopes[i][id]
		if !ok {
			continue
		}
		if cell.DeclarationKind == Constant {
			return rerrors.New(rerrors.AssignToConstant, v.Pos(), "cannot assign to constant %q", id)
		}
		declared := cell.Type
		if cell.IsOptional {
			declared = cell.InternalType
		}
		if v.Kind() != KindNothing && ValueKindToTypeName(v.Kind()) != declared {
			return rerrors.New(rerrors.TypeMismatch, v.Pos(),
				"cannot assign %s to %q of type %s", ValueKindToTypeName(v.Kind()), id, declared)
		}
		if v.Kind() == KindNothing && !cell.IsOptional {
			return rerrors.New(rerrors.NullToNonOptional, v.Pos(), "cannot assign nothing to non-optional %q", id)
		}
		cell.Value = v
		return nil
	}
	return rerrors.New(rerrors.UndefinedIdentifier, v.Pos(), "undefined identifier %q", id)
}
