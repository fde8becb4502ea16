package runtime_test

import (
	"testing"

	"github.com/quackscript/quack/internal/rerrors"
	"github.com/quackscript/quack/internal/runtime"
)

func TestSetThenGetResolvesInnermostFirst(t *testing.T) {
	env := runtime.NewEnvironment()
	if err := env.Set("x", &runtime.Cell{Identifier: "x", Type: "number", Value: runtime.NumberLiteral{Value: 1}}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	env.CreateScope()
	if err := env.Set("x", &runtime.Cell{Identifier: "x", Type: "number", Value: runtime.NumberLiteral{Value: 2}}); err != nil {
		t.Fatalf("Set inner: %v", err)
	}
	cell, err := env.Get("x")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if cell.Value.(runtime.NumberLiteral).Value != 2 {
		t.Errorf("Get returned outer scope's cell, want innermost")
	}
	env.ClearScope()
	cell, err = env.Get("x")
	if err != nil {
		t.Fatalf("Get after ClearScope: %v", err)
	}
	if cell.Value.(runtime.NumberLiteral).Value != 1 {
		t.Errorf("ClearScope did not restore the outer binding")
	}
}

func TestSetRedeclarationInSameScope(t *testing.T) {
	env := runtime.NewEnvironment()
	cell := &runtime.Cell{Identifier: "x", Type: "number", Value: runtime.NumberLiteral{Value: 1}}
	if err := env.Set("x", cell); err != nil {
		t.Fatalf("Set: %v", err)
	}
	err := env.Set("x", cell)
	assertKind(t, err, rerrors.RedeclarationError)
}

func TestGetUndefinedIdentifier(t *testing.T) {
	env := runtime.NewEnvironment()
	_, err := env.Get("missing")
	assertKind(t, err, rerrors.UndefinedIdentifier)
}

func TestUpdateRejectsConstant(t *testing.T) {
	env := runtime.NewEnvironment()
	env.Set("pi", &runtime.Cell{Identifier: "pi", DeclarationKind: runtime.Constant, Type: "number", Value: runtime.NumberLiteral{Value: 3}})
	err := env.Update("pi", runtime.NumberLiteral{Value: 4})
	assertKind(t, err, rerrors.AssignToConstant)
}

func TestUpdateRejectsTypeMismatch(t *testing.T) {
	env := runtime.NewEnvironment()
	env.Set("x", &runtime.Cell{Identifier: "x", DeclarationKind: runtime.Variable, Type: "number", Value: runtime.NumberLiteral{Value: 3}})
	err := env.Update("x", runtime.TextLiteral{Value: "oops"})
	assertKind(t, err, rerrors.TypeMismatch)
}

func TestUpdateRejectsNothingForNonOptional(t *testing.T) {
	env := runtime.NewEnvironment()
	env.Set("x", &runtime.Cell{Identifier: "x", DeclarationKind: runtime.Variable, Type: "number", Value: runtime.NumberLiteral{Value: 3}})
	err := env.Update("x", runtime.NothingLiteral{})
	assertKind(t, err, rerrors.NullToNonOptional)
}

func TestUpdateAllowsNothingForOptional(t *testing.T) {
	env := runtime.NewEnvironment()
	env.Set("x", &runtime.Cell{
		Identifier: "x", DeclarationKind: runtime.Variable, Type: "optional",
		IsOptional: true, InternalType: "number", Value: runtime.NumberLiteral{Value: 3},
	})
	if err := env.Update("x", runtime.NothingLiteral{}); err != nil {
		t.Errorf("Update(nothing) on optional cell should succeed, got %v", err)
	}
}

func TestClearMemoryResetsToSingleScope(t *testing.T) {
	env := runtime.NewEnvironment()
	env.CreateScope()
	env.CreateScope()
	env.ClearMemory()
	if env.Depth() != 1 {
		t.Errorf("Depth() after ClearMemory = %d, want 1", env.Depth())
	}
}

func assertKind(t *testing.T, err error, want rerrors.Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected an error of kind %s, got nil", want)
	}
	rerr, ok := err.(*rerrors.RuntimeError)
	if !ok {
		t.Fatalf("expected *rerrors.RuntimeError, got %T", err)
	}
	if rerr.Kind != want {
		t.Errorf("got kind %s, want %s", rerr.Kind, want)
	}
}
