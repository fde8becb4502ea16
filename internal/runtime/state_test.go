package runtime_test

import (
	"testing"

	"github.com/quackscript/quack/internal/runtime"
	"github.com/quackscript/quack/pkg/token"
)

func TestPushPopTracksDepthAndInFunction(t *testing.T) {
	s := runtime.NewState()
	if s.InFunction() {
		t.Fatal("InFunction() on empty stack should be false")
	}
	if _, err := s.Push(runtime.ContextFunction, "f", token.Position{}); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if !s.InFunction() {
		t.Error("InFunction() should be true after pushing a function context")
	}
	if s.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", s.Depth())
	}
	s.Pop()
	if s.Depth() != 0 {
		t.Errorf("Depth() after Pop = %d, want 0", s.Depth())
	}
}

func TestPushAssignsDistinctCorrelationIDs(t *testing.T) {
	s := runtime.NewState()
	f1, err := s.Push(runtime.ContextFunction, "a", token.Position{})
	if err != nil {
		t.Fatalf("Push: %v", err)
	}
	f2, err := s.Push(runtime.ContextFunction, "b", token.Position{})
	if err != nil {
		t.Fatalf("Push: %v", err)
	}
	if f1.CorrelationID == f2.CorrelationID {
		t.Error("successive Push calls should assign distinct correlation ids")
	}
}

func TestPushRejectsBeyondMaxDepth(t *testing.T) {
	s := runtime.NewState()
	s.SetMaxDepth(2)
	if _, err := s.Push(runtime.ContextFunction, "a", token.Position{}); err != nil {
		t.Fatalf("Push 1: %v", err)
	}
	if _, err := s.Push(runtime.ContextFunction, "b", token.Position{}); err != nil {
		t.Fatalf("Push 2: %v", err)
	}
	if _, err := s.Push(runtime.ContextFunction, "c", token.Position{}); err == nil {
		t.Fatal("Push beyond max depth should return an error")
	}
}

func TestPeekReturnsInnermostFrame(t *testing.T) {
	s := runtime.NewState()
	if _, ok := s.Peek(); ok {
		t.Fatal("Peek() on empty stack should report ok=false")
	}
	s.Push(runtime.ContextFunction, "outer", token.Position{})
	s.Push(runtime.ContextFunction, "inner", token.Position{})
	f, ok := s.Peek()
	if !ok || f.FunctionName != "inner" {
		t.Errorf("Peek() = %+v, ok=%v, want inner frame", f, ok)
	}
}
