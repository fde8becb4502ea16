package stdlib_test

import (
	"testing"

	"github.com/quackscript/quack/internal/evaluator"
	"github.com/quackscript/quack/internal/host"
	"github.com/quackscript/quack/internal/lexer"
	"github.com/quackscript/quack/internal/parser"
	"github.com/quackscript/quack/internal/runtime"
	"github.com/quackscript/quack/internal/stdlib"
)

func TestInstallBindsEveryRoutineAsCallable(t *testing.T) {
	h := &host.BufferSystem{}
	ev := evaluator.New(h, lexer.Tokenize, parser.Parse, evaluator.WithStdlib(stdlib.Install))

	toks, err := lexer.Tokenize("QUACK x <- 1🦆")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	mod, err := parser.Parse(toks)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := ev.Execute(mod); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	for _, name := range []string{"print", "toText", "toNumber", "vec2", "vec3"} {
		cell, err := ev.Memory.Get(name)
		if err != nil {
			t.Errorf("stdlib routine %q not bound after Execute: %v", name, err)
			continue
		}
		if _, ok := cell.Value.(runtime.InternalFuncDeclaration); !ok {
			t.Errorf("stdlib routine %q bound as %T, want runtime.InternalFuncDeclaration", name, cell.Value)
		}
	}
}

func TestReinstallsOnEveryExecuteSinceClearMemoryWipesGlobals(t *testing.T) {
	h := &host.BufferSystem{}
	ev := evaluator.New(h, lexer.Tokenize, parser.Parse, evaluator.WithStdlib(stdlib.Install))

	toks, _ := lexer.Tokenize("print(:'first':)🦆")
	mod, _ := parser.Parse(toks)
	if err := ev.Execute(mod); err != nil {
		t.Fatalf("Execute 1: %v", err)
	}

	toks2, _ := lexer.Tokenize("print(:'second':)🦆")
	mod2, _ := parser.Parse(toks2)
	if err := ev.Execute(mod2); err != nil {
		t.Fatalf("Execute 2: %v", err)
	}

	if got := h.Out.String(); got != "first\nsecond\n" {
		t.Errorf("stdout = %q, want %q", got, "first\nsecond\n")
	}
}
