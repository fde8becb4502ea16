package evaluator_test

import (
	"strings"
	"testing"

	"github.com/quackscript/quack/internal/evaluator"
	"github.com/quackscript/quack/internal/host"
	"github.com/quackscript/quack/internal/lexer"
	"github.com/quackscript/quack/internal/parser"
	"github.com/quackscript/quack/internal/stdlib"
)

// fileSystem is a host.System that loads source text from an in-memory map
// instead of the real filesystem, for testing imports without touching disk.
type fileSystem struct {
	host.BufferSystem
	files map[string]string
}

func (f *fileSystem) LoadFile(path string) (string, error) {
	src, ok := f.files[path]
	if !ok {
		return "", errNotFound(path)
	}
	return src, nil
}

type errNotFound string

func (e errNotFound) Error() string { return "no such file: " + string(e) }

func TestImportSharesGlobalEnvironment(t *testing.T) {
	fs := &fileSystem{files: map[string]string{
		"lib.qk": "QUACK shared <- 41🦆",
	}}
	ev := evaluator.New(fs, lexer.Tokenize, parser.Parse, evaluator.WithStdlib(stdlib.Install))

	src := `import 'lib.qk'🦆 shared + 1🦆`
	toks, err := lexer.Tokenize(src)
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
	if got := fs.Out.String(); got != "42\n" {
		t.Errorf("stdout = %q, want %q", got, "42\n")
	}
}

func TestImportFallsBackToConfiguredImportPaths(t *testing.T) {
	fs := &fileSystem{files: map[string]string{
		"vendor/lib.qk": "QUACK shared <- 9🦆",
	}}
	ev := evaluator.New(fs, lexer.Tokenize, parser.Parse,
		evaluator.WithStdlib(stdlib.Install),
		evaluator.WithImportPaths([]string{"vendor"}),
	)

	toks, err := lexer.Tokenize(`import 'lib.qk'🦆 shared + 1🦆`)
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
	if got := fs.Out.String(); got != "10\n" {
		t.Errorf("stdout = %q, want %q", got, "10\n")
	}
}

func TestImportCycleIsRejected(t *testing.T) {
	fs := &fileSystem{files: map[string]string{
		"a.qk": "import 'b.qk'🦆",
		"b.qk": "import 'a.qk'🦆",
	}}
	ev := evaluator.New(fs, lexer.Tokenize, parser.Parse, evaluator.WithStdlib(stdlib.Install))

	toks, err := lexer.Tokenize("import 'a.qk'🦆")
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
	if !strings.Contains(fs.Err.String(), "ImportCycle") {
		t.Errorf("stderr = %q, want it to contain ImportCycle", fs.Err.String())
	}
}
