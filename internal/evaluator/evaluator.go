// Package evaluator implements the QuackScript operational semantics of
// spec §4.6: it walks a parsed Module and produces observable effects
// through the host.System façade. It is the "hard part" the rest of this
// repository exists to support (spec §1, §2).
package evaluator

import (
	"github.com/quackscript/quack/internal/ast"
	"github.com/quackscript/quack/internal/attributes"
	"github.com/quackscript/quack/internal/host"
	"github.com/quackscript/quack/internal/runtime"
	"github.com/quackscript/quack/pkg/token"
)

// TokenizeFunc and ParseFunc are the evaluator's external collaborators
// (spec §1, §6.3), supplied by internal/lexer and internal/parser.
type TokenizeFunc func(source string) ([]token.Token, error)
type ParseFunc func(toks []token.Token) (*ast.Module, error)

// returnSignal is the non-local control-flow escape of spec §5/§9. It does
// not implement error, so a runtime error catch can never accidentally
// swallow it.
type returnSignal struct {
	value runtime.Value
}

// Evaluator walks a Module and evaluates it against Memory/State/Host.
type Evaluator struct {
	Memory     *runtime.Environment
	State      *runtime.State
	Host       host.System
	Attributes *attributes.Registry

	Tokenize TokenizeFunc
	Parse    ParseFunc

	maxImportDepth int
	importPaths    []string
	importStack    map[string]bool
	internalFuncs  map[string]InternalFunc
	trace          func(format string, args ...any)
	stdlibInstall  func(*Evaluator)
}

// Option configures an Evaluator at construction time.
type Option func(*Evaluator)

// WithTrace installs a callback invoked on function entry/exit when the
// embedder wants --trace-style diagnostics.
func WithTrace(fn func(format string, args ...any)) Option {
	return func(e *Evaluator) { e.trace = fn }
}

// WithStdlib installs a hook run at the start of every Execute call (after
// ClearMemory), used to bind InternalFuncDeclaration cells and register
// their bodies. Kept as a hook rather than a one-time call because
// ClearMemory wipes the global scope on every Execute (spec §4.2).
func WithStdlib(install func(*Evaluator)) Option {
	return func(e *Evaluator) { e.stdlibInstall = install }
}

// WithMaxCallDepth overrides the default maximum recursion depth (256),
// per quack.yaml's maxCallDepth field.
func WithMaxCallDepth(n int) Option {
	return func(e *Evaluator) { e.State.SetMaxDepth(n) }
}

// WithMaxImportDepth overrides the default maximum import nesting depth
// (64), per quack.yaml's maxImportDepth field.
func WithMaxImportDepth(n int) Option {
	return func(e *Evaluator) {
		if n > 0 {
			e.maxImportDepth = n
		}
	}
}

// WithImportPaths sets the directories searched for an import statement's
// path when it cannot be loaded as given, per quack.yaml's importPaths
// field (spec's AMBIENT STACK "import search paths").
func WithImportPaths(paths []string) Option {
	return func(e *Evaluator) { e.importPaths = paths }
}

// New constructs an Evaluator with a fresh Memory/State/Attributes registry.
// tokenize/parse are injected per spec §1 ("consumed via a minimal
// interface"); this repository supplies internal/lexer.Tokenize and
// internal/parser.Parse (see pkg/quack for the wiring).
func New(h host.System, tokenize TokenizeFunc, parse ParseFunc, opts ...Option) *Evaluator {
	e := &Evaluator{
		Memory:         runtime.NewEnvironment(),
		State:          runtime.NewState(),
		Host:           h,
		Attributes:     attributes.NewRegistry(),
		Tokenize:       tokenize,
		Parse:          parse,
		maxImportDepth: 64,
		importStack:    make(map[string]bool),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Evaluator) logf(format string, args ...any) {
	if e.trace != nil {
		e.trace(format, args...)
	}
}
