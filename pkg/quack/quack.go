// Package quack is the embeddable facade over QuackScript: it wires
// internal/lexer, internal/parser, internal/evaluator and internal/stdlib
// into a single entry point, mirroring the way the teacher's cmd package
// wires its own interpreter package together before exposing it to cobra
// commands.
package quack

import (
	"github.com/quackscript/quack/internal/ast"
	"github.com/quackscript/quack/internal/config"
	"github.com/quackscript/quack/internal/evaluator"
	"github.com/quackscript/quack/internal/host"
	"github.com/quackscript/quack/internal/lexer"
	"github.com/quackscript/quack/internal/parser"
	"github.com/quackscript/quack/internal/stdlib"
)

// Interpreter bundles an Evaluator with its host, ready to run source text
// or pre-parsed modules.
type Interpreter struct {
	Host host.System
	eval *evaluator.Evaluator
}

// Option configures a new Interpreter.
type Option func(*evaluator.Evaluator)

// WithTrace forwards to evaluator.WithTrace.
func WithTrace(fn func(format string, args ...any)) Option {
	return Option(evaluator.WithTrace(fn))
}

// WithConfig applies a quack.yaml-derived Config's depth limits and import
// search paths.
func WithConfig(cfg config.Config) Option {
	return func(e *evaluator.Evaluator) {
		evaluator.WithMaxCallDepth(cfg.MaxCallDepth)(e)
		evaluator.WithMaxImportDepth(cfg.MaxImportDepth)(e)
		evaluator.WithImportPaths(cfg.ImportPaths)(e)
	}
}

// New constructs an Interpreter against the given host, with the standard
// library installed and lexer.Tokenize/parser.Parse wired in as the
// evaluator's external collaborators (spec §1).
func New(h host.System, opts ...Option) *Interpreter {
	evalOpts := make([]evaluator.Option, 0, len(opts)+1)
	evalOpts = append(evalOpts, evaluator.WithStdlib(stdlib.Install))
	for _, o := range opts {
		evalOpts = append(evalOpts, evaluator.Option(o))
	}
	return &Interpreter{
		Host: h,
		eval: evaluator.New(h, lexer.Tokenize, parser.Parse, evalOpts...),
	}
}

// Run tokenizes, parses and executes source text in one call.
func (i *Interpreter) Run(source string) error {
	mod, err := i.Parse(source)
	if err != nil {
		return err
	}
	return i.eval.Execute(mod)
}

// Parse tokenizes and parses source text without executing it, useful for
// --dump-ast style tooling.
func (i *Interpreter) Parse(source string) (*ast.Module, error) {
	toks, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	return parser.Parse(toks)
}

// Execute runs an already-parsed module.
func (i *Interpreter) Execute(mod *ast.Module) error {
	return i.eval.Execute(mod)
}

// Evaluator exposes the underlying evaluator for embedders that need direct
// access to Memory/State, e.g. to register additional InternalFuncs.
func (i *Interpreter) Evaluator() *evaluator.Evaluator {
	return i.eval
}
