package evaluator

import (
	"github.com/quackscript/quack/internal/ast"
	"github.com/quackscript/quack/internal/rerrors"
	"github.com/quackscript/quack/internal/runtime"
)

// Execute runs module end to end (spec §6.2): it clears Memory, installs
// the standard library, drains leading imports, evaluates the remaining
// statements (printing non-Nothing results), and routes any RuntimeError to
// Stderr rather than propagating it. Errors that are not a
// *rerrors.RuntimeError (for example one returned by an embedder-registered
// InternalFunc) are returned unchanged; a failed import load is already
// wrapped as an ImportUnsupported RuntimeError and goes to Stderr.
func (e *Evaluator) Execute(module *ast.Module) error {
	e.Memory.ClearMemory()
	e.importStack = make(map[string]bool)
	if e.stdlibInstall != nil {
		e.stdlibInstall(e)
	}

	err := e.ExecuteModule(module)
	if err == nil {
		return nil
	}
	if rerr, ok := err.(*rerrors.RuntimeError); ok {
		e.Host.Stderr(runtime.TextLiteral{Value: rerr.Error()})
		return nil
	}
	return err
}

// ExecuteModule implements spec §4.6.1: the leading contiguous run of
// ImportStatement bodies is drained first (via a cursor over the read-only
// Module, never by mutating it — spec §9), then every remaining statement
// is evaluated, printing non-Nothing expression results to stdout. An
// ImportStatement found after that leading run raises ImportNotAtTop.
func (e *Evaluator) ExecuteModule(module *ast.Module) error {
	leading := module.LeadingImports()

	for i := 0; i < leading; i++ {
		imp := module.Statements[i].(*ast.ImportStatement)
		if err := e.executeImport(imp); err != nil {
			return err
		}
	}

	for i := leading; i < len(module.Statements); i++ {
		stmt := module.Statements[i]
		if _, ok := stmt.(*ast.ImportStatement); ok {
			return rerrors.New(rerrors.ImportNotAtTop, stmt.Pos(), "import must appear before any other statement")
		}
		v, err := e.ExecuteStatement(stmt)
		if err != nil {
			return err
		}
		if v != nil && v.Kind() != runtime.KindNothing {
			e.Host.Stdout(runtime.ConvertValueToText(v))
		}
	}
	return nil
}

// ExecuteCodeBlock implements spec §4.6.7: statements run in order; a
// ReturnStatement escapes the block via the returnSignal panic/recover
// carried up to the nearest function-call frame (see calls.go).
func (e *Evaluator) ExecuteCodeBlock(block *ast.CodeBlock) (runtime.Value, error) {
	for _, stmt := range block.Statements {
		if ret, ok := stmt.(*ast.ReturnStatement); ok {
			if !e.State.InFunction() {
				return nil, rerrors.New(rerrors.ReturnOutsideFunction, ret.Position, "return used outside of a function")
			}
			v, err := e.evalExpression(ret.Value)
			if err != nil {
				return nil, err
			}
			panic(returnSignal{value: v})
		}
		if _, err := e.ExecuteStatement(stmt); err != nil {
			return nil, err
		}
	}
	return runtime.NothingLiteral{}, nil
}
