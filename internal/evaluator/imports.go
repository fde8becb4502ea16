package evaluator

import (
	"path/filepath"

	"github.com/quackscript/quack/internal/ast"
	"github.com/quackscript/quack/internal/rerrors"
)

// executeImport implements spec §4.7: the host loads the source, it is
// tokenized and parsed, then evaluated as a nested module sharing the
// current global environment (flat, first-wins namespace — a
// redeclaration inside the imported module still raises RedeclarationError
// the normal way). A path-set guard raises ImportCycle where the original
// DWScript-style behavior would recurse infinitely (spec §9).
func (e *Evaluator) executeImport(imp *ast.ImportStatement) error {
	src, resolved, err := e.loadImport(imp.Path)
	if err != nil {
		return rerrors.New(rerrors.ImportUnsupported, imp.Position, "failed to load %q: %v", imp.Path, err)
	}

	if e.importStack[resolved] {
		return rerrors.New(rerrors.ImportCycle, imp.Position, "import cycle detected for %q", resolved)
	}
	if len(e.importStack) >= e.maxImportDepth {
		return rerrors.New(rerrors.ImportUnsupported, imp.Position, "import depth exceeds %d", e.maxImportDepth)
	}

	toks, err := e.Tokenize(src)
	if err != nil {
		return rerrors.New(rerrors.SyntaxError, imp.Position, "%v", err)
	}
	mod, err := e.Parse(toks)
	if err != nil {
		return rerrors.New(rerrors.SyntaxError, imp.Position, "%v", err)
	}

	e.importStack[resolved] = true
	defer delete(e.importStack, resolved)

	// Imports share the importer's environment: no ClearMemory here, only
	// the top-level Execute call resets Memory.
	return e.ExecuteModule(mod)
}

// loadImport resolves imp.Path to a loadable source file: first as given,
// then under each configured import search path (quack.yaml's
// importPaths), in order. Returns the loaded source and the path that
// actually resolved, used as the cycle-guard key so that two import
// statements resolving to the same file are recognized as the same import.
func (e *Evaluator) loadImport(path string) (src string, resolved string, err error) {
	if src, err = e.Host.LoadFile(path); err == nil {
		return src, path, nil
	}
	firstErr := err
	for _, dir := range e.importPaths {
		candidate := filepath.Join(dir, path)
		if src, err = e.Host.LoadFile(candidate); err == nil {
			return src, candidate, nil
		}
	}
	return "", "", firstErr
}
