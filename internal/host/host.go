// Package host defines the System façade the evaluator uses for all
// observable effects (spec §4.5, §6.1), generalizing the teacher's
// io.Writer-injection pattern (CWBudde-go-dws interp.New) into three
// independently injectable callables.
package host

import (
	"bytes"
	"fmt"
	"os"

	"github.com/quackscript/quack/internal/runtime"
)

// System is the embedding host's interface into the evaluator.
type System interface {
	Stdout(runtime.TextLiteral)
	Stderr(runtime.TextLiteral)
	LoadFile(path string) (string, error)
}

// StdSystem writes to the process's standard streams and loads files from
// the local filesystem.
type StdSystem struct{}

func (StdSystem) Stdout(t runtime.TextLiteral) { fmt.Fprintln(os.Stdout, t.Value) }
func (StdSystem) Stderr(t runtime.TextLiteral) { fmt.Fprintln(os.Stderr, t.Value) }
func (StdSystem) LoadFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// BufferSystem captures output in memory, for embedding and tests.
type BufferSystem struct {
	Out bytes.Buffer
	Err bytes.Buffer
}

func (b *BufferSystem) Stdout(t runtime.TextLiteral) { b.Out.WriteString(t.Value + "\n") }
func (b *BufferSystem) Stderr(t runtime.TextLiteral) { b.Err.WriteString(t.Value + "\n") }
func (b *BufferSystem) LoadFile(path string) (string, error) {
	return "", fmt.Errorf("ImportUnsupported: BufferSystem cannot load files (%s)", path)
}
