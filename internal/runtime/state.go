package runtime

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/quackscript/quack/pkg/token"
)

// ContextKind tags a pushed State frame. Only ContextFunction exists today;
// the type is open for future loop/conditional contexts so return legality
// can be distinguished per-context (spec §3.3, §4.3).
type ContextKind string

const ContextFunction ContextKind = "function"

// Frame is one entry in the call stack, carrying enough to both enforce
// return legality and render a trace line when --trace is enabled.
type Frame struct {
	Context      ContextKind
	FunctionName string
	Position     token.Position
	CorrelationID uuid.UUID
}

// State is the call-stack component of spec §3.3/§4.3: an independent
// stack of context tags, distinct from Memory's scope stack, generalizing
// the teacher's CallStack.maxDepth stack-overflow guard.
type State struct {
	frames   []Frame
	maxDepth int
}

// NewState returns an empty call stack with the teacher's default maximum
// recursion depth.
func NewState() *State {
	return &State{maxDepth: 256}
}

// SetMaxDepth updates the maximum allowed call depth; depths below 1 reset
// to the default of 256, mirroring the teacher's CallStack.SetMaxDepth.
func (s *State) SetMaxDepth(n int) {
	if n < 1 {
		n = 256
	}
	s.maxDepth = n
}

// Push records a new context frame, reporting a stack overflow if this
// would exceed maxDepth.
func (s *State) Push(ctx ContextKind, functionName string, pos token.Position) (Frame, error) {
	if len(s.frames) >= s.maxDepth {
		return Frame{}, fmt.Errorf("stack overflow: maximum recursion depth (%d) exceeded in function %q", s.maxDepth, functionName)
	}
	f := Frame{Context: ctx, FunctionName: functionName, Position: pos, CorrelationID: uuid.New()}
	s.frames = append(s.frames, f)
	return f, nil
}

// Pop removes the most recent frame. No-op if empty.
func (s *State) Pop() {
	if len(s.frames) > 0 {
		s.frames = s.frames[:len(s.frames)-1]
	}
}

// Peek returns the innermost frame and whether the stack is non-empty.
func (s *State) Peek() (Frame, bool) {
	if len(s.frames) == 0 {
		return Frame{}, false
	}
	return s.frames[len(s.frames)-1], true
}

// InFunction reports whether any enclosing frame is a function context,
// used to enforce ReturnOutsideFunction.
func (s *State) InFunction() bool {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if s.frames[i].Context == ContextFunction {
			return true
		}
	}
	return false
}

// Depth returns the current number of frames.
func (s *State) Depth() int {
	return len(s.frames)
}
