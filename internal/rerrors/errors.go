// Package rerrors defines the QuackScript runtime error taxonomy (spec §7),
// generalizing the teacher's
// category-tagged InterpreterError (internal/interp/errors.InterpreterError
// in CWBudde-go-dws) to QuackScript's error kinds.
package rerrors

import (
	"fmt"

	"github.com/quackscript/quack/pkg/token"
)

// Kind enumerates the runtime error taxonomy of spec §7.
type Kind string

const (
	UndefinedIdentifier     Kind = "UndefinedIdentifier"
	RedeclarationError      Kind = "RedeclarationError"
	AssignToConstant        Kind = "AssignToConstant"
	TypeMismatch            Kind = "TypeMismatch"
	NullToNonOptional       Kind = "NullToNonOptional"
	ArgumentTypeMismatch    Kind = "ArgumentTypeMismatch"
	ArityMismatch           Kind = "ArityMismatch"
	NotCallable             Kind = "NotCallable"
	CallOnNothing           Kind = "CallOnNothing"
	NonBooleanCondition     Kind = "NonBooleanCondition"
	InvalidBinaryOperand    Kind = "InvalidBinaryOperand"
	InvalidBinaryExpression Kind = "InvalidBinaryExpression"
	UnknownAttribute        Kind = "UnknownAttribute"
	ImportNotAtTop          Kind = "ImportNotAtTop"
	ImportUnsupported       Kind = "ImportUnsupported"
	ImportCycle             Kind = "ImportCycle"
	ReturnOutsideFunction   Kind = "ReturnOutsideFunction"
	StackOverflow           Kind = "StackOverflow"
	SyntaxError             Kind = "SyntaxError"
	InternalAssignmentError Kind = "InternalAssignmentError"
	InternalError           Kind = "InternalError"
)

// RuntimeError is every error the evaluator raises. It is NOT the Return
// control-flow signal — Return is a distinct type so that catching
// RuntimeError can never accidentally swallow a function's return value
// (spec §9).
type RuntimeError struct {
	Kind    Kind
	Message string
	Pos     token.Position
	Source  string // originating source text, for pretty-printing; may be empty
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Kind, e.Pos, e.Message)
}

// New constructs a RuntimeError.
func New(kind Kind, pos token.Position, format string, args ...any) *RuntimeError {
	return &RuntimeError{Kind: kind, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// WithSource attaches the originating source text for pretty-printed
// diagnostics and returns the same error for chaining.
func (e *RuntimeError) WithSource(src string) *RuntimeError {
	e.Source = src
	return e
}
