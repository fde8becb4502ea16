package ast

import "github.com/quackscript/quack/pkg/token"

// Declaration binds a new identifier in the current scope:
// QUACK <id> <- <expr>🦆, optionally with a declared type and "optional"
// modifier supplied by the parser.
type Declaration struct {
	Identifier      string
	DeclaratorType  string // "constant" or "variable"
	Value           Expression
	DeclaredType    string // "" if inferred from the value
	IsOptional      bool
	Position        token.Position
}

func (d *Declaration) Pos() token.Position { return d.Position }
func (d *Declaration) String() string      { return "QUACK " + d.Identifier }
func (d *Declaration) statementNode()      {}

// Assignment rebinds an existing identifier's value. Per spec §4.6.4 the
// RHS is itself a Statement (forward-compatible guard); only an
// ExpressionStatement RHS is legal today.
type Assignment struct {
	Identifier string
	Value      Statement
	Position   token.Position
}

func (a *Assignment) Pos() token.Position { return a.Position }
func (a *Assignment) String() string      { return a.Identifier + " = ..." }
func (a *Assignment) statementNode()      {}

// ExpressionStatement wraps a bare expression used as a statement.
type ExpressionStatement struct {
	Expr     Expression
	Position token.Position
}

func (e *ExpressionStatement) Pos() token.Position { return e.Position }
func (e *ExpressionStatement) String() string      { return e.Expr.String() }
func (e *ExpressionStatement) statementNode()      {}

// ReturnStatement evaluates Value and escapes the enclosing code block via
// the Return control-flow signal.
type ReturnStatement struct {
	Value    Expression
	Position token.Position
}

func (r *ReturnStatement) Pos() token.Position { return r.Position }
func (r *ReturnStatement) String() string      { return "return " + r.Value.String() }
func (r *ReturnStatement) statementNode()      {}

// IfStatement evaluates Condition and runs TrueBlock or FalseBlock.
type IfStatement struct {
	Condition  Expression
	TrueBlock  *CodeBlock
	FalseBlock *CodeBlock // nil if no else
	Position   token.Position
}

func (i *IfStatement) Pos() token.Position { return i.Position }
func (i *IfStatement) String() string      { return "if " + i.Condition.String() }
func (i *IfStatement) statementNode()      {}

// ImportStatement loads and evaluates another source file in the current
// global environment. Legal only in the leading run of module statements.
type ImportStatement struct {
	Path     string
	Position token.Position
}

func (im *ImportStatement) Pos() token.Position { return im.Position }
func (im *ImportStatement) String() string      { return "import " + im.Path }
func (im *ImportStatement) statementNode()      {}
