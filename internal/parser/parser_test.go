package parser

import (
	"testing"

	"github.com/quackscript/quack/internal/ast"
	"github.com/quackscript/quack/internal/lexer"
)

func mustParse(t *testing.T, src string) *ast.Module {
	t.Helper()
	toks, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", src, err)
	}
	mod, err := Parse(toks)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return mod
}

func TestParseDeclaration(t *testing.T) {
	mod := mustParse(t, "QUACK x <- 2 + 3🦆")
	if len(mod.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(mod.Statements))
	}
	decl, ok := mod.Statements[0].(*ast.Declaration)
	if !ok {
		t.Fatalf("got %T, want *ast.Declaration", mod.Statements[0])
	}
	if decl.Identifier != "x" || decl.DeclaratorType != "variable" {
		t.Errorf("got %+v", decl)
	}
	bin, ok := decl.Value.(*ast.BinaryExpression)
	if !ok || bin.Operator != "+" {
		t.Errorf("got %+v, want a '+' BinaryExpression", decl.Value)
	}
}

func TestParseConstDeclaration(t *testing.T) {
	mod := mustParse(t, "QUACK const pi <- 3🦆")
	decl := mod.Statements[0].(*ast.Declaration)
	if decl.DeclaratorType != "constant" || decl.Identifier != "pi" {
		t.Errorf("got %+v", decl)
	}
}

func TestParseFuncLiteralAndCall(t *testing.T) {
	mod := mustParse(t, "QUACK greet <- (:name:) :> {: return 'hi ' + name🦆 :}🦆 greet(:'ada':)🦆")
	if len(mod.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(mod.Statements))
	}
	decl := mod.Statements[0].(*ast.Declaration)
	fn, ok := decl.Value.(*ast.FuncLiteral)
	if !ok {
		t.Fatalf("got %T, want *ast.FuncLiteral", decl.Value)
	}
	if len(fn.Parameters) != 1 || fn.Parameters[0].Identifier != "name" {
		t.Errorf("got params %+v", fn.Parameters)
	}
	if len(fn.Body.Statements) != 1 {
		t.Fatalf("got %d body statements, want 1", len(fn.Body.Statements))
	}
	if _, ok := fn.Body.Statements[0].(*ast.ReturnStatement); !ok {
		t.Errorf("got %T, want *ast.ReturnStatement", fn.Body.Statements[0])
	}

	exprStmt, ok := mod.Statements[1].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("got %T, want *ast.ExpressionStatement", mod.Statements[1])
	}
	call, ok := exprStmt.Expr.(*ast.FuncCall)
	if !ok || call.Identifier != "greet" || len(call.Args) != 1 {
		t.Errorf("got %+v", exprStmt.Expr)
	}
}

func TestParseAssignment(t *testing.T) {
	mod := mustParse(t, "QUACK x <- 1🦆 x <- 2🦆")
	if _, ok := mod.Statements[1].(*ast.Assignment); !ok {
		t.Fatalf("got %T, want *ast.Assignment", mod.Statements[1])
	}
}

func TestParseIfElse(t *testing.T) {
	mod := mustParse(t, "if true then QUACK x <- 1🦆 else QUACK x <- 2🦆 end🦆")
	ifStmt, ok := mod.Statements[0].(*ast.IfStatement)
	if !ok {
		t.Fatalf("got %T, want *ast.IfStatement", mod.Statements[0])
	}
	if len(ifStmt.TrueBlock.Statements) != 1 || ifStmt.FalseBlock == nil || len(ifStmt.FalseBlock.Statements) != 1 {
		t.Errorf("got %+v", ifStmt)
	}
}

func TestParseAccessorChain(t *testing.T) {
	mod := mustParse(t, "x.upper(::)🦆")
	exprStmt := mod.Statements[0].(*ast.ExpressionStatement)
	acc, ok := exprStmt.Expr.(*ast.AccessorExpression)
	if !ok {
		t.Fatalf("got %T, want *ast.AccessorExpression", exprStmt.Expr)
	}
	if _, ok := acc.Selector.(*ast.FuncCall); !ok {
		t.Errorf("got %T, want *ast.FuncCall selector", acc.Selector)
	}
}

func TestParseImportNotAtTopIsAccepted(t *testing.T) {
	// The parser itself never rejects import placement; that rule is the
	// evaluator's job (ImportNotAtTop), not the parser's.
	mod := mustParse(t, "QUACK x <- 1🦆 import 'lib.qk'🦆")
	if len(mod.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(mod.Statements))
	}
	if _, ok := mod.Statements[1].(*ast.ImportStatement); !ok {
		t.Errorf("got %T, want *ast.ImportStatement", mod.Statements[1])
	}
}
