package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glox-lang/glox/parser/token"
)

func tok(typ token.Type, text string) *token.Token {
	return &token.Token{Type: typ, Text: text}
}

func TestExprString(t *testing.T) {
	tests := []struct {
		expr Expr
		want string
	}{
		{&NumberLit{Value: 1}, "1"},
		{&NumberLit{Value: 2.5}, "2.5"},
		{&StringLit{Value: "hi"}, `"hi"`},
		{&BoolLit{Value: true}, "true"},
		{&NilLit{}, "nil"},
		{&Variable{Name: tok(token.IDENT, "x")}, "x"},
		{
			&Assign{Name: tok(token.IDENT, "x"), Value: &NumberLit{Value: 1}},
			"(= x 1)",
		},
		{
			&Unary{Op: tok(token.MINUS, "-"), Right: &NumberLit{Value: 1}},
			"(- 1)",
		},
		{
			&Binary{
				Left:  &NumberLit{Value: 1},
				Op:    tok(token.PLUS, "+"),
				Right: &Binary{Left: &NumberLit{Value: 2}, Op: tok(token.STAR, "*"), Right: &NumberLit{Value: 3}},
			},
			"(+ 1 (* 2 3))",
		},
		{
			&Logical{Left: &BoolLit{Value: false}, Op: tok(token.OR, "or"), Right: &BoolLit{Value: true}},
			"(or false true)",
		},
		{
			&Grouping{Inner: &NumberLit{Value: 1}},
			"1",
		},
		{
			&Call{
				Callee: &Variable{Name: tok(token.IDENT, "f")},
				Args:   []Expr{&NumberLit{Value: 1}, &NumberLit{Value: 2}},
			},
			"f(1, 2)",
		},
		{
			&Call{Callee: &Variable{Name: tok(token.IDENT, "f")}},
			"f()",
		},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.expr.String())
	}
}

func TestStmtString(t *testing.T) {
	x := &Variable{Name: tok(token.IDENT, "x")}
	tests := []struct {
		stmt Stmt
		want string
	}{
		{&ExprStmt{X: x}, "x;"},
		{&Print{X: x}, "print x;"},
		{&Var{Name: tok(token.IDENT, "x")}, "var x;"},
		{&Var{Name: tok(token.IDENT, "x"), Init: &NumberLit{Value: 1}}, "var x = 1;"},
		{&Return{}, "return;"},
		{&Return{Value: x}, "return x;"},
		{&Block{}, "{ }"},
		{
			&Block{List: []Stmt{&ExprStmt{X: x}, &Print{X: x}}},
			"{ x;  print x; }",
		},
		{
			&If{Cond: x, Then: &Print{X: x}},
			"if (x) print x;",
		},
		{
			&If{Cond: x, Then: &Print{X: x}, Else: &Return{}},
			"if (x) print x; else return;",
		},
		{
			&While{Cond: x, Body: &Block{}},
			"while (x) { }",
		},
		{
			&Function{
				Name:   tok(token.IDENT, "f"),
				Params: []*token.Token{tok(token.IDENT, "a"), tok(token.IDENT, "b")},
				Body:   []Stmt{&Return{Value: x}},
			},
			"fun f(a, b) { return x; }",
		},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.stmt.String())
	}
}
