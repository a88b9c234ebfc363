package rdparser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glox-lang/glox/ast"
	"github.com/glox-lang/glox/lox"
	"github.com/glox-lang/glox/parser/token"
)

func parse(src string) ([]ast.Stmt, error) {
	p := New(token.NewScanner("test", strings.NewReader(src)))
	return p.ParseProgram()
}

func mustParse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	stmts, err := parse(src)
	require.NoError(t, err)
	return stmts
}

func TestPrecedence(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3;", "(+ 1 (* 2 3));"},
		{"(1 + 2) * 3;", "(* (+ 1 2) 3);"},
		{"1 - 2 - 3;", "(- (- 1 2) 3);"},
		{"-1 * 2;", "(* (- 1) 2);"},
		{"!-1;", "(! (- 1));"},
		{"1 < 2 == 3 > 4;", "(== (< 1 2) (> 3 4));"},
		{"a or b and c;", "(or a (and b c));"},
		{"a = b = c;", "(= a (= b c));"},
		{"a and b or c;", "(or (and a b) c);"},
		{"f(1)(2);", "f(1)(2);"},
		{"1 + f(2) * 3;", "(+ 1 (* f(2) 3));"},
	}
	for _, test := range tests {
		stmts := mustParse(t, test.src)
		require.Len(t, stmts, 1, "source: %q", test.src)
		assert.Equal(t, test.want, stmts[0].String(), "source: %q", test.src)
	}
}

func TestForDesugar(t *testing.T) {
	tests := []struct {
		forSrc   string
		whileSrc string
	}{
		{
			"for (var i = 0; i < 3; i = i + 1) print i;",
			"{ var i = 0;  while ((< i 3)) { print i;  (= i (+ i 1)); } }",
		},
		{
			"for (; a < b;) print a;",
			"while ((< a b)) print a;",
		},
		{
			"for (;;) print 1;",
			"while (true) print 1;",
		},
		{
			"for (i = 0; ; i = i + 1) f(i);",
			"{ (= i 0);  while (true) { f(i);  (= i (+ i 1)); } }",
		},
	}
	for _, test := range tests {
		stmts := mustParse(t, test.forSrc)
		require.Len(t, stmts, 1, "source: %q", test.forSrc)
		assert.Equal(t, test.whileSrc, stmts[0].String(), "source: %q", test.forSrc)
	}
}

func TestFunctionDeclaration(t *testing.T) {
	stmts := mustParse(t, "fun add(a, b) { return a + b; }")
	require.Len(t, stmts, 1)
	fn, ok := stmts[0].(*ast.Function)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name.Text)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "fun add(a, b) { return (+ a b); }", fn.String())

	stmts = mustParse(t, "fun zero() {}")
	fn = stmts[0].(*ast.Function)
	assert.Empty(t, fn.Params)
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"var;", "Expect variable name."},
		{"var x = 1", "Expect ';' after variable declaration."},
		{"print 1", "Expect ';' after value."},
		{"(1 + 2;", "Expect ')' after expression."},
		{"if (true print 1;", "Expect ')' after if condition."},
		{"while true) print 1;", "Expect '(' after 'while'."},
		{"fun () {}", "Expect function name."},
		{"fun f(1) {}", "Expect parameter name."},
		{"1 + 2 = 3;", "Invalid assignment target."},
		{"1 +", "Expect expression."},
	}
	for _, test := range tests {
		_, err := parse(test.src)
		require.Error(t, err, "source: %q", test.src)
		assert.Contains(t, err.Error(), test.want, "source: %q", test.src)
	}
}

func TestErrorFormat(t *testing.T) {
	_, err := parse("@")
	require.Error(t, err)
	assert.Equal(t, "[line 1, col 1] Error at '@': Unexpected character.", err.Error())

	_, err = parse("var x = ;")
	require.Error(t, err)
	assert.Equal(t, "[line 1, col 9] Error at ';': Expect expression.", err.Error())
}

func TestErrorRecovery(t *testing.T) {
	// two independent errors are both reported and the trailing statement
	// still parses
	stmts, err := parse("var ; 1 + ; print 3;")
	require.Error(t, err)
	errs, ok := err.(lox.ErrorList)
	require.True(t, ok)
	assert.Len(t, errs, 2)
	require.Len(t, stmts, 1)
	assert.Equal(t, "print 3;", stmts[0].String())
}

func TestErrorRecoveryAcrossLines(t *testing.T) {
	stmts, err := parse("var x = 1;\nvar = 2;\nvar y = 3;")
	require.Error(t, err)
	errs, ok := err.(lox.ErrorList)
	require.True(t, ok)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "Expect variable name.")
	assert.Equal(t, 2, errs[0].Line)
	require.Len(t, stmts, 2)
	assert.Equal(t, "var x = 1;", stmts[0].String())
	assert.Equal(t, "var y = 3;", stmts[1].String())
}
