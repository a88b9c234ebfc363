package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glox-lang/glox/parser/token"
)

func lexAll(t *testing.T, src string) []*token.Token {
	t.Helper()
	lex := New(token.NewScanner("test", strings.NewReader(src)))
	var toks []*token.Token
	for {
		tok := lex.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF || tok.Type == token.ERROR {
			return toks
		}
	}
}

func tokenTypes(toks []*token.Token) []token.Type {
	types := make([]token.Type, len(toks))
	for i, tok := range toks {
		types[i] = tok.Type
	}
	return types
}

func TestNextToken(t *testing.T) {
	tests := []struct {
		src   string
		types []token.Type
	}{
		{"", []token.Type{token.EOF}},
		{"   \t\n  ", []token.Type{token.EOF}},
		{"// only a comment", []token.Type{token.EOF}},
		{"(){},.-+;*/", []token.Type{
			token.PAREN_L, token.PAREN_R, token.BRACE_L, token.BRACE_R,
			token.COMMA, token.DOT, token.MINUS, token.PLUS,
			token.SEMICOLON, token.STAR, token.SLASH, token.EOF,
		}},
		{"! != = == < <= > >=", []token.Type{
			token.BANG, token.BANG_EQUAL, token.EQUAL, token.EQUAL_EQUAL,
			token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL,
			token.EOF,
		}},
		{"x == 1 // trailing comment", []token.Type{
			token.IDENT, token.EQUAL_EQUAL, token.NUMBER, token.EOF,
		}},
		{"1.x", []token.Type{token.NUMBER, token.DOT, token.IDENT, token.EOF}},
		{"1.2.3", []token.Type{token.NUMBER, token.DOT, token.NUMBER, token.EOF}},
	}
	for _, test := range tests {
		toks := lexAll(t, test.src)
		assert.Equal(t, test.types, tokenTypes(toks), "source: %q", test.src)
	}
}

func TestKeywords(t *testing.T) {
	src := "and class else false for fun if nil or print return this true var while"
	types := []token.Type{
		token.AND, token.CLASS, token.ELSE, token.FALSE, token.FOR,
		token.FUN, token.IF, token.NIL, token.OR, token.PRINT,
		token.RETURN, token.THIS, token.TRUE, token.VAR,
		token.WHILE, token.EOF,
	}
	assert.Equal(t, types, tokenTypes(lexAll(t, src)))

	// prefixes and extensions are plain identifiers
	toks := lexAll(t, "andx classy orchid iff")
	for _, tok := range toks[:4] {
		assert.Equal(t, token.IDENT, tok.Type, "lexeme: %q", tok.Text)
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		src  string
		want float64
	}{
		{"0", 0},
		{"123", 123},
		{"12.5", 12.5},
		{"0.0001", 0.0001},
	}
	for _, test := range tests {
		toks := lexAll(t, test.src)
		require.Equal(t, token.NUMBER, toks[0].Type, "source: %q", test.src)
		assert.Equal(t, test.src, toks[0].Text)
		assert.Equal(t, test.want, toks[0].Lit)
	}
}

func TestStrings(t *testing.T) {
	toks := lexAll(t, `"hello world"`)
	require.Equal(t, token.STRING, toks[0].Type)
	assert.Equal(t, `"hello world"`, toks[0].Text)
	assert.Equal(t, "hello world", toks[0].Lit)

	// strings may span lines
	toks = lexAll(t, "\"line one\nline two\" x")
	require.Equal(t, token.STRING, toks[0].Type)
	assert.Equal(t, "line one\nline two", toks[0].Lit)
	require.Equal(t, token.IDENT, toks[1].Type)
	assert.Equal(t, 2, toks[1].Source.Line)
}

func TestUnterminatedString(t *testing.T) {
	toks := lexAll(t, `"no closing quote`)
	last := toks[len(toks)-1]
	require.Equal(t, token.ERROR, last.Type)
	assert.Equal(t, "Unterminated string.", last.Text)
	assert.Nil(t, last.Lit)
}

func TestUnexpectedCharacter(t *testing.T) {
	toks := lexAll(t, "var x = @;")
	last := toks[len(toks)-1]
	require.Equal(t, token.ERROR, last.Type)
	assert.Equal(t, "Unexpected character.", last.Text)
	assert.Equal(t, "@", last.Lit)
}

func TestLocations(t *testing.T) {
	toks := lexAll(t, "var x = 1;\nprint x;")
	require.Len(t, toks, 9)
	wantCols := []struct {
		line int
		col  int
	}{
		{1, 1}, {1, 5}, {1, 7}, {1, 9}, {1, 10},
		{2, 1}, {2, 7}, {2, 8},
	}
	for i, want := range wantCols {
		require.NotNil(t, toks[i].Source)
		assert.Equal(t, want.line, toks[i].Source.Line, "token %d %q", i, toks[i].Text)
		assert.Equal(t, want.col, toks[i].Source.Col, "token %d %q", i, toks[i].Text)
	}
}
