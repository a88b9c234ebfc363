package token

import "fmt"

// Token is a single lexical unit of glox source text.  Lit holds the decoded
// literal for NUMBER (float64) and STRING (string) tokens and is nil for all
// other types.
type Token struct {
	Type   Type
	Text   string
	Lit    interface{}
	Source *Location
}

type Type uint

// Type constants used by the glox lexer/parser.
const (
	INVALID Type = iota
	ERROR
	EOF

	// Literals
	IDENT
	NUMBER
	STRING

	// Single-character tokens
	PAREN_L
	PAREN_R
	BRACE_L
	BRACE_R
	COMMA
	DOT
	MINUS
	PLUS
	SEMICOLON
	SLASH
	STAR

	// One- or two-character operators
	BANG
	BANG_EQUAL
	EQUAL
	EQUAL_EQUAL
	GREATER
	GREATER_EQUAL
	LESS
	LESS_EQUAL

	// Keywords
	AND
	CLASS
	ELSE
	FALSE
	FUN
	FOR
	IF
	NIL
	OR
	PRINT
	RETURN
	THIS
	TRUE
	VAR
	WHILE

	numTokenTypes
)

func (typ Type) String() string {
	typeStrings := [numTokenTypes]string{
		INVALID:       "invalid",
		ERROR:         "error",
		EOF:           "EOF",
		IDENT:         "identifier",
		NUMBER:        "number",
		STRING:        "string",
		PAREN_L:       "(",
		PAREN_R:       ")",
		BRACE_L:       "{",
		BRACE_R:       "}",
		COMMA:         ",",
		DOT:           ".",
		MINUS:         "-",
		PLUS:          "+",
		SEMICOLON:     ";",
		SLASH:         "/",
		STAR:          "*",
		BANG:          "!",
		BANG_EQUAL:    "!=",
		EQUAL:         "=",
		EQUAL_EQUAL:   "==",
		GREATER:       ">",
		GREATER_EQUAL: ">=",
		LESS:          "<",
		LESS_EQUAL:    "<=",
		AND:           "and",
		CLASS:         "class",
		ELSE:          "else",
		FALSE:         "false",
		FUN:           "fun",
		FOR:           "for",
		IF:            "if",
		NIL:           "nil",
		OR:            "or",
		PRINT:         "print",
		RETURN:        "return",
		THIS:          "this",
		TRUE:          "true",
		VAR:           "var",
		WHILE:         "while",
	}
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

var keywords = map[string]Type{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"fun":    FUN,
	"for":    FOR,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

// Keyword returns the keyword type for text when text is a reserved word.
func Keyword(text string) (Type, bool) {
	typ, ok := keywords[text]
	return typ, ok
}

type Location struct {
	File string
	Line int // line number (starting at 1 when tracked)
	Col  int // line column number (starting at 1 when tracked)
}

func (loc *Location) String() string {
	switch {
	case loc.Line == 0:
		return loc.File
	case loc.Col == 0:
		return fmt.Sprintf("%s:%d", loc.File, loc.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", loc.File, loc.Line, loc.Col)
	}
}
