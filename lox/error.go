package lox

import (
	"fmt"
	"strings"

	"github.com/glox-lang/glox/parser/token"
)

// Kind classifies glox errors.
type Kind uint

// Possible Kind values.
const (
	LexError Kind = iota
	SyntaxError
	TypeError
	NameError
	ArityError

	numKinds
)

func (k Kind) String() string {
	kindStrings := [numKinds]string{
		LexError:    "lexical error",
		SyntaxError: "syntax error",
		TypeError:   "type error",
		NameError:   "name error",
		ArityError:  "arity error",
	}
	if k >= numKinds {
		return "error"
	}
	return kindStrings[k]
}

// Error is a source-positioned glox error.  Errors are ordinary values; bad
// programs never abort the process.
type Error struct {
	Kind    Kind
	Line    int
	Col     int
	Place   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d, col %d] Error %s: %s", e.Line, e.Col, e.Place, e.Message)
}

// NewError returns an error of kind at an explicit source position.
func NewError(kind Kind, line, col int, place, format string, v ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Line:    line,
		Col:     col,
		Place:   place,
		Message: fmt.Sprintf(format, v...),
	}
}

// FromToken returns an error of kind positioned at tok.  The place text is
// "at end" for EOF tokens and quotes the lexeme otherwise.
func FromToken(kind Kind, tok *token.Token, format string, v ...interface{}) *Error {
	e := &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, v...),
	}
	if tok.Source != nil {
		e.Line = tok.Source.Line
		e.Col = tok.Source.Col
	}
	if tok.Type == token.EOF {
		e.Place = "at end"
	} else {
		e.Place = fmt.Sprintf("at '%s'", tok.Text)
	}
	return e
}

// ErrorList collects the independent errors surfaced by a single parse.
type ErrorList []*Error

func (l ErrorList) Error() string {
	msgs := make([]string, len(l))
	for i, e := range l {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}

// Err returns l as an error, or nil when l is empty.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}
