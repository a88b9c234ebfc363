package lexer

import (
	"io"
	"strconv"
	"unicode"

	"github.com/glox-lang/glox/parser/token"
)

// Lexer scans glox source text into tokens.
type Lexer struct {
	scanner *token.Scanner
	ch      rune // current unicode rune

	readErr error
}

func New(s *token.Scanner) *Lexer {
	lex := &Lexer{
		scanner: s,
	}
	return lex
}

// NextToken scans and returns the next token, emitting an EOF token once the
// source is exhausted.  Lexical failures are emitted as ERROR tokens carrying
// the failure location; the offending lexeme, when there is one, is stored in
// the token's Lit field.
func (lex *Lexer) NextToken() *token.Token {
	for {
		if lex.readErr != nil {
			return lex.emitError(lex.readErr, true)
		}
		lex.readErr = lex.skipWhitespace()
		if lex.readErr != nil {
			return lex.emitError(lex.readErr, true)
		}
		if err := lex.readChar(); err != nil {
			return lex.emitError(err, true)
		}
		switch lex.ch {
		case '(':
			return lex.charToken(token.PAREN_L)
		case ')':
			return lex.charToken(token.PAREN_R)
		case '{':
			return lex.charToken(token.BRACE_L)
		case '}':
			return lex.charToken(token.BRACE_R)
		case ',':
			return lex.charToken(token.COMMA)
		case '.':
			return lex.charToken(token.DOT)
		case '-':
			return lex.charToken(token.MINUS)
		case '+':
			return lex.charToken(token.PLUS)
		case ';':
			return lex.charToken(token.SEMICOLON)
		case '*':
			return lex.charToken(token.STAR)
		case '!':
			return lex.matchToken('=', token.BANG_EQUAL, token.BANG)
		case '=':
			return lex.matchToken('=', token.EQUAL_EQUAL, token.EQUAL)
		case '<':
			return lex.matchToken('=', token.LESS_EQUAL, token.LESS)
		case '>':
			return lex.matchToken('=', token.GREATER_EQUAL, token.GREATER)
		case '/':
			if lex.peekRune() != '/' {
				return lex.charToken(token.SLASH)
			}
			// A comment goes until the end of the line.
			if tok := lex.skipComment(); tok != nil {
				return tok
			}
		case '"':
			return lex.readString()
		default:
			if isDigit(lex.ch) {
				return lex.readNumber()
			}
			if isAlpha(lex.ch) {
				return lex.readIdentifier()
			}
			tok := lex.emit(token.ERROR, "Unexpected character.")
			tok.Lit = string(lex.ch)
			return tok
		}
	}
}

// skipComment consumes a // comment through the end of the line.  It returns
// nil so the caller can continue scanning, or an ERROR token on a read
// failure other than EOF.
func (lex *Lexer) skipComment() *token.Token {
	for lex.peekRune() != '\n' {
		err := lex.readChar()
		if err == io.EOF {
			lex.readErr = err
			lex.scanner.Ignore()
			return nil
		}
		if err != nil {
			return lex.emitError(err, false)
		}
	}
	lex.scanner.Ignore()
	return nil
}

func (lex *Lexer) readString() *token.Token {
	for lex.peekRune() != '"' {
		err := lex.readChar()
		if err == io.EOF {
			// The failure position, not the opening quote, is reported.
			return lex.emitAt(token.ERROR, "Unterminated string.", lex.scanner.Loc())
		}
		if err != nil {
			return lex.emitError(err, false)
		}
	}
	if err := lex.readChar(); err != nil {
		return lex.emitError(err, false)
	}
	tok := lex.scanner.EmitToken(token.STRING)
	tok.Lit = tok.Text[1 : len(tok.Text)-1]
	return tok
}

func (lex *Lexer) readNumber() *token.Token {
	for isDigit(lex.peekRune()) {
		if err := lex.readChar(); err != nil {
			return lex.emitError(err, false)
		}
	}
	// A '.' is part of the number only when a digit follows it.
	if lex.peekRune() == '.' && isDigit(lex.peekNextRune()) {
		if err := lex.readChar(); err != nil {
			return lex.emitError(err, false)
		}
		for isDigit(lex.peekRune()) {
			if err := lex.readChar(); err != nil {
				return lex.emitError(err, false)
			}
		}
	}
	tok := lex.scanner.EmitToken(token.NUMBER)
	x, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil {
		return &token.Token{
			Type:   token.ERROR,
			Text:   "Invalid number literal.",
			Lit:    tok.Text,
			Source: tok.Source,
		}
	}
	tok.Lit = x
	return tok
}

func (lex *Lexer) readIdentifier() *token.Token {
	for isAlphaNumeric(lex.peekRune()) {
		if err := lex.readChar(); err != nil {
			return lex.emitError(err, false)
		}
	}
	tok := lex.scanner.EmitToken(token.IDENT)
	if typ, ok := token.Keyword(tok.Text); ok {
		tok.Type = typ
	}
	return tok
}

func (lex *Lexer) matchToken(next rune, match, fallback token.Type) *token.Token {
	if lex.peekRune() != next {
		return lex.charToken(fallback)
	}
	if err := lex.readChar(); err != nil {
		return lex.emitError(err, false)
	}
	return lex.charToken(match)
}

func (lex *Lexer) emit(typ token.Type, text string) *token.Token {
	return lex.emitAt(typ, text, lex.scanner.LocStart())
}

func (lex *Lexer) emitAt(typ token.Type, text string, loc *token.Location) *token.Token {
	tok := &token.Token{
		Type:   typ,
		Text:   text,
		Source: loc,
	}
	lex.scanner.Ignore()
	return tok
}

func (lex *Lexer) emitError(err error, expectEOF bool) *token.Token {
	if err == io.EOF {
		if expectEOF {
			return lex.emit(token.EOF, "")
		}
		return lex.emit(token.ERROR, "unexpected EOF")
	}
	return lex.emit(token.ERROR, err.Error())
}

func (lex *Lexer) charToken(typ token.Type) *token.Token {
	return lex.scanner.EmitToken(typ)
}

func (lex *Lexer) skipWhitespace() error {
	for unicode.IsSpace(lex.peekRune()) {
		err := lex.readChar()
		if err != nil {
			return err
		}
	}
	lex.scanner.Ignore()
	return nil
}

func (lex *Lexer) peekRune() rune {
	r, _ := lex.scanner.Peek()
	return r
}

func (lex *Lexer) peekNextRune() rune {
	r, _ := lex.scanner.PeekNext()
	return r
}

func (lex *Lexer) readChar() error {
	err := lex.scanner.ScanRune()
	if err != nil {
		return err
	}
	lex.ch = lex.scanner.Rune()
	return nil
}

func isAlpha(c rune) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isAlphaNumeric(c rune) bool {
	return isAlpha(c) || isDigit(c)
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}
