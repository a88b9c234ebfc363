// Package rdparser implements a recursive descent parser for glox
// statements.
package rdparser

import (
	"fmt"
	"strconv"

	"github.com/glox-lang/glox/ast"
	"github.com/glox-lang/glox/lox"
	"github.com/glox-lang/glox/parser/lexer"
	"github.com/glox-lang/glox/parser/token"
)

// maxArgs bounds parameter and argument list lengths.
const maxArgs = 255

// Parser is a glox parser.
type Parser struct {
	lex  *lexer.Lexer
	curr *token.Token
	peek *token.Token
	errs lox.ErrorList
}

// New initializes and returns a new Parser that reads tokens from scanner.
func New(scanner *token.Scanner) *Parser {
	p := &Parser{
		lex: lexer.New(scanner),
	}
	p.initTokens()
	return p
}

func (p *Parser) initTokens() {
	// Setup the peek token so the parser is in the proper state when the first
	// parse function is called.
	p.ReadToken()
}

// ParseProgram parses declarations until end of input.  On a statement-level
// failure the parser synchronizes and resumes, so the returned error is a
// lox.ErrorList that can report several independent syntax errors.
func (p *Parser) ParseProgram() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.check(token.EOF) {
		s, err := p.declaration()
		if err != nil {
			p.record(err)
			p.synchronize()
			continue
		}
		stmts = append(stmts, s)
	}
	return stmts, p.errs.Err()
}

func (p *Parser) declaration() (ast.Stmt, error) {
	if p.expect(token.FUN) {
		return p.function()
	}
	if p.expect(token.VAR) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) statement() (ast.Stmt, error) {
	switch {
	case p.expect(token.FOR):
		return p.forStatement()
	case p.expect(token.IF):
		return p.ifStatement()
	case p.expect(token.PRINT):
		return p.printStatement()
	case p.expect(token.RETURN):
		return p.returnStatement()
	case p.expect(token.WHILE):
		return p.whileStatement()
	case p.expect(token.BRACE_L):
		list, err := p.block()
		if err != nil {
			return nil, err
		}
		return &ast.Block{List: list}, nil
	}
	return p.expressionStatement()
}

func (p *Parser) function() (ast.Stmt, error) {
	name, err := p.consume(token.IDENT, "Expect function name.")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.PAREN_L, "Expect '(' after function name."); err != nil {
		return nil, err
	}
	var params []*token.Token
	if !p.check(token.PAREN_R) {
		for {
			if len(params) >= maxArgs {
				return nil, lox.FromToken(lox.SyntaxError, p.peek,
					"Can't have more than %d parameters.", maxArgs)
			}
			param, err := p.consume(token.IDENT, "Expect parameter name.")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.expect(token.COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(token.PAREN_R, "Expect ')' after parameters."); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.BRACE_L, "Expect '{' before function body."); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.Function{Name: name, Params: params, Body: body}, nil
}

func (p *Parser) varDeclaration() (ast.Stmt, error) {
	name, err := p.consume(token.IDENT, "Expect variable name.")
	if err != nil {
		return nil, err
	}
	var init ast.Expr
	if p.expect(token.EQUAL) {
		init, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &ast.Var{Name: name, Init: init}, nil
}

// forStatement desugars a for loop into an initializer block wrapping a
// while loop, with the increment appended to the body inside an implicit
// block.  A missing condition defaults to true.
func (p *Parser) forStatement() (ast.Stmt, error) {
	if _, err := p.consume(token.PAREN_L, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}
	var init ast.Stmt
	var err error
	switch {
	case p.expect(token.SEMICOLON):
	case p.expect(token.VAR):
		init, err = p.varDeclaration()
	default:
		init, err = p.expressionStatement()
	}
	if err != nil {
		return nil, err
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	var incr ast.Expr
	if !p.check(token.PAREN_R) {
		incr, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.PAREN_R, "Expect ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	if incr != nil {
		body = &ast.Block{List: []ast.Stmt{body, &ast.ExprStmt{X: incr}}}
	}
	if cond == nil {
		cond = &ast.BoolLit{Value: true}
	}
	body = &ast.While{Cond: cond, Body: body}
	if init != nil {
		body = &ast.Block{List: []ast.Stmt{init, body}}
	}
	return body, nil
}

func (p *Parser) ifStatement() (ast.Stmt, error) {
	if _, err := p.consume(token.PAREN_L, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.PAREN_R, "Expect ')' after if condition."); err != nil {
		return nil, err
	}
	then, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch ast.Stmt
	if p.expect(token.ELSE) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.If{Cond: cond, Then: then, Else: elseBranch}, nil
}

func (p *Parser) printStatement() (ast.Stmt, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return &ast.Print{X: value}, nil
}

func (p *Parser) returnStatement() (ast.Stmt, error) {
	keyword := p.Token()
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		v, err := p.expression()
		if err != nil {
			return nil, err
		}
		value = v
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after return value."); err != nil {
		return nil, err
	}
	return &ast.Return{Keyword: keyword, Value: value}, nil
}

func (p *Parser) whileStatement() (ast.Stmt, error) {
	if _, err := p.consume(token.PAREN_L, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.PAREN_R, "Expect ')' after while condition."); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.While{Cond: cond, Body: body}, nil
}

func (p *Parser) expressionStatement() (ast.Stmt, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{X: value}, nil
}

func (p *Parser) block() ([]ast.Stmt, error) {
	var list []ast.Stmt
	for !p.check(token.BRACE_R) && !p.check(token.EOF) {
		s, err := p.declaration()
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	if _, err := p.consume(token.BRACE_R, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return list, nil
}

func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.logicOr()
	if err != nil {
		return nil, err
	}
	if p.expect(token.EQUAL) {
		equals := p.Token()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		if v, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: v.Name, Value: value}, nil
		}
		return nil, lox.FromToken(lox.SyntaxError, equals, "Invalid assignment target.")
	}
	return expr, nil
}

func (p *Parser) logicOr() (ast.Expr, error) {
	expr, err := p.logicAnd()
	if err != nil {
		return nil, err
	}
	for p.expect(token.OR) {
		op := p.Token()
		right, err := p.logicAnd()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) logicAnd() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.expect(token.AND) {
		op := p.Token()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	return p.binary(p.comparison, token.BANG_EQUAL, token.EQUAL_EQUAL)
}

func (p *Parser) comparison() (ast.Expr, error) {
	return p.binary(p.term, token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL)
}

func (p *Parser) term() (ast.Expr, error) {
	return p.binary(p.factor, token.MINUS, token.PLUS)
}

func (p *Parser) factor() (ast.Expr, error) {
	return p.binary(p.unary, token.SLASH, token.STAR)
}

// binary parses one left-associative tier by repeatedly consuming an
// operator of that tier followed by the next-higher tier.
func (p *Parser) binary(next func() (ast.Expr, error), ops ...token.Type) (ast.Expr, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for p.expect(ops...) {
		op := p.Token()
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.expect(token.BANG, token.MINUS) {
		op := p.Token()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: op, Right: right}, nil
	}
	return p.call()
}

func (p *Parser) call() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.expect(token.PAREN_L) {
		expr, err = p.finishCall(expr)
		if err != nil {
			return nil, err
		}
	}
	return expr, nil
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, error) {
	var args []ast.Expr
	if !p.check(token.PAREN_R) {
		for {
			if len(args) >= maxArgs {
				return nil, lox.FromToken(lox.SyntaxError, p.peek,
					"Can't have more than %d arguments.", maxArgs)
			}
			a, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, a)
			if !p.expect(token.COMMA) {
				break
			}
		}
	}
	paren, err := p.consume(token.PAREN_R, "Expect ')' after arguments.")
	if err != nil {
		return nil, err
	}
	return &ast.Call{Callee: callee, Paren: paren, Args: args}, nil
}

func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.expect(token.FALSE):
		return &ast.BoolLit{Tok: p.Token(), Value: false}, nil
	case p.expect(token.TRUE):
		return &ast.BoolLit{Tok: p.Token(), Value: true}, nil
	case p.expect(token.NIL):
		return &ast.NilLit{Tok: p.Token()}, nil
	case p.expect(token.NUMBER):
		return p.numberLit(p.Token())
	case p.expect(token.STRING):
		return p.stringLit(p.Token())
	case p.expect(token.IDENT):
		return &ast.Variable{Name: p.Token()}, nil
	case p.expect(token.PAREN_L):
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.PAREN_R, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &ast.Grouping{Inner: inner}, nil
	case p.check(token.ERROR), p.check(token.INVALID):
		p.ReadToken()
		return nil, p.lexError(p.Token())
	}
	return nil, lox.FromToken(lox.SyntaxError, p.peek, "Expect expression.")
}

func (p *Parser) numberLit(tok *token.Token) (ast.Expr, error) {
	if x, ok := tok.Lit.(float64); ok {
		return &ast.NumberLit{Tok: tok, Value: x}, nil
	}
	x, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil {
		return nil, lox.FromToken(lox.SyntaxError, tok, "Invalid number literal.")
	}
	return &ast.NumberLit{Tok: tok, Value: x}, nil
}

func (p *Parser) stringLit(tok *token.Token) (ast.Expr, error) {
	if s, ok := tok.Lit.(string); ok {
		return &ast.StringLit{Tok: tok, Value: s}, nil
	}
	return &ast.StringLit{Tok: tok, Value: tok.Text}, nil
}

// lexError converts an ERROR token emitted by the lexer into an error
// value.  The offending lexeme, when the lexer recorded one, becomes the
// place text; otherwise the failure was at end of input.
func (p *Parser) lexError(tok *token.Token) *lox.Error {
	e := &lox.Error{
		Kind:    lox.LexError,
		Message: tok.Text,
		Place:   "at end",
	}
	if tok.Source != nil {
		e.Line = tok.Source.Line
		e.Col = tok.Source.Col
	}
	if lexeme, ok := tok.Lit.(string); ok {
		e.Place = fmt.Sprintf("at '%s'", lexeme)
	}
	return e
}

func (p *Parser) record(err error) {
	if e, ok := err.(*lox.Error); ok {
		p.errs = append(p.errs, e)
		return
	}
	p.errs = append(p.errs, &lox.Error{Kind: lox.SyntaxError, Message: err.Error()})
}

// synchronize discards tokens after a parse failure until a statement
// boundary: just past a terminating ';', at a token that can begin a
// declaration, or at end of input.
func (p *Parser) synchronize() {
	p.ReadToken()
	for !p.check(token.EOF) {
		if p.curr != nil && p.curr.Type == token.SEMICOLON {
			return
		}
		switch p.peek.Type {
		case token.CLASS, token.FUN, token.VAR, token.FOR,
			token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.ReadToken()
	}
}

// ReadToken advances the token window by one.
func (p *Parser) ReadToken() *token.Token {
	p.curr = p.peek
	p.peek = p.lex.NextToken()
	return p.curr
}

// Token returns the most recently consumed token.
func (p *Parser) Token() *token.Token {
	return p.curr
}

// Peek returns the next unconsumed token.
func (p *Parser) Peek() *token.Token {
	return p.peek
}

func (p *Parser) check(typ token.Type) bool {
	return p.peek.Type == typ
}

func (p *Parser) consume(typ token.Type, message string) (*token.Token, error) {
	if p.expect(typ) {
		return p.Token(), nil
	}
	return nil, lox.FromToken(lox.SyntaxError, p.peek, message)
}

func (p *Parser) expect(typ ...token.Type) bool {
	peekType := p.peek.Type
	if len(typ) == 0 {
		return peekType != token.EOF
	}
	for _, typ := range typ {
		if typ == peekType {
			p.ReadToken()
			return true
		}
	}
	return false
}
