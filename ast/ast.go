// Package ast defines the glox syntax tree.  Nodes are pure data built by
// the parser; the String methods form a fully parenthesizing diagnostic
// printer and are never required for execution.
package ast

import (
	"strconv"
	"strings"

	"github.com/glox-lang/glox/parser/token"
)

// Expr is implemented by all expression nodes.
type Expr interface {
	String() string
	exprNode() // sealed marker
}

// Stmt is implemented by all statement nodes.
type Stmt interface {
	String() string
	stmtNode() // sealed marker
}

// NumberLit is a numeric literal.
type NumberLit struct {
	Tok   *token.Token
	Value float64
}

// StringLit is a string literal, stored without its surrounding quotes.
type StringLit struct {
	Tok   *token.Token
	Value string
}

// BoolLit is a true or false literal.
type BoolLit struct {
	Tok   *token.Token
	Value bool
}

// NilLit is the nil literal.
type NilLit struct {
	Tok *token.Token
}

// Variable is a reference to a named binding.
type Variable struct {
	Name *token.Token
}

// Assign writes Value to an existing binding named by Name.
type Assign struct {
	Name  *token.Token
	Value Expr
}

// Logical is a short-circuiting and/or expression.
type Logical struct {
	Left  Expr
	Op    *token.Token
	Right Expr
}

// Unary is a prefix ! or - expression.
type Unary struct {
	Op    *token.Token
	Right Expr
}

// Binary is an infix arithmetic, comparison, or equality expression.
type Binary struct {
	Left  Expr
	Op    *token.Token
	Right Expr
}

// Call invokes Callee with Args.  Paren is the closing parenthesis, kept for
// error positions.
type Call struct {
	Callee Expr
	Paren  *token.Token
	Args   []Expr
}

// Grouping is a parenthesized expression.
type Grouping struct {
	Inner Expr
}

func (*NumberLit) exprNode() {}
func (*StringLit) exprNode() {}
func (*BoolLit) exprNode()   {}
func (*NilLit) exprNode()    {}
func (*Variable) exprNode()  {}
func (*Assign) exprNode()    {}
func (*Logical) exprNode()   {}
func (*Unary) exprNode()     {}
func (*Binary) exprNode()    {}
func (*Call) exprNode()      {}
func (*Grouping) exprNode()  {}

func (e *NumberLit) String() string {
	return strconv.FormatFloat(e.Value, 'g', -1, 64)
}

func (e *StringLit) String() string {
	return strconv.Quote(e.Value)
}

func (e *BoolLit) String() string {
	return strconv.FormatBool(e.Value)
}

func (e *NilLit) String() string {
	return "nil"
}

func (e *Variable) String() string {
	return e.Name.Text
}

func (e *Assign) String() string {
	return "(= " + e.Name.Text + " " + e.Value.String() + ")"
}

func (e *Logical) String() string {
	return "(" + e.Op.Text + " " + e.Left.String() + " " + e.Right.String() + ")"
}

func (e *Unary) String() string {
	return "(" + e.Op.Text + " " + e.Right.String() + ")"
}

func (e *Binary) String() string {
	return "(" + e.Op.Text + " " + e.Left.String() + " " + e.Right.String() + ")"
}

func (e *Call) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}
	return e.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}

func (e *Grouping) String() string {
	return e.Inner.String()
}

// Block is a brace-delimited statement list executed in a fresh scope.
type Block struct {
	List []Stmt
}

// ExprStmt evaluates X for its value and side effects.
type ExprStmt struct {
	X Expr
}

// Function declares a named function.
type Function struct {
	Name   *token.Token
	Params []*token.Token
	Body   []Stmt
}

// If executes Then or the optional Else depending on Cond.
type If struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

// Print writes the display text of X followed by a newline.
type Print struct {
	X Expr
}

// Return unwinds the enclosing call with an optional value.
type Return struct {
	Keyword *token.Token
	Value   Expr
}

// Var declares a binding in the current scope, with an optional initializer.
type Var struct {
	Name *token.Token
	Init Expr
}

// While repeats Body while Cond is truthy.
type While struct {
	Cond Expr
	Body Stmt
}

func (*Block) stmtNode()    {}
func (*ExprStmt) stmtNode() {}
func (*Function) stmtNode() {}
func (*If) stmtNode()       {}
func (*Print) stmtNode()    {}
func (*Return) stmtNode()   {}
func (*Var) stmtNode()      {}
func (*While) stmtNode()    {}

func (s *Block) String() string {
	return blockString(s.List)
}

func blockString(list []Stmt) string {
	if len(list) == 0 {
		return "{ }"
	}
	stmts := make([]string, len(list))
	for i, s := range list {
		stmts[i] = s.String()
	}
	return "{ " + strings.Join(stmts, "  ") + " }"
}

func (s *ExprStmt) String() string {
	return s.X.String() + ";"
}

func (s *Function) String() string {
	params := make([]string, len(s.Params))
	for i, p := range s.Params {
		params[i] = p.Text
	}
	return "fun " + s.Name.Text + "(" + strings.Join(params, ", ") + ") " + blockString(s.Body)
}

func (s *If) String() string {
	text := "if (" + s.Cond.String() + ") " + s.Then.String()
	if s.Else != nil {
		text += " else " + s.Else.String()
	}
	return text
}

func (s *Print) String() string {
	return "print " + s.X.String() + ";"
}

func (s *Return) String() string {
	if s.Value == nil {
		return "return;"
	}
	return "return " + s.Value.String() + ";"
}

func (s *Var) String() string {
	if s.Init == nil {
		return "var " + s.Name.Text + ";"
	}
	return "var " + s.Name.Text + " = " + s.Init.String() + ";"
}

func (s *While) String() string {
	return "while (" + s.Cond.String() + ") " + s.Body.String()
}
