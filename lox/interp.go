// Package lox implements the glox runtime: values, the environment chain,
// and the tree-walking interpreter.
package lox

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/glox-lang/glox/ast"
	"github.com/glox-lang/glox/parser/token"
)

// Interp executes parsed statements against an environment chain.  An
// Interp holds no script state of its own; the caller owns the Env.
type Interp struct {
	out    io.Writer
	logger *zap.Logger
}

// Option configures an Interp.
type Option func(*Interp)

// WithOutput directs print statement output to w.  The default is stdout.
func WithOutput(w io.Writer) Option {
	return func(interp *Interp) {
		interp.out = w
	}
}

// WithLogger enables debug tracing of calls and returns.
func WithLogger(logger *zap.Logger) Option {
	return func(interp *Interp) {
		interp.logger = logger
	}
}

// New initializes and returns a new Interp.
func New(opts ...Option) *Interp {
	interp := &Interp{
		out:    os.Stdout,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(interp)
	}
	return interp
}

// outcome is the tagged result of executing one statement: a normal
// completion carrying the statement's value, or an unwinding return.  Every
// statement-executing routine propagates a returned outcome instead of using
// a non-local exit.
type outcome struct {
	value    Value
	returned bool
}

// Interpret executes stmts in order against env and returns the value of
// the last statement.  A return statement outside any function halts
// execution and yields its value.
func (interp *Interp) Interpret(stmts []ast.Stmt, env *Env) (Value, error) {
	last := Nil()
	for _, s := range stmts {
		out, err := interp.execute(s, env)
		if err != nil {
			return Nil(), err
		}
		if out.returned {
			return out.value, nil
		}
		last = out.value
	}
	return last, nil
}

func (interp *Interp) execute(s ast.Stmt, env *Env) (outcome, error) {
	switch s := s.(type) {
	case *ast.Block:
		return interp.executeBlock(s.List, env.Child())
	case *ast.ExprStmt:
		v, err := interp.evaluate(s.X, env)
		if err != nil {
			return outcome{}, err
		}
		return outcome{value: v}, nil
	case *ast.Function:
		env.Define(s.Name.Text, FunVal(NewFunction(s, env)))
		return outcome{value: Nil()}, nil
	case *ast.If:
		cond, err := interp.evaluate(s.Cond, env)
		if err != nil {
			return outcome{}, err
		}
		// An if yields the executed branch's value.
		if cond.Truthy() {
			return interp.execute(s.Then, env)
		}
		if s.Else != nil {
			return interp.execute(s.Else, env)
		}
		return outcome{value: Nil()}, nil
	case *ast.Print:
		v, err := interp.evaluate(s.X, env)
		if err != nil {
			return outcome{}, err
		}
		fmt.Fprintln(interp.out, v)
		return outcome{value: Nil()}, nil
	case *ast.Return:
		v := Nil()
		if s.Value != nil {
			var err error
			v, err = interp.evaluate(s.Value, env)
			if err != nil {
				return outcome{}, err
			}
		}
		return outcome{value: v, returned: true}, nil
	case *ast.Var:
		v := Nil()
		if s.Init != nil {
			var err error
			v, err = interp.evaluate(s.Init, env)
			if err != nil {
				return outcome{}, err
			}
		}
		env.Define(s.Name.Text, v)
		return outcome{value: Nil()}, nil
	case *ast.While:
		for {
			cond, err := interp.evaluate(s.Cond, env)
			if err != nil {
				return outcome{}, err
			}
			if !cond.Truthy() {
				break
			}
			out, err := interp.execute(s.Body, env)
			if err != nil {
				return outcome{}, err
			}
			if out.returned {
				return out, nil
			}
		}
		return outcome{value: Nil()}, nil
	}
	panic(fmt.Sprintf("unknown statement type %T", s))
}

// executeBlock runs stmts inside env, propagating any return outcome to the
// caller.  The scope is discarded on exit, so shadowed bindings never leak
// outward.
func (interp *Interp) executeBlock(stmts []ast.Stmt, env *Env) (outcome, error) {
	for _, s := range stmts {
		out, err := interp.execute(s, env)
		if err != nil {
			return outcome{}, err
		}
		if out.returned {
			return out, nil
		}
	}
	return outcome{value: Nil()}, nil
}

func (interp *Interp) evaluate(e ast.Expr, env *Env) (Value, error) {
	switch e := e.(type) {
	case *ast.NumberLit:
		return Number(e.Value), nil
	case *ast.StringLit:
		return String(e.Value), nil
	case *ast.BoolLit:
		return Bool(e.Value), nil
	case *ast.NilLit:
		return Nil(), nil
	case *ast.Grouping:
		return interp.evaluate(e.Inner, env)
	case *ast.Variable:
		return env.Get(e.Name)
	case *ast.Assign:
		v, err := interp.evaluate(e.Value, env)
		if err != nil {
			return Nil(), err
		}
		if err := env.Assign(e.Name, v); err != nil {
			return Nil(), err
		}
		return v, nil
	case *ast.Logical:
		return interp.evalLogical(e, env)
	case *ast.Unary:
		return interp.evalUnary(e, env)
	case *ast.Binary:
		return interp.evalBinary(e, env)
	case *ast.Call:
		return interp.evalCall(e, env)
	}
	panic(fmt.Sprintf("unknown expression type %T", e))
}

// evalLogical short-circuits: the left value itself is returned when it
// decides the result, never a coerced boolean.
func (interp *Interp) evalLogical(e *ast.Logical, env *Env) (Value, error) {
	left, err := interp.evaluate(e.Left, env)
	if err != nil {
		return Nil(), err
	}
	switch e.Op.Type {
	case token.OR:
		if left.Truthy() {
			return left, nil
		}
	case token.AND:
		if !left.Truthy() {
			return left, nil
		}
	}
	return interp.evaluate(e.Right, env)
}

func (interp *Interp) evalUnary(e *ast.Unary, env *Env) (Value, error) {
	right, err := interp.evaluate(e.Right, env)
	if err != nil {
		return Nil(), err
	}
	switch e.Op.Type {
	case token.BANG:
		return Bool(!right.Truthy()), nil
	case token.MINUS:
		if right.Type != VNumber {
			return Nil(), FromToken(TypeError, e.Op, "Operand must be a number.")
		}
		return Number(-right.Num), nil
	}
	panic(fmt.Sprintf("unknown unary operator %s", e.Op.Type))
}

func (interp *Interp) evalBinary(e *ast.Binary, env *Env) (Value, error) {
	left, err := interp.evaluate(e.Left, env)
	if err != nil {
		return Nil(), err
	}
	right, err := interp.evaluate(e.Right, env)
	if err != nil {
		return Nil(), err
	}
	switch e.Op.Type {
	case token.MINUS, token.SLASH, token.STAR:
		if left.Type != VNumber || right.Type != VNumber {
			return Nil(), FromToken(TypeError, e.Op, "Operands must be numbers.")
		}
		switch e.Op.Type {
		case token.MINUS:
			return Number(left.Num - right.Num), nil
		case token.SLASH:
			return Number(left.Num / right.Num), nil
		default:
			return Number(left.Num * right.Num), nil
		}
	case token.PLUS:
		if left.Type == VNumber && right.Type == VNumber {
			return Number(left.Num + right.Num), nil
		}
		if left.Type == VString && right.Type == VString {
			return String(left.Str + right.Str), nil
		}
		return Nil(), FromToken(TypeError, e.Op, "Operands must be two numbers or two strings.")
	case token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL:
		return compare(e.Op.Type, left, right), nil
	case token.EQUAL_EQUAL:
		return Bool(left.Equal(right)), nil
	case token.BANG_EQUAL:
		return Bool(!left.Equal(right)), nil
	}
	panic(fmt.Sprintf("unknown binary operator %s", e.Op.Type))
}

// compare implements the ordered comparisons.  Number pairs and bool pairs
// order natively; any other pairing orders the operands' truthiness, with
// false < true.
func compare(op token.Type, left, right Value) Value {
	var l, r float64
	switch {
	case left.Type == VNumber && right.Type == VNumber:
		l, r = left.Num, right.Num
	case left.Type == VBool && right.Type == VBool:
		l, r = boolOrd(left.Bool), boolOrd(right.Bool)
	default:
		l, r = boolOrd(left.Truthy()), boolOrd(right.Truthy())
	}
	switch op {
	case token.GREATER:
		return Bool(l > r)
	case token.GREATER_EQUAL:
		return Bool(l >= r)
	case token.LESS:
		return Bool(l < r)
	default:
		return Bool(l <= r)
	}
}

func boolOrd(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func (interp *Interp) evalCall(e *ast.Call, env *Env) (Value, error) {
	callee, err := interp.evaluate(e.Callee, env)
	if err != nil {
		return Nil(), err
	}
	args := make([]Value, 0, len(e.Args))
	for _, a := range e.Args {
		v, err := interp.evaluate(a, env)
		if err != nil {
			return Nil(), err
		}
		args = append(args, v)
	}
	if callee.Type != VFun {
		return Nil(), FromToken(TypeError, e.Paren, "Can only call functions and classes.")
	}
	fn := callee.Fun
	if len(args) != fn.Arity() {
		return Nil(), FromToken(ArityError, e.Paren,
			"Expected %d arguments but got %d.", fn.Arity(), len(args))
	}
	interp.logger.Debug("call",
		zap.String("fn", fn.Name),
		zap.Int("args", len(args)))
	v, err := fn.Call(interp, args)
	if err != nil {
		return Nil(), err
	}
	interp.logger.Debug("return",
		zap.String("fn", fn.Name),
		zap.Stringer("value", v))
	return v, nil
}
