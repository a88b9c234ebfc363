package lox

import (
	"github.com/glox-lang/glox/ast"
	"github.com/glox-lang/glox/parser/token"
)

// Callable is any value invocable by a call expression.
type Callable interface {
	Arity() int
	Call(interp *Interp, args []Value) (Value, error)
}

// Function is a user-declared function: the parsed declaration plus the
// scope chain captured at its definition point.
type Function struct {
	Name    string
	Params  []*token.Token
	Body    []ast.Stmt
	Closure *Env
}

var _ Callable = (*Function)(nil)

// NewFunction builds the callable value for decl as declared in env.
func NewFunction(decl *ast.Function, env *Env) *Function {
	return &Function{
		Name:    decl.Name.Text,
		Params:  decl.Params,
		Body:    decl.Body,
		Closure: env,
	}
}

// Arity returns the number of declared parameters.
func (f *Function) Arity() int {
	return len(f.Params)
}

// Call binds the arguments in a fresh frame enclosed by the captured scope
// and executes the body.  Verifying the argument count is the caller's
// responsibility.  Absent an early return the result is nil.
func (f *Function) Call(interp *Interp, args []Value) (Value, error) {
	frame := f.Closure.Child()
	for i, param := range f.Params {
		frame.Define(param.Text, args[i])
	}
	out, err := interp.executeBlock(f.Body, frame)
	if err != nil {
		return Nil(), err
	}
	if out.returned {
		return out.value, nil
	}
	return Nil(), nil
}
