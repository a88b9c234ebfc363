package lox

import (
	"github.com/glox-lang/glox/parser/token"
)

// Env is one scope in the glox environment chain.  Scopes are shared mutable
// cells: a closure holds a live reference into the chain, so mutation of an
// outer binding is visible to every function that captured it.
type Env struct {
	vars   map[string]Value
	parent *Env
}

// NewEnv returns a fresh scope enclosed by parent.  A nil parent makes a
// global scope.
func NewEnv(parent *Env) *Env {
	return &Env{
		vars:   make(map[string]Value),
		parent: parent,
	}
}

// Child returns a new scope enclosed by env, used per block and per call
// frame.
func (env *Env) Child() *Env {
	return NewEnv(env)
}

// Define binds name in this scope only.  Redeclaration in the same scope
// silently overwrites.
func (env *Env) Define(name string, v Value) {
	env.vars[name] = v
}

// Get resolves name outward through the scope chain.
func (env *Env) Get(name *token.Token) (Value, error) {
	if v, ok := env.vars[name.Text]; ok {
		return v, nil
	}
	if env.parent != nil {
		return env.parent.Get(name)
	}
	return Nil(), FromToken(NameError, name, "Undefined variable '%s'.", name.Text)
}

// Assign writes to an existing binding, checking this scope before walking
// outward.  Assignment never creates a binding.
func (env *Env) Assign(name *token.Token, v Value) error {
	if _, ok := env.vars[name.Text]; ok {
		env.vars[name.Text] = v
		return nil
	}
	if env.parent != nil {
		return env.parent.Assign(name, v)
	}
	return FromToken(NameError, name, "Undefined variable '%s'.", name.Text)
}
