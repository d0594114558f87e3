package combine

import (
	"github.com/combinekit/combine/input"
)

// Ignore is the reserved binding name that discards a step's value without
// binding it into the environment.
const Ignore = "_"

// Env holds the values bound by earlier Do steps. Environments are
// immutable: extending one for a later step never affects the view earlier
// alternatives captured, which matters when a step is ambiguous and each
// interpretation continues independently.
type Env struct {
	parent *Env
	name   string
	value  any
}

// Get returns the value bound to name, or false if it is not bound.
func (e *Env) Get(name string) (any, bool) {
	for env := e; env != nil; env = env.parent {
		if env.name == name {
			return env.value, true
		}
	}
	return nil, false
}

// MustGet returns the value bound to name, panicking if it is not bound.
// Unbound names inside a Do body are programming errors, not parse failures.
func (e *Env) MustGet(name string) any {
	v, ok := e.Get(name)
	if !ok {
		panic("combine: no binding named " + name)
	}
	return v
}

// Value returns the binding for name asserted to type T.
func Value[T any](env *Env, name string) T {
	return env.MustGet(name).(T)
}

// A Binding is one sequential step of a Do parser: a name and an expression
// producing the parser to run, with the values of earlier steps in scope.
type Binding struct {
	name string
	expr func(env *Env) Parser[any]
}

// Let creates a Binding that runs the parser produced by expr and binds its
// value to name for the steps and body that follow. Use Ignore as the name
// to run a step purely for its consumption.
func Let(name string, expr func(env *Env) Parser[any]) Binding {
	return Binding{name: name, expr: expr}
}

// Do builds a parser from sequential named bindings, expanding to nested
// Bind calls: each step's parser runs on what the previous step left, its
// value becomes visible under its name, and the body produces the final
// parser with every binding in scope. With no bindings, Do is just the body.
//
// Do introduces no behaviour of its own; it is sugar over Bind and obeys
// the same ordering and flattening rules.
func Do[T any](bindings []Binding, body func(env *Env) Parser[T]) Parser[T] {
	return func(in input.Input) []Result[T] {
		return doStep(bindings, nil, body)(in)
	}
}

func doStep[T any](bindings []Binding, env *Env, body func(env *Env) Parser[T]) Parser[T] {
	if len(bindings) == 0 {
		return body(env)
	}
	b := bindings[0]
	return Bind(b.expr(env), func(v any) Parser[T] {
		next := env
		if b.name != Ignore {
			next = &Env{parent: env, name: b.name, value: v}
		}
		return doStep(bindings[1:], next, body)
	})
}
