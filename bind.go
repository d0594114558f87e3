package combine

import (
	"github.com/combinekit/combine/input"
)

// Bind sequences p with a continuation: for each Result of p, f is applied
// to the value and the resulting parser runs on that Result's remainder.
// All inner result sequences are concatenated depth-first, left to right,
// so the order of p's Results is preserved and, within each, the order of
// the continuation's Results.
//
// Bind and Return satisfy the monad laws:
//
//	Bind(Return(x), f)  == f(x)
//	Bind(p, Return)     == p
//	Bind(Bind(p, f), g) == Bind(p, func(x) { return Bind(f(x), g) })
func Bind[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return func(in input.Input) []Result[B] {
		var out []Result[B]
		for _, r := range p(in) {
			out = append(out, f(r.Value)(r.Rest)...)
		}
		return out
	}
}

// Map transforms the value of every Result p produces.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return Bind(p, func(v A) Parser[B] {
		return Return(f(v))
	})
}

// Erase forgets p's value type so parsers of different types can be
// composed, eg. as Do bindings or Plus alternatives.
func Erase[T any](p Parser[T]) Parser[any] {
	return Map(p, func(v T) any { return v })
}
