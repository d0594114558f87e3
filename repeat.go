package combine

import (
	"github.com/combinekit/combine/input"
)

// ZeroOrMore matches p greedily as many times as it can, yielding the
// collected values. It always succeeds: when p does not match at all the
// single Result is an empty slice with the input untouched.
//
// If p can succeed without consuming input the recursion never makes
// progress and does not terminate. Guarding against that is the caller's
// obligation; pair p with Item or a classifier that always consumes.
func ZeroOrMore[T any](p Parser[T]) Parser[[]T] {
	// The recursive reference must be delayed behind a closure; building
	// ZeroOrMore(p) eagerly here would recurse forever at construction time.
	var more Parser[[]T]
	more = func(in input.Input) []Result[[]T] {
		return Alt(
			Bind(p, func(x T) Parser[[]T] {
				return Bind(more, func(xs []T) Parser[[]T] {
					return Return(append([]T{x}, xs...))
				})
			}),
			Return([]T{}),
		)(in)
	}
	return more
}

// OneOrMore matches p at least once, then behaves as ZeroOrMore for the
// remainder. It fails exactly when p fails on the first attempt.
func OneOrMore[T any](p Parser[T]) Parser[[]T] {
	return Bind(p, func(x T) Parser[[]T] {
		return Bind(ZeroOrMore(p), func(xs []T) Parser[[]T] {
			return Return(append([]T{x}, xs...))
		})
	})
}
