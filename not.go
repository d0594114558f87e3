package combine

import (
	"github.com/combinekit/combine/input"
)

// Not is negative lookahead: it succeeds with true exactly when p fails,
// and fails when p matches. The input is never consumed either way, so the
// sole Result on success carries the original Input unchanged.
//
// Like Alt, Not branches on the success of a sub-parse and is therefore a
// primitive rather than a Bind derivative.
func Not[T any](p Parser[T]) Parser[bool] {
	return func(in input.Input) []Result[bool] {
		if len(p(in)) > 0 {
			return nil
		}
		return []Result[bool]{{Value: true, Rest: in}}
	}
}
