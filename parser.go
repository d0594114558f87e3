package combine

import (
	"github.com/combinekit/combine/input"
)

// A Parser is a pure function from an Input to every way it can consume a
// prefix of that input. The result sequence is ordered: an empty sequence is
// failure, a single Result is a deterministic success, and multiple Results
// mean the grammar is ambiguous at this point.
//
// Parsers never mutate the Input they are given. Consumption is expressed
// only by returning Results holding a shorter remainder.
type Parser[T any] func(in input.Input) []Result[T]

// A Result is one possible parse outcome: the semantic value produced and
// the Input left unconsumed.
type Result[T any] struct {
	Value T
	Rest  input.Input
}

// Run applies p and commits to its first Result, returning the value, the
// unconsumed remainder and whether p matched at all.
//
// This is a convenience for callers that resolve ambiguity by taking the
// first interpretation; call p directly to see all of them.
func Run[T any](p Parser[T], in input.Input) (T, input.Input, bool) {
	rs := p(in)
	if len(rs) == 0 {
		var zero T
		return zero, in, false
	}
	return rs[0].Value, rs[0].Rest, true
}
