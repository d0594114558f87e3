package combine

import (
	"github.com/combinekit/combine/input"
)

// Plus is non-deterministic choice: both parsers run on the same input and
// every interpretation is kept, p1's Results first, then p2's, each in their
// original order. Use it when a grammar is genuinely ambiguous and a later
// pass disambiguates.
//
// Plus is associative, commutative up to ordering, and has Fail as its
// identity.
func Plus[T any](p1, p2 Parser[T]) Parser[T] {
	return func(in input.Input) []Result[T] {
		// Concatenate into a fresh slice. Appending onto p1's slice would
		// write into its backing array, and a parser may legitimately return
		// the same slice to every caller.
		rs1 := p1(in)
		rs2 := p2(in)
		out := make([]Result[T], 0, len(rs1)+len(rs2))
		out = append(out, rs1...)
		out = append(out, rs2...)
		if len(out) == 0 {
			return nil
		}
		return out
	}
}

// Alt is deterministic choice: parsers are tried left to right and the first
// non-empty result sequence is returned unchanged. Later alternatives are
// never invoked once one matches. If all fail, Alt fails.
//
// Alt is a primitive alongside Plus: it branches on whether a sub-parse
// succeeded, which Bind cannot express.
func Alt[T any](parsers ...Parser[T]) Parser[T] {
	return func(in input.Input) []Result[T] {
		for _, p := range parsers {
			if rs := p(in); len(rs) > 0 {
				return rs
			}
		}
		return nil
	}
}
