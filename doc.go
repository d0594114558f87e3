// Package combine is a monadic parser-combinator library. Parsers are
// first-class values built by composing a small set of primitives; there is
// no grammar compiler and no code generation step.
//
// A Parser is a pure function from an input to the sequence of every way it
// can consume a prefix of that input:
//
//	type Parser[T any] func(in input.Input) []Result[T]
//
// An empty result sequence means the parser did not match. One result is a
// deterministic success. More than one means the grammar was ambiguous at
// this point, and the caller decides how to resolve it (take the first,
// require exactly one, or keep all interpretations).
//
// The primitives are Return, Fail and Item. Everything else is composition:
// Bind sequences parsers, Plus keeps all alternatives, Alt commits to the
// first alternative that matches, and Not succeeds exactly when its argument
// fails. Repetition and the other conveniences are derived from these.
//
//	digits := combine.OneOrMore(combine.Digit())
//	number := combine.Map(digits, func(ds []rune) int {
//		n, _ := strconv.Atoi(string(ds))
//		return n
//	})
//	value, rest, ok := combine.Run(number, input.FromString("42abc"))
//
// Sequential grammars with named intermediate values read better through the
// Do builder, which expands to nested Bind calls:
//
//	pair := combine.Do([]combine.Binding{
//		combine.Let("a", func(*combine.Env) combine.Parser[any] { return combine.Item() }),
//		combine.Let("b", func(*combine.Env) combine.Parser[any] { return combine.Item() }),
//	}, func(env *combine.Env) combine.Parser[[2]any] {
//		return combine.Return([2]any{env.MustGet("a"), env.MustGet("b")})
//	})
//
// Parsers must be pure: they never mutate their input, hold no internal
// state, and may be reused freely across unrelated inputs. Backtracking is
// implicit: unexplored alternatives are already present in the result
// sequence, so no control flow ever unwinds.
package combine
