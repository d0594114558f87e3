package combine

import (
	"unicode"
)

// Satisfy consumes one element if it satisfies pred, and fails otherwise.
func Satisfy(pred func(any) bool) Parser[any] {
	return Where(Item(), pred)
}

// RuneWhere consumes one rune element satisfying pred. Non-rune elements
// never match, so it is safe over mixed token inputs.
func RuneWhere(pred func(rune) bool) Parser[rune] {
	return Bind(Item(), func(v any) Parser[rune] {
		r, ok := v.(rune)
		if !ok || !pred(r) {
			return Fail[rune]()
		}
		return Return(r)
	})
}

// Rune consumes exactly the rune r.
func Rune(r rune) Parser[rune] {
	return RuneWhere(func(c rune) bool { return c == r })
}

// Letter consumes a single Unicode letter.
func Letter() Parser[rune] {
	return RuneWhere(unicode.IsLetter)
}

// Digit consumes a single decimal digit.
func Digit() Parser[rune] {
	return RuneWhere(unicode.IsDigit)
}

// Space consumes a single whitespace rune.
func Space() Parser[rune] {
	return RuneWhere(unicode.IsSpace)
}

// Literal consumes the runes of s in order and yields s itself.
func Literal(s string) Parser[string] {
	out := Return(s)
	rs := []rune(s)
	for i := len(rs) - 1; i >= 0; i-- {
		out = Then(Rune(rs[i]), out)
	}
	return out
}
