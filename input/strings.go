package input

import "unicode/utf8"

// chars is a rune Input over a string. It is a value type holding the
// unconsumed suffix, so two views of the same remainder compare equal.
type chars struct {
	s string
}

// FromString returns an Input yielding the runes of s.
func FromString(s string) Input {
	return chars{s}
}

func (c chars) Empty() bool {
	return c.s == ""
}

func (c chars) First() any {
	if c.s == "" {
		panic(ErrEmptyInput)
	}
	r, _ := utf8.DecodeRuneInString(c.s)
	return r
}

func (c chars) Rest() Input {
	if c.s == "" {
		panic(ErrEmptyInput)
	}
	_, size := utf8.DecodeRuneInString(c.s)
	return chars{c.s[size:]}
}

// String returns the unconsumed remainder.
func (c chars) String() string {
	return c.s
}
