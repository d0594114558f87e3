package combine

import (
	"github.com/combinekit/combine/input"
)

// Return succeeds unconditionally with v, consuming nothing. It is the
// monadic unit for Bind.
func Return[T any](v T) Parser[T] {
	return func(in input.Input) []Result[T] {
		return []Result[T]{{Value: v, Rest: in}}
	}
}

// Fail matches nothing on any input. It is the monadic zero: binding it
// yields it, and it is the identity for Plus.
func Fail[T any]() Parser[T] {
	return func(input.Input) []Result[T] {
		return nil
	}
}

// Item consumes and yields the first element of the input, or fails if the
// input is empty.
func Item() Parser[any] {
	return func(in input.Input) []Result[any] {
		if in.Empty() {
			return nil
		}
		return []Result[any]{{Value: in.First(), Rest: in.Rest()}}
	}
}
