package input

import "io"

// FromReader reads r to EOF and returns a rune Input over its contents.
//
// The whole reader is materialized up front; combinators backtrack freely,
// so input cannot be consumed incrementally.
func FromReader(r io.Reader) (Input, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return FromString(string(b)), nil
}
