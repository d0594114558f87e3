package input

import "fmt"

// elems is an Input over a pre-built element slice, eg. tokens from a lexer.
// The backing slice is shared between views and never written to; only the
// offset differs.
type elems struct {
	es []any
	at int
}

// FromSlice returns an Input yielding the elements of es in order.
//
// The caller must not mutate es afterwards.
func FromSlice(es []any) Input {
	return elems{es: es}
}

func (e elems) Empty() bool {
	return e.at >= len(e.es)
}

func (e elems) First() any {
	if e.Empty() {
		panic(ErrEmptyInput)
	}
	return e.es[e.at]
}

func (e elems) Rest() Input {
	if e.Empty() {
		panic(ErrEmptyInput)
	}
	return elems{es: e.es, at: e.at + 1}
}

// String returns the unconsumed remainder.
func (e elems) String() string {
	return fmt.Sprintf("%v", e.es[e.at:])
}
