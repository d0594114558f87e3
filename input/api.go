package input

// Input is an immutable view over a sequence of elements.
//
// Implementations must be side-effect free and referentially stable:
// calling Rest twice on the same Input yields two equal values.
type Input interface {
	// Empty reports whether any elements remain.
	Empty() bool
	// First returns the next element without consuming it.
	//
	// Calling First on an empty Input is a contract violation, not a parse
	// failure, and panics with ErrEmptyInput. Callers must check Empty first.
	First() any
	// Rest returns a new Input advanced past the first element.
	//
	// Panics with ErrEmptyInput if the Input is empty.
	Rest() Input
}
