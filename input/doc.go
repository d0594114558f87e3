// Package input defines the interface combinators consume input through,
// along with implementations for strings, element slices and readers.
//
// Inputs are immutable values. Advancing never mutates the receiver; Rest
// returns a fresh view of the remainder, so a parser can hold on to an
// earlier Input and re-read from it when exploring another alternative.
package input
