package input

import "errors"

// ErrEmptyInput is the panic value raised when First or Rest is called on an
// empty Input.
var ErrEmptyInput = errors.New("input: First/Rest called on empty input")
