// Package sexpr is an s-expression reader built on the combine API. It is
// client code: the grammar is assembled entirely from public combinators and
// never touches the input representation.
package sexpr

import (
	"strconv"
	"strings"
)

// Node is one parsed s-expression.
type Node interface {
	// String renders the node back to canonical s-expression syntax.
	String() string
	node()
}

// Symbol is a bare identifier, eg. `def` or `+`.
type Symbol string

// Number is a decimal integer literal.
type Number int64

// String is a double-quoted string literal, stored unescaped.
type String string

// List is a parenthesized sequence of nodes.
type List []Node

func (s Symbol) String() string { return string(s) }
func (n Number) String() string { return strconv.FormatInt(int64(n), 10) }
func (s String) String() string { return strconv.Quote(string(s)) }

func (l List) String() string {
	parts := make([]string, len(l))
	for i, n := range l {
		parts[i] = n.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (Symbol) node() {}
func (Number) node() {}
func (String) node() {}
func (List) node()   {}
