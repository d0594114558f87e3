package sexpr

import (
	"fmt"
	"strconv"

	"github.com/combinekit/combine"
	"github.com/combinekit/combine/input"
)

// The grammar is recursive (lists contain expressions), so expr and ws are
// assigned in init and recursive references go through the deferred
// indirection below.
var (
	expr combine.Parser[Node]
	ws   combine.Parser[[]any]
)

// deferred resolves the recursive reference to expr at parse time.
func deferred(in input.Input) []combine.Result[Node] {
	return expr(in)
}

// isSymbolRune reports whether r can appear in a symbol.
func isSymbolRune(r rune) bool {
	switch r {
	case '(', ')', '\'', '"', ';':
		return false
	}
	return !isSpace(r)
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

func init() {
	// Whitespace includes ; comments running to end of line.
	comment := combine.Then(
		combine.Rune(';'),
		combine.ZeroOrMore(combine.RuneWhere(func(r rune) bool { return r != '\n' })),
	)
	ws = combine.ZeroOrMore(combine.Alt(
		combine.Erase(combine.OneOrMore(combine.Space())),
		combine.Erase(comment),
	))

	symbol := combine.Map(
		combine.OneOrMore(combine.RuneWhere(isSymbolRune)),
		func(rs []rune) Node { return Symbol(rs) },
	)

	// A number is an optional sign and digits not running into symbol
	// characters, so `42nd` reads as one symbol rather than 42 then nd.
	number := combine.Do([]combine.Binding{
		combine.Let("sign", func(*combine.Env) combine.Parser[any] {
			return combine.Erase(combine.Maybe(combine.Literal("-")))
		}),
		combine.Let("digits", func(*combine.Env) combine.Parser[any] {
			return combine.Erase(combine.OneOrMore(combine.Digit()))
		}),
		combine.Let(combine.Ignore, func(*combine.Env) combine.Parser[any] {
			return combine.Erase(combine.Not(combine.RuneWhere(isSymbolRune)))
		}),
	}, func(env *combine.Env) combine.Parser[Node] {
		digits := combine.Value[[]rune](env, "digits")
		n, err := strconv.ParseInt(combine.Value[string](env, "sign")+string(digits), 10, 64)
		if err != nil {
			return combine.Fail[Node]()
		}
		return combine.Return[Node](Number(n))
	})

	escape := combine.Then(combine.Rune('\\'), combine.Bind(combine.Item(), func(v any) combine.Parser[rune] {
		switch v {
		case 'n':
			return combine.Return('\n')
		case 't':
			return combine.Return('\t')
		case '\\':
			return combine.Return('\\')
		case '"':
			return combine.Return('"')
		}
		return combine.Fail[rune]()
	}))
	strChar := combine.Alt(
		escape,
		combine.RuneWhere(func(r rune) bool { return r != '"' && r != '\\' }),
	)
	str := combine.Do([]combine.Binding{
		combine.Let(combine.Ignore, func(*combine.Env) combine.Parser[any] {
			return combine.Erase(combine.Rune('"'))
		}),
		combine.Let("chars", func(*combine.Env) combine.Parser[any] {
			return combine.Erase(combine.ZeroOrMore(strChar))
		}),
		combine.Let(combine.Ignore, func(*combine.Env) combine.Parser[any] {
			return combine.Erase(combine.Rune('"'))
		}),
	}, func(env *combine.Env) combine.Parser[Node] {
		return combine.Return[Node](String(combine.Value[[]rune](env, "chars")))
	})

	list := combine.Do([]combine.Binding{
		combine.Let(combine.Ignore, func(*combine.Env) combine.Parser[any] {
			return combine.Erase(combine.ThenSkip(combine.Rune('('), ws))
		}),
		combine.Let("items", func(*combine.Env) combine.Parser[any] {
			return combine.Erase(combine.ZeroOrMore(combine.ThenSkip(combine.Parser[Node](deferred), ws)))
		}),
		combine.Let(combine.Ignore, func(*combine.Env) combine.Parser[any] {
			return combine.Erase(combine.Rune(')'))
		}),
	}, func(env *combine.Env) combine.Parser[Node] {
		return combine.Return[Node](List(combine.Value[[]Node](env, "items")))
	})

	// 'x reads as (quote x).
	quoted := combine.Then(
		combine.ThenSkip(combine.Rune('\''), ws),
		combine.Map(combine.Parser[Node](deferred), func(n Node) Node {
			return List{Symbol("quote"), n}
		}),
	)

	expr = combine.Alt(quoted, list, str, number, symbol)
}

// Parse reads a single s-expression from s. The whole of s must be consumed,
// leading and trailing whitespace aside.
func Parse(s string) (Node, error) {
	nodes, err := parse(s, func(one combine.Parser[Node]) combine.Parser[[]Node] {
		return combine.Map(one, func(n Node) []Node { return []Node{n} })
	})
	if err != nil {
		return nil, err
	}
	return nodes[0], nil
}

// ParseAll reads every s-expression in s, eg. a whole program.
func ParseAll(s string) ([]Node, error) {
	return parse(s, combine.ZeroOrMore[Node])
}

func parse(s string, repeat func(combine.Parser[Node]) combine.Parser[[]Node]) ([]Node, error) {
	p := combine.Then(ws, repeat(combine.ThenSkip(combine.Parser[Node](deferred), ws)))
	nodes, rest, ok := combine.Run(p, input.FromString(s))
	if !ok {
		return nil, fmt.Errorf("sexpr: no expression in %q", s)
	}
	if !rest.Empty() {
		return nil, fmt.Errorf("sexpr: trailing input at %q", fmt.Sprint(rest))
	}
	return nodes, nil
}
