package combine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/combinekit/combine/input"
)

func TestSatisfy(t *testing.T) {
	vowel := Satisfy(func(v any) bool {
		r, ok := v.(rune)
		return ok && (r == 'a' || r == 'e' || r == 'i' || r == 'o' || r == 'u')
	})
	rs := vowel(input.FromString("at"))
	require.Len(t, rs, 1)
	assert.Equal(t, 'a', rs[0].Value)

	assert.Empty(t, vowel(input.FromString("ta")))
}

func TestRune(t *testing.T) {
	rs := Rune('f')(input.FromString("foo"))
	assert.Equal(t, []Result[rune]{{Value: 'f', Rest: input.FromString("oo")}}, rs)

	assert.Empty(t, Rune('f')(input.FromString("oof")))
	assert.Empty(t, Rune('f')(input.FromString("")))
}

func TestRuneOverNonRuneElements(t *testing.T) {
	in := input.FromSlice([]any{"token"})
	assert.Empty(t, Rune('t')(in))
}

func TestClassifiers(t *testing.T) {
	assert.NotEmpty(t, Letter()(input.FromString("x1")))
	assert.Empty(t, Letter()(input.FromString("1x")))

	assert.NotEmpty(t, Digit()(input.FromString("1x")))
	assert.Empty(t, Digit()(input.FromString("x1")))

	assert.NotEmpty(t, Space()(input.FromString(" x")))
	assert.Empty(t, Space()(input.FromString("x ")))
}

func TestLiteral(t *testing.T) {
	p := Literal("let")
	rs := p(input.FromString("letx"))
	assert.Equal(t, []Result[string]{{Value: "let", Rest: input.FromString("x")}}, rs)

	assert.Empty(t, p(input.FromString("lex")))
	assert.Empty(t, p(input.FromString("le")))
}

func TestLiteralEmpty(t *testing.T) {
	in := input.FromString("abc")
	rs := Literal("")(in)
	assert.Equal(t, []Result[string]{{Value: "", Rest: in}}, rs)
}
