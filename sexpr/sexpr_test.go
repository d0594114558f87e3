package sexpr

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSymbol(t *testing.T) {
	n, err := Parse("foo-bar!")
	require.NoError(t, err)
	assert.Equal(t, Symbol("foo-bar!"), n)
}

func TestParseNumber(t *testing.T) {
	n, err := Parse("42")
	require.NoError(t, err)
	assert.Equal(t, Number(42), n)

	n, err = Parse("-7")
	require.NoError(t, err)
	assert.Equal(t, Number(-7), n)
}

func TestDigitsRunningIntoLettersAreASymbol(t *testing.T) {
	n, err := Parse("42nd")
	require.NoError(t, err)
	assert.Equal(t, Symbol("42nd"), n)
}

func TestParseString(t *testing.T) {
	n, err := Parse(`"hello"`)
	require.NoError(t, err)
	assert.Equal(t, String("hello"), n)
}

func TestParseStringEscapes(t *testing.T) {
	n, err := Parse(`"a\nb\t\"c\\"`)
	require.NoError(t, err)
	assert.Equal(t, String("a\nb\t\"c\\"), n)
}

func TestParseUnterminatedString(t *testing.T) {
	_, err := Parse(`"oops`)
	assert.Error(t, err)
}

func TestParseList(t *testing.T) {
	n, err := Parse("(add 1 2)")
	require.NoError(t, err)
	assert.Equal(t, List{Symbol("add"), Number(1), Number(2)}, n)
}

func TestParseNestedList(t *testing.T) {
	n, err := Parse("(a (b (c)) d)")
	require.NoError(t, err)
	assert.Equal(t, List{
		Symbol("a"),
		List{Symbol("b"), List{Symbol("c")}},
		Symbol("d"),
	}, n)
}

func TestParseEmptyList(t *testing.T) {
	n, err := Parse("()")
	require.NoError(t, err)
	assert.Equal(t, List{}, n)
}

func TestParseQuote(t *testing.T) {
	n, err := Parse("'(a b)")
	require.NoError(t, err)
	assert.Equal(t, List{Symbol("quote"), List{Symbol("a"), Symbol("b")}}, n)
}

func TestParseComments(t *testing.T) {
	n, err := Parse("; leading comment\n(x) ; trailing")
	require.NoError(t, err)
	assert.Equal(t, List{Symbol("x")}, n)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("")
	assert.Error(t, err)

	_, err = Parse("(unbalanced")
	assert.Error(t, err)

	_, err = Parse("one two")
	assert.Error(t, err)
}

func TestParseAll(t *testing.T) {
	nodes, err := ParseAll("(a) (b) c")
	require.NoError(t, err)
	assert.Equal(t, []Node{List{Symbol("a")}, List{Symbol("b")}, Symbol("c")}, nodes)
}

func TestParseAllEmpty(t *testing.T) {
	nodes, err := ParseAll("  ; nothing here\n")
	require.NoError(t, err)
	assert.Empty(t, nodes)
}

func TestRoundTrip(t *testing.T) {
	for _, src := range []string{
		"(def x 10)",
		"(quote (a b c))",
		`(print "a\nb")`,
		"()",
	} {
		n, err := Parse(src)
		require.NoError(t, err)
		assert.Equal(t, src, n.String())
	}
}

func TestParseGolden(t *testing.T) {
	src := `
; sample program
(def greeting "hello\nworld")
(def answer 42)
(def neg -7)
(sum 1 2 (mul 3 4))
'(a b c)
()
`
	nodes, err := ParseAll(src)
	require.NoError(t, err)

	lines := make([]string, len(nodes))
	for i, n := range nodes {
		lines[i] = n.String()
	}
	g := goldie.New(t)
	g.Assert(t, "parse", []byte(strings.Join(lines, "\n")+"\n"))
}
