package regex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	cases := []struct {
		re   *Regex
		want string
	}{
		{Terminal('a'), "a"},
		{Epsilon(), "ε"},
		{Cat(Terminal('a'), Terminal('b')), "(ab)"},
		{Alt(Terminal('a'), Terminal('b')), "a|b"},
		{Opt(Terminal('a')), "a?"},
		{Star(Alt(Terminal('a'), Terminal('b'))), "a|b*"},
		{Cat(Opt(Terminal('a')), Star(Terminal('a'))), "(a?a*)"},
		{Word("abc"), "((ab)c)"},
		{Word(""), "ε"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.re.String())
	}
}

func TestTerminalOutsideAlphabet(t *testing.T) {
	assert.Panics(t, func() { Terminal('A') })
	assert.Panics(t, func() { Terminal('0') })
	assert.NotPanics(t, func() { Terminal('z') })
}

func TestFolds(t *testing.T) {
	r := AltAll(Terminal('a'), Terminal('b'), Terminal('c'))
	require.Equal(t, KAlt, r.Kind())
	assert.Equal(t, KAlt, r.Left().Kind())
	assert.Equal(t, byte('c'), r.Right().Symbol())
	assert.Equal(t, KEpsilon, CatAll().Kind())
	assert.Panics(t, func() { AltAll() })
}

func TestWalkOrder(t *testing.T) {
	r := Cat(Star(Terminal('c')), Alt(Terminal('a'), Terminal('c')))
	var seen []byte
	r.Walk(func(n *Regex) bool {
		if n.Kind() == KTerminal {
			seen = append(seen, n.Symbol())
		}
		return true
	})
	assert.Equal(t, []byte("cac"), seen)
	assert.Equal(t, []byte("ac"), r.Symbols())

	var kinds []Kind
	r.Walk(func(n *Regex) bool {
		kinds = append(kinds, n.Kind())
		return n.Kind() != KStar
	})
	assert.Equal(t, []Kind{KConcat, KStar, KAlt, KTerminal, KTerminal}, kinds)
}

func TestAlphabet(t *testing.T) {
	for i := 0; i < AlphabetSize; i++ {
		require.Equal(t, i, Rank(Symbol(i)))
	}
	assert.Equal(t, -1, Rank('{'))
	assert.NoError(t, CheckWord("hello"))
	assert.Error(t, CheckWord("heLlo"))
}

func TestRangeLabel(t *testing.T) {
	assert.Equal(t, "", RangeLabel(nil))
	assert.Equal(t, "a", RangeLabel([]int{0}))
	assert.Equal(t, "a,b", RangeLabel([]int{0, 1}))
	assert.Equal(t, "a-c,e", RangeLabel([]int{0, 1, 2, 4}))
	assert.Equal(t, "a-z", RangeLabel([]int{
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12,
		13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25,
	}))
}
