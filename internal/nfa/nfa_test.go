package nfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regequiv/internal/regex"
)

var (
	a = regex.Terminal('a')
	b = regex.Terminal('b')
)

func TestFromRegexShape(t *testing.T) {
	// (a|b)* a
	m := FromRegex(regex.Cat(regex.Star(regex.Alt(a, b)), a))
	require.Equal(t, 4, m.Len())
	require.Equal(t, 3, m.Initial())
	assert.False(t, m.IsFinal(m.Initial()))
	assert.True(t, m.IsFinal(2))
	assert.False(t, m.IsFinal(0))

	// from the initial state 'a' may enter the starred a or the final a
	assert.Equal(t, []int{0, 2}, m.Next(m.Initial(), regex.Rank('a')))
	assert.Equal(t, []int{1}, m.Next(m.Initial(), regex.Rank('b')))
	assert.Empty(t, m.Next(m.Initial(), regex.Rank('c')))
	assert.Equal(t, []int{0, 2}, m.Next(1, regex.Rank('a')))
	assert.Empty(t, m.Next(2, regex.Rank('a')))
}

func TestInitialFinalOnEmptyWord(t *testing.T) {
	m := FromRegex(regex.Epsilon())
	assert.Equal(t, 1, m.Len())
	assert.True(t, m.IsFinal(m.Initial()))
	assert.True(t, m.Accepts(""))
	assert.False(t, m.Accepts("a"))

	m = FromRegex(regex.Opt(a))
	assert.True(t, m.Accepts(""))
	assert.True(t, m.Accepts("a"))
	assert.False(t, m.Accepts("aa"))
}

func TestAccepts(t *testing.T) {
	// (a|b)* a b
	m := FromRegex(regex.CatAll(regex.Star(regex.Alt(a, b)), a, b))
	for w, want := range map[string]bool{
		"":      false,
		"ab":    true,
		"aab":   true,
		"babab": true,
		"ba":    false,
		"abb":   false,
		"abc":   false,
		"aB":    false,
	} {
		assert.Equal(t, want, m.Accepts(w), "word %q", w)
	}
}
