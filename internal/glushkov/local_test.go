package glushkov

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regequiv/internal/regex"
)

func TestCombinators(t *testing.T) {
	l := Literal(0)
	l.Concat(Literal(1))
	assert.False(t, l.AcceptEmpty)
	assert.Equal(t, []int{0}, l.Prefixes)
	assert.Equal(t, []int{1}, l.Suffixes)
	assert.Equal(t, []Factor{{0, 1}}, l.FactorList())

	e := Empty()
	e.Either(Literal(2))
	assert.True(t, e.AcceptEmpty)
	assert.Equal(t, []int{2}, e.Prefixes)

	o := Literal(3)
	o.Optional()
	assert.True(t, o.AcceptEmpty)
	assert.Empty(t, o.Factors)

	s := Literal(4)
	s.Repeat()
	s.Repeat()
	assert.True(t, s.AcceptEmpty)
	assert.Equal(t, []Factor{{4, 4}}, s.FactorList())
}

func TestConcatNullableOperands(t *testing.T) {
	// a? b?
	l := Literal(0)
	l.Optional()
	r := Literal(1)
	r.Optional()
	l.Concat(r)
	assert.True(t, l.AcceptEmpty)
	assert.Equal(t, []int{0, 1}, l.Prefixes)
	assert.Equal(t, []int{0, 1}, l.Suffixes)
	assert.Equal(t, []Factor{{0, 1}}, l.FactorList())
}

func TestLinearize(t *testing.T) {
	// (a|b)* a b: the two a's are distinct positions
	r := regex.CatAll(
		regex.Star(regex.Alt(regex.Terminal('a'), regex.Terminal('b'))),
		regex.Terminal('a'),
		regex.Terminal('b'),
	)
	l, symbols := Linearize(r)
	require.Equal(t, []byte("abab"), symbols)
	assert.False(t, l.AcceptEmpty)
	assert.Equal(t, []int{0, 1, 2}, l.Prefixes)
	assert.Equal(t, []int{3}, l.Suffixes)
	assert.Equal(t, []Factor{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 1}, {1, 2},
		{2, 3},
	}, l.FactorList())
}

func TestLinearizeEpsilon(t *testing.T) {
	l, symbols := Linearize(regex.Epsilon())
	assert.Empty(t, symbols)
	assert.True(t, l.AcceptEmpty)
	assert.Empty(t, l.Prefixes)
	assert.Empty(t, l.Suffixes)
	assert.Empty(t, l.Factors)
}

func TestLinearizeSharedSubtree(t *testing.T) {
	a := regex.Terminal('a')
	l, symbols := Linearize(regex.Cat(a, a))
	assert.Equal(t, []byte("aa"), symbols)
	assert.Equal(t, []Factor{{0, 1}}, l.FactorList())
}
