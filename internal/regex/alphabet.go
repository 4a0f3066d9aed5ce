package regex

import (
	"fmt"
	"strings"
)

// AlphabetSize is the number of symbols every automaton is total over.
const AlphabetSize = 26

// Symbol returns the letter of rank i ('a' for 0).
func Symbol(i int) byte { return 'a' + byte(i) }

// Rank returns the index of symbol c in the alphabet, or -1 when c is not
// one of the 26 lowercase letters.
func Rank(c byte) int {
	if c < 'a' || c > 'z' {
		return -1
	}
	return int(c - 'a')
}

// CheckWord reports the first byte of w that lies outside the alphabet.
func CheckWord(w string) error {
	for i := 0; i < len(w); i++ {
		if Rank(w[i]) < 0 {
			return fmt.Errorf("symbol %q at offset %d is not in a-z", w[i], i)
		}
	}
	return nil
}

// RangeLabel formats a sorted list of symbol ranks compactly, folding runs
// of three or more letters: [0 1 2 4] gives "a-c,e".
func RangeLabel(ranks []int) string {
	var b strings.Builder
	for i := 0; i < len(ranks); {
		j := i
		for j+1 < len(ranks) && ranks[j+1] == ranks[j]+1 {
			j++
		}
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteByte(Symbol(ranks[i]))
		switch {
		case j-i >= 2:
			b.WriteByte('-')
			b.WriteByte(Symbol(ranks[j]))
		case j-i == 1:
			b.WriteByte(',')
			b.WriteByte(Symbol(ranks[j]))
		}
		i = j + 1
	}
	return b.String()
}
