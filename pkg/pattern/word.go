// Package pattern implements the pure, allocation-free core of the
// solver: Words, feedback Patterns, and the bijection between a
// Pattern and its integer code in [0,243). Nothing in this package
// depends on a candidate set, a strategy, or an oracle — it is the F
// and E components of the solver, total and deterministic.
package pattern

import (
	"fmt"
	"strings"
)

// WordLength is the fixed length of every Word handled by the solver.
const WordLength = 5

// Word is a normalized, uppercase 5-letter word. The zero Word is not
// a valid word; construct one with ParseWord.
type Word [WordLength]byte

// ParseWord validates and uppercase-normalizes s, returning a Word.
// It rejects anything that isn't exactly WordLength ASCII letters
// after trimming whitespace, per the loader contract in §6.1.
func ParseWord(s string) (Word, error) {
	var w Word
	trimmed := strings.TrimSpace(s)
	if len(trimmed) != WordLength {
		return w, fmt.Errorf("pattern: word %q must be %d letters", s, WordLength)
	}
	for i := 0; i < WordLength; i++ {
		c := trimmed[i]
		switch {
		case c >= 'a' && c <= 'z':
			c -= 'a' - 'A'
		case c >= 'A' && c <= 'Z':
			// already upper
		default:
			return Word{}, fmt.Errorf("pattern: word %q contains non-letter byte %q", s, trimmed[i])
		}
		w[i] = c
	}
	return w, nil
}

// MustParseWord is ParseWord but panics on error. Intended for
// compile-time-known literals (the opener constant, test fixtures).
func MustParseWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return w
}

// String renders the word as an uppercase string.
func (w Word) String() string {
	return string(w[:])
}

// Less reports whether w sorts lexicographically before other, using
// raw byte comparison (both are already uppercase-normalized).
func (w Word) Less(other Word) bool {
	return string(w[:]) < string(other[:])
}
