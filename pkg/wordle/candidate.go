// Package wordle implements the stateful half of the solver: the
// candidate-filtering state machine (S), the entropy evaluator (V),
// the guess selector (G), and the turn orchestrator (O). It builds on
// the pure pattern package for F and E.
package wordle

import (
	"math/bits"

	"github.com/gitrdm/wordle-entropy-solver/pkg/pattern"
)

// omegaIndex is the shared, immutable backing for every CandidateState
// derived from the same answer set: the answer slice itself plus a
// word->index lookup so Contains is O(1) instead of a linear scan.
// One omegaIndex is built per game and referenced (never copied) by
// every CandidateState snapshot taken during that game, mirroring the
// teacher's BitSetDomain convention of sharing immutable backing
// arrays across domain snapshots.
type omegaIndex struct {
	words   []pattern.Word
	indexOf map[pattern.Word]int
}

func newOmegaIndex(omega []pattern.Word) *omegaIndex {
	idx := &omegaIndex{
		words:   append([]pattern.Word(nil), omega...),
		indexOf: make(map[pattern.Word]int, len(omega)),
	}
	for i, w := range idx.words {
		idx.indexOf[w] = i
	}
	return idx
}

// CandidateState (S) is the live subset of the answer set Ω still
// consistent with all feedback received so far. It is represented as
// a dense bitset over Ω's index space — one bit per answer — rather
// than a slice. Filter computes Feedback once per remaining candidate
// and records survivors in a freshly allocated bitset of |Ω|/64 words,
// sharing the omegaIndex instead of copying words. CandidateState is immutable:
// Filter returns a new value and never mutates the receiver.
type CandidateState struct {
	idx   *omegaIndex
	bits  []uint64
	count int
}

// NewCandidateState initializes S₀ = Ω.
func NewCandidateState(omega []pattern.Word) CandidateState {
	idx := newOmegaIndex(omega)
	return fullCandidateState(idx)
}

func fullCandidateState(idx *omegaIndex) CandidateState {
	n := len(idx.words)
	words := make([]uint64, (n+63)/64)
	for i := range words {
		words[i] = ^uint64(0)
	}
	// Clear the tail bits beyond n in the last word.
	if n%64 != 0 {
		words[len(words)-1] = (uint64(1) << uint(n%64)) - 1
	}
	return CandidateState{idx: idx, bits: words, count: n}
}

// Size returns |S|.
func (s CandidateState) Size() int {
	return s.count
}

// Contains reports whether w is still a possible answer under S. It
// is false for any w not in the original Ω, not just words filtered
// out.
func (s CandidateState) Contains(w pattern.Word) bool {
	i, ok := s.idx.indexOf[w]
	if !ok {
		return false
	}
	return s.bits[i/64]&(uint64(1)<<uint(i%64)) != 0
}

// Words materializes the remaining candidates as a slice, in Ω's
// original order. Used by the pool-threshold shortcut and by callers
// that want a plain []Word to range over.
func (s CandidateState) Words() []pattern.Word {
	out := make([]pattern.Word, 0, s.count)
	s.Iter(func(w pattern.Word) bool {
		out = append(out, w)
		return true
	})
	return out
}

// Iter calls f for every remaining candidate, in Ω's original order,
// stopping early if f returns false.
func (s CandidateState) Iter(f func(pattern.Word) bool) {
	for wi, word := range s.bits {
		for word != 0 {
			bit := bits.TrailingZeros64(word)
			word &= word - 1
			if !f(s.idx.words[wi*64+bit]) {
				return
			}
		}
	}
}

// Filter retains exactly the w ∈ S for which Feedback(guess, w) equals
// observed, returning the narrowed CandidateState. It returns
// *SolveError{Kind: InconsistentOracle} if the result would be empty,
// per §7 — a truthful oracle can never produce that outcome, so it
// signals a bug or a non-conforming judge rather than a legitimate
// game state.
func (s CandidateState) Filter(guess pattern.Word, observed pattern.Pattern) (CandidateState, error) {
	newBits := make([]uint64, len(s.bits))
	count := 0
	s.Iter(func(w pattern.Word) bool {
		if pattern.Feedback(guess, w) == observed {
			i := s.idx.indexOf[w]
			newBits[i/64] |= uint64(1) << uint(i%64)
			count++
		}
		return true
	})

	if count == 0 {
		return CandidateState{}, &SolveError{
			Kind:    InconsistentOracle,
			Message: "no remaining candidate is consistent with the observed feedback",
		}
	}

	return CandidateState{idx: s.idx, bits: newBits, count: count}, nil
}
