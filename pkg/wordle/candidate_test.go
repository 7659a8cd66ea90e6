package wordle

import (
	"testing"

	"github.com/gitrdm/wordle-entropy-solver/pkg/pattern"
)

func omega() []pattern.Word {
	return []pattern.Word{
		pattern.MustParseWord("CRANE"),
		pattern.MustParseWord("CRATE"),
		pattern.MustParseWord("CRAVE"),
		pattern.MustParseWord("CRAZE"),
		pattern.MustParseWord("GRADE"),
	}
}

func TestNewCandidateStateContainsEverything(t *testing.T) {
	s := NewCandidateState(omega())
	if s.Size() != 5 {
		t.Fatalf("got size %d, want 5", s.Size())
	}
	for _, w := range omega() {
		if !s.Contains(w) {
			t.Errorf("expected S0 to contain %s", w)
		}
	}
}

func TestCandidateStateFilterNarrows(t *testing.T) {
	s := NewCandidateState(omega())
	guess := pattern.MustParseWord("CRANE")
	answer := pattern.MustParseWord("CRATE")
	obs := pattern.Feedback(guess, answer)

	narrowed, err := s.Filter(guess, obs)
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	if !narrowed.Contains(answer) {
		t.Fatalf("expected narrowed state to still contain the true answer %s", answer)
	}
	if narrowed.Contains(pattern.MustParseWord("GRADE")) {
		t.Fatalf("expected GRADE to be filtered out (feedback would differ)")
	}
}

func TestCandidateStateFilterEmptyIsInconsistentOracle(t *testing.T) {
	s := NewCandidateState(omega())
	guess := pattern.MustParseWord("CRANE")
	// An impossible pattern given this guess and Ω: all-exact implies
	// the answer is CRANE, then immediately contradict with a second
	// filter that cannot hold simultaneously.
	win := pattern.Win
	narrowed, err := s.Filter(guess, win)
	if err != nil {
		t.Fatalf("first Filter returned error: %v", err)
	}

	_, err = narrowed.Filter(pattern.MustParseWord("GRADE"), win)
	if err == nil {
		t.Fatal("expected InconsistentOracle error")
	}
	se, ok := err.(*SolveError)
	if !ok || se.Kind != InconsistentOracle {
		t.Fatalf("got %v, want InconsistentOracle SolveError", err)
	}
}

func TestCandidateStateWordsPreservesOmegaOrder(t *testing.T) {
	om := omega()
	s := NewCandidateState(om)
	words := s.Words()
	if len(words) != len(om) {
		t.Fatalf("got %d words, want %d", len(words), len(om))
	}
	for i, w := range words {
		if w != om[i] {
			t.Fatalf("Words()[%d] = %s, want %s", i, w, om[i])
		}
	}
}
