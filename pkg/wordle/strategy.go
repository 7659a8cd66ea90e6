package wordle

import (
	"context"

	"github.com/gitrdm/wordle-entropy-solver/internal/parallel"
	"github.com/gitrdm/wordle-entropy-solver/pkg/pattern"
)

// Selection is the result of a SelectionStrategy's Select call.
type Selection struct {
	// Guess is the chosen next word.
	Guess pattern.Word
	// Entropy is the guess's expected information gain in bits. The
	// opener shortcut reports the opener's reference value from
	// OpenerEntropy (0 for an opener not listed there) without calling
	// the entropy evaluator; the one-left and two-left shortcuts report 0.
	Entropy float64
	// Evaluated is the number of (guess, S) entropy computations
	// actually performed, for logging/metrics.
	Evaluated int
	// Degraded is true when the time budget expired before the full
	// pool was scanned (§7's BUDGET_EXCEEDED). It is never fatal: the
	// returned Guess is still the best candidate found so far, or the
	// lexicographically smallest remaining candidate if none were
	// evaluated at all.
	Degraded bool
	// PoolStats is the parallel worker pool's execution snapshot for
	// this turn's scan (§4.6's "per-turn metrics"). Zero-valued for a
	// shortcut selection that never spun up a pool.
	PoolStats parallel.ExecutionStats
}

// SelectionStrategy chooses the next guess given the full allowed-guess
// pool Γ and the current candidate state S. It mirrors the teacher's
// pluggable labeling-strategy shape (one interface, named concrete
// implementations selectable by the caller) without over-generalizing
// it: the spec fixes exactly one selection policy, so exactly one
// concrete type exists (EntropyMaxStrategy, in selector.go), but a future weighted-prior
// strategy (§9 Design Notes) has a seam to slot into.
type SelectionStrategy interface {
	// Select returns the next guess to play.
	Select(ctx context.Context, gamma []pattern.Word, s CandidateState, cfg SolverConfig) (Selection, error)
	// Name returns a short, stable identifier for the strategy.
	Name() string
	// Description returns a human-readable summary of the policy.
	Description() string
}

// betterCandidate reports whether (entropy, inS, word) ranks strictly
// ahead of (bestEntropy, bestInS, best) under the tie-break policy
// fixed by §4.5 step 5 and the Open Question in §9: prefer higher
// entropy; among equal entropy, prefer a guess that is itself still a
// possible answer (a free chance to win outright); among remaining
// ties, prefer lexicographic order, for determinism.
func betterCandidate(entropy float64, inS bool, word pattern.Word, bestEntropy float64, bestInS bool, best pattern.Word) bool {
	if entropy != bestEntropy {
		return entropy > bestEntropy
	}
	if inS != bestInS {
		return inS
	}
	return word.Less(best)
}

// lexSmallest returns the lexicographically smallest word in words.
// words must be non-empty.
func lexSmallest(words []pattern.Word) pattern.Word {
	best := words[0]
	for _, w := range words[1:] {
		if w.Less(best) {
			best = w
		}
	}
	return best
}
