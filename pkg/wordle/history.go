package wordle

import (
	"time"

	"github.com/gitrdm/wordle-entropy-solver/pkg/pattern"
)

// TurnRecord is one entry of H: the guess played, the feedback
// observed, the candidate count remaining after filtering, and how
// long the turn took end to end (selection + oracle round trip).
type TurnRecord struct {
	Guess           pattern.Word
	Pattern         pattern.Pattern
	CandidatesAfter int
	Duration        time.Duration
	Selection       Selection
}

// History is the ordered, append-only sequence of turns played so far
// (H in §3), bounded in practice by SolverConfig.MaxTurns.
type History []TurnRecord
