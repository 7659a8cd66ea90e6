// Package oracle provides concrete wordle.Oracle implementations: an
// in-process simulator for batch runs and tests, and an HTTP client
// for driving an external judge.
package oracle

import (
	"context"

	"github.com/gitrdm/wordle-entropy-solver/pkg/pattern"
	"github.com/gitrdm/wordle-entropy-solver/pkg/wordle"
)

// SimulatorOracle judges guesses against a fixed, known answer using
// the pure Feedback function (F) directly, with no I/O. It is the
// oracle used by the batch runner and by every deterministic test.
type SimulatorOracle struct {
	answer pattern.Word
}

// NewSimulatorOracle returns an oracle that judges every guess against
// answer.
func NewSimulatorOracle(answer pattern.Word) *SimulatorOracle {
	return &SimulatorOracle{answer: answer}
}

// Submit computes Feedback(guess, answer). It never errors: a
// simulator is a truthful judge by construction.
func (o *SimulatorOracle) Submit(_ context.Context, guess pattern.Word) (pattern.Pattern, error) {
	return pattern.Feedback(guess, o.answer), nil
}

var _ wordle.Oracle = (*SimulatorOracle)(nil)
