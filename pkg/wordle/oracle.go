package wordle

import (
	"context"

	"github.com/gitrdm/wordle-entropy-solver/pkg/pattern"
)

// Oracle (A) is the thin adapter boundary between the orchestrator and
// whatever judges guesses: an in-process simulator, an HTTP game
// server, or a human at a terminal. It is the only component in this
// module allowed to perform I/O.
type Oracle interface {
	// Submit plays guess and returns the feedback Pattern the judge
	// assigns it. A non-nil error is always an OracleFailure-class
	// failure (transport, timeout, malformed response) after the
	// adapter's own internal retries are exhausted; a truthful judge
	// never returns an error for a well-formed guess.
	Submit(ctx context.Context, guess pattern.Word) (pattern.Pattern, error)
}
