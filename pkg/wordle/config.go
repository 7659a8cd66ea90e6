package wordle

import (
	"runtime"
	"time"
)

// DefaultOpener is the precomputed first guess (§4.8), chosen for
// maximum expected information against the standard answer set.
const DefaultOpener = "SALET"

// DefaultMaxTurns is the default turn budget (§6.3).
const DefaultMaxTurns = 6

// DefaultTimeBudgetSeconds is the default per-call wall-clock budget
// for the guess selector (§6.3).
const DefaultTimeBudgetSeconds = 5.0

// DefaultPoolThreshold is the default |S| at or below which the
// selector evaluates S instead of Γ (§4.5 step 4).
const DefaultPoolThreshold = 2

// SolverConfig holds the recognized options from §6.3. The zero value
// is not ready to use; call Normalize (or construct via
// NewSolverConfig) before passing it to NewGame.
//
// This follows the teacher's DynamicConfig/ParallelConfig shape: a
// plain struct whose zero-valued fields are filled in by a defaulting
// method, rather than a constructor with a long parameter list.
type SolverConfig struct {
	// MaxTurns is the maximum number of guesses before LOSS.
	MaxTurns int
	// TimeBudget is the wall-clock budget per call to the selector.
	TimeBudget time.Duration
	// MaxWorkers is the number of parallel entropy-evaluation workers.
	MaxWorkers int
	// Opener is the literal first guess. An empty string (after
	// Normalize has run once) disables the turn-1 shortcut; leave the
	// zero value ("") before calling Normalize to get the default.
	Opener string
	// openerSet distinguishes a zero-value Opener (fill with default)
	// from an explicit empty string (disable the shortcut), which
	// Normalize must only do once.
	openerSet bool
	// PoolThreshold is the |S| at or below which G evaluates S instead
	// of Γ.
	PoolThreshold int
}

// NewSolverConfig returns a SolverConfig with every field defaulted.
func NewSolverConfig() SolverConfig {
	var cfg SolverConfig
	cfg.Normalize()
	return cfg
}

// DisableOpener marks the opener shortcut as explicitly disabled, so a
// subsequent Normalize call does not overwrite it with the default.
func (c *SolverConfig) DisableOpener() {
	c.Opener = ""
	c.openerSet = true
}

// Normalize fills zero-valued fields with their documented defaults.
// Safe to call more than once.
func (c *SolverConfig) Normalize() {
	if c.MaxTurns <= 0 {
		c.MaxTurns = DefaultMaxTurns
	}
	if c.TimeBudget <= 0 {
		c.TimeBudget = time.Duration(DefaultTimeBudgetSeconds * float64(time.Second))
	}
	if c.MaxWorkers <= 0 {
		c.MaxWorkers = runtime.NumCPU()
	}
	if c.Opener == "" && !c.openerSet {
		c.Opener = DefaultOpener
		c.openerSet = true
	}
	if c.PoolThreshold <= 0 {
		c.PoolThreshold = DefaultPoolThreshold
	}
}
