package wordle

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gitrdm/wordle-entropy-solver/pkg/pattern"
)

// GameState names a node of the turn orchestrator's state machine
// (§4.6). Transitions only ever move forward; there is no retry edge
// back into AwaitGuess from AwaitFeedback short of a brand new turn.
type GameState int

const (
	StateInit GameState = iota
	StateAwaitGuess
	StateAwaitFeedback
	StateWin
	StateLoss
	StateError
)

func (st GameState) String() string {
	switch st {
	case StateInit:
		return "INIT"
	case StateAwaitGuess:
		return "AWAIT_GUESS"
	case StateAwaitFeedback:
		return "AWAIT_FEEDBACK"
	case StateWin:
		return "WIN"
	case StateLoss:
		return "LOSS"
	case StateError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Outcome is the terminal result of a Run call.
type Outcome struct {
	State GameState // StateWin, StateLoss, or StateError
	Turns int
	History History
	// Err carries the SolveError describing why Run stopped. For
	// StateLoss it is always a TurnLimitReached SolveError, informational
	// only: reaching max_turns is a normal, non-failing terminal outcome.
	// For StateError it is the failure that aborted the run. It is nil
	// for StateWin.
	Err error
}

// Game (O) drives one solve from S₀ = Ω to a terminal outcome,
// threading CandidateState, SelectionStrategy, and Oracle together
// exactly as laid out in §4.6's transition table.
type Game struct {
	gamma    []pattern.Word
	strategy SelectionStrategy
	oracle   Oracle
	cfg      SolverConfig

	// Logger emits structured per-turn/per-game events. It defaults to
	// a no-op logger so library callers never pay for or see logging
	// they didn't ask for; the CLI entry points set a real zerolog
	// logger via WithLogger.
	Logger zerolog.Logger

	state   GameState
	s       CandidateState
	history History
}

// NewGame constructs a Game at S₀ = Ω, ready for Run. gamma is Γ, the
// allowed guesses; omega is Ω, the answer set cfg's strategy narrows.
func NewGame(gamma, omega []pattern.Word, strategy SelectionStrategy, oracle Oracle, cfg SolverConfig) *Game {
	cfg.Normalize()
	return &Game{
		gamma:    gamma,
		strategy: strategy,
		oracle:   oracle,
		cfg:      cfg,
		Logger:   zerolog.Nop(),
		state:    StateInit,
		s:        NewCandidateState(omega),
	}
}

// WithLogger sets g's structured logger and returns g for chaining.
func (g *Game) WithLogger(logger zerolog.Logger) *Game {
	g.Logger = logger
	return g
}

// State returns the orchestrator's current node, mostly useful for
// tests and logging mid-run.
func (g *Game) State() GameState { return g.state }

// History returns the turns played so far.
func (g *Game) History() History { return g.history }

// Run drives the state machine to completion: INIT -> AWAIT_GUESS ->
// AWAIT_FEEDBACK -> (loop | WIN | LOSS | ERROR). Each iteration selects
// a guess, submits it to the oracle, filters S by the observed
// feedback, and appends a TurnRecord. Run returns as soon as a
// terminal state is reached; it never runs past MaxTurns.
func (g *Game) Run(ctx context.Context) Outcome {
	g.state = StateAwaitGuess

	for turn := 1; turn <= g.cfg.MaxTurns; turn++ {
		start := time.Now()

		sel, err := g.strategy.Select(ctx, g.gamma, g.s, g.cfg)
		if err != nil {
			g.state = StateError
			return g.outcome(err)
		}

		g.state = StateAwaitFeedback
		obs, err := g.oracle.Submit(ctx, sel.Guess)
		if err != nil {
			g.state = StateError
			return g.outcome(&SolveError{Kind: OracleFailure, Message: "oracle submit failed", Cause: err})
		}

		if obs.IsWin() {
			g.history = append(g.history, TurnRecord{
				Guess:           sel.Guess,
				Pattern:         obs,
				CandidatesAfter: 1,
				Duration:        time.Since(start),
				Selection:       sel,
			})
			g.Logger.Info().
				Int("turn", turn).
				Str("guess", sel.Guess.String()).
				Str("pattern", obs.String()).
				Dur("duration", time.Since(start)).
				Msg("win")
			g.state = StateWin
			return g.outcome(nil)
		}

		narrowed, err := g.s.Filter(sel.Guess, obs)
		if err != nil {
			g.state = StateError
			return g.outcome(err)
		}
		g.s = narrowed

		g.history = append(g.history, TurnRecord{
			Guess:           sel.Guess,
			Pattern:         obs,
			CandidatesAfter: g.s.Size(),
			Duration:        time.Since(start),
			Selection:       sel,
		})

		g.Logger.Debug().
			Int("turn", turn).
			Str("guess", sel.Guess.String()).
			Str("pattern", obs.String()).
			Int("candidates_after", g.s.Size()).
			Float64("entropy", sel.Entropy).
			Bool("degraded", sel.Degraded).
			Int64("pool_tasks_completed", sel.PoolStats.TasksCompleted).
			Int64("pool_tasks_cancelled", sel.PoolStats.TasksCancelled).
			Dur("duration", time.Since(start)).
			Msg("turn")

		g.state = StateAwaitGuess
	}

	g.Logger.Info().Int("max_turns", g.cfg.MaxTurns).Msg("turn limit reached")
	g.state = StateLoss
	return g.outcome(&SolveError{Kind: TurnLimitReached, Message: "max_turns reached without a win"})
}

func (g *Game) outcome(err error) Outcome {
	return Outcome{
		State:   g.state,
		Turns:   len(g.history),
		History: g.history,
		Err:     err,
	}
}
