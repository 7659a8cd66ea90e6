// Package batch runs the solver across an entire answer set Ω,
// producing aggregate statistics for benchmarking guess-selection
// policies (§4.10).
package batch

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	"github.com/gitrdm/wordle-entropy-solver/pkg/oracle"
	"github.com/gitrdm/wordle-entropy-solver/pkg/pattern"
	"github.com/gitrdm/wordle-entropy-solver/pkg/wordle"
)

// GameResult is one game's outcome, identified by the answer it was
// played against.
type GameResult struct {
	Answer pattern.Word
	Turns  int
	Won    bool
	Err    error
}

// Report aggregates a batch run across every answer in Ω.
type Report struct {
	Results    []GameResult
	Wins       int
	Losses     int
	Errors     int
	TotalTurns int
	Duration   time.Duration
}

// AverageTurns returns the mean turn count across winning games only,
// or 0 if there were none.
func (r Report) AverageTurns() float64 {
	if r.Wins == 0 {
		return 0
	}
	total := 0
	for _, res := range r.Results {
		if res.Won {
			total += res.Turns
		}
	}
	return float64(total) / float64(r.Wins)
}

// RunAll plays one game per word in omega, each against a
// SimulatorOracle fixed to that word, bounding concurrency to
// maxConcurrent simultaneous games via a weighted semaphore. Every
// game gets its own CandidateState and strategy instance so games
// never share mutable state. It is equivalent to RunAllLogged with a
// no-op logger.
func RunAll(ctx context.Context, gamma, omega []pattern.Word, cfg wordle.SolverConfig, maxConcurrent int) Report {
	return RunAllLogged(ctx, gamma, omega, cfg, maxConcurrent, zerolog.Nop(), 0)
}

// RunAllLogged is RunAll plus structured progress logging: a summary
// line is emitted every progressEvery completed games (0 disables
// progress logging; the final report is never logged here, callers
// log that themselves from the returned Report).
func RunAllLogged(ctx context.Context, gamma, omega []pattern.Word, cfg wordle.SolverConfig, maxConcurrent int, logger zerolog.Logger, progressEvery int) Report {
	cfg.Normalize()
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	sem := semaphore.NewWeighted(int64(maxConcurrent))
	results := make([]GameResult, len(omega))

	var wg sync.WaitGroup
	var wins, losses, errs, completed atomic.Int64

	start := time.Now()
	for i, answer := range omega {
		if err := sem.Acquire(ctx, 1); err != nil {
			results[i] = GameResult{Answer: answer, Err: err}
			errs.Add(1)
			continue
		}

		wg.Add(1)
		go func(i int, answer pattern.Word) {
			defer wg.Done()
			defer sem.Release(1)

			strategy := wordle.NewEntropyMaxStrategy()
			o := oracle.NewSimulatorOracle(answer)
			game := wordle.NewGame(gamma, omega, strategy, o, cfg)
			outcome := game.Run(ctx)

			res := GameResult{Answer: answer, Turns: outcome.Turns}
			switch outcome.State {
			case wordle.StateWin:
				res.Won = true
				wins.Add(1)
			case wordle.StateLoss:
				losses.Add(1)
			default:
				res.Err = outcome.Err
				errs.Add(1)
			}
			results[i] = res

			n := completed.Add(1)
			if progressEvery > 0 && (n%int64(progressEvery) == 0 || int(n) == len(omega)) {
				logger.Info().
					Int64("completed", n).
					Int("total", len(omega)).
					Int64("wins", wins.Load()).
					Int64("losses", losses.Load()).
					Int64("errors", errs.Load()).
					Msg("batch progress")
			}
		}(i, answer)
	}
	wg.Wait()

	report := Report{
		Results:  results,
		Wins:     int(wins.Load()),
		Losses:   int(losses.Load()),
		Errors:   int(errs.Load()),
		Duration: time.Since(start),
	}
	for _, res := range results {
		report.TotalTurns += res.Turns
	}
	return report
}
