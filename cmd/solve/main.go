// Command solve plays a single game of the entropy-maximizing Wordle
// solver: against an in-process simulator fixed to a known answer, or
// against a remote HTTP judge. It is a thin wrapper over pkg/wordle —
// see §2's "CLI" component in SPEC_FULL.md.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"

	"github.com/gitrdm/wordle-entropy-solver/pkg/config"
	"github.com/gitrdm/wordle-entropy-solver/pkg/oracle"
	"github.com/gitrdm/wordle-entropy-solver/pkg/pattern"
	"github.com/gitrdm/wordle-entropy-solver/pkg/wordle"
	"github.com/gitrdm/wordle-entropy-solver/pkg/wordlist"
)

func main() {
	allowedPath := flag.String("allowed", "testdata/allowed_sample.txt", "path to the allowed-guess word list")
	answersPath := flag.String("answers", "testdata/answers_sample.txt", "path to the answer word list")
	answer := flag.String("answer", "", "play against an in-process simulator fixed to this answer (mutually exclusive with -oracle-url)")
	oracleURL := flag.String("oracle-url", "", "play against a remote judge at this base URL (mutually exclusive with -answer)")
	configPath := flag.String("config", "", "optional TOML config file (see pkg/config)")
	maxTurns := flag.Int("max-turns", 0, "override max_turns (0 keeps the config/default value)")
	timeBudget := flag.Float64("time-budget", 0, "override time_budget_seconds (0 keeps the config/default value)")
	maxWorkers := flag.Int("max-workers", 0, "override max_workers (0 keeps the config/default value)")
	opener := flag.String("opener", "", "override opener (use \"-\" to disable the shortcut)")
	verbose := flag.Bool("v", false, "log per-turn detail instead of just the outcome")
	flag.Parse()

	logger := newLogger(*verbose)

	if (*answer == "") == (*oracleURL == "") {
		fmt.Fprintln(os.Stderr, "exactly one of -answer or -oracle-url is required")
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("loading config")
	}
	applyOverrides(&cfg, *maxTurns, *timeBudget, *maxWorkers, *opener)

	gamma, omega, err := wordlist.LoadGammaOmega(*allowedPath, *answersPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("loading word lists")
	}

	var judge wordle.Oracle
	if *answer != "" {
		w, err := pattern.ParseWord(*answer)
		if err != nil {
			logger.Fatal().Err(err).Msg("parsing -answer")
		}
		judge = oracle.NewSimulatorOracle(w)
	} else {
		judge = oracle.NewHTTPOracle(*oracleURL, logger)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	strategy := wordle.NewEntropyMaxStrategy()
	game := wordle.NewGame(gamma, omega, strategy, judge, cfg).WithLogger(logger)

	outcome := game.Run(ctx)
	report(logger, outcome)

	if outcome.State != wordle.StateWin {
		os.Exit(1)
	}
}

func loadConfig(path string) (wordle.SolverConfig, error) {
	if path == "" {
		return wordle.NewSolverConfig(), nil
	}
	return config.Load(path)
}

func applyOverrides(cfg *wordle.SolverConfig, maxTurns int, timeBudget float64, maxWorkers int, opener string) {
	if maxTurns > 0 {
		cfg.MaxTurns = maxTurns
	}
	if timeBudget > 0 {
		cfg.TimeBudget = time.Duration(timeBudget * float64(time.Second))
	}
	if maxWorkers > 0 {
		cfg.MaxWorkers = maxWorkers
	}
	switch opener {
	case "":
		// keep whatever loadConfig produced
	case "-":
		cfg.DisableOpener()
	default:
		cfg.Opener = opener
	}
}

func report(logger zerolog.Logger, outcome wordle.Outcome) {
	switch outcome.State {
	case wordle.StateWin:
		fmt.Printf("WIN in %d turns\n", outcome.Turns)
	case wordle.StateLoss:
		fmt.Printf("LOSS after %d turns\n", outcome.Turns)
	default:
		fmt.Printf("ERROR: %v\n", outcome.Err)
	}
	for i, rec := range outcome.History {
		fmt.Printf("  %d. %s -> %s (%d candidates remain, %.2f bits, %s)\n",
			i+1, rec.Guess, rec.Pattern, rec.CandidatesAfter, rec.Selection.Entropy, rec.Duration)
	}
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()
}
