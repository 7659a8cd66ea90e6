// Command bench plays one game per answer in the loaded answer set Ω
// against an in-process simulator, and reports the aggregate win rate
// and mean turn count from §8's "Aggregate performance" property. It
// is a thin wrapper over pkg/batch — see §2's "Batch runner" component
// in SPEC_FULL.md.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/gitrdm/wordle-entropy-solver/pkg/batch"
	"github.com/gitrdm/wordle-entropy-solver/pkg/config"
	"github.com/gitrdm/wordle-entropy-solver/pkg/wordle"
	"github.com/gitrdm/wordle-entropy-solver/pkg/wordlist"
)

func main() {
	allowedPath := flag.String("allowed", "testdata/allowed_sample.txt", "path to the allowed-guess word list")
	answersPath := flag.String("answers", "testdata/answers_sample.txt", "path to the answer word list")
	configPath := flag.String("config", "", "optional TOML config file (see pkg/config)")
	concurrency := flag.Int("concurrency", 0, "max concurrent games (0 defaults to max_workers)")
	progressEvery := flag.Int("progress-every", 100, "log a progress summary every N completed games (0 disables)")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	cfg := wordle.NewSolverConfig()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Fatal().Err(err).Msg("loading config")
		}
		cfg = loaded
	}

	gamma, omega, err := wordlist.LoadGammaOmega(*allowedPath, *answersPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("loading word lists")
	}

	maxConcurrent := *concurrency
	if maxConcurrent <= 0 {
		maxConcurrent = cfg.MaxWorkers
	}

	ctx := context.Background()
	r := batch.RunAllLogged(ctx, gamma, omega, cfg, maxConcurrent, logger, *progressEvery)

	fmt.Printf("played %d games in %s\n", len(r.Results), r.Duration)
	fmt.Printf("wins=%d losses=%d errors=%d win_rate=%.2f%% mean_turns=%.3f\n",
		r.Wins, r.Losses, r.Errors,
		100*float64(r.Wins)/float64(len(r.Results)),
		r.AverageTurns())

	if r.Errors > 0 {
		os.Exit(1)
	}
}
