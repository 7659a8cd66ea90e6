// Package config loads a wordle.SolverConfig from a TOML file, using
// github.com/BurntSushi/toml as the decoder.
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/gitrdm/wordle-entropy-solver/pkg/wordle"
)

// fileConfig mirrors the recognized TOML keys from §6.3. TimeBudget is
// decoded as a plain float of seconds rather than a duration string,
// matching the spec's "time_budget_seconds" wire name.
type fileConfig struct {
	MaxTurns          int     `toml:"max_turns"`
	TimeBudgetSeconds float64 `toml:"time_budget_seconds"`
	MaxWorkers        int     `toml:"max_workers"`
	Opener            string  `toml:"opener"`
	DisableOpener     bool    `toml:"disable_opener"`
	PoolThreshold     int     `toml:"pool_threshold"`
}

// Load reads path and returns a normalized wordle.SolverConfig. A
// missing file is an error; missing individual keys fall back to
// SolverConfig's documented defaults via Normalize.
func Load(path string) (wordle.SolverConfig, error) {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return wordle.SolverConfig{}, fmt.Errorf("config: decoding %s: %w", path, err)
	}

	cfg := wordle.SolverConfig{
		MaxTurns:      fc.MaxTurns,
		MaxWorkers:    fc.MaxWorkers,
		PoolThreshold: fc.PoolThreshold,
	}
	if fc.TimeBudgetSeconds > 0 {
		cfg.TimeBudget = time.Duration(fc.TimeBudgetSeconds * float64(time.Second))
	}

	if fc.DisableOpener {
		cfg.DisableOpener()
	} else if fc.Opener != "" {
		cfg.Opener = fc.Opener
	}

	cfg.Normalize()
	return cfg, nil
}
