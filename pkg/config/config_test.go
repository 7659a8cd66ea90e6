package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gitrdm/wordle-entropy-solver/pkg/wordle"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "solver.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.MaxTurns != wordle.DefaultMaxTurns {
		t.Errorf("got MaxTurns %d, want %d", cfg.MaxTurns, wordle.DefaultMaxTurns)
	}
	if cfg.Opener != wordle.DefaultOpener {
		t.Errorf("got Opener %q, want %q", cfg.Opener, wordle.DefaultOpener)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
max_turns = 8
time_budget_seconds = 2.5
max_workers = 4
opener = "STARE"
pool_threshold = 3
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.MaxTurns != 8 {
		t.Errorf("got MaxTurns %d, want 8", cfg.MaxTurns)
	}
	if cfg.MaxWorkers != 4 {
		t.Errorf("got MaxWorkers %d, want 4", cfg.MaxWorkers)
	}
	if cfg.Opener != "STARE" {
		t.Errorf("got Opener %q, want STARE", cfg.Opener)
	}
	if cfg.PoolThreshold != 3 {
		t.Errorf("got PoolThreshold %d, want 3", cfg.PoolThreshold)
	}
}

func TestLoadDisableOpener(t *testing.T) {
	path := writeConfig(t, "disable_opener = true\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Opener != "" {
		t.Errorf("got Opener %q, want empty (disabled)", cfg.Opener)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
