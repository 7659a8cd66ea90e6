package wordlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gitrdm/wordle-entropy-solver/pkg/wordle"
)

const (
	sampleAnswers = "../../testdata/answers_sample.txt"
	sampleAllowed = "../../testdata/allowed_sample.txt"
)

func TestLoad(t *testing.T) {
	words, err := Load(sampleAnswers)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(words) != 10 {
		t.Fatalf("got %d words, want 10", len(words))
	}
	if words[0].String() != "CRANE" {
		t.Fatalf("got first word %s, want CRANE", words[0])
	}
}

func TestLoadSkipsBlankLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(path, []byte("crane\n\n  \nslate\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	words, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(words) != 2 {
		t.Fatalf("got %d words, want 2", len(words))
	}
}

func TestLoadRejectsInvalidWord(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(path, []byte("crane\nabcd\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid word")
	}
	var solveErr *wordle.SolveError
	if se, ok := err.(*wordle.SolveError); ok {
		solveErr = se
	}
	if solveErr == nil || solveErr.Kind != wordle.InvalidWord {
		t.Fatalf("got %v, want InvalidWord SolveError", err)
	}
}

func TestLoadGammaOmega(t *testing.T) {
	gamma, omega, err := LoadGammaOmega(sampleAllowed, sampleAnswers)
	if err != nil {
		t.Fatalf("LoadGammaOmega returned error: %v", err)
	}
	if len(gamma) != 14 {
		t.Fatalf("got %d allowed words, want 14", len(gamma))
	}
	if len(omega) != 10 {
		t.Fatalf("got %d answers, want 10", len(omega))
	}
}

func TestLoadGammaOmegaRejectsAnswerOutsideAllowed(t *testing.T) {
	dir := t.TempDir()
	allowedPath := filepath.Join(dir, "allowed.txt")
	answersPath := filepath.Join(dir, "answers.txt")
	if err := os.WriteFile(allowedPath, []byte("crane\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if err := os.WriteFile(answersPath, []byte("crane\nslate\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	_, _, err := LoadGammaOmega(allowedPath, answersPath)
	if err == nil {
		t.Fatal("expected error when an answer is outside the allowed list")
	}
}
