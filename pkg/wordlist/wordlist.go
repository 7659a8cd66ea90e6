// Package wordlist loads the allowed-guess set Γ and answer set Ω from
// newline-delimited text files, and validates the Ω ⊆ Γ invariant
// required by §6.1/§4.9.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/gitrdm/wordle-entropy-solver/pkg/pattern"
	"github.com/gitrdm/wordle-entropy-solver/pkg/wordle"
)

// Load reads one five-letter word per line from path, uppercasing and
// trimming each line, and skipping blank lines. It returns an
// InvalidWord SolveError naming the offending line if any entry is not
// a well-formed five-letter word.
func Load(path string) ([]pattern.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: opening %s: %w", path, err)
	}
	defer f.Close()

	var words []pattern.Word
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if line == "" {
			continue
		}
		w, err := pattern.ParseWord(line)
		if err != nil {
			return nil, &wordle.SolveError{
				Kind:    wordle.InvalidWord,
				Message: fmt.Sprintf("%s:%d: %q is not a valid five-letter word", path, lineNo, line),
				Cause:   err,
			}
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("wordlist: reading %s: %w", path, err)
	}
	return words, nil
}

// LoadGammaOmega loads the allowed-guess list and the answer list and
// checks that every answer is itself an allowed guess (Ω ⊆ Γ). It
// returns an InvalidWord SolveError naming the first answer found
// outside Γ.
func LoadGammaOmega(allowedPath, answersPath string) (gamma, omega []pattern.Word, err error) {
	gamma, err = Load(allowedPath)
	if err != nil {
		return nil, nil, err
	}
	omega, err = Load(answersPath)
	if err != nil {
		return nil, nil, err
	}

	inGamma := make(map[pattern.Word]struct{}, len(gamma))
	for _, w := range gamma {
		inGamma[w] = struct{}{}
	}
	for _, w := range omega {
		if _, ok := inGamma[w]; !ok {
			return nil, nil, &wordle.SolveError{
				Kind:    wordle.InvalidWord,
				Message: fmt.Sprintf("answer %s is not present in the allowed-guess list", w),
			}
		}
	}

	return gamma, omega, nil
}
