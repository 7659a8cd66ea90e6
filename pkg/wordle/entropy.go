package wordle

import (
	"math"

	"github.com/gitrdm/wordle-entropy-solver/pkg/pattern"
)

// Entropy computes the expected Shannon information gain in bits of
// playing guess against the uniform distribution over s (§4.4).
//
// s is partitioned into pattern.NumCodes buckets keyed by the Pattern
// Code of Feedback(guess, candidate); H = -sum(n_k/N * log2(n_k/N))
// over buckets with n_k > 0. If |s| <= 1 the result is 0 for every
// guess, since no guess can distinguish fewer than two remaining
// answers.
func Entropy(guess pattern.Word, s CandidateState) float64 {
	n := s.Size()
	if n <= 1 {
		return 0
	}

	var buckets [pattern.NumCodes]int
	s.Iter(func(w pattern.Word) bool {
		buckets[pattern.FeedbackCode(guess, w)]++
		return true
	})

	total := float64(n)
	h := 0.0
	for _, count := range buckets {
		if count == 0 {
			continue
		}
		p := float64(count) / total
		h -= p * math.Log2(p)
	}
	return h
}
