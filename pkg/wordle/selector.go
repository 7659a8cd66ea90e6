package wordle

import (
	"context"
	"sync"

	"github.com/gitrdm/wordle-entropy-solver/internal/parallel"
	"github.com/gitrdm/wordle-entropy-solver/pkg/pattern"
)

// EntropyMaxStrategy is the solver's single production
// SelectionStrategy: greedy one-ply entropy maximization with a
// parallel, deadline-bounded scan over the candidate pool (§4.5).
type EntropyMaxStrategy struct{}

// NewEntropyMaxStrategy returns the entropy-maximizing strategy.
func NewEntropyMaxStrategy() *EntropyMaxStrategy {
	return &EntropyMaxStrategy{}
}

func (s *EntropyMaxStrategy) Name() string { return "entropy-max" }

func (s *EntropyMaxStrategy) Description() string {
	return "greedy one-ply Shannon entropy maximization over the candidate distribution, parallel fan-out across the guess pool under a wall-clock budget"
}

// workerResult is one worker's best finding over its slice of the pool.
type workerResult struct {
	has       bool
	guess     pattern.Word
	entropy   float64
	inS       bool
	evaluated int
}

// Select implements the policy from §4.5, in order: the turn-1 opener
// shortcut, the one-left and two-left shortcuts, then a parallel
// entropy scan over either S or Γ depending on pool_threshold.
func (es *EntropyMaxStrategy) Select(ctx context.Context, gamma []pattern.Word, s CandidateState, cfg SolverConfig) (Selection, error) {
	cfg.Normalize()

	if isFullAnswerSet(s) && cfg.Opener != "" {
		opener := pattern.MustParseWord(cfg.Opener)
		return Selection{Guess: opener, Entropy: OpenerEntropy[cfg.Opener]}, nil
	}

	if s.Size() == 1 {
		return Selection{Guess: s.Words()[0]}, nil
	}

	if s.Size() == 2 {
		return Selection{Guess: lexSmallest(s.Words())}, nil
	}

	// Hard-mode (constraining every future guess to remain consistent
	// with all prior feedback) is not implemented; it would filter
	// gamma against H at exactly this point, the same F-consistency
	// rule CandidateState.Filter already applies to S.
	var pool []pattern.Word
	if s.Size() <= cfg.PoolThreshold {
		pool = s.Words()
	} else {
		pool = gamma
	}

	return es.scan(ctx, pool, s, cfg)
}

// isFullAnswerSet reports whether s still contains every word in its
// backing answer set — the "S == Ω" condition for the turn-1 shortcut,
// expressed without requiring the caller to have kept Ω around
// separately (S already knows its own full size via idx).
func isFullAnswerSet(s CandidateState) bool {
	return s.count == len(s.idx.words)
}

func (es *EntropyMaxStrategy) scan(ctx context.Context, pool []pattern.Word, s CandidateState, cfg SolverConfig) (Selection, error) {
	workerCount := cfg.MaxWorkers
	if workerCount > len(pool) {
		workerCount = len(pool)
	}
	if workerCount < 1 {
		workerCount = 1
	}

	deadline := parallel.NewDeadline(cfg.TimeBudget)
	pool2 := parallel.NewWorkerPool(workerCount)
	defer pool2.Shutdown()

	results := make([]workerResult, workerCount)
	chunk := (len(pool) + workerCount - 1) / workerCount

	var wg sync.WaitGroup
	for wi := 0; wi < workerCount; wi++ {
		start := wi * chunk
		if start >= len(pool) {
			continue
		}
		end := start + chunk
		if end > len(pool) {
			end = len(pool)
		}
		slice := pool[start:end]
		slot := wi

		wg.Add(1)
		if err := pool2.Submit(ctx, func() {
			defer wg.Done()
			results[slot] = scanSlice(slice, s, deadline)
		}); err != nil {
			wg.Done()
		}
	}
	wg.Wait()
	poolStats := pool2.Stats().Snapshot()

	var best workerResult
	totalEvaluated := 0
	for _, r := range results {
		totalEvaluated += r.evaluated
		if !r.has {
			continue
		}
		if !best.has || betterCandidate(r.entropy, r.inS, r.guess, best.entropy, best.inS, best.guess) {
			best = r
		}
	}

	if !best.has {
		return Selection{Guess: lexSmallest(s.Words()), Degraded: true, Evaluated: totalEvaluated, PoolStats: poolStats}, nil
	}

	return Selection{
		Guess:     best.guess,
		Entropy:   best.entropy,
		Evaluated: totalEvaluated,
		Degraded:  totalEvaluated < len(pool),
		PoolStats: poolStats,
	}, nil
}

// scanSlice evaluates entropy for each guess in slice against s,
// checking the shared deadline before starting each guess (never
// aborting mid-computation, per §5's cooperative cancellation), and
// returns the best candidate found under the tie-break policy.
func scanSlice(slice []pattern.Word, s CandidateState, deadline *parallel.Deadline) workerResult {
	var r workerResult
	for _, g := range slice {
		if deadline.Expired() {
			break
		}
		h := Entropy(g, s)
		inS := s.Contains(g)
		r.evaluated++
		if !r.has || betterCandidate(h, inS, g, r.entropy, r.inS, r.guess) {
			r.has = true
			r.guess = g
			r.entropy = h
			r.inS = inS
		}
	}
	return r
}
