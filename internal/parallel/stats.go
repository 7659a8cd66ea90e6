package parallel

import (
	"fmt"
	"sync"
	"time"
)

// ExecutionStats accumulates counters describing how a WorkerPool was
// used. It exists mainly so the selector can carry a per-turn snapshot
// out on its result and the game can log it, without threading ad hoc
// counters through every call site.
type ExecutionStats struct {
	mu sync.Mutex

	TasksSubmitted int64
	TasksCompleted int64
	TasksFailed    int64
	TasksCancelled int64
	TotalDuration  time.Duration
	LastError      error
}

// NewExecutionStats returns a zeroed stats collector.
func NewExecutionStats() *ExecutionStats {
	return &ExecutionStats{}
}

func (es *ExecutionStats) RecordTaskSubmitted() {
	es.mu.Lock()
	es.TasksSubmitted++
	es.mu.Unlock()
}

func (es *ExecutionStats) RecordTaskCompleted(d time.Duration) {
	es.mu.Lock()
	es.TasksCompleted++
	es.TotalDuration += d
	es.mu.Unlock()
}

func (es *ExecutionStats) RecordTaskFailed(err error) {
	es.mu.Lock()
	es.TasksFailed++
	es.LastError = err
	es.mu.Unlock()
}

func (es *ExecutionStats) RecordTaskCancelled() {
	es.mu.Lock()
	es.TasksCancelled++
	es.mu.Unlock()
}

// Snapshot returns a copy of the current counters, safe to read
// concurrently with further recording.
func (es *ExecutionStats) Snapshot() ExecutionStats {
	es.mu.Lock()
	defer es.mu.Unlock()
	return ExecutionStats{
		TasksSubmitted: es.TasksSubmitted,
		TasksCompleted: es.TasksCompleted,
		TasksFailed:    es.TasksFailed,
		TasksCancelled: es.TasksCancelled,
		TotalDuration:  es.TotalDuration,
		LastError:      es.LastError,
	}
}

func (es *ExecutionStats) String() string {
	s := es.Snapshot()
	return fmt.Sprintf("submitted=%d completed=%d failed=%d cancelled=%d totalDuration=%s",
		s.TasksSubmitted, s.TasksCompleted, s.TasksFailed, s.TasksCancelled, s.TotalDuration)
}
