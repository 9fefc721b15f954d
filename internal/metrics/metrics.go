// Package metrics provides a small in-process counter accumulator.
package metrics

import (
	"log/slog"
	"math/rand"
	"sync"
)

// Recorder accumulates named counters. It is constructed and injected rather
// than shared as a process-wide singleton so tests can assert on it directly.
type Recorder struct {
	mu         sync.Mutex
	counts     map[string]int64
	sampleRate float64
	rnd        *rand.Rand
	logger     *slog.Logger
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithRand overrides the sampling source. Used by tests.
func WithRand(rnd *rand.Rand) Option {
	return func(r *Recorder) {
		r.rnd = rnd
	}
}

// NewRecorder creates a Recorder. sampleRate is the fraction of Incr calls
// that are counted, in [0, 1]; 1 counts every call.
func NewRecorder(sampleRate float64, logger *slog.Logger, opts ...Option) *Recorder {
	if sampleRate < 0 {
		sampleRate = 0
	}
	if sampleRate > 1 {
		sampleRate = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	r := &Recorder{
		counts:     make(map[string]int64),
		sampleRate: sampleRate,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Incr increments a counter, subject to the sample rate. The sampling draw
// happens under the mutex because *rand.Rand is not goroutine safe.
func (r *Recorder) Incr(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sampleRate < 1 {
		var draw float64
		if r.rnd != nil {
			draw = r.rnd.Float64()
		} else {
			draw = rand.Float64()
		}
		if draw >= r.sampleRate {
			return
		}
	}

	r.counts[name]++
}

// Snapshot returns a copy of the current counters.
func (r *Recorder) Snapshot() map[string]int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]int64, len(r.counts))
	for name, count := range r.counts {
		out[name] = count
	}
	return out
}

// Flush logs all counters and resets them.
func (r *Recorder) Flush() {
	r.mu.Lock()
	counts := r.counts
	r.counts = make(map[string]int64)
	r.mu.Unlock()

	for name, count := range counts {
		r.logger.Info("metric", "name", name, "count", count)
	}
}
