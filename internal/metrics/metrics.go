package metrics

import (
	"sync"
	"time"
)

// Lookup outcomes for the year selection callback.
const (
	LookupHit  = "hit"
	LookupMiss = "miss"
	LookupNone = "none"
)

type datasetStats struct {
	loads        int
	errors       int
	lastRows     int
	lastDuration time.Duration
}

// Recorder captures lightweight, in-memory counters and forwards to OpenTelemetry when configured.
type Recorder struct {
	mu      sync.Mutex
	dataset datasetStats
	lookups map[string]int
	otel    *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	lookups := make(map[string]int, len(LookupResults))
	for _, result := range LookupResults {
		lookups[result] = 0
	}
	return &Recorder{
		lookups: lookups,
		otel:    otel,
	}
}

// RecordDatasetLoad tracks one attempt to load the results table.
func (r *Recorder) RecordDatasetLoad(duration time.Duration, rows int, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.dataset.loads++
	r.dataset.lastDuration = duration
	if err != nil {
		r.dataset.errors++
	} else {
		r.dataset.lastRows = rows
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordDatasetLoad(duration, rows, err)
	}
}

// RecordLookup counts a finals lookup by outcome (LookupHit, LookupMiss, LookupNone).
func (r *Recorder) RecordLookup(result string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.lookups[result]++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordLookup(result)
	}
}

// Lookups returns how many lookups ended with the given outcome.
func (r *Recorder) Lookups(result string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lookups[result]
}

// Snapshot is a copy of the dataset load counters.
type Snapshot struct {
	Loads        int
	Errors       int
	LastRows     int
	LastDuration time.Duration
}

func (r *Recorder) Snapshot() Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot{
		Loads:        r.dataset.loads,
		Errors:       r.dataset.errors,
		LastRows:     r.dataset.lastRows,
		LastDuration: r.dataset.lastDuration,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}
