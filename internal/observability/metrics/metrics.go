// Package metrics counts generator activity for run summaries.
package metrics

import (
	"sync"
	"time"
)

// FileOutcome classifies what happened to one rendered file.
type FileOutcome string

const (
	FileWritten   FileOutcome = "written"
	FileUnchanged FileOutcome = "unchanged"
	FilePlanned   FileOutcome = "planned"
)

// Collector receives phase timings and file outcomes.
type Collector interface {
	RecordPhase(generator, phase string, duration time.Duration)
	RecordFile(generator string, outcome FileOutcome)
}

// NoopCollector discards all metrics.
type NoopCollector struct{}

// RecordPhase implements Collector.
func (NoopCollector) RecordPhase(string, string, time.Duration) {}

// RecordFile implements Collector.
func (NoopCollector) RecordFile(string, FileOutcome) {}

// MultiCollector fans events out to several collectors.
type MultiCollector []Collector

// RecordPhase implements Collector.
func (mc MultiCollector) RecordPhase(generator, phase string, duration time.Duration) {
	for _, c := range mc {
		c.RecordPhase(generator, phase, duration)
	}
}

// RecordFile implements Collector.
func (mc MultiCollector) RecordFile(generator string, outcome FileOutcome) {
	for _, c := range mc {
		c.RecordFile(generator, outcome)
	}
}

// WithCollector returns a collector that fans out to all non-nil collectors.
func WithCollector(primary Collector, others ...Collector) Collector {
	collectors := make([]Collector, 0, 1+len(others))
	for _, c := range append([]Collector{primary}, others...) {
		if c != nil {
			collectors = append(collectors, c)
		}
	}
	switch len(collectors) {
	case 0:
		return NoopCollector{}
	case 1:
		return collectors[0]
	default:
		return MultiCollector(collectors)
	}
}

// Recorder keeps totals in memory. It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	phases map[string]time.Duration
	files  map[FileOutcome]int
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		phases: make(map[string]time.Duration),
		files:  make(map[FileOutcome]int),
	}
}

// RecordPhase implements Collector.
func (r *Recorder) RecordPhase(generator, phase string, duration time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.phases[generator+"."+phase] += duration
}

// RecordFile implements Collector.
func (r *Recorder) RecordFile(_ string, outcome FileOutcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.files[outcome]++
}

// Files returns how many files ended with outcome.
func (r *Recorder) Files(outcome FileOutcome) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.files[outcome]
}

// Phases returns the recorded phase names ("entity-client.writing").
func (r *Recorder) Phases() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.phases))
	for name := range r.phases {
		out = append(out, name)
	}
	return out
}
