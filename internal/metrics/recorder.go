// Package metrics records scenario run outcomes. Implementations may forward to
// Prometheus or anything else; NoopRecorder is the default when nothing is wired.
package metrics

import "time"

// ResultLabel enumerates run outcome categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFailed  ResultLabel = "failed"
	ResultUnknown ResultLabel = "unknown"
)

// Recorder defines observability hooks for scenario runs.
type Recorder interface {
	ObserveRunDuration(scenario string, d time.Duration)
	IncRunResult(scenario string, result ResultLabel)
	AddEvents(scenario string, n int)
}

// NoopRecorder is a Recorder that does nothing.
type NoopRecorder struct{}

func (NoopRecorder) ObserveRunDuration(string, time.Duration) {}
func (NoopRecorder) IncRunResult(string, ResultLabel)         {}
func (NoopRecorder) AddEvents(string, int)                    {}
