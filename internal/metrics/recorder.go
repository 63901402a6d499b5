// Package metrics provides observability hooks for generation runs.
//
// Components receive a Recorder through dependency injection and default
// to NoopRecorder, so metrics cost nothing unless a real implementation
// (Prometheus) is wired in by the preview server.
package metrics

import "time"

// ResultLabel enumerates block outcome categories for counters.
type ResultLabel string

const (
	ResultBuilt   ResultLabel = "built"
	ResultSkipped ResultLabel = "skipped"
	ResultFailed  ResultLabel = "failed"
)

// Recorder defines the metrics surface of the generation pipeline.
type Recorder interface {
	ObserveRunDuration(d time.Duration)
	IncFilesScanned(n int)
	IncBlocks(kind string, result ResultLabel)
	IncWarnings(n int)
	IncOutputs(template string)
	IncOutputFailures()
}

// NoopRecorder is the default Recorder; every method does nothing.
type NoopRecorder struct{}

func (NoopRecorder) ObserveRunDuration(time.Duration)   {}
func (NoopRecorder) IncFilesScanned(int)                {}
func (NoopRecorder) IncBlocks(string, ResultLabel)      {}
func (NoopRecorder) IncWarnings(int)                    {}
func (NoopRecorder) IncOutputs(string)                  {}
func (NoopRecorder) IncOutputFailures()                 {}
