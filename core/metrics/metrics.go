package metrics

import (
	"time"

	"github.com/kilianp07/packtherm/core/model"
)

// RunResult represents one completed simulation run to be recorded.
type RunResult struct {
	RunID    string
	Config   model.SimulationConfig
	Summary  model.Summary
	Duration time.Duration
	Time     time.Time
}

// MetricsSink records completed runs for observability purposes.
type MetricsSink interface {
	RecordRun(res RunResult) error
}

// SampleRecorder is implemented by sinks able to persist the full
// thermal trajectory of a run, one point per sample.
type SampleRecorder interface {
	RecordSamples(res RunResult, samples []model.Sample) error
}

// AdviceEvent captures the outcome of an advisory-text request.
type AdviceEvent struct {
	RunID    string
	Fallback bool
	Latency  time.Duration
	Time     time.Time
}

// AdviceRecorder records advisory call outcomes.
type AdviceRecorder interface {
	RecordAdvice(ev AdviceEvent) error
}

// NopSink implements all recorder interfaces with no-op methods.
type NopSink struct{}

func (NopSink) RecordRun(RunResult) error                     { return nil }
func (NopSink) RecordSamples(RunResult, []model.Sample) error { return nil }
func (NopSink) RecordAdvice(AdviceEvent) error                { return nil }
