package metrics

import (
	coremetrics "github.com/kilianp07/packtherm/core/metrics"
	"github.com/kilianp07/packtherm/core/model"
)

// MultiSink fans out run records to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordRun forwards the record to all sinks, returning the first error
// encountered.
func (m *MultiSink) RecordRun(res coremetrics.RunResult) error {
	for _, s := range m.Sinks {
		if err := s.RecordRun(res); err != nil {
			return err
		}
	}
	return nil
}

// RecordSamples forwards the trajectory to sinks that persist samples.
func (m *MultiSink) RecordSamples(res coremetrics.RunResult, samples []model.Sample) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.SampleRecorder); ok {
			if err := rec.RecordSamples(res, samples); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecordAdvice forwards advisory outcomes when supported by the sink.
func (m *MultiSink) RecordAdvice(ev coremetrics.AdviceEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.AdviceRecorder); ok {
			if err := rec.RecordAdvice(ev); err != nil {
				return err
			}
		}
	}
	return nil
}
