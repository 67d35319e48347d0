package metrics

import (
	coremetrics "github.com/kilianp07/packtherm/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records simulation runs in Prometheus metrics.
type PromSink struct {
	runs     *prometheus.CounterVec
	peak     *prometheus.GaugeVec
	duration prometheus.Histogram
	advice   *prometheus.CounterVec
}

// NewPromSink registers simulation metrics on the default Prometheus
// registerer. The Prometheus server should be started separately.
func NewPromSink(cfg coremetrics.Config) (coremetrics.MetricsSink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(cfg coremetrics.Config, reg prometheus.Registerer) (coremetrics.MetricsSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "simulation_runs_total",
		Help: "Total number of simulation runs",
	}, []string{"cooling", "risk"})
	peak := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "simulation_peak_temp_celsius",
		Help: "Peak pack temperature of the most recent run",
	}, []string{"cooling"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "simulation_duration_seconds",
		Help:    "Wall-clock time spent computing a run",
		Buckets: prometheus.DefBuckets,
	})
	advice := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "advisory_requests_total",
		Help: "Advisory text requests by outcome",
	}, []string{"fallback"})

	if err := reg.Register(runs); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			runs = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(peak); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			peak = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(advice); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			advice = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{runs: runs, peak: peak, duration: duration, advice: advice}, nil
}

// RecordRun increments the run counter and updates the peak gauge.
func (s *PromSink) RecordRun(res coremetrics.RunResult) error {
	cooling := res.Config.Cooling.String()
	s.runs.WithLabelValues(cooling, res.Summary.Risk.String()).Inc()
	s.peak.WithLabelValues(cooling).Set(res.Summary.PeakTempC)
	s.duration.Observe(res.Duration.Seconds())
	return nil
}

// RecordAdvice counts advisory outcomes.
func (s *PromSink) RecordAdvice(ev coremetrics.AdviceEvent) error {
	label := "false"
	if ev.Fallback {
		label = "true"
	}
	s.advice.WithLabelValues(label).Inc()
	return nil
}
