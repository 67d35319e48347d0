package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/packtherm/config"
	coreadvisor "github.com/kilianp07/packtherm/core/advisor"
	coremetrics "github.com/kilianp07/packtherm/core/metrics"
	"github.com/kilianp07/packtherm/core/model"
	"github.com/kilianp07/packtherm/core/sim"
	infraadvisor "github.com/kilianp07/packtherm/infra/advisor"
	"github.com/kilianp07/packtherm/infra/logger"
	"github.com/kilianp07/packtherm/infra/metrics"
	"github.com/kilianp07/packtherm/infra/mqtt"
	"github.com/kilianp07/packtherm/internal/eventbus"
	"github.com/kilianp07/packtherm/pkg/export"
)

// RunCompleted is published on the event bus after each simulation so
// slow consumers (the MQTT publisher) never block the engine.
type RunCompleted struct {
	Result coremetrics.RunResult
}

// Outcome is what one simulation request produces for the caller.
type Outcome struct {
	RunID   string
	Summary model.Summary
	Samples []model.Sample
	Advice  string
}

// Service orchestrates the engine, observability sinks, the result
// publisher and the advisory client.
type Service struct {
	cfg       *config.Config
	log       logger.Logger
	sink      coremetrics.MetricsSink
	bus       *eventbus.Bus
	advisor   coreadvisor.Advisor
	publisher *mqtt.Publisher
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sinks []coremetrics.MetricsSink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.MetricsSink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	svc := &Service{cfg: cfg, log: logg, sink: sink, bus: eventbus.New()}

	if cfg.MQTT.Enabled {
		pub, err := mqtt.NewPublisher(cfg.MQTT)
		if err != nil {
			return nil, fmt.Errorf("mqtt publisher: %w", err)
		}
		svc.publisher = pub
	}
	if cfg.Advisor.Enabled {
		svc.advisor = infraadvisor.NewOpenAIAdvisor(cfg.Advisor)
	}
	return svc, nil
}

// Execute runs one simulation request end to end: validate, simulate,
// summarize, record, publish and advise. Validation errors are terminal
// for the request; advisory failures degrade to the static fallback.
func (s *Service) Execute(ctx context.Context) (*Outcome, error) {
	req, err := s.cfg.Simulation.ToModel()
	if err != nil {
		return nil, err
	}
	vc, err := sim.Validate(req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	samples := sim.Simulate(vc)
	summary := sim.Summarize(samples)
	res := coremetrics.RunResult{
		RunID:    uuid.NewString(),
		Config:   req,
		Summary:  summary,
		Duration: time.Since(start),
		Time:     start,
	}
	s.log.Debugw("simulation complete", map[string]any{
		"run_id":  res.RunID,
		"samples": len(samples),
		"peak_c":  summary.PeakTempC,
		"risk":    summary.Risk.String(),
		"elapsed": res.Duration.String(),
	})

	if err := s.sink.RecordRun(res); err != nil {
		s.log.Errorf("record run: %v", err)
	}
	if rec, ok := s.sink.(coremetrics.SampleRecorder); ok {
		if err := rec.RecordSamples(res, samples); err != nil {
			s.log.Errorf("record samples: %v", err)
		}
	}
	s.bus.Publish(RunCompleted{Result: res})

	return &Outcome{
		RunID:   res.RunID,
		Summary: summary,
		Samples: samples,
		Advice:  s.advise(ctx, res),
	}, nil
}

// advise asks the external advisor for a recommendation, falling back
// to the static text on any failure. An advisory error never
// invalidates the computed result.
func (s *Service) advise(ctx context.Context, res coremetrics.RunResult) string {
	if s.advisor == nil {
		return coreadvisor.Fallback(res.Summary)
	}
	start := time.Now()
	text, err := s.advisor.Advise(ctx, res.Config, res.Summary)
	ev := coremetrics.AdviceEvent{
		RunID:   res.RunID,
		Latency: time.Since(start),
		Time:    time.Now(),
	}
	if err != nil {
		s.log.Warnf("advisory unavailable, using fallback: %v", err)
		ev.Fallback = true
		text = coreadvisor.Fallback(res.Summary)
	}
	if rec, ok := s.sink.(coremetrics.AdviceRecorder); ok {
		if recErr := rec.RecordAdvice(ev); recErr != nil {
			s.log.Errorf("record advice: %v", recErr)
		}
	}
	return text
}

// Export writes the sample sequence according to the export settings.
func (s *Service) Export(samples []model.Sample) error {
	var w io.Writer = os.Stdout
	if s.cfg.Export.Path != "" {
		f, err := os.Create(s.cfg.Export.Path)
		if err != nil {
			return fmt.Errorf("create export file: %w", err)
		}
		defer f.Close()
		w = f
	}
	switch s.cfg.Export.Format {
	case "json":
		return export.WriteJSON(w, samples)
	default:
		return export.WriteCSV(w, samples)
	}
}

// Run executes one request and drives the side channels: the MQTT
// publisher drains the event bus, and the Prometheus endpoint keeps
// serving until the context is cancelled when enabled.
func (s *Service) Run(ctx context.Context) (*Outcome, error) {
	done := make(chan struct{})
	sub := s.bus.Subscribe()
	go func() {
		defer close(done)
		for ev := range sub {
			rc, ok := ev.(RunCompleted)
			if !ok || s.publisher == nil {
				continue
			}
			if err := s.publisher.PublishRun(rc.Result); err != nil {
				s.log.Errorf("publish run: %v", err)
			}
		}
	}()

	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	outcome, err := s.Execute(ctx)
	// Closing the bus lets the publisher goroutine drain buffered
	// events and exit.
	s.bus.Close()
	<-done
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.bus.Close()
	if s.publisher != nil {
		s.publisher.Close()
	}
	return nil
}
