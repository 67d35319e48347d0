package metrics

import (
	"context"
	"math"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/kilianp07/packtherm/core/metrics"
	"github.com/kilianp07/packtherm/core/model"
	"github.com/kilianp07/packtherm/infra/logger"
)

// InfluxSink writes simulation runs and their thermal traces to an
// InfluxDB instance using the official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(cfg coremetrics.Config) *InfluxSink {
	base := strings.TrimSuffix(cfg.InfluxURL, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, cfg.InfluxToken,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.InfluxOrg, cfg.InfluxBucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and
// returns a NopSink if the health check fails.
func NewInfluxSinkWithFallback(cfg coremetrics.Config) coremetrics.MetricsSink {
	sink := NewInfluxSink(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordRun writes the run summary as a single point.
func (s *InfluxSink) RecordRun(res coremetrics.RunResult) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("simulation_run").
		AddTag("run_id", res.RunID).
		AddTag("cooling", res.Config.Cooling.String()).
		AddTag("risk", res.Summary.Risk.String()).
		AddField("peak_temp_c", round3(res.Summary.PeakTempC)).
		AddField("avg_efficiency_pct", round3(res.Summary.AvgEfficiencyPct)).
		AddField("capacity_kwh", round3(res.Config.CapacityKWh)).
		AddField("c_rate", round3(res.Config.CRate)).
		AddField("duration_ms", round3(res.Duration.Seconds()*1000)).
		SetTime(res.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordSamples persists the full thermal trajectory, one point per
// simulated minute, anchored at the run's wall-clock time.
func (s *InfluxSink) RecordSamples(res coremetrics.RunResult, samples []model.Sample) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, sm := range samples {
		p := write.NewPointWithMeasurement("thermal_sample").
			AddTag("run_id", res.RunID).
			AddTag("cooling", res.Config.Cooling.String()).
			AddField("time_min", sm.TimeMinutes).
			AddField("battery_temp_c", round3(sm.BatteryTempC)).
			AddField("heat_generated_w", round3(sm.HeatGeneratedW)).
			AddField("heat_dissipated_w", round3(sm.HeatDissipatedW)).
			AddField("efficiency_pct", round3(sm.EfficiencyPct)).
			SetTime(res.Time.Add(time.Duration(sm.TimeMinutes) * time.Minute))
		if err := s.writeAPI.WritePoint(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// RecordAdvice writes the outcome of an advisory request.
func (s *InfluxSink) RecordAdvice(ev coremetrics.AdviceEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("advisory_request").
		AddTag("run_id", ev.RunID).
		AddField("fallback", ev.Fallback).
		AddField("latency_ms", round3(ev.Latency.Seconds()*1000)).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying client.
func (s *InfluxSink) Close() { s.client.Close() }

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
