package sim

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/packtherm/core/model"
)

// Risk tier thresholds on peak temperature in °C. Exactly 60.0 is
// runaway; exactly 55.0 is elevated, not high; exactly 45.0 is nominal.
const (
	runawayTempC  = 60.0
	highTempC     = 55.0
	elevatedTempC = 45.0
)

// RiskFromPeak classifies a peak temperature into a risk tier.
func RiskFromPeak(peakTempC float64) model.RiskTier {
	switch {
	case peakTempC >= runawayTempC:
		return model.RiskRunaway
	case peakTempC > highTempC:
		return model.RiskHigh
	case peakTempC > elevatedTempC:
		return model.RiskElevated
	default:
		return model.RiskNominal
	}
}

// Summarize derives the headline metrics of a trajectory: peak
// temperature, average efficiency and the risk tier. Samples must be
// non-empty; the engine always produces at least the t=0 sample.
func Summarize(samples []model.Sample) model.Summary {
	temps := make([]float64, len(samples))
	effs := make([]float64, len(samples))
	for i, s := range samples {
		temps[i] = s.BatteryTempC
		effs[i] = s.EfficiencyPct
	}
	peak := floats.Max(temps)
	return model.Summary{
		PeakTempC:        peak,
		AvgEfficiencyPct: stat.Mean(effs, nil),
		Risk:             RiskFromPeak(peak),
	}
}
