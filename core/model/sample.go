package model

// Sample is one point of a simulated thermal trajectory. Samples are
// produced fresh on each run and never mutated afterwards.
type Sample struct {
	TimeMinutes     int     `json:"time_min"`
	BatteryTempC    float64 `json:"battery_temp_c"`
	HeatGeneratedW  float64 `json:"heat_generated_w"`
	HeatDissipatedW float64 `json:"heat_dissipated_w"`
	EfficiencyPct   float64 `json:"efficiency_pct"`
}

// RiskTier classifies the thermal safety of a run by its peak temperature.
type RiskTier int

const (
	RiskNominal RiskTier = iota
	RiskElevated
	RiskHigh
	RiskRunaway
)

// String returns a human-readable representation of the risk tier.
func (r RiskTier) String() string {
	switch r {
	case RiskNominal:
		return "nominal"
	case RiskElevated:
		return "elevated"
	case RiskHigh:
		return "high"
	case RiskRunaway:
		return "runaway"
	default:
		return "unknown"
	}
}

// Summary aggregates a full trajectory into its safety and efficiency
// headline figures.
type Summary struct {
	PeakTempC        float64  `json:"peak_temp_c"`
	AvgEfficiencyPct float64  `json:"avg_efficiency_pct"`
	Risk             RiskTier `json:"risk"`
}
