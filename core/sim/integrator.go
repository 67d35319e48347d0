package sim

import "github.com/kilianp07/packtherm/core/model"

// Lumped thermal model constants. The pack is treated as a single
// uniform-temperature mass; surface area and mass are empirical
// functions of capacity.
const (
	stepSeconds        = 60.0  // fixed integration step, 1 minute
	surfaceM2PerKWh    = 0.05  // external surface area proxy
	massKgPerKWh       = 6.0   // pack mass proxy
	specificHeatJPerKg = 800.0 // J/(kg·K)
)

// Integrate steps the pack temperature forward with explicit forward
// Euler at a fixed one-minute step and returns the full trajectory.
// The sample at t=0 carries the pre-integration state; every later
// sample carries the temperature after that step, with dissipation
// evaluated at that step's temperature. No stability check is applied;
// the step size is fixed by design.
func Integrate(vc ValidConfig, elec Electrical) []model.Sample {
	cfg := vc.Config()

	area := cfg.CapacityKWh * surfaceM2PerKWh
	h := cfg.Cooling.DissipationCoeff()
	heatCapacity := cfg.CapacityKWh * massKgPerKWh * specificHeatJPerKg
	powerOutW := cfg.CapacityKWh * 1000 * cfg.CRate
	efficiencyPct := (powerOutW - elec.HeatGenW) / powerOutW * 100

	samples := make([]model.Sample, 0, cfg.DurationMinutes+1)
	temp := cfg.InitialTempC
	for t := 0; t <= cfg.DurationMinutes; t++ {
		// Newton's law of cooling; negative when the environment is
		// warming the pack.
		heatDissW := h * area * (temp - cfg.AmbientTempC)
		samples = append(samples, model.Sample{
			TimeMinutes:     t,
			BatteryTempC:    temp,
			HeatGeneratedW:  elec.HeatGenW,
			HeatDissipatedW: heatDissW,
			EfficiencyPct:   efficiencyPct,
		})
		netJ := (elec.HeatGenW - heatDissW) * stepSeconds
		temp += netJ / heatCapacity
	}
	return samples
}

// Simulate runs the full engine on a validated request: derive the
// electrical operating point, then integrate the thermal trajectory.
// It is a pure function; identical configs produce identical sample
// sequences.
func Simulate(vc ValidConfig) []model.Sample {
	return Integrate(vc, DeriveElectrical(vc))
}
