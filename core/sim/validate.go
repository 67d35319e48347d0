package sim

import (
	"math"

	"github.com/kilianp07/packtherm/core/model"
)

// ValidConfig wraps a SimulationConfig that passed Validate. Simulate
// only accepts a ValidConfig, so an unvalidated request cannot reach
// the integrator.
type ValidConfig struct {
	cfg model.SimulationConfig
}

// Config returns the underlying simulation request.
func (v ValidConfig) Config() model.SimulationConfig { return v.cfg }

// Validate checks that a simulation request is physically and
// structurally well-formed. Checks run in a fixed priority order and
// fail fast; Validate has no side effects.
func Validate(cfg model.SimulationConfig) (ValidConfig, error) {
	if !cfg.Cooling.Valid() {
		return ValidConfig{}, &ConfigError{Kind: InvalidCoolingType, Field: "cooling"}
	}
	if !(cfg.CapacityKWh > 0) {
		return ValidConfig{}, &ConfigError{Kind: NonPositiveCapacity, Field: "capacity_kwh"}
	}
	if !(cfg.InternalResistanceMilliOhm >= 0) {
		return ValidConfig{}, &ConfigError{Kind: NegativeResistance, Field: "internal_resistance_milliohm"}
	}
	if !(cfg.CRate > 0) {
		return ValidConfig{}, &ConfigError{Kind: NonPositiveCRate, Field: "c_rate"}
	}
	if cfg.DurationMinutes < 0 {
		return ValidConfig{}, &ConfigError{Kind: NegativeDuration, Field: "duration_minutes"}
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"ambient_temp_c", cfg.AmbientTempC},
		{"initial_temp_c", cfg.InitialTempC},
		{"nominal_voltage", cfg.NominalVoltage},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return ValidConfig{}, &ConfigError{Kind: NonFiniteInput, Field: f.name}
		}
	}
	if !(cfg.NominalVoltage > 0) {
		return ValidConfig{}, &ConfigError{Kind: NonFiniteInput, Field: "nominal_voltage"}
	}
	return ValidConfig{cfg: cfg}, nil
}
