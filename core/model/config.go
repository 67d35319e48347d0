package model

// SimulationConfig describes one thermal simulation request. It is
// constructed per request, validated once and consumed by a single
// simulation run.
type SimulationConfig struct {
	AmbientTempC               float64     // environment temperature in °C
	InitialTempC               float64     // pack temperature at t=0 in °C
	CRate                      float64     // discharge rate normalized to capacity, > 0
	Cooling                    CoolingType // cooling method applied to the pack
	DurationMinutes            int         // simulated duration, >= 0
	CapacityKWh                float64     // pack capacity in kWh, > 0
	InternalResistanceMilliOhm float64     // whole-pack internal resistance in mΩ, >= 0
	NominalVoltage             float64     // pack-level nominal voltage in V, > 0
}
