package config

import "github.com/kilianp07/packtherm/core/model"

// Simulation mirrors the engine's request with the cooling method in
// its textual form, as written in configuration files.
type Simulation struct {
	AmbientTempC               float64 `json:"ambient_temp_c"`
	InitialTempC               float64 `json:"initial_temp_c"`
	CRate                      float64 `json:"c_rate"`
	Cooling                    string  `json:"cooling"`
	DurationMinutes            int     `json:"duration_minutes"`
	CapacityKWh                float64 `json:"capacity_kwh"`
	InternalResistanceMilliOhm float64 `json:"internal_resistance_milliohm"`
	NominalVoltage             float64 `json:"nominal_voltage"`
}

// ToModel resolves the textual cooling method and returns the engine
// request. An unknown cooling value is an error, never a default; the
// remaining fields are checked by the engine's validator.
func (s Simulation) ToModel() (model.SimulationConfig, error) {
	cooling, err := model.ParseCoolingType(s.Cooling)
	if err != nil {
		return model.SimulationConfig{}, err
	}
	return model.SimulationConfig{
		AmbientTempC:               s.AmbientTempC,
		InitialTempC:               s.InitialTempC,
		CRate:                      s.CRate,
		Cooling:                    cooling,
		DurationMinutes:            s.DurationMinutes,
		CapacityKWh:                s.CapacityKWh,
		InternalResistanceMilliOhm: s.InternalResistanceMilliOhm,
		NominalVoltage:             s.NominalVoltage,
	}, nil
}
