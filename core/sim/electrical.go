package sim

// Electrical holds the run-constant electrical quantities derived from
// a simulation request.
type Electrical struct {
	CurrentA float64 // constant discharge current in A
	HeatGenW float64 // Joule heating in W, constant for the whole run
}

// DeriveElectrical computes the discharge current and heat generation
// for the request. The pack is modeled as a constant-voltage source:
// voltage does not depend on state of charge, so both values are fixed
// for the whole run.
func DeriveElectrical(vc ValidConfig) Electrical {
	cfg := vc.Config()
	currentA := cfg.CapacityKWh * 1000 * cfg.CRate / cfg.NominalVoltage
	resistanceOhm := cfg.InternalResistanceMilliOhm / 1000
	return Electrical{
		CurrentA: currentA,
		HeatGenW: currentA * currentA * resistanceOhm,
	}
}
