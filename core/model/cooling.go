package model

import "fmt"

// CoolingType identifies the cooling method applied to the pack.
type CoolingType int

const (
	CoolingPassiveAir CoolingType = iota
	CoolingActiveAir
	CoolingLiquid
	CoolingImmersion
)

// coolingNames holds the canonical textual form used in configuration
// files and exports.
var coolingNames = map[CoolingType]string{
	CoolingPassiveAir: "Passive Air",
	CoolingActiveAir:  "Active Air",
	CoolingLiquid:     "Liquid Cooling",
	CoolingImmersion:  "Immersion",
}

// dissipationCoeffs maps each cooling method to its convective heat
// transfer coefficient in W/(m²·K).
var dissipationCoeffs = map[CoolingType]float64{
	CoolingPassiveAir: 5,
	CoolingActiveAir:  25,
	CoolingLiquid:     150,
	CoolingImmersion:  450,
}

// String returns the canonical textual form of the cooling type.
func (c CoolingType) String() string {
	if s, ok := coolingNames[c]; ok {
		return s
	}
	return "unknown"
}

// Valid reports whether c is a member of the closed cooling enum.
func (c CoolingType) Valid() bool {
	_, ok := coolingNames[c]
	return ok
}

// DissipationCoeff returns the convective coefficient h in W/(m²·K)
// for the cooling method. It panics for values outside the enum; parse
// or validate first.
func (c CoolingType) DissipationCoeff() float64 {
	h, ok := dissipationCoeffs[c]
	if !ok {
		panic(fmt.Sprintf("model: no dissipation coefficient for cooling type %d", int(c)))
	}
	return h
}

// ParseCoolingType resolves the textual form of a cooling method.
// Unknown values are an error, never a silent default.
func ParseCoolingType(s string) (CoolingType, error) {
	for c, name := range coolingNames {
		if name == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown cooling type %q", s)
}

// CoolingTypes returns all members of the enum in coefficient order.
func CoolingTypes() []CoolingType {
	return []CoolingType{CoolingPassiveAir, CoolingActiveAir, CoolingLiquid, CoolingImmersion}
}
