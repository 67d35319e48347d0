package sim

import (
	"math"
	"testing"

	"github.com/kilianp07/packtherm/core/model"
)

func validConfig() model.SimulationConfig {
	return model.SimulationConfig{
		AmbientTempC:               25,
		InitialTempC:               25,
		CRate:                      1.5,
		Cooling:                    model.CoolingActiveAir,
		DurationMinutes:            60,
		CapacityKWh:                75,
		InternalResistanceMilliOhm: 20,
		NominalVoltage:             400,
	}
}

func TestValidateAccepts(t *testing.T) {
	vc, err := Validate(validConfig())
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if vc.Config().CapacityKWh != 75 {
		t.Fatalf("config not carried through: %#v", vc.Config())
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*model.SimulationConfig)
		kind   ErrorKind
	}{
		{"unknown cooling", func(c *model.SimulationConfig) { c.Cooling = model.CoolingType(42) }, InvalidCoolingType},
		{"negative capacity", func(c *model.SimulationConfig) { c.CapacityKWh = -5 }, NonPositiveCapacity},
		{"zero capacity", func(c *model.SimulationConfig) { c.CapacityKWh = 0 }, NonPositiveCapacity},
		{"negative resistance", func(c *model.SimulationConfig) { c.InternalResistanceMilliOhm = -1 }, NegativeResistance},
		{"zero c-rate", func(c *model.SimulationConfig) { c.CRate = 0 }, NonPositiveCRate},
		{"negative duration", func(c *model.SimulationConfig) { c.DurationMinutes = -1 }, NegativeDuration},
		{"nan ambient", func(c *model.SimulationConfig) { c.AmbientTempC = math.NaN() }, NonFiniteInput},
		{"inf initial", func(c *model.SimulationConfig) { c.InitialTempC = math.Inf(1) }, NonFiniteInput},
		{"nan voltage", func(c *model.SimulationConfig) { c.NominalVoltage = math.NaN() }, NonFiniteInput},
	}
	for _, tc := range cases {
		cfg := validConfig()
		tc.mutate(&cfg)
		_, err := Validate(cfg)
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		kind, ok := KindOf(err)
		if !ok {
			t.Fatalf("%s: expected ConfigError, got %T", tc.name, err)
		}
		if kind != tc.kind {
			t.Fatalf("%s: expected kind %v got %v", tc.name, tc.kind, kind)
		}
	}
}

func TestValidatePriorityOrder(t *testing.T) {
	// Cooling is checked before capacity: a config broken in both ways
	// reports the cooling error.
	cfg := validConfig()
	cfg.Cooling = model.CoolingType(-1)
	cfg.CapacityKWh = -5
	_, err := Validate(cfg)
	kind, ok := KindOf(err)
	if !ok || kind != InvalidCoolingType {
		t.Fatalf("expected InvalidCoolingType got %v", err)
	}
}

func TestValidateZeroDuration(t *testing.T) {
	cfg := validConfig()
	cfg.DurationMinutes = 0
	if _, err := Validate(cfg); err != nil {
		t.Fatalf("zero duration must be accepted: %v", err)
	}
}
