package sim

import (
	"math"
	"testing"

	"github.com/kilianp07/packtherm/core/model"
)

func mustValidate(t *testing.T, cfg model.SimulationConfig) ValidConfig {
	t.Helper()
	vc, err := Validate(cfg)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	return vc
}

func TestSimulateSampleCountAndIndexing(t *testing.T) {
	cfg := validConfig()
	cfg.DurationMinutes = 90
	samples := Simulate(mustValidate(t, cfg))
	if len(samples) != 91 {
		t.Fatalf("expected 91 samples got %d", len(samples))
	}
	for i, s := range samples {
		if s.TimeMinutes != i {
			t.Fatalf("sample %d has time %d", i, s.TimeMinutes)
		}
	}
}

func TestSimulateZeroDuration(t *testing.T) {
	cfg := validConfig()
	cfg.DurationMinutes = 0
	cfg.InitialTempC = 31
	samples := Simulate(mustValidate(t, cfg))
	if len(samples) != 1 {
		t.Fatalf("expected single t=0 sample got %d", len(samples))
	}
	if samples[0].BatteryTempC != 31 {
		t.Fatalf("t=0 sample must carry the initial temperature, got %v", samples[0].BatteryTempC)
	}
}

func TestSimulateConstantHeatAndEfficiency(t *testing.T) {
	// powerOut = 75*1000*1.5 = 112500 W; heatGen ≈ 1582.03 W;
	// efficiency = (112500-1582.03)/112500*100 ≈ 98.594 % on every sample.
	samples := Simulate(mustValidate(t, validConfig()))
	heat := samples[0].HeatGeneratedW
	eff := samples[0].EfficiencyPct
	if math.Abs(eff-98.594) > 0.001 {
		t.Fatalf("expected ~98.594%% got %v", eff)
	}
	for i, s := range samples {
		if s.HeatGeneratedW != heat {
			t.Fatalf("sample %d heat %v differs from %v", i, s.HeatGeneratedW, heat)
		}
		if s.EfficiencyPct != eff {
			t.Fatalf("sample %d efficiency %v differs from %v", i, s.EfficiencyPct, eff)
		}
	}
}

func TestSimulateMonotonicConvergence(t *testing.T) {
	// Starting at ambient with positive heat generation, temperature
	// must never decrease and must approach T_eq = ambient + Q/(h*A).
	cfg := validConfig()
	cfg.Cooling = model.CoolingLiquid
	cfg.DurationMinutes = 48 * 60
	vc := mustValidate(t, cfg)
	elec := DeriveElectrical(vc)
	samples := Integrate(vc, elec)

	for i := 1; i < len(samples); i++ {
		if samples[i].BatteryTempC < samples[i-1].BatteryTempC-1e-9 {
			t.Fatalf("temperature decreased at sample %d: %v -> %v", i, samples[i-1].BatteryTempC, samples[i].BatteryTempC)
		}
	}
	h := cfg.Cooling.DissipationCoeff()
	area := cfg.CapacityKWh * 0.05
	eq := cfg.AmbientTempC + elec.HeatGenW/(h*area)
	last := samples[len(samples)-1].BatteryTempC
	if last > eq+1e-6 {
		t.Fatalf("temperature %v overshot equilibrium %v", last, eq)
	}
	if math.Abs(last-eq) > 0.05 {
		t.Fatalf("expected convergence toward %v after 48h, got %v", eq, last)
	}
}

func TestSimulateAmbientWarming(t *testing.T) {
	// A pack colder than ambient with no losses is warmed by the
	// environment: dissipation is negative and temperature rises.
	cfg := validConfig()
	cfg.InitialTempC = 5
	cfg.AmbientTempC = 30
	cfg.InternalResistanceMilliOhm = 0
	samples := Simulate(mustValidate(t, cfg))
	if samples[0].HeatDissipatedW >= 0 {
		t.Fatalf("expected negative dissipation got %v", samples[0].HeatDissipatedW)
	}
	last := samples[len(samples)-1].BatteryTempC
	if last <= 5 || last > 30 {
		t.Fatalf("expected warming toward ambient, got %v", last)
	}
}

func TestSimulateCoolingOrdering(t *testing.T) {
	// Stronger cooling never yields a higher peak.
	cfg := validConfig()
	cfg.DurationMinutes = 6 * 60
	peaks := make([]float64, 0, 4)
	for _, cooling := range []model.CoolingType{
		model.CoolingImmersion, model.CoolingLiquid, model.CoolingActiveAir, model.CoolingPassiveAir,
	} {
		c := cfg
		c.Cooling = cooling
		peaks = append(peaks, Summarize(Simulate(mustValidate(t, c))).PeakTempC)
	}
	for i := 1; i < len(peaks); i++ {
		if peaks[i-1] > peaks[i] {
			t.Fatalf("cooling ordering violated: %v", peaks)
		}
	}
}

func TestSimulateIdempotent(t *testing.T) {
	vc := mustValidate(t, validConfig())
	a := Simulate(vc)
	b := Simulate(vc)
	if len(a) != len(b) {
		t.Fatalf("length mismatch %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs: %#v vs %#v", i, a[i], b[i])
		}
	}
}
