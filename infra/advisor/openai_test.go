package advisor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	coreadvisor "github.com/kilianp07/packtherm/core/advisor"
	"github.com/kilianp07/packtherm/core/model"
)

func testRun() (model.SimulationConfig, model.Summary) {
	cfg := model.SimulationConfig{
		CapacityKWh: 75, NominalVoltage: 400, InternalResistanceMilliOhm: 20,
		CRate: 1.5, DurationMinutes: 60, Cooling: model.CoolingLiquid,
	}
	sum := model.Summary{PeakTempC: 48.2, AvgEfficiencyPct: 98.6, Risk: model.RiskElevated}
	return cfg, sum
}

func TestAdviseSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer secret" {
			t.Errorf("missing auth header")
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Keep liquid cooling."}}]}`))
	}))
	defer srv.Close()

	a := NewOpenAIAdvisor(Config{URL: srv.URL, APIKey: "secret"})
	cfg, sum := testRun()
	text, err := a.Advise(context.Background(), cfg, sum)
	if err != nil {
		t.Fatalf("advise: %v", err)
	}
	if text != "Keep liquid cooling." {
		t.Fatalf("unexpected advice %q", text)
	}
}

func TestAdviseServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	a := NewOpenAIAdvisor(Config{URL: srv.URL})
	cfg, sum := testRun()
	_, err := a.Advise(context.Background(), cfg, sum)
	if !errors.Is(err, coreadvisor.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable got %v", err)
	}
}

func TestAdviseUnreachable(t *testing.T) {
	a := NewOpenAIAdvisor(Config{URL: "http://127.0.0.1:1", TimeoutSeconds: 1})
	cfg, sum := testRun()
	_, err := a.Advise(context.Background(), cfg, sum)
	if !errors.Is(err, coreadvisor.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable got %v", err)
	}
}

func TestAdviseEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	a := NewOpenAIAdvisor(Config{URL: srv.URL})
	cfg, sum := testRun()
	_, err := a.Advise(context.Background(), cfg, sum)
	if !errors.Is(err, coreadvisor.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable got %v", err)
	}
}
