package advisor

import (
	"context"
	"errors"
	"fmt"

	"github.com/kilianp07/packtherm/core/model"
)

// ErrUnavailable is returned when the advisory backend cannot be
// reached or refuses the request.
var ErrUnavailable = errors.New("advisory backend unavailable")

// Advisor produces a free-text recommendation for a completed run.
// Implementations may be slow or fail; callers must degrade to
// Fallback rather than let an advisory error touch the simulation
// result.
type Advisor interface {
	Advise(ctx context.Context, cfg model.SimulationConfig, sum model.Summary) (string, error)
}

// Fallback returns a static advisory used whenever the external
// backend fails. It is deterministic so the degraded path stays
// testable.
func Fallback(sum model.Summary) string {
	switch sum.Risk {
	case model.RiskRunaway:
		return fmt.Sprintf("Peak temperature %.1f°C exceeds the thermal runaway threshold. Reduce the discharge rate or switch to a more aggressive cooling method before operating at this load.", sum.PeakTempC)
	case model.RiskHigh:
		return fmt.Sprintf("Peak temperature %.1f°C leaves little thermal margin. Consider liquid or immersion cooling for sustained operation at this load.", sum.PeakTempC)
	case model.RiskElevated:
		return fmt.Sprintf("Peak temperature %.1f°C is elevated but within limits. Monitor pack temperature under repeated cycles.", sum.PeakTempC)
	default:
		return fmt.Sprintf("Peak temperature %.1f°C is within the nominal envelope for this configuration.", sum.PeakTempC)
	}
}
