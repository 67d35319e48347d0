package sim

import "fmt"

// ErrorKind enumerates the ways a simulation request can be rejected.
type ErrorKind int

const (
	InvalidCoolingType ErrorKind = iota
	NonPositiveCapacity
	NegativeResistance
	NonPositiveCRate
	NegativeDuration
	NonFiniteInput
)

// String returns a stable identifier for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case InvalidCoolingType:
		return "invalid_cooling_type"
	case NonPositiveCapacity:
		return "non_positive_capacity"
	case NegativeResistance:
		return "negative_resistance"
	case NonPositiveCRate:
		return "non_positive_c_rate"
	case NegativeDuration:
		return "negative_duration"
	case NonFiniteInput:
		return "non_finite_input"
	default:
		return "unknown"
	}
}

// ConfigError reports why a simulation request failed validation.
// Validation errors are terminal for the request; the caller must not
// run the simulation on a rejected config.
type ConfigError struct {
	Kind  ErrorKind
	Field string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid simulation config: %s (%s)", e.Kind, e.Field)
}

// KindOf extracts the ErrorKind from a validation error. The second
// return value is false when err is not a ConfigError.
func KindOf(err error) (ErrorKind, bool) {
	ce, ok := err.(*ConfigError)
	if !ok {
		return 0, false
	}
	return ce.Kind, true
}
