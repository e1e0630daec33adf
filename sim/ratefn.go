package sim

import (
	"fmt"
	"math"
)

// RateFunc gives the seconds a competitor needs to eat hot dog n (zero-based,
// n=0 is the first). Implementations MUST be pure — the engine evaluates them
// repeatedly at increasing indices and expects the same answer each time.
type RateFunc func(n int) float64

// ConstantRate eats every hot dog in the same number of seconds.
func ConstantRate(seconds float64) RateFunc {
	return func(int) float64 { return seconds }
}

// LinearRate slows down by slope seconds per hot dog already eaten:
// slope*n + intercept.
func LinearRate(slope, intercept float64) RateFunc {
	return func(n int) float64 { return slope*float64(n) + intercept }
}

// ExponentialRate fatigues exponentially: exp(scale*n) + offset.
func ExponentialRate(scale, offset float64) RateFunc {
	return func(n int) float64 { return math.Exp(scale*float64(n)) + offset }
}

// RateSpec is the declarative form of a RateFunc, as it appears in scenario
// presets. Only the parameters for the chosen kind are meaningful; the rest
// stay zero.
type RateSpec struct {
	Kind      string  `yaml:"kind"` // "constant", "linear", "exponential"
	Seconds   float64 `yaml:"seconds,omitempty"`
	Slope     float64 `yaml:"slope,omitempty"`
	Intercept float64 `yaml:"intercept,omitempty"`
	Scale     float64 `yaml:"scale,omitempty"`
	Offset    float64 `yaml:"offset,omitempty"`
}

// Build turns the spec into a callable RateFunc.
func (s RateSpec) Build() (RateFunc, error) {
	switch s.Kind {
	case "constant":
		return ConstantRate(s.Seconds), nil
	case "linear":
		return LinearRate(s.Slope, s.Intercept), nil
	case "exponential":
		return ExponentialRate(s.Scale, s.Offset), nil
	default:
		return nil, fmt.Errorf("unknown rate kind %q", s.Kind)
	}
}
