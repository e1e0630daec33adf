package sim

import "github.com/shopspring/decimal"

const (
	// reportPrecision is applied to every numeric event field before the
	// log is handed back to callers.
	reportPrecision int32 = 3
	// fractionPrecision is applied to the fractional hot dog count on
	// terminal events, at computation time.
	fractionPrecision int32 = 2
)

// roundHalfEven rounds v to the given number of decimal places using
// banker's rounding on the decimal representation. Rounding the binary
// float64 directly would misplace ties such as 2.675 at two places.
func roundHalfEven(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).RoundBank(places).Float64()
	return f
}
