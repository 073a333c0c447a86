// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/calcconstru/calcconstru/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// SafeRatio divides value by total, returning 0 when total is 0. Every
// derived rate in the engine goes through this guard so degenerate inputs
// never produce NaN or Inf.
func SafeRatio(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return value / total
}

// Percentage calculates what percentage value is of total, 0 when total is 0.
func Percentage(value, total float64) float64 {
	return SafeRatio(value, total) * constants.PercentageMultiplier
}

// ApplyPercentage applies a whole-number percentage to a value.
func ApplyPercentage(value, percentage float64) float64 {
	return value * (percentage / constants.PercentageMultiplier)
}

// WithinTolerance checks if two values are within a specified tolerance.
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// CeilAtLeast rounds val up to an integer month count, clamped to min.
func CeilAtLeast(val float64, min int) int {
	months := int(math.Ceil(val))
	if months < min {
		return min
	}
	return months
}
