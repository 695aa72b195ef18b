package utils

import "math"

// Round rounds a number to 2 decimal places for monetary calculations
func Round(num float64) float64 {
	return math.Round(num*MoneyPrecision) / MoneyPrecision
}

// Min returns the minimum of two float64 values
func Min(a, b float64) float64 {
	return math.Min(a, b)
}

// NearlyEqual reports whether two amounts differ by at most the money
// epsilon. The difference is rounded to cents first so that float noise
// cannot push an exactly-at-tolerance pair over the line.
func NearlyEqual(a, b float64) bool {
	return math.Abs(Round(a-b)) <= MoneyEpsilon
}
