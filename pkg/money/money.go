// Package money holds the rounding rules shared by every monetary output
// in the valuation services: two decimal places, half-up.
package money

import "github.com/shopspring/decimal"

// Round2 rounds a monetary amount to two decimal places using half-up
// rounding. Going through decimal avoids the float64 artifacts that
// naive math.Round(v*100)/100 produces on values like 2.675.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Format renders an amount as a plain 2-decimal string for export.
func Format(v float64) string {
	return decimal.NewFromFloat(v).Round(2).StringFixed(2)
}
