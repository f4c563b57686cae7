package depreciation

import "strings"

// defaultKey is the fallback row in every category lookup table.
const defaultKey = "default"

// usefulLifeByCategory holds the expected service life, in years, used
// when an asset record does not carry its own.
var usefulLifeByCategory = map[string]float64{
	"laptop":   3,
	"desktop":  4,
	"monitor":  5,
	"server":   5,
	"phone":    2,
	"tablet":   3,
	"printer":  5,
	"dock":     4,
	"network":  7,
	"storage":  5,
	defaultKey: 4,
}

// salvageRate is the default salvage value as a fraction of purchase
// price when the record does not specify one.
const salvageRate = 0.10

// UsefulLifeForCategory returns the default useful life for a category,
// falling back to the generic default for unrecognized categories.
func UsefulLifeForCategory(category string) float64 {
	if life, ok := usefulLifeByCategory[strings.ToLower(strings.TrimSpace(category))]; ok {
		return life
	}
	return usefulLifeByCategory[defaultKey]
}
