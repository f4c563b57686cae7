// Package tco projects total cost of ownership for assets from their
// purchase price plus modeled operating costs: energy, maintenance, and
// support labor. A reserved software component exists in the model but
// currently contributes zero.
package tco

import (
	"strings"

	"github.com/it-tools/asset-atlas/pkg/models/domain"
	"github.com/it-tools/asset-atlas/pkg/money"
)

// powerDrawWatts is the assumed draw per asset category.
var powerDrawWatts = map[string]float64{
	"laptop":  65,
	"desktop": 200,
	"monitor": 30,
	"server":  500,
	"printer": 100,
	"phone":   5,
	"tablet":  10,
	"dock":    15,
	"network": 50,
	"storage": 300,
	"default": 100,
}

// Usage model: a business asset runs 8 hours a day, 250 days a year.
const (
	usageHoursPerDay  = 8
	usageDaysPerYear  = 250
	annualSoftwareUSD = 0 // reserved component
)

// Options hold the operating-cost assumptions for a projection.
type Options struct {
	ElectricityCostPerKWh    float64
	AnnualMaintenancePercent float64
	AvgSupportHoursPerYear   float64
	SupportCostPerHour       float64
	YearsToCalculate         int
}

// DefaultOptions returns the standard cost assumptions.
func DefaultOptions() Options {
	return Options{
		ElectricityCostPerKWh:    0.12,
		AnnualMaintenancePercent: 0.10,
		AvgSupportHoursPerYear:   2,
		SupportCostPerHour:       75,
		YearsToCalculate:         5,
	}
}

func (o Options) horizon() int {
	if o.YearsToCalculate <= 0 {
		return DefaultOptions().YearsToCalculate
	}
	return o.YearsToCalculate
}

// PowerDrawForCategory returns the assumed wattage for a category,
// defaulting to 100W for anything unrecognized.
func PowerDrawForCategory(category string) float64 {
	if w, ok := powerDrawWatts[strings.ToLower(strings.TrimSpace(category))]; ok {
		return w
	}
	return powerDrawWatts["default"]
}

// Estimate projects the cost of owning one asset over the configured
// horizon. Returns nil when the purchase price is missing, so callers
// can render an insufficient-data state instead of a zero cost.
func Estimate(facts domain.AssetFinancialFacts, opts Options) *domain.TCOResult {
	if facts.PurchasePrice == nil || *facts.PurchasePrice <= 0 {
		return nil
	}
	price := *facts.PurchasePrice
	years := opts.horizon()

	watts := PowerDrawForCategory(facts.Category)
	powerCost := watts / 1000 * usageHoursPerDay * usageDaysPerYear * opts.ElectricityCostPerKWh
	maintenanceCost := price * opts.AnnualMaintenancePercent
	supportCost := opts.AvgSupportHoursPerYear * opts.SupportCostPerHour
	operating := powerCost + maintenanceCost + supportCost + annualSoftwareUSD

	breakdown := make([]domain.YearlyCost, 0, years)
	cumulative := 0.0
	for y := 1; y <= years; y++ {
		annual := operating
		if y == 1 {
			annual += price
		}
		cumulative += annual
		breakdown = append(breakdown, domain.YearlyCost{
			Year:           y,
			AnnualCost:     money.Round2(annual),
			CumulativeCost: money.Round2(cumulative),
		})
	}

	return &domain.TCOResult{
		PurchasePrice:         money.Round2(price),
		Category:              facts.Category,
		AnnualPowerCost:       money.Round2(powerCost),
		AnnualMaintenanceCost: money.Round2(maintenanceCost),
		AnnualSupportCost:     money.Round2(supportCost),
		AnnualSoftwareCost:    annualSoftwareUSD,
		AnnualOperatingCost:   money.Round2(operating),
		TotalOperatingCost:    money.Round2(operating * float64(years)),
		TotalTCO:              money.Round2(price + operating*float64(years)),
		HorizonYears:          years,
		YearlyBreakdown:       breakdown,
	}
}
