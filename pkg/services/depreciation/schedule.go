package depreciation

import (
	"math"

	"github.com/it-tools/asset-atlas/pkg/models/domain"
	"github.com/it-tools/asset-atlas/pkg/money"
)

// Schedule produces the year-by-year depreciation schedule for an asset,
// one entry per whole year from purchase (year 0) through the end of its
// useful life. Returns nil when the required purchase facts are missing.
func Schedule(facts domain.AssetFinancialFacts, method domain.Method, opts Options) []domain.ScheduleEntry {
	r, ok := resolve(facts, opts.now())
	if !ok {
		return nil
	}

	rate := opts.decliningRate()
	lastYear := int(math.Ceil(r.life))

	entries := make([]domain.ScheduleEntry, 0, lastYear+1)
	prev := 0.0
	for y := 0; y <= lastYear; y++ {
		accumulated := accrue(method, r, float64(y), rate)
		entries = append(entries, domain.ScheduleEntry{
			Year:                    y,
			Date:                    facts.PurchaseDate.AddDate(y, 0, 0),
			BookValue:               money.Round2(r.price - accumulated),
			AccumulatedDepreciation: money.Round2(accumulated),
			YearlyDepreciation:      money.Round2(accumulated - prev),
		})
		prev = accumulated
	}

	return entries
}
