package license

import (
	"fmt"
	"math"
	"sort"

	"github.com/it-tools/asset-atlas/pkg/models/domain"
	"github.com/it-tools/asset-atlas/pkg/money"
)

// Recommendation triggers that are seat-count facts rather than policy:
// a reclaim only pays off beyond a handful of idle seats, and a harvest
// cycle is not worth running for fewer than three reclaimable seats.
const (
	reclaimSeatFloor = 5
	harvestSeatFloor = 3
)

// Recommend emits one remediation recommendation per applicable
// condition per license, ordered by priority rank and then by descending
// estimated savings.
func (a *Analyzer) Recommend(licenses []domain.LicenseRecord) []domain.OptimizationRecommendation {
	var recs []domain.OptimizationRecommendation

	for _, l := range licenses {
		util := Utilization(l)

		if util.Status == domain.StatusPoor {
			recommended := int(math.Ceil(float64(l.UsedSeats) * a.policy.DowngradeHeadroom))
			recs = append(recs, domain.OptimizationRecommendation{
				LicenseID:        l.ID,
				LicenseName:      l.Name,
				Type:             domain.RecommendationDowngrade,
				Priority:         domain.PriorityHigh,
				Description:      fmt.Sprintf("reduce from %d to %d seats", l.TotalSeats, recommended),
				EstimatedSavings: money.Round2(float64(l.TotalSeats-recommended) * l.CostPerSeat),
				Effort:           "medium",
				Impact:           "reduces recurring spend at next renewal",
			})
		}

		if util.AvailableSeats > reclaimSeatFloor {
			recs = append(recs, domain.OptimizationRecommendation{
				LicenseID:        l.ID,
				LicenseName:      l.Name,
				Type:             domain.RecommendationReclaim,
				Priority:         domain.PriorityMedium,
				Description:      fmt.Sprintf("%d unused seats can be returned to the pool", util.AvailableSeats),
				EstimatedSavings: money.Round2(float64(util.AvailableSeats) * l.CostPerSeat),
				Effort:           "low",
				Impact:           "frees seats without a contract change",
			})
		}

		if util.Status == domain.StatusOverutilized {
			recs = append(recs, domain.OptimizationRecommendation{
				LicenseID:   l.ID,
				LicenseName: l.Name,
				Type:        domain.RecommendationUpgrade,
				Priority:    domain.PriorityCritical,
				Description: fmt.Sprintf("seat pool is at %.0f%% utilization", util.UtilizationPercent),
				Effort:      "medium",
				Impact:      "avoids a compliance shortfall before it occurs",
			})
		}

		if inactive := a.IdentifyInactiveUsers(l); inactive.ReclaimableLicenses >= harvestSeatFloor {
			recs = append(recs, domain.OptimizationRecommendation{
				LicenseID:        l.ID,
				LicenseName:      l.Name,
				Type:             domain.RecommendationHarvest,
				Priority:         domain.PriorityMedium,
				Description:      fmt.Sprintf("%d seats held by inactive users", inactive.ReclaimableLicenses),
				EstimatedSavings: inactive.EstimatedSavings,
				Effort:           "low",
				Impact:           "recovers seats from users who no longer need them",
			})
		}
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Priority.Rank() != recs[j].Priority.Rank() {
			return recs[i].Priority.Rank() > recs[j].Priority.Rank()
		}
		return recs[i].EstimatedSavings > recs[j].EstimatedSavings
	})

	return recs
}
