package license

import (
	"math"
	"sort"

	"github.com/it-tools/asset-atlas/pkg/models/domain"
	"github.com/it-tools/asset-atlas/pkg/money"
)

// AnalyzeSavings estimates what the license portfolio could save by
// reclaiming wasted seats, right-sizing poor performers, and
// consolidating duplicate categories.
func (a *Analyzer) AnalyzeSavings(licenses []domain.LicenseRecord) domain.SavingsAnalysis {
	analysis := domain.SavingsAnalysis{}
	byCategory := make(map[string][]domain.LicenseRecord)

	for _, l := range licenses {
		util := Utilization(l)

		if util.Status == domain.StatusPoor || util.Status == domain.StatusUnderutilized {
			wasted := util.AvailableSeats
			analysis.ReclaimableSeats += wasted
			analysis.TotalPotentialSavings += float64(wasted) * l.CostPerSeat
		}

		if util.Status == domain.StatusPoor {
			recommended := int(math.Ceil(float64(l.UsedSeats) * a.policy.DowngradeHeadroom))
			analysis.DowngradeCandidates = append(analysis.DowngradeCandidates, domain.DowngradeCandidate{
				LicenseID:        l.ID,
				LicenseName:      l.Name,
				CurrentSeats:     l.TotalSeats,
				UsedSeats:        l.UsedSeats,
				RecommendedSeats: recommended,
				EstimatedSavings: money.Round2(float64(l.TotalSeats-recommended) * l.CostPerSeat),
			})
		}

		if l.Category != "" {
			byCategory[l.Category] = append(byCategory[l.Category], l)
		}
	}

	for category, group := range byCategory {
		if len(group) < 2 {
			continue
		}
		combined := 0.0
		for _, l := range group {
			combined += l.AnnualCost()
		}
		analysis.ConsolidationOpportunities = append(analysis.ConsolidationOpportunities, domain.ConsolidationOpportunity{
			Category:           category,
			LicenseCount:       len(group),
			CombinedAnnualCost: money.Round2(combined),
			PotentialSavings:   money.Round2(combined * a.policy.ConsolidationSavingsRate),
		})
	}
	sort.Slice(analysis.ConsolidationOpportunities, func(i, j int) bool {
		return analysis.ConsolidationOpportunities[i].PotentialSavings > analysis.ConsolidationOpportunities[j].PotentialSavings
	})

	analysis.TotalPotentialSavings = money.Round2(analysis.TotalPotentialSavings)
	return analysis
}
