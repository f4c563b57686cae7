package tco

import (
	"sort"

	"github.com/it-tools/asset-atlas/pkg/models/domain"
	"github.com/it-tools/asset-atlas/pkg/money"
)

// includable reports whether an asset carries enough purchase facts to
// participate in fleet aggregates. Assets without them are excluded, not
// treated as zero-cost.
func includable(a domain.Asset) bool {
	return a.Facts.PurchasePrice != nil && *a.Facts.PurchasePrice > 0 && a.Facts.PurchaseDate != nil
}

// TotalAcrossAssets sums per-asset TCO projections over a fleet.
func TotalAcrossAssets(assets []domain.Asset, opts Options) domain.TCOSummary {
	summary := domain.TCOSummary{}

	for _, a := range assets {
		if !includable(a) {
			summary.ExcludedCount++
			continue
		}
		result := Estimate(a.Facts, opts)
		if result == nil {
			summary.ExcludedCount++
			continue
		}
		summary.AssetCount++
		summary.TotalPurchase += result.PurchasePrice
		summary.TotalOperatingCost += result.TotalOperatingCost
		summary.TotalTCO += result.TotalTCO
		summary.AnnualOperatingCost += result.AnnualOperatingCost
	}

	if summary.AssetCount > 0 {
		summary.AverageTCO = money.Round2(summary.TotalTCO / float64(summary.AssetCount))
	}
	summary.TotalPurchase = money.Round2(summary.TotalPurchase)
	summary.TotalOperatingCost = money.Round2(summary.TotalOperatingCost)
	summary.TotalTCO = money.Round2(summary.TotalTCO)
	summary.AnnualOperatingCost = money.Round2(summary.AnnualOperatingCost)

	return summary
}

// ByCategory groups fleet TCO by asset category, sorted by descending
// total cost.
func ByCategory(assets []domain.Asset, opts Options) []domain.TCOGroup {
	return groupBy(assets, opts, func(a domain.Asset) string {
		if a.Category == "" {
			return "uncategorized"
		}
		return a.Category
	})
}

// ByDepartment groups fleet TCO by the assignee's department, sorted by
// descending total cost. Unassigned assets land in "unassigned".
func ByDepartment(assets []domain.Asset, opts Options) []domain.TCOGroup {
	return groupBy(assets, opts, func(a domain.Asset) string {
		if a.AssignedTo == nil || a.AssignedTo.Department == "" {
			return "unassigned"
		}
		return a.AssignedTo.Department
	})
}

func groupBy(assets []domain.Asset, opts Options, keyOf func(domain.Asset) string) []domain.TCOGroup {
	totals := make(map[string]*domain.TCOGroup)

	for _, a := range assets {
		if !includable(a) {
			continue
		}
		result := Estimate(a.Facts, opts)
		if result == nil {
			continue
		}

		key := keyOf(a)
		group, ok := totals[key]
		if !ok {
			group = &domain.TCOGroup{Key: key}
			totals[key] = group
		}
		group.AssetCount++
		group.TotalTCO += result.TotalTCO
	}

	groups := make([]domain.TCOGroup, 0, len(totals))
	for _, g := range totals {
		g.TotalTCO = money.Round2(g.TotalTCO)
		g.AverageTCO = money.Round2(g.TotalTCO / float64(g.AssetCount))
		groups = append(groups, *g)
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].TotalTCO != groups[j].TotalTCO {
			return groups[i].TotalTCO > groups[j].TotalTCO
		}
		return groups[i].Key < groups[j].Key
	})

	return groups
}
