// Package fleet builds fleet-level analysis reports on top of the
// valuation and license services. Each report is computed fresh from
// the fleet's current inventory snapshot.
package fleet

import (
	"context"
	"fmt"
	"time"

	"github.com/it-tools/asset-atlas/pkg/models/domain"
	"github.com/it-tools/asset-atlas/pkg/money"
	"github.com/it-tools/asset-atlas/pkg/services/config"
	"github.com/it-tools/asset-atlas/pkg/services/depreciation"
	"github.com/it-tools/asset-atlas/pkg/services/inventory"
	"github.com/it-tools/asset-atlas/pkg/services/license"
	"github.com/it-tools/asset-atlas/pkg/services/tco"
)

// Reporter turns fleet inventories into reports.
type Reporter struct {
	explorer inventory.Explorer
	policy   config.Policy
	analyzer *license.Analyzer
	now      func() time.Time
}

func NewReporter(explorer inventory.Explorer, policy config.Policy) *Reporter {
	return &Reporter{
		explorer: explorer,
		policy:   policy,
		analyzer: license.NewAnalyzer(policy.LicensePolicy()),
		now:      time.Now,
	}
}

// AssetValuation computes a single asset's depreciation result and
// schedule. The result is nil when the asset lacks purchase facts.
func (r *Reporter) AssetValuation(
	ctx context.Context,
	fleet domain.Fleet,
	assetID string,
	method domain.Method,
) (*domain.DepreciationResult, []domain.ScheduleEntry, error) {
	assets, err := r.explorer.GetAssets(ctx, fleet)
	if err != nil {
		return nil, nil, err
	}

	for _, a := range assets {
		if a.ID != assetID && a.Tag != assetID {
			continue
		}
		opts := depreciation.Options{Now: r.now(), DecliningRate: r.policy.DecliningBalanceRate}
		return depreciation.Calculate(a.Facts, method, opts), depreciation.Schedule(a.Facts, method, opts), nil
	}
	return nil, nil, fmt.Errorf("asset %q not found in fleet %q", assetID, fleet.Name)
}

// DepreciationReport values every asset in the fleet under one method.
func (r *Reporter) DepreciationReport(ctx context.Context, fleet domain.Fleet, method domain.Method) (*domain.Report, error) {
	assets, err := r.explorer.GetAssets(ctx, fleet)
	if err != nil {
		return nil, err
	}
	currency, err := r.explorer.GetCurrency(ctx, fleet)
	if err != nil {
		return nil, err
	}

	opts := depreciation.Options{Now: r.now(), DecliningRate: r.policy.DecliningBalanceRate}

	var (
		details         []domain.ReportDetail
		totalOriginal   float64
		totalCurrent    float64
		fullyWrittenOff int
		skipped         int
	)
	for _, a := range assets {
		result := depreciation.Calculate(a.Facts, method, opts)
		if result == nil {
			skipped++
			continue
		}
		totalOriginal += result.OriginalValue
		totalCurrent += result.CurrentValue
		if result.IsFullyDepreciated {
			fullyWrittenOff++
		}
		details = append(details, domain.ReportDetail{
			Name:        assetLabel(a),
			Value:       result.CurrentValue,
			Unit:        currency,
			Description: fmt.Sprintf("%.1f%% depreciated, %.1f years remaining", result.DepreciationPercentage, result.RemainingLifeYears),
		})
	}

	report := &domain.Report{
		Title:       fmt.Sprintf("Depreciation (%s)", method),
		Fleet:       fleet.Name,
		GeneratedAt: r.now(),
		TotalAmount: money.Round2(totalCurrent),
		Currency:    currency,
		Sections: []domain.ReportSection{
			{
				Title: "Book Value by Asset",
				Summary: map[string]interface{}{
					"assets_valued":        len(details),
					"assets_skipped":       skipped,
					"fully_depreciated":    fullyWrittenOff,
					"total_original_value": money.Round2(totalOriginal),
					"total_current_value":  money.Round2(totalCurrent),
				},
				Details: details,
			},
		},
	}
	return report, nil
}

// TCOReport projects the fleet's total cost of ownership, with category
// and department breakdowns.
func (r *Reporter) TCOReport(ctx context.Context, fleet domain.Fleet) (*domain.Report, error) {
	assets, err := r.explorer.GetAssets(ctx, fleet)
	if err != nil {
		return nil, err
	}
	currency, err := r.explorer.GetCurrency(ctx, fleet)
	if err != nil {
		return nil, err
	}

	opts := r.policy.TCOOptions()
	summary := tco.TotalAcrossAssets(assets, opts)

	report := &domain.Report{
		Title:       fmt.Sprintf("Total Cost of Ownership (%d year horizon)", opts.YearsToCalculate),
		Fleet:       fleet.Name,
		GeneratedAt: r.now(),
		TotalAmount: summary.TotalTCO,
		Currency:    currency,
		Sections: []domain.ReportSection{
			{
				Title: "Fleet Summary",
				Summary: map[string]interface{}{
					"assets_included":       summary.AssetCount,
					"assets_excluded":       summary.ExcludedCount,
					"total_purchase":        summary.TotalPurchase,
					"total_operating_cost":  summary.TotalOperatingCost,
					"annual_operating_cost": summary.AnnualOperatingCost,
					"average_tco":           summary.AverageTCO,
				},
			},
			groupSection("By Category", currency, tco.ByCategory(assets, opts)),
			groupSection("By Department", currency, tco.ByDepartment(assets, opts)),
		},
	}
	return report, nil
}

// LicenseReport runs the full optimization analysis over the fleet's
// license portfolio.
func (r *Reporter) LicenseReport(ctx context.Context, fleet domain.Fleet) (*domain.Report, error) {
	licenses, err := r.explorer.GetLicenses(ctx, fleet)
	if err != nil {
		return nil, err
	}
	currency, err := r.explorer.GetCurrency(ctx, fleet)
	if err != nil {
		return nil, err
	}

	savings := r.analyzer.AnalyzeSavings(licenses)
	compliance := r.analyzer.AnalyzeCompliance(licenses)
	trueUp := r.analyzer.TrueUpCost(licenses)
	recommendations := r.analyzer.Recommend(licenses)

	utilDetails := make([]domain.ReportDetail, 0, len(licenses))
	for _, l := range licenses {
		util := license.Utilization(l)
		utilDetails = append(utilDetails, domain.ReportDetail{
			Name:        l.Name,
			Value:       util.UtilizationPercent,
			Unit:        "%",
			Description: fmt.Sprintf("%d/%d seats, %s", util.UsedSeats, util.TotalSeats, util.Status),
		})
	}

	recDetails := make([]domain.ReportDetail, 0, len(recommendations))
	for _, rec := range recommendations {
		recDetails = append(recDetails, domain.ReportDetail{
			Name:        fmt.Sprintf("%s: %s", rec.Type, rec.LicenseName),
			Value:       rec.EstimatedSavings,
			Unit:        currency,
			Description: fmt.Sprintf("[%s] %s", rec.Priority, rec.Description),
		})
	}

	report := &domain.Report{
		Title:       "License Optimization",
		Fleet:       fleet.Name,
		GeneratedAt: r.now(),
		TotalAmount: savings.TotalPotentialSavings,
		Currency:    currency,
		Sections: []domain.ReportSection{
			{
				Title: "Seat Utilization",
				Summary: map[string]interface{}{
					"licenses_analyzed":       len(licenses),
					"total_potential_savings": savings.TotalPotentialSavings,
					"reclaimable_seats":       savings.ReclaimableSeats,
					"downgrade_candidates":    len(savings.DowngradeCandidates),
					"consolidation_targets":   len(savings.ConsolidationOpportunities),
				},
				Details: utilDetails,
			},
			{
				Title: "Compliance",
				Summary: map[string]interface{}{
					"compliance_score": compliance.ComplianceScore,
					"under_licensed":   len(compliance.UnderLicensed),
					"over_licensed":    len(compliance.OverLicensed),
					"expiring":         len(compliance.Expiring),
					"expired":          len(compliance.Expired),
					"true_up_cost":     trueUp.TotalTrueUpCost,
					"audit_ready":      trueUp.AuditReady,
				},
			},
			{
				Title:   "Recommendations",
				Summary: map[string]interface{}{"count": len(recommendations)},
				Details: recDetails,
			},
		},
	}
	return report, nil
}

func groupSection(title, currency string, groups []domain.TCOGroup) domain.ReportSection {
	details := make([]domain.ReportDetail, 0, len(groups))
	for _, g := range groups {
		details = append(details, domain.ReportDetail{
			Name:        g.Key,
			Value:       g.TotalTCO,
			Unit:        currency,
			Description: fmt.Sprintf("%d assets, avg %.2f", g.AssetCount, g.AverageTCO),
		})
	}
	return domain.ReportSection{
		Title:   title,
		Summary: map[string]interface{}{"groups": len(groups)},
		Details: details,
	}
}

func assetLabel(a domain.Asset) string {
	if a.Tag != "" {
		return fmt.Sprintf("%s (%s)", a.Name, a.Tag)
	}
	return a.Name
}
