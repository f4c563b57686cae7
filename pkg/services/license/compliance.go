package license

import (
	"fmt"
	"time"

	"github.com/it-tools/asset-atlas/pkg/models/domain"
	"github.com/it-tools/asset-atlas/pkg/money"
)

// Expiration windows for the compliance scan.
const (
	expiringWindowDays = 90
	urgentWindowDays   = 30
)

// AnalyzeCompliance classifies every license into exactly one state.
// Precedence: expired, then under-licensed, then expiring, then
// over-licensed waste. A license counts as compliant only when its
// utilization is optimal and no expiration is near.
func (a *Analyzer) AnalyzeCompliance(licenses []domain.LicenseRecord) domain.ComplianceReport {
	now := a.now()
	report := domain.ComplianceReport{TotalLicenses: len(licenses)}

	for _, l := range licenses {
		util := Utilization(l)

		switch {
		case l.ExpirationDate != nil && l.ExpirationDate.Before(now):
			report.Expired = append(report.Expired, domain.ComplianceIssue{
				LicenseID:   l.ID,
				LicenseName: l.Name,
				Severity:    domain.SeverityCritical,
				ExpiresAt:   l.ExpirationDate,
				Detail:      fmt.Sprintf("expired %s", l.ExpirationDate.Format("2006-01-02")),
			})

		case l.UsedSeats > l.TotalSeats:
			shortfall := l.UsedSeats - l.TotalSeats
			report.UnderLicensed = append(report.UnderLicensed, domain.ComplianceIssue{
				LicenseID:   l.ID,
				LicenseName: l.Name,
				Severity:    domain.SeverityHigh,
				Shortfall:   shortfall,
				Detail:      fmt.Sprintf("%d seats deployed beyond the %d purchased", shortfall, l.TotalSeats),
			})

		case l.ExpirationDate != nil && withinDays(now, *l.ExpirationDate, expiringWindowDays):
			severity := domain.SeverityMedium
			if withinDays(now, *l.ExpirationDate, urgentWindowDays) {
				severity = domain.SeverityHigh
			}
			report.Expiring = append(report.Expiring, domain.ComplianceIssue{
				LicenseID:   l.ID,
				LicenseName: l.Name,
				Severity:    severity,
				ExpiresAt:   l.ExpirationDate,
				Detail:      fmt.Sprintf("expires %s", l.ExpirationDate.Format("2006-01-02")),
			})

		case util.Status == domain.StatusPoor:
			report.OverLicensed = append(report.OverLicensed, domain.ComplianceIssue{
				LicenseID:   l.ID,
				LicenseName: l.Name,
				Severity:    domain.SeverityMedium,
				WastedSeats: util.AvailableSeats,
				Detail:      fmt.Sprintf("only %.0f%% of seats in use", util.UtilizationPercent),
			})

		case util.Status == domain.StatusOptimal:
			report.CompliantCount++
		}
	}

	if report.TotalLicenses > 0 {
		report.ComplianceScore = money.Round2(float64(report.CompliantCount) / float64(report.TotalLicenses) * 100)
	}
	return report
}

func withinDays(now, deadline time.Time, days int) bool {
	return !deadline.Before(now) && deadline.Sub(now) <= time.Duration(days)*24*time.Hour
}

// TrueUpCost totals the spend needed to license every deployed seat.
// AuditReady is true only when no license is running a shortfall.
func (a *Analyzer) TrueUpCost(licenses []domain.LicenseRecord) domain.TrueUpReport {
	report := domain.TrueUpReport{AuditReady: true}

	for _, l := range licenses {
		if l.UsedSeats <= l.TotalSeats {
			continue
		}
		shortfall := l.UsedSeats - l.TotalSeats
		cost := money.Round2(float64(shortfall) * l.CostPerSeat)
		report.LicensesNeedingTrueUp = append(report.LicensesNeedingTrueUp, domain.TrueUpItem{
			LicenseID:   l.ID,
			LicenseName: l.Name,
			Shortfall:   shortfall,
			TrueUpCost:  cost,
		})
		report.TotalTrueUpCost += cost
		report.AuditReady = false
	}

	report.TotalTrueUpCost = money.Round2(report.TotalTrueUpCost)
	return report
}
