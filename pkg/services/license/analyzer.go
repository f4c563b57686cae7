// Package license analyzes software license seat usage: utilization
// classification, reclaimable-seat savings, compliance risk, true-up
// cost, and ranked remediation recommendations.
//
// All functions treat their inputs as immutable snapshots and hold no
// state between calls.
package license

import (
	"time"

	"github.com/it-tools/asset-atlas/pkg/models/domain"
	"github.com/it-tools/asset-atlas/pkg/money"
)

// Utilization thresholds, in percent of purchased seats.
const (
	overutilizedThreshold  = 95
	optimalThreshold       = 80
	underutilizedThreshold = 50
)

// Policy carries the tunable heuristics of the analyzer. The seat
// headroom and consolidation rate are estimates of organizational
// behavior, not accounting facts, so they are configuration rather than
// constants.
type Policy struct {
	// DowngradeHeadroom is the multiplier applied to used seats when
	// right-sizing a downgrade candidate (1.2 keeps 20% headroom).
	DowngradeHeadroom float64
	// ConsolidationSavingsRate is the assumed fraction of a
	// category's combined annual cost recoverable by consolidating
	// onto a single license.
	ConsolidationSavingsRate float64
	// InactivityThreshold is how long a seat must sit idle before it
	// counts as reclaimable.
	InactivityThreshold time.Duration
}

// DefaultPolicy returns the standard heuristics.
func DefaultPolicy() Policy {
	return Policy{
		DowngradeHeadroom:        1.2,
		ConsolidationSavingsRate: 0.15,
		InactivityThreshold:      60 * 24 * time.Hour,
	}
}

// Analyzer evaluates license collections under one policy.
type Analyzer struct {
	policy Policy
	now    func() time.Time
}

// NewAnalyzer creates an analyzer with the given policy. Zero policy
// fields fall back to their defaults.
func NewAnalyzer(policy Policy) *Analyzer {
	defaults := DefaultPolicy()
	if policy.DowngradeHeadroom <= 0 {
		policy.DowngradeHeadroom = defaults.DowngradeHeadroom
	}
	if policy.ConsolidationSavingsRate <= 0 {
		policy.ConsolidationSavingsRate = defaults.ConsolidationSavingsRate
	}
	if policy.InactivityThreshold <= 0 {
		policy.InactivityThreshold = defaults.InactivityThreshold
	}
	return &Analyzer{policy: policy, now: time.Now}
}

// Utilization derives the seat-usage picture for one license. A license
// with no purchased seats reports status unknown with all counts zeroed
// rather than propagating a division by zero.
func Utilization(l domain.LicenseRecord) domain.LicenseUtilization {
	if l.TotalSeats <= 0 {
		return domain.LicenseUtilization{LicenseID: l.ID, Status: domain.StatusUnknown}
	}

	percent := float64(l.UsedSeats) / float64(l.TotalSeats) * 100

	var status domain.UtilizationStatus
	switch {
	case percent >= overutilizedThreshold:
		status = domain.StatusOverutilized
	case percent >= optimalThreshold:
		status = domain.StatusOptimal
	case percent >= underutilizedThreshold:
		status = domain.StatusUnderutilized
	default:
		status = domain.StatusPoor
	}

	// AvailableSeats is negative when the license is over-deployed;
	// that is the compliance-risk signal and must survive as-is.
	return domain.LicenseUtilization{
		LicenseID:          l.ID,
		UsedSeats:          l.UsedSeats,
		TotalSeats:         l.TotalSeats,
		AvailableSeats:     l.TotalSeats - l.UsedSeats,
		UtilizationPercent: money.Round2(percent),
		Status:             status,
	}
}

// IdentifyInactiveUsers finds seats held by users with no recent
// activity. A seat with no recorded activity at all counts as inactive.
func (a *Analyzer) IdentifyInactiveUsers(l domain.LicenseRecord) domain.InactiveSeatReport {
	cutoff := a.now().Add(-a.policy.InactivityThreshold)

	report := domain.InactiveSeatReport{LicenseID: l.ID}
	for _, seat := range l.Assignments {
		if seat.LastActivity == nil || seat.LastActivity.Before(cutoff) {
			report.InactiveUsers = append(report.InactiveUsers, seat)
		}
	}

	report.ReclaimableLicenses = len(report.InactiveUsers)
	report.EstimatedSavings = money.Round2(float64(report.ReclaimableLicenses) * l.CostPerSeat)
	return report
}
