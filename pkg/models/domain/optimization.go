package domain

import "time"

type RecommendationType string

const (
	RecommendationDowngrade RecommendationType = "downgrade"
	RecommendationReclaim   RecommendationType = "reclaim"
	RecommendationUpgrade   RecommendationType = "upgrade"
	RecommendationHarvest   RecommendationType = "harvest"
)

type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Rank maps a priority to its sort weight, highest first.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// OptimizationRecommendation is one remediation action for one license,
// derived transiently per report generation.
type OptimizationRecommendation struct {
	LicenseID        string
	LicenseName      string
	Type             RecommendationType
	Priority         Priority
	Description      string
	EstimatedSavings float64
	Effort           string
	Impact           string
}

// InactiveSeatReport lists seats that can be reclaimed from users with no
// recent activity.
type InactiveSeatReport struct {
	LicenseID           string
	InactiveUsers       []SeatAssignment
	ReclaimableLicenses int
	EstimatedSavings    float64
}

// DowngradeCandidate is a license running below half utilization, with a
// right-sized seat count that keeps some headroom over current usage.
type DowngradeCandidate struct {
	LicenseID        string
	LicenseName      string
	CurrentSeats     int
	UsedSeats        int
	RecommendedSeats int
	EstimatedSavings float64
}

// ConsolidationOpportunity flags a category holding more than one license.
// The savings figure is a heuristic estimate, not a guarantee.
type ConsolidationOpportunity struct {
	Category           string
	LicenseCount       int
	CombinedAnnualCost float64
	PotentialSavings   float64
}

type SavingsAnalysis struct {
	TotalPotentialSavings      float64
	ReclaimableSeats           int
	DowngradeCandidates        []DowngradeCandidate
	ConsolidationOpportunities []ConsolidationOpportunity
}

type ComplianceSeverity string

const (
	SeverityMedium   ComplianceSeverity = "medium"
	SeverityHigh     ComplianceSeverity = "high"
	SeverityCritical ComplianceSeverity = "critical"
)

// ComplianceIssue is one license flagged during a compliance scan.
type ComplianceIssue struct {
	LicenseID   string
	LicenseName string
	Severity    ComplianceSeverity
	Shortfall   int
	WastedSeats int
	ExpiresAt   *time.Time
	Detail      string
}

// ComplianceReport buckets every scanned license into exactly one state.
type ComplianceReport struct {
	TotalLicenses   int
	UnderLicensed   []ComplianceIssue
	OverLicensed    []ComplianceIssue
	Expiring        []ComplianceIssue
	Expired         []ComplianceIssue
	CompliantCount  int
	ComplianceScore float64
}

// TrueUpItem is one over-deployed license with the cost of buying the
// shortfall seats.
type TrueUpItem struct {
	LicenseID   string
	LicenseName string
	Shortfall   int
	TrueUpCost  float64
}

// TrueUpReport totals the spend needed to become audit-clean.
type TrueUpReport struct {
	TotalTrueUpCost       float64
	LicensesNeedingTrueUp []TrueUpItem
	AuditReady            bool
}
