package domain

import "time"

// SeatAssignment binds one seat of a license to a user. LastActivity is
// nil when no activity has ever been recorded for the seat.
type SeatAssignment struct {
	UserID       string
	UserName     string
	AssignedAt   time.Time
	LastActivity *time.Time
}

// LicenseRecord is one purchased software license pool.
type LicenseRecord struct {
	ID             string
	Name           string
	Vendor         string
	Category       string
	TotalSeats     int
	UsedSeats      int
	CostPerSeat    float64
	ExpirationDate *time.Time
	Assignments    []SeatAssignment
}

// AnnualCost is the yearly spend on the full seat pool.
func (l LicenseRecord) AnnualCost() float64 {
	return float64(l.TotalSeats) * l.CostPerSeat
}

// UtilizationStatus buckets seat usage relative to the purchased pool.
type UtilizationStatus string

const (
	StatusOverutilized  UtilizationStatus = "overutilized"  // >= 95%
	StatusOptimal       UtilizationStatus = "optimal"       // 80-94%
	StatusUnderutilized UtilizationStatus = "underutilized" // 50-79%
	StatusPoor          UtilizationStatus = "poor"          // < 50%
	StatusUnknown       UtilizationStatus = "unknown"       // no seats purchased
)

// LicenseUtilization is the derived seat-usage picture for one license.
// AvailableSeats goes negative when a license is over-deployed; that is
// a compliance-risk state and is reported as-is, never clamped.
type LicenseUtilization struct {
	LicenseID          string
	UsedSeats          int
	TotalSeats         int
	AvailableSeats     int
	UtilizationPercent float64
	Status             UtilizationStatus
}
