package license

import (
	"testing"
	"time"

	"github.com/it-tools/asset-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestUtilization_Classification(t *testing.T) {
	tests := []struct {
		name       string
		totalSeats int
		usedSeats  int
		status     domain.UtilizationStatus
	}{
		{"overutilized at 96%", 100, 96, domain.StatusOverutilized},
		{"overutilized at exactly 95%", 100, 95, domain.StatusOverutilized},
		{"optimal at 85%", 100, 85, domain.StatusOptimal},
		{"optimal at exactly 80%", 100, 80, domain.StatusOptimal},
		{"underutilized at 60%", 100, 60, domain.StatusUnderutilized},
		{"underutilized at exactly 50%", 100, 50, domain.StatusUnderutilized},
		{"poor at 30%", 100, 30, domain.StatusPoor},
		{"poor at zero usage", 100, 0, domain.StatusPoor},
		{"over-deployed counts as overutilized", 50, 55, domain.StatusOverutilized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			util := Utilization(domain.LicenseRecord{
				ID:         "lic-1",
				TotalSeats: tt.totalSeats,
				UsedSeats:  tt.usedSeats,
			})
			assert.Equal(t, tt.status, util.Status)
			assert.Equal(t, tt.totalSeats-tt.usedSeats, util.AvailableSeats)
		})
	}
}

func TestUtilization_ZeroSeats(t *testing.T) {
	util := Utilization(domain.LicenseRecord{ID: "lic-1", TotalSeats: 0, UsedSeats: 10})

	assert.Equal(t, domain.StatusUnknown, util.Status)
	assert.Equal(t, 0, util.UsedSeats)
	assert.Equal(t, 0, util.TotalSeats)
	assert.Equal(t, 0, util.AvailableSeats)
	assert.Equal(t, 0.0, util.UtilizationPercent)
}

func TestUtilization_NegativeAvailableSeatsSurvive(t *testing.T) {
	util := Utilization(domain.LicenseRecord{ID: "lic-1", TotalSeats: 50, UsedSeats: 55})

	assert.Equal(t, -5, util.AvailableSeats)
	assert.InDelta(t, 110.0, util.UtilizationPercent, 0.01)
}

func TestIdentifyInactiveUsers(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	recent := now.AddDate(0, 0, -10)
	stale := now.AddDate(0, 0, -90)

	analyzer := NewAnalyzer(DefaultPolicy())
	analyzer.now = func() time.Time { return now }

	license := domain.LicenseRecord{
		ID:          "lic-1",
		CostPerSeat: 25,
		Assignments: []domain.SeatAssignment{
			{UserID: "u1", LastActivity: &recent},
			{UserID: "u2", LastActivity: &stale},
			{UserID: "u3"}, // never active
		},
	}

	report := analyzer.IdentifyInactiveUsers(license)

	assert.Equal(t, 2, report.ReclaimableLicenses)
	assert.InDelta(t, 50.0, report.EstimatedSavings, 0.01)

	ids := []string{report.InactiveUsers[0].UserID, report.InactiveUsers[1].UserID}
	assert.Contains(t, ids, "u2")
	assert.Contains(t, ids, "u3")
}

func TestIdentifyInactiveUsers_ThresholdBoundary(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	analyzer := NewAnalyzer(Policy{InactivityThreshold: 30 * 24 * time.Hour})
	analyzer.now = func() time.Time { return now }

	atThreshold := now.Add(-30 * 24 * time.Hour)
	justOver := now.Add(-30*24*time.Hour - time.Minute)

	report := analyzer.IdentifyInactiveUsers(domain.LicenseRecord{
		ID:          "lic-1",
		CostPerSeat: 10,
		Assignments: []domain.SeatAssignment{
			{UserID: "edge", LastActivity: &atThreshold},
			{UserID: "over", LastActivity: &justOver},
		},
	})

	assert.Equal(t, 1, report.ReclaimableLicenses)
	assert.Equal(t, "over", report.InactiveUsers[0].UserID)
}
