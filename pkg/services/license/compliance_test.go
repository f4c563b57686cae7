package license

import (
	"testing"
	"time"

	"github.com/it-tools/asset-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAnalyzer(now time.Time) *Analyzer {
	a := NewAnalyzer(DefaultPolicy())
	a.now = func() time.Time { return now }
	return a
}

func TestAnalyzeCompliance_UnderLicensed(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	analyzer := testAnalyzer(now)

	report := analyzer.AnalyzeCompliance([]domain.LicenseRecord{
		{ID: "lic-1", Name: "CAD", TotalSeats: 50, UsedSeats: 55, CostPerSeat: 100},
	})

	require.Len(t, report.UnderLicensed, 1)
	assert.Equal(t, 5, report.UnderLicensed[0].Shortfall)
	assert.Equal(t, domain.SeverityHigh, report.UnderLicensed[0].Severity)
	assert.Equal(t, 0.0, report.ComplianceScore)
}

func TestAnalyzeCompliance_ExpirationBuckets(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	analyzer := testAnalyzer(now)

	pastDate := now.AddDate(0, 0, -10)
	in20Days := now.AddDate(0, 0, 20)
	in60Days := now.AddDate(0, 0, 60)
	in200Days := now.AddDate(0, 0, 200)

	report := analyzer.AnalyzeCompliance([]domain.LicenseRecord{
		{ID: "expired", TotalSeats: 10, UsedSeats: 9, ExpirationDate: &pastDate},
		{ID: "urgent", TotalSeats: 10, UsedSeats: 9, ExpirationDate: &in20Days},
		{ID: "soon", TotalSeats: 10, UsedSeats: 9, ExpirationDate: &in60Days},
		{ID: "fine", TotalSeats: 10, UsedSeats: 9, ExpirationDate: &in200Days},
	})

	require.Len(t, report.Expired, 1)
	assert.Equal(t, domain.SeverityCritical, report.Expired[0].Severity)

	require.Len(t, report.Expiring, 2)
	severityByID := map[string]domain.ComplianceSeverity{}
	for _, issue := range report.Expiring {
		severityByID[issue.LicenseID] = issue.Severity
	}
	assert.Equal(t, domain.SeverityHigh, severityByID["urgent"])
	assert.Equal(t, domain.SeverityMedium, severityByID["soon"])

	// The far-out license is optimally utilized, so it is compliant.
	assert.Equal(t, 1, report.CompliantCount)
	assert.InDelta(t, 25.0, report.ComplianceScore, 0.01)
}

func TestAnalyzeCompliance_SingleBucketPrecedence(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	analyzer := testAnalyzer(now)
	pastDate := now.AddDate(0, 0, -5)

	// Expired and over-deployed at once: expiry wins, one bucket only.
	report := analyzer.AnalyzeCompliance([]domain.LicenseRecord{
		{ID: "lic-1", TotalSeats: 10, UsedSeats: 15, ExpirationDate: &pastDate},
	})

	assert.Len(t, report.Expired, 1)
	assert.Empty(t, report.UnderLicensed)
}

func TestAnalyzeCompliance_OverLicensed(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	analyzer := testAnalyzer(now)

	report := analyzer.AnalyzeCompliance([]domain.LicenseRecord{
		{ID: "lic-1", TotalSeats: 100, UsedSeats: 20, CostPerSeat: 30},
	})

	require.Len(t, report.OverLicensed, 1)
	assert.Equal(t, domain.SeverityMedium, report.OverLicensed[0].Severity)
	assert.Equal(t, 80, report.OverLicensed[0].WastedSeats)
}

func TestAnalyzeCompliance_Empty(t *testing.T) {
	report := testAnalyzer(time.Now()).AnalyzeCompliance(nil)
	assert.Equal(t, 0, report.TotalLicenses)
	assert.Equal(t, 0.0, report.ComplianceScore)
}

func TestTrueUpCost(t *testing.T) {
	analyzer := testAnalyzer(time.Now())

	t.Run("shortfall priced per seat", func(t *testing.T) {
		report := analyzer.TrueUpCost([]domain.LicenseRecord{
			{ID: "lic-1", Name: "CAD", TotalSeats: 50, UsedSeats: 55, CostPerSeat: 100},
			{ID: "lic-2", Name: "Chat", TotalSeats: 100, UsedSeats: 80, CostPerSeat: 10},
		})

		require.Len(t, report.LicensesNeedingTrueUp, 1)
		assert.Equal(t, 5, report.LicensesNeedingTrueUp[0].Shortfall)
		assert.InDelta(t, 500.0, report.LicensesNeedingTrueUp[0].TrueUpCost, 0.01)
		assert.InDelta(t, 500.0, report.TotalTrueUpCost, 0.01)
		assert.False(t, report.AuditReady)
	})

	t.Run("audit ready with no shortfalls", func(t *testing.T) {
		report := analyzer.TrueUpCost([]domain.LicenseRecord{
			{ID: "lic-1", TotalSeats: 50, UsedSeats: 45, CostPerSeat: 100},
		})
		assert.True(t, report.AuditReady)
		assert.Equal(t, 0.0, report.TotalTrueUpCost)
		assert.Empty(t, report.LicensesNeedingTrueUp)
	})
}
