package license

import (
	"testing"
	"time"

	"github.com/it-tools/asset-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommend_DowngradeForPoorUtilization(t *testing.T) {
	analyzer := NewAnalyzer(DefaultPolicy())

	recs := analyzer.Recommend([]domain.LicenseRecord{
		{ID: "lic-1", Name: "Design Suite", TotalSeats: 100, UsedSeats: 30, CostPerSeat: 50},
	})

	require.NotEmpty(t, recs)
	downgrade := findRec(t, recs, domain.RecommendationDowngrade)
	assert.Equal(t, domain.PriorityHigh, downgrade.Priority)
	// ceil(30 * 1.2) = 36 seats kept, 64 shed.
	assert.InDelta(t, 64*50.0, downgrade.EstimatedSavings, 0.01)
}

func TestRecommend_ReclaimNeedsMoreThanFiveSeats(t *testing.T) {
	analyzer := NewAnalyzer(DefaultPolicy())

	recs := analyzer.Recommend([]domain.LicenseRecord{
		{ID: "few", TotalSeats: 20, UsedSeats: 15, CostPerSeat: 10},  // 5 free, below the floor
		{ID: "many", TotalSeats: 20, UsedSeats: 14, CostPerSeat: 10}, // 6 free
	})

	var reclaims []domain.OptimizationRecommendation
	for _, r := range recs {
		if r.Type == domain.RecommendationReclaim {
			reclaims = append(reclaims, r)
		}
	}
	require.Len(t, reclaims, 1)
	assert.Equal(t, "many", reclaims[0].LicenseID)
	assert.InDelta(t, 60.0, reclaims[0].EstimatedSavings, 0.01)
}

func TestRecommend_UpgradeForOverutilized(t *testing.T) {
	analyzer := NewAnalyzer(DefaultPolicy())

	recs := analyzer.Recommend([]domain.LicenseRecord{
		{ID: "lic-1", Name: "IDE", TotalSeats: 50, UsedSeats: 49, CostPerSeat: 200},
	})

	upgrade := findRec(t, recs, domain.RecommendationUpgrade)
	assert.Equal(t, domain.PriorityCritical, upgrade.Priority)
	assert.Equal(t, 0.0, upgrade.EstimatedSavings)
}

func TestRecommend_HarvestInactiveSeats(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	analyzer := NewAnalyzer(DefaultPolicy())
	analyzer.now = func() time.Time { return now }

	stale := now.AddDate(0, 0, -120)
	assignments := []domain.SeatAssignment{
		{UserID: "u1", LastActivity: &stale},
		{UserID: "u2", LastActivity: &stale},
		{UserID: "u3", LastActivity: nil},
	}

	recs := analyzer.Recommend([]domain.LicenseRecord{
		{ID: "lic-1", Name: "CRM", TotalSeats: 10, UsedSeats: 9, CostPerSeat: 40, Assignments: assignments},
	})

	harvest := findRec(t, recs, domain.RecommendationHarvest)
	assert.Equal(t, domain.PriorityMedium, harvest.Priority)
	assert.InDelta(t, 120.0, harvest.EstimatedSavings, 0.01)
}

func TestRecommend_TwoInactiveSeatsIsNotWorthHarvesting(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	analyzer := NewAnalyzer(DefaultPolicy())
	analyzer.now = func() time.Time { return now }

	stale := now.AddDate(0, 0, -120)
	recs := analyzer.Recommend([]domain.LicenseRecord{
		{ID: "lic-1", TotalSeats: 10, UsedSeats: 9, CostPerSeat: 40, Assignments: []domain.SeatAssignment{
			{UserID: "u1", LastActivity: &stale},
			{UserID: "u2", LastActivity: &stale},
		}},
	})

	for _, r := range recs {
		assert.NotEqual(t, domain.RecommendationHarvest, r.Type)
	}
}

func TestRecommend_SortsByPriorityThenSavings(t *testing.T) {
	analyzer := NewAnalyzer(DefaultPolicy())

	// Listed with the over-deployed license last; the critical upgrade
	// must still sort ahead of the high-priority downgrade.
	recs := analyzer.Recommend([]domain.LicenseRecord{
		{ID: "wasteful", Name: "Design Suite", TotalSeats: 100, UsedSeats: 30, CostPerSeat: 50},
		{ID: "small-waste", Name: "Chat", TotalSeats: 40, UsedSeats: 10, CostPerSeat: 5},
		{ID: "over", Name: "IDE", TotalSeats: 50, UsedSeats: 55, CostPerSeat: 200},
	})

	require.NotEmpty(t, recs)
	assert.Equal(t, domain.RecommendationUpgrade, recs[0].Type)
	assert.Equal(t, "over", recs[0].LicenseID)

	// Within the same priority, bigger savings come first.
	var downgrades []string
	for _, r := range recs {
		if r.Type == domain.RecommendationDowngrade {
			downgrades = append(downgrades, r.LicenseID)
		}
	}
	assert.Equal(t, []string{"wasteful", "small-waste"}, downgrades)
}

func findRec(t *testing.T, recs []domain.OptimizationRecommendation, typ domain.RecommendationType) domain.OptimizationRecommendation {
	t.Helper()
	for _, r := range recs {
		if r.Type == typ {
			return r
		}
	}
	t.Fatalf("no recommendation of type %s", typ)
	return domain.OptimizationRecommendation{}
}
