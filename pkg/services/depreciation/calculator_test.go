package depreciation

import (
	"testing"
	"time"

	"github.com/it-tools/asset-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// yearsAfter returns a clock exactly n years past t under the fixed
// 365.25-day-year convention the calculator uses.
func yearsAfter(t time.Time, n float64) time.Time {
	return t.Add(time.Duration(n * 365.25 * 24 * float64(time.Hour)))
}

func facts(price, salvage, life float64, purchased time.Time) domain.AssetFinancialFacts {
	return domain.AssetFinancialFacts{
		PurchasePrice:   &price,
		PurchaseDate:    &purchased,
		UsefulLifeYears: &life,
		SalvageValue:    &salvage,
	}
}

func TestCalculate_MissingRequiredFields(t *testing.T) {
	price := 1200.0
	date := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("no purchase price", func(t *testing.T) {
		result := Calculate(domain.AssetFinancialFacts{PurchaseDate: &date}, domain.MethodStraightLine, Options{})
		assert.Nil(t, result)
	})

	t.Run("no purchase date", func(t *testing.T) {
		result := Calculate(domain.AssetFinancialFacts{PurchasePrice: &price}, domain.MethodStraightLine, Options{})
		assert.Nil(t, result)
	})

	t.Run("zero purchase price", func(t *testing.T) {
		zero := 0.0
		result := Calculate(domain.AssetFinancialFacts{PurchasePrice: &zero, PurchaseDate: &date}, domain.MethodStraightLine, Options{})
		assert.Nil(t, result)
	})
}

func TestCalculate_StraightLine(t *testing.T) {
	purchased := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	f := facts(1200, 120, 3, purchased)

	t.Run("one year elapsed", func(t *testing.T) {
		result := Calculate(f, domain.MethodStraightLine, Options{Now: yearsAfter(purchased, 1)})
		require.NotNil(t, result)

		assert.InDelta(t, 360.0, result.AnnualDepreciation, 0.01)
		assert.InDelta(t, 360.0, result.AccumulatedDepreciation, 0.01)
		assert.InDelta(t, 840.0, result.CurrentValue, 0.01)
		assert.InDelta(t, 30.0, result.DepreciationPercentage, 0.01)
		assert.InDelta(t, 2.0, result.RemainingLifeYears, 0.01)
		assert.False(t, result.IsFullyDepreciated)
	})

	t.Run("zero elapsed time", func(t *testing.T) {
		result := Calculate(f, domain.MethodStraightLine, Options{Now: purchased})
		require.NotNil(t, result)

		assert.Equal(t, 1200.0, result.CurrentValue)
		assert.Equal(t, 0.0, result.AccumulatedDepreciation)
		assert.Equal(t, 0.0, result.DepreciationPercentage)
	})

	t.Run("beyond useful life clamps to salvage", func(t *testing.T) {
		result := Calculate(f, domain.MethodStraightLine, Options{Now: yearsAfter(purchased, 5)})
		require.NotNil(t, result)

		assert.InDelta(t, 120.0, result.CurrentValue, 0.01)
		assert.InDelta(t, 1080.0, result.AccumulatedDepreciation, 0.01)
		assert.Equal(t, 0.0, result.RemainingLifeYears)
		assert.True(t, result.IsFullyDepreciated)
	})

	t.Run("current value is non-increasing over time", func(t *testing.T) {
		prev := 1200.01
		for months := 0; months <= 48; months++ {
			now := purchased.Add(time.Duration(months) * 30 * 24 * time.Hour)
			result := Calculate(f, domain.MethodStraightLine, Options{Now: now})
			require.NotNil(t, result)
			assert.LessOrEqual(t, result.CurrentValue, prev, "month %d", months)
			prev = result.CurrentValue
		}
	})
}

func TestCalculate_DecliningBalance(t *testing.T) {
	purchased := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	f := facts(1200, 120, 3, purchased)

	t.Run("double declining after one year", func(t *testing.T) {
		result := Calculate(f, domain.MethodDecliningBalance, Options{Now: yearsAfter(purchased, 1)})
		require.NotNil(t, result)

		// Year-1 rate is 2/3: 1200 * 2/3 = 800 of depreciation.
		assert.InDelta(t, 800.0, result.AccumulatedDepreciation, 0.01)
		assert.InDelta(t, 400.0, result.CurrentValue, 0.01)
		assert.False(t, result.IsFullyDepreciated)
	})

	t.Run("zero elapsed time", func(t *testing.T) {
		result := Calculate(f, domain.MethodDecliningBalance, Options{Now: purchased})
		require.NotNil(t, result)
		assert.Equal(t, 1200.0, result.CurrentValue)
		assert.Equal(t, 0.0, result.AccumulatedDepreciation)
	})

	t.Run("never depreciates below salvage", func(t *testing.T) {
		for _, years := range []float64{2, 2.5, 3, 4, 10} {
			result := Calculate(f, domain.MethodDecliningBalance, Options{Now: yearsAfter(purchased, years)})
			require.NotNil(t, result)
			assert.GreaterOrEqual(t, result.CurrentValue, 120.0, "years=%v", years)
		}
	})

	t.Run("no further accrual once clamped", func(t *testing.T) {
		atFive := Calculate(f, domain.MethodDecliningBalance, Options{Now: yearsAfter(purchased, 5)})
		atTen := Calculate(f, domain.MethodDecliningBalance, Options{Now: yearsAfter(purchased, 10)})
		require.NotNil(t, atFive)
		require.NotNil(t, atTen)
		assert.Equal(t, atFive.CurrentValue, atTen.CurrentValue)
		assert.Equal(t, atFive.AccumulatedDepreciation, atTen.AccumulatedDepreciation)
	})

	t.Run("custom rate", func(t *testing.T) {
		// 1.5x declining: year-1 rate is 1.5/3 = 0.5.
		result := Calculate(f, domain.MethodDecliningBalance, Options{
			Now:           yearsAfter(purchased, 1),
			DecliningRate: 1.5,
		})
		require.NotNil(t, result)
		assert.InDelta(t, 600.0, result.CurrentValue, 0.01)
	})
}

func TestCalculate_SumOfYears(t *testing.T) {
	purchased := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	f := facts(1200, 120, 3, purchased)

	t.Run("first year takes the largest share", func(t *testing.T) {
		// sum = 6, year-1 weight 3: 1080 * 3/6 = 540.
		result := Calculate(f, domain.MethodSumOfYears, Options{Now: yearsAfter(purchased, 1)})
		require.NotNil(t, result)
		assert.InDelta(t, 540.0, result.AccumulatedDepreciation, 0.01)
		assert.InDelta(t, 660.0, result.CurrentValue, 0.01)
	})

	t.Run("half year accrues half the first-year share", func(t *testing.T) {
		result := Calculate(f, domain.MethodSumOfYears, Options{Now: yearsAfter(purchased, 0.5)})
		require.NotNil(t, result)
		assert.InDelta(t, 270.0, result.AccumulatedDepreciation, 0.01)
	})

	t.Run("fully depreciates at end of life", func(t *testing.T) {
		result := Calculate(f, domain.MethodSumOfYears, Options{Now: yearsAfter(purchased, 3)})
		require.NotNil(t, result)
		assert.InDelta(t, 120.0, result.CurrentValue, 0.01)
		assert.True(t, result.IsFullyDepreciated)
	})
}

func TestCalculate_Conservation(t *testing.T) {
	purchased := time.Date(2022, 6, 15, 0, 0, 0, 0, time.UTC)
	f := facts(2499.99, 250, 4, purchased)

	methods := []domain.Method{domain.MethodStraightLine, domain.MethodDecliningBalance, domain.MethodSumOfYears}
	for _, method := range methods {
		for _, years := range []float64{0, 0.25, 1, 1.75, 3, 4, 6} {
			result := Calculate(f, method, Options{Now: yearsAfter(purchased, years)})
			require.NotNil(t, result)

			assert.InDelta(t, result.OriginalValue,
				result.AccumulatedDepreciation+result.CurrentValue, 0.011,
				"%s at %v years", method, years)
			assert.GreaterOrEqual(t, result.CurrentValue, result.SalvageValue, "%s at %v years", method, years)
			assert.LessOrEqual(t, result.CurrentValue, result.OriginalValue, "%s at %v years", method, years)
		}
	}
}

func TestCalculate_Defaults(t *testing.T) {
	purchased := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	price := 1000.0

	t.Run("category default useful life", func(t *testing.T) {
		f := domain.AssetFinancialFacts{
			PurchasePrice: &price,
			PurchaseDate:  &purchased,
			Category:      "laptop",
		}
		result := Calculate(f, domain.MethodStraightLine, Options{Now: purchased})
		require.NotNil(t, result)
		assert.Equal(t, 3.0, result.UsefulLifeYears)
		// Salvage defaults to 10% of price.
		assert.Equal(t, 100.0, result.SalvageValue)
	})

	t.Run("unknown category falls back", func(t *testing.T) {
		f := domain.AssetFinancialFacts{
			PurchasePrice: &price,
			PurchaseDate:  &purchased,
			Category:      "espresso machine",
		}
		result := Calculate(f, domain.MethodStraightLine, Options{Now: purchased})
		require.NotNil(t, result)
		assert.Equal(t, 4.0, result.UsefulLifeYears)
	})

	t.Run("salvage above price clamps to price", func(t *testing.T) {
		salvage := 5000.0
		f := domain.AssetFinancialFacts{
			PurchasePrice: &price,
			PurchaseDate:  &purchased,
			SalvageValue:  &salvage,
		}
		result := Calculate(f, domain.MethodStraightLine, Options{Now: yearsAfter(purchased, 2)})
		require.NotNil(t, result)
		assert.Equal(t, price, result.SalvageValue)
		assert.Equal(t, price, result.CurrentValue)
		assert.Equal(t, 0.0, result.AccumulatedDepreciation)
	})

	t.Run("future purchase date counts as zero age", func(t *testing.T) {
		f := facts(1000, 100, 3, purchased)
		result := Calculate(f, domain.MethodStraightLine, Options{Now: purchased.AddDate(-1, 0, 0)})
		require.NotNil(t, result)
		assert.Equal(t, 1000.0, result.CurrentValue)
	})
}
