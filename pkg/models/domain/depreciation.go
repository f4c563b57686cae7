package domain

import "time"

// Method selects the depreciation formula.
type Method string

const (
	MethodStraightLine     Method = "straight_line"
	MethodDecliningBalance Method = "declining_balance"
	MethodSumOfYears       Method = "sum_of_years"
)

// DepreciationResult is a point-in-time valuation of a single asset.
// It is recomputed on every call and never persisted.
//
// Invariants: SalvageValue <= CurrentValue <= OriginalValue, and
// AccumulatedDepreciation + CurrentValue == OriginalValue within
// 2-decimal rounding.
type DepreciationResult struct {
	Method                  Method
	OriginalValue           float64
	CurrentValue            float64
	SalvageValue            float64
	AccumulatedDepreciation float64
	AnnualDepreciation      float64
	DepreciationPercentage  float64
	UsefulLifeYears         float64
	RemainingLifeYears      float64
	IsFullyDepreciated      bool
}

// ScheduleEntry is one row of a year-by-year depreciation schedule,
// indexed by whole years elapsed since purchase (year 0 is the purchase
// date itself).
type ScheduleEntry struct {
	Year                    int
	Date                    time.Time
	BookValue               float64
	AccumulatedDepreciation float64
	YearlyDepreciation      float64
}
