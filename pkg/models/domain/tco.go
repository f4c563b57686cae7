package domain

// YearlyCost is one row of a TCO projection. Year 1 carries the upfront
// purchase price on top of the operating cost.
type YearlyCost struct {
	Year           int
	AnnualCost     float64
	CumulativeCost float64
}

// TCOResult projects the total cost of owning one asset over a horizon.
type TCOResult struct {
	PurchasePrice         float64
	Category              string
	AnnualPowerCost       float64
	AnnualMaintenanceCost float64
	AnnualSupportCost     float64
	AnnualSoftwareCost    float64
	AnnualOperatingCost   float64
	TotalOperatingCost    float64
	TotalTCO              float64
	HorizonYears          int
	YearlyBreakdown       []YearlyCost
}

// TCOSummary aggregates per-asset TCO results across a collection.
// Assets missing purchase facts are excluded, not counted as zero.
type TCOSummary struct {
	AssetCount          int
	ExcludedCount       int
	TotalPurchase       float64
	TotalOperatingCost  float64
	TotalTCO            float64
	AverageTCO          float64
	AnnualOperatingCost float64
}

// TCOGroup is a per-category or per-department slice of a fleet summary.
type TCOGroup struct {
	Key        string
	AssetCount int
	TotalTCO   float64
	AverageTCO float64
}
