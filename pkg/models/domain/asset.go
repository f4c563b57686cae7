package domain

import "time"

// Assignment captures who an asset is currently issued to. Department is
// what the TCO grouping reports key on.
type Assignment struct {
	UserID     string
	UserName   string
	Department string
	AssignedAt time.Time
}

// AssetFinancialFacts are the acquisition facts a valuation is computed
// from. PurchasePrice and PurchaseDate are required for any calculation;
// the remaining fields fall back to category defaults when nil.
type AssetFinancialFacts struct {
	PurchasePrice   *float64
	PurchaseDate    *time.Time
	UsefulLifeYears *float64
	SalvageValue    *float64
	Category        string
}

// HasRequiredFields reports whether the facts are complete enough to
// compute a valuation at all.
func (f AssetFinancialFacts) HasRequiredFields() bool {
	return f.PurchasePrice != nil && *f.PurchasePrice > 0 && f.PurchaseDate != nil
}

type Asset struct {
	ID         string
	Tag        string
	Name       string
	Category   string
	Status     string
	Facts      AssetFinancialFacts
	AssignedTo *Assignment
}

// Fleet identifies one tracked inventory of assets and licenses.
type Fleet struct {
	Name string
}

type FleetResource struct {
	FleetName    string
	ResourceName string
}
