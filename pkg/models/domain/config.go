package domain

import (
	"fmt"
	"time"
)

// FleetProfile points at the inventory files backing one named fleet.
type FleetProfile struct {
	Name         string
	AssetsPath   string
	LicensesPath string
	ActivityPath string
	Currency     string
}

func (p FleetProfile) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Currency)
}

// ReportConfig is a saved report setup. Callers persist these through the
// reportcfg store rather than any ambient state.
type ReportConfig struct {
	Name         string
	Fleet        string
	ReportType   string
	Method       Method
	HorizonYears int
	ExportFormat string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
