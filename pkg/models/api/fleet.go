package api

import (
	"time"

	"github.com/it-tools/asset-atlas/pkg/models/domain"
)

type Fleet struct {
	Name string `json:"name"`
}

// Valuation is the response for a single-asset depreciation query.
// InsufficientData is set instead of an error when the asset record
// lacks the purchase facts needed to compute anything.
type Valuation struct {
	InsufficientData bool                       `json:"insufficient_data"`
	Result           *domain.DepreciationResult `json:"result,omitempty"`
	Schedule         []domain.ScheduleEntry     `json:"schedule,omitempty"`
}

type ReportConfig struct {
	Name         string    `json:"name"`
	Fleet        string    `json:"fleet"`
	ReportType   string    `json:"report_type"`
	Method       string    `json:"method,omitempty"`
	HorizonYears int       `json:"horizon_years,omitempty"`
	ExportFormat string    `json:"export_format,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
}

func ReportConfigFromDomain(cfg domain.ReportConfig) ReportConfig {
	return ReportConfig{
		Name:         cfg.Name,
		Fleet:        cfg.Fleet,
		ReportType:   cfg.ReportType,
		Method:       string(cfg.Method),
		HorizonYears: cfg.HorizonYears,
		ExportFormat: cfg.ExportFormat,
		CreatedAt:    cfg.CreatedAt,
		UpdatedAt:    cfg.UpdatedAt,
	}
}

func (rc ReportConfig) ToDomain() domain.ReportConfig {
	return domain.ReportConfig{
		Name:         rc.Name,
		Fleet:        rc.Fleet,
		ReportType:   rc.ReportType,
		Method:       domain.Method(rc.Method),
		HorizonYears: rc.HorizonYears,
		ExportFormat: rc.ExportFormat,
	}
}
