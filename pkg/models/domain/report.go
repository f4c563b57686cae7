package domain

import "time"

// Report represents a complete analysis report
type Report struct {
	Title       string
	Fleet       string
	GeneratedAt time.Time
	Sections    []ReportSection
	TotalAmount float64
	Currency    string
}

// ReportSection represents a logical section in the report
type ReportSection struct {
	Title   string
	Summary map[string]interface{}
	Details []ReportDetail
}

// ReportDetail represents detailed information within a section
type ReportDetail struct {
	Name        string
	Value       interface{}
	Unit        string
	Description string
}
