// Package inventory loads fleet asset and license records from CSV
// files and exposes them through an Explorer the reporting layers
// consume.
package inventory

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/it-tools/asset-atlas/pkg/models/domain"
)

const dateLayout = "2006-01-02"

var (
	assetHeader = []string{
		"id", "tag", "name", "category", "status",
		"purchase_price", "purchase_date", "useful_life_years", "salvage_value",
		"assigned_user", "assigned_department",
	}
	licenseHeader = []string{
		"id", "name", "vendor", "category",
		"total_seats", "used_seats", "cost_per_seat", "expiration_date",
	}
	activityHeader = []string{
		"license_id", "user_id", "user_name", "assigned_at", "last_activity",
	}
)

// Loader reads fleet inventory files.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

// LoadAssets reads asset records from a CSV file. Optional columns left
// empty parse to nil, never zero, so downstream default handling stays
// explicit.
func (l *Loader) LoadAssets(filename string) ([]domain.Asset, error) {
	records, err := readCSV(filename, assetHeader)
	if err != nil {
		return nil, fmt.Errorf("assets CSV: %w", err)
	}

	var assets []domain.Asset
	for i, record := range records {
		asset, err := parseAsset(record)
		if err != nil {
			return nil, fmt.Errorf("assets CSV row %d: %w", i+2, err)
		}
		assets = append(assets, asset)
	}
	return assets, nil
}

// LoadLicenses reads license records from a CSV file. When activityPath
// is non-empty, seat assignments are loaded from it and attached to
// their licenses by ID.
func (l *Loader) LoadLicenses(filename, activityPath string) ([]domain.LicenseRecord, error) {
	records, err := readCSV(filename, licenseHeader)
	if err != nil {
		return nil, fmt.Errorf("licenses CSV: %w", err)
	}

	var licenses []domain.LicenseRecord
	for i, record := range records {
		license, err := parseLicense(record)
		if err != nil {
			return nil, fmt.Errorf("licenses CSV row %d: %w", i+2, err)
		}
		licenses = append(licenses, license)
	}

	if activityPath != "" {
		assignments, err := l.loadActivity(activityPath)
		if err != nil {
			return nil, err
		}
		for i := range licenses {
			licenses[i].Assignments = assignments[licenses[i].ID]
		}
	}

	return licenses, nil
}

func (l *Loader) loadActivity(filename string) (map[string][]domain.SeatAssignment, error) {
	records, err := readCSV(filename, activityHeader)
	if err != nil {
		return nil, fmt.Errorf("seat activity CSV: %w", err)
	}

	assignments := make(map[string][]domain.SeatAssignment)
	for i, record := range records {
		licenseID := record[0]
		seat := domain.SeatAssignment{UserID: record[1], UserName: record[2]}

		if record[3] != "" {
			assignedAt, err := time.Parse(dateLayout, record[3])
			if err != nil {
				return nil, fmt.Errorf("seat activity CSV row %d: invalid assigned_at %q", i+2, record[3])
			}
			seat.AssignedAt = assignedAt
		}
		if record[4] != "" {
			lastActivity, err := time.Parse(dateLayout, record[4])
			if err != nil {
				return nil, fmt.Errorf("seat activity CSV row %d: invalid last_activity %q", i+2, record[4])
			}
			seat.LastActivity = &lastActivity
		}

		assignments[licenseID] = append(assignments[licenseID], seat)
	}
	return assignments, nil
}

func readCSV(filename string, expectedHeader []string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	if len(records) < 1 {
		return nil, fmt.Errorf("%s: missing header row", filename)
	}
	if !headerMatches(records[0], expectedHeader) {
		return nil, fmt.Errorf("%s: header mismatch, expected %v, got %v", filename, expectedHeader, records[0])
	}
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("%s row %d: expected %d columns, got %d", filename, i+2, len(expectedHeader), len(record))
		}
	}

	return records[1:], nil
}

func headerMatches(header, expected []string) bool {
	if len(header) != len(expected) {
		return false
	}
	for i, col := range header {
		if strings.TrimSpace(strings.ToLower(col)) != expected[i] {
			return false
		}
	}
	return true
}

func parseAsset(record []string) (domain.Asset, error) {
	asset := domain.Asset{
		ID:       record[0],
		Tag:      record[1],
		Name:     record[2],
		Category: record[3],
		Status:   record[4],
	}
	asset.Facts.Category = asset.Category

	if record[5] != "" {
		price, err := strconv.ParseFloat(record[5], 64)
		if err != nil || price < 0 {
			return domain.Asset{}, fmt.Errorf("invalid purchase_price %q", record[5])
		}
		asset.Facts.PurchasePrice = &price
	}
	if record[6] != "" {
		date, err := time.Parse(dateLayout, record[6])
		if err != nil {
			return domain.Asset{}, fmt.Errorf("invalid purchase_date %q", record[6])
		}
		asset.Facts.PurchaseDate = &date
	}
	if record[7] != "" {
		life, err := strconv.ParseFloat(record[7], 64)
		if err != nil || life <= 0 {
			return domain.Asset{}, fmt.Errorf("invalid useful_life_years %q", record[7])
		}
		asset.Facts.UsefulLifeYears = &life
	}
	if record[8] != "" {
		salvage, err := strconv.ParseFloat(record[8], 64)
		if err != nil || salvage < 0 {
			return domain.Asset{}, fmt.Errorf("invalid salvage_value %q", record[8])
		}
		asset.Facts.SalvageValue = &salvage
	}
	if record[9] != "" || record[10] != "" {
		asset.AssignedTo = &domain.Assignment{
			UserName:   record[9],
			Department: record[10],
		}
	}

	return asset, nil
}

func parseLicense(record []string) (domain.LicenseRecord, error) {
	license := domain.LicenseRecord{
		ID:       record[0],
		Name:     record[1],
		Vendor:   record[2],
		Category: record[3],
	}

	totalSeats, err := strconv.Atoi(record[4])
	if err != nil || totalSeats < 0 {
		return domain.LicenseRecord{}, fmt.Errorf("invalid total_seats %q", record[4])
	}
	usedSeats, err := strconv.Atoi(record[5])
	if err != nil || usedSeats < 0 {
		return domain.LicenseRecord{}, fmt.Errorf("invalid used_seats %q", record[5])
	}
	costPerSeat, err := strconv.ParseFloat(record[6], 64)
	if err != nil || costPerSeat < 0 {
		return domain.LicenseRecord{}, fmt.Errorf("invalid cost_per_seat %q", record[6])
	}
	license.TotalSeats = totalSeats
	license.UsedSeats = usedSeats
	license.CostPerSeat = costPerSeat

	if record[7] != "" {
		expires, err := time.Parse(dateLayout, record[7])
		if err != nil {
			return domain.LicenseRecord{}, fmt.Errorf("invalid expiration_date %q", record[7])
		}
		license.ExpirationDate = &expires
	}

	return license, nil
}
