package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/it-tools/asset-atlas/pkg/models/domain"
)

// CSVReporter flattens a report into CSV rows, one per detail line, for
// spreadsheet import.
type CSVReporter struct {
	writer io.Writer
}

func NewCSVReporter(writer io.Writer) *CSVReporter {
	return &CSVReporter{writer: writer}
}

func (c *CSVReporter) Handle(report *domain.Report) error {
	w := csv.NewWriter(c.writer)

	header := []string{"report", "fleet", "section", "name", "value", "unit", "description"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, section := range report.Sections {
		for _, detail := range section.Details {
			row := []string{
				report.Title,
				report.Fleet,
				section.Title,
				detail.Name,
				fmt.Sprintf("%v", detail.Value),
				detail.Unit,
				detail.Description,
			}
			if err := w.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
	}

	w.Flush()
	return w.Error()
}
