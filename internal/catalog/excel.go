package catalog

import (
	"context"
	"fmt"

	"github.com/quotely/kuraberu/internal/models"
	"github.com/xuri/excelize/v2"
)

// ExcelSource loads records from the first sheet of an xlsx workbook,
// using the same header contract as the CSV source. Providers commonly
// hand over rate tables as spreadsheets.
type ExcelSource struct {
	path string
}

// NewExcelSource creates an xlsx source for path.
func NewExcelSource(path string) *ExcelSource {
	return &ExcelSource{path: path}
}

// Load reads the first sheet into records.
func (s *ExcelSource) Load(ctx context.Context) ([]models.Record, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return recordsFromRows(rows[0], rows[1:]), nil
}
