package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/quotely/kuraberu/internal/models"
)

// CSVSource loads records from a CSV file. The first row is the header and
// defines the attribute names.
type CSVSource struct {
	path string
}

// NewCSVSource creates a CSV source for path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

// Load reads the whole file into records.
func (s *CSVSource) Load(ctx context.Context) ([]models.Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return recordsFromRows(rows[0], rows[1:]), nil
}

// recordsFromRows turns a header row plus data rows into records. Header
// names are trimmed and uppercased to match the attribute constants. Rows
// without an ID get a generated one so every product is addressable.
func recordsFromRows(header []string, rows [][]string) []models.Record {
	attrs := make([]string, len(header))
	for i, h := range header {
		attrs[i] = strings.ToUpper(strings.TrimSpace(h))
	}

	records := make([]models.Record, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		rec := make(models.Record, len(attrs))
		for i, attr := range attrs {
			if attr == "" || i >= len(row) {
				continue
			}
			rec[attr] = strings.TrimSpace(row[i])
		}
		if rec.Get(models.AttrID) == "" {
			rec[models.AttrID] = uuid.NewString()
		}
		records = append(records, rec)
	}
	return records
}
