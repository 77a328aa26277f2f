package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/quotely/kuraberu/internal/models"
)

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLiteSource loads records from a table in a SQLite database. Column
// names become attribute names (uppercased), so the table layout mirrors
// the CSV header contract.
type SQLiteSource struct {
	path  string
	table string
}

// NewSQLiteSource creates a sqlite source reading from table in the
// database at path. The table name must be a plain identifier.
func NewSQLiteSource(path, table string) (*SQLiteSource, error) {
	if table == "" {
		table = "products"
	}
	if !identPattern.MatchString(table) {
		return nil, fmt.Errorf("invalid catalog table name %q", table)
	}
	return &SQLiteSource{path: path, table: table}, nil
}

// Load reads every row of the table into records.
func (s *SQLiteSource) Load(ctx context.Context) ([]models.Record, error) {
	db, err := sql.Open("sqlite3", s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, "SELECT * FROM "+s.table)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog table: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog columns: %w", err)
	}
	attrs := make([]string, len(cols))
	for i, c := range cols {
		attrs[i] = strings.ToUpper(strings.TrimSpace(c))
	}

	var records []models.Record
	values := make([]sql.NullString, len(cols))
	scan := make([]interface{}, len(cols))
	for i := range values {
		scan[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(scan...); err != nil {
			return nil, fmt.Errorf("failed to scan catalog row: %w", err)
		}
		rec := make(models.Record, len(attrs))
		for i, attr := range attrs {
			if values[i].Valid {
				rec[attr] = strings.TrimSpace(values[i].String)
			}
		}
		if rec.Get(models.AttrID) == "" {
			rec[models.AttrID] = uuid.NewString()
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate catalog rows: %w", err)
	}
	return records, nil
}
