// Package catalog owns loading and holding the raw product records. The
// scoring engine never reads a file itself; it is handed an immutable
// snapshot from here. Reloads swap the snapshot atomically, so in-flight
// comparisons keep the records they started with.
package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/quotely/kuraberu/internal/config"
	"github.com/quotely/kuraberu/internal/models"
	"go.uber.org/zap"
)

// Source loads raw product records from some backing store.
type Source interface {
	Load(ctx context.Context) ([]models.Record, error)
}

// NewSource builds a Source from the catalog configuration. The format is
// taken from cfg.Format, or inferred from the path extension when unset.
func NewSource(cfg config.CatalogConfig) (Source, error) {
	format := strings.ToLower(cfg.Format)
	if format == "" {
		switch strings.ToLower(filepath.Ext(cfg.Path)) {
		case ".csv":
			format = "csv"
		case ".xlsx":
			format = "xlsx"
		case ".db", ".sqlite", ".sqlite3":
			format = "sqlite"
		}
	}
	switch format {
	case "csv":
		return NewCSVSource(cfg.Path), nil
	case "xlsx":
		return NewExcelSource(cfg.Path), nil
	case "sqlite":
		return NewSQLiteSource(cfg.Path, cfg.Table)
	}
	return nil, fmt.Errorf("cannot determine catalog format for %q", cfg.Path)
}

// Catalog holds the current record snapshot.
type Catalog struct {
	source Source
	logger *zap.Logger

	mu      sync.RWMutex
	records []models.Record
}

// New creates a catalog over source. Call Load before serving.
func New(source Source, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{source: source, logger: logger}
}

// Load reads all records from the source and swaps them in as the current
// snapshot. Safe to call concurrently with Records.
func (c *Catalog) Load(ctx context.Context) error {
	records, err := c.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	c.mu.Lock()
	c.records = records
	c.mu.Unlock()
	c.logger.Info("catalog loaded", zap.Int("records", len(records)))
	return nil
}

// Records returns the current snapshot. Callers must treat the slice and
// its records as read-only; a reload replaces the snapshot rather than
// mutating it.
func (c *Catalog) Records() []models.Record {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.records
}

// Len returns the number of records in the current snapshot.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// Find returns the record whose ID attribute equals id, or nil.
func (c *Catalog) Find(id string) models.Record {
	for _, rec := range c.Records() {
		if rec.Get(models.AttrID) == id {
			return rec
		}
	}
	return nil
}
