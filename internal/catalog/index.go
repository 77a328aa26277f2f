package catalog

import (
	"fmt"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/quotely/kuraberu/internal/models"
)

// indexEntry is the shape indexed per product.
type indexEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
}

// Index is an in-memory full-text index over product name and provider,
// backing the product search endpoint. It is rebuilt from scratch on every
// catalog reload; the catalog is small enough that this is cheap.
type Index struct {
	mu    sync.RWMutex
	index bleve.Index
}

// NewIndex creates an empty index.
func NewIndex() (*Index, error) {
	idx, err := newMemIndex()
	if err != nil {
		return nil, err
	}
	return &Index{index: idx}, nil
}

func newMemIndex() (bleve.Index, error) {
	im := bleve.NewIndexMapping()

	docMapping := bleve.NewDocumentMapping()
	textFieldMapping := bleve.NewTextFieldMapping()
	// Standard analyzer (lowercase + tokenize, no stemming) so provider and
	// product names match the words customers type.
	textFieldMapping.Analyzer = standard.Name
	docMapping.AddFieldMappingsAt("name", textFieldMapping)
	docMapping.AddFieldMappingsAt("provider", textFieldMapping)
	keywordFieldMapping := bleve.NewKeywordFieldMapping()
	docMapping.AddFieldMappingsAt("id", keywordFieldMapping)
	im.DefaultMapping = docMapping

	idx, err := bleve.NewMemOnly(im)
	if err != nil {
		return nil, fmt.Errorf("failed to create search index: %w", err)
	}
	return idx, nil
}

// Rebuild replaces the index contents with the given records.
func (x *Index) Rebuild(records []models.Record) error {
	idx, err := newMemIndex()
	if err != nil {
		return err
	}
	batch := idx.NewBatch()
	for _, rec := range records {
		id := rec.Get(models.AttrID)
		if id == "" {
			continue
		}
		entry := indexEntry{
			ID:       id,
			Name:     rec.Get(models.AttrName),
			Provider: rec.Get(models.AttrProvider),
		}
		if err := batch.Index(id, entry); err != nil {
			return fmt.Errorf("failed to index product %s: %w", id, err)
		}
	}
	if err := idx.Batch(batch); err != nil {
		return fmt.Errorf("failed to apply index batch: %w", err)
	}

	x.mu.Lock()
	old := x.index
	x.index = idx
	x.mu.Unlock()
	if old != nil {
		_ = old.Close()
	}
	return nil
}

// Search returns the IDs of up to limit products matching query, best
// match first.
func (x *Index) Search(query string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 10
	}
	x.mu.RLock()
	idx := x.index
	x.mu.RUnlock()

	req := bleve.NewSearchRequest(bleve.NewMatchQuery(query))
	req.Size = limit
	res, err := idx.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	ids := make([]string, 0, len(res.Hits))
	for _, hit := range res.Hits {
		ids = append(ids, hit.ID)
	}
	return ids, nil
}
