package finder

import "github.com/quotely/kuraberu/internal/models"

// Fallback rating for a positive price somehow absent from the rating map.
// Defensive only; the map is built from the same candidate set it serves.
const missingPriceRating = ratingMin

// Config holds the engine's tunables.
type Config struct {
	// OtherGenderColumn is the price column gender Other resolves to.
	// The business default is the female column.
	OtherGenderColumn models.Gender
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() *Config {
	return &Config{OtherGenderColumn: models.GenderFemale}
}

// Engine scores and ranks a catalog of raw product records for a customer's
// criteria. It holds no mutable state and is safe for concurrent use; all
// per-request state (rating maps, processed products) is built fresh in
// Compare and never shared.
type Engine struct {
	config *Config
}

// NewEngine creates an engine. A nil config uses DefaultConfig.
func NewEngine(config *Config) *Engine {
	if config == nil {
		config = DefaultConfig()
	}
	if config.OtherGenderColumn == "" {
		config.OtherGenderColumn = models.GenderFemale
	}
	return &Engine{config: config}
}

// PriceColumn resolves the record attribute carrying the premium for the
// given criteria.
func (e *Engine) PriceColumn(c models.Criteria) string {
	return ResolvePriceColumn(c.Region, c.Gender, c.AgeBand, e.config.OtherGenderColumn)
}

// Compare scores every record against the criteria and returns the
// filtered, ranked products. Records with a non-positive premium for the
// resolved price column are excluded entirely. The input slice and its
// records are never modified.
//
// Criteria must have passed Validate; the engine assumes well-formed enums.
func (e *Engine) Compare(records []models.Record, c models.Criteria) []*models.ProcessedProduct {
	column := e.PriceColumn(c)

	type candidate struct {
		rec     models.Record
		price   float64
		details models.FeatureDetails
	}

	candidates := make([]candidate, 0, len(records))
	prices := make([]float64, 0, len(records))
	amounts := make([]float64, 0, len(records))
	for _, rec := range records {
		price := rec.Amount(column)
		if price <= 0 {
			continue
		}
		details := FeatureDetails(rec)
		candidates = append(candidates, candidate{rec: rec, price: price, details: details})
		prices = append(prices, price)
		amounts = append(amounts, details.PersonalEffectsAmount)
	}

	// Both rating maps span the full candidate set for this request.
	priceRatings := BuildPriceRatings(prices)
	effectsRatings := BuildEffectsRatings(amounts)

	products := make([]*models.ProcessedProduct, 0, len(candidates))
	for _, cand := range candidates {
		scores := SubScores(cand.details, effectsRatings)
		avg := WeightedFeatureScore(scores, c.Features)
		priceRating := priceRatings.Rating(cand.price, missingPriceRating)

		products = append(products, &models.ProcessedProduct{
			ID:                  cand.rec.Get(models.AttrID),
			Name:                cand.rec.Get(models.AttrName),
			Provider:            cand.rec.Get(models.AttrProvider),
			Price:               cand.price,
			PriceRating:         priceRating,
			FeatureScores:       scores,
			AverageFeatureScore: avg,
			DynamicFinderScore:  CombineFinderScore(priceRating, avg, c.Priority),
			Features:            cand.details,
			Sponsored:           cand.rec.Sponsored(),
		})
	}

	products = FilterByFeatures(products, c.Features)
	SortProducts(products, c.SortBy)
	return products
}
