package finder

import (
	"sort"

	"github.com/quotely/kuraberu/internal/models"
)

// FilterByFeatures keeps only products covering every selected feature
// (logical AND). An empty selection keeps everything. The input slice is
// not modified.
func FilterByFeatures(products []*models.ProcessedProduct, selected models.FeatureSet) []*models.ProcessedProduct {
	if selected.Len() == 0 {
		return products
	}
	out := make([]*models.ProcessedProduct, 0, len(products))
	for _, p := range products {
		if coversAll(p, selected) {
			out = append(out, p)
		}
	}
	return out
}

func coversAll(p *models.ProcessedProduct, selected models.FeatureSet) bool {
	for f := range selected {
		if !p.Features.Has(f) {
			return false
		}
	}
	return true
}

// SortProducts orders products in place by the given key, descending.
// The sort is stable: ties keep their input order.
func SortProducts(products []*models.ProcessedProduct, key models.SortKey) {
	switch key {
	case models.SortByPriceRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].PriceRating > products[j].PriceRating
		})
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].DynamicFinderScore > products[j].DynamicFinderScore
		})
	}
}

// SortSponsoredFirst orders products with sponsored placements ahead of
// organic ones, each group by finder score descending. This is the
// adapters' default display ordering, not an engine ranking.
func SortSponsoredFirst(products []*models.ProcessedProduct) {
	sort.SliceStable(products, func(i, j int) bool {
		if products[i].Sponsored != products[j].Sponsored {
			return products[i].Sponsored
		}
		return products[i].DynamicFinderScore > products[j].DynamicFinderScore
	})
}

// TopN returns at most n products; n <= 0 means no limit.
func TopN(products []*models.ProcessedProduct, n int) []*models.ProcessedProduct {
	if n <= 0 || n >= len(products) {
		return products
	}
	return products[:n]
}
