package finder

import (
	"github.com/quotely/kuraberu/internal/models"
	"github.com/quotely/kuraberu/pkg/utils"
)

// Blend weights for the finder score: the stated priority dominates.
const (
	primaryWeight   = 0.85
	secondaryWeight = 0.15
)

// CombineFinderScore blends the price rating and the weighted feature
// average into the final 0–10 finder score, weighted toward the customer's
// stated priority, rounded to one decimal. Callers validate priority at
// the boundary; an unknown value here is treated as Features, but
// Criteria.Validate never lets one through.
func CombineFinderScore(priceRating, avgFeatureScore float64, priority models.Priority) float64 {
	if priority == models.PriorityPrice {
		return utils.Round1(primaryWeight*priceRating + secondaryWeight*avgFeatureScore)
	}
	return utils.Round1(primaryWeight*avgFeatureScore + secondaryWeight*priceRating)
}
