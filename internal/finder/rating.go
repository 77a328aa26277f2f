package finder

import "github.com/quotely/kuraberu/pkg/utils"

// Rating scale bounds shared by both normalizers.
const (
	ratingMin  = 1.0
	ratingMax  = 9.9
	ratingSpan = ratingMax - ratingMin
)

// RatingMap maps a raw value observed in the current candidate set to its
// rescaled rating. A map is only valid for the candidate set it was built
// from; it is rebuilt for every comparison request.
type RatingMap map[float64]float64

// Rating returns the rating for v, or fallback when v was not observed
// when the map was built.
func (m RatingMap) Rating(v, fallback float64) float64 {
	if r, ok := m[v]; ok {
		return r
	}
	return fallback
}

// BuildPriceRatings rescales the positive values in prices onto the
// [1.0, 9.9] scale with the cheapest price rated highest. Non-positive
// values are skipped; an all-invalid input yields an empty map and callers
// supply their own fallback. When every price is identical the single
// entry rates 9.9.
func BuildPriceRatings(prices []float64) RatingMap {
	valid := positiveValues(prices)
	m := make(RatingMap, len(valid))
	min, max, ok := utils.MinMax(valid)
	if !ok {
		return m
	}
	for _, v := range valid {
		norm := 0.0
		if max != min {
			norm = (v - min) / (max - min)
		}
		m[v] = utils.Round1(ratingMax - norm*ratingSpan)
	}
	return m
}

// BuildValueRatings rescales the positive values in values onto the
// [1.0, 9.9] scale with the largest value rated highest. Non-positive
// values are skipped; an all-invalid input yields an empty map. When every
// value is identical the single entry rates 9.9, mirroring the price
// variant's one-point behavior.
func BuildValueRatings(values []float64) RatingMap {
	valid := positiveValues(values)
	m := make(RatingMap, len(valid))
	min, max, ok := utils.MinMax(valid)
	if !ok {
		return m
	}
	for _, v := range valid {
		norm := 1.0
		if max != min {
			norm = (v - min) / (max - min)
		}
		m[v] = utils.Round1(ratingMin + norm*ratingSpan)
	}
	return m
}

func positiveValues(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if x > 0 {
			out = append(out, x)
		}
	}
	return out
}
