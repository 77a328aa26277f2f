package finder

import (
	"github.com/quotely/kuraberu/internal/models"
	"github.com/quotely/kuraberu/pkg/utils"
)

// weightRow holds the weight applied to each selected feature and to each
// of the remaining features, for one selected-count.
type weightRow struct {
	selected float64
	other    float64
}

// featureWeightTable maps the number of distinct selected features to its
// weight row. Each row's weights sum to 1 across the five features; the
// 0-selected and 5-selected rows are both equal fifths.
var featureWeightTable = map[int]weightRow{
	0: {selected: 0.20, other: 0.20},
	1: {selected: 0.60, other: 0.40 / 4},
	2: {selected: 0.40, other: 0.20 / 3},
	3: {selected: 0.30, other: 0.10 / 2},
	4: {selected: 0.25, other: 0},
	5: {selected: 0.20, other: 0},
}

// WeightedFeatureScore combines the five sub-scores into one 0–10 average,
// weighted toward the customer's selected features. With no selection the
// result is the plain mean. Selection membership is what counts: the set
// type makes double-counting impossible. The result is rounded to one
// decimal.
func WeightedFeatureScore(scores models.FeatureScores, selected models.FeatureSet) float64 {
	row, ok := featureWeightTable[selected.Len()]
	if !ok {
		// Unreachable with a five-feature enumeration; fall back to the
		// unweighted mean.
		return utils.Round1(meanFeatureScore(scores))
	}

	total := 0.0
	for _, f := range models.AllFeatures() {
		w := row.other
		if selected.Has(f) {
			w = row.selected
		}
		total += w * scores.Get(f)
	}
	return utils.Round1(total)
}

func meanFeatureScore(scores models.FeatureScores) float64 {
	all := models.AllFeatures()
	total := 0.0
	for _, f := range all {
		total += scores.Get(f)
	}
	return total / float64(len(all))
}
