package finder

import "github.com/quotely/kuraberu/internal/models"

// Sub-score constants for the boolean coverage features.
const (
	coveredScore   = 10.0
	uncoveredScore = 0.0
)

// FeatureDetails extracts the coverage facts from a raw record.
func FeatureDetails(rec models.Record) models.FeatureDetails {
	return models.FeatureDetails{
		Storm:                 rec.YesNo(models.AttrStormCover),
		Windscreen:            rec.YesNo(models.AttrWindscreenCover),
		AccidentalDamage:      rec.YesNo(models.AttrAccidentalDamageCover),
		NewCarReplacement:     rec.YesNo(models.AttrNewCarReplacementCover),
		PersonalEffectsAmount: rec.Amount(models.AttrPersonalEffectsCover),
	}
}

// BuildEffectsRatings builds the rating map for personal-effects amounts
// over the whole candidate set. An amount of exactly 0 gets an explicit 0
// entry rather than falling through to "missing".
func BuildEffectsRatings(amounts []float64) RatingMap {
	m := BuildValueRatings(amounts)
	m[0] = 0
	return m
}

// SubScores computes the five feature sub-scores for one product. The four
// boolean features score 10 or 0 directly; personal effects reads the
// shared effects rating map, defaulting to 0 for unmapped amounts.
func SubScores(details models.FeatureDetails, effectsRatings RatingMap) models.FeatureScores {
	return models.FeatureScores{
		Storm:             boolScore(details.Storm),
		Windscreen:        boolScore(details.Windscreen),
		PersonalEffects:   effectsRatings.Rating(details.PersonalEffectsAmount, 0),
		AccidentalDamage:  boolScore(details.AccidentalDamage),
		NewCarReplacement: boolScore(details.NewCarReplacement),
	}
}

func boolScore(covered bool) float64 {
	if covered {
		return coveredScore
	}
	return uncoveredScore
}
