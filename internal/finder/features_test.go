package finder

import (
	"testing"

	"github.com/quotely/kuraberu/internal/models"
)

func TestFeatureDetails(t *testing.T) {
	rec := models.Record{
		models.AttrStormCover:             "Yes",
		models.AttrWindscreenCover:        "no",
		models.AttrAccidentalDamageCover:  "YES",
		models.AttrNewCarReplacementCover: "",
		models.AttrPersonalEffectsCover:   "750",
	}

	d := FeatureDetails(rec)
	if !d.Storm || d.Windscreen || !d.AccidentalDamage || d.NewCarReplacement {
		t.Errorf("unexpected details %+v", d)
	}
	if d.PersonalEffectsAmount != 750 {
		t.Errorf("PersonalEffectsAmount = %v, want 750", d.PersonalEffectsAmount)
	}
}

func TestSubScores_BooleansAreConstant(t *testing.T) {
	d := models.FeatureDetails{
		Storm:             true,
		Windscreen:        false,
		AccidentalDamage:  true,
		NewCarReplacement: false,
	}
	scores := SubScores(d, BuildEffectsRatings(nil))

	if scores.Storm != 10 || scores.AccidentalDamage != 10 {
		t.Errorf("covered features should score 10: %+v", scores)
	}
	if scores.Windscreen != 0 || scores.NewCarReplacement != 0 {
		t.Errorf("uncovered features should score 0: %+v", scores)
	}
}

func TestSubScores_PersonalEffectsScaled(t *testing.T) {
	ratings := BuildEffectsRatings([]float64{200, 1000})

	low := SubScores(models.FeatureDetails{PersonalEffectsAmount: 200}, ratings)
	high := SubScores(models.FeatureDetails{PersonalEffectsAmount: 1000}, ratings)
	if low.PersonalEffects != 1.0 {
		t.Errorf("min amount sub-score = %v, want 1.0", low.PersonalEffects)
	}
	if high.PersonalEffects != 9.9 {
		t.Errorf("max amount sub-score = %v, want 9.9", high.PersonalEffects)
	}
}

func TestBuildEffectsRatings_ZeroEntry(t *testing.T) {
	ratings := BuildEffectsRatings([]float64{0, 200, 1000})

	// Zero is an explicit entry, not a fallthrough to missing.
	if got := ratings.Rating(0, -1); got != 0 {
		t.Errorf("rating(0) = %v, want explicit 0", got)
	}

	// An amount never observed defaults to the caller's fallback.
	scores := SubScores(models.FeatureDetails{PersonalEffectsAmount: 555}, ratings)
	if scores.PersonalEffects != 0 {
		t.Errorf("unmapped amount sub-score = %v, want 0", scores.PersonalEffects)
	}
}
