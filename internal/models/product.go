package models

// FeatureDetails carries the coverage facts used for filtering and display.
type FeatureDetails struct {
	Storm                 bool    `json:"storm"`
	Windscreen            bool    `json:"windscreen"`
	AccidentalDamage      bool    `json:"accidental_damage"`
	NewCarReplacement     bool    `json:"new_car_replacement"`
	PersonalEffectsAmount float64 `json:"personal_effects_amount"`
}

// Has reports whether the product covers f. Personal effects counts as
// covered when the insured amount is positive.
func (d FeatureDetails) Has(f Feature) bool {
	switch f {
	case FeatureStorm:
		return d.Storm
	case FeatureWindscreen:
		return d.Windscreen
	case FeatureAccidentalDamage:
		return d.AccidentalDamage
	case FeatureNewCarReplacement:
		return d.NewCarReplacement
	case FeaturePersonalEffects:
		return d.PersonalEffectsAmount > 0
	}
	return false
}

// FeatureScores holds the five per-feature sub-scores. Boolean features
// score 0 or 10; personal effects is scaled against the candidate set.
type FeatureScores struct {
	Storm             float64 `json:"storm"`
	Windscreen        float64 `json:"windscreen"`
	PersonalEffects   float64 `json:"personal_effects"`
	AccidentalDamage  float64 `json:"accidental_damage"`
	NewCarReplacement float64 `json:"new_car_replacement"`
}

// Get returns the sub-score for f, or 0 for an unknown feature.
func (s FeatureScores) Get(f Feature) float64 {
	switch f {
	case FeatureStorm:
		return s.Storm
	case FeatureWindscreen:
		return s.Windscreen
	case FeaturePersonalEffects:
		return s.PersonalEffects
	case FeatureAccidentalDamage:
		return s.AccidentalDamage
	case FeatureNewCarReplacement:
		return s.NewCarReplacement
	}
	return 0
}

// ProcessedProduct is one scored catalog entry. It is derived fresh for
// each comparison request and read-only once built.
type ProcessedProduct struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Provider string `json:"provider"`

	Price               float64        `json:"price"`
	PriceRating         float64        `json:"price_rating"`
	FeatureScores       FeatureScores  `json:"feature_scores"`
	AverageFeatureScore float64        `json:"average_feature_score"`
	DynamicFinderScore  float64        `json:"dynamic_finder_score"`
	Features            FeatureDetails `json:"features"`

	// Sponsored is carried through from the raw record for the adapters'
	// display ordering; the engine itself never ranks on it.
	Sponsored bool `json:"sponsored"`
}

// CompareResponse is the result of one comparison request.
type CompareResponse struct {
	Products  []*ProcessedProduct `json:"products"`
	Total     int                 `json:"total"`
	QueryTime int64               `json:"query_time_ms"`
	Criteria  Criteria            `json:"criteria"`
}
