package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Feature identifies one of the five coverage types a customer can mark as
// a priority. The set is closed; anything else is rejected at parse time.
type Feature string

const (
	FeatureStorm             Feature = "STORM"
	FeatureWindscreen        Feature = "WINDSCREEN"
	FeaturePersonalEffects   Feature = "PERSONAL_EFFECTS"
	FeatureAccidentalDamage  Feature = "ACCIDENTAL_DAMAGE"
	FeatureNewCarReplacement Feature = "NEW_CAR_REPLACEMENT"
)

// AllFeatures returns the five coverage features in canonical order.
func AllFeatures() []Feature {
	return []Feature{
		FeatureStorm,
		FeatureWindscreen,
		FeaturePersonalEffects,
		FeatureAccidentalDamage,
		FeatureNewCarReplacement,
	}
}

// ParseFeature parses a feature identifier, case-insensitively.
// Unknown identifiers are an error, never silently dropped.
func ParseFeature(s string) (Feature, error) {
	f := Feature(strings.ToUpper(strings.TrimSpace(s)))
	switch f {
	case FeatureStorm, FeatureWindscreen, FeaturePersonalEffects,
		FeatureAccidentalDamage, FeatureNewCarReplacement:
		return f, nil
	}
	return "", fmt.Errorf("unknown feature %q", s)
}

// FeatureSet is a set of selected features. Membership is what counts:
// adding a feature twice is the same as adding it once.
type FeatureSet map[Feature]struct{}

// NewFeatureSet builds a set from the given features.
func NewFeatureSet(features ...Feature) FeatureSet {
	s := make(FeatureSet, len(features))
	for _, f := range features {
		s[f] = struct{}{}
	}
	return s
}

// ParseFeatureSet parses a list of identifiers into a set.
// Duplicates collapse; unknown identifiers fail the whole parse.
func ParseFeatureSet(names []string) (FeatureSet, error) {
	s := make(FeatureSet, len(names))
	for _, name := range names {
		f, err := ParseFeature(name)
		if err != nil {
			return nil, err
		}
		s[f] = struct{}{}
	}
	return s, nil
}

// Has reports whether f is in the set.
func (s FeatureSet) Has(f Feature) bool {
	_, ok := s[f]
	return ok
}

// Len returns the number of distinct features in the set.
func (s FeatureSet) Len() int {
	return len(s)
}

// Slice returns the members in canonical order.
func (s FeatureSet) Slice() []Feature {
	out := make([]Feature, 0, len(s))
	for f := range s {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// MarshalJSON encodes the set as a sorted array of identifiers.
func (s FeatureSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Slice())
}

// UnmarshalJSON decodes an array of identifiers, collapsing duplicates and
// rejecting unknown values.
func (s *FeatureSet) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	parsed, err := ParseFeatureSet(names)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
