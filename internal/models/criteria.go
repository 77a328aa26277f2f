package models

import (
	"fmt"
	"strings"
)

// Region is the customer's state of registration.
type Region string

const (
	RegionNSW Region = "NSW"
	RegionVIC Region = "VIC"
	RegionQLD Region = "QLD"
	RegionWA  Region = "WA"
	RegionSA  Region = "SA"
	RegionTAS Region = "TAS"
)

// ParseRegion parses a region identifier, case-insensitively.
func ParseRegion(s string) (Region, error) {
	r := Region(strings.ToUpper(strings.TrimSpace(s)))
	switch r {
	case RegionNSW, RegionVIC, RegionQLD, RegionWA, RegionSA, RegionTAS:
		return r, nil
	}
	return "", fmt.Errorf("unknown region %q", s)
}

// Gender is the customer's stated gender.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// ParseGender parses a gender identifier, case-insensitively.
func ParseGender(s string) (Gender, error) {
	g := Gender(strings.ToUpper(strings.TrimSpace(s)))
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return g, nil
	}
	return "", fmt.Errorf("unknown gender %q", s)
}

// AgeBand is the customer's age bracket.
type AgeBand string

const (
	AgeBandUnder25 AgeBand = "UNDER_25"
	AgeBand25To39  AgeBand = "25_39"
	AgeBand40Plus  AgeBand = "40_PLUS"
)

// ParseAgeBand parses an age band identifier, case-insensitively.
func ParseAgeBand(s string) (AgeBand, error) {
	a := AgeBand(strings.ToUpper(strings.TrimSpace(s)))
	switch a {
	case AgeBandUnder25, AgeBand25To39, AgeBand40Plus:
		return a, nil
	}
	return "", fmt.Errorf("unknown age band %q", s)
}

// Priority is the customer's dominant ranking concern.
type Priority string

const (
	PriorityPrice    Priority = "PRICE"
	PriorityFeatures Priority = "FEATURES"
)

// ParsePriority parses a priority identifier, case-insensitively.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToUpper(strings.TrimSpace(s)))
	switch p {
	case PriorityPrice, PriorityFeatures:
		return p, nil
	}
	return "", fmt.Errorf("unknown priority %q", s)
}

// SortKey selects the ordering of compare results.
type SortKey string

const (
	// SortByFinderScore orders by dynamic finder score, descending.
	SortByFinderScore SortKey = "finder_score"
	// SortByPriceRating orders by price rating, descending.
	SortByPriceRating SortKey = "price_rating"
)

// ParseSortKey parses a sort key. The empty string is valid and means
// "caller's default ordering".
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case "", SortByFinderScore, SortByPriceRating:
		return k, nil
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

// Criteria is a customer's comparison request.
type Criteria struct {
	Region   Region     `json:"region"`
	Gender   Gender     `json:"gender"`
	AgeBand  AgeBand    `json:"age_band"`
	Priority Priority   `json:"priority"`
	Features FeatureSet `json:"features,omitempty"`
	SortBy   SortKey    `json:"sort_by,omitempty"`
	Limit    int        `json:"limit,omitempty"`
}

// Validate normalizes the enum fields and rejects unknown values. It must
// pass before the criteria reach the scoring engine; the engine assumes
// well-formed input.
func (c *Criteria) Validate() error {
	region, err := ParseRegion(string(c.Region))
	if err != nil {
		return err
	}
	c.Region = region

	gender, err := ParseGender(string(c.Gender))
	if err != nil {
		return err
	}
	c.Gender = gender

	ageBand, err := ParseAgeBand(string(c.AgeBand))
	if err != nil {
		return err
	}
	c.AgeBand = ageBand

	priority, err := ParsePriority(string(c.Priority))
	if err != nil {
		return err
	}
	c.Priority = priority

	sortBy, err := ParseSortKey(string(c.SortBy))
	if err != nil {
		return err
	}
	c.SortBy = sortBy

	if c.Limit < 0 {
		c.Limit = 0
	}
	return nil
}
