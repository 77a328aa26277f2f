// Package models defines the data types shared by the finder engine, the
// catalog loader, and the HTTP/CLI adapters.
package models

import (
	"strconv"
	"strings"
)

// Well-known record attribute names. A Record may carry more attributes than
// these (one price attribute per gender/region/age combination, see
// finder.ResolvePriceColumn); unknown attributes are ignored.
const (
	AttrID       = "ID"
	AttrName     = "NAME"
	AttrProvider = "PROVIDER"

	AttrStormCover             = "STORM_COVER"
	AttrWindscreenCover        = "WINDSCREEN_COVER"
	AttrAccidentalDamageCover  = "ACCIDENTAL_DAMAGE_COVER"
	AttrNewCarReplacementCover = "NEW_CAR_REPLACEMENT_COVER"
	AttrPersonalEffectsCover   = "PERSONAL_EFFECTS_COVER"

	AttrSponsored = "SPONSORED"
)

// Record is one raw product row: a flat attribute name to string value
// mapping supplied by the catalog loader. Records are treated as immutable;
// nothing downstream of the loader writes to one.
type Record map[string]string

// Get returns the value for attr, or "" when absent.
func (r Record) Get(attr string) string {
	return r[attr]
}

// YesNo reports whether attr holds a case-insensitive "yes".
// Any other value, including absence, is false.
func (r Record) YesNo(attr string) bool {
	return strings.EqualFold(strings.TrimSpace(r[attr]), "yes")
}

// Amount parses attr as a number. Unparseable or missing values resolve
// to 0 rather than an error; raw feeds routinely carry blanks.
func (r Record) Amount(attr string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(r[attr]), 64)
	if err != nil {
		return 0
	}
	return v
}

// Sponsored reports whether the row is flagged as sponsored placement.
// The flag is injected by the feed; it is never computed.
func (r Record) Sponsored() bool {
	return r.YesNo(AttrSponsored)
}
