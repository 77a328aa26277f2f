// Package finder implements the product scoring and ranking engine: price
// column resolution, rating normalization, feature weighting, finder score
// combination, and filtering/sorting. Everything here is pure and
// synchronous; both the HTTP server and the CLI call into this one package
// so the formulas exist in exactly one place.
package finder

import (
	"fmt"

	"github.com/quotely/kuraberu/internal/models"
)

// agePriceSuffix maps each age band to its fixed price column suffix.
var agePriceSuffix = map[models.AgeBand]string{
	models.AgeBandUnder25: "1",
	models.AgeBand25To39:  "2",
	models.AgeBand40Plus:  "3",
}

// genderPricePrefix maps male/female to their price column prefix. Gender
// Other has no column of its own; the caller chooses which prefix it maps
// to (see ResolvePriceColumn).
var genderPricePrefix = map[models.Gender]string{
	models.GenderMale:   "M",
	models.GenderFemale: "F",
}

// ResolvePriceColumn returns the record attribute holding the premium for
// the given region, gender and age band, e.g. "PRICE_F_NSW_2". It is total:
// every enumerated combination resolves to a column.
//
// otherColumn selects the price column used for gender Other; the feeds
// carry no Other column, and routing it to the female column is the
// long-standing business default (Config.OtherGenderColumn, overridable).
func ResolvePriceColumn(region models.Region, gender models.Gender, age models.AgeBand, otherColumn models.Gender) string {
	if gender == models.GenderOther {
		gender = otherColumn
	}
	prefix, ok := genderPricePrefix[gender]
	if !ok {
		prefix = genderPricePrefix[models.GenderFemale]
	}
	return fmt.Sprintf("PRICE_%s_%s_%s", prefix, region, agePriceSuffix[age])
}
