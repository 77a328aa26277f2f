package finder

import (
	"testing"

	"github.com/quotely/kuraberu/internal/models"
)

func TestResolvePriceColumn(t *testing.T) {
	tests := []struct {
		name   string
		region models.Region
		gender models.Gender
		age    models.AgeBand
		want   string
	}{
		{"male nsw young", models.RegionNSW, models.GenderMale, models.AgeBandUnder25, "PRICE_M_NSW_1"},
		{"female vic middle", models.RegionVIC, models.GenderFemale, models.AgeBand25To39, "PRICE_F_VIC_2"},
		{"male tas older", models.RegionTAS, models.GenderMale, models.AgeBand40Plus, "PRICE_M_TAS_3"},
		{"other defaults to female column", models.RegionQLD, models.GenderOther, models.AgeBand25To39, "PRICE_F_QLD_2"},
		{"female wa older", models.RegionWA, models.GenderFemale, models.AgeBand40Plus, "PRICE_F_WA_3"},
		{"male sa young", models.RegionSA, models.GenderMale, models.AgeBandUnder25, "PRICE_M_SA_1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePriceColumn(tt.region, tt.gender, tt.age, models.GenderFemale)
			if got != tt.want {
				t.Errorf("ResolvePriceColumn() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolvePriceColumn_Total(t *testing.T) {
	// Every enumerated combination must resolve to a non-empty column.
	regions := []models.Region{models.RegionNSW, models.RegionVIC, models.RegionQLD, models.RegionWA, models.RegionSA, models.RegionTAS}
	genders := []models.Gender{models.GenderMale, models.GenderFemale, models.GenderOther}
	ages := []models.AgeBand{models.AgeBandUnder25, models.AgeBand25To39, models.AgeBand40Plus}

	seen := make(map[string]bool)
	for _, r := range regions {
		for _, g := range genders {
			for _, a := range ages {
				col := ResolvePriceColumn(r, g, a, models.GenderFemale)
				if col == "" {
					t.Fatalf("empty column for %v/%v/%v", r, g, a)
				}
				seen[col] = true
			}
		}
	}
	// Other aliases onto the female columns, so 6 regions x 2 prefixes x 3 bands.
	if len(seen) != 36 {
		t.Errorf("distinct columns = %d, want 36", len(seen))
	}
}

func TestResolvePriceColumn_OtherOverride(t *testing.T) {
	got := ResolvePriceColumn(models.RegionNSW, models.GenderOther, models.AgeBandUnder25, models.GenderMale)
	if got != "PRICE_M_NSW_1" {
		t.Errorf("override to male column: got %q, want PRICE_M_NSW_1", got)
	}
}
