// Package cli provides output formatting for the Kuraberu command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/quotely/kuraberu/internal/models"
)

// OutputFormat is the format for command output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// ParseOutputFormat parses a format flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case "", OutputText:
		return OutputText, nil
	case OutputJSON:
		return OutputJSON, nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// WriteCompareResults writes a comparison response to w in the given format.
func WriteCompareResults(w io.Writer, response *models.CompareResponse, format OutputFormat) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	}
	writeCompareText(w, response)
	return nil
}

func writeCompareText(w io.Writer, response *models.CompareResponse) {
	fmt.Fprintf(w, "\n%d products for %s / %s / %s (priority: %s) in %dms\n\n",
		response.Total,
		response.Criteria.Region, response.Criteria.Gender, response.Criteria.AgeBand,
		response.Criteria.Priority, response.QueryTime)

	for i, p := range response.Products {
		fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
		marker := ""
		if p.Sponsored {
			marker = " [sponsored]"
		}
		fmt.Fprintf(w, "#%d %s (%s)%s\n", i+1, p.Name, p.Provider, marker)
		fmt.Fprintf(w, "   Price: $%.2f (rating %.1f) | Features: %.1f | Finder score: %.1f\n",
			p.Price, p.PriceRating, p.AverageFeatureScore, p.DynamicFinderScore)
		fmt.Fprintf(w, "   Coverage: %s\n", coverageSummary(p))
	}
	fmt.Fprintln(w)
}

func coverageSummary(p *models.ProcessedProduct) string {
	out := ""
	add := func(label string, covered bool) {
		mark := "✗"
		if covered {
			mark = "✓"
		}
		if out != "" {
			out += "  "
		}
		out += mark + " " + label
	}
	add("storm", p.Features.Storm)
	add("windscreen", p.Features.Windscreen)
	add("accidental damage", p.Features.AccidentalDamage)
	add("new car", p.Features.NewCarReplacement)
	if p.Features.PersonalEffectsAmount > 0 {
		out += fmt.Sprintf("  ✓ personal effects ($%.0f)", p.Features.PersonalEffectsAmount)
	} else {
		out += "  ✗ personal effects"
	}
	return out
}

// WriteProductList writes raw catalog records as a short listing.
func WriteProductList(w io.Writer, records []models.Record, format OutputFormat) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}
	fmt.Fprintf(w, "\n%d products\n\n", len(records))
	for _, rec := range records {
		fmt.Fprintf(w, "%-12s %s (%s)\n",
			rec.Get(models.AttrID), rec.Get(models.AttrName), rec.Get(models.AttrProvider))
	}
	fmt.Fprintln(w)
	return nil
}
