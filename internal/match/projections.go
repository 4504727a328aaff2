package match

import (
	"strings"

	"github.com/skillscout/skillscout/internal/catalog"
)

// AllRecommendations flattens a result in fixed tier order (high, medium,
// low), preserving within-tier order.
func AllRecommendations(r *Result) []Recommendation {
	out := make([]Recommendation, 0, len(r.High)+len(r.Medium)+len(r.Low))
	out = append(out, r.High...)
	out = append(out, r.Medium...)
	out = append(out, r.Low...)
	return out
}

// FilterByConfidence returns all recommendations at or above the given tier.
// Requesting low returns everything; requesting high returns only the high
// tier.
func FilterByConfidence(r *Result, min Confidence) []Recommendation {
	var out []Recommendation
	out = append(out, r.High...)
	if min <= ConfidenceMedium {
		out = append(out, r.Medium...)
	}
	if min <= ConfidenceLow {
		out = append(out, r.Low...)
	}
	return out
}

// FilterByTag returns the recommendations whose name or any tag contains the
// given string, case-insensitively. Input order is preserved.
func FilterByTag(recs []Recommendation, tag string) []Recommendation {
	needle := catalog.Fold(strings.TrimSpace(tag))
	if needle == "" {
		return recs
	}
	var out []Recommendation
	for _, r := range recs {
		if strings.Contains(catalog.Fold(r.Name), needle) {
			out = append(out, r)
			continue
		}
		for _, t := range r.Tags {
			if strings.Contains(string(t), needle) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}
