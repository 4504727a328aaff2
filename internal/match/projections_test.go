package match

import (
	"reflect"
	"testing"

	"github.com/skillscout/skillscout/internal/catalog"
)

func sampleResult() *Result {
	return &Result{
		High: []Recommendation{
			{Name: "svelte-review", Tags: catalog.NormalizeTags([]string{"svelte", "frontend"})},
		},
		Medium: []Recommendation{
			{Name: "css-polish", Tags: catalog.NormalizeTags([]string{"css"})},
			{Name: "node-audit", Tags: catalog.NormalizeTags([]string{"node", "backend"})},
		},
		Low: []Recommendation{
			{Name: "misc-habits", Tags: catalog.NormalizeTags([]string{"habits"})},
		},
	}
}

func names(recs []Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Name
	}
	return out
}

func TestAllRecommendations_TierOrder(t *testing.T) {
	got := names(AllRecommendations(sampleResult()))
	want := []string{"svelte-review", "css-polish", "node-audit", "misc-habits"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestFilterByConfidence_Inclusion(t *testing.T) {
	r := sampleResult()

	if got := names(FilterByConfidence(r, ConfidenceHigh)); len(got) != 1 {
		t.Fatalf("high filter: got %v", got)
	}
	if got := names(FilterByConfidence(r, ConfidenceMedium)); len(got) != 3 {
		t.Fatalf("medium filter: got %v", got)
	}
	if got := names(FilterByConfidence(r, ConfidenceLow)); len(got) != 4 {
		t.Fatalf("low filter must return everything: got %v", got)
	}
}

func TestFilterByTag_CaseInsensitive(t *testing.T) {
	recs := AllRecommendations(sampleResult())

	upper := FilterByTag(recs, "SVELTE")
	lower := FilterByTag(recs, "svelte")
	if !reflect.DeepEqual(upper, lower) {
		t.Fatalf("case-sensitive tag filter: %v vs %v", names(upper), names(lower))
	}
	if len(upper) != 1 || upper[0].Name != "svelte-review" {
		t.Fatalf("unexpected filter result: %v", names(upper))
	}
}

func TestFilterByTag_FoldsNonASCII(t *testing.T) {
	// Tags are stored case-folded, so "großartig" becomes "grossartig".
	// The needle must go through the same fold for "ß" to find it.
	recs := []Recommendation{
		{Name: "de-review", Tags: catalog.NormalizeTags([]string{"großartig"})},
	}
	got := FilterByTag(recs, "ß")
	if len(got) != 1 || got[0].Name != "de-review" {
		t.Fatalf("folded needle missed folded tag: %v", names(got))
	}
}

func TestFilterByTag_MatchesNameSubstring(t *testing.T) {
	recs := AllRecommendations(sampleResult())
	got := FilterByTag(recs, "audit")
	if len(got) != 1 || got[0].Name != "node-audit" {
		t.Fatalf("expected node-audit via name substring, got %v", names(got))
	}
}

func TestFilterByTag_PreservesOrder(t *testing.T) {
	recs := AllRecommendations(sampleResult())
	got := names(FilterByTag(recs, "s"))
	// Every name except node-audit contains "s"; node-audit's tags don't
	// either, so it is the only one filtered out.
	want := []string{"svelte-review", "css-polish", "misc-habits"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("order not preserved: got %v want %v", got, want)
	}
}
