package cmd

import (
	"testing"

	"github.com/skillscout/skillscout/internal/catalog"
	"github.com/skillscout/skillscout/internal/match"
)

func testResult() *match.Result {
	return &match.Result{
		High: []match.Recommendation{
			{Name: "ts-review", Confidence: match.ConfidenceHigh, Tags: catalog.NormalizeTags([]string{"typescript", "ts"})},
		},
		Medium: []match.Recommendation{
			{Name: "docker-hardening", Confidence: match.ConfidenceMedium, Tags: catalog.NormalizeTags([]string{"docker"})},
		},
		Low: []match.Recommendation{
			{Name: "misc-habits", Confidence: match.ConfidenceLow, Tags: catalog.NormalizeTags([]string{"habits"})},
		},
	}
}

func resetRecommendFlags(t *testing.T) {
	t.Helper()
	prevConf, prevTag := flagRecommendMinConf, flagRecommendTag
	t.Cleanup(func() {
		flagRecommendMinConf, flagRecommendTag = prevConf, prevTag
	})
	flagRecommendMinConf, flagRecommendTag = "", ""
}

func TestSelectRecommendations_Default(t *testing.T) {
	resetRecommendFlags(t)
	recs := selectRecommendations(testResult())
	if len(recs) != 3 {
		t.Fatalf("expected all 3 recommendations, got %d", len(recs))
	}
}

func TestSelectRecommendations_MinConfidence(t *testing.T) {
	resetRecommendFlags(t)
	flagRecommendMinConf = "medium"
	recs := selectRecommendations(testResult())
	if len(recs) != 2 {
		t.Fatalf("expected high+medium, got %d", len(recs))
	}
	for _, r := range recs {
		if r.Confidence == match.ConfidenceLow {
			t.Fatalf("low-confidence recommendation leaked through: %+v", r)
		}
	}
}

func TestSelectRecommendations_TagFilter(t *testing.T) {
	resetRecommendFlags(t)
	flagRecommendTag = "DOCKER"
	recs := selectRecommendations(testResult())
	if len(recs) != 1 || recs[0].Name != "docker-hardening" {
		t.Fatalf("tag filter failed: %+v", recs)
	}
}
