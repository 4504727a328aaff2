package match

import (
	"testing"

	"github.com/skillscout/skillscout/internal/catalog"
)

func namedCandidates(names ...string) map[string]catalog.Candidate {
	m := make(map[string]catalog.Candidate, len(names))
	for _, n := range names {
		m[n] = catalog.Candidate{Name: n}
	}
	return m
}

func ranking(names ...string) []RankingEntry {
	out := make([]RankingEntry, len(names))
	for i, n := range names {
		out[i] = RankingEntry{Name: n, Rank: i + 1, Score: float64(len(names) - i)}
	}
	return out
}

func TestFuse_SingleRankingPreservesOrder(t *testing.T) {
	byName := namedCandidates("a", "b", "c", "d")
	kw := ranking("c", "a", "d", "b")

	fused := fuse(map[Signal][]RankingEntry{SignalKeyword: kw}, byName)

	if len(fused) != len(kw) {
		t.Fatalf("expected %d fused entries, got %d", len(kw), len(fused))
	}
	for i, e := range fused {
		if e.Name != kw[i].Name {
			t.Fatalf("fused order diverged at %d: got %s want %s", i, e.Name, kw[i].Name)
		}
		if !e.Signals.Has(SignalKeyword) || e.Signals.Has(SignalEmbedding) {
			t.Fatalf("wrong signals for %s: %b", e.Name, e.Signals)
		}
	}
}

func TestFuse_Monotonicity(t *testing.T) {
	// a outranks b in both rankings, so its fused score must be >= b's.
	byName := namedCandidates("a", "b", "c")
	rankings := map[Signal][]RankingEntry{
		SignalKeyword:   ranking("a", "c", "b"),
		SignalEmbedding: ranking("c", "a", "b"),
	}

	fused := fuse(rankings, byName)
	scores := make(map[string]float64, len(fused))
	for _, e := range fused {
		scores[e.Name] = e.Score
	}
	if scores["a"] < scores["b"] {
		t.Fatalf("a outranks b everywhere but fused lower: a=%f b=%f", scores["a"], scores["b"])
	}
	if scores["c"] < scores["b"] {
		t.Fatalf("c outranks b everywhere but fused lower: c=%f b=%f", scores["c"], scores["b"])
	}
}

func TestFuse_BothSignalsRecorded(t *testing.T) {
	byName := namedCandidates("a", "b")
	fused := fuse(map[Signal][]RankingEntry{
		SignalKeyword:   ranking("a"),
		SignalEmbedding: ranking("a", "b"),
	}, byName)

	if fused[0].Name != "a" {
		t.Fatalf("expected a first, got %s", fused[0].Name)
	}
	if !fused[0].Signals.Has(SignalKeyword) || !fused[0].Signals.Has(SignalEmbedding) {
		t.Fatalf("a should carry both signals, got %b", fused[0].Signals)
	}
	if fused[1].Signals != SignalEmbedding {
		t.Fatalf("b should be embedding-only, got %b", fused[1].Signals)
	}
}

func TestFuse_TieBreakByPriorityThenName(t *testing.T) {
	byName := map[string]catalog.Candidate{
		"zeta":  {Name: "zeta", Priority: 9},
		"alpha": {Name: "alpha"},
		"beta":  {Name: "beta"},
	}
	// Same rank in disjoint rankings gives identical fused scores.
	fused := fuse(map[Signal][]RankingEntry{
		SignalKeyword:   {{Name: "alpha", Rank: 1}, {Name: "beta", Rank: 2}},
		SignalEmbedding: {{Name: "zeta", Rank: 1}, {Name: "omega", Rank: 2}},
	}, byName)

	// alpha and zeta tie on score; zeta's priority wins.
	if fused[0].Name != "zeta" || fused[1].Name != "alpha" {
		t.Fatalf("tie-break order wrong: %+v", fused)
	}
}
