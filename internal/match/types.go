// Package match is the hybrid recommendation engine: weighted keyword-overlap
// scoring, optional embedding similarity, reciprocal rank fusion, confidence
// bucketing, and category-based deduplication.
//
// Everything here is a pure function of its inputs; the only I/O-adjacent
// piece is the injected embeddings provider, and its absence or failure
// degrades to a keyword-only match rather than an error.
package match

import "github.com/skillscout/skillscout/internal/catalog"

// Signal identifies which scorer produced (or contributed to) a ranking.
type Signal uint8

const (
	SignalKeyword Signal = 1 << iota
	SignalEmbedding
)

// Has reports whether s contains the given signal.
func (s Signal) Has(sig Signal) bool { return s&sig != 0 }

// RankingEntry is one row of a single scorer's output. Rank is 1-based and
// strictly increases as Score decreases.
type RankingEntry struct {
	Name  string
	Rank  int
	Score float64
}

// FusedEntry is one row of the fused ranking.
type FusedEntry struct {
	Name    string
	Score   float64
	Signals Signal
}

// Confidence is the tier assigned to a recommendation.
type Confidence int

const (
	ConfidenceLow Confidence = iota + 1
	ConfidenceMedium
	ConfidenceHigh
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	}
	return "unknown"
}

// Alternative is a recommendation that was merged into another's dedup group.
type Alternative struct {
	Name   string         `json:"name"`
	Source catalog.Source `json:"source"`
}

// Recommendation is one skill the engine suggests installing.
type Recommendation struct {
	Name         string           `json:"name"`
	Confidence   Confidence       `json:"-"`
	Reason       string           `json:"reason"`
	Source       catalog.Source   `json:"source"`
	Tags         []catalog.Tag    `json:"tags"`
	Category     catalog.Category `json:"category,omitempty"`
	Priority     int              `json:"priority,omitempty"`
	Alternatives []Alternative    `json:"alternatives,omitempty"`
}

// Result partitions all recommendations into disjoint confidence tiers.
// Skipped lists malformed catalog entries dropped before scoring.
type Result struct {
	High    []Recommendation `json:"high"`
	Medium  []Recommendation `json:"medium"`
	Low     []Recommendation `json:"low"`
	Skipped []string         `json:"skipped,omitempty"`
}
