package match

import "github.com/skillscout/skillscout/internal/catalog"

// Bucketing policy constants. Confidence derives from how a candidate was
// discovered, not just its fused score: a strong exact-tag hit is high
// confidence even without an embedding signal.
//
//   - High:   ≥2 distinct keyword-matched tags, or top third of the fused order.
//   - Medium: exactly 1 matched tag, or embedding-only with similarity at or
//     above similarityFloor, or middle third of the fused order.
//   - Low:    everything else.
const similarityFloor = 0.30

// bucketFor assigns a tier to the fused entry at position pos (0-based) of a
// fused list of length n.
func bucketFor(e FusedEntry, pos, n int, matchedTags map[string][]catalog.Tag, sims map[string]float64) Confidence {
	third := (n + 2) / 3 // ceiling division

	tags := len(matchedTags[e.Name])
	if tags >= 2 || pos < third {
		return ConfidenceHigh
	}

	embeddingOnly := e.Signals == SignalEmbedding
	if tags == 1 || (embeddingOnly && sims[e.Name] >= similarityFloor) || pos < 2*third {
		return ConfidenceMedium
	}
	return ConfidenceLow
}
