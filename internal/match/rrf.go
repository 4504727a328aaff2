package match

import (
	"sort"

	"github.com/skillscout/skillscout/internal/catalog"
)

// rrfK is the standard RRF smoothing constant: a single top-rank hit
// dominates, but multiple medium-rank hits across signals can still compete.
const rrfK = 60

// fuse merges per-signal rankings via Reciprocal Rank Fusion:
//
//	fused(c) = Σ over rankings r containing c: 1 / (rrfK + rank_r(c))
//
// A candidate absent from a ranking simply contributes nothing for it. With a
// single non-empty ranking the fused order equals that ranking's order, since
// 1/(k+rank) is strictly decreasing in rank and ties fall back to the same
// priority/name rule every scorer uses.
func fuse(rankings map[Signal][]RankingEntry, byName map[string]catalog.Candidate) []FusedEntry {
	scores := make(map[string]float64)
	signals := make(map[string]Signal)

	for sig, ranking := range rankings {
		for _, e := range ranking {
			scores[e.Name] += 1.0 / float64(rrfK+e.Rank)
			signals[e.Name] |= sig
		}
	}

	fused := make([]FusedEntry, 0, len(scores))
	for name, score := range scores {
		fused = append(fused, FusedEntry{Name: name, Score: score, Signals: signals[name]})
	}
	sort.Slice(fused, func(i, j int) bool {
		if fused[i].Score != fused[j].Score {
			return fused[i].Score > fused[j].Score
		}
		return lessByPriorityName(byName, fused[i].Name, fused[j].Name)
	})
	return fused
}
