package match

import (
	"context"
	"fmt"
	"strings"

	"github.com/skillscout/skillscout/internal/catalog"
	"github.com/skillscout/skillscout/internal/embeddings"
	"github.com/skillscout/skillscout/internal/profile"
	"github.com/skillscout/skillscout/internal/vecindex"
)

// embeddingRank ranks candidates by cosine similarity between the query
// embedding (built from the detected technology names) and each candidate's
// precomputed vector from the index. Candidates missing from the index, or
// not present in byName (already excluded from the match), are skipped.
//
// The second return maps candidate name to raw similarity; the bucketer uses
// it for the embedding-only similarity floor.
func embeddingRank(
	ctx context.Context,
	prov embeddings.Provider,
	idx *vecindex.Index,
	byName map[string]catalog.Candidate,
	detected []profile.DetectedTechnology,
) ([]RankingEntry, map[string]float64, error) {
	names := make([]string, 0, len(detected))
	for _, t := range detected {
		names = append(names, t.Name)
	}
	query := strings.TrimSpace(strings.Join(names, " "))
	if query == "" {
		return nil, nil, nil
	}

	qv, err := prov.Embed(ctx, query)
	if err != nil {
		return nil, nil, err
	}
	if len(qv) != idx.Manifest.Dim {
		return nil, nil, fmt.Errorf("query embedding dim mismatch: got %d want %d", len(qv), idx.Manifest.Dim)
	}
	if idx.Manifest.Normalize {
		qv = vecindex.NormalizeL2(qv)
	}

	sims := make(map[string]float64)
	var entries []RankingEntry
	for i, e := range idx.Entries {
		if _, ok := byName[e.Name]; !ok {
			continue
		}
		score, err := vecindex.Cosine(qv, idx.Vector(i))
		if err != nil {
			return nil, nil, err
		}
		sims[e.Name] = score
		entries = append(entries, RankingEntry{Name: e.Name, Score: score})
	}

	sortRanking(entries, byName)
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, sims, nil
}
