package match

import (
	"sort"

	"github.com/skillscout/skillscout/internal/catalog"
	"github.com/skillscout/skillscout/internal/profile"
)

// keywordRank scores every candidate by weighted tag overlap with the
// detected technologies:
//
//	score(c) = Σ over technologies t: weight(t.Confidence) × |tags(t) ∩ tags(c)|
//
// Candidates with score 0 do not appear in the ranking. The second return
// maps each ranked candidate to the distinct tags it matched, in candidate
// tag order; the bucketer and reason strings both need it.
func keywordRank(cands []catalog.Candidate, detected []profile.DetectedTechnology) ([]RankingEntry, map[string][]catalog.Tag) {
	// Normalize each technology's tag list once.
	techTags := make([]map[catalog.Tag]struct{}, len(detected))
	for i, t := range detected {
		techTags[i] = catalog.TagSet(catalog.NormalizeTags(t.Tags))
	}

	matched := make(map[string][]catalog.Tag)
	var entries []RankingEntry
	for _, c := range cands {
		score := 0
		seen := make(map[catalog.Tag]struct{})
		for i, t := range detected {
			overlap := 0
			for _, tag := range c.Tags {
				if _, ok := techTags[i][tag]; ok {
					overlap++
					if _, dup := seen[tag]; !dup {
						seen[tag] = struct{}{}
						matched[c.Name] = append(matched[c.Name], tag)
					}
				}
			}
			score += t.Confidence.Weight() * overlap
		}
		if score == 0 {
			continue
		}
		entries = append(entries, RankingEntry{Name: c.Name, Score: float64(score)})
	}

	sortRanking(entries, candidatesByName(cands))
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, matched
}

// sortRanking orders entries by score (descending), then priority
// (descending, unset = 0), then name (ascending) for full determinism.
func sortRanking(entries []RankingEntry, byName map[string]catalog.Candidate) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return lessByPriorityName(byName, entries[i].Name, entries[j].Name)
	})
}

// lessByPriorityName is the shared tie-break: higher priority first, then
// lexical name order.
func lessByPriorityName(byName map[string]catalog.Candidate, a, b string) bool {
	pa := byName[a].Priority
	pb := byName[b].Priority
	if pa != pb {
		return pa > pb
	}
	return a < b
}

func candidatesByName(cands []catalog.Candidate) map[string]catalog.Candidate {
	m := make(map[string]catalog.Candidate, len(cands))
	for _, c := range cands {
		m[c.Name] = c
	}
	return m
}
