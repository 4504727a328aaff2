package match

import "github.com/skillscout/skillscout/internal/catalog"

// dedupeTier collapses recommendations within one tier that share a dedup key
// (same category plus identical tag set). The kept representative is the
// highest-priority member, ties going to the first encountered; the rest are
// recorded as alternatives in encounter order. Uncategorized recommendations
// always form singleton groups. Merging never crosses tiers; the caller
// invokes this once per tier.
func dedupeTier(recs []Recommendation, byName map[string]catalog.Candidate) []Recommendation {
	type group struct {
		members []int // indices into recs, in encounter order
	}
	var order []string
	groups := make(map[string]*group)

	for i, r := range recs {
		key := byName[r.Name].DedupKey()
		g, ok := groups[key]
		if !ok {
			g = &group{}
			groups[key] = g
			order = append(order, key)
		}
		g.members = append(g.members, i)
	}

	out := make([]Recommendation, 0, len(order))
	for _, key := range order {
		g := groups[key]

		rep := g.members[0]
		for _, m := range g.members[1:] {
			if recs[m].Priority > recs[rep].Priority {
				rep = m
			}
		}

		kept := recs[rep]
		for _, m := range g.members {
			if m == rep {
				continue
			}
			kept.Alternatives = append(kept.Alternatives, Alternative{
				Name:   recs[m].Name,
				Source: recs[m].Source,
			})
		}
		out = append(out, kept)
	}
	return out
}
