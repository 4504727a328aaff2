package match

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/skillscout/skillscout/internal/catalog"
	"github.com/skillscout/skillscout/internal/embeddings"
	"github.com/skillscout/skillscout/internal/profile"
	"github.com/skillscout/skillscout/internal/vecindex"
)

// DefaultEmbeddingTimeout bounds how long the embedding scorer may take
// before the match proceeds keyword-only.
const DefaultEmbeddingTimeout = 15 * time.Second

// Engine matches a project profile against a candidate catalog. The zero
// configuration (no embeddings) is fully functional; the embedding signal is
// an optional capability injected at construction.
type Engine struct {
	provider embeddings.Provider
	index    *vecindex.Index
	timeout  time.Duration
}

// Option configures an Engine.
type Option func(*Engine)

// WithEmbeddings enables the embedding scorer using the given provider and a
// loaded candidate vector index. Passing nil for either leaves the engine
// keyword-only.
func WithEmbeddings(prov embeddings.Provider, idx *vecindex.Index) Option {
	return func(e *Engine) {
		e.provider = prov
		e.index = idx
	}
}

// WithEmbeddingTimeout overrides DefaultEmbeddingTimeout.
func WithEmbeddingTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// NewEngine builds an Engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{timeout: DefaultEmbeddingTimeout}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Match is the single entry point. It excludes installed skills before
// scoring, runs the keyword and embedding scorers concurrently, fuses their
// rankings, buckets by confidence, and deduplicates per tier.
//
// Duplicate candidate names are a hard error. Malformed candidates (missing
// name, empty tag set) are skipped and reported on the result. An empty
// profile yields an empty result. All intermediate state is allocated per
// call, so concurrent matches need no synchronization.
func (e *Engine) Match(ctx context.Context, prof *profile.Profile, cands []catalog.Candidate) (*Result, error) {
	seen := make(map[string]struct{}, len(cands))
	var skipped []string
	var valid []catalog.Candidate
	for _, c := range cands {
		if c.Name != "" {
			if _, dup := seen[c.Name]; dup {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateCandidate, c.Name)
			}
			seen[c.Name] = struct{}{}
		}
		if c.Name == "" {
			skipped = append(skipped, "(unnamed candidate)")
			continue
		}
		if len(c.Tags) == 0 {
			skipped = append(skipped, c.Name)
			continue
		}
		valid = append(valid, c)
	}

	result := &Result{
		High:    []Recommendation{},
		Medium:  []Recommendation{},
		Low:     []Recommendation{},
		Skipped: skipped,
	}
	if len(prof.Detected) == 0 {
		return result, nil
	}

	// Installed skills are never recommended; drop them before scoring so
	// their absence does not read as "no match".
	installed := prof.InstalledSet()
	eligible := valid[:0:0]
	for _, c := range valid {
		if _, ok := installed[c.Name]; ok {
			continue
		}
		eligible = append(eligible, c)
	}
	byName := candidatesByName(eligible)

	var (
		kwEntries  []RankingEntry
		matched    map[string][]catalog.Tag
		embEntries []RankingEntry
		sims       map[string]float64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		kwEntries, matched = keywordRank(eligible, prof.Detected)
		return nil
	})
	g.Go(func() error {
		if e.provider == nil || e.index == nil {
			return nil
		}
		embCtx, cancel := context.WithTimeout(gctx, e.timeout)
		defer cancel()
		entries, s, err := embeddingRank(embCtx, e.provider, e.index, byName, prof.Detected)
		if err != nil {
			// Degraded signal, not an error: the match proceeds keyword-only.
			return nil
		}
		embEntries, sims = entries, s
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rankings := make(map[Signal][]RankingEntry, 2)
	if len(kwEntries) > 0 {
		rankings[SignalKeyword] = kwEntries
	}
	if len(embEntries) > 0 {
		rankings[SignalEmbedding] = embEntries
	}
	fused := fuse(rankings, byName)

	for pos, fe := range fused {
		cand := byName[fe.Name]
		rec := Recommendation{
			Name:       fe.Name,
			Confidence: bucketFor(fe, pos, len(fused), matched, sims),
			Reason:     reasonFor(fe, matched[fe.Name], sims[fe.Name]),
			Source:     cand.Source,
			Tags:       cand.Tags,
			Category:   cand.Category,
			Priority:   cand.Priority,
		}
		switch rec.Confidence {
		case ConfidenceHigh:
			result.High = append(result.High, rec)
		case ConfidenceMedium:
			result.Medium = append(result.Medium, rec)
		default:
			result.Low = append(result.Low, rec)
		}
	}

	result.High = dedupeTier(result.High, byName)
	result.Medium = dedupeTier(result.Medium, byName)
	result.Low = dedupeTier(result.Low, byName)
	return result, nil
}

// reasonFor builds the human-readable explanation for a recommendation.
func reasonFor(fe FusedEntry, tags []catalog.Tag, sim float64) string {
	var parts []string
	if fe.Signals.Has(SignalKeyword) && len(tags) > 0 {
		strs := make([]string, len(tags))
		for i, t := range tags {
			strs[i] = string(t)
		}
		parts = append(parts, "matched tags: "+strings.Join(strs, ", "))
	}
	if fe.Signals.Has(SignalEmbedding) {
		parts = append(parts, fmt.Sprintf("semantically similar (%.2f)", sim))
	}
	if len(parts) == 0 {
		return "weak signal"
	}
	return strings.Join(parts, "; ")
}
