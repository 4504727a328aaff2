package vecindex

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/skillscout/skillscout/internal/catalog"
	"github.com/skillscout/skillscout/internal/embeddings"
)

// BuildOptions controls index building.
type BuildOptions struct {
	OutDir string
	// PrevDir is where an existing index may be reused from. Builds usually
	// write to a temp dir and swap, so the previous index lives elsewhere;
	// empty means OutDir.
	PrevDir   string
	Force     bool // re-embed everything even if text hashes are unchanged
	Normalize bool
}

// Build embeds every candidate and writes an index to opts.OutDir.
//
// When an index already exists there and Force is false, vectors whose
// canonical text is unchanged are reused instead of re-embedded. Applying an
// atomic swap strategy is the caller's responsibility.
func Build(ctx context.Context, prov embeddings.Provider, cands []catalog.Candidate, opts BuildOptions) (*Index, error) {
	if opts.OutDir == "" {
		return nil, fmt.Errorf("out dir is required")
	}
	if len(cands) == 0 {
		return nil, fmt.Errorf("no candidates to index")
	}

	sorted := make([]catalog.Candidate, len(cands))
	copy(sorted, cands)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	prevDir := opts.PrevDir
	if prevDir == "" {
		prevDir = opts.OutDir
	}
	reuse := map[string]Entry{}
	reuseVec := map[string][]float32{}
	// Reuse is only sound when the previous index was produced by the same
	// model with the same normalization.
	if old, err := Load(prevDir); err == nil && !opts.Force &&
		old.Manifest.ModelID == prov.ModelID() && old.Manifest.Normalize == opts.Normalize {
		for i, e := range old.Entries {
			reuse[e.Name] = e
			v := make([]float32, old.Manifest.Dim)
			copy(v, old.Vector(i))
			reuseVec[e.Name] = v
		}
	}

	var (
		entries []Entry
		vectors []float32
		dim     int
	)
	for _, c := range sorted {
		text := CanonicalText(c)
		h := TextHash(text)

		if prev, ok := reuse[c.Name]; ok && prev.TextHash == h && prev.TextHash != "" {
			if v, ok := reuseVec[c.Name]; ok {
				entries = append(entries, prev)
				vectors = append(vectors, v...)
				if dim == 0 {
					dim = len(v)
				}
				continue
			}
		}

		emb, err := prov.Embed(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("cannot embed candidate %s: %w", c.Name, err)
		}
		if dim == 0 {
			dim = len(emb)
		}
		if len(emb) != dim {
			return nil, fmt.Errorf("embedding dim changed mid-run: got %d want %d", len(emb), dim)
		}
		if opts.Normalize {
			emb = NormalizeL2(emb)
		}

		entries = append(entries, Entry{
			Name:      c.Name,
			Category:  c.Category.String(),
			TextHash:  h,
			UpdatedAt: time.Now().UTC().Format(time.RFC3339),
		})
		vectors = append(vectors, emb...)
	}

	manifest := Manifest{
		IndexVersion:  1,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
		ModelID:       prov.ModelID(),
		Dim:           dim,
		Normalize:     opts.Normalize,
		VectorFile:    "vectors.f32",
		CandidateFile: "candidates.jsonl",
	}
	if err := Write(opts.OutDir, manifest, entries, vectors); err != nil {
		return nil, err
	}
	return &Index{Manifest: manifest, Entries: entries, Vectors: vectors}, nil
}
