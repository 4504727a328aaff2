package match

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/skillscout/skillscout/internal/catalog"
	"github.com/skillscout/skillscout/internal/profile"
	"github.com/skillscout/skillscout/internal/vecindex"
)

func mustTags(t *testing.T, raw ...string) []catalog.Tag {
	t.Helper()
	tags := catalog.NormalizeTags(raw)
	if len(tags) != len(raw) {
		t.Fatalf("tags %v did not normalize cleanly", raw)
	}
	return tags
}

func tsCatalog(t *testing.T) []catalog.Candidate {
	t.Helper()
	return []catalog.Candidate{
		{Name: "ts-review", Tags: mustTags(t, "typescript", "ts"), Description: "TypeScript code review", Category: catalog.CategoryHot, Priority: 10, Source: catalog.SourceCurated},
		{Name: "ts-lint", Tags: mustTags(t, "ts", "typescript"), Description: "TypeScript linting", Category: catalog.CategoryHot, Priority: 5, Source: catalog.SourceCurated},
	}
}

func tsProfile() *profile.Profile {
	return &profile.Profile{
		Detected: []profile.DetectedTechnology{
			{Name: "TypeScript", Tags: []string{"typescript", "ts"}, Confidence: profile.ConfidenceHigh},
		},
	}
}

func TestMatch_DedupsEquivalentCandidates(t *testing.T) {
	engine := NewEngine()
	result, err := engine.Match(context.Background(), tsProfile(), tsCatalog(t))
	if err != nil {
		t.Fatalf("Match: %v", err)
	}

	if len(result.High) != 1 {
		t.Fatalf("expected 1 high recommendation, got %d", len(result.High))
	}
	if len(result.Medium) != 0 || len(result.Low) != 0 {
		t.Fatalf("expected empty medium/low tiers, got %d/%d", len(result.Medium), len(result.Low))
	}

	top := result.High[0]
	if top.Name != "ts-review" {
		t.Fatalf("expected ts-review on top, got %s", top.Name)
	}
	if len(top.Alternatives) != 1 || top.Alternatives[0].Name != "ts-lint" {
		t.Fatalf("expected ts-lint as alternative, got %v", top.Alternatives)
	}
	if top.Alternatives[0].Source != catalog.SourceCurated {
		t.Fatalf("alternative lost its source: %v", top.Alternatives[0])
	}
}

func TestMatch_EmptyProfile(t *testing.T) {
	engine := NewEngine()
	result, err := engine.Match(context.Background(), &profile.Profile{}, tsCatalog(t))
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(result.High) != 0 || len(result.Medium) != 0 || len(result.Low) != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
}

func TestMatch_InstalledNeverRecommended(t *testing.T) {
	prof := tsProfile()
	prof.Installed = []string{"ts-review"}

	engine := NewEngine()
	result, err := engine.Match(context.Background(), prof, tsCatalog(t))
	if err != nil {
		t.Fatalf("Match: %v", err)
	}

	for _, rec := range AllRecommendations(result) {
		if rec.Name == "ts-review" {
			t.Fatalf("installed skill recommended: %+v", rec)
		}
		for _, alt := range rec.Alternatives {
			if alt.Name == "ts-review" {
				t.Fatalf("installed skill appeared as alternative: %+v", rec)
			}
		}
	}
	if len(result.High) != 1 || result.High[0].Name != "ts-lint" {
		t.Fatalf("expected ts-lint to be recommended, got %+v", result.High)
	}
}

func TestMatch_Deterministic(t *testing.T) {
	cands := []catalog.Candidate{
		{Name: "go-review", Tags: mustTags(t, "go", "golang"), Category: catalog.CategoryAudit, Priority: 3, Source: catalog.SourceCurated},
		{Name: "docker-hardening", Tags: mustTags(t, "docker", "containers"), Category: catalog.CategoryAudit, Source: catalog.SourceRegistered},
		{Name: "ci-habits", Tags: mustTags(t, "ci", "github-actions"), Category: catalog.CategoryHabits, Source: catalog.SourceCurated},
	}
	prof := &profile.Profile{
		Detected: []profile.DetectedTechnology{
			{Name: "Go", Tags: []string{"go", "golang"}, Confidence: profile.ConfidenceHigh},
			{Name: "Docker", Tags: []string{"docker"}, Confidence: profile.ConfidenceMedium},
			{Name: "GitHub Actions", Tags: []string{"github-actions", "ci"}, Confidence: profile.ConfidenceLow},
		},
	}

	engine := NewEngine()
	first, err := engine.Match(context.Background(), prof, cands)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	for i := 0; i < 20; i++ {
		again, err := engine.Match(context.Background(), prof, cands)
		if err != nil {
			t.Fatalf("Match: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("non-deterministic result:\nfirst: %+v\nagain: %+v", first, again)
		}
	}
}

func TestMatch_TierPartition(t *testing.T) {
	cands := []catalog.Candidate{
		{Name: "go-review", Tags: mustTags(t, "go", "golang"), Priority: 3},
		{Name: "go-habits", Tags: mustTags(t, "go")},
		{Name: "docker-hardening", Tags: mustTags(t, "docker")},
		{Name: "py-audit", Tags: mustTags(t, "python")},
	}
	prof := &profile.Profile{
		Detected: []profile.DetectedTechnology{
			{Name: "Go", Tags: []string{"go", "golang"}, Confidence: profile.ConfidenceHigh},
			{Name: "Docker", Tags: []string{"docker"}, Confidence: profile.ConfidenceLow},
			{Name: "Python", Tags: []string{"python"}, Confidence: profile.ConfidenceLow},
		},
	}

	engine := NewEngine()
	result, err := engine.Match(context.Background(), prof, cands)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}

	seen := map[string]int{}
	for _, rec := range AllRecommendations(result) {
		seen[rec.Name]++
	}
	for name, n := range seen {
		if n != 1 {
			t.Fatalf("candidate %s appears in %d tiers", name, n)
		}
	}
	if len(seen) != 4 {
		t.Fatalf("expected all 4 candidates recommended once, got %v", seen)
	}
}

func TestMatch_DuplicateNamesRejected(t *testing.T) {
	cands := []catalog.Candidate{
		{Name: "dup", Tags: mustTags(t, "go")},
		{Name: "dup", Tags: mustTags(t, "docker")},
	}
	engine := NewEngine()
	_, err := engine.Match(context.Background(), tsProfile(), cands)
	if !errors.Is(err, ErrDuplicateCandidate) {
		t.Fatalf("expected ErrDuplicateCandidate, got %v", err)
	}
}

func TestMatch_MalformedCandidatesSkipped(t *testing.T) {
	cands := []catalog.Candidate{
		{Name: "ts-review", Tags: mustTags(t, "typescript", "ts")},
		{Name: "no-tags"},
		{Tags: mustTags(t, "go")},
	}
	engine := NewEngine()
	result, err := engine.Match(context.Background(), tsProfile(), cands)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(result.Skipped) != 2 {
		t.Fatalf("expected 2 skipped entries, got %v", result.Skipped)
	}
	if len(AllRecommendations(result)) != 1 {
		t.Fatalf("expected 1 recommendation, got %+v", result)
	}
}

// fakeProvider returns a fixed vector per input, or an error when failing.
type fakeProvider struct {
	vectors map[string][]float32
	failing bool
}

func (p *fakeProvider) ModelID() string { return "fake:test" }
func (p *fakeProvider) Dim() int        { return 3 }
func (p *fakeProvider) Embed(_ context.Context, text string) ([]float32, error) {
	if p.failing {
		return nil, errors.New("provider down")
	}
	if v, ok := p.vectors[text]; ok {
		return v, nil
	}
	return []float32{0, 0, 1}, nil
}

func fakeIndex(names ...string) *vecindex.Index {
	idx := &vecindex.Index{
		Manifest: vecindex.Manifest{IndexVersion: 1, ModelID: "fake:test", Dim: 3},
	}
	for i, name := range names {
		idx.Entries = append(idx.Entries, vecindex.Entry{Name: name})
		// Spread candidates around the unit sphere so similarities differ.
		switch i % 3 {
		case 0:
			idx.Vectors = append(idx.Vectors, 1, 0, 0)
		case 1:
			idx.Vectors = append(idx.Vectors, 0, 1, 0)
		default:
			idx.Vectors = append(idx.Vectors, 0, 0, 1)
		}
	}
	return idx
}

func TestMatch_FailingProviderEqualsNoProvider(t *testing.T) {
	cands := tsCatalog(t)
	prof := tsProfile()

	plain, err := NewEngine().Match(context.Background(), prof, cands)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}

	prov := &fakeProvider{failing: true}
	withFailing, err := NewEngine(WithEmbeddings(prov, fakeIndex("ts-review", "ts-lint"))).
		Match(context.Background(), prof, cands)
	if err != nil {
		t.Fatalf("Match with failing provider: %v", err)
	}

	if !reflect.DeepEqual(plain, withFailing) {
		t.Fatalf("failing provider changed the result:\nplain: %+v\nfailing: %+v", plain, withFailing)
	}
}

func TestMatch_EmbeddingOnlyCandidateGetsRanked(t *testing.T) {
	cands := []catalog.Candidate{
		{Name: "ts-review", Tags: mustTags(t, "typescript", "ts")},
		{Name: "frontend-polish", Tags: mustTags(t, "css", "design")},
	}
	prov := &fakeProvider{vectors: map[string][]float32{
		"TypeScript": {1, 0, 0},
	}}
	// frontend-polish gets vector (0,1,0): orthogonal to the query, so it is
	// ranked but with similarity 0.
	idx := fakeIndex("ts-review", "frontend-polish")

	engine := NewEngine(WithEmbeddings(prov, idx))
	result, err := engine.Match(context.Background(), tsProfile(), cands)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}

	all := AllRecommendations(result)
	if len(all) != 2 {
		t.Fatalf("expected both candidates ranked, got %+v", all)
	}
	var embOnly *Recommendation
	for i := range all {
		if all[i].Name == "frontend-polish" {
			embOnly = &all[i]
		}
	}
	if embOnly == nil {
		t.Fatalf("embedding-only candidate missing: %+v", all)
	}
	if embOnly.Confidence == ConfidenceHigh {
		t.Fatalf("zero-similarity embedding-only candidate must not be high confidence unless top-third; got %+v", embOnly)
	}
}
