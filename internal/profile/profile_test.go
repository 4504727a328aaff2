package profile

import "testing"

func TestConfidenceWeights(t *testing.T) {
	if ConfidenceHigh.Weight() != 3 || ConfidenceMedium.Weight() != 2 || ConfidenceLow.Weight() != 1 {
		t.Fatalf("unexpected weights: %d/%d/%d",
			ConfidenceHigh.Weight(), ConfidenceMedium.Weight(), ConfidenceLow.Weight())
	}
}

func TestParseConfidence(t *testing.T) {
	for _, s := range []string{"high", "medium", "low"} {
		c, err := ParseConfidence(s)
		if err != nil {
			t.Fatalf("ParseConfidence(%q): %v", s, err)
		}
		if c.String() != s {
			t.Fatalf("round trip failed: %q -> %q", s, c.String())
		}
	}
	if _, err := ParseConfidence("certain"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestInstalledSet(t *testing.T) {
	p := &Profile{Installed: []string{"a", "b", "a"}}
	set := p.InstalledSet()
	if len(set) != 2 {
		t.Fatalf("expected deduplicated set, got %v", set)
	}
}
