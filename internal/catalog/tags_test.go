package catalog

import (
	"reflect"
	"testing"
)

func TestNormalizeTag(t *testing.T) {
	cases := []struct {
		in   string
		want Tag
		ok   bool
	}{
		{"TypeScript", "typescript", true},
		{"  Go  ", "go", true},
		{"", "", false},
		{"   ", "", false},
		{"CI/CD", "ci/cd", true},
	}
	for _, tc := range cases {
		got, ok := NormalizeTag(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("NormalizeTag(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestNormalizeTags_DropsDuplicatesKeepsOrder(t *testing.T) {
	got := NormalizeTags([]string{"Go", "golang", " go ", "", "GOLANG"})
	want := []Tag{"go", "golang"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestDedupKey_Uncategorized(t *testing.T) {
	a := Candidate{Name: "a", Tags: NormalizeTags([]string{"go"})}
	b := Candidate{Name: "b", Tags: NormalizeTags([]string{"go"})}
	if a.DedupKey() == b.DedupKey() {
		t.Fatalf("uncategorized candidates must never share a dedup key")
	}
}

func TestDedupKey_SortedTags(t *testing.T) {
	a := Candidate{Name: "a", Tags: NormalizeTags([]string{"x", "y"}), Category: CategoryHot}
	b := Candidate{Name: "b", Tags: NormalizeTags([]string{"y", "x"}), Category: CategoryHot}
	if a.DedupKey() != b.DedupKey() {
		t.Fatalf("tag order must not affect the dedup key: %q vs %q", a.DedupKey(), b.DedupKey())
	}
}

func TestParseCategory(t *testing.T) {
	if c, err := ParseCategory(" Hot "); err != nil || c != CategoryHot {
		t.Fatalf("ParseCategory(Hot): %v, %v", c, err)
	}
	if c, err := ParseCategory(""); err != nil || c != CategoryNone {
		t.Fatalf("ParseCategory(empty): %v, %v", c, err)
	}
	if _, err := ParseCategory("bogus"); err == nil {
		t.Fatalf("expected error for unknown category")
	}
}
