package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// Tag is a normalized tag: case-folded, whitespace-trimmed, never empty.
type Tag string

var tagFolder = cases.Fold()

// Fold case-folds a string with the same caser used for tag normalization,
// so lookups against normalized tags agree on non-ASCII case pairs.
func Fold(s string) string {
	return tagFolder.String(s)
}

// NormalizeTag canonicalizes a raw tag. The second return is false when the
// tag is empty after normalization and must be dropped.
func NormalizeTag(raw string) (Tag, bool) {
	s := tagFolder.String(strings.TrimSpace(raw))
	if s == "" {
		return "", false
	}
	return Tag(s), true
}

// NormalizeTags canonicalizes a list of raw tags, dropping empties and
// collapsing duplicates while preserving first-seen order.
func NormalizeTags(raw []string) []Tag {
	seen := make(map[Tag]struct{}, len(raw))
	out := make([]Tag, 0, len(raw))
	for _, r := range raw {
		t, ok := NormalizeTag(r)
		if !ok {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// TagSet builds a membership set from a normalized tag list.
func TagSet(tags []Tag) map[Tag]struct{} {
	set := make(map[Tag]struct{}, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}
	return set
}

// SplitTagList parses a comma- or whitespace-separated frontmatter tag field.
func SplitTagList(s string) []string {
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			out = append(out, strings.TrimSpace(p))
		}
		return out
	}
	return strings.Fields(s)
}
