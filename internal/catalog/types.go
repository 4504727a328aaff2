// Package catalog defines the candidate skill model and discovers candidates
// from SKILL.md frontmatter under one or more catalog roots.
package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Category is the closed set of skill categories. An invalid category string
// is rejected at parse time rather than carried around as free text.
type Category int

const (
	CategoryNone Category = iota // unset; never merged with others during dedup
	CategoryMeta
	CategoryAudit
	CategoryPrinciples
	CategoryHabits
	CategoryHot
)

var categoryNames = map[Category]string{
	CategoryNone:       "",
	CategoryMeta:       "meta",
	CategoryAudit:      "audit",
	CategoryPrinciples: "principles",
	CategoryHabits:     "habits",
	CategoryHot:        "hot",
}

func (c Category) String() string {
	return categoryNames[c]
}

// MarshalText implements encoding.TextMarshaler so categories serialize as
// their names in JSON and YAML output.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(b []byte) error {
	parsed, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCategory maps a frontmatter string to a Category. The empty string is
// valid and means "no category".
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, name := range categoryNames {
		if name == s {
			return c, nil
		}
	}
	return CategoryNone, fmt.Errorf("unknown category %q", s)
}

// Source records where a candidate came from.
type Source string

const (
	SourceCurated    Source = "curated"
	SourceRegistered Source = "registered"
)

// Candidate is one catalog entry eligible for recommendation.
// Name is the unique key across the whole catalog.
type Candidate struct {
	Name        string
	Tags        []Tag // normalized, deduplicated, non-empty for a valid candidate
	Description string
	Category    Category
	Priority    int // 0 when unset
	Source      Source
}

// HasTag reports whether the candidate carries the given normalized tag.
func (c Candidate) HasTag(t Tag) bool {
	for _, have := range c.Tags {
		if have == t {
			return true
		}
	}
	return false
}

// DedupKey returns the grouping key used to collapse equivalent candidates:
// category plus the sorted tag set. Candidates without a category get a key
// unique to themselves so they are never merged.
func (c Candidate) DedupKey() string {
	if c.Category == CategoryNone {
		return "\x00" + c.Name
	}
	tags := make([]string, len(c.Tags))
	for i, t := range c.Tags {
		tags[i] = string(t)
	}
	sort.Strings(tags)
	return c.Category.String() + "|" + strings.Join(tags, ",")
}
