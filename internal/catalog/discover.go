package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// SkippedEntry records a catalog entry that could not become a valid
// Candidate. Malformed entries never abort discovery; the caller decides
// whether to surface them.
type SkippedEntry struct {
	Path   string
	Reason string
}

// Discovery is the result of scanning catalog roots.
type Discovery struct {
	Candidates []Candidate
	Skipped    []SkippedEntry
}

// Discover scans root/*/SKILL.md and returns parsed candidates tagged with
// the given source. A missing root yields an empty discovery, not an error.
func Discover(root string, source Source) (*Discovery, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return &Discovery{}, nil
		}
		return nil, fmt.Errorf("cannot stat catalog root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("catalog root is not a directory: %s", root)
	}

	d := &Discovery{}
	walkFn := func(path string, de fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if de.IsDir() || de.Name() != "SKILL.md" {
			return nil
		}

		b, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("cannot read %s: %w", path, err)
		}
		cand, reason := parseCandidate(string(b), filepath.Base(filepath.Dir(path)), source)
		if reason != "" {
			d.Skipped = append(d.Skipped, SkippedEntry{Path: path, Reason: reason})
			return nil
		}
		d.Candidates = append(d.Candidates, cand)
		return nil
	}

	if err := filepath.WalkDir(root, walkFn); err != nil {
		return nil, fmt.Errorf("cannot scan catalog root %s: %w", root, err)
	}
	return d, nil
}

// DiscoverAll merges curated and registered roots in order. Curated roots are
// scanned first so curated entries precede registered ones in the catalog.
func DiscoverAll(curated, registered []string) (*Discovery, error) {
	out := &Discovery{}
	for _, root := range curated {
		d, err := Discover(root, SourceCurated)
		if err != nil {
			return nil, err
		}
		out.Candidates = append(out.Candidates, d.Candidates...)
		out.Skipped = append(out.Skipped, d.Skipped...)
	}
	for _, root := range registered {
		d, err := Discover(root, SourceRegistered)
		if err != nil {
			return nil, err
		}
		out.Candidates = append(out.Candidates, d.Candidates...)
		out.Skipped = append(out.Skipped, d.Skipped...)
	}
	return out, nil
}

// parseCandidate builds a Candidate from SKILL.md content. The returned
// reason is non-empty when the entry is malformed and must be skipped.
func parseCandidate(content, dirName string, source Source) (Candidate, string) {
	fm, body := splitFrontmatter(content)

	name := strings.TrimSpace(fm["name"])
	if name == "" {
		name = dirName
	}
	if name == "" {
		return Candidate{}, "missing name"
	}

	rawTags := fm["tags"]
	if rawTags == "" {
		rawTags = fm["keywords"]
	}
	tags := NormalizeTags(SplitTagList(rawTags))
	if len(tags) == 0 {
		return Candidate{}, "no tags after normalization"
	}

	cat, err := ParseCategory(fm["category"])
	if err != nil {
		return Candidate{}, err.Error()
	}

	priority := 0
	if p := strings.TrimSpace(fm["priority"]); p != "" {
		priority, err = strconv.Atoi(p)
		if err != nil {
			return Candidate{}, fmt.Sprintf("invalid priority %q", p)
		}
	}

	desc := strings.TrimSpace(fm["description"])
	if desc == "" {
		desc = inferDescriptionFromBody(body)
	}

	return Candidate{
		Name:        name,
		Tags:        tags,
		Description: desc,
		Category:    cat,
		Priority:    priority,
		Source:      source,
	}, ""
}

func splitFrontmatter(content string) (map[string]string, string) {
	s := strings.TrimPrefix(content, "\ufeff")
	if !strings.HasPrefix(s, "---") {
		return map[string]string{}, content
	}

	parts := strings.SplitN(s, "---", 3)
	if len(parts) < 3 {
		return map[string]string{}, content
	}

	fmText := strings.TrimSpace(parts[1])
	body := strings.TrimPrefix(parts[2], "\n")

	var raw map[string]any
	if err := yaml.Unmarshal([]byte(fmText), &raw); err != nil {
		return map[string]string{}, content
	}

	out := make(map[string]string)
	for k, v := range raw {
		switch tv := v.(type) {
		case string:
			out[strings.ToLower(k)] = tv
		case int:
			out[strings.ToLower(k)] = strconv.Itoa(tv)
		case []any:
			// tags may be a YAML sequence
			items := make([]string, 0, len(tv))
			for _, it := range tv {
				if sv, ok := it.(string); ok {
					items = append(items, sv)
				}
			}
			out[strings.ToLower(k)] = strings.Join(items, ", ")
		}
	}
	return out, body
}

func inferDescriptionFromBody(body string) string {
	for _, ln := range strings.Split(body, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" || strings.HasPrefix(ln, "#") {
			continue
		}
		return ln
	}
	return ""
}
