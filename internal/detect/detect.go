// Package detect builds a project profile: which technologies a project uses
// (graded by marker strength) and which skills it already has installed.
package detect

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/skillscout/skillscout/internal/profile"
)

// Scan inspects projectDir and returns its profile. skillDirs are
// project-relative directories checked for installed skills.
func Scan(projectDir string, skillDirs []string) (*profile.Profile, error) {
	info, err := os.Stat(projectDir)
	if err != nil {
		return nil, fmt.Errorf("cannot stat project directory %s: %w", projectDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project path is not a directory: %s", projectDir)
	}

	p := &profile.Profile{}
	seen := make(map[string]profile.ConfidenceLevel)
	add := func(r markerRule) {
		// Repeat sightings union their tags. Confidence only ever upgrades:
		// a stronger signal for the same technology wins, never downgrades.
		if prev, ok := seen[r.Name]; ok {
			for i := range p.Detected {
				if p.Detected[i].Name != r.Name {
					continue
				}
				p.Detected[i].Tags = unionTags(p.Detected[i].Tags, r.Tags)
				if r.Confidence > prev {
					p.Detected[i].Confidence = r.Confidence
					seen[r.Name] = r.Confidence
				}
				break
			}
			return
		}
		p.Detected = append(p.Detected, profile.DetectedTechnology{
			Name:       r.Name,
			Tags:       append([]string(nil), r.Tags...),
			Confidence: r.Confidence,
		})
		seen[r.Name] = r.Confidence
	}

	for _, r := range markerRules {
		if _, err := os.Stat(filepath.Join(projectDir, r.Marker)); err == nil {
			add(r)
		}
	}

	if deps, err := readPackageDeps(filepath.Join(projectDir, "package.json")); err == nil {
		for _, r := range packageDepRules {
			if _, ok := deps[r.Marker]; ok {
				add(r)
			}
		}
	}

	if err := scanExtensions(projectDir, add); err != nil {
		return nil, err
	}

	installed, err := scanInstalled(projectDir, skillDirs)
	if err != nil {
		return nil, err
	}
	p.Installed = installed
	return p, nil
}

// unionTags appends the tags from extra not already in base, preserving
// first-seen order.
func unionTags(base, extra []string) []string {
	have := make(map[string]struct{}, len(base))
	for _, t := range base {
		have[t] = struct{}{}
	}
	out := base
	for _, t := range extra {
		if _, ok := have[t]; ok {
			continue
		}
		have[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// readPackageDeps returns the union of dependencies and devDependencies from
// a package.json file.
func readPackageDeps(path string) (map[string]struct{}, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pkg struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal(b, &pkg); err != nil {
		return nil, fmt.Errorf("invalid package.json %s: %w", path, err)
	}
	out := make(map[string]struct{}, len(pkg.Dependencies)+len(pkg.DevDependencies))
	for d := range pkg.Dependencies {
		out[d] = struct{}{}
	}
	for d := range pkg.DevDependencies {
		out[d] = struct{}{}
	}
	return out, nil
}

// scanExtensions looks at top-level files only. Deep walking is deliberately
// avoided: vendored trees would drown the signal.
func scanExtensions(projectDir string, add func(markerRule)) error {
	entries, err := os.ReadDir(projectDir)
	if err != nil {
		return fmt.Errorf("cannot read project directory %s: %w", projectDir, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if r, ok := extensionRules[filepath.Ext(e.Name())]; ok {
			add(r)
		}
	}
	return nil
}

// scanInstalled lists skill names found under the project's skill dirs. A
// skill is a subdirectory containing SKILL.md; its directory name is the
// skill name.
func scanInstalled(projectDir string, skillDirs []string) ([]string, error) {
	var out []string
	found := make(map[string]struct{})
	for _, dir := range skillDirs {
		abs := filepath.Join(projectDir, dir)
		entries, err := os.ReadDir(abs)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("cannot read skill dir %s: %w", abs, err)
		}
		for _, e := range entries {
			if !e.IsDir() {
				continue
			}
			if _, err := os.Stat(filepath.Join(abs, e.Name(), "SKILL.md")); err != nil {
				continue
			}
			if _, dup := found[e.Name()]; dup {
				continue
			}
			found[e.Name()] = struct{}{}
			out = append(out, e.Name())
		}
	}
	return out, nil
}
