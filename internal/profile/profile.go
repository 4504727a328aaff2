// Package profile models what was detected about a project: its technologies
// with per-item confidence, and the skills already installed.
package profile

import "fmt"

// ConfidenceLevel grades how strongly a technology was detected.
type ConfidenceLevel int

const (
	ConfidenceLow ConfidenceLevel = iota + 1
	ConfidenceMedium
	ConfidenceHigh
)

func (c ConfidenceLevel) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	}
	return "unknown"
}

// Weight returns the keyword-scoring multiplier for this confidence level.
func (c ConfidenceLevel) Weight() int {
	switch c {
	case ConfidenceHigh:
		return 3
	case ConfidenceMedium:
		return 2
	default:
		return 1
	}
}

// ParseConfidence maps a string to a ConfidenceLevel.
func ParseConfidence(s string) (ConfidenceLevel, error) {
	switch s {
	case "high":
		return ConfidenceHigh, nil
	case "medium":
		return ConfidenceMedium, nil
	case "low":
		return ConfidenceLow, nil
	}
	return 0, fmt.Errorf("unknown confidence level %q", s)
}

// DetectedTechnology is one technology found in a project.
type DetectedTechnology struct {
	Name       string
	Tags       []string // raw tag list; normalized by the matcher
	Confidence ConfidenceLevel
}

// Profile is the full detection result for one project.
type Profile struct {
	Detected  []DetectedTechnology
	Installed []string // skill names that must never be recommended
}

// InstalledSet returns Installed as a membership set.
func (p *Profile) InstalledSet() map[string]struct{} {
	set := make(map[string]struct{}, len(p.Installed))
	for _, name := range p.Installed {
		set[name] = struct{}{}
	}
	return set
}
