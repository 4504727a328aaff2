package detect

import "github.com/skillscout/skillscout/internal/profile"

// markerRule maps a project marker file to a detected technology. A marker
// file committed to the project root is strong evidence, so most rules carry
// high confidence; weaker signals come from extension scanning.
type markerRule struct {
	Marker     string // file or directory name relative to the project root
	Name       string
	Tags       []string
	Confidence profile.ConfidenceLevel
}

var markerRules = []markerRule{
	{Marker: "go.mod", Name: "Go", Tags: []string{"go", "golang"}, Confidence: profile.ConfidenceHigh},
	{Marker: "Cargo.toml", Name: "Rust", Tags: []string{"rust", "cargo"}, Confidence: profile.ConfidenceHigh},
	{Marker: "package.json", Name: "Node.js", Tags: []string{"node", "nodejs", "javascript", "js"}, Confidence: profile.ConfidenceHigh},
	{Marker: "tsconfig.json", Name: "TypeScript", Tags: []string{"typescript", "ts"}, Confidence: profile.ConfidenceHigh},
	{Marker: "pyproject.toml", Name: "Python", Tags: []string{"python", "py"}, Confidence: profile.ConfidenceHigh},
	{Marker: "requirements.txt", Name: "Python", Tags: []string{"python", "py"}, Confidence: profile.ConfidenceMedium},
	{Marker: "Gemfile", Name: "Ruby", Tags: []string{"ruby", "rails"}, Confidence: profile.ConfidenceHigh},
	{Marker: "pom.xml", Name: "Java", Tags: []string{"java", "maven"}, Confidence: profile.ConfidenceHigh},
	{Marker: "build.gradle", Name: "Java", Tags: []string{"java", "gradle"}, Confidence: profile.ConfidenceHigh},
	{Marker: "Dockerfile", Name: "Docker", Tags: []string{"docker", "containers"}, Confidence: profile.ConfidenceHigh},
	{Marker: "docker-compose.yml", Name: "Docker Compose", Tags: []string{"docker", "docker-compose", "containers"}, Confidence: profile.ConfidenceMedium},
	{Marker: ".github/workflows", Name: "GitHub Actions", Tags: []string{"github-actions", "ci", "cicd"}, Confidence: profile.ConfidenceMedium},
	{Marker: ".gitlab-ci.yml", Name: "GitLab CI", Tags: []string{"gitlab-ci", "ci", "cicd"}, Confidence: profile.ConfidenceMedium},
	{Marker: "terraform", Name: "Terraform", Tags: []string{"terraform", "iac"}, Confidence: profile.ConfidenceMedium},
}

// packageDepRules inspect package.json dependencies for frameworks that a
// bare package.json marker cannot distinguish.
var packageDepRules = []markerRule{
	{Marker: "typescript", Name: "TypeScript", Tags: []string{"typescript", "ts"}, Confidence: profile.ConfidenceHigh},
	{Marker: "react", Name: "React", Tags: []string{"react", "frontend"}, Confidence: profile.ConfidenceHigh},
	{Marker: "vue", Name: "Vue", Tags: []string{"vue", "frontend"}, Confidence: profile.ConfidenceHigh},
	{Marker: "svelte", Name: "Svelte", Tags: []string{"svelte", "frontend"}, Confidence: profile.ConfidenceHigh},
	{Marker: "next", Name: "Next.js", Tags: []string{"next", "nextjs", "react"}, Confidence: profile.ConfidenceHigh},
	{Marker: "express", Name: "Express", Tags: []string{"express", "backend", "api"}, Confidence: profile.ConfidenceMedium},
	{Marker: "jest", Name: "Jest", Tags: []string{"jest", "testing"}, Confidence: profile.ConfidenceMedium},
	{Marker: "vitest", Name: "Vitest", Tags: []string{"vitest", "testing"}, Confidence: profile.ConfidenceMedium},
}

// extensionRules give weak, low-confidence signals from source files at the
// project root when no marker file claimed the technology.
var extensionRules = map[string]markerRule{
	".py": {Name: "Python", Tags: []string{"python", "py"}, Confidence: profile.ConfidenceLow},
	".rb": {Name: "Ruby", Tags: []string{"ruby"}, Confidence: profile.ConfidenceLow},
	".ts": {Name: "TypeScript", Tags: []string{"typescript", "ts"}, Confidence: profile.ConfidenceLow},
	".go": {Name: "Go", Tags: []string{"go", "golang"}, Confidence: profile.ConfidenceLow},
	".rs": {Name: "Rust", Tags: []string{"rust"}, Confidence: profile.ConfidenceLow},
	".sh": {Name: "Shell", Tags: []string{"shell", "bash"}, Confidence: profile.ConfidenceLow},
}
