// Package config owns ~/.skillscout/: the YAML configuration file and the
// dotenv file holding embeddings credentials.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the in-memory representation of ~/.skillscout/config.yaml.
type Config struct {
	// CatalogRoots are directories scanned for curated skills.
	CatalogRoots []string `yaml:"catalog_roots" validate:"required,min=1,dive,required"`
	// RegistryRoots are directories scanned for third-party registered skills.
	RegistryRoots []string `yaml:"registry_roots,omitempty"`
	// SkillDirs are project-relative directories checked for installed skills.
	SkillDirs []string `yaml:"skill_dirs,omitempty"`
	// EmbeddingTimeout bounds the embedding scorer per match, e.g. "15s".
	EmbeddingTimeout string `yaml:"embedding_timeout,omitempty"`
}

var validate = validator.New()

// Dir returns the absolute path to ~/.skillscout/.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".skillscout"), nil
}

// Path returns the absolute path to ~/.skillscout/config.yaml.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// Default returns the Config written on first skillscout init.
func Default() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return &Config{
		CatalogRoots: []string{filepath.Join(dir, "catalog")},
		SkillDirs: []string{
			filepath.Join(".claude", "skills"),
			filepath.Join(".cursor", "skills"),
			filepath.Join(".codeium", "windsurf", "skills"),
			filepath.Join(".gemini", "skills"),
		},
		EmbeddingTimeout: "15s",
	}, nil
}

// Load reads, validates, and path-expands ~/.skillscout/config.yaml.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads a config from an explicit path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	for i, root := range cfg.CatalogRoots {
		cfg.CatalogRoots[i], err = ExpandPath(root)
		if err != nil {
			return nil, err
		}
	}
	for i, root := range cfg.RegistryRoots {
		cfg.RegistryRoots[i], err = ExpandPath(root)
		if err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

// Save marshals cfg and writes it to ~/.skillscout/config.yaml.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}

// ParsedEmbeddingTimeout returns EmbeddingTimeout as a duration, or def when
// unset or unparsable.
func (c *Config) ParsedEmbeddingTimeout(def time.Duration) time.Duration {
	if c.EmbeddingTimeout == "" {
		return def
	}
	d, err := time.ParseDuration(c.EmbeddingTimeout)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
