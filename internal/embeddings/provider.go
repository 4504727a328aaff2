// Package embeddings abstracts text-embedding backends. A configured
// provider is an optional capability of the matcher: no provider simply means
// keyword-only matching, never an error.
package embeddings

import (
	"context"
	"fmt"

	"github.com/skillscout/skillscout/internal/config"
)

// Provider embeds text into a fixed-length float vector.
//
// Implementations must be deterministic for the same input text and model.
type Provider interface {
	ModelID() string
	Dim() int
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Config contains the resolved embeddings configuration.
type Config struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}

// LoadConfig resolves embeddings config from environment variables first,
// then ~/.skillscout/.env.
func LoadConfig() (*Config, error) {
	provider, err := config.GetConfigValue("SKILLSCOUT_EMBEDDINGS_PROVIDER")
	if err != nil {
		return nil, err
	}
	model, err := config.GetConfigValue("SKILLSCOUT_EMBEDDINGS_MODEL")
	if err != nil {
		return nil, err
	}
	apiKey, err := config.GetConfigValue("SKILLSCOUT_EMBEDDINGS_API_KEY")
	if err != nil {
		return nil, err
	}
	baseURL, err := config.GetConfigValue("SKILLSCOUT_EMBEDDINGS_BASE_URL")
	if err != nil {
		return nil, err
	}
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}

	return &Config{
		Provider: provider,
		Model:    model,
		APIKey:   apiKey,
		BaseURL:  baseURL,
	}, nil
}

// Configured reports whether a provider is set up at all. An unconfigured
// provider is a first-class state, not an error.
func (c *Config) Configured() bool {
	return c != nil && c.Provider != ""
}

// NewFromConfig returns an embeddings provider.
func NewFromConfig(cfg *Config) (Provider, error) {
	if !cfg.Configured() {
		return nil, fmt.Errorf("embeddings provider is not configured (set SKILLSCOUT_EMBEDDINGS_PROVIDER)")
	}
	switch cfg.Provider {
	case "openai":
		return NewOpenAI(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported embeddings provider: %s", cfg.Provider)
	}
}
