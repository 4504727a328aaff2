package embeddings

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const requestTimeout = 30 * time.Second

type openAIProvider struct {
	model   string
	apiKey  string
	baseURL string
	client  *http.Client
	dim     int
}

type embedRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type embedResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// NewOpenAI constructs an OpenAI-compatible embeddings provider speaking the
// POST {baseURL}/embeddings REST protocol. Any endpoint implementing that
// protocol works by overriding SKILLSCOUT_EMBEDDINGS_BASE_URL.
func NewOpenAI(cfg *Config) Provider {
	return &openAIProvider{
		model:   cfg.Model,
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: requestTimeout},
	}
}

func (p *openAIProvider) ModelID() string {
	return "openai:" + p.model
}

// Dim reports the vector dimension observed on the last successful Embed
// call, or 0 before any call.
func (p *openAIProvider) Dim() int {
	return p.dim
}

func (p *openAIProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	switch {
	case p.model == "":
		return nil, fmt.Errorf("embeddings model is not configured (set SKILLSCOUT_EMBEDDINGS_MODEL)")
	case p.apiKey == "":
		return nil, fmt.Errorf("embeddings API key is not configured (set SKILLSCOUT_EMBEDDINGS_API_KEY)")
	case strings.TrimSpace(text) == "":
		return nil, fmt.Errorf("cannot embed empty text")
	}

	payload, err := json.Marshal(embedRequest{Model: p.model, Input: text})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/embeddings", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	var parsed embedResponse
	if jsonErr := json.Unmarshal(body, &parsed); jsonErr == nil && parsed.Error != nil {
		return nil, fmt.Errorf("embeddings request failed: %s (HTTP %d)", parsed.Error.Message, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("embeddings request failed: HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if len(parsed.Data) == 0 || len(parsed.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("embeddings response missing embedding")
	}

	vec := parsed.Data[0].Embedding
	out := make([]float32, len(vec))
	for i, v := range vec {
		out[i] = float32(v)
	}
	p.dim = len(out)
	return out, nil
}
