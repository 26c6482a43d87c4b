package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Temutjin2k/ubar/internal/domain/models"
	"github.com/Temutjin2k/ubar/internal/domain/types"
	wrap "github.com/Temutjin2k/ubar/pkg/logger/wrapper"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-3-flash-preview"
)

const promptTemplate = `The user wants to find a nightlife destination. User input: %q.
Based on this, suggest 2-3 specific bars, clubs, or event venues.
Return your response as a JSON array of objects with keys: name, address, description, and url.
Focus on venues that would fit a "Mobile Bar" vibe (high energy, social, premium).`

// Client asks the Gemini generateContent endpoint for venue suggestions.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

type Option func(*Client)

func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		model:   DefaultModel,
		baseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: 20 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type (
	part struct {
		Text string `json:"text"`
	}
	content struct {
		Role  string `json:"role,omitempty"`
		Parts []part `json:"parts"`
	}
	generateRequest struct {
		Contents         []content        `json:"contents"`
		GenerationConfig generationConfig `json:"generationConfig"`
	}
	generationConfig struct {
		ResponseMimeType string `json:"responseMimeType"`
	}
	generateResponse struct {
		Candidates []struct {
			Content content `json:"content"`
		} `json:"candidates"`
	}
)

// Suggest returns the venues proposed for text. An answer that is not a JSON array of
// suggestions fails with types.ErrMalformedSuggestion.
func (c *Client) Suggest(ctx context.Context, text string) ([]models.Suggestion, error) {
	const op = "gemini.Suggest"
	ctx = wrap.WithAction(ctx, types.ActionExternalServiceFailed)

	body, err := json.Marshal(generateRequest{
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: fmt.Sprintf(promptTemplate, text)}},
		}},
		GenerationConfig: generationConfig{ResponseMimeType: "application/json"},
	})
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%s: marshal request: %w", op, err))
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, url.PathEscape(c.model))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%s: build request: %w", op, err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%s: request failed: %w", op, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, wrap.Error(ctx, fmt.Errorf("%s: unexpected response status %d: %s", op, resp.StatusCode, strings.TrimSpace(string(msg))))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%s: decode response: %w", op, err))
	}

	return parseSuggestions(answerText(out))
}

func answerText(r generateResponse) string {
	var sb strings.Builder
	if len(r.Candidates) > 0 {
		for _, p := range r.Candidates[0].Content.Parts {
			sb.WriteString(p.Text)
		}
	}
	return sb.String()
}

// parseSuggestions decodes the model answer. An empty answer means no suggestions.
func parseSuggestions(raw string) ([]models.Suggestion, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = "[]"
	}

	var suggestions []models.Suggestion
	if err := json.Unmarshal([]byte(raw), &suggestions); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrMalformedSuggestion, err)
	}
	for i, s := range suggestions {
		if strings.TrimSpace(s.Name) == "" {
			return nil, fmt.Errorf("%w: suggestion %d has no name", types.ErrMalformedSuggestion, i)
		}
	}
	return suggestions, nil
}
