// Package llm wraps the Gemini API behind a one-method client so the
// analysis stages can be exercised against a stub in tests.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/wmutahi/ai-resume-tools/internal/models"
)

// DefaultModel is used when no model name is configured.
const DefaultModel = "gemini-1.5-flash"

// Client sends one prompt and returns one response. The service is treated
// as opaque and non-deterministic; the only contract is "return text that,
// when parsed, matches the requested schema".
type Client interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Close() error
}

// GeminiClient implements Client using the Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a client authenticated with apiKey. An empty
// model name selects the default.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

// GenerateContent sends prompt as a single synchronous call and returns the
// raw response text. Transport failures are reported as TransportError with
// no retry.
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.7)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &models.TransportError{Op: "generate content", Cause: err}
	}

	if len(resp.Candidates) == 0 {
		return "", &models.TransportError{Op: "generate content", Cause: fmt.Errorf("no response candidates returned")}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &models.TransportError{Op: "generate content", Cause: fmt.Errorf("no content in response")}
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", &models.TransportError{Op: "generate content", Cause: fmt.Errorf("no text parts in response")}
	}

	return strings.Join(parts, ""), nil
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}
