package google

import (
	"context"
	"fmt"
	"strings"

	"github.com/jusunglee/hindify/internal/llm"
	"google.golang.org/genai"
)

// Model represents a Google AI model identifier
type Model string

const (
	ModelGemma3_27B     Model = "gemma-3-27b-it"
	ModelGemini2Flash   Model = "gemini-2.0-flash"
	ModelGemini2_5Flash Model = "gemini-2.5-flash"
)

var DefaultModel Model = ModelGemini2Flash

type Client struct {
	client *genai.Client
	model  Model
}

func NewClient(ctx context.Context, apiKey string, model Model) (*Client, error) {
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create google client: %w", err)
	}

	return &Client{
		client: client,
		model:  model,
	}, nil
}

func (c *Client) Name() string {
	return "google"
}

// supportsSystemInstruction reports whether the model accepts a separate
// system instruction. Gemma models do not.
func (c *Client) supportsSystemInstruction() bool {
	return !strings.HasPrefix(string(c.model), "gemma")
}

func (c *Client) Complete(ctx context.Context, system, prompt string) (string, error) {
	contents := []*genai.Content{{Role: genai.RoleUser, Parts: []*genai.Part{{Text: prompt}}}}

	var config *genai.GenerateContentConfig
	if c.supportsSystemInstruction() {
		config = &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
		}
	} else {
		contents[0].Parts[0].Text = system + "\n\n" + prompt
	}

	result, err := c.client.Models.GenerateContent(ctx, string(c.model), contents, config)
	if err != nil {
		return "", fmt.Errorf("google API call failed: %w", err)
	}

	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("google %s: %w", c.model, llm.ErrEmptyResponse)
	}

	text := result.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("google %s: %w", c.model, llm.ErrEmptyResponse)
	}

	return llm.StripMarkdownCodeBlocks(text), nil
}
