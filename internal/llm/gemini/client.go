package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"careercoach-backend/internal/llm"
)

// DefaultModel is the Gemini model used when LLM_MODEL is unset.
const DefaultModel = "gemini-2.0-flash"

// Client implements llm.Client using the Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient constructs a new Gemini client.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{client: client, model: model}, nil
}

// Complete sends the prompt with a system instruction and returns the text.
func (c *Client) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	content := strings.TrimSpace(resp.Text())
	if content == "" {
		return "", llm.ErrEmptyCompletion
	}
	return content, nil
}

var _ llm.Client = (*Client)(nil)
