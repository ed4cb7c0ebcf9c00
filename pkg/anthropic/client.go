package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/time/rate"
)

const (
	defaultModel     = "claude-3-5-haiku-latest"
	defaultMaxTokens = 1024
	apiVersion       = "2023-06-01"
)

// Config configures the Anthropic API client.
type Config struct {
	APIKey    string
	Model     string
	MaxTokens int
	// RatePerMinute caps outbound completion calls. Zero disables the cap.
	RatePerMinute int
}

// Client is the Anthropic Messages API client.
type Client struct {
	apiKey     string
	apiURL     string
	model      string
	maxTokens  int
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new Anthropic API client.
func NewClient(cfg Config) *Client {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	var limiter *rate.Limiter
	if cfg.RatePerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(cfg.RatePerMinute)/60.0), cfg.RatePerMinute)
	}

	return &Client{
		apiKey:     cfg.APIKey,
		apiURL:     "https://api.anthropic.com/v1",
		model:      model,
		maxTokens:  maxTokens,
		httpClient: &http.Client{},
		limiter:    limiter,
	}
}

// SetAPIURL overrides the default API URL for testing purposes.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// Complete sends one completion request with a system instruction and a
// single user message, and returns the concatenated text of the reply.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limit wait canceled: %w", err)
		}
	}

	req := MessagesRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System:    system,
		Messages: []Message{
			{Role: "user", Content: user},
		},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal messages request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/messages", bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to build messages request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", apiVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to call anthropic API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("anthropic API error %d: %s", resp.StatusCode, string(raw))
	}

	var result MessagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode anthropic response: %w", err)
	}

	if len(result.Content) == 0 {
		return "", fmt.Errorf("empty response from anthropic API")
	}

	var sb strings.Builder
	for _, block := range result.Content {
		if block.Type == "text" || block.Type == "" {
			sb.WriteString(block.Text)
		}
	}
	return sb.String(), nil
}
