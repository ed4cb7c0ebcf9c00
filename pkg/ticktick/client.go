package ticktick

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	defaultAPIURL   = "https://api.ticktick.com/open/v1"
	defaultTokenURL = "https://ticktick.com/oauth/token"
)

// Config configures the TickTick API client.
type Config struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// Client is the TickTick open API client. It owns its OAuth token state:
// expiry-driven renewal is guarded by a singleflight group so concurrent
// callers share one refresh, and API calls retry exactly once after a token
// refresh on a 401 response. A second 401 is a hard failure.
type Client struct {
	apiURL     string
	tokenURL   string
	httpClient *http.Client

	clientID     string
	clientSecret string

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	expiresAt    time.Time

	renew singleflight.Group
}

// NewClient creates a new TickTick client seeded with a refresh token.
func NewClient(cfg Config) *Client {
	return &Client{
		apiURL:       defaultAPIURL,
		tokenURL:     defaultTokenURL,
		httpClient:   &http.Client{},
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		refreshToken: cfg.RefreshToken,
	}
}

// SetAPIURL overrides the default API URL for testing purposes.
func (c *Client) SetAPIURL(u string) { c.apiURL = u }

// SetTokenURL overrides the default OAuth token URL for testing purposes.
func (c *Client) SetTokenURL(u string) { c.tokenURL = u }

// token returns a usable access token, renewing if missing or expired.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.RLock()
	tok, exp := c.accessToken, c.expiresAt
	c.mu.RUnlock()

	if tok != "" && time.Now().Before(exp) {
		return tok, nil
	}
	return c.renewToken(ctx)
}

// renewToken exchanges the refresh token for a new access token.
// Concurrent renewals collapse into a single token endpoint call.
func (c *Client) renewToken(ctx context.Context) (string, error) {
	v, err, _ := c.renew.Do("token", func() (any, error) {
		form := url.Values{
			"client_id":     {c.clientID},
			"client_secret": {c.clientSecret},
			"grant_type":    {"refresh_token"},
		}
		c.mu.RLock()
		form.Set("refresh_token", c.refreshToken)
		c.mu.RUnlock()

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
		if err != nil {
			return "", fmt.Errorf("failed to build token request: %w", err)
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return "", fmt.Errorf("failed to call token endpoint: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			raw, _ := io.ReadAll(resp.Body)
			return "", fmt.Errorf("token refresh error %d: %s", resp.StatusCode, string(raw))
		}

		var tr tokenResponse
		if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
			return "", fmt.Errorf("failed to decode token response: %w", err)
		}

		c.mu.Lock()
		c.accessToken = tr.AccessToken
		if tr.RefreshToken != "" {
			c.refreshToken = tr.RefreshToken
		}
		c.expiresAt = time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second)
		c.mu.Unlock()

		return tr.AccessToken, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// apiRequest performs an authenticated request. On a 401 it refreshes the
// token and retries once; a second 401 surfaces as an error.
func (c *Client) apiRequest(ctx context.Context, method, path string, payload, out any) error {
	resp, err := c.doOnce(ctx, method, path, payload)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		if _, err := c.renewToken(ctx); err != nil {
			return fmt.Errorf("token refresh after 401 failed: %w", err)
		}
		resp, err = c.doOnce(ctx, method, path, payload)
		if err != nil {
			return err
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("ticktick API error %d: %s", resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode ticktick response: %w", err)
	}
	return nil
}

func (c *Client) doOnce(ctx context.Context, method, path string, payload any) (*http.Response, error) {
	tok, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal ticktick request: %w", err)
		}
		body = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build ticktick request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+tok)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call ticktick API: %w", err)
	}
	return resp, nil
}

// CreateTask creates a new task.
func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error) {
	payload := map[string]any{
		"title": req.Title,
	}
	if req.Content != "" {
		payload["content"] = req.Content
	}
	if req.DueDate != nil {
		payload["dueDate"] = req.DueDate.Format(time.RFC3339)
	}

	var task Task
	if err := c.apiRequest(ctx, http.MethodPost, "/task", payload, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// ListTasks retrieves tasks.
func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	var tasks []Task
	if err := c.apiRequest(ctx, http.MethodGet, "/task", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateTask updates an existing task. Only non-nil fields are sent.
func (c *Client) UpdateTask(ctx context.Context, taskID string, req UpdateTaskRequest) (*Task, error) {
	payload := map[string]any{}
	if req.Title != nil {
		payload["title"] = *req.Title
	}
	if req.Content != nil {
		payload["content"] = *req.Content
	}
	if req.DueDate != nil {
		payload["dueDate"] = req.DueDate.Format(time.RFC3339)
	}
	if req.Completed != nil {
		if *req.Completed {
			payload["status"] = 2
		} else {
			payload["status"] = 0
		}
	}

	var task Task
	if err := c.apiRequest(ctx, http.MethodPost, "/task/"+taskID, payload, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask deletes a task. Returns false when the API call fails.
func (c *Client) DeleteTask(ctx context.Context, taskID string) bool {
	return c.apiRequest(ctx, http.MethodDelete, "/task/"+taskID, nil, nil) == nil
}
