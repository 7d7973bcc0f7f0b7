// Package llm calls an OpenAI-compatible chat-completions endpoint and
// returns the raw reply text for classification.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/buger/jsonparser"
)

// DefaultBaseURL is the OpenRouter API root
const DefaultBaseURL = "https://openrouter.ai/api/v1"

const requestTimeout = 40 * time.Second

// NetworkError indicates the request never produced a usable response
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPError indicates a non-success response from the completions endpoint
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	body := strings.TrimSpace(e.Body)
	if len(body) > 200 {
		body = body[:200] + "..."
	}
	if body == "" {
		return fmt.Sprintf("HTTP %d from model API", e.StatusCode)
	}
	return fmt.Sprintf("HTTP %d from model API: %s", e.StatusCode, body)
}

// Client talks to one chat-completions endpoint
type Client struct {
	apiKey  string
	baseURL string
	params  map[string]any // model name and sampler settings, merged into every request
	http    *http.Client
}

// NewClient creates a client. params carries the model configuration
// (model, temperature, ...) verbatim into the request payload.
func NewClient(apiKey, baseURL string, params map[string]any) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		params:  params,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// Complete sends one system+user exchange and returns the reply text
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("API key not configured")
	}

	payload := map[string]any{
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
	}
	for k, v := range c.params {
		payload[k] = v
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &HTTPError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	content, err := jsonparser.GetString(data, "choices", "[0]", "message", "content")
	if err != nil {
		return "", fmt.Errorf("unexpected completion payload: %w", err)
	}

	return content, nil
}
