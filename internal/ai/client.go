// Package ai wraps the external generative-text API behind a single
// completion call. The gateway knows nothing about prompts or output
// structure; it hands back raw text for the extraction layer to normalize.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// fallbackMessage is surfaced to clients when the upstream does not provide
// an error message of its own.
const fallbackMessage = "ai service request failed"

// UpstreamError describes a failed call to the generative-text API. Message
// is safe to surface to clients: it carries the upstream-provided error text
// when available, else a generic fallback.
type UpstreamError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream ai call: %v", e.Err)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("upstream ai call: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upstream ai call: %s", e.Message)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Client calls an OpenAI-compatible chat-completions endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// NewClient creates a gateway client for the given OpenAI-compatible base URL
// (e.g. "https://api.openai.com/v1"). No client-side timeout is applied;
// cancellation is left to the request context.
func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type chatErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends a single-user-message completion request and returns the
// model's raw text reply. All failure modes collapse into *UpstreamError.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", &UpstreamError{Message: fallbackMessage, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", &UpstreamError{Message: fallbackMessage, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &UpstreamError{Message: fallbackMessage, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &UpstreamError{Message: fallbackMessage, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := fallbackMessage
		var parsed chatErrorResponse
		if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
		return "", &UpstreamError{StatusCode: resp.StatusCode, Message: msg}
	}

	var completion chatResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", &UpstreamError{Message: fallbackMessage, Err: err}
	}
	if len(completion.Choices) == 0 {
		return "", &UpstreamError{Message: fallbackMessage, Err: errors.New("response contained no choices")}
	}

	return completion.Choices[0].Message.Content, nil
}
