// Package telegram is the fire-and-forget order dispatch path: one JSON POST
// to the bot's sendMessage endpoint. Success is judged solely by the HTTP
// status class; the response body is ignored and nothing is retried.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const apiBase = "https://api.telegram.org"

// ErrDispatchFailed is returned when the Bot API answers with a non-success
// status. Callers surface it as a generic "failed to send" notice.
var ErrDispatchFailed = errors.New("telegram dispatch failed")

// Client posts messages to a single fixed bot chat.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	chatID     string
}

// NewClient creates a Client for the given bot token and chat ID. A nil
// httpClient falls back to http.DefaultClient (the underlying transport's
// defaults are the only timeout handling, matching the page's fetch call).
func NewClient(httpClient *http.Client, token, chatID string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    apiBase,
		token:      token,
		chatID:     chatID,
	}
}

// sendMessageBody is the Bot API sendMessage payload.
type sendMessageBody struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

// SendMessage posts text to the configured chat. A non-2xx response maps to
// ErrDispatchFailed; transport errors are returned as-is.
func (c *Client) SendMessage(ctx context.Context, text string) error {
	body, err := json.Marshal(sendMessageBody{ChatID: c.chatID, Text: text})
	if err != nil {
		return fmt.Errorf("marshal sendMessage body: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build sendMessage request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post sendMessage: %w", err)
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused; the body content is not consulted.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", ErrDispatchFailed, resp.StatusCode)
	}
	return nil
}
