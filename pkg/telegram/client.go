// Package telegram provides a simple client for broadcasting notices to Telegram channels.
//
// A topic is mapped to a channel chat ID; every subscriber of the channel
// receives the message. Designed to be used as a push provider in notice-pusher.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/aliskhannn/notice-pusher/internal/model"
)

const defaultBaseURL = "https://api.telegram.org"

// Client represents a Telegram client used to send notifications.
type Client struct {
	token    string            // bot token for authentication
	channels map[string]string // topic -> chat id
	fallback string            // chat id used for unmapped topics
	baseURL  string
	client   *http.Client // HTTP client used to make requests
}

// NewClient creates a new Telegram Client instance with the given bot token.
func NewClient(token, fallbackChatID string, channels map[string]string, timeout time.Duration) *Client {
	return &Client{
		token:    token,
		channels: channels,
		fallback: fallbackChatID,
		baseURL:  defaultBaseURL,
		client:   &http.Client{Timeout: timeout},
	}
}

// WithBaseURL points the client at a different Bot API host.
func (c *Client) WithBaseURL(url string) *Client {
	c.baseURL = url
	return c
}

// sendMessageRequest represents the payload for the Telegram sendMessage API.
type sendMessageRequest struct {
	ChatID string `json:"chat_id"` // chat id to send message to
	Text   string `json:"text"`    // message text
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
	Result      struct {
		MessageID int64 `json:"message_id"`
	} `json:"result"`
}

// Send posts the notice to the channel mapped from the message topic and
// returns the Telegram message id.
func (c *Client) Send(ctx context.Context, msg model.NotificationMessage) (string, error) {
	chatID, ok := c.channels[msg.Topic]
	if !ok {
		chatID = c.fallback
	}
	if chatID == "" {
		return "", fmt.Errorf("no telegram channel for topic %q", msg.Topic)
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token) // telegram API URL

	reqBody := sendMessageRequest{
		ChatID: chatID,
		Text:   msg.Title + "\n" + msg.Body,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		// url.Error prints the request URL, which carries the bot token.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return "", fmt.Errorf("send request: %w", urlErr.Err)
		}
		return "", fmt.Errorf("send request: %s", c.redact(err.Error()))
	}
	defer resp.Body.Close()

	var out sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil && resp.StatusCode == http.StatusOK {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || !out.OK {
		if out.Description != "" {
			return "", fmt.Errorf("telegram API error: %s", out.Description)
		}
		return "", fmt.Errorf("telegram API error: %s", resp.Status)
	}

	return strconv.FormatInt(out.Result.MessageID, 10), nil
}

func (c *Client) redact(s string) string {
	if c.token == "" {
		return s
	}
	return strings.ReplaceAll(s, c.token, "<redacted>")
}
