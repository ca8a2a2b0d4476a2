// Package notify posts release announcements to a chat group webhook.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// MentionAll addresses every member of the group.
const MentionAll = "@all"

type textMessage struct {
	MsgType string `json:"msgtype"`
	Text    struct {
		Content       string   `json:"content"`
		MentionedList []string `json:"mentioned_list"`
	} `json:"text"`
}

// Webhook sends text messages to a group robot URL.
type Webhook struct {
	URL        string
	HTTPClient *http.Client
}

// NewWebhook returns a Webhook posting to url.
func NewWebhook(url string) *Webhook {
	return &Webhook{URL: url, HTTPClient: http.DefaultClient}
}

// Send posts content as a text message mentioning everyone.
func (w *Webhook) Send(ctx context.Context, content string) error {
	var msg textMessage
	msg.MsgType = "text"
	msg.Text.Content = content
	msg.Text.MentionedList = []string{MentionAll}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encoding message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := w.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("posting to webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}
	return nil
}
