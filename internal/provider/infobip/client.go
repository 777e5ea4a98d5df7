package infobip

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const (
	sendPath = "/sms/2/text/advanced"

	// provider responses are small; anything past this is noise
	maxBodyBytes = 1 << 20
)

type Config struct {
	BaseURL  string
	APIKey   string
	SenderID string
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	senderID   string
}

func New(cfg Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		senderID:   cfg.SenderID,
	}
}

type destination struct {
	To        string `json:"to"`
	MessageID string `json:"messageId,omitempty"`
}

type textMessage struct {
	From         string        `json:"from"`
	Destinations []destination `json:"destinations"`
	Text         string        `json:"text"`
}

type sendRequest struct {
	BulkID   string        `json:"bulkId,omitempty"`
	Messages []textMessage `json:"messages"`
}

// HTTPError is returned when the provider answers with a non-2xx status.
// Body is the decoded JSON error payload, nil when it could not be decoded.
type HTTPError struct {
	StatusCode int
	Body       any
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("infobip: unexpected status %d", e.StatusCode)
}

func (c *Client) Name() string {
	return "infobip"
}

func (c *Client) applyHeaders(req *http.Request) {
	req.Header.Set("Authorization", "App "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}

// Send submits one text message to one destination. On success the decoded
// provider body is returned; a body that is not JSON is returned as a string.
func (c *Client) Send(ctx context.Context, to, text string) (any, error) {
	payload := sendRequest{
		BulkID: uuid.NewString(),
		Messages: []textMessage{{
			From:         c.senderID,
			Destinations: []destination{{To: to, MessageID: uuid.NewString()}},
			Text:         text,
		}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("infobip: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sendPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("infobip: build request: %w", err)
	}
	c.applyHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("infobip: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var details any
		if err := json.Unmarshal(raw, &details); err != nil {
			details = nil
		}
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: details}
	}

	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return string(raw), nil
	}
	return out, nil
}
