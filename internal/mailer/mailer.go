// Package mailer sends transactional email through the outbound
// email delivery API. Used only by the submission endpoints.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lexcentre/website/internal/config"
)

const defaultEndpoint = "https://api.resend.com/emails"

// Email is one outbound message
type Email struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Service sends email, implemented by Client.
// The form handlers take the interface so tests can count sends.
type Service interface {
	Send(ctx context.Context, email *Email) error
}

type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
}

func New(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		endpoint:   defaultEndpoint,
		apiKey:     cfg.EmailAPIKey,
	}
}

// NewWithEndpoint creates a client against an explicit endpoint,
// used by the tests to point at a local server
func NewWithEndpoint(endpoint, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{},
		endpoint:   endpoint,
		apiKey:     apiKey,
	}
}

// Send delivers one email. Any transport failure or non-2xx response
// surfaces as an error, the caller reports it and never masks it.
func (c *Client) Send(ctx context.Context, email *Email) error {

	payload, err := json.Marshal(email)
	if err != nil {
		return fmt.Errorf("failed to encode email; %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to create email request; %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("email request failed; %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("email API returned status %d: %s", resp.StatusCode, body)
	}

	return nil
}
