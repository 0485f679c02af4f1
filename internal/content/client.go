package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/lexcentre/website/internal/config"
)

// Client is a configured HTTP client bound to one
// project/dataset/API-version of the content store
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// Error envelope returned by the store on a bad query
type storeError struct {
	Error struct {
		Description string `json:"description"`
		Type        string `json:"type"`
	} `json:"error"`
}

// Result envelope wrapping every successful response
type storeResult struct {
	Result json.RawMessage `json:"result"`
}

// New creates a content store client from the config.
// The CDN host serves cached reads, the API host serves fresh ones.
func New(cfg *config.Config) *Client {

	host := "api.sanity.io"
	if cfg.StoreUseCDN {
		host = "apicdn.sanity.io"
	}

	baseURL := fmt.Sprintf(
		"https://%s.%s/v%s/data/query/%s",
		cfg.StoreProjectID, host, cfg.StoreAPIVersion, cfg.StoreDataset,
	)

	return &Client{
		httpClient: &http.Client{Timeout: cfg.StoreTimeout},
		baseURL:    baseURL,
		token:      cfg.StoreToken,
	}
}

// NewWithBaseURL creates a client against an explicit endpoint,
// used by the tests to point at a local server
func NewWithBaseURL(baseURL, token string) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		token:      token,
	}
}

// Fetch executes a catalog query with named params and decodes the
// store's result into dest. Any transport failure, non-2xx status or
// store-side query error surfaces as an error with dest untouched,
// callers never receive a half-populated result.
func (c *Client) Fetch(ctx context.Context, query string, params Params, dest any) error {

	// Build the query string, params are passed
	// as JSON-encoded $name values
	values := url.Values{}
	values.Set("query", query)
	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to encode param %q; %w", name, err)
		}
		values.Set("$"+name, string(encoded))
	}

	reqURL := c.baseURL + "?" + values.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create store request; %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("store request failed; %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read store response; %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var se storeError
		if err := json.Unmarshal(body, &se); err == nil && se.Error.Description != "" {
			return fmt.Errorf("store query error: %s", se.Error.Description)
		}
		return fmt.Errorf("store returned status %d", resp.StatusCode)
	}

	var envelope storeResult
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("failed to decode store envelope; %w", err)
	}

	// A null result stays null in dest, the loader
	// distinguishes not-found from failure
	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return nil
	}

	if err := json.Unmarshal(envelope.Result, dest); err != nil {
		return fmt.Errorf("failed to decode store result; %w", err)
	}

	return nil
}
