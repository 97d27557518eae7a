package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Config holds remote platform connection settings
type Config struct {
	Store       string
	AccessToken string
	APIVersion  string
	Timeout     time.Duration
}

// Client talks to the platform's GraphQL Admin API
type Client struct {
	endpoint    string
	accessToken string
	httpClient  *http.Client
}

// graphqlRequest is the POST body of one query
type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// graphqlResponse is the standard envelope: data plus an optional error list
type graphqlResponse struct {
	Data   map[string]interface{} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors,omitempty"`
}

// NewClient creates a new platform API client
func NewClient(cfg Config) *Client {
	store := cfg.Store
	if store != "" && !strings.Contains(store, ".") {
		store += ".myshopify.com"
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	version := cfg.APIVersion
	if version == "" {
		version = "2024-04"
	}

	return &Client{
		endpoint:    fmt.Sprintf("https://%s/admin/api/%s/graphql.json", store, version),
		accessToken: cfg.AccessToken,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// Execute runs one GraphQL query and returns the decoded data map.
// Transport failures surface as *UnavailableError, an error envelope inside
// a 200 as *RejectedError.
func (c *Client) Execute(ctx context.Context, query string, variables map[string]interface{}) (map[string]interface{}, error) {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Shopify-Access-Token", c.accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UnavailableError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UnavailableError{Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &UnavailableError{
			Status: resp.StatusCode,
			Err:    fmt.Errorf("unexpected status %s: %s", resp.Status, truncate(respBody, 200)),
		}
	}

	var envelope graphqlResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, &UnavailableError{Status: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	if len(envelope.Errors) > 0 {
		messages := make([]string, 0, len(envelope.Errors))
		for _, e := range envelope.Errors {
			messages = append(messages, e.Message)
		}
		return nil, &RejectedError{Messages: messages}
	}

	if envelope.Data == nil {
		return map[string]interface{}{}, nil
	}
	return envelope.Data, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
