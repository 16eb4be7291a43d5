package workspacesdk

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

// Client talks to the workspace service. The zero value is not usable; build
// one with NewClient.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Token is the bearer session token from the identity provider. Health
	// endpoints work without one; everything else requires it.
	Token string
}

// NewClient creates a client for the service at baseURL authenticating with
// the given session token.
func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		Token: token,
	}
}

func (c *Client) url(path string) string {
	return c.BaseURL + path
}

// doJSON performs a request with an optional JSON body and decodes the
// response into target. A nil target discards the body after the status
// check.
func (c *Client) doJSON(
	ctx context.Context,
	method, path string,
	reqBody, target any,
	expectedStatus int,
) error {
	var body io.Reader
	if reqBody != nil {
		buf, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp.StatusCode, respBody)
	}
	if target == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
