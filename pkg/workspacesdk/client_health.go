package workspacesdk

import (
	"context"
	"net/http"
)

// Livez reports whether the service process is up.
func (c *Client) Livez(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/livez", nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Readyz reports whether the service can reach its database. A 503 comes
// back as an APIError.
func (c *Client) Readyz(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/readyz", nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}
