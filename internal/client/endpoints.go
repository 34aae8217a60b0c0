package client

import (
	"context"
	"fmt"
	"net/http"
)

// Get fetches path (which may carry a query string) from the ISE node.
// Non-2xx statuses come back as typed errors alongside the response.
func (c *DefaultClient) Get(ctx context.Context, path string) (*Response, error) {
	resp, err := c.do(ctx, http.MethodGet, path)
	if err != nil {
		return resp, fmt.Errorf("GET %s: %w", path, err)
	}
	return resp, nil
}

// Delete issues a DELETE for path. ISE answers 204 No Content on success.
func (c *DefaultClient) Delete(ctx context.Context, path string) (*Response, error) {
	resp, err := c.do(ctx, http.MethodDelete, path)
	if err != nil {
		return resp, fmt.Errorf("DELETE %s: %w", path, err)
	}
	return resp, nil
}
