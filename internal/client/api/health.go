package api

import (
	"context"
	"net/http"
)

// Ping checks server liveness.
func (c *Client) Ping(ctx context.Context) error {
	var w struct {
		Status string `json:"status"`
	}
	if err := c.do(ctx, http.MethodGet, "/health", nil, &w); err != nil {
		return err
	}
	if w.Status != "ok" {
		return ErrUnavailable
	}
	return nil
}
