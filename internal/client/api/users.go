package api

import (
	"context"
	"net/http"

	"github.com/ysemenovs/deskhub/internal/client/models"
)

// ListUsers returns the accounts visible to the session, for assignment
// pickers and the like.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var ws []userWire
	if err := c.do(ctx, http.MethodGet, "/users", nil, &ws); err != nil {
		return nil, err
	}
	return c.normalizeUsers(ws), nil
}
