package api

import (
	"context"
	"net/http"

	"github.com/ysemenovs/deskhub/internal/client/models"
)

// PushPublicKey fetches the server's VAPID public key in URL-safe base64.
func (c *Client) PushPublicKey(ctx context.Context) (string, error) {
	var w struct {
		PublicKey string `json:"public_key"`
	}
	if err := c.do(ctx, http.MethodGet, "/push/public-key", nil, &w); err != nil {
		return "", err
	}
	return w.PublicKey, nil
}

// RegisterPushSubscription mirrors a platform subscription to the server.
// The server keys subscriptions on endpoint identity, so re-registering an
// existing subscription is idempotent.
func (c *Client) RegisterPushSubscription(ctx context.Context, sub models.PushSubscription) error {
	return c.do(ctx, http.MethodPost, "/push/subscribe", sub, nil)
}

// UnregisterPushSubscription tells the server to stop delivering to the
// given endpoint.
func (c *Client) UnregisterPushSubscription(ctx context.Context, endpoint string) error {
	body := struct {
		Endpoint string `json:"endpoint"`
	}{Endpoint: endpoint}
	return c.do(ctx, http.MethodPost, "/push/unsubscribe", body, nil)
}
