package api

import (
	"context"
	"net/http"

	"github.com/ysemenovs/deskhub/internal/client/models"
)

func (c *Client) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	var ws []notificationWire
	if err := c.do(ctx, http.MethodGet, "/notifications", nil, &ws); err != nil {
		return nil, err
	}
	ns := make([]models.Notification, 0, len(ws))
	for _, w := range ws {
		ns = append(ns, normalizeNotification(w))
	}
	return ns, nil
}

// MarkNotificationRead flags one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, id models.ID) error {
	return c.do(ctx, http.MethodPut, "/notifications/"+id.String()+"/read", nil, nil)
}

// MarkAllNotificationsRead flags every notification of the session user.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.do(ctx, http.MethodPut, "/notifications/read-all", nil, nil)
}

func (c *Client) DeleteNotification(ctx context.Context, id models.ID) error {
	return c.do(ctx, http.MethodDelete, "/notifications/"+id.String(), nil, nil)
}
