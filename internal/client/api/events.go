package api

import (
	"context"
	"net/http"

	"github.com/ysemenovs/deskhub/internal/client/models"
)

func (c *Client) ListEvents(ctx context.Context) ([]models.CalendarEvent, error) {
	var ws []eventWire
	if err := c.do(ctx, http.MethodGet, "/events", nil, &ws); err != nil {
		return nil, err
	}
	events := make([]models.CalendarEvent, 0, len(ws))
	for _, w := range ws {
		events = append(events, c.normalizeEvent(w))
	}
	return events, nil
}

func (c *Client) CreateEvent(ctx context.Context, in CreateEventInput) (models.CalendarEvent, error) {
	if err := c.validateInput(in); err != nil {
		return models.CalendarEvent{}, err
	}
	var w eventWire
	if err := c.do(ctx, http.MethodPost, "/events", in, &w); err != nil {
		return models.CalendarEvent{}, err
	}
	return c.normalizeEvent(w), nil
}

func (c *Client) UpdateEvent(ctx context.Context, id models.ID, in UpdateEventInput) (models.CalendarEvent, error) {
	if err := c.validateInput(in); err != nil {
		return models.CalendarEvent{}, err
	}
	var w eventWire
	if err := c.do(ctx, http.MethodPut, "/events/"+id.String(), in, &w); err != nil {
		return models.CalendarEvent{}, err
	}
	return c.normalizeEvent(w), nil
}

func (c *Client) DeleteEvent(ctx context.Context, id models.ID) error {
	return c.do(ctx, http.MethodDelete, "/events/"+id.String(), nil, nil)
}
