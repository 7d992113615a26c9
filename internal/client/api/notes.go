package api

import (
	"context"
	"net/http"

	"github.com/ysemenovs/deskhub/internal/client/models"
)

func (c *Client) ListNotes(ctx context.Context) ([]models.Note, error) {
	var ws []noteWire
	if err := c.do(ctx, http.MethodGet, "/notes", nil, &ws); err != nil {
		return nil, err
	}
	notes := make([]models.Note, 0, len(ws))
	for _, w := range ws {
		notes = append(notes, normalizeNote(w))
	}
	return notes, nil
}

func (c *Client) CreateNote(ctx context.Context, in CreateNoteInput) (models.Note, error) {
	if err := c.validateInput(in); err != nil {
		return models.Note{}, err
	}
	var w noteWire
	if err := c.do(ctx, http.MethodPost, "/notes", in, &w); err != nil {
		return models.Note{}, err
	}
	return normalizeNote(w), nil
}

func (c *Client) UpdateNote(ctx context.Context, id models.ID, in UpdateNoteInput) (models.Note, error) {
	if err := c.validateInput(in); err != nil {
		return models.Note{}, err
	}
	var w noteWire
	if err := c.do(ctx, http.MethodPut, "/notes/"+id.String(), in, &w); err != nil {
		return models.Note{}, err
	}
	return normalizeNote(w), nil
}

func (c *Client) DeleteNote(ctx context.Context, id models.ID) error {
	return c.do(ctx, http.MethodDelete, "/notes/"+id.String(), nil, nil)
}
