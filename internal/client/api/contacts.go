package api

import (
	"context"
	"net/http"

	"github.com/ysemenovs/deskhub/internal/client/models"
)

func (c *Client) ListContacts(ctx context.Context) ([]models.Contact, error) {
	var ws []contactWire
	if err := c.do(ctx, http.MethodGet, "/contacts", nil, &ws); err != nil {
		return nil, err
	}
	contacts := make([]models.Contact, 0, len(ws))
	for _, w := range ws {
		contacts = append(contacts, c.normalizeContact(w))
	}
	return contacts, nil
}

func (c *Client) CreateContact(ctx context.Context, in CreateContactInput) (models.Contact, error) {
	if err := c.validateInput(in); err != nil {
		return models.Contact{}, err
	}
	var w contactWire
	if err := c.do(ctx, http.MethodPost, "/contacts", in, &w); err != nil {
		return models.Contact{}, err
	}
	return c.normalizeContact(w), nil
}

func (c *Client) UpdateContact(ctx context.Context, id models.ID, in UpdateContactInput) (models.Contact, error) {
	if err := c.validateInput(in); err != nil {
		return models.Contact{}, err
	}
	var w contactWire
	if err := c.do(ctx, http.MethodPut, "/contacts/"+id.String(), in, &w); err != nil {
		return models.Contact{}, err
	}
	return c.normalizeContact(w), nil
}

func (c *Client) DeleteContact(ctx context.Context, id models.ID) error {
	return c.do(ctx, http.MethodDelete, "/contacts/"+id.String(), nil, nil)
}

// UploadContactAvatar replaces a contact's avatar image.
func (c *Client) UploadContactAvatar(ctx context.Context, id models.ID, filename string, data []byte) (models.Contact, error) {
	var w contactWire
	if err := c.upload(ctx, "/contacts/"+id.String()+"/avatar", "avatar", filename, data, nil, &w); err != nil {
		return models.Contact{}, err
	}
	return c.normalizeContact(w), nil
}
