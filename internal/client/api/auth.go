package api

import (
	"context"
	"net/http"

	"github.com/ysemenovs/deskhub/internal/client/models"
)

type authResponseWire struct {
	Token string   `json:"token"`
	User  userWire `json:"user"`
}

// Register creates an account. On success the returned credential is stored
// on the client and used for subsequent requests.
func (c *Client) Register(ctx context.Context, in RegisterInput) (models.User, error) {
	if err := c.validateInput(in); err != nil {
		return models.User{}, err
	}

	var w authResponseWire
	if err := c.do(ctx, http.MethodPost, "/auth/register", in, &w); err != nil {
		return models.User{}, err
	}
	if w.Token != "" {
		c.SetToken(w.Token)
	}
	return c.normalizeUser(w.User), nil
}

// Login authenticates and stores the returned credential on the client.
func (c *Client) Login(ctx context.Context, in LoginInput) (models.User, error) {
	if err := c.validateInput(in); err != nil {
		return models.User{}, err
	}

	var w authResponseWire
	if err := c.do(ctx, http.MethodPost, "/auth/login", in, &w); err != nil {
		return models.User{}, err
	}
	if w.Token != "" {
		c.SetToken(w.Token)
	}
	return c.normalizeUser(w.User), nil
}

// Logout drops the stored credential. Purely local; the token is stateless
// on the server side.
func (c *Client) Logout() {
	c.ClearToken()
}

// Profile returns the authenticated user's own record.
func (c *Client) Profile(ctx context.Context) (models.User, error) {
	var w userWire
	if err := c.do(ctx, http.MethodGet, "/profile", nil, &w); err != nil {
		return models.User{}, err
	}
	return c.normalizeUser(w), nil
}

// UpdateProfile changes the authenticated user's own record.
func (c *Client) UpdateProfile(ctx context.Context, in UpdateProfileInput) (models.User, error) {
	if err := c.validateInput(in); err != nil {
		return models.User{}, err
	}

	var w userWire
	if err := c.do(ctx, http.MethodPut, "/profile", in, &w); err != nil {
		return models.User{}, err
	}
	return c.normalizeUser(w), nil
}

// UploadAvatar replaces the profile avatar with the given image bytes.
func (c *Client) UploadAvatar(ctx context.Context, filename string, data []byte) (models.User, error) {
	var w userWire
	if err := c.upload(ctx, "/profile/avatar", "avatar", filename, data, nil, &w); err != nil {
		return models.User{}, err
	}
	return c.normalizeUser(w), nil
}
