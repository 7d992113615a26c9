package api

import (
	"context"
	"net/http"
)

// Ask forwards a prompt (and optional conversation context) to the
// server-mediated assistant route and returns the generated text. The model
// credential stays on the server; this client only ever sees text.
func (c *Client) Ask(ctx context.Context, in AskInput) (string, error) {
	if err := c.validateInput(in); err != nil {
		return "", err
	}

	var w struct {
		Text string `json:"text"`
	}
	if err := c.do(ctx, http.MethodPost, "/ai/ask", in, &w); err != nil {
		return "", err
	}
	return w.Text, nil
}
