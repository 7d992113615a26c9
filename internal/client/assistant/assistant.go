// Package assistant wraps the server-mediated AI routes behind a small,
// typed interface. Failures surface as errors; the wrapper never swallows
// them into a canned string, that choice belongs to the presentation layer.
package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/ysemenovs/deskhub/internal/client/api"
	"github.com/ysemenovs/deskhub/internal/logging"
)

// persona is the fixed instruction prepended to every request.
const persona = "You are the DeskHub assistant. You help organize tasks, " +
	"contacts, calendar events, documents and notes. Answer briefly and " +
	"concretely, in the user's language."

// FallbackMessage is what UIs may show when Ask fails. Kept here so every
// surface shows the same text.
const FallbackMessage = "Sorry, the assistant is unavailable right now. Please try again later."

// Generator is the slice of the API client the assistant needs.
type Generator interface {
	Ask(ctx context.Context, in api.AskInput) (string, error)
}

// Reply is a successful assistant response.
type Reply struct {
	Text string
}

type Assistant struct {
	gen Generator
	log logging.Logger
}

type Option func(*Assistant)

func WithLogger(l logging.Logger) Option {
	return func(a *Assistant) { a.log = l }
}

func New(gen Generator, opts ...Option) *Assistant {
	a := &Assistant{gen: gen, log: logging.NewNopLogger()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Ask sends the user prompt with the persona instruction and optional
// conversation history and returns the generated text.
func (a *Assistant) Ask(ctx context.Context, prompt string, history ...string) (Reply, error) {
	instruction := persona
	if len(history) > 0 {
		instruction += "\n\nConversation so far:\n" + strings.Join(history, "\n")
	}

	text, err := a.gen.Ask(ctx, api.AskInput{Prompt: prompt, Context: instruction})
	if err != nil {
		a.log.Error(ctx, "assistant request failed", "err", err)
		return Reply{}, fmt.Errorf("assistant: %w", err)
	}
	return Reply{Text: text}, nil
}
