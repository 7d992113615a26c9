package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/ysemenovs/deskhub/internal/client/assistant"
)

func (a *App) ask(ctx context.Context, args []string) {
	prompt := strings.Join(args, " ")
	if prompt == "" {
		var err error
		if prompt, err = GetSimpleText(a.in, "Ask", a.out); err != nil {
			a.printErr(err)
			return
		}
	}
	if strings.TrimSpace(prompt) == "" {
		fmt.Fprintln(a.out, "usage: ask <question>")
		return
	}

	reply, err := a.assistant.Ask(ctx, prompt)
	if err != nil {
		fmt.Fprintln(a.out, assistant.FallbackMessage)
		return
	}
	fmt.Fprintln(a.out, reply.Text)
}
