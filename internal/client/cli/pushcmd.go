package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/ysemenovs/deskhub/internal/client/push"
)

func (a *App) pushSubscribe(ctx context.Context) {
	err := a.push.Init(ctx)
	switch {
	case errors.Is(err, push.ErrUnsupported):
		fmt.Fprintln(a.out, "push notifications are not supported here")
	case errors.Is(err, push.ErrPermissionDenied):
		fmt.Fprintln(a.out, "notification permission denied; run push again to retry")
	case err != nil:
		a.printErr(err)
	default:
		fmt.Fprintln(a.out, "push notifications enabled")
	}
}

func (a *App) pushUnsubscribe(ctx context.Context) {
	if err := a.push.Unsubscribe(ctx); err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintln(a.out, "push notifications disabled")
}

func (a *App) pushStatus(ctx context.Context) {
	st, err := a.push.Status(ctx)
	if err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintf(a.out, "permission: %s, subscribed: %v, state: %s\n",
		st.Permission, st.Subscribed, a.push.State())
}
