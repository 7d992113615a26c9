package cli

import (
	"context"
	"fmt"
)

func (a *App) listNotifications(ctx context.Context) {
	items, err := a.client.ListNotifications(ctx)
	if err != nil {
		a.printErr(err)
		return
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "no notifications")
		return
	}
	for _, n := range items {
		mark := " "
		if !n.Read {
			mark = "*"
		}
		fmt.Fprintf(a.out, "%s [%s] %s: %s\n", mark, n.ID, n.Title, n.Message)
	}
}

func (a *App) markAllNotificationsRead(ctx context.Context) {
	if err := a.client.MarkAllNotificationsRead(ctx); err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintln(a.out, "all notifications marked read")
}
