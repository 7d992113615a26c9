package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ysemenovs/deskhub/internal/client/api"
	"github.com/ysemenovs/deskhub/internal/client/models"
	"github.com/ysemenovs/deskhub/internal/client/store"
)

func (a *App) listEvents(ctx context.Context) {
	var events []models.CalendarEvent

	if a.currentMode() == ModeOffline {
		data, err := a.store.Get(ctx, store.KeyEvents)
		if err != nil {
			a.printErr(err)
			return
		}
		if err := json.Unmarshal(data, &events); err != nil {
			a.printErr(err)
			return
		}
		fmt.Fprintln(a.out, "(local data, server unreachable)")
	} else {
		var err error
		if events, err = a.client.ListEvents(ctx); err != nil {
			a.printErr(err)
			return
		}
	}

	if len(events) == 0 {
		fmt.Fprintln(a.out, "no events")
		return
	}
	for _, e := range events {
		fmt.Fprintf(a.out, "[%s] %s to %s  %s (%s)\n",
			e.ID,
			e.StartsAt.Local().Format("2006-01-02 15:04"),
			e.EndsAt.Local().Format("15:04"),
			e.Title, e.Type)
	}
}

func (a *App) addEvent(ctx context.Context) {
	title, err := GetSimpleText(a.in, "Title", a.out)
	if err != nil {
		a.printErr(err)
		return
	}
	startStr, err := GetSimpleText(a.in, "Start (YYYY-MM-DD HH:MM)", a.out)
	if err != nil {
		a.printErr(err)
		return
	}
	endStr, err := GetSimpleText(a.in, "End (YYYY-MM-DD HH:MM)", a.out)
	if err != nil {
		a.printErr(err)
		return
	}
	kind, err := GetSimpleText(a.in, "Type (meeting/reminder/other)", a.out)
	if err != nil {
		a.printErr(err)
		return
	}

	const layout = "2006-01-02 15:04"
	start, err := time.ParseInLocation(layout, startStr, time.Local)
	if err != nil {
		a.printErr(err)
		return
	}
	end, err := time.ParseInLocation(layout, endStr, time.Local)
	if err != nil {
		a.printErr(err)
		return
	}

	event, err := a.client.CreateEvent(ctx, api.CreateEventInput{
		Title:     title,
		StartTime: start,
		EndTime:   end,
		Type:      kind,
	})
	if err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintf(a.out, "created event %s\n", event.ID)
}
