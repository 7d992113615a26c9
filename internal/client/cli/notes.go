package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ysemenovs/deskhub/internal/client/api"
	"github.com/ysemenovs/deskhub/internal/client/models"
	"github.com/ysemenovs/deskhub/internal/client/store"
)

func (a *App) listNotes(ctx context.Context) {
	var notes []models.Note

	if a.currentMode() == ModeOffline {
		data, err := a.store.Get(ctx, store.KeyNotes)
		if err != nil {
			a.printErr(err)
			return
		}
		if err := json.Unmarshal(data, &notes); err != nil {
			a.printErr(err)
			return
		}
		fmt.Fprintln(a.out, "(local data, server unreachable)")
	} else {
		var err error
		if notes, err = a.client.ListNotes(ctx); err != nil {
			a.printErr(err)
			return
		}
	}

	if len(notes) == 0 {
		fmt.Fprintln(a.out, "no notes")
		return
	}
	for _, n := range notes {
		fmt.Fprintf(a.out, "[%s] %s (%s, updated %s)\n",
			n.ID, n.Title, n.Color, n.UpdatedAt.Local().Format("2006-01-02"))
	}
}

func (a *App) addNote(ctx context.Context) {
	title, err := GetSimpleText(a.in, "Title", a.out)
	if err != nil {
		a.printErr(err)
		return
	}
	content, err := GetMultiline(a.in, "Content", a.out)
	if err != nil {
		a.printErr(err)
		return
	}

	note, err := a.client.CreateNote(ctx, api.CreateNoteInput{Title: title, Content: content})
	if err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintf(a.out, "created note %s\n", note.ID)
}

func (a *App) deleteNote(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "usage: delnote <id>")
		return
	}
	if err := a.client.DeleteNote(ctx, models.ID(args[0])); err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintln(a.out, "deleted")
}
