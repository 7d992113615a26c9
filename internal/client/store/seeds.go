package store

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/ysemenovs/deskhub/internal/client/models"
)

// Collection keys understood by the store. The CLI uses them when the
// backend is down; they mirror the server resources by name only.
const (
	KeyTasks    = "tasks"
	KeyContacts = "contacts"
	KeyEvents   = "events"
	KeyNotes    = "notes"
)

// defaultSeeds builds the hardcoded first-run records. Identifiers are
// fresh UUIDs per store instance, so two local stores never collide.
func defaultSeeds() map[string][]byte {
	now := time.Now().UTC().Truncate(time.Second)

	tasks := []models.Task{{
		ID:       models.ID(uuid.NewString()),
		Title:    "Try DeskHub offline mode",
		Date:     now.AddDate(0, 0, 1),
		Priority: models.PriorityMedium,
		Status:   models.StatusPending,
	}}

	notes := []models.Note{{
		ID:        models.ID(uuid.NewString()),
		Title:     "Welcome",
		Content:   "This note lives only on this machine. It appears when the DeskHub server is unreachable.",
		Color:     "yellow",
		CreatedAt: now,
		UpdatedAt: now,
	}}

	seeds := map[string][]byte{
		KeyTasks:    mustJSON(tasks),
		KeyContacts: mustJSON([]models.Contact{}),
		KeyEvents:   mustJSON([]models.CalendarEvent{}),
		KeyNotes:    mustJSON(notes),
	}
	return seeds
}

func mustJSON(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		// only reachable with unmarshalable seed types, a programming error
		panic(err)
	}
	return data
}
