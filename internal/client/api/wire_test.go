package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ysemenovs/deskhub/internal/client/models"
)

func TestListTasks_NormalizesWireShape(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/tasks", func(w http.ResponseWriter, r *http.Request) {
		// numeric ids, snake_case fields, nested relation
		_, _ = w.Write([]byte(`[
			{
				"id": 10,
				"title": "Quarterly report",
				"description": "draft",
				"date": "2026-09-01T09:00:00Z",
				"priority": "high",
				"status": "in_progress",
				"assigned_to": [
					{"id": 3, "email": "x@y.z", "name": "X", "role": "member", "avatar": "/uploads/x.png", "created_at": "2026-01-01T00:00:00Z"}
				]
			}
		]`))
	})

	c, srv := newTestClient(t, mux)

	tasks, err := c.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	want := models.Task{
		ID:          "10",
		Title:       "Quarterly report",
		Description: "draft",
		Date:        time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
		Priority:    models.PriorityHigh,
		Status:      models.StatusInProgress,
		AssignedTo: []models.User{{
			ID:        "3",
			Email:     "x@y.z",
			Name:      "X",
			Role:      "member",
			AvatarURL: srv.URL + "/uploads/x.png",
			CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		}},
	}
	if diff := cmp.Diff(want, tasks[0]); diff != "" {
		t.Errorf("task mismatch (-want +got):\n%s", diff)
	}
}

func TestListTasks_AllIDsAreStrings(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/tasks", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 1}, {"id": "two"}, {"id": 9007199254740993}]`))
	})

	c, _ := newTestClient(t, mux)

	tasks, err := c.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, models.ID("1"), tasks[0].ID)
	assert.Equal(t, models.ID("two"), tasks[1].ID)
	assert.Equal(t, models.ID("9007199254740993"), tasks[2].ID)
}

func TestListEvents_Normalizes(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/events", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id": "e1", "title": "Standup", "start_time": "2026-09-02T10:00:00Z",
			 "end_time": "2026-09-02T10:15:00Z", "color": "blue", "type": "meeting", "assigned_to": []}
		]`))
	})

	c, _ := newTestClient(t, mux)

	events, err := c.ListEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Standup", events[0].Title)
	assert.Equal(t, 15*time.Minute, events[0].EndsAt.Sub(events[0].StartsAt))
}

func TestListDocuments_NullableFolder(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/documents", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id": 1, "folder_id": null, "name": "loose.pdf", "type": "pdf", "size": 100},
			{"id": 2, "folder_id": 7, "name": "filed.pdf", "type": "pdf", "size": 200,
			 "folder_name": "Finance", "folder_color": "green"}
		]`))
	})

	c, _ := newTestClient(t, mux)

	docs, err := c.ListDocuments(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Nil(t, docs[0].FolderID)
	require.NotNil(t, docs[1].FolderID)
	assert.Equal(t, models.ID("7"), *docs[1].FolderID)
	assert.Equal(t, "Finance", docs[1].FolderName)
}

func TestListDocuments_FolderFilterOnWire(t *testing.T) {
	var gotPath, gotQuery string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/documents", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	})

	c, _ := newTestClient(t, mux)

	id := models.ID("7")
	_, err := c.ListDocuments(context.Background(), &id)
	require.NoError(t, err)

	// the filter must travel as a real query string, not as part of the
	// path with an escaped "?"
	assert.Equal(t, "/api/documents", gotPath)
	assert.Equal(t, "folder_id=7", gotQuery)
}

func TestCreateTask_SendsSnakeCase(t *testing.T) {
	var got map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/tasks", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"id": 1, "title": "t"}`))
	})

	c, _ := newTestClient(t, mux)

	_, err := c.CreateTask(context.Background(), CreateTaskInput{
		Title:      "t",
		Date:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Priority:   "low",
		Status:     "pending",
		AssignedTo: []models.ID{"3"},
	})
	require.NoError(t, err)

	assert.Contains(t, got, "assigned_to")
	assert.NotContains(t, got, "assignedTo")
}
