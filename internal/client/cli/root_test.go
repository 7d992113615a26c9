package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ysemenovs/deskhub/internal/client/api"
	"github.com/ysemenovs/deskhub/internal/client/session"
	"github.com/ysemenovs/deskhub/internal/client/store"
	"github.com/ysemenovs/deskhub/internal/logging"
)

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		name string
		line string
		cmd  string
		args []string
	}{
		{"empty", "", "", nil},
		{"blank", "   \n", "", nil},
		{"bare command", "tasks\n", "tasks", []string{}},
		{"with args", "deltask 42\n", "deltask", []string{"42"}},
		{"extra whitespace", "  ask   what is  due today ", "ask", []string{"what", "is", "due", "today"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args := splitCommand(tt.line)
			assert.Equal(t, tt.cmd, cmd)
			if len(tt.args) == 0 {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.args, args)
			}
		})
	}
}

// newTestApp wires an App against a test HTTP handler and an in-memory
// store, with scripted REPL input.
func newTestApp(t *testing.T, handler http.Handler, input string) (*App, *bytes.Buffer) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	st, err := store.Open(context.Background(), "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	client, err := api.New(srv.URL)
	require.NoError(t, err)

	var out bytes.Buffer
	return &App{
		client: client,
		store:  st,
		log:    logging.NewNopLogger(),
		mode:   ModeOffline,
		in:     bufio.NewReader(strings.NewReader(input)),
		out:    &out,
	}, &out
}

func TestRepl_UnknownCommand(t *testing.T) {
	app, out := newTestApp(t, http.NotFoundHandler(), "frobnicate\nexit\n")

	app.repl(context.Background())

	assert.Contains(t, out.String(), `unknown command "frobnicate"`)
	assert.Contains(t, out.String(), "Bye!")
}

func TestRepl_ExitsOnEOF(t *testing.T) {
	app, out := newTestApp(t, http.NotFoundHandler(), "help\n")

	app.repl(context.Background())

	assert.Contains(t, out.String(), "register, login")
}

func TestRepl_OfflineTasksReadLocalData(t *testing.T) {
	app, out := newTestApp(t, http.NotFoundHandler(), "tasks\nexit\n")

	app.repl(context.Background())

	assert.Contains(t, out.String(), "(local data, server unreachable)")
	assert.Contains(t, out.String(), "Try DeskHub offline mode")
}

func TestRepl_OnlineTasksHitServer(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /tasks", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": 7, "title": "from server", "priority": "high", "status": "pending", "date": "2026-09-01T00:00:00Z"},
		})
	})
	app, out := newTestApp(t, mux, "tasks\nexit\n")
	app.mode = ModeOnline

	app.repl(context.Background())

	assert.Contains(t, out.String(), "from server")
	assert.NotContains(t, out.String(), "local data")
}

func TestRepl_ConcurrentWithOnlineWatcher(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /tasks", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{})
	})

	input := strings.Repeat("tasks\n", 25) + "exit\n"
	app, out := newTestApp(t, mux, input)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// watcher flips the mode while the REPL reads it on every prompt
	done := make(chan struct{})
	go func() {
		defer close(done)
		app.watchOnlineStatus(ctx, time.Millisecond)
	}()

	app.repl(ctx)
	cancel()
	<-done

	assert.Contains(t, out.String(), "Bye!")
}

func TestHelp_ChangesWithLogin(t *testing.T) {
	app, out := newTestApp(t, http.NotFoundHandler(), "")

	app.printHelp()
	assert.Contains(t, out.String(), "list commands read local data until you log in")
	assert.NotContains(t, out.String(), "logout")

	out.Reset()
	app.session = session.Session{Token: "tok", Email: "a@b.c"}
	app.printHelp()
	assert.Contains(t, out.String(), "logout")
	assert.Contains(t, out.String(), "push, unpush, pushstatus")
}

func TestPrompt_ShowsModeAndEmail(t *testing.T) {
	app, _ := newTestApp(t, http.NotFoundHandler(), "")

	assert.Equal(t, "deskhub (offline)> ", app.prompt())

	app.mode = ModeOnline
	app.session = session.Session{Token: "tok", Email: "a@b.c"}
	assert.Equal(t, "deskhub (a@b.c online)> ", app.prompt())
}
