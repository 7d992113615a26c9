package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL + "/api")
	require.NoError(t, err)
	return c, srv
}

func TestNew_RejectsRelativeURL(t *testing.T) {
	_, err := New("localhost:3000")
	assert.Error(t, err)
}

func TestLogin_StoresTokenAndAttachesIt(t *testing.T) {
	var gotAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "tok-1",
			"user":  map[string]any{"id": 1, "email": "a@b.c", "name": "A"},
		})
	})
	mux.HandleFunc("GET /api/tasks", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	})

	c, _ := newTestClient(t, mux)

	user, err := c.Login(context.Background(), LoginInput{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "1", user.ID.String())
	assert.Equal(t, "tok-1", c.Token())

	_, err = c.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", gotAuth)
}

func TestToken_SafeForConcurrentUse(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		// alternate between accepting and rejecting so requests both
		// read the token and clear it on 401
		if r.Header.Get("Authorization") != "" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"expired"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	c, _ := newTestClient(t, mux)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				_ = c.Ping(context.Background())
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				c.SetToken("tok")
				_ = c.Token()
				c.ClearToken()
			}
		}()
	}
	wg.Wait()
}

func TestUnauthorized_ClearsStoredToken(t *testing.T) {
	var gotAuth []string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/tasks", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"token expired"}`))
	})

	c, _ := newTestClient(t, mux)
	c.SetToken("stale")

	_, err := c.ListTasks(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, c.Token())

	// the next request must go out without a credential
	_, _ = c.ListTasks(context.Background())
	require.Len(t, gotAuth, 2)
	assert.Equal(t, "Bearer stale", gotAuth[0])
	assert.Empty(t, gotAuth[1])
}

func TestUnauthorized_AnonymousPassesThrough(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/tasks", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"login required"}`))
	})

	c, _ := newTestClient(t, mux)

	_, err := c.ListTasks(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	// no credential was set, so nothing to clear and nothing changed
	assert.Empty(t, c.Token())

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "login required", apiErr.Message)
}

func TestDo_ServerErrorMessageExtracted(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/notes", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"title already taken"}`))
	})

	c, _ := newTestClient(t, mux)
	_, err := c.CreateNote(context.Background(), CreateNoteInput{Title: "dup"})

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "title already taken", apiErr.Message)
}

func TestDo_Unreachable(t *testing.T) {
	c, err := New("http://127.0.0.1:1")
	require.NoError(t, err)

	err = c.Ping(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestValidation_BlocksRequestBeforeNetwork(t *testing.T) {
	called := false
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) { called = true })

	c, _ := newTestClient(t, mux)

	_, err := c.CreateTask(context.Background(), CreateTaskInput{Priority: "urgent"})
	require.Error(t, err)
	assert.False(t, called, "invalid input must not reach the server")

	_, err = c.Login(context.Background(), LoginInput{Email: "not-an-email", Password: "x"})
	require.Error(t, err)
	assert.False(t, called)
}

func TestEndpoint_QueryKeptOutOfPath(t *testing.T) {
	c, err := New("https://deskhub.example.com/api")
	require.NoError(t, err)

	assert.Equal(t, "https://deskhub.example.com/api/documents", c.endpoint("/documents"))
	assert.Equal(t, "https://deskhub.example.com/api/documents?folder_id=7",
		c.endpoint("/documents?folder_id=7"))
}

func TestAbsoluteURL(t *testing.T) {
	c, err := New("https://deskhub.example.com/api")
	require.NoError(t, err)

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/uploads/a.png", "https://deskhub.example.com/uploads/a.png"},
		{"uploads/a.png", "https://deskhub.example.com/uploads/a.png"},
		{"https://cdn.example.com/a.png", "https://cdn.example.com/a.png"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.absoluteURL(tt.in))
	}
}
