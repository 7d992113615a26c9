package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ysemenovs/deskhub/internal/client/models"
)

func TestGetAppConfig_Normalizes(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/config/app", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"app_name": "DeskHub", "language": "en", "theme": "dark",
		})
	})
	c, _ := newTestClient(t, mux)

	cfg, err := c.GetAppConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, AppConfig{AppName: "DeskHub", Language: "en", Theme: "dark"}, cfg)
}

func TestUpdateAppConfig_SendsSnakeCase(t *testing.T) {
	var body map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/config/app", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		json.NewEncoder(w).Encode(map[string]string{"app_name": "Renamed"})
	})
	c, _ := newTestClient(t, mux)

	name := "Renamed"
	cfg, err := c.UpdateAppConfig(context.Background(), UpdateAppConfigInput{AppName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", cfg.AppName)
	assert.Equal(t, "Renamed", body["app_name"])
	assert.NotContains(t, body, "appName")
}

func TestMarkNotificationRead_Routes(t *testing.T) {
	var gotPath string
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/notifications/{rest...}", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})
	c, _ := newTestClient(t, mux)

	require.NoError(t, c.MarkNotificationRead(context.Background(), models.ID("15")))
	assert.Equal(t, "/api/notifications/15/read", gotPath)

	require.NoError(t, c.MarkAllNotificationsRead(context.Background()))
	assert.Equal(t, "/api/notifications/read-all", gotPath)
}

func TestPushEndpoints(t *testing.T) {
	var registered models.PushSubscription
	var unregistered string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/push/public-key", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"public_key": "BAbc-_123"})
	})
	mux.HandleFunc("POST /api/push/subscribe", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&registered))
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("POST /api/push/unsubscribe", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Endpoint string `json:"endpoint"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		unregistered = body.Endpoint
	})
	c, _ := newTestClient(t, mux)
	ctx := context.Background()

	key, err := c.PushPublicKey(ctx)
	require.NoError(t, err)
	assert.Equal(t, "BAbc-_123", key)

	sub := models.PushSubscription{Endpoint: "https://push.example/send/1"}
	sub.Keys.P256dh = "pk"
	sub.Keys.Auth = "auth"
	require.NoError(t, c.RegisterPushSubscription(ctx, sub))
	assert.Equal(t, sub, registered)

	require.NoError(t, c.UnregisterPushSubscription(ctx, sub.Endpoint))
	assert.Equal(t, sub.Endpoint, unregistered)
}

func TestPing(t *testing.T) {
	status := "ok"
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": status})
	})
	c, _ := newTestClient(t, mux)

	require.NoError(t, c.Ping(context.Background()))

	status = "degraded"
	assert.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestUpdateProfile_AvatarAbsolutized(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/profile", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"id": 1, "name": "Ada", "email": "ada@deskhub.io",
			"avatar": "/uploads/avatars/1.png",
		})
	})
	c, srv := newTestClient(t, mux)

	name := "Ada"
	user, err := c.UpdateProfile(context.Background(), UpdateProfileInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/uploads/avatars/1.png", user.AvatarURL)
}
