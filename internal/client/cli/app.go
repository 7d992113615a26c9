// Package cli is the interactive DeskHub client. It wires the API client,
// the push manager, the assistant and the local fallback store into a
// small REPL.
package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/ysemenovs/deskhub/internal/client/api"
	"github.com/ysemenovs/deskhub/internal/client/assistant"
	"github.com/ysemenovs/deskhub/internal/client/config"
	"github.com/ysemenovs/deskhub/internal/client/push"
	"github.com/ysemenovs/deskhub/internal/client/session"
	"github.com/ysemenovs/deskhub/internal/client/store"
	"github.com/ysemenovs/deskhub/internal/logging"
)

// Mode reflects backend reachability. In offline mode list commands fall
// back to the local store.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

type App struct {
	config    *config.Config
	client    *api.Client
	store     *store.Store
	push      *push.Manager
	assistant *assistant.Assistant
	log       logging.Logger

	session session.Session

	// mode is written by the online-status watcher goroutine and read by
	// the REPL goroutine; modeMu guards it.
	modeMu sync.Mutex
	mode   Mode

	in  *bufio.Reader
	out io.Writer
}

// NewApp builds a fully wired App. The caller owns the lifecycle and must
// Close it.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewDefault(os.Stderr, slog.LevelInfo)

	st, err := store.Open(ctx, cfg.DataFile)
	if err != nil {
		return nil, err
	}

	client, err := api.New(cfg.APIBaseURL,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithLogger(log.With("component", "api")),
	)
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	platform := push.NewSimulatedPlatform()
	mgr := push.NewManager(client, platform, push.WithLogger(log.With("component", "push")))

	return &App{
		config:    cfg,
		client:    client,
		store:     st,
		push:      mgr,
		assistant: assistant.New(client, assistant.WithLogger(log.With("component", "assistant"))),
		log:       log,
		mode:      ModeOffline,
		in:        bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

func (a *App) Close() error {
	return a.store.Close()
}

// Run enters the REPL until EOF or an exit command.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.watchOnlineStatus(ctx, a.config.OnlineCheckInterval)

	a.restoreSession(ctx)
	a.repl(ctx)
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()

	if changed {
		a.log.Info(ctx, "connectivity changed", "mode", mode)
	}
}

func (a *App) currentMode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.mode
}

// watchOnlineStatus pings the server on an interval and flips the mode
// accordingly.
func (a *App) watchOnlineStatus(ctx context.Context, interval time.Duration) {
	probe := func() {
		probeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := a.client.Ping(probeCtx); err != nil {
			a.setMode(ctx, ModeOffline)
		} else {
			a.setMode(ctx, ModeOnline)
		}
	}
	probe()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probe()
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Token != ""
}
