// Package push manages the push-notification subscription lifecycle:
// register the background worker, obtain permission, create a platform
// subscription keyed to the server's VAPID identity, and keep the server's
// record of it in sync.
package push

import (
	"context"
	"errors"
	"fmt"

	"github.com/ysemenovs/deskhub/internal/client/models"
	"github.com/ysemenovs/deskhub/internal/logging"
)

var (
	// ErrUnsupported means the platform lacks push messaging entirely.
	// Terminal for the session; nothing else will be attempted.
	ErrUnsupported = errors.New("push messaging not supported on this platform")

	// ErrPermissionDenied means the user declined the notification
	// prompt. Retryable by a later user action.
	ErrPermissionDenied = errors.New("notification permission denied")
)

// State of the subscription lifecycle.
type State string

const (
	StateUnregistered State = "unregistered"
	StateRegistering  State = "registering"
	StateSubscribed   State = "subscribed"
	StateUnsubscribed State = "unsubscribed"
)

// Status is a point-in-time snapshot of platform-side state. It reflects
// only what the platform holds locally; the server's bookkeeping can
// diverge (e.g. the platform dropped the subscription without telling
// anyone) and is deliberately not consulted here.
type Status struct {
	Permission Permission
	Subscribed bool
}

// Manager owns one subscription lifecycle per constructed instance.
// Two instances (two tabs, two processes) may race to subscribe; the
// server's subscribe operation is idempotent on endpoint identity, so the
// race is harmless.
type Manager struct {
	server   Server
	platform Platform
	log      logging.Logger

	state State
	sub   *models.PushSubscription
}

// Option configures a Manager.
type Option func(*Manager)

func WithLogger(l logging.Logger) Option {
	return func(m *Manager) { m.log = l }
}

func NewManager(server Server, platform Platform, opts ...Option) *Manager {
	m := &Manager{
		server:   server,
		platform: platform,
		log:      logging.NewNopLogger(),
		state:    StateUnregistered,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the current lifecycle state.
func (m *Manager) State() State { return m.state }

// Init drives the lifecycle to Subscribed: register the worker, reuse a
// pre-existing platform subscription when one is held (re-confirming it
// with the server, never creating a second one), otherwise run the full
// subscribe procedure. Init may be called again after Unsubscribe.
//
// Returns ErrUnsupported when the platform cannot do push at all and
// ErrPermissionDenied when the user declines the prompt.
func (m *Manager) Init(ctx context.Context) error {
	if !m.platform.Supported() {
		return ErrUnsupported
	}
	m.state = StateRegistering

	if err := m.platform.RegisterWorker(ctx); err != nil {
		return fmt.Errorf("register worker: %w", err)
	}

	existing, err := m.platform.Subscription(ctx)
	if err != nil {
		return fmt.Errorf("query existing subscription: %w", err)
	}
	if existing != nil {
		// already subscribed on the platform; just make sure the
		// server knows
		if err := m.server.RegisterPushSubscription(ctx, *existing); err != nil {
			return fmt.Errorf("confirm subscription: %w", err)
		}
		m.sub = existing
		m.state = StateSubscribed
		m.log.Info(ctx, "existing subscription confirmed", "endpoint", existing.Endpoint)
		return nil
	}

	return m.subscribe(ctx)
}

// subscribe runs the full procedure: permission prompt, server key fetch
// and decode, platform subscribe, server registration. Any failure aborts
// the whole procedure. A failure after the platform subscription was
// created is not rolled back: the platform keeps a subscription the server
// does not know about until the next Init re-confirms it.
func (m *Manager) subscribe(ctx context.Context) error {
	perm, err := m.platform.RequestPermission(ctx)
	if err != nil {
		return fmt.Errorf("request permission: %w", err)
	}
	if perm != PermissionGranted {
		return ErrPermissionDenied
	}

	encoded, err := m.server.PushPublicKey(ctx)
	if err != nil {
		return fmt.Errorf("fetch server key: %w", err)
	}
	serverKey, err := DecodeServerKey(encoded)
	if err != nil {
		return fmt.Errorf("decode server key: %w", err)
	}

	sub, err := m.platform.Subscribe(ctx, serverKey)
	if err != nil {
		return fmt.Errorf("platform subscribe: %w", err)
	}

	if err := m.server.RegisterPushSubscription(ctx, sub); err != nil {
		m.log.Warn(ctx, "platform subscribed but server registration failed",
			"endpoint", sub.Endpoint)
		return fmt.Errorf("register subscription: %w", err)
	}

	m.sub = &sub
	m.state = StateSubscribed
	m.log.Info(ctx, "subscribed", "endpoint", sub.Endpoint)
	return nil
}

// Unsubscribe cancels the platform subscription and then informs the
// server. With no subscription held it is a no-op success and the server
// is not contacted.
func (m *Manager) Unsubscribe(ctx context.Context) error {
	sub, err := m.platform.Subscription(ctx)
	if err != nil {
		return fmt.Errorf("query existing subscription: %w", err)
	}
	if sub == nil {
		m.sub = nil
		return nil
	}

	if err := m.platform.Unsubscribe(ctx); err != nil {
		return fmt.Errorf("platform unsubscribe: %w", err)
	}
	if err := m.server.UnregisterPushSubscription(ctx, sub.Endpoint); err != nil {
		return fmt.Errorf("unregister subscription: %w", err)
	}

	m.sub = nil
	m.state = StateUnsubscribed
	m.log.Info(ctx, "unsubscribed", "endpoint", sub.Endpoint)
	return nil
}

// Status reports the platform-side permission state and whether a platform
// subscription currently exists.
func (m *Manager) Status(ctx context.Context) (Status, error) {
	perm, err := m.platform.Permission(ctx)
	if err != nil {
		return Status{}, fmt.Errorf("query permission: %w", err)
	}
	sub, err := m.platform.Subscription(ctx)
	if err != nil {
		return Status{}, fmt.Errorf("query existing subscription: %w", err)
	}
	return Status{Permission: perm, Subscribed: sub != nil}, nil
}
