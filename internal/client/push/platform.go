package push

import (
	"context"

	"github.com/ysemenovs/deskhub/internal/client/models"
)

// Permission is the user's notification permission state on the platform.
type Permission string

const (
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// Platform abstracts the host environment's push capability: worker
// registration, the permission prompt, and subscription management. The
// manager drives it and never reaches around it.
type Platform interface {
	// Supported reports whether the environment can receive push
	// messages at all.
	Supported() bool

	// RegisterWorker registers the background worker that will receive
	// pushes.
	RegisterWorker(ctx context.Context) error

	// Permission returns the current grant state without prompting.
	Permission(ctx context.Context) (Permission, error)

	// RequestPermission prompts the user if needed and returns the
	// resulting grant state.
	RequestPermission(ctx context.Context) (Permission, error)

	// Subscription returns the existing platform subscription, or nil
	// when none is held.
	Subscription(ctx context.Context) (*models.PushSubscription, error)

	// Subscribe creates a new platform subscription scoped to the
	// application server key (raw VAPID public key bytes).
	Subscribe(ctx context.Context, serverKey []byte) (models.PushSubscription, error)

	// Unsubscribe cancels the current platform subscription, if any.
	Unsubscribe(ctx context.Context) error
}

// Server is the slice of the API client the manager needs to mirror
// subscription state server-side.
type Server interface {
	PushPublicKey(ctx context.Context) (string, error)
	RegisterPushSubscription(ctx context.Context, sub models.PushSubscription) error
	UnregisterPushSubscription(ctx context.Context, endpoint string) error
}
