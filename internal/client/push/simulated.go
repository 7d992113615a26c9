package push

import (
	"context"
	"crypto/ecdh"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"

	"github.com/ysemenovs/deskhub/internal/client/models"
	"github.com/ysemenovs/deskhub/internal/common"
)

// SimulatedPlatform is an in-process Platform for environments without a
// real push service (the CLI, tests). It mints genuine P-256 key material
// and a fake endpoint so the whole lifecycle can be exercised end to end.
type SimulatedPlatform struct {
	mu         sync.Mutex
	supported  bool
	permission Permission
	registered bool
	sub        *models.PushSubscription
}

// NewSimulatedPlatform returns a supported platform in the "default"
// permission state that grants permission when prompted.
func NewSimulatedPlatform() *SimulatedPlatform {
	return &SimulatedPlatform{supported: true, permission: PermissionDefault}
}

// SetSupported toggles the capability probe result.
func (p *SimulatedPlatform) SetSupported(v bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.supported = v
}

// SetPermission forces a permission state; RequestPermission will not
// change a forced "denied".
func (p *SimulatedPlatform) SetPermission(perm Permission) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.permission = perm
}

func (p *SimulatedPlatform) Supported() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.supported
}

func (p *SimulatedPlatform) RegisterWorker(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.registered = true
	return nil
}

func (p *SimulatedPlatform) Permission(ctx context.Context) (Permission, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.permission, nil
}

func (p *SimulatedPlatform) RequestPermission(ctx context.Context) (Permission, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.permission == PermissionDefault {
		p.permission = PermissionGranted
	}
	return p.permission, nil
}

func (p *SimulatedPlatform) Subscription(ctx context.Context) (*models.PushSubscription, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.sub == nil {
		return nil, nil
	}
	copied := *p.sub
	return &copied, nil
}

func (p *SimulatedPlatform) Subscribe(ctx context.Context, serverKey []byte) (models.PushSubscription, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.registered {
		return models.PushSubscription{}, fmt.Errorf("no worker registered")
	}
	if len(serverKey) != 65 {
		return models.PushSubscription{}, fmt.Errorf("server key must be a 65-byte uncompressed P-256 point, got %d bytes", len(serverKey))
	}

	priv, err := ecdh.P256().GenerateKey(rand.Reader)
	if err != nil {
		return models.PushSubscription{}, fmt.Errorf("generate client key: %w", err)
	}

	token, err := common.RandHexString(16)
	if err != nil {
		return models.PushSubscription{}, err
	}

	enc := base64.RawURLEncoding
	sub := models.PushSubscription{
		Endpoint: "https://push.simulated.local/send/" + token,
		Keys: models.PushKeys{
			P256dh: enc.EncodeToString(priv.PublicKey().Bytes()),
			Auth:   enc.EncodeToString(common.RandBytes(16)),
		},
	}
	p.sub = &sub
	return sub, nil
}

func (p *SimulatedPlatform) Unsubscribe(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sub = nil
	return nil
}
