package context

import (
	"context"

	"tunes/internal/domain/entity"
)

type identityKey struct{}

// WithIdentity attaches the verified session identity to ctx.
func WithIdentity(ctx context.Context, identity *entity.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentity returns the identity attached by the session middleware.
// ok is false on routes that did not authenticate.
func GetIdentity(ctx context.Context) (*entity.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(*entity.Identity)

	return identity, ok && identity != nil
}
