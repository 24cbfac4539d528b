package service

import (
	"errors"
	"time"

	"tunes/internal/domain/entity"
)

var (
	// ErrTokenExpired is returned for a well-formed token whose expiry has passed.
	ErrTokenExpired = errors.New("session token expired")
	// ErrTokenInvalid covers malformed tokens, bad signatures and unexpected algorithms.
	ErrTokenInvalid = errors.New("session token invalid")
)

// TokenService issues and verifies signed session tokens.
// Implementations hold no per-session state, so both methods are safe for concurrent use.
type TokenService interface {
	// Issue signs a token carrying the identity, valid for the configured TTL.
	Issue(identity entity.Identity) (*entity.SessionToken, error)

	// Verify checks signature and expiry and returns the embedded identity.
	Verify(token string) (*entity.Identity, error)

	// TTL returns the configured session lifetime.
	TTL() time.Duration
}
