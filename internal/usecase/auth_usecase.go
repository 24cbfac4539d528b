// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"tunes/internal/domain/entity"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput carries the signed session token and the identity it encodes.
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	Identity  entity.Identity
}

// AuthUsecase covers credential verification, session issuance and request authorization.
type AuthUsecase interface {
	// Login verifies the credentials and issues a session token.
	// Unknown email and wrong password fail identically.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	// Authenticate verifies a session token and returns its identity.
	Authenticate(ctx context.Context, token string) (*entity.Identity, error)
	// Authorize succeeds when the identity's role is one of allowed.
	Authorize(ctx context.Context, identity *entity.Identity, allowed ...entity.Role) error
}
