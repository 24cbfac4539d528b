// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	deliverycontext "tunes/internal/delivery/context"
	"tunes/internal/domain/entity"
	domainerrors "tunes/internal/domain/errors"
	"tunes/internal/domain/repository"
	"tunes/internal/domain/service"
	"tunes/internal/errors"
	"tunes/internal/usecase"

	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger

	decoyOnce sync.Once
	decoyHash string
}

// decoyPassword is hashed once and compared against when the email is unknown.
const decoyPassword = "tunes-unknown-account"

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login finds the user by exact email, checks the password and issues a session token.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and password are required")
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.checkDecoy(input.Password)
		srv.log(ctx).Info("Login rejected", slog.String("reason", "unknown email"))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login rejected", slog.String("reason", "password mismatch"), slog.Uint64("user_id", uint64(user.ID)))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Issue(user.Identity())
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.Any("error", err))

		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("User logged in", slog.Uint64("user_id", uint64(user.ID)), slog.String("role", user.Role.String()))

	return &usecase.LoginOutput{
		Token:     token.Value,
		ExpiresAt: token.ExpiresAt,
		Identity:  user.Identity(),
	}, nil
}

// checkDecoy spends one password comparison so an unknown email costs as much as a wrong password.
func (srv *authService) checkDecoy(password string) {
	srv.decoyOnce.Do(func() {
		hash, err := srv.hasher.Hash(decoyPassword)
		if err != nil {
			srv.logger.Error("Failed to hash decoy password", slog.Any("error", err))

			return
		}
		srv.decoyHash = hash
	})

	if srv.decoyHash != "" {
		srv.hasher.Check(password, srv.decoyHash)
	}
}

// Authenticate verifies the token. Every failure surfaces as ErrUnauthenticated;
// the log line records whether the token was missing, expired or invalid.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.Identity, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("no session token")
	}

	identity, err := srv.tokenService.Verify(token)
	if err != nil {
		reason := "invalid session token"
		if errors.Is(err, service.ErrTokenExpired) {
			reason = "expired session token"
		}
		srv.log(ctx).Warn("Session token rejected", slog.String("reason", reason), slog.Any("error", err))

		return nil, domainerrors.ErrUnauthenticated.WrapMessage(reason)
	}

	return identity, nil
}

// Authorize checks the identity's role against allowed. A missing identity is unauthenticated.
func (srv *authService) Authorize(ctx context.Context, identity *entity.Identity, allowed ...entity.Role) error {
	if identity == nil {
		return domainerrors.ErrUnauthenticated.WrapMessage("no identity on request")
	}

	if !identity.HasAnyRole(allowed...) {
		srv.log(ctx).Info("Role check failed",
			slog.Uint64("user_id", uint64(identity.ID)),
			slog.String("role", identity.Role.String()),
			slog.Any("allowed", entity.Roles(allowed).ToStrings()),
		)

		return domainerrors.ErrNotAuthorized
	}

	return nil
}
