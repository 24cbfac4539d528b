package middleware

import (
	"tunes/config"
	deliverycontext "tunes/internal/delivery/context"
	"tunes/internal/domain/entity"
	"tunes/internal/errors"
	"tunes/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddleware resolves the session cookie into an identity and gates routes by role.
type AuthMiddleware struct {
	auth       usecase.AuthUsecase
	cookieName string
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Auth   usecase.AuthUsecase
	Config *config.Config
}

func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		auth:       params.Auth,
		cookieName: params.Config.Auth.CookieName,
	}
}

// Authenticate verifies the session cookie and stores the identity on the request context.
// A missing, expired or tampered cookie ends the request as unauthenticated.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var token string
		if cookie, err := c.Cookie(m.cookieName); err == nil {
			token = cookie.Value
		}

		ctx := c.Request().Context()
		identity, err := m.auth.Authenticate(ctx, token)
		if err != nil {
			return errors.WithStack(err)
		}

		c.SetRequest(c.Request().WithContext(deliverycontext.WithIdentity(ctx, identity)))

		return next(c)
	}
}

// RequireRole admits only identities whose role is in roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			identity, _ := deliverycontext.GetIdentity(ctx)
			if err := m.auth.Authorize(ctx, identity, roles...); err != nil {
				return errors.WithStack(err)
			}

			return next(c)
		}
	}
}

// CurrentIdentity returns the identity stored by Authenticate.
func CurrentIdentity(c echo.Context) (*entity.Identity, bool) {
	return deliverycontext.GetIdentity(c.Request().Context())
}
