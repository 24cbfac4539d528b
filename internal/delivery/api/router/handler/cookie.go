package handler

import (
	"net/http"
	"time"

	"tunes/config"

	"github.com/labstack/echo/v4"
)

// sessionCookie writes and clears the cookie that carries the session token.
type sessionCookie struct {
	name   string
	secure bool
}

func newSessionCookie(cfg *config.Config) sessionCookie {
	return sessionCookie{
		name:   cfg.Auth.CookieName,
		secure: !cfg.IsDevelopment(),
	}
}

func (s sessionCookie) set(c echo.Context, token string, expiresAt time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     s.name,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s sessionCookie) clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
