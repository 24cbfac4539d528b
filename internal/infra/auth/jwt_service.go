// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tunes/config"
	"tunes/internal/domain/entity"
	"tunes/internal/domain/service"
	"tunes/internal/errors"
)

// SessionClaims is the payload of a session token. The identity sits under "user".
type SessionClaims struct {
	User entity.Identity `json:"user"`
	jwt.RegisteredClaims
}

// jwtService signs and verifies HS256 session tokens with a single process-wide secret.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// An empty secret is a configuration error and stops start-up.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	svc, err := newJWTService(cfg.Auth.SecretKey, cfg.Auth.TokenTTL, cfg.Env.ServiceName, time.Now)
	if err != nil {
		return nil, err
	}

	return svc, nil
}

func newJWTService(secret string, ttl time.Duration, issuer string, now func() time.Time) (*jwtService, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if ttl <= 0 {
		return nil, errors.Errorf("jwt ttl must be positive, got %s", ttl)
	}

	return &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
		now:    now,
	}, nil
}

// Issue signs a token carrying identity that expires ttl after now.
func (s *jwtService) Issue(identity entity.Identity) (*entity.SessionToken, error) {
	issuedAt := jwt.NewNumericDate(s.now())
	expiresAt := jwt.NewNumericDate(issuedAt.Add(s.ttl))

	claims := SessionClaims{
		User: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   strconv.FormatUint(uint64(identity.ID), 10),
			IssuedAt:  issuedAt,
			ExpiresAt: expiresAt,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, errors.Wrap(err, "sign session token")
	}

	return &entity.SessionToken{
		Value:     signed,
		ExpiresAt: expiresAt.Time,
	}, nil
}

// Verify checks signature, algorithm and expiry, then returns the embedded identity.
// A token is accepted only while now is strictly before its expiry.
func (s *jwtService) Verify(token string) (*entity.Identity, error) {
	claims := &SessionClaims{}

	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Wrap(service.ErrTokenExpired, err.Error())
		}

		return nil, errors.Wrap(service.ErrTokenInvalid, err.Error())
	}

	if claims.User.ID == 0 || !claims.User.Role.IsValid() {
		return nil, errors.Wrap(service.ErrTokenInvalid, "token carries no usable identity")
	}

	identity := claims.User

	return &identity, nil
}

// TTL returns the configured session lifetime.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
