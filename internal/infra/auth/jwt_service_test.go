package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tunes/config"
	"tunes/internal/domain/entity"
	"tunes/internal/domain/service"
)

const testSecret = "test_session_secret_key_very_long_for_testing"

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestJWTService(t *testing.T, clock *fakeClock, ttl time.Duration) *jwtService {
	t.Helper()

	svc, err := newJWTService(testSecret, ttl, "tunes", clock.Now)
	require.NoError(t, err)

	return svc
}

func testIdentity() entity.Identity {
	return entity.Identity{ID: 7, Email: "ana@example.com", Role: entity.RoleAdmin, Name: "Ana"}
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestJWTService(t, clock, time.Hour)

	token, err := svc.Issue(testIdentity())
	require.NoError(t, err)
	assert.NotEmpty(t, token.Value)
	assert.Equal(t, clock.now.Add(time.Hour), token.ExpiresAt)

	identity, err := svc.Verify(token.Value)
	require.NoError(t, err)
	assert.Equal(t, testIdentity(), *identity)
}

func TestJWTService_VerifyIsIdempotent(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestJWTService(t, clock, time.Hour)

	token, err := svc.Issue(testIdentity())
	require.NoError(t, err)

	first, err := svc.Verify(token.Value)
	require.NoError(t, err)
	second, err := svc.Verify(token.Value)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestJWTService_ExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{now: issuedAt}
	svc := newTestJWTService(t, clock, time.Hour)

	token, err := svc.Issue(testIdentity())
	require.NoError(t, err)

	t.Run("one second before expiry", func(t *testing.T) {
		clock.now = issuedAt.Add(time.Hour - time.Second)
		_, err := svc.Verify(token.Value)
		assert.NoError(t, err)
	})

	t.Run("exactly at expiry", func(t *testing.T) {
		clock.now = issuedAt.Add(time.Hour)
		identity, err := svc.Verify(token.Value)
		assert.ErrorIs(t, err, service.ErrTokenExpired)
		assert.Nil(t, identity)
	})

	t.Run("after expiry", func(t *testing.T) {
		clock.now = issuedAt.Add(2 * time.Hour)
		_, err := svc.Verify(token.Value)
		assert.ErrorIs(t, err, service.ErrTokenExpired)
	})
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}

	other, err := newJWTService("another_secret_that_is_not_ours", time.Hour, "tunes", clock.Now)
	require.NoError(t, err)
	token, err := other.Issue(testIdentity())
	require.NoError(t, err)

	svc := newTestJWTService(t, clock, time.Hour)
	identity, err := svc.Verify(token.Value)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
	assert.NotErrorIs(t, err, service.ErrTokenExpired)
	assert.Nil(t, identity)
}

func TestJWTService_RejectsMalformedTokens(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestJWTService(t, clock, time.Hour)

	for _, raw := range []string{"", "clearly-not-a-jwt-token-format", "a.b.c"} {
		_, err := svc.Verify(raw)
		assert.ErrorIs(t, err, service.ErrTokenInvalid, "token %q", raw)
	}
}

func TestJWTService_RejectsTamperedPayload(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestJWTService(t, clock, time.Hour)

	token, err := svc.Issue(entity.Identity{ID: 3, Email: "u@example.com", Role: entity.RoleUser, Name: "U"})
	require.NoError(t, err)

	// Elevated payload spliced onto the original header and signature.
	forged, err := other(t, clock).Issue(entity.Identity{ID: 3, Email: "u@example.com", Role: entity.RoleAdmin, Name: "U"})
	require.NoError(t, err)

	original := splitToken(token.Value)
	elevated := splitToken(forged.Value)
	tampered := original[0] + "." + elevated[1] + "." + original[2]

	_, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_RejectsUnexpectedAlgorithm(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestJWTService(t, clock, time.Hour)

	claims := SessionClaims{
		User: testIdentity(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(clock.now.Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_RejectsTokenWithoutExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestJWTService(t, clock, time.Hour)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{User: testIdentity()}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_RejectsUnknownRole(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestJWTService(t, clock, time.Hour)

	token, err := svc.Issue(entity.Identity{ID: 1, Email: "x@example.com", Role: "root", Name: "X"})
	require.NoError(t, err)

	_, err = svc.Verify(token.Value)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestNewJWTService_FromConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth.SecretKey = testSecret
	cfg.Auth.TokenTTL = 30 * time.Minute

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, svc.TTL())
}

func TestNewJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth.TokenTTL = time.Hour

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func other(t *testing.T, clock *fakeClock) *jwtService {
	t.Helper()

	svc, err := newJWTService("attacker_controlled_secret", time.Hour, "tunes", clock.Now)
	require.NoError(t, err)

	return svc
}

func splitToken(token string) []string {
	return strings.SplitN(token, ".", 3)
}
