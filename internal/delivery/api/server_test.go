package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tunes/config"
	apimiddleware "tunes/internal/delivery/api/middleware"
	"tunes/internal/delivery/api/router"
	"tunes/internal/delivery/api/router/handler"
	"tunes/internal/domain/entity"
	"tunes/internal/domain/repository"
	"tunes/internal/infra/auth"
	mockRepo "tunes/internal/mocks/repository"
	"tunes/internal/usecase/impl"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

type apiFixtures struct {
	echo       *echo.Echo
	cfg        *config.Config
	userRepo   *mockRepo.MockUserRepository
	artistRepo *mockRepo.MockArtistRepository
	users      map[string]*entity.User
}

// newAPIFixtures wires the real router, jwt and bcrypt services over mocked repositories.
// It knows two accounts: ana@tunes.io (admin) and bo@tunes.io (user), both with password "secret1".
func newAPIFixtures(t *testing.T, env string) apiFixtures {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Env = env
	cfg.Env.ServiceName = "tunes-test"
	cfg.Auth.SecretKey = testSecret
	cfg.Auth.TokenTTL = time.Hour
	cfg.Auth.CookieName = "jwt"
	cfg.Auth.BcryptCost = bcrypt.MinCost
	cfg.Auth.MinPasswordLength = 6
	cfg.HTTP.MaxRequestBodySize = "100KB"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	hasher := auth.NewBcryptHasher(cfg)
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)
	users := map[string]*entity.User{
		"ana@tunes.io": {ID: 1, Name: "Ana", Email: "ana@tunes.io", Role: entity.RoleAdmin, PasswordHash: hash},
		"bo@tunes.io":  {ID: 2, Name: "Bo", Email: "bo@tunes.io", Role: entity.RoleUser, PasswordHash: hash},
	}

	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	artistRepo := mockRepo.NewMockArtistRepository(t)
	musicRepo := mockRepo.NewMockMusicRepository(t)
	listeningRepo := mockRepo.NewMockListeningRepository(t)

	authUsecase := impl.NewAuthService(impl.AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokens,
		Logger:       logger,
	})
	userUsecase := impl.NewUserService(impl.UserServiceParams{
		TxManager:     txManager,
		UserRepo:      userRepo,
		ListeningRepo: listeningRepo,
		Hasher:        hasher,
		Config:        cfg,
		Logger:        logger,
	})
	artistUsecase := impl.NewArtistService(impl.ArtistServiceParams{
		TxManager:  txManager,
		ArtistRepo: artistRepo,
		MusicRepo:  musicRepo,
		Logger:     logger,
	})
	musicUsecase := impl.NewMusicService(impl.MusicServiceParams{
		TxManager:     txManager,
		MusicRepo:     musicRepo,
		ArtistRepo:    artistRepo,
		ListeningRepo: listeningRepo,
		Logger:        logger,
	})

	e := NewEcho(cfg, logger, router.RouterParams{
		UserHandler: handler.NewUserHandler(handler.UserHandlerParams{
			Auth:   authUsecase,
			Users:  userUsecase,
			Config: cfg,
		}),
		AdminHandler:  handler.NewAdminHandler(userUsecase),
		ArtistHandler: handler.NewArtistHandler(artistUsecase),
		MusicHandler:  handler.NewMusicHandler(musicUsecase),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{
			Auth:   authUsecase,
			Config: cfg,
		}),
	})

	return apiFixtures{echo: e, cfg: cfg, userRepo: userRepo, artistRepo: artistRepo, users: users}
}

func (fx apiFixtures) serve(method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

// login signs in and returns the session cookie.
func (fx apiFixtures) login(t *testing.T, email string) *http.Cookie {
	t.Helper()

	fx.userRepo.On("FindByEmail", mock.Anything, email).Return(fx.users[email], nil).Once()

	rec := fx.serve(http.MethodPost, "/api/users/login", `{"email":"`+email+`","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	return sessionCookieFrom(t, rec)
}

func sessionCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, c := range rec.Result().Cookies() {
		if c.Name == "jwt" {
			return c
		}
	}
	require.FailNow(t, "no jwt cookie in response")

	return nil
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	fx := newAPIFixtures(t, "production")

	cookie := fx.login(t, "bo@tunes.io")
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)
}

func TestLogin_DevelopmentCookieIsNotSecure(t *testing.T) {
	fx := newAPIFixtures(t, config.EnvDevelopment)

	assert.False(t, fx.login(t, "bo@tunes.io").Secure)
}

func TestLogin_WrongPasswordAndUnknownEmailLookTheSame(t *testing.T) {
	fx := newAPIFixtures(t, "production")
	fx.userRepo.On("FindByEmail", mock.Anything, "bo@tunes.io").Return(fx.users["bo@tunes.io"], nil).Once()
	fx.userRepo.On("FindByEmail", mock.Anything, "nobody@tunes.io").Return(nil, repository.ErrUserNotFound).Once()

	wrong := fx.serve(http.MethodPost, "/api/users/login", `{"email":"bo@tunes.io","password":"nope-nope"}`)
	unknown := fx.serve(http.MethodPost, "/api/users/login", `{"email":"nobody@tunes.io","password":"secret1"}`)

	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, wrong.Code, unknown.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, wrong))
	assert.Equal(t, errorCode(t, wrong), errorCode(t, unknown))
	assert.Empty(t, wrong.Result().Cookies())
}

func TestAccount_WithSessionCookie(t *testing.T) {
	fx := newAPIFixtures(t, "production")
	cookie := fx.login(t, "bo@tunes.io")
	fx.userRepo.On("FindByID", mock.Anything, uint(2)).Return(fx.users["bo@tunes.io"], nil).Once()

	rec := fx.serve(http.MethodGet, "/api/users/account", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"bo@tunes.io"`)
	assert.NotContains(t, rec.Body.String(), "$2a$")
}

func TestRoleGate(t *testing.T) {
	fx := newAPIFixtures(t, "production")

	t.Run("no cookie", func(t *testing.T) {
		rec := fx.serve(http.MethodGet, "/api/admin", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHENTICATED", errorCode(t, rec))
	})

	t.Run("user on admin route", func(t *testing.T) {
		cookie := fx.login(t, "bo@tunes.io")

		rec := fx.serve(http.MethodGet, "/api/admin", "", cookie)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "NOT_AUTHORIZED", errorCode(t, rec))
	})

	t.Run("admin on admin route", func(t *testing.T) {
		cookie := fx.login(t, "ana@tunes.io")
		fx.userRepo.On("FindAll", mock.Anything).Return([]*entity.User{fx.users["ana@tunes.io"]}, nil).Once()

		rec := fx.serve(http.MethodGet, "/api/admin", "", cookie)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("user cannot write the catalog", func(t *testing.T) {
		cookie := fx.login(t, "bo@tunes.io")

		rec := fx.serve(http.MethodPost, "/api/artist", `{"name":"Nina","photo":"n.png"}`, cookie)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestRejectedTokens(t *testing.T) {
	fx := newAPIFixtures(t, "production")
	identity := entity.Identity{ID: 1, Email: "ana@tunes.io", Role: entity.RoleAdmin, Name: "Ana"}

	sign := func(secret string, expiresAt time.Time) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.SessionClaims{
			User: identity,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(expiresAt),
			},
		}).SignedString([]byte(secret))
		require.NoError(t, err)

		return token
	}

	valid := fx.login(t, "ana@tunes.io").Value
	parts := strings.Split(valid, ".")
	require.Len(t, parts, 3)

	cases := map[string]string{
		"expired":        sign(testSecret, time.Now().Add(-time.Minute)),
		"foreign secret": sign("other-secret", time.Now().Add(time.Hour)),
		"tampered":       parts[0] + "." + parts[1] + "x." + parts[2],
		"garbage":        "not-a-token",
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			rec := fx.serve(http.MethodGet, "/api/admin", "", &http.Cookie{Name: "jwt", Value: token})
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "UNAUTHENTICATED", errorCode(t, rec))
		})
	}
}

func TestLogout_ClearsCookie(t *testing.T) {
	fx := newAPIFixtures(t, "production")

	assert.Equal(t, http.StatusUnauthorized, fx.serve(http.MethodPost, "/api/users/logout", "").Code)

	cookie := fx.login(t, "bo@tunes.io")
	rec := fx.serve(http.MethodPost, "/api/users/logout", "", cookie)
	require.Equal(t, http.StatusNoContent, rec.Code)

	cleared := sessionCookieFrom(t, rec)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
}

func TestPublicCatalogReads(t *testing.T) {
	fx := newAPIFixtures(t, "production")
	fx.artistRepo.On("FindAll", mock.Anything).Return([]*entity.Artist{{ID: 1, Name: "Nina"}}, nil).Once()

	rec := fx.serve(http.MethodGet, "/api/artist", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	rec = fx.serve(http.MethodGet, "/api/artist/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
}

func TestSignUp_CannotCreateAdmin(t *testing.T) {
	fx := newAPIFixtures(t, "production")

	rec := fx.serve(http.MethodPost, "/api/users/create",
		`{"name":"Eve","email":"eve@tunes.io","password":"secret1","role":"admin"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ADMIN_REGISTRATION_FORBIDDEN", errorCode(t, rec))
}

func TestSignUp_OverlongPasswordIsAClientError(t *testing.T) {
	fx := newAPIFixtures(t, "production")

	rec := fx.serve(http.MethodPost, "/api/users/create",
		`{"name":"Eve","email":"eve@tunes.io","password":"`+strings.Repeat("p", 80)+`"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
}

func TestRoleChangeWaitsForNextLogin(t *testing.T) {
	fx := newAPIFixtures(t, "production")
	cookie := fx.login(t, "bo@tunes.io")

	fx.users["bo@tunes.io"].Role = entity.RoleAdmin

	rec := fx.serve(http.MethodGet, "/api/admin", "", cookie)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "NOT_AUTHORIZED", errorCode(t, rec))

	promoted := fx.login(t, "bo@tunes.io")
	fx.userRepo.On("FindAll", mock.Anything).Return([]*entity.User{fx.users["bo@tunes.io"]}, nil).Once()

	rec = fx.serve(http.MethodGet, "/api/admin", "", promoted)
	assert.Equal(t, http.StatusOK, rec.Code)
}
