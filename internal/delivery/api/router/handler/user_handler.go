package handler

import (
	"net/http"
	"time"

	"tunes/config"
	"tunes/internal/delivery/api/middleware"
	"tunes/internal/delivery/api/response"
	"tunes/internal/domain/entity"
	domainerrors "tunes/internal/domain/errors"
	"tunes/internal/errors"
	"tunes/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandler serves the session routes and the caller's own account.
type UserHandler struct {
	auth   usecase.AuthUsecase
	users  usecase.UserUsecase
	cookie sessionCookie
}

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	Auth   usecase.AuthUsecase
	Users  usecase.UserUsecase
	Config *config.Config
}

func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		auth:   params.Auth,
		users:  params.Users,
		cookie: newSessionCookie(params.Config),
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	User      entity.Identity `json:"user"`
	ExpiresAt time.Time       `json:"expiresAt"`
}

type signUpRequest struct {
	Name     string      `json:"name" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required"`
	Photo    *string     `json:"photo"`
	Role     entity.Role `json:"role"`
}

// Login checks the credentials and sets the session cookie.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.auth.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookie.set(c, output.Token, output.ExpiresAt)

	return response.Success(c, http.StatusOK, loginResponse{User: output.Identity, ExpiresAt: output.ExpiresAt})
}

// Logout expires the session cookie. The token itself stays valid until its expiry.
func (h *UserHandler) Logout(c echo.Context) error {
	h.cookie.clear(c)

	return c.NoContent(http.StatusNoContent)
}

// SignUp is the public registration. It only creates regular users.
func (h *UserHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.users.Register(c.Request().Context(), usecase.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Photo:    req.Photo,
		Role:     req.Role,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user)
}

func (h *UserHandler) Account(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.users.GetUser(c.Request().Context(), identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}

func (h *UserHandler) AccountMusics(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	musics, err := h.users.ListListenedMusics(c.Request().Context(), identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, musics)
}

func (h *UserHandler) AddAccountMusic(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req listeningRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.users.AddListenedMusic(c.Request().Context(), identity.ID, req.MusicID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *UserHandler) RemoveAccountMusic(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req listeningRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.users.RemoveListenedMusic(c.Request().Context(), identity.ID, req.MusicID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func currentIdentity(c echo.Context) (*entity.Identity, error) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("no identity on request")
	}

	return identity, nil
}
