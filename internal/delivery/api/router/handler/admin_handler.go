package handler

import (
	"net/http"

	"tunes/internal/delivery/api/response"
	"tunes/internal/domain/entity"
	"tunes/internal/errors"
	"tunes/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AdminHandler lets administrators manage any account and its listening history.
type AdminHandler struct {
	users usecase.UserUsecase
}

func NewAdminHandler(users usecase.UserUsecase) *AdminHandler {
	return &AdminHandler{users: users}
}

type createUserRequest struct {
	Name     string      `json:"name" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required"`
	Photo    *string     `json:"photo"`
	Role     entity.Role `json:"role" validate:"omitempty,oneof=user admin"`
}

type updateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" validate:"omitempty,email"`
	Photo *string `json:"photo"`
}

type updateRoleRequest struct {
	Role entity.Role `json:"role" validate:"required,oneof=user admin"`
}

type updatePasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.users.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users)
}

func (h *AdminHandler) GetUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.users.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}

func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.users.CreateUser(c.Request().Context(), usecase.CreateUserInput{
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

func (h *AdminHandler) UpdateUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.users.UpdateUser(c.Request().Context(), id, usecase.UpdateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Photo: req.Photo,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}

func (h *AdminHandler) UpdateRole(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.users.UpdateRole(c.Request().Context(), id, req.Role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}

func (h *AdminHandler) UpdatePassword(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updatePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.users.UpdatePassword(c.Request().Context(), id, req.Password); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.users.DeleteUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}

func (h *AdminHandler) ListUserMusics(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	musics, err := h.users.ListListenedMusics(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, musics)
}

func (h *AdminHandler) AddUserMusic(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req listeningRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.users.AddListenedMusic(c.Request().Context(), id, req.MusicID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) RemoveUserMusic(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req listeningRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.users.RemoveListenedMusic(c.Request().Context(), id, req.MusicID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
