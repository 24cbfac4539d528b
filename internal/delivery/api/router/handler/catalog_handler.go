package handler

import (
	"net/http"

	"tunes/internal/delivery/api/response"
	"tunes/internal/errors"
	"tunes/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ArtistHandler serves the artist catalog.
type ArtistHandler struct {
	artists usecase.ArtistUsecase
}

func NewArtistHandler(artists usecase.ArtistUsecase) *ArtistHandler {
	return &ArtistHandler{artists: artists}
}

type createArtistRequest struct {
	Name   string `json:"name" validate:"required"`
	Photo  string `json:"photo" validate:"required"`
	Stream *int   `json:"stream" validate:"omitempty,min=0"`
}

type updateArtistRequest struct {
	Name   *string `json:"name"`
	Photo  *string `json:"photo"`
	Stream *int    `json:"stream" validate:"omitempty,min=0"`
}

func (h *ArtistHandler) Create(c echo.Context) error {
	var req createArtistRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	artist, err := h.artists.Create(c.Request().Context(), usecase.CreateArtistInput{
		Name:   req.Name,
		Photo:  req.Photo,
		Stream: req.Stream,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, artist)
}

func (h *ArtistHandler) List(c echo.Context) error {
	artists, err := h.artists.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, artists)
}

func (h *ArtistHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	artist, err := h.artists.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, artist)
}

func (h *ArtistHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateArtistRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	artist, err := h.artists.Update(c.Request().Context(), id, usecase.UpdateArtistInput{
		Name:   req.Name,
		Photo:  req.Photo,
		Stream: req.Stream,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, artist)
}

func (h *ArtistHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	artist, err := h.artists.Delete(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, artist)
}

func (h *ArtistHandler) ListMusics(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	musics, err := h.artists.ListMusics(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, musics)
}

// MusicHandler serves the track catalog.
type MusicHandler struct {
	musics usecase.MusicUsecase
}

func NewMusicHandler(musics usecase.MusicUsecase) *MusicHandler {
	return &MusicHandler{musics: musics}
}

type createMusicRequest struct {
	Name     string `json:"name" validate:"required"`
	Genre    string `json:"genre" validate:"required"`
	Album    string `json:"album" validate:"required"`
	AuthorID uint   `json:"authorId" validate:"required"`
}

type updateMusicRequest struct {
	Name     *string `json:"name"`
	Genre    *string `json:"genre"`
	Album    *string `json:"album"`
	AuthorID *uint   `json:"authorId" validate:"omitempty,min=1"`
}

func (h *MusicHandler) Create(c echo.Context) error {
	var req createMusicRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	music, err := h.musics.Create(c.Request().Context(), usecase.CreateMusicInput{
		Name:     req.Name,
		Genre:    req.Genre,
		Album:    req.Album,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, music)
}

func (h *MusicHandler) List(c echo.Context) error {
	musics, err := h.musics.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, musics)
}

func (h *MusicHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	music, err := h.musics.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, music)
}

func (h *MusicHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateMusicRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	music, err := h.musics.Update(c.Request().Context(), id, usecase.UpdateMusicInput{
		Name:     req.Name,
		Genre:    req.Genre,
		Album:    req.Album,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, music)
}

func (h *MusicHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	music, err := h.musics.Delete(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, music)
}

func (h *MusicHandler) ListListeners(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	users, err := h.musics.ListListeners(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users)
}
