package repository

import (
	"context"
	"errors"

	"tunes/internal/domain/entity"
)

// ErrMusicNotFound is returned when a track does not exist.
var ErrMusicNotFound = errors.New("music not found")

// MusicRepository defines persistence operations for music tracks.
type MusicRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.Music, error)
	FindAll(ctx context.Context) ([]*entity.Music, error)

	// FindByAuthor lists the tracks of one artist.
	FindByAuthor(ctx context.Context, artistID uint) ([]*entity.Music, error)

	Create(ctx context.Context, music *entity.Music) error
	Update(ctx context.Context, music *entity.Music) error
	Delete(ctx context.Context, id uint) error
}
