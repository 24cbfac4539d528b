package repository

import (
	"context"
	"errors"

	"tunes/internal/domain/entity"
)

// ErrArtistNotFound is returned when an artist does not exist.
var ErrArtistNotFound = errors.New("artist not found")

// ArtistRepository defines persistence operations for artists.
type ArtistRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.Artist, error)

	// FindAll lists artists ordered by name.
	FindAll(ctx context.Context) ([]*entity.Artist, error)

	Create(ctx context.Context, artist *entity.Artist) error
	Update(ctx context.Context, artist *entity.Artist) error

	// Delete removes an artist together with the tracks it authored.
	Delete(ctx context.Context, id uint) error
}
