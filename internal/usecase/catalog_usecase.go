package usecase

import (
	"context"

	"tunes/internal/domain/entity"
)

// CreateArtistInput defines the data required to add an artist.
type CreateArtistInput struct {
	Name   string
	Photo  string
	Stream *int
}

// UpdateArtistInput holds a partial artist update. Nil fields are left untouched.
type UpdateArtistInput struct {
	Name   *string
	Photo  *string
	Stream *int
}

// IsEmpty reports whether no field was provided.
func (in UpdateArtistInput) IsEmpty() bool {
	return in.Name == nil && in.Photo == nil && in.Stream == nil
}

// ArtistUsecase defines artist catalog operations.
type ArtistUsecase interface {
	Create(ctx context.Context, input CreateArtistInput) (*entity.Artist, error)
	// List returns every artist ordered by name.
	List(ctx context.Context) ([]*entity.Artist, error)
	Get(ctx context.Context, id uint) (*entity.Artist, error)
	Update(ctx context.Context, id uint, input UpdateArtistInput) (*entity.Artist, error)
	// Delete removes the artist with its tracks and returns the record as it was.
	Delete(ctx context.Context, id uint) (*entity.Artist, error)
	ListMusics(ctx context.Context, artistID uint) ([]*entity.Music, error)
}

// CreateMusicInput defines the data required to add a track.
type CreateMusicInput struct {
	Name     string
	Genre    string
	Album    string
	AuthorID uint
}

// UpdateMusicInput holds a partial track update. Nil fields are left untouched.
type UpdateMusicInput struct {
	Name     *string
	Genre    *string
	Album    *string
	AuthorID *uint
}

// IsEmpty reports whether no field was provided.
func (in UpdateMusicInput) IsEmpty() bool {
	return in.Name == nil && in.Genre == nil && in.Album == nil && in.AuthorID == nil
}

// MusicUsecase defines track catalog operations.
type MusicUsecase interface {
	Create(ctx context.Context, input CreateMusicInput) (*entity.Music, error)
	List(ctx context.Context) ([]*entity.Music, error)
	Get(ctx context.Context, id uint) (*entity.Music, error)
	Update(ctx context.Context, id uint, input UpdateMusicInput) (*entity.Music, error)
	// Delete removes the track and returns the record as it was.
	Delete(ctx context.Context, id uint) (*entity.Music, error)
	// ListListeners returns the users who listened to the track.
	ListListeners(ctx context.Context, musicID uint) ([]*entity.User, error)
}
