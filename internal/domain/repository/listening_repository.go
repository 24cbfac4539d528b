package repository

import (
	"context"
	"errors"

	"tunes/internal/domain/entity"
)

// ErrListeningNotFound is returned when a user has no record for a track.
var ErrListeningNotFound = errors.New("listening not found")

// ListeningRepository manages the many-to-many "listened" relation between users and tracks.
type ListeningRepository interface {
	// Exists reports whether the user has listened to the track.
	Exists(ctx context.Context, userID, musicID uint) (bool, error)

	Create(ctx context.Context, listening *entity.Listening) error
	Delete(ctx context.Context, userID, musicID uint) error

	// MusicsByUser lists the tracks a user has listened to, most recent first.
	MusicsByUser(ctx context.Context, userID uint) ([]*entity.Music, error)

	// UsersByMusic lists the users who listened to a track, most recent first.
	UsersByMusic(ctx context.Context, musicID uint) ([]*entity.User, error)
}
