package impl

import (
	domainerrors "tunes/internal/domain/errors"
	"tunes/internal/domain/repository"
	"tunes/internal/errors"
)

// notFound maps repository sentinels onto their client-facing errors and wraps anything else.
func notFound(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUserNotFound
	case errors.Is(err, repository.ErrArtistNotFound):
		return domainerrors.ErrArtistNotFound
	case errors.Is(err, repository.ErrMusicNotFound):
		return domainerrors.ErrMusicNotFound
	case errors.Is(err, repository.ErrListeningNotFound):
		return domainerrors.ErrListeningNotFound
	default:
		return errors.Wrap(err, message)
	}
}
