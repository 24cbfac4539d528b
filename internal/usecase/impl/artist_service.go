package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "tunes/internal/delivery/context"
	"tunes/internal/domain/entity"
	domainerrors "tunes/internal/domain/errors"
	"tunes/internal/domain/repository"
	"tunes/internal/errors"
	"tunes/internal/usecase"

	"go.uber.org/fx"
)

type artistService struct {
	txManager  repository.TransactionManager
	artistRepo repository.ArtistRepository
	musicRepo  repository.MusicRepository
	logger     *slog.Logger
}

// ArtistServiceParams holds dependencies for ArtistService, injected by Fx.
type ArtistServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ArtistRepo repository.ArtistRepository
	MusicRepo  repository.MusicRepository
	Logger     *slog.Logger
}

// NewArtistService is the constructor for artistService.
func NewArtistService(params ArtistServiceParams) usecase.ArtistUsecase {
	return &artistService{
		txManager:  params.TxManager,
		artistRepo: params.ArtistRepo,
		musicRepo:  params.MusicRepo,
		logger:     params.Logger,
	}
}

func (srv *artistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds an artist. Name and photo are required; stream defaults to zero.
func (srv *artistService) Create(ctx context.Context, input usecase.CreateArtistInput) (*entity.Artist, error) {
	name := strings.TrimSpace(input.Name)
	photo := strings.TrimSpace(input.Photo)
	if name == "" || photo == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name and photo are required")
	}

	artist := &entity.Artist{Name: name, Photo: photo}
	if input.Stream != nil {
		if *input.Stream < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("stream cannot be negative")
		}
		artist.Stream = *input.Stream
	}

	if err := srv.artistRepo.Create(ctx, artist); err != nil {
		return nil, errors.Wrap(err, "failed to create artist")
	}

	srv.log(ctx).Info("Artist created", slog.Uint64("artist_id", uint64(artist.ID)))

	return artist, nil
}

func (srv *artistService) List(ctx context.Context) ([]*entity.Artist, error) {
	artists, err := srv.artistRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list artists")
	}
	if len(artists) == 0 {
		return nil, domainerrors.ErrNoArtistsFound
	}

	return artists, nil
}

func (srv *artistService) Get(ctx context.Context, id uint) (*entity.Artist, error) {
	artist, err := srv.artistRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "failed to find artist")
	}

	return artist, nil
}

func (srv *artistService) Update(ctx context.Context, id uint, input usecase.UpdateArtistInput) (*entity.Artist, error) {
	if input.IsEmpty() {
		return nil, domainerrors.ErrNoUpdateFields
	}

	artist, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("name cannot be empty")
		}
		artist.Name = strings.TrimSpace(*input.Name)
	}
	if input.Photo != nil {
		if strings.TrimSpace(*input.Photo) == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("photo cannot be empty")
		}
		artist.Photo = strings.TrimSpace(*input.Photo)
	}
	if input.Stream != nil {
		if *input.Stream < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("stream cannot be negative")
		}
		artist.Stream = *input.Stream
	}

	if err := srv.artistRepo.Update(ctx, artist); err != nil {
		return nil, notFound(err, "failed to update artist")
	}

	return artist, nil
}

// Delete finds and deletes the artist in one transaction. Its tracks go with it.
func (srv *artistService) Delete(ctx context.Context, id uint) (*entity.Artist, error) {
	var deleted *entity.Artist
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		artistRepo := repoFactory.ArtistRepo()

		artist, err := artistRepo.FindByID(ctx, id)
		if err != nil {
			return notFound(err, "failed to find artist")
		}
		if err := artistRepo.Delete(ctx, id); err != nil {
			return notFound(err, "failed to delete artist")
		}
		deleted = artist

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Artist deleted", slog.Uint64("artist_id", uint64(id)))

	return deleted, nil
}

func (srv *artistService) ListMusics(ctx context.Context, artistID uint) ([]*entity.Music, error) {
	if _, err := srv.Get(ctx, artistID); err != nil {
		return nil, err
	}

	musics, err := srv.musicRepo.FindByAuthor(ctx, artistID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list artist musics")
	}

	return musics, nil
}
