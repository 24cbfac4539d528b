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

type musicService struct {
	txManager     repository.TransactionManager
	musicRepo     repository.MusicRepository
	artistRepo    repository.ArtistRepository
	listeningRepo repository.ListeningRepository
	logger        *slog.Logger
}

// MusicServiceParams holds dependencies for MusicService, injected by Fx.
type MusicServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	MusicRepo     repository.MusicRepository
	ArtistRepo    repository.ArtistRepository
	ListeningRepo repository.ListeningRepository
	Logger        *slog.Logger
}

// NewMusicService is the constructor for musicService.
func NewMusicService(params MusicServiceParams) usecase.MusicUsecase {
	return &musicService{
		txManager:     params.TxManager,
		musicRepo:     params.MusicRepo,
		artistRepo:    params.ArtistRepo,
		listeningRepo: params.ListeningRepo,
		logger:        params.Logger,
	}
}

func (srv *musicService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds a track for an existing artist.
func (srv *musicService) Create(ctx context.Context, input usecase.CreateMusicInput) (*entity.Music, error) {
	music := &entity.Music{
		Name:     strings.TrimSpace(input.Name),
		Genre:    strings.TrimSpace(input.Genre),
		Album:    strings.TrimSpace(input.Album),
		AuthorID: input.AuthorID,
	}
	if music.Name == "" || music.Genre == "" || music.Album == "" || music.AuthorID == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name, genre, album and authorId are required")
	}

	if err := srv.ensureArtist(ctx, music.AuthorID); err != nil {
		return nil, err
	}

	if err := srv.musicRepo.Create(ctx, music); err != nil {
		return nil, errors.Wrap(err, "failed to create music")
	}

	srv.log(ctx).Info("Music created", slog.Uint64("music_id", uint64(music.ID)), slog.Uint64("author_id", uint64(music.AuthorID)))

	return music, nil
}

func (srv *musicService) List(ctx context.Context) ([]*entity.Music, error) {
	musics, err := srv.musicRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list musics")
	}
	if len(musics) == 0 {
		return nil, domainerrors.ErrNoMusicsFound
	}

	return musics, nil
}

func (srv *musicService) Get(ctx context.Context, id uint) (*entity.Music, error) {
	music, err := srv.musicRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "failed to find music")
	}

	return music, nil
}

func (srv *musicService) Update(ctx context.Context, id uint, input usecase.UpdateMusicInput) (*entity.Music, error) {
	if input.IsEmpty() {
		return nil, domainerrors.ErrNoUpdateFields
	}

	music, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	for _, field := range []struct {
		name   string
		value  *string
		target *string
	}{
		{"name", input.Name, &music.Name},
		{"genre", input.Genre, &music.Genre},
		{"album", input.Album, &music.Album},
	} {
		if field.value == nil {
			continue
		}
		trimmed := strings.TrimSpace(*field.value)
		if trimmed == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails(field.name + " cannot be empty")
		}
		*field.target = trimmed
	}

	if input.AuthorID != nil && *input.AuthorID != music.AuthorID {
		if err := srv.ensureArtist(ctx, *input.AuthorID); err != nil {
			return nil, err
		}
		music.AuthorID = *input.AuthorID
	}

	if err := srv.musicRepo.Update(ctx, music); err != nil {
		return nil, notFound(err, "failed to update music")
	}

	return music, nil
}

// Delete finds and deletes the track in one transaction.
func (srv *musicService) Delete(ctx context.Context, id uint) (*entity.Music, error) {
	var deleted *entity.Music
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		musicRepo := repoFactory.MusicRepo()

		music, err := musicRepo.FindByID(ctx, id)
		if err != nil {
			return notFound(err, "failed to find music")
		}
		if err := musicRepo.Delete(ctx, id); err != nil {
			return notFound(err, "failed to delete music")
		}
		deleted = music

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Music deleted", slog.Uint64("music_id", uint64(id)))

	return deleted, nil
}

func (srv *musicService) ListListeners(ctx context.Context, musicID uint) ([]*entity.User, error) {
	if _, err := srv.Get(ctx, musicID); err != nil {
		return nil, err
	}

	users, err := srv.listeningRepo.UsersByMusic(ctx, musicID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list music listeners")
	}

	return users, nil
}

func (srv *musicService) ensureArtist(ctx context.Context, id uint) error {
	if _, err := srv.artistRepo.FindByID(ctx, id); err != nil {
		return notFound(err, "failed to find author")
	}

	return nil
}
