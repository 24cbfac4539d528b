package postgres

import (
	"context"

	"gorm.io/gorm"

	"tunes/internal/domain/entity"
	domainerrors "tunes/internal/domain/errors"
	"tunes/internal/domain/repository"
	"tunes/internal/errors"
	"tunes/internal/infra/persistence/model"
)

type musicRepository struct {
	db *gorm.DB
}

// NewMusicRepository is the constructor for musicRepository.
func NewMusicRepository(db *gorm.DB) repository.MusicRepository {
	return &musicRepository{db: db}
}

func (repo *musicRepository) FindByID(ctx context.Context, id uint) (*entity.Music, error) {
	var musicM model.MusicModel
	if err := repo.db.WithContext(ctx).First(&musicM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMusicNotFound
		}

		return nil, errors.Wrap(err, "failed to find music by id")
	}

	return toMusicDomain(&musicM), nil
}

func (repo *musicRepository) FindAll(ctx context.Context) ([]*entity.Music, error) {
	var musicMs []*model.MusicModel
	if err := repo.db.WithContext(ctx).Order("name").Find(&musicMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list musics")
	}

	return toMusicDomains(musicMs), nil
}

// FindByAuthor lists the tracks of one artist ordered by name.
func (repo *musicRepository) FindByAuthor(ctx context.Context, artistID uint) ([]*entity.Music, error) {
	var musicMs []*model.MusicModel
	if err := repo.db.WithContext(ctx).Where("author_id = ?", artistID).Order("name").Find(&musicMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list musics by author")
	}

	return toMusicDomains(musicMs), nil
}

func (repo *musicRepository) Create(ctx context.Context, music *entity.Music) error {
	musicM := fromMusicDomain(music)

	if err := repo.db.WithContext(ctx).Create(musicM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrArtistNotFound.WrapMessage("author does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required music information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create music")
	}

	music.ID = musicM.ID
	music.CreatedAt = musicM.CreatedAt
	music.UpdatedAt = musicM.UpdatedAt

	return nil
}

func (repo *musicRepository) Update(ctx context.Context, music *entity.Music) error {
	musicM := fromMusicDomain(music)

	result := repo.db.WithContext(ctx).
		Model(musicM).
		Select("name", "genre", "album", "author_id", "updated_at").
		Updates(musicM)
	if err := result.Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrArtistNotFound.WrapMessage("author does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required music information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update music")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMusicNotFound
	}

	music.UpdatedAt = musicM.UpdatedAt

	return nil
}

// Delete removes a track. Its listening rows cascade.
func (repo *musicRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.MusicModel{}, id)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete music")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMusicNotFound
	}

	return nil
}

func toMusicDomain(data *model.MusicModel) *entity.Music {
	if data == nil {
		return nil
	}

	return &entity.Music{
		ID:        data.ID,
		Name:      data.Name,
		Genre:     data.Genre,
		Album:     data.Album,
		AuthorID:  data.AuthorID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toMusicDomains(data []*model.MusicModel) []*entity.Music {
	musics := make([]*entity.Music, 0, len(data))
	for _, musicM := range data {
		musics = append(musics, toMusicDomain(musicM))
	}

	return musics
}

func fromMusicDomain(data *entity.Music) *model.MusicModel {
	if data == nil {
		return nil
	}

	return &model.MusicModel{
		ID:        data.ID,
		Name:      data.Name,
		Genre:     data.Genre,
		Album:     data.Album,
		AuthorID:  data.AuthorID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
