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

type artistRepository struct {
	db *gorm.DB
}

// NewArtistRepository is the constructor for artistRepository.
func NewArtistRepository(db *gorm.DB) repository.ArtistRepository {
	return &artistRepository{db: db}
}

func (repo *artistRepository) FindByID(ctx context.Context, id uint) (*entity.Artist, error) {
	var artistM model.ArtistModel
	if err := repo.db.WithContext(ctx).First(&artistM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrArtistNotFound
		}

		return nil, errors.Wrap(err, "failed to find artist by id")
	}

	return toArtistDomain(&artistM), nil
}

// FindAll lists artists ordered by name.
func (repo *artistRepository) FindAll(ctx context.Context) ([]*entity.Artist, error) {
	var artistMs []*model.ArtistModel
	if err := repo.db.WithContext(ctx).Order("name").Find(&artistMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list artists")
	}

	artists := make([]*entity.Artist, 0, len(artistMs))
	for _, artistM := range artistMs {
		artists = append(artists, toArtistDomain(artistM))
	}

	return artists, nil
}

func (repo *artistRepository) Create(ctx context.Context, artist *entity.Artist) error {
	artistM := fromArtistDomain(artist)

	if err := repo.db.WithContext(ctx).Create(artistM).Error; err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid artist data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create artist")
	}

	artist.ID = artistM.ID
	artist.CreatedAt = artistM.CreatedAt
	artist.UpdatedAt = artistM.UpdatedAt

	return nil
}

func (repo *artistRepository) Update(ctx context.Context, artist *entity.Artist) error {
	artistM := fromArtistDomain(artist)

	result := repo.db.WithContext(ctx).
		Model(artistM).
		Select("name", "photo", "stream", "updated_at").
		Updates(artistM)
	if err := result.Error; err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid artist data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update artist")
	}
	if result.RowsAffected == 0 {
		return repository.ErrArtistNotFound
	}

	artist.UpdatedAt = artistM.UpdatedAt

	return nil
}

// Delete removes an artist. Its tracks and their listening rows cascade.
func (repo *artistRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.ArtistModel{}, id)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete artist")
	}
	if result.RowsAffected == 0 {
		return repository.ErrArtistNotFound
	}

	return nil
}

func toArtistDomain(data *model.ArtistModel) *entity.Artist {
	if data == nil {
		return nil
	}

	return &entity.Artist{
		ID:        data.ID,
		Name:      data.Name,
		Photo:     data.Photo,
		Stream:    data.Stream,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromArtistDomain(data *entity.Artist) *model.ArtistModel {
	if data == nil {
		return nil
	}

	return &model.ArtistModel{
		ID:        data.ID,
		Name:      data.Name,
		Photo:     data.Photo,
		Stream:    data.Stream,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
