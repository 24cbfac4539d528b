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

type listeningRepository struct {
	db *gorm.DB
}

// NewListeningRepository is the constructor for listeningRepository.
func NewListeningRepository(db *gorm.DB) repository.ListeningRepository {
	return &listeningRepository{db: db}
}

func (repo *listeningRepository) Exists(ctx context.Context, userID, musicID uint) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ListeningModel{}).
		Where("user_id = ? AND music_id = ?", userID, musicID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check listening")
	}

	return count > 0, nil
}

func (repo *listeningRepository) Create(ctx context.Context, listening *entity.Listening) error {
	listeningM := &model.ListeningModel{
		UserID:     listening.UserID,
		MusicID:    listening.MusicID,
		ListenedAt: listening.ListenedAt,
	}

	if err := repo.db.WithContext(ctx).Create(listeningM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyListened.WrapMessage("listening already recorded")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("user or music does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create listening")
	}

	listening.ListenedAt = listeningM.ListenedAt

	return nil
}

func (repo *listeningRepository) Delete(ctx context.Context, userID, musicID uint) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND music_id = ?", userID, musicID).
		Delete(&model.ListeningModel{})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete listening")
	}
	if result.RowsAffected == 0 {
		return repository.ErrListeningNotFound
	}

	return nil
}

// MusicsByUser lists the tracks a user has listened to, most recent first.
func (repo *listeningRepository) MusicsByUser(ctx context.Context, userID uint) ([]*entity.Music, error) {
	var musicMs []*model.MusicModel
	err := repo.db.WithContext(ctx).
		Joins("JOIN user_musics ON user_musics.music_id = musics.id").
		Where("user_musics.user_id = ?", userID).
		Order("user_musics.listened_at DESC").
		Find(&musicMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list musics by user")
	}

	return toMusicDomains(musicMs), nil
}

// UsersByMusic lists the users who listened to a track, most recent first.
func (repo *listeningRepository) UsersByMusic(ctx context.Context, musicID uint) ([]*entity.User, error) {
	var userMs []*model.UserModel
	err := repo.db.WithContext(ctx).
		Joins("JOIN user_musics ON user_musics.user_id = users.id").
		Where("user_musics.music_id = ?", musicID).
		Order("user_musics.listened_at DESC").
		Find(&userMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users by music")
	}

	return toUserDomains(userMs), nil
}
