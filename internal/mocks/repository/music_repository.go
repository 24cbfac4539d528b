package repository

import (
	"context"

	"tunes/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockMusicRepository is a mock of repository.MusicRepository.
type MockMusicRepository struct {
	mock.Mock
}

// NewMockMusicRepository registers expectation assertions on test cleanup.
func NewMockMusicRepository(t TestingT) *MockMusicRepository {
	m := &MockMusicRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockMusicRepository) FindByID(ctx context.Context, id uint) (*entity.Music, error) {
	ret := m.Called(ctx, id)
	music, _ := ret.Get(0).(*entity.Music)

	return music, ret.Error(1)
}

func (m *MockMusicRepository) FindAll(ctx context.Context) ([]*entity.Music, error) {
	ret := m.Called(ctx)
	musics, _ := ret.Get(0).([]*entity.Music)

	return musics, ret.Error(1)
}

func (m *MockMusicRepository) FindByAuthor(ctx context.Context, artistID uint) ([]*entity.Music, error) {
	ret := m.Called(ctx, artistID)
	musics, _ := ret.Get(0).([]*entity.Music)

	return musics, ret.Error(1)
}

func (m *MockMusicRepository) Create(ctx context.Context, music *entity.Music) error {
	return m.Called(ctx, music).Error(0)
}

func (m *MockMusicRepository) Update(ctx context.Context, music *entity.Music) error {
	return m.Called(ctx, music).Error(0)
}

func (m *MockMusicRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}
