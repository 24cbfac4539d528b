package repository

import (
	"context"

	"tunes/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockListeningRepository is a mock of repository.ListeningRepository.
type MockListeningRepository struct {
	mock.Mock
}

// NewMockListeningRepository registers expectation assertions on test cleanup.
func NewMockListeningRepository(t TestingT) *MockListeningRepository {
	m := &MockListeningRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockListeningRepository) Exists(ctx context.Context, userID, musicID uint) (bool, error) {
	ret := m.Called(ctx, userID, musicID)

	return ret.Bool(0), ret.Error(1)
}

func (m *MockListeningRepository) Create(ctx context.Context, listening *entity.Listening) error {
	return m.Called(ctx, listening).Error(0)
}

func (m *MockListeningRepository) Delete(ctx context.Context, userID, musicID uint) error {
	return m.Called(ctx, userID, musicID).Error(0)
}

func (m *MockListeningRepository) MusicsByUser(ctx context.Context, userID uint) ([]*entity.Music, error) {
	ret := m.Called(ctx, userID)
	musics, _ := ret.Get(0).([]*entity.Music)

	return musics, ret.Error(1)
}

func (m *MockListeningRepository) UsersByMusic(ctx context.Context, musicID uint) ([]*entity.User, error) {
	ret := m.Called(ctx, musicID)
	users, _ := ret.Get(0).([]*entity.User)

	return users, ret.Error(1)
}
