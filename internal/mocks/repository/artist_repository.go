package repository

import (
	"context"

	"tunes/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockArtistRepository is a mock of repository.ArtistRepository.
type MockArtistRepository struct {
	mock.Mock
}

// NewMockArtistRepository registers expectation assertions on test cleanup.
func NewMockArtistRepository(t TestingT) *MockArtistRepository {
	m := &MockArtistRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockArtistRepository) FindByID(ctx context.Context, id uint) (*entity.Artist, error) {
	ret := m.Called(ctx, id)
	artist, _ := ret.Get(0).(*entity.Artist)

	return artist, ret.Error(1)
}

func (m *MockArtistRepository) FindAll(ctx context.Context) ([]*entity.Artist, error) {
	ret := m.Called(ctx)
	artists, _ := ret.Get(0).([]*entity.Artist)

	return artists, ret.Error(1)
}

func (m *MockArtistRepository) Create(ctx context.Context, artist *entity.Artist) error {
	return m.Called(ctx, artist).Error(0)
}

func (m *MockArtistRepository) Update(ctx context.Context, artist *entity.Artist) error {
	return m.Called(ctx, artist).Error(0)
}

func (m *MockArtistRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}
