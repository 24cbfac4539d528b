package repository

import (
	"context"

	"tunes/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a mock of repository.TransactionManager.
// Return may be given a func(context.Context, func(repository.RepositoryFactory) error) error
// to run the callback against a factory of mocks.
type MockTransactionManager struct {
	mock.Mock
}

// NewMockTransactionManager registers expectation assertions on test cleanup.
func NewMockTransactionManager(t TestingT) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	ret := m.Called(ctx, fn)

	if rf, ok := ret.Get(0).(func(context.Context, func(repository.RepositoryFactory) error) error); ok {
		return rf(ctx, fn)
	}

	return ret.Error(0)
}

// RepositoryFactory is a fixed set of repositories handed to transaction callbacks.
type RepositoryFactory struct {
	Users      repository.UserRepository
	Artists    repository.ArtistRepository
	Musics     repository.MusicRepository
	Listenings repository.ListeningRepository
}

func (f *RepositoryFactory) UserRepo() repository.UserRepository           { return f.Users }
func (f *RepositoryFactory) ArtistRepo() repository.ArtistRepository       { return f.Artists }
func (f *RepositoryFactory) MusicRepo() repository.MusicRepository         { return f.Musics }
func (f *RepositoryFactory) ListeningRepo() repository.ListeningRepository { return f.Listenings }

// RunWith returns a Return value for Execute that invokes the callback with factory.
func RunWith(factory repository.RepositoryFactory) func(context.Context, func(repository.RepositoryFactory) error) error {
	return func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
		return fn(factory)
	}
}
