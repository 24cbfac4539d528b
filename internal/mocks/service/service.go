// Package service holds testify mocks of the domain service interfaces.
package service

import (
	"time"

	"tunes/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// TestingT is the subset of *testing.T the mock constructors need.
type TestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockPasswordHasher is a mock of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher registers expectation assertions on test cleanup.
func NewMockPasswordHasher(t TestingT) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	ret := m.Called(password)

	return ret.String(0), ret.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

// MockTokenService is a mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService registers expectation assertions on test cleanup.
func NewMockTokenService(t TestingT) *MockTokenService {
	m := &MockTokenService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) Issue(identity entity.Identity) (*entity.SessionToken, error) {
	ret := m.Called(identity)
	token, _ := ret.Get(0).(*entity.SessionToken)

	return token, ret.Error(1)
}

func (m *MockTokenService) Verify(token string) (*entity.Identity, error) {
	ret := m.Called(token)
	identity, _ := ret.Get(0).(*entity.Identity)

	return identity, ret.Error(1)
}

func (m *MockTokenService) TTL() time.Duration {
	ret := m.Called()
	ttl, _ := ret.Get(0).(time.Duration)

	return ttl
}
