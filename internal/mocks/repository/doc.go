// Package repository holds testify mocks of the domain repository interfaces.
package repository

import "github.com/stretchr/testify/mock"

// TestingT is the subset of *testing.T the mock constructors need.
type TestingT interface {
	mock.TestingT
	Cleanup(func())
}
