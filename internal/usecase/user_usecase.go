package usecase

import (
	"context"

	"tunes/internal/domain/entity"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to create an account.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Photo    *string
	Role     entity.Role
}

// UpdateUserInput holds a partial profile update. Nil fields are left untouched.
type UpdateUserInput struct {
	Name  *string
	Email *string
	Photo *string
}

// IsEmpty reports whether no field was provided.
func (in UpdateUserInput) IsEmpty() bool {
	return in.Name == nil && in.Email == nil && in.Photo == nil
}

// UserUsecase defines user management and listening-history operations.
type UserUsecase interface {
	// Register is the public sign-up. It never creates admins.
	Register(ctx context.Context, input CreateUserInput) (*entity.User, error)
	// CreateUser creates an account with any valid role.
	CreateUser(ctx context.Context, input CreateUserInput) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	GetUser(ctx context.Context, id uint) (*entity.User, error)
	UpdateUser(ctx context.Context, id uint, input UpdateUserInput) (*entity.User, error)
	UpdateRole(ctx context.Context, id uint, role entity.Role) (*entity.User, error)
	UpdatePassword(ctx context.Context, id uint, password string) error
	// DeleteUser removes the account and returns the record as it was.
	DeleteUser(ctx context.Context, id uint) (*entity.User, error)

	ListListenedMusics(ctx context.Context, userID uint) ([]*entity.Music, error)
	AddListenedMusic(ctx context.Context, userID, musicID uint) error
	RemoveListenedMusic(ctx context.Context, userID, musicID uint) error
	HasListened(ctx context.Context, userID, musicID uint) (bool, error)
}
