package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"tunes/config"
	deliverycontext "tunes/internal/delivery/context"
	"tunes/internal/domain/entity"
	domainerrors "tunes/internal/domain/errors"
	"tunes/internal/domain/repository"
	"tunes/internal/domain/service"
	"tunes/internal/errors"
	"tunes/internal/usecase"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	listeningRepo     repository.ListeningRepository
	hasher            service.PasswordHasher
	minPasswordLength int
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	UserRepo      repository.UserRepository
	ListeningRepo repository.ListeningRepository
	Hasher        service.PasswordHasher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		listeningRepo:     params.ListeningRepo,
		hasher:            params.Hasher,
		minPasswordLength: params.Config.Auth.MinPasswordLength,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a regular account. Asking for the admin role is rejected.
func (srv *userService) Register(ctx context.Context, input usecase.CreateUserInput) (*entity.User, error) {
	switch input.Role {
	case "", entity.RoleUser:
		input.Role = entity.RoleUser
	case entity.RoleAdmin:
		return nil, domainerrors.ErrAdminRegistration
	default:
		return nil, invalidRole()
	}

	return srv.create(ctx, input)
}

// CreateUser creates an account with any valid role. An empty role means user.
func (srv *userService) CreateUser(ctx context.Context, input usecase.CreateUserInput) (*entity.User, error) {
	if input.Role == "" {
		input.Role = entity.RoleUser
	}
	if !input.Role.IsValid() {
		return nil, invalidRole()
	}

	return srv.create(ctx, input)
}

func (srv *userService) create(ctx context.Context, input usecase.CreateUserInput) (*entity.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name and email are required")
	}
	if err := srv.checkPassword(input.Password); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		Name:         name,
		Email:        email,
		Photo:        input.Photo,
		PasswordHash: hash,
		Role:         input.Role,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User created", slog.Uint64("user_id", uint64(user.ID)), slog.String("role", user.Role.String()))

	return user, nil
}

func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}
	if len(users) == 0 {
		return nil, domainerrors.ErrNoUsersFound
	}

	return users, nil
}

func (srv *userService) GetUser(ctx context.Context, id uint) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "failed to find user")
	}

	return user, nil
}

// UpdateUser applies the provided profile fields. At least one is required.
func (srv *userService) UpdateUser(ctx context.Context, id uint, input usecase.UpdateUserInput) (*entity.User, error) {
	if input.IsEmpty() {
		return nil, domainerrors.ErrNoUpdateFields
	}

	user, err := srv.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("name cannot be empty")
		}
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		if strings.TrimSpace(*input.Email) == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("email cannot be empty")
		}
		user.Email = strings.TrimSpace(*input.Email)
	}
	if input.Photo != nil {
		user.Photo = input.Photo
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, notFound(err, "failed to update user")
	}

	return user, nil
}

func (srv *userService) UpdateRole(ctx context.Context, id uint, role entity.Role) (*entity.User, error) {
	if !role.IsValid() {
		return nil, invalidRole()
	}

	user, err := srv.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Role = role
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, notFound(err, "failed to update user role")
	}

	srv.log(ctx).Info("User role changed", slog.Uint64("user_id", uint64(id)), slog.String("role", role.String()))

	return user, nil
}

// UpdatePassword re-hashes the password. Sessions already issued stay valid until they expire.
func (srv *userService) UpdatePassword(ctx context.Context, id uint, password string) error {
	if err := srv.checkPassword(password); err != nil {
		return err
	}

	user, err := srv.GetUser(ctx, id)
	if err != nil {
		return err
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user.PasswordHash = hash
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return notFound(err, "failed to update password")
	}

	return nil
}

// DeleteUser finds and deletes the user in one transaction.
func (srv *userService) DeleteUser(ctx context.Context, id uint) (*entity.User, error) {
	var deleted *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, id)
		if err != nil {
			return notFound(err, "failed to find user")
		}
		if err := userRepo.Delete(ctx, id); err != nil {
			return notFound(err, "failed to delete user")
		}
		deleted = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User deleted", slog.Uint64("user_id", uint64(id)))

	return deleted, nil
}

func (srv *userService) ListListenedMusics(ctx context.Context, userID uint) ([]*entity.Music, error) {
	if _, err := srv.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	musics, err := srv.listeningRepo.MusicsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list listened musics")
	}

	return musics, nil
}

// AddListenedMusic records that the user listened to the track. Both must exist.
func (srv *userService) AddListenedMusic(ctx context.Context, userID, musicID uint) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.UserRepo().FindByID(ctx, userID); err != nil {
			return notFound(err, "failed to find user")
		}
		if _, err := repoFactory.MusicRepo().FindByID(ctx, musicID); err != nil {
			return notFound(err, "failed to find music")
		}

		listeningRepo := repoFactory.ListeningRepo()
		exists, err := listeningRepo.Exists(ctx, userID, musicID)
		if err != nil {
			return errors.Wrap(err, "failed to check listening")
		}
		if exists {
			return domainerrors.ErrAlreadyListened
		}

		if err := listeningRepo.Create(ctx, &entity.Listening{UserID: userID, MusicID: musicID}); err != nil {
			return errors.Wrap(err, "failed to add listened music")
		}

		return nil
	})
}

func (srv *userService) RemoveListenedMusic(ctx context.Context, userID, musicID uint) error {
	if err := srv.listeningRepo.Delete(ctx, userID, musicID); err != nil {
		return notFound(err, "failed to remove listened music")
	}

	return nil
}

func (srv *userService) HasListened(ctx context.Context, userID, musicID uint) (bool, error) {
	exists, err := srv.listeningRepo.Exists(ctx, userID, musicID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check listening")
	}

	return exists, nil
}

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

func (srv *userService) checkPassword(password string) error {
	if len(password) < srv.minPasswordLength {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("password must be at least %d characters", srv.minPasswordLength))
	}
	if len(password) > maxPasswordBytes {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("password must be at most %d bytes", maxPasswordBytes))
	}

	return nil
}

func invalidRole() error {
	return domainerrors.ErrValidationFailed.WithDetails(
		fmt.Sprintf("role must be one of %s", strings.Join(entity.Roles{entity.RoleUser, entity.RoleAdmin}.ToStrings(), ", ")))
}
