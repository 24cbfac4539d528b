package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"tunes/config"
	"tunes/internal/domain/entity"
	"tunes/internal/errors"
	"tunes/internal/infra/auth"
	"tunes/internal/infra/persistence/postgres"
	"tunes/internal/usecase"
	"tunes/internal/usecase/impl"

	"golang.org/x/term"
	"gorm.io/gorm"
)

// readPassword is swapped out in tests.
var readPassword = func() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd()))
}

func newUserUsecase(db *gorm.DB, cfg *config.Config, logger *slog.Logger) usecase.UserUsecase {
	return impl.NewUserService(impl.UserServiceParams{
		TxManager:     postgres.NewTransactionManager(db),
		UserRepo:      postgres.NewUserRepository(db),
		ListeningRepo: postgres.NewListeningRepository(db),
		Hasher:        auth.NewBcryptHasher(cfg),
		Config:        cfg,
		Logger:        logger,
	})
}

// createAdmin prompts twice for the password and stores an admin account.
// Sign-up never grants the admin role, so this is how the first admin comes to exist.
func createAdmin(ctx context.Context, users usecase.UserUsecase, w io.Writer, email, name string) error {
	if email == "" || name == "" {
		return errors.New("-email and -name are required")
	}

	password, err := promptPassword(w, "Password: ")
	if err != nil {
		return err
	}
	confirm, err := promptPassword(w, "Repeat password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return errors.New("passwords do not match")
	}

	user, err := users.CreateUser(ctx, usecase.CreateUserInput{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     entity.RoleAdmin,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "admin %s created with id %d\n", user.Email, user.ID)

	return nil
}

func promptPassword(w io.Writer, prompt string) (string, error) {
	fmt.Fprint(w, prompt)
	pw, err := readPassword()
	fmt.Fprintln(w)
	if err != nil {
		return "", errors.Wrap(err, "read password")
	}

	return string(pw), nil
}
