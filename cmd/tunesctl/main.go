// Command tunesctl runs operator tasks against the catalog database.
//
//	tunesctl migrate
//	tunesctl create-admin -email ana@example.com -name Ana
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"tunes/config"
	"tunes/internal/errors"
	logs "tunes/internal/infra/log"
	"tunes/internal/infra/persistence/migrations"
	"tunes/internal/infra/persistence/postgres"

	"gorm.io/gorm"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	if err := run(context.Background(), os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "tunesctl:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: tunesctl <migrate|create-admin> [flags]")
}

func run(ctx context.Context, command string, args []string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	switch command {
	case "migrate":
		return withDB(cfg, logger, func(db *gorm.DB) error {
			sqlDB, err := db.DB()
			if err != nil {
				return errors.WithStack(err)
			}

			return migrations.Apply(ctx, sqlDB, logger)
		})
	case "create-admin":
		fs := flag.NewFlagSet("create-admin", flag.ContinueOnError)
		email := fs.String("email", "", "admin login email")
		name := fs.String("name", "", "display name")
		if err := fs.Parse(args); err != nil {
			return err
		}

		return withDB(cfg, logger, func(db *gorm.DB) error {
			return createAdmin(ctx, newUserUsecase(db, cfg, logger), os.Stderr, *email, *name)
		})
	default:
		usage()

		return errors.Errorf("unknown command %q", command)
	}
}

func withDB(cfg *config.Config, logger *slog.Logger, fn func(*gorm.DB) error) error {
	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.WithStack(err)
	}
	defer sqlDB.Close()

	return fn(db)
}
