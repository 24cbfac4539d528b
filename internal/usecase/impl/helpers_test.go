package impl

import (
	"io"
	"log/slog"

	"tunes/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.MinPasswordLength = 6

	return cfg
}

func ptr[T any](v T) *T {
	return &v
}
