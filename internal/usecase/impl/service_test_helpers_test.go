package impl

import (
	"io"
	"log/slog"
	"time"

	"ledger/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		ResetToken: &config.ResetTokenConfig{
			TTL:     10 * time.Minute,
			BaseURL: "http://localhost:3000",
		},
	}
}
