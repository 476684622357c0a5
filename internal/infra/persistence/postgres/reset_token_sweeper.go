package postgres

import (
	"context"
	"log/slog"
	"time"

	"ledger/internal/domain/repository"

	"go.uber.org/fx"
)

const resetTokenSweepInterval = time.Hour

// SweeperParams defines the required parameters
type SweeperParams struct {
	fx.In
	fx.Lifecycle

	ResetTokenRepo repository.PasswordResetTokenRepository
	Logger         *slog.Logger
}

// StartResetTokenSweeper runs a periodic cleanup of expired password reset
// tokens for as long as the application is up. Tokens past their expiry are
// already rejected on lookup, so the sweep only reclaims storage.
func StartResetTokenSweeper(params SweeperParams) {
	sweepCtx, cancelSweep := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go sweepExpiredResetTokens(sweepCtx, params.Logger, params.ResetTokenRepo, resetTokenSweepInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelSweep()

			return nil
		},
	})
}

func sweepExpiredResetTokens(ctx context.Context, logger *slog.Logger, resetTokenRepo repository.PasswordResetTokenRepository, interval time.Duration) {
	if logger == nil || resetTokenRepo == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := resetTokenRepo.DeleteExpired(ctx); err != nil {
				logger.LogAttrs(ctx, slog.LevelError, "Failed to sweep expired reset tokens",
					slog.Any("error", err))

				continue
			}

			logger.LogAttrs(ctx, slog.LevelDebug, "Swept expired reset tokens")
		}
	}
}
