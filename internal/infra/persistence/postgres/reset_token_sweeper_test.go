package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	mockRepo "ledger/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingLifecycle captures appended hooks so tests can drive them directly.
type recordingLifecycle struct {
	hooks []fx.Hook
}

func (lc *recordingLifecycle) Append(hook fx.Hook) {
	lc.hooks = append(lc.hooks, hook)
}

func TestSweepExpiredResetTokens_DeletesOnEachTick(t *testing.T) {
	t.Parallel()

	resetTokenRepo := mockRepo.NewMockPasswordResetTokenRepository(t)

	swept := make(chan struct{}, 4)
	resetTokenRepo.EXPECT().
		DeleteExpired(mock.Anything).
		Run(func(_ context.Context) {
			select {
			case swept <- struct{}{}:
			default:
			}
		}).
		Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		sweepExpiredResetTokens(ctx, newDiscardLogger(), resetTokenRepo, 5*time.Millisecond)
	}()

	for i := 0; i < 2; i++ {
		select {
		case <-swept:
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for an expiry sweep")
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop on context cancellation")
	}
}

func TestSweepExpiredResetTokens_KeepsRunningAfterError(t *testing.T) {
	t.Parallel()

	resetTokenRepo := mockRepo.NewMockPasswordResetTokenRepository(t)

	swept := make(chan struct{}, 4)
	resetTokenRepo.EXPECT().
		DeleteExpired(mock.Anything).
		Run(func(_ context.Context) {
			select {
			case swept <- struct{}{}:
			default:
			}
		}).
		Return(errors.New("connection reset"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go sweepExpiredResetTokens(ctx, newDiscardLogger(), resetTokenRepo, 5*time.Millisecond)

	// A failed sweep is logged and retried on the next tick.
	for i := 0; i < 2; i++ {
		select {
		case <-swept:
		case <-time.After(time.Second):
			t.Fatal("sweeper stopped after a failed sweep")
		}
	}
}

func TestSweepExpiredResetTokens_NilRepoReturns(t *testing.T) {
	t.Parallel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		sweepExpiredResetTokens(context.Background(), newDiscardLogger(), nil, time.Millisecond)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not bail out on nil repository")
	}
}

func TestStartResetTokenSweeper_RegistersLifecycleHook(t *testing.T) {
	t.Parallel()

	resetTokenRepo := mockRepo.NewMockPasswordResetTokenRepository(t)
	lc := &recordingLifecycle{}

	StartResetTokenSweeper(SweeperParams{
		Lifecycle:      lc,
		ResetTokenRepo: resetTokenRepo,
		Logger:         newDiscardLogger(),
	})

	require.Len(t, lc.hooks, 1)
	require.NotNil(t, lc.hooks[0].OnStart)
	require.NotNil(t, lc.hooks[0].OnStop)

	require.NoError(t, lc.hooks[0].OnStart(context.Background()))
	require.NoError(t, lc.hooks[0].OnStop(context.Background()))
}
