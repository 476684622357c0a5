// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// ActivityLogRepository defines the interface for the append-only activity log.
type ActivityLogRepository interface {
	// Create appends a new activity entry.
	Create(ctx context.Context, log *entity.ActivityLog) error

	// FindRecent retrieves the latest entries up to limit, newest first,
	// joining user summaries.
	FindRecent(ctx context.Context, limit int) ([]*entity.ActivityLog, error)

	// DeleteByUserID removes all entries for a user. Only used by
	// account-deletion cascades.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
