package usecase

import (
	"context"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// UserStats aggregates the user population by role.
type UserStats struct {
	Total      int64 `json:"total"`
	Providers  int64 `json:"providers"`
	Purchasers int64 `json:"purchasers"`
}

// InvoiceStats aggregates invoices by lifecycle state.
type InvoiceStats struct {
	Total   int64 `json:"total"`
	Paid    int64 `json:"paid"`
	Pending int64 `json:"pending"`
	Overdue int64 `json:"overdue"`
}

// SystemStats is the admin dashboard aggregate. Revenue is the sum of totals
// across paid invoices.
type SystemStats struct {
	Users    UserStats    `json:"users"`
	Invoices InvoiceStats `json:"invoices"`
	Revenue  float64      `json:"revenue"`
}

// AdminUsecase defines the interface for platform administration operations.
type AdminUsecase interface {
	ListAllUsers(ctx context.Context) ([]*entity.User, error)
	ListAllInvoices(ctx context.Context) ([]*entity.Invoice, error)
	SystemStats(ctx context.Context) (*SystemStats, error)

	// RecentActivity returns the latest activity-log entries with user
	// summaries, capped at 100.
	RecentActivity(ctx context.Context) ([]*entity.ActivityLog, error)

	UpdateUserStatus(ctx context.Context, id uuid.UUID, status entity.Status) (*entity.User, error)

	// DeleteUser runs the same cascade as self-service account deletion.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
