// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrInvoiceNotFound is returned when an invoice is not found.
var ErrInvoiceNotFound = errors.New("invoice not found")

// InvoiceRepository defines the interface for invoice persistence.
type InvoiceRepository interface {
	// Create persists a new invoice with its line items.
	Create(ctx context.Context, invoice *entity.Invoice) error

	// FindByID retrieves an invoice by its unique ID, joining provider and
	// purchaser summaries.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)

	// FindByProvider retrieves all invoices issued by the provider, newest first.
	FindByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.Invoice, error)

	// FindByPurchaser retrieves all invoices owed by the purchaser, newest first.
	FindByPurchaser(ctx context.Context, purchaserID uuid.UUID) ([]*entity.Invoice, error)

	// FindAll retrieves every invoice, newest first.
	FindAll(ctx context.Context) ([]*entity.Invoice, error)

	// FindIDsByParticipant returns the IDs of every invoice where the user is
	// provider or purchaser.
	FindIDsByParticipant(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// UpdateStatus sets the status of an invoice.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.InvoiceStatus) error

	// HasWithStatuses reports whether the user participates in any invoice
	// currently in one of the given statuses.
	HasWithStatuses(ctx context.Context, userID uuid.UUID, statuses []entity.InvoiceStatus) (bool, error)

	// DeleteByParticipant removes every invoice where the user is provider or
	// purchaser. Payments must be deleted first.
	DeleteByParticipant(ctx context.Context, userID uuid.UUID) error

	// CountByStatus returns the number of invoices in the given status.
	CountByStatus(ctx context.Context, status entity.InvoiceStatus) (int64, error)

	// Count returns the total number of invoices.
	Count(ctx context.Context) (int64, error)

	// SumTotalByStatus returns the sum of invoice totals across all invoices
	// in the given status.
	SumTotalByStatus(ctx context.Context, status entity.InvoiceStatus) (float64, error)
}
