// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// PaymentRepository defines the interface for payment persistence.
// Payments have no update or single-delete operation: they are immutable and
// only removed wholesale when their invoices are cascaded away.
type PaymentRepository interface {
	// Create persists a new payment.
	Create(ctx context.Context, payment *entity.Payment) error

	// FindByInvoiceID retrieves all payments against an invoice, most recent
	// payment date first.
	FindByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]*entity.Payment, error)

	// FindByInvoiceIDs retrieves all payments against any of the given
	// invoices, joining the invoice with its provider and purchaser summaries,
	// most recent payment date first.
	FindByInvoiceIDs(ctx context.Context, invoiceIDs []uuid.UUID) ([]*entity.Payment, error)

	// SumByInvoiceID returns the sum of payment amounts against an invoice,
	// counting only payments in the given status.
	SumByInvoiceID(ctx context.Context, invoiceID uuid.UUID, status entity.PaymentStatus) (float64, error)

	// DeleteByInvoiceIDs removes every payment against any of the given invoices.
	DeleteByInvoiceIDs(ctx context.Context, invoiceIDs []uuid.UUID) error
}
