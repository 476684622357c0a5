package usecase

import (
	"context"
	"time"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePaymentInput defines the data required to record a payment against an
// invoice. A zero PaymentDate means "now".
type CreatePaymentInput struct {
	InvoiceID   uuid.UUID
	Amount      float64
	Method      entity.PaymentMethod
	PaymentDate time.Time
	Notes       string
}

// PaymentUsecase defines the interface for payment business operations.
type PaymentUsecase interface {
	// CreatePayment records a payment and reconciles the invoice: when the
	// completed payments cover the total, a pending invoice flips to paid.
	// Only the invoice's purchaser may pay.
	CreatePayment(ctx context.Context, actor *entity.User, input *CreatePaymentInput) (*entity.Payment, error)

	// ListUserPayments returns payments on the invoices the actor
	// participates in, scoped by role like invoice listing.
	ListUserPayments(ctx context.Context, actor *entity.User) ([]*entity.Payment, error)
}
