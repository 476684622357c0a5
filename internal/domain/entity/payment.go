package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod represents how a payment was made.
type PaymentMethod string

const (
	// PaymentMethodCash is a cash payment.
	PaymentMethodCash PaymentMethod = "cash"
	// PaymentMethodBankTransfer is a bank transfer.
	PaymentMethodBankTransfer PaymentMethod = "bank transfer"
	// PaymentMethodMobileMoney is a mobile money payment.
	PaymentMethodMobileMoney PaymentMethod = "mobile money"
	// PaymentMethodCreditCard is a credit card payment.
	PaymentMethodCreditCard PaymentMethod = "credit card"
)

// IsValid checks if the PaymentMethod is a supported value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodBankTransfer, PaymentMethodMobileMoney, PaymentMethodCreditCard:
		return true
	default:
		return false
	}
}

// PaymentStatus represents the settlement state of a payment.
type PaymentStatus string

const (
	// PaymentStatusCompleted indicates settled funds. The default state.
	PaymentStatusCompleted PaymentStatus = "completed"
	// PaymentStatusPending indicates a payment still in flight.
	PaymentStatusPending PaymentStatus = "pending"
	// PaymentStatusFailed indicates a payment that did not settle.
	PaymentStatusFailed PaymentStatus = "failed"
)

// IsValid checks if the PaymentStatus is a valid value.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusCompleted, PaymentStatusPending, PaymentStatusFailed:
		return true
	default:
		return false
	}
}

// Payment records money received against an invoice. Payments are immutable
// once created; only their creation drives invoice reconciliation.
type Payment struct {
	ID          uuid.UUID // The unique identifier for the payment.
	InvoiceID   uuid.UUID // The invoice this payment settles against.
	Invoice     *Invoice  // Populated on reads that join the invoice.
	Amount      float64
	Method      PaymentMethod
	Status      PaymentStatus
	PaymentDate time.Time
	Notes       string
	CreatedAt   time.Time
}
