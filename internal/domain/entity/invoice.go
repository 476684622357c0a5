package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Currency represents the currency an invoice is denominated in.
type Currency string

const (
	// CurrencyUGX is the Ugandan shilling.
	CurrencyUGX Currency = "UGX"
	// CurrencyUSD is the United States dollar.
	CurrencyUSD Currency = "USD"
	// CurrencyLYD is the Libyan dinar.
	CurrencyLYD Currency = "LYD"
)

// IsValid checks if the Currency is a supported value.
func (c Currency) IsValid() bool {
	switch c {
	case CurrencyUGX, CurrencyUSD, CurrencyLYD:
		return true
	default:
		return false
	}
}

// InvoiceStatus represents the lifecycle state of an invoice.
type InvoiceStatus string

const (
	// InvoiceStatusPending indicates an invoice awaiting payment.
	InvoiceStatusPending InvoiceStatus = "pending"
	// InvoiceStatusPaid indicates an invoice fully covered by payments.
	InvoiceStatusPaid InvoiceStatus = "paid"
	// InvoiceStatusOverdue indicates an invoice past its due date.
	InvoiceStatusOverdue InvoiceStatus = "overdue"
	// InvoiceStatusDefaulted indicates an invoice written off as unpaid.
	InvoiceStatusDefaulted InvoiceStatus = "defaulted"
)

// IsValid checks if the InvoiceStatus is a valid value.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusDefaulted:
		return true
	default:
		return false
	}
}

// String returns the string representation of the InvoiceStatus.
func (s InvoiceStatus) String() string {
	return string(s)
}

// CanTransitionTo reports whether moving from s to next is a legal status
// transition. Only pending invoices may move; every other state is terminal.
func (s InvoiceStatus) CanTransitionTo(next InvoiceStatus) bool {
	if s != InvoiceStatusPending {
		return false
	}

	switch next {
	case InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusDefaulted:
		return true
	default:
		return false
	}
}

// InvoiceItem is a single billed line on an invoice.
type InvoiceItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"` // Quantity times UnitPrice, computed at creation.
}

// Invoice is a bill issued by a provider against a purchaser. Its monetary
// totals are computed once at creation and never recomputed afterwards.
type Invoice struct {
	ID            uuid.UUID     // The unique identifier for the invoice.
	InvoiceNumber string        // Human-facing unique number, "INV-<millis>".
	ProviderID    uuid.UUID     // The user who issued the invoice.
	PurchaserID   uuid.UUID     // The user who owes the invoice.
	Provider      *UserSummary  // Populated on reads that join the provider.
	Purchaser     *UserSummary  // Populated on reads that join the purchaser.
	Items         []InvoiceItem // The billed line items.
	Subtotal      float64       // Sum of item totals.
	Tax           float64       // Stored but not folded into Total.
	Total         float64       // Equals Subtotal at creation.
	Currency      Currency
	Status        InvoiceStatus
	IssuedDate    time.Time // The instant the invoice number was derived from.
	DueDate       time.Time
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewInvoiceNumber derives the human-facing invoice number from an issuing
// instant, matching the "INV-<unix millis>" scheme.
func NewInvoiceNumber(issuedAt time.Time) string {
	return fmt.Sprintf("INV-%d", issuedAt.UnixMilli())
}
