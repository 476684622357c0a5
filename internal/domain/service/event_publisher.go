package service

import (
	"context"
	"time"
)

// Billing event types emitted over the event bus.
const (
	EventInvoiceCreated  = "invoice.created"
	EventInvoicePaid     = "invoice.paid"
	EventPaymentRecorded = "payment.recorded"
	EventUserDeleted     = "user.deleted"
)

// BillingEvent represents a billing lifecycle event published for downstream consumers
type BillingEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	UserID     string    `json:"user_id,omitempty"`
	InvoiceID  string    `json:"invoice_id,omitempty"`
	PaymentID  string    `json:"payment_id,omitempty"`
	Amount     float64   `json:"amount,omitempty"`
	Currency   string    `json:"currency,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishBillingEvent publishes a billing event for async processing
	PublishBillingEvent(ctx context.Context, event *BillingEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
