package usecase

import (
	"context"
	"time"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// InvoiceItemInput is a single line on a new invoice. Its total is derived,
// never supplied by the caller.
type InvoiceItemInput struct {
	Description string
	Quantity    int
	UnitPrice   float64
}

// CreateInvoiceInput defines the data required to issue an invoice. The
// provider is always the authenticated caller.
type CreateInvoiceInput struct {
	PurchaserID uuid.UUID
	Items       []InvoiceItemInput
	Currency    entity.Currency
	Tax         float64
	DueDate     time.Time
	Notes       string
}

// InvoiceUsecase defines the interface for invoice business operations.
// Every method takes the acting user; authorization is enforced here, not in
// the delivery layer.
type InvoiceUsecase interface {
	CreateInvoice(ctx context.Context, actor *entity.User, input *CreateInvoiceInput) (*entity.Invoice, error)

	// ListInvoices scopes by role: providers see invoices they issued,
	// purchasers those they owe, admins all of them.
	ListInvoices(ctx context.Context, actor *entity.User) ([]*entity.Invoice, error)

	// GetInvoice allows the provider, the purchaser, and admins.
	GetInvoice(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.Invoice, error)

	// UpdateStatus allows only the provider or the purchaser, and only valid
	// transitions out of the pending state.
	UpdateStatus(ctx context.Context, actor *entity.User, id uuid.UUID, status entity.InvoiceStatus) (*entity.Invoice, error)

	// ListInvoicePayments uses the same read authorization as GetInvoice.
	ListInvoicePayments(ctx context.Context, actor *entity.User, id uuid.UUID) ([]*entity.Payment, error)

	// InvoiceQR renders the invoice's payment reference as a PNG QR code.
	InvoiceQR(ctx context.Context, actor *entity.User, id uuid.UUID) ([]byte, error)
}
