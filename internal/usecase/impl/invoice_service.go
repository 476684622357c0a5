package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "ledger/internal/delivery/context"
	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/domain/service"
	"ledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// invoiceService implements the InvoiceUsecase interface.
type invoiceService struct {
	txManager   repository.TransactionManager
	invoiceRepo repository.InvoiceRepository
	paymentRepo repository.PaymentRepository
	qrService   service.QRCodeService
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// InvoiceServiceParams holds dependencies for InvoiceService, injected by Fx.
type InvoiceServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	InvoiceRepo repository.InvoiceRepository
	PaymentRepo repository.PaymentRepository
	QRService   service.QRCodeService
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewInvoiceService is the constructor for invoiceService.
func NewInvoiceService(params InvoiceServiceParams) usecase.InvoiceUsecase {
	return &invoiceService{
		txManager:   params.TxManager,
		invoiceRepo: params.InvoiceRepo,
		paymentRepo: params.PaymentRepo,
		qrService:   params.QRService,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *invoiceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateInvoice issues a new invoice from the acting provider. Item totals,
// subtotal, and total are always derived server-side; the stated tax is kept
// but never folded into the total.
func (srv *invoiceService) CreateInvoice(ctx context.Context, actor *entity.User, input *usecase.CreateInvoiceInput) (*entity.Invoice, error) {
	srv.log(ctx).Info("Creating invoice", slog.Any("providerID", actor.ID), slog.Any("purchaserID", input.PurchaserID))

	if actor.Role != entity.RoleProvider {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only providers may issue invoices")
	}
	if len(input.Items) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invoice needs at least one item")
	}
	if !input.Currency.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unsupported currency")
	}
	if input.DueDate.IsZero() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "due date is required")
	}
	if input.Tax < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "tax cannot be negative")
	}

	items := make([]entity.InvoiceItem, 0, len(input.Items))
	var subtotal float64
	for _, item := range input.Items {
		if item.Quantity <= 0 || item.UnitPrice < 0 {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid item quantity or price")
		}
		lineTotal := float64(item.Quantity) * item.UnitPrice
		items = append(items, entity.InvoiceItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       lineTotal,
		})
		subtotal += lineTotal
	}

	now := time.Now()
	invoice := &entity.Invoice{
		InvoiceNumber: entity.NewInvoiceNumber(now),
		ProviderID:    actor.ID,
		PurchaserID:   input.PurchaserID,
		Items:         items,
		Subtotal:      subtotal,
		Tax:           input.Tax,
		Total:         subtotal,
		Currency:      input.Currency,
		Status:        entity.InvoiceStatusPending,
		IssuedDate:    now,
		DueDate:       input.DueDate,
		Notes:         input.Notes,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		purchaser, findErr := repoFactory.UserRepo().FindByID(ctx, input.PurchaserID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrValidationFailed, "purchaser does not exist")
			}

			return errors.Wrap(findErr, "failed to load purchaser")
		}
		if purchaser.Role != entity.RolePurchaser {
			return errors.Wrap(domainerrors.ErrValidationFailed, "purchaser must hold the purchaser role")
		}

		return repoFactory.InvoiceRepo().Create(ctx, invoice)
	})
	if err != nil {
		srv.log(ctx).Warn("Invoice creation failed", slog.Any("providerID", actor.ID), slog.Any("error", err))

		return nil, err
	}

	publishBillingEvent(ctx, srv.publisher, srv.log(ctx), &service.BillingEvent{
		Type:       service.EventInvoiceCreated,
		OccurredAt: time.Now(),
		UserID:     actor.ID.String(),
		InvoiceID:  invoice.ID.String(),
		Amount:     invoice.Total,
		Currency:   string(invoice.Currency),
	})

	srv.log(ctx).Debug("Invoice created", slog.Any("invoiceID", invoice.ID), slog.String("number", invoice.InvoiceNumber))

	return invoice, nil
}

// ListInvoices scopes the listing by role.
func (srv *invoiceService) ListInvoices(ctx context.Context, actor *entity.User) ([]*entity.Invoice, error) {
	switch actor.Role {
	case entity.RoleProvider:
		return srv.invoiceRepo.FindByProvider(ctx, actor.ID)
	case entity.RolePurchaser:
		return srv.invoiceRepo.FindByPurchaser(ctx, actor.ID)
	case entity.RoleAdmin:
		return srv.invoiceRepo.FindAll(ctx)
	default:
		return nil, errors.Wrap(domainerrors.ErrForbidden, "unknown role")
	}
}

// GetInvoice loads an invoice the actor is allowed to read.
func (srv *invoiceService) GetInvoice(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := srv.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInvoiceNotFound) {
			return nil, domainerrors.ErrInvoiceNotFound
		}

		return nil, errors.Wrap(err, "failed to load invoice")
	}

	if !canReadInvoice(actor, invoice) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "not a party to this invoice")
	}

	return invoice, nil
}

// UpdateStatus moves an invoice through its lifecycle. Only the provider or
// the purchaser may do this; admins are deliberately excluded.
func (srv *invoiceService) UpdateStatus(ctx context.Context, actor *entity.User, id uuid.UUID, status entity.InvoiceStatus) (*entity.Invoice, error) {
	srv.log(ctx).Info("Updating invoice status", slog.Any("invoiceID", id), slog.String("status", status.String()))

	if !status.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown invoice status")
	}

	var updated *entity.Invoice
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		invoiceRepo := repoFactory.InvoiceRepo()

		invoice, findErr := invoiceRepo.FindByID(ctx, id)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrInvoiceNotFound) {
				return domainerrors.ErrInvoiceNotFound
			}

			return errors.Wrap(findErr, "failed to load invoice for status update")
		}

		if actor.ID != invoice.ProviderID && actor.ID != invoice.PurchaserID {
			return errors.Wrap(domainerrors.ErrForbidden, "only the provider or purchaser may change the status")
		}

		if !invoice.Status.CanTransitionTo(status) {
			return domainerrors.ErrInvalidStatusTransition.WithDetails(
				invoice.Status.String() + " -> " + status.String(),
			)
		}

		if updateErr := invoiceRepo.UpdateStatus(ctx, id, status); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update invoice status")
		}

		invoice.Status = status
		updated = invoice

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Invoice status update failed", slog.Any("invoiceID", id), slog.Any("error", err))

		return nil, err
	}

	if status == entity.InvoiceStatusPaid {
		publishBillingEvent(ctx, srv.publisher, srv.log(ctx), &service.BillingEvent{
			Type:       service.EventInvoicePaid,
			OccurredAt: time.Now(),
			UserID:     actor.ID.String(),
			InvoiceID:  updated.ID.String(),
			Amount:     updated.Total,
			Currency:   string(updated.Currency),
		})
	}

	return updated, nil
}

// ListInvoicePayments lists the payments against one readable invoice.
func (srv *invoiceService) ListInvoicePayments(ctx context.Context, actor *entity.User, id uuid.UUID) ([]*entity.Payment, error) {
	if _, err := srv.GetInvoice(ctx, actor, id); err != nil {
		return nil, err
	}

	payments, err := srv.paymentRepo.FindByInvoiceID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list invoice payments")
	}

	return payments, nil
}

// InvoiceQR renders a readable invoice's payment reference as a PNG QR code.
func (srv *invoiceService) InvoiceQR(ctx context.Context, actor *entity.User, id uuid.UUID) ([]byte, error) {
	invoice, err := srv.GetInvoice(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GeneratePaymentQR(invoice)
	if err != nil {
		srv.log(ctx).Error("Failed to render invoice QR", slog.Any("invoiceID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to render invoice QR")
	}

	return png, nil
}

// canReadInvoice reports whether the actor may see the invoice: the provider,
// the purchaser, or any admin.
func canReadInvoice(actor *entity.User, invoice *entity.Invoice) bool {
	if actor.Role == entity.RoleAdmin {
		return true
	}

	return actor.ID == invoice.ProviderID || actor.ID == invoice.PurchaserID
}
