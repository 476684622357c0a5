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

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager   repository.TransactionManager
	invoiceRepo repository.InvoiceRepository
	paymentRepo repository.PaymentRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	InvoiceRepo repository.InvoiceRepository
	PaymentRepo repository.PaymentRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		txManager:   params.TxManager,
		invoiceRepo: params.InvoiceRepo,
		paymentRepo: params.PaymentRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePayment records a payment and reconciles the invoice inside one
// transaction: creating the payment, re-summing the completed payments, and
// flipping a pending invoice to paid when the total is covered all happen
// atomically so concurrent payments cannot both observe a stale sum.
func (srv *paymentService) CreatePayment(ctx context.Context, actor *entity.User, input *usecase.CreatePaymentInput) (*entity.Payment, error) {
	srv.log(ctx).Info("Recording payment", slog.Any("invoiceID", input.InvoiceID), slog.Float64("amount", input.Amount))

	if input.Amount <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "payment amount must be positive")
	}
	if !input.Method.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown payment method")
	}

	paymentDate := input.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = time.Now()
	}

	payment := &entity.Payment{
		InvoiceID:   input.InvoiceID,
		Amount:      input.Amount,
		Method:      input.Method,
		Status:      entity.PaymentStatusCompleted,
		PaymentDate: paymentDate,
		Notes:       input.Notes,
	}

	var invoicePaid bool
	var invoice *entity.Invoice
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		invoiceRepo := repoFactory.InvoiceRepo()
		paymentRepo := repoFactory.PaymentRepo()

		var findErr error
		invoice, findErr = invoiceRepo.FindByID(ctx, input.InvoiceID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrInvoiceNotFound) {
				return domainerrors.ErrInvoiceNotFound
			}

			return errors.Wrap(findErr, "failed to load invoice for payment")
		}

		if actor.ID != invoice.PurchaserID {
			return errors.Wrap(domainerrors.ErrForbidden, "only the invoice's purchaser may record payments")
		}

		if createErr := paymentRepo.Create(ctx, payment); createErr != nil {
			return errors.Wrap(createErr, "failed to create payment")
		}

		paidSum, sumErr := paymentRepo.SumByInvoiceID(ctx, invoice.ID, entity.PaymentStatusCompleted)
		if sumErr != nil {
			return errors.Wrap(sumErr, "failed to sum payments for reconciliation")
		}

		if paidSum >= invoice.Total && invoice.Status == entity.InvoiceStatusPending {
			if updateErr := invoiceRepo.UpdateStatus(ctx, invoice.ID, entity.InvoiceStatusPaid); updateErr != nil {
				return errors.Wrap(updateErr, "failed to mark invoice as paid")
			}
			invoice.Status = entity.InvoiceStatusPaid
			invoicePaid = true
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Payment failed", slog.Any("invoiceID", input.InvoiceID), slog.Any("error", err))

		return nil, err
	}

	publishBillingEvent(ctx, srv.publisher, srv.log(ctx), &service.BillingEvent{
		Type:       service.EventPaymentRecorded,
		OccurredAt: time.Now(),
		UserID:     actor.ID.String(),
		InvoiceID:  invoice.ID.String(),
		PaymentID:  payment.ID.String(),
		Amount:     payment.Amount,
		Currency:   string(invoice.Currency),
	})
	if invoicePaid {
		publishBillingEvent(ctx, srv.publisher, srv.log(ctx), &service.BillingEvent{
			Type:       service.EventInvoicePaid,
			OccurredAt: time.Now(),
			UserID:     actor.ID.String(),
			InvoiceID:  invoice.ID.String(),
			Amount:     invoice.Total,
			Currency:   string(invoice.Currency),
		})
	}

	srv.log(ctx).Debug("Payment recorded", slog.Any("paymentID", payment.ID), slog.Bool("invoicePaid", invoicePaid))

	return payment, nil
}

// ListUserPayments returns the payments on the invoices the actor
// participates in, scoped by role like invoice listing.
func (srv *paymentService) ListUserPayments(ctx context.Context, actor *entity.User) ([]*entity.Payment, error) {
	var invoiceIDs []uuid.UUID
	var err error

	switch actor.Role {
	case entity.RoleProvider, entity.RolePurchaser:
		invoiceIDs, err = srv.invoiceRepo.FindIDsByParticipant(ctx, actor.ID)
	case entity.RoleAdmin:
		invoiceIDs, err = srv.allInvoiceIDs(ctx)
	default:
		return nil, errors.Wrap(domainerrors.ErrForbidden, "unknown role")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to collect invoices for payment listing")
	}

	payments, err := srv.paymentRepo.FindByInvoiceIDs(ctx, invoiceIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return payments, nil
}

func (srv *paymentService) allInvoiceIDs(ctx context.Context) ([]uuid.UUID, error) {
	invoices, err := srv.invoiceRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(invoices))
	for _, invoice := range invoices {
		ids = append(ids, invoice.ID)
	}

	return ids, nil
}
