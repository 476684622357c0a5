package postgres

import (
	"context"

	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// paymentRepository implements the repository.PaymentRepository interface using GORM.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

// Create persists a new payment.
func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrInvoiceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt

	return nil
}

// FindByInvoiceID retrieves all payments against an invoice, most recent
// payment date first.
func (repo *paymentRepository) FindByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]*entity.Payment, error) {
	var models []model.PaymentModel
	err := repo.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("payment_date DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments by invoice")
	}

	return toPaymentDomains(models), nil
}

// FindByInvoiceIDs retrieves all payments against any of the given invoices,
// joining the invoice with its provider and purchaser summaries.
func (repo *paymentRepository) FindByInvoiceIDs(ctx context.Context, invoiceIDs []uuid.UUID) ([]*entity.Payment, error) {
	if len(invoiceIDs) == 0 {
		return []*entity.Payment{}, nil
	}

	var models []model.PaymentModel
	err := repo.db.WithContext(ctx).
		Preload("Invoice").
		Preload("Invoice.Provider").
		Preload("Invoice.Purchaser").
		Where("invoice_id IN ?", invoiceIDs).
		Order("payment_date DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments by invoices")
	}

	return toPaymentDomains(models), nil
}

// SumByInvoiceID returns the sum of payment amounts against an invoice,
// counting only payments in the given status.
func (repo *paymentRepository) SumByInvoiceID(ctx context.Context, invoiceID uuid.UUID, status entity.PaymentStatus) (float64, error) {
	var sum float64
	err := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("invoice_id = ? AND status = ?", invoiceID, string(status)).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to sum payments")
	}

	return sum, nil
}

// DeleteByInvoiceIDs removes every payment against any of the given invoices.
func (repo *paymentRepository) DeleteByInvoiceIDs(ctx context.Context, invoiceIDs []uuid.UUID) error {
	if len(invoiceIDs) == 0 {
		return nil
	}

	err := repo.db.WithContext(ctx).
		Where("invoice_id IN ?", invoiceIDs).
		Delete(&model.PaymentModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete payments")
	}

	return nil
}

// --- Mapper Functions ---

// toPaymentDomain converts a GORM PaymentModel to a domain Payment entity.
func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		ID:          data.ID,
		InvoiceID:   data.InvoiceID,
		Invoice:     toInvoiceDomain(data.Invoice),
		Amount:      data.Amount,
		Method:      entity.PaymentMethod(data.Method),
		Status:      entity.PaymentStatus(data.Status),
		PaymentDate: data.PaymentDate,
		Notes:       data.Notes,
		CreatedAt:   data.CreatedAt,
	}
}

func toPaymentDomains(models []model.PaymentModel) []*entity.Payment {
	payments := make([]*entity.Payment, 0, len(models))
	for i := range models {
		payments = append(payments, toPaymentDomain(&models[i]))
	}

	return payments
}

// fromPaymentDomain converts a domain Payment entity to a GORM PaymentModel.
func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	if data == nil {
		return nil
	}

	return &model.PaymentModel{
		ID:          data.ID,
		InvoiceID:   data.InvoiceID,
		Amount:      data.Amount,
		Method:      string(data.Method),
		Status:      string(data.Status),
		PaymentDate: data.PaymentDate,
		Notes:       data.Notes,
	}
}
