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

// invoiceRepository implements the repository.InvoiceRepository interface using GORM.
type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository is the constructor for invoiceRepository.
func NewInvoiceRepository(db *gorm.DB) repository.InvoiceRepository {
	return &invoiceRepository{db: db}
}

// Create persists a new invoice with its line items in one insert.
func (repo *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	invoiceM := fromInvoiceDomain(invoice)

	if err := repo.db.WithContext(ctx).Create(invoiceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("invoice number already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("provider or purchaser does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create invoice")
	}

	// Update the entity with the generated ID and timestamps
	invoice.ID = invoiceM.ID
	invoice.CreatedAt = invoiceM.CreatedAt
	invoice.UpdatedAt = invoiceM.UpdatedAt

	return nil
}

// FindByID retrieves an invoice by its unique ID, joining provider and purchaser summaries.
func (repo *invoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoiceM model.InvoiceModel
	err := repo.db.WithContext(ctx).
		Preload("Provider").
		Preload("Purchaser").
		Preload("Items").
		Where("id = ?", id).
		First(&invoiceM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInvoiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find invoice by id")
	}

	return toInvoiceDomain(&invoiceM), nil
}

// FindByProvider retrieves all invoices issued by the provider, newest first.
func (repo *invoiceRepository) FindByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.Invoice, error) {
	return repo.findAll(ctx, "provider_id = ?", providerID)
}

// FindByPurchaser retrieves all invoices owed by the purchaser, newest first.
func (repo *invoiceRepository) FindByPurchaser(ctx context.Context, purchaserID uuid.UUID) ([]*entity.Invoice, error) {
	return repo.findAll(ctx, "purchaser_id = ?", purchaserID)
}

// FindAll retrieves every invoice, newest first.
func (repo *invoiceRepository) FindAll(ctx context.Context) ([]*entity.Invoice, error) {
	return repo.findAll(ctx, "")
}

func (repo *invoiceRepository) findAll(ctx context.Context, cond string, args ...any) ([]*entity.Invoice, error) {
	query := repo.db.WithContext(ctx).
		Preload("Provider").
		Preload("Purchaser").
		Preload("Items").
		Order("created_at DESC")
	if cond != "" {
		query = query.Where(cond, args...)
	}

	var models []model.InvoiceModel
	if err := query.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list invoices")
	}

	invoices := make([]*entity.Invoice, 0, len(models))
	for i := range models {
		invoices = append(invoices, toInvoiceDomain(&models[i]))
	}

	return invoices, nil
}

// FindIDsByParticipant returns the IDs of every invoice where the user is
// provider or purchaser.
func (repo *invoiceRepository) FindIDsByParticipant(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := repo.db.WithContext(ctx).
		Model(&model.InvoiceModel{}).
		Where("provider_id = ? OR purchaser_id = ?", userID, userID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to collect invoice ids")
	}

	return ids, nil
}

// UpdateStatus sets the status of an invoice.
func (repo *invoiceRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.InvoiceStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.InvoiceModel{}).
		Where("id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update invoice status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInvoiceNotFound
	}

	return nil
}

// HasWithStatuses reports whether the user participates in any invoice
// currently in one of the given statuses.
func (repo *invoiceRepository) HasWithStatuses(ctx context.Context, userID uuid.UUID, statuses []entity.InvoiceStatus) (bool, error) {
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, s.String())
	}

	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.InvoiceModel{}).
		Where("(provider_id = ? OR purchaser_id = ?) AND status IN ?", userID, userID, values).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check outstanding invoices")
	}

	return count > 0, nil
}

// DeleteByParticipant removes every invoice where the user is provider or
// purchaser, line items included.
func (repo *invoiceRepository) DeleteByParticipant(ctx context.Context, userID uuid.UUID) error {
	ids, err := repo.FindIDsByParticipant(ctx, userID)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("invoice_id IN ?", ids).
		Delete(&model.InvoiceItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete invoice items")
	}

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&model.InvoiceModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete invoices")
	}

	return nil
}

// CountByStatus returns the number of invoices in the given status.
func (repo *invoiceRepository) CountByStatus(ctx context.Context, status entity.InvoiceStatus) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.InvoiceModel{}).
		Where("status = ?", status.String()).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count invoices by status")
	}

	return count, nil
}

// Count returns the total number of invoices.
func (repo *invoiceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.InvoiceModel{}).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count invoices")
	}

	return count, nil
}

// SumTotalByStatus returns the sum of invoice totals across all invoices in
// the given status.
func (repo *invoiceRepository) SumTotalByStatus(ctx context.Context, status entity.InvoiceStatus) (float64, error) {
	var sum float64
	err := repo.db.WithContext(ctx).
		Model(&model.InvoiceModel{}).
		Where("status = ?", status.String()).
		Select("COALESCE(SUM(total), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to sum invoice totals")
	}

	return sum, nil
}

// --- Mapper Functions ---

// toInvoiceDomain converts a GORM InvoiceModel to a domain Invoice entity.
func toInvoiceDomain(data *model.InvoiceModel) *entity.Invoice {
	if data == nil {
		return nil
	}

	items := make([]entity.InvoiceItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.InvoiceItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		})
	}

	return &entity.Invoice{
		ID:            data.ID,
		InvoiceNumber: data.InvoiceNumber,
		ProviderID:    data.ProviderID,
		PurchaserID:   data.PurchaserID,
		Provider:      toUserSummary(data.Provider),
		Purchaser:     toUserSummary(data.Purchaser),
		Items:         items,
		Subtotal:      data.Subtotal,
		Tax:           data.Tax,
		Total:         data.Total,
		Currency:      entity.Currency(data.Currency),
		Status:        entity.InvoiceStatus(data.Status),
		IssuedDate:    data.IssuedDate,
		DueDate:       data.DueDate,
		Notes:         data.Notes,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromInvoiceDomain converts a domain Invoice entity to a GORM InvoiceModel.
func fromInvoiceDomain(data *entity.Invoice) *model.InvoiceModel {
	if data == nil {
		return nil
	}

	items := make([]model.InvoiceItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.InvoiceItemModel{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		})
	}

	return &model.InvoiceModel{
		ID:            data.ID,
		InvoiceNumber: data.InvoiceNumber,
		ProviderID:    data.ProviderID,
		PurchaserID:   data.PurchaserID,
		Items:         items,
		Subtotal:      data.Subtotal,
		Tax:           data.Tax,
		Total:         data.Total,
		Currency:      string(data.Currency),
		Status:        data.Status.String(),
		IssuedDate:    data.IssuedDate,
		DueDate:       data.DueDate,
		Notes:         data.Notes,
	}
}
