package impl

import (
	"context"
	"testing"
	"time"

	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/domain/service"
	mockRepo "ledger/internal/mocks/repository"
	mockSvc "ledger/internal/mocks/service"
	"ledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// paymentServiceFixtures holds all test dependencies for payment service tests.
type paymentServiceFixtures struct {
	service     usecase.PaymentUsecase
	txManager   *mockRepo.MockTransactionManager
	invoiceRepo *mockRepo.MockInvoiceRepository
	paymentRepo *mockRepo.MockPaymentRepository
	publisher   *mockSvc.MockEventPublisher
}

func createTestPaymentService(t *testing.T) paymentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	invoiceRepo := mockRepo.NewMockInvoiceRepository(t)
	paymentRepo := mockRepo.NewMockPaymentRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewPaymentService(PaymentServiceParams{
		TxManager:   txManager,
		InvoiceRepo: invoiceRepo,
		PaymentRepo: paymentRepo,
		Publisher:   publisher,
		Logger:      newDiscardLogger(),
	})

	return paymentServiceFixtures{
		service:     service,
		txManager:   txManager,
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		publisher:   publisher,
	}
}

func TestPaymentService_CreatePayment_CoversTotalAndFlipsInvoice(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	purchaser := testPurchaser()
	invoice := &entity.Invoice{
		ID:          uuid.New(),
		ProviderID:  uuid.New(),
		PurchaserID: purchaser.ID,
		Status:      entity.InvoiceStatusPending,
		Total:       100,
		Currency:    entity.CurrencyUSD,
	}
	input := &usecase.CreatePaymentInput{
		InvoiceID: invoice.ID,
		Amount:    60,
		Method:    entity.PaymentMethodMobileMoney,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockInvoiceRepo := mockRepo.NewMockInvoiceRepository(t)
			mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)

			mockFactory.EXPECT().InvoiceRepo().Return(mockInvoiceRepo)
			mockFactory.EXPECT().PaymentRepo().Return(mockPaymentRepo)

			mockInvoiceRepo.EXPECT().FindByID(ctx, invoice.ID).Return(invoice, nil)
			mockPaymentRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Payment")).
				Run(func(ctx context.Context, payment *entity.Payment) {
					payment.ID = uuid.New()
				}).
				Return(nil)
			mockPaymentRepo.EXPECT().
				SumByInvoiceID(ctx, invoice.ID, entity.PaymentStatusCompleted).
				Return(100, nil)
			mockInvoiceRepo.EXPECT().
				UpdateStatus(ctx, invoice.ID, entity.InvoiceStatusPaid).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	var published []string
	fx.publisher.EXPECT().
		PublishBillingEvent(ctx, mock.AnythingOfType("*service.BillingEvent")).
		Run(func(ctx context.Context, event *service.BillingEvent) {
			published = append(published, event.Type)
		}).
		Return(nil)

	payment, err := fx.service.CreatePayment(ctx, purchaser, input)

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCompleted, payment.Status)
	assert.False(t, payment.PaymentDate.IsZero())
	assert.Equal(t, []string{service.EventPaymentRecorded, service.EventInvoicePaid}, published)
}

func TestPaymentService_CreatePayment_PartialKeepsInvoicePending(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	purchaser := testPurchaser()
	invoice := &entity.Invoice{
		ID:          uuid.New(),
		ProviderID:  uuid.New(),
		PurchaserID: purchaser.ID,
		Status:      entity.InvoiceStatusPending,
		Total:       100,
		Currency:    entity.CurrencyUGX,
	}
	paymentDate := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	input := &usecase.CreatePaymentInput{
		InvoiceID:   invoice.ID,
		Amount:      40,
		Method:      entity.PaymentMethodCash,
		PaymentDate: paymentDate,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockInvoiceRepo := mockRepo.NewMockInvoiceRepository(t)
			mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)

			mockFactory.EXPECT().InvoiceRepo().Return(mockInvoiceRepo)
			mockFactory.EXPECT().PaymentRepo().Return(mockPaymentRepo)

			mockInvoiceRepo.EXPECT().FindByID(ctx, invoice.ID).Return(invoice, nil)
			mockPaymentRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Payment")).
				Return(nil)
			mockPaymentRepo.EXPECT().
				SumByInvoiceID(ctx, invoice.ID, entity.PaymentStatusCompleted).
				Return(40, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	var published []string
	fx.publisher.EXPECT().
		PublishBillingEvent(ctx, mock.AnythingOfType("*service.BillingEvent")).
		Run(func(ctx context.Context, event *service.BillingEvent) {
			published = append(published, event.Type)
		}).
		Return(nil)

	payment, err := fx.service.CreatePayment(ctx, purchaser, input)

	require.NoError(t, err)
	assert.Equal(t, paymentDate, payment.PaymentDate)
	assert.Equal(t, []string{service.EventPaymentRecorded}, published)
}

func TestPaymentService_CreatePayment_NotPurchaser(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	stranger := testPurchaser()
	invoice := &entity.Invoice{
		ID:          uuid.New(),
		ProviderID:  uuid.New(),
		PurchaserID: uuid.New(),
		Status:      entity.InvoiceStatusPending,
		Total:       100,
	}
	input := &usecase.CreatePaymentInput{
		InvoiceID: invoice.ID,
		Amount:    100,
		Method:    entity.PaymentMethodBankTransfer,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockInvoiceRepo := mockRepo.NewMockInvoiceRepository(t)
			mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)

			mockFactory.EXPECT().InvoiceRepo().Return(mockInvoiceRepo)
			mockFactory.EXPECT().PaymentRepo().Return(mockPaymentRepo)

			mockInvoiceRepo.EXPECT().FindByID(ctx, invoice.ID).Return(invoice, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrForbidden)

	payment, err := fx.service.CreatePayment(ctx, stranger, input)

	require.Error(t, err)
	assert.Nil(t, payment)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestPaymentService_CreatePayment_Validation(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	purchaser := testPurchaser()

	t.Run("non-positive amount", func(t *testing.T) {
		payment, err := fx.service.CreatePayment(ctx, purchaser, &usecase.CreatePaymentInput{
			InvoiceID: uuid.New(),
			Amount:    0,
			Method:    entity.PaymentMethodCash,
		})

		require.Error(t, err)
		assert.Nil(t, payment)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("unknown method", func(t *testing.T) {
		payment, err := fx.service.CreatePayment(ctx, purchaser, &usecase.CreatePaymentInput{
			InvoiceID: uuid.New(),
			Amount:    10,
			Method:    entity.PaymentMethod("barter"),
		})

		require.Error(t, err)
		assert.Nil(t, payment)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestPaymentService_CreatePayment_InvoiceNotFound(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	purchaser := testPurchaser()
	input := &usecase.CreatePaymentInput{
		InvoiceID: uuid.New(),
		Amount:    50,
		Method:    entity.PaymentMethodCreditCard,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockInvoiceRepo := mockRepo.NewMockInvoiceRepository(t)
			mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)

			mockFactory.EXPECT().InvoiceRepo().Return(mockInvoiceRepo)
			mockFactory.EXPECT().PaymentRepo().Return(mockPaymentRepo)

			mockInvoiceRepo.EXPECT().
				FindByID(ctx, input.InvoiceID).
				Return(nil, repository.ErrInvoiceNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrInvoiceNotFound)

	payment, err := fx.service.CreatePayment(ctx, purchaser, input)

	require.Error(t, err)
	assert.Nil(t, payment)
	assert.True(t, errors.Is(err, domainerrors.ErrInvoiceNotFound))
}

func TestPaymentService_ListUserPayments_Participant(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	purchaser := testPurchaser()
	invoiceIDs := []uuid.UUID{uuid.New(), uuid.New()}

	fx.invoiceRepo.EXPECT().FindIDsByParticipant(ctx, purchaser.ID).Return(invoiceIDs, nil)
	fx.paymentRepo.EXPECT().
		FindByInvoiceIDs(ctx, invoiceIDs).
		Return([]*entity.Payment{{ID: uuid.New()}}, nil)

	payments, err := fx.service.ListUserPayments(ctx, purchaser)

	require.NoError(t, err)
	assert.Len(t, payments, 1)
}

func TestPaymentService_ListUserPayments_Admin(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	admin := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}
	invoices := []*entity.Invoice{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.invoiceRepo.EXPECT().FindAll(ctx).Return(invoices, nil)
	fx.paymentRepo.EXPECT().
		FindByInvoiceIDs(ctx, []uuid.UUID{invoices[0].ID, invoices[1].ID}).
		Return([]*entity.Payment{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	payments, err := fx.service.ListUserPayments(ctx, admin)

	require.NoError(t, err)
	assert.Len(t, payments, 2)
}
