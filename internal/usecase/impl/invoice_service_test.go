package impl

import (
	"context"
	"strings"
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

// invoiceServiceFixtures holds all test dependencies for invoice service tests.
type invoiceServiceFixtures struct {
	service     usecase.InvoiceUsecase
	txManager   *mockRepo.MockTransactionManager
	invoiceRepo *mockRepo.MockInvoiceRepository
	paymentRepo *mockRepo.MockPaymentRepository
	qrService   *mockSvc.MockQRCodeService
	publisher   *mockSvc.MockEventPublisher
}

func createTestInvoiceService(t *testing.T) invoiceServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	invoiceRepo := mockRepo.NewMockInvoiceRepository(t)
	paymentRepo := mockRepo.NewMockPaymentRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewInvoiceService(InvoiceServiceParams{
		TxManager:   txManager,
		InvoiceRepo: invoiceRepo,
		PaymentRepo: paymentRepo,
		QRService:   qrService,
		Publisher:   publisher,
		Logger:      newDiscardLogger(),
	})

	return invoiceServiceFixtures{
		service:     service,
		txManager:   txManager,
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		qrService:   qrService,
		publisher:   publisher,
	}
}

func testProvider() *entity.User {
	return &entity.User{ID: uuid.New(), Role: entity.RoleProvider, Status: entity.StatusActive}
}

func testPurchaser() *entity.User {
	return &entity.User{ID: uuid.New(), Role: entity.RolePurchaser, Status: entity.StatusActive}
}

func TestInvoiceService_CreateInvoice_Success(t *testing.T) {
	fx := createTestInvoiceService(t)

	ctx := context.Background()
	provider := testProvider()
	purchaser := testPurchaser()
	input := &usecase.CreateInvoiceInput{
		PurchaserID: purchaser.ID,
		Items: []usecase.InvoiceItemInput{
			{Description: "Widgets", Quantity: 2, UnitPrice: 10},
			{Description: "Shipping", Quantity: 1, UnitPrice: 5},
		},
		Currency: entity.CurrencyUSD,
		Tax:      3.5,
		DueDate:  time.Now().AddDate(0, 1, 0),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockInvoiceRepo := mockRepo.NewMockInvoiceRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().InvoiceRepo().Return(mockInvoiceRepo)

			mockUserRepo.EXPECT().FindByID(ctx, purchaser.ID).Return(purchaser, nil)
			mockInvoiceRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Invoice")).
				Run(func(ctx context.Context, invoice *entity.Invoice) {
					invoice.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishBillingEvent(ctx, mock.AnythingOfType("*service.BillingEvent")).
		Run(func(ctx context.Context, event *service.BillingEvent) {
			assert.Equal(t, service.EventInvoiceCreated, event.Type)
		}).
		Return(nil)

	invoice, err := fx.service.CreateInvoice(ctx, provider, input)

	require.NoError(t, err)
	assert.Equal(t, provider.ID, invoice.ProviderID)
	assert.Equal(t, purchaser.ID, invoice.PurchaserID)
	assert.Equal(t, entity.InvoiceStatusPending, invoice.Status)
	assert.True(t, strings.HasPrefix(invoice.InvoiceNumber, "INV-"))
	assert.Equal(t, 25.0, invoice.Subtotal)
	assert.Equal(t, 3.5, invoice.Tax)
	// The total never folds the tax in.
	assert.Equal(t, 25.0, invoice.Total)
	require.Len(t, invoice.Items, 2)
	assert.Equal(t, 20.0, invoice.Items[0].Total)
	assert.Equal(t, 5.0, invoice.Items[1].Total)
}

func TestInvoiceService_CreateInvoice_NotProvider(t *testing.T) {
	fx := createTestInvoiceService(t)

	invoice, err := fx.service.CreateInvoice(context.Background(), testPurchaser(), &usecase.CreateInvoiceInput{
		PurchaserID: uuid.New(),
		Items:       []usecase.InvoiceItemInput{{Description: "Widgets", Quantity: 1, UnitPrice: 10}},
		Currency:    entity.CurrencyUSD,
		DueDate:     time.Now().AddDate(0, 1, 0),
	})

	require.Error(t, err)
	assert.Nil(t, invoice)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestInvoiceService_CreateInvoice_Validation(t *testing.T) {
	fx := createTestInvoiceService(t)

	ctx := context.Background()
	provider := testProvider()
	dueDate := time.Now().AddDate(0, 1, 0)

	cases := []struct {
		name  string
		input *usecase.CreateInvoiceInput
	}{
		{
			name: "no items",
			input: &usecase.CreateInvoiceInput{
				PurchaserID: uuid.New(),
				Currency:    entity.CurrencyUSD,
				DueDate:     dueDate,
			},
		},
		{
			name: "unsupported currency",
			input: &usecase.CreateInvoiceInput{
				PurchaserID: uuid.New(),
				Items:       []usecase.InvoiceItemInput{{Description: "Widgets", Quantity: 1, UnitPrice: 10}},
				Currency:    entity.Currency("EUR"),
				DueDate:     dueDate,
			},
		},
		{
			name: "missing due date",
			input: &usecase.CreateInvoiceInput{
				PurchaserID: uuid.New(),
				Items:       []usecase.InvoiceItemInput{{Description: "Widgets", Quantity: 1, UnitPrice: 10}},
				Currency:    entity.CurrencyUSD,
			},
		},
		{
			name: "negative tax",
			input: &usecase.CreateInvoiceInput{
				PurchaserID: uuid.New(),
				Items:       []usecase.InvoiceItemInput{{Description: "Widgets", Quantity: 1, UnitPrice: 10}},
				Currency:    entity.CurrencyUSD,
				Tax:         -1,
				DueDate:     dueDate,
			},
		},
		{
			name: "zero quantity item",
			input: &usecase.CreateInvoiceInput{
				PurchaserID: uuid.New(),
				Items:       []usecase.InvoiceItemInput{{Description: "Widgets", Quantity: 0, UnitPrice: 10}},
				Currency:    entity.CurrencyUSD,
				DueDate:     dueDate,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			invoice, err := fx.service.CreateInvoice(ctx, provider, tc.input)

			require.Error(t, err)
			assert.Nil(t, invoice)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestInvoiceService_CreateInvoice_PurchaserWrongRole(t *testing.T) {
	fx := createTestInvoiceService(t)

	ctx := context.Background()
	provider := testProvider()
	otherProvider := testProvider()
	input := &usecase.CreateInvoiceInput{
		PurchaserID: otherProvider.ID,
		Items:       []usecase.InvoiceItemInput{{Description: "Widgets", Quantity: 1, UnitPrice: 10}},
		Currency:    entity.CurrencyUGX,
		DueDate:     time.Now().AddDate(0, 1, 0),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, otherProvider.ID).Return(otherProvider, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrValidationFailed)

	invoice, err := fx.service.CreateInvoice(ctx, provider, input)

	require.Error(t, err)
	assert.Nil(t, invoice)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestInvoiceService_ListInvoices_ScopedByRole(t *testing.T) {
	ctx := context.Background()

	t.Run("provider sees issued invoices", func(t *testing.T) {
		fx := createTestInvoiceService(t)
		provider := testProvider()

		fx.invoiceRepo.EXPECT().
			FindByProvider(ctx, provider.ID).
			Return([]*entity.Invoice{{ID: uuid.New()}}, nil)

		invoices, err := fx.service.ListInvoices(ctx, provider)

		require.NoError(t, err)
		assert.Len(t, invoices, 1)
	})

	t.Run("purchaser sees owed invoices", func(t *testing.T) {
		fx := createTestInvoiceService(t)
		purchaser := testPurchaser()

		fx.invoiceRepo.EXPECT().
			FindByPurchaser(ctx, purchaser.ID).
			Return([]*entity.Invoice{}, nil)

		invoices, err := fx.service.ListInvoices(ctx, purchaser)

		require.NoError(t, err)
		assert.Empty(t, invoices)
	})

	t.Run("admin sees everything", func(t *testing.T) {
		fx := createTestInvoiceService(t)
		admin := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}

		fx.invoiceRepo.EXPECT().
			FindAll(ctx).
			Return([]*entity.Invoice{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

		invoices, err := fx.service.ListInvoices(ctx, admin)

		require.NoError(t, err)
		assert.Len(t, invoices, 2)
	})
}

func TestInvoiceService_GetInvoice_Forbidden(t *testing.T) {
	fx := createTestInvoiceService(t)

	ctx := context.Background()
	stranger := testPurchaser()
	invoice := &entity.Invoice{
		ID:          uuid.New(),
		ProviderID:  uuid.New(),
		PurchaserID: uuid.New(),
	}

	fx.invoiceRepo.EXPECT().FindByID(ctx, invoice.ID).Return(invoice, nil)

	got, err := fx.service.GetInvoice(ctx, stranger, invoice.ID)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestInvoiceService_GetInvoice_AdminAllowed(t *testing.T) {
	fx := createTestInvoiceService(t)

	ctx := context.Background()
	admin := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}
	invoice := &entity.Invoice{
		ID:          uuid.New(),
		ProviderID:  uuid.New(),
		PurchaserID: uuid.New(),
	}

	fx.invoiceRepo.EXPECT().FindByID(ctx, invoice.ID).Return(invoice, nil)

	got, err := fx.service.GetInvoice(ctx, admin, invoice.ID)

	require.NoError(t, err)
	assert.Equal(t, invoice.ID, got.ID)
}

func TestInvoiceService_UpdateStatus_Success(t *testing.T) {
	fx := createTestInvoiceService(t)

	ctx := context.Background()
	provider := testProvider()
	invoice := &entity.Invoice{
		ID:          uuid.New(),
		ProviderID:  provider.ID,
		PurchaserID: uuid.New(),
		Status:      entity.InvoiceStatusPending,
		Total:       100,
		Currency:    entity.CurrencyUSD,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockInvoiceRepo := mockRepo.NewMockInvoiceRepository(t)

			mockFactory.EXPECT().InvoiceRepo().Return(mockInvoiceRepo)
			mockInvoiceRepo.EXPECT().FindByID(ctx, invoice.ID).Return(invoice, nil)
			mockInvoiceRepo.EXPECT().
				UpdateStatus(ctx, invoice.ID, entity.InvoiceStatusPaid).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishBillingEvent(ctx, mock.AnythingOfType("*service.BillingEvent")).
		Run(func(ctx context.Context, event *service.BillingEvent) {
			assert.Equal(t, service.EventInvoicePaid, event.Type)
		}).
		Return(nil)

	updated, err := fx.service.UpdateStatus(ctx, provider, invoice.ID, entity.InvoiceStatusPaid)

	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, updated.Status)
}

func TestInvoiceService_UpdateStatus_InvalidTransition(t *testing.T) {
	fx := createTestInvoiceService(t)

	ctx := context.Background()
	purchaser := testPurchaser()
	invoice := &entity.Invoice{
		ID:          uuid.New(),
		ProviderID:  uuid.New(),
		PurchaserID: purchaser.ID,
		Status:      entity.InvoiceStatusPaid,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockInvoiceRepo := mockRepo.NewMockInvoiceRepository(t)

			mockFactory.EXPECT().InvoiceRepo().Return(mockInvoiceRepo)
			mockInvoiceRepo.EXPECT().FindByID(ctx, invoice.ID).Return(invoice, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrInvalidStatusTransition.WithDetails("paid -> overdue"))

	updated, err := fx.service.UpdateStatus(ctx, purchaser, invoice.ID, entity.InvoiceStatusOverdue)

	require.Error(t, err)
	assert.Nil(t, updated)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_STATUS_TRANSITION", appErr.ErrorCode())
}

func TestInvoiceService_UpdateStatus_AdminExcluded(t *testing.T) {
	fx := createTestInvoiceService(t)

	ctx := context.Background()
	admin := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}
	invoice := &entity.Invoice{
		ID:          uuid.New(),
		ProviderID:  uuid.New(),
		PurchaserID: uuid.New(),
		Status:      entity.InvoiceStatusPending,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockInvoiceRepo := mockRepo.NewMockInvoiceRepository(t)

			mockFactory.EXPECT().InvoiceRepo().Return(mockInvoiceRepo)
			mockInvoiceRepo.EXPECT().FindByID(ctx, invoice.ID).Return(invoice, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrForbidden)

	updated, err := fx.service.UpdateStatus(ctx, admin, invoice.ID, entity.InvoiceStatusDefaulted)

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestInvoiceService_ListInvoicePayments_Success(t *testing.T) {
	fx := createTestInvoiceService(t)

	ctx := context.Background()
	purchaser := testPurchaser()
	invoice := &entity.Invoice{
		ID:          uuid.New(),
		ProviderID:  uuid.New(),
		PurchaserID: purchaser.ID,
	}

	fx.invoiceRepo.EXPECT().FindByID(ctx, invoice.ID).Return(invoice, nil)
	fx.paymentRepo.EXPECT().
		FindByInvoiceID(ctx, invoice.ID).
		Return([]*entity.Payment{{ID: uuid.New(), InvoiceID: invoice.ID}}, nil)

	payments, err := fx.service.ListInvoicePayments(ctx, purchaser, invoice.ID)

	require.NoError(t, err)
	assert.Len(t, payments, 1)
}

func TestInvoiceService_InvoiceQR_Success(t *testing.T) {
	fx := createTestInvoiceService(t)

	ctx := context.Background()
	provider := testProvider()
	invoice := &entity.Invoice{
		ID:          uuid.New(),
		ProviderID:  provider.ID,
		PurchaserID: uuid.New(),
	}

	fx.invoiceRepo.EXPECT().FindByID(ctx, invoice.ID).Return(invoice, nil)
	fx.qrService.EXPECT().GeneratePaymentQR(invoice).Return([]byte{0x89, 0x50, 0x4e, 0x47}, nil)

	png, err := fx.service.InvoiceQR(ctx, provider, invoice.ID)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestInvoiceService_InvoiceQR_NotFound(t *testing.T) {
	fx := createTestInvoiceService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.invoiceRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrInvoiceNotFound)

	png, err := fx.service.InvoiceQR(ctx, testProvider(), id)

	require.Error(t, err)
	assert.Nil(t, png)
	assert.True(t, errors.Is(err, domainerrors.ErrInvoiceNotFound))
}
