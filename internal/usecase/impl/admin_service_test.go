package impl

import (
	"context"
	"testing"
	"time"

	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	mockRepo "ledger/internal/mocks/repository"
	mockSvc "ledger/internal/mocks/service"
	"ledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service      usecase.AdminUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	invoiceRepo  *mockRepo.MockInvoiceRepository
	activityRepo *mockRepo.MockActivityLogRepository
	publisher    *mockSvc.MockEventPublisher
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	invoiceRepo := mockRepo.NewMockInvoiceRepository(t)
	activityRepo := mockRepo.NewMockActivityLogRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewAdminService(AdminServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		InvoiceRepo:  invoiceRepo,
		ActivityRepo: activityRepo,
		Publisher:    publisher,
		Logger:       newDiscardLogger(),
	})

	return adminServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		invoiceRepo:  invoiceRepo,
		activityRepo: activityRepo,
		publisher:    publisher,
	}
}

func TestAdminService_SystemStats_Aggregates(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().Count(ctx).Return(10, nil)
	fx.userRepo.EXPECT().CountByRole(ctx, entity.RoleProvider).Return(4, nil)
	fx.userRepo.EXPECT().CountByRole(ctx, entity.RolePurchaser).Return(5, nil)
	fx.invoiceRepo.EXPECT().Count(ctx).Return(20, nil)
	fx.invoiceRepo.EXPECT().CountByStatus(ctx, entity.InvoiceStatusPaid).Return(12, nil)
	fx.invoiceRepo.EXPECT().CountByStatus(ctx, entity.InvoiceStatusPending).Return(6, nil)
	fx.invoiceRepo.EXPECT().CountByStatus(ctx, entity.InvoiceStatusOverdue).Return(2, nil)
	fx.invoiceRepo.EXPECT().SumTotalByStatus(ctx, entity.InvoiceStatusPaid).Return(1234.5, nil)

	stats, err := fx.service.SystemStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.Users.Total)
	assert.Equal(t, int64(4), stats.Users.Providers)
	assert.Equal(t, int64(5), stats.Users.Purchasers)
	assert.Equal(t, int64(20), stats.Invoices.Total)
	assert.Equal(t, int64(12), stats.Invoices.Paid)
	assert.Equal(t, int64(6), stats.Invoices.Pending)
	assert.Equal(t, int64(2), stats.Invoices.Overdue)
	assert.Equal(t, 1234.5, stats.Revenue)
}

func TestAdminService_RecentActivity_CappedAtLimit(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	entries := []*entity.ActivityLog{
		{ID: uuid.New(), Action: entity.ActionLogin, Timestamp: time.Now()},
		{ID: uuid.New(), Action: entity.ActionRegister, Timestamp: time.Now()},
	}

	fx.activityRepo.EXPECT().FindRecent(ctx, 100).Return(entries, nil)

	logs, err := fx.service.RecentActivity(ctx)

	require.NoError(t, err)
	assert.Len(t, logs, 2)
}

func TestAdminService_UpdateUserStatus_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Status: entity.StatusActive}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, updated *entity.User) {
					assert.Equal(t, entity.StatusInactive, updated.Status)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fx.service.UpdateUserStatus(ctx, user.ID, entity.StatusInactive)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusInactive, updated.Status)
}

func TestAdminService_UpdateUserStatus_UnknownStatus(t *testing.T) {
	fx := createTestAdminService(t)

	updated, err := fx.service.UpdateUserStatus(context.Background(), uuid.New(), entity.Status("suspended"))

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAdminService_DeleteUser_NotFound(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockInvoiceRepo := mockRepo.NewMockInvoiceRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().InvoiceRepo().Return(mockInvoiceRepo)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrUserNotFound)

	err := fx.service.DeleteUser(ctx, userID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAdminService_ListAllUsers_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindAll(ctx).
		Return([]*entity.User{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	users, err := fx.service.ListAllUsers(ctx)

	require.NoError(t, err)
	assert.Len(t, users, 2)
}
