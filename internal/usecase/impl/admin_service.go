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

const recentActivityLimit = 100

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	invoiceRepo  repository.InvoiceRepository
	activityRepo repository.ActivityLogRepository
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	InvoiceRepo  repository.InvoiceRepository
	ActivityRepo repository.ActivityLogRepository
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		invoiceRepo:  params.InvoiceRepo,
		activityRepo: params.ActivityRepo,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAllUsers returns every account, newest first.
func (srv *adminService) ListAllUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// ListAllInvoices returns every invoice, newest first.
func (srv *adminService) ListAllInvoices(ctx context.Context) ([]*entity.Invoice, error) {
	invoices, err := srv.invoiceRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list invoices")
	}

	return invoices, nil
}

// SystemStats aggregates the dashboard counters.
func (srv *adminService) SystemStats(ctx context.Context) (*usecase.SystemStats, error) {
	stats := &usecase.SystemStats{}

	var err error
	if stats.Users.Total, err = srv.userRepo.Count(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}
	if stats.Users.Providers, err = srv.userRepo.CountByRole(ctx, entity.RoleProvider); err != nil {
		return nil, errors.Wrap(err, "failed to count providers")
	}
	if stats.Users.Purchasers, err = srv.userRepo.CountByRole(ctx, entity.RolePurchaser); err != nil {
		return nil, errors.Wrap(err, "failed to count purchasers")
	}

	if stats.Invoices.Total, err = srv.invoiceRepo.Count(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count invoices")
	}
	if stats.Invoices.Paid, err = srv.invoiceRepo.CountByStatus(ctx, entity.InvoiceStatusPaid); err != nil {
		return nil, errors.Wrap(err, "failed to count paid invoices")
	}
	if stats.Invoices.Pending, err = srv.invoiceRepo.CountByStatus(ctx, entity.InvoiceStatusPending); err != nil {
		return nil, errors.Wrap(err, "failed to count pending invoices")
	}
	if stats.Invoices.Overdue, err = srv.invoiceRepo.CountByStatus(ctx, entity.InvoiceStatusOverdue); err != nil {
		return nil, errors.Wrap(err, "failed to count overdue invoices")
	}

	if stats.Revenue, err = srv.invoiceRepo.SumTotalByStatus(ctx, entity.InvoiceStatusPaid); err != nil {
		return nil, errors.Wrap(err, "failed to sum revenue")
	}

	return stats, nil
}

// RecentActivity returns the latest activity entries with user summaries.
func (srv *adminService) RecentActivity(ctx context.Context) ([]*entity.ActivityLog, error) {
	logs, err := srv.activityRepo.FindRecent(ctx, recentActivityLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent activity")
	}

	return logs, nil
}

// UpdateUserStatus activates or deactivates an account.
func (srv *adminService) UpdateUserStatus(ctx context.Context, id uuid.UUID, status entity.Status) (*entity.User, error) {
	srv.log(ctx).Info("Updating user status", slog.Any("userID", id), slog.String("status", status.String()))

	if !status.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown account status")
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, findErr := userRepo.FindByID(ctx, id)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(findErr, "failed to load user for status update")
		}

		user.Status = status
		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update user status")
		}

		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("User status update failed", slog.Any("userID", id), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// DeleteUser runs the same cascade as self-service account deletion.
func (srv *adminService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting user", slog.Any("userID", id))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return deleteUserCascade(ctx, repoFactory, id)
	})
	if err != nil {
		srv.log(ctx).Warn("User deletion failed", slog.Any("userID", id), slog.Any("error", err))

		return err
	}

	publishBillingEvent(ctx, srv.publisher, srv.log(ctx), &service.BillingEvent{
		Type:       service.EventUserDeleted,
		OccurredAt: time.Now(),
		UserID:     id.String(),
	})

	srv.log(ctx).Info("User deleted", slog.Any("userID", id))

	return nil
}
