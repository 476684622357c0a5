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

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	publisher service.EventPublisher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns every account, newest first.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// ListUsersByRole returns the accounts holding the given role, newest first.
func (srv *userService) ListUsersByRole(ctx context.Context, role entity.Role) ([]*entity.User, error) {
	if !role.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown role")
	}

	users, err := srv.userRepo.FindByRole(ctx, role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users by role")
	}

	return users, nil
}

// UpdateProfile lets a user change their own name, email, and optionally password.
func (srv *userService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating profile", slog.Any("userID", input.UserID))

	var hashedPassword string
	if input.Password != "" {
		var err error
		hashedPassword, err = srv.hasher.Hash(input.Password)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash new password")
		}
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, findErr := userRepo.FindByID(ctx, input.UserID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(findErr, "failed to load user for profile update")
		}

		if input.Email != "" && input.Email != user.Email {
			_, emailErr := userRepo.FindByEmail(ctx, input.Email)
			if emailErr == nil {
				return domainerrors.ErrDuplicateEmail
			}
			if !errors.Is(emailErr, repository.ErrUserNotFound) {
				return errors.Wrap(emailErr, "failed to check email availability")
			}
			user.Email = input.Email
		}
		if input.Name != "" {
			user.Name = input.Name
		}
		if hashedPassword != "" {
			user.PasswordHash = hashedPassword
		}

		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update profile")
		}

		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Profile update failed", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// DeleteAccount removes the user and all their billing records.
func (srv *userService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Deleting account", slog.Any("userID", userID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return deleteUserCascade(ctx, repoFactory, userID)
	})
	if err != nil {
		srv.log(ctx).Warn("Account deletion failed", slog.Any("userID", userID), slog.Any("error", err))

		return err
	}

	publishBillingEvent(ctx, srv.publisher, srv.log(ctx), &service.BillingEvent{
		Type:       service.EventUserDeleted,
		OccurredAt: time.Now(),
		UserID:     userID.String(),
	})

	srv.log(ctx).Info("Account deleted", slog.Any("userID", userID))

	return nil
}

// deleteUserCascade removes a user and everything hanging off them, in
// dependency order: payments, then invoices and items, then activity entries
// and reset tokens, then the user row. Refused while any pending or overdue
// invoice names the user.
func deleteUserCascade(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID) error {
	userRepo := repoFactory.UserRepo()
	invoiceRepo := repoFactory.InvoiceRepo()

	if _, err := userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to load user for deletion")
	}

	outstanding, err := invoiceRepo.HasWithStatuses(ctx, userID, []entity.InvoiceStatus{
		entity.InvoiceStatusPending,
		entity.InvoiceStatusOverdue,
	})
	if err != nil {
		return errors.Wrap(err, "failed to check outstanding invoices")
	}
	if outstanding {
		return domainerrors.ErrHasOutstandingInvoices
	}

	invoiceIDs, err := invoiceRepo.FindIDsByParticipant(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to collect user invoices")
	}

	if err := repoFactory.PaymentRepo().DeleteByInvoiceIDs(ctx, invoiceIDs); err != nil {
		return errors.Wrap(err, "failed to delete payments during cascade")
	}
	if err := invoiceRepo.DeleteByParticipant(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete invoices during cascade")
	}
	if err := repoFactory.ActivityLogRepo().DeleteByUserID(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete activity logs during cascade")
	}
	if err := repoFactory.ResetTokenRepo().DeleteByUserID(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete reset tokens during cascade")
	}

	return userRepo.Delete(ctx, userID)
}

// publishBillingEvent publishes best-effort: a failed publish is logged, never
// surfaced to the caller, because the state change has already committed.
func publishBillingEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.BillingEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := publisher.PublishBillingEvent(ctx, event); err != nil {
		logger.Error("Failed to publish billing event",
			slog.String("type", event.Type),
			slog.Any("error", err),
		)
	}
}
