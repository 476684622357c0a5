// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"ledger/config"
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

const resetTokenBytes = 32

// authService implements the AuthUsecase interface.
type authService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	activityRepo   repository.ActivityLogRepository
	resetTokenRepo repository.PasswordResetTokenRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	mailService    service.MailService
	resetTokenTTL  time.Duration
	resetBaseURL   string
	logger         *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	ActivityRepo   repository.ActivityLogRepository
	ResetTokenRepo repository.PasswordResetTokenRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	MailService    service.MailService
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	resetTokenTTL := 10 * time.Minute
	resetBaseURL := ""
	if params.Config != nil && params.Config.ResetToken != nil {
		if params.Config.ResetToken.TTL > 0 {
			resetTokenTTL = params.Config.ResetToken.TTL
		}
		resetBaseURL = params.Config.ResetToken.BaseURL
	}

	return &authService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		activityRepo:   params.ActivityRepo,
		resetTokenRepo: params.ResetTokenRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		mailService:    params.MailService,
		resetTokenTTL:  resetTokenTTL,
		resetBaseURL:   resetBaseURL,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.Any("role", input.Role), slog.String("email", input.Email))

	if !input.Role.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown role")
	}

	// Hash outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         input.Role,
		Status:       entity.StatusActive,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, findErr := userRepo.FindByEmail(ctx, input.Email)
		if findErr == nil {
			return domainerrors.ErrDuplicateEmail
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check email availability")
		}

		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			return errors.Wrap(createErr, "failed to create user during registration")
		}

		return repoFactory.ActivityLogRepo().Create(ctx, &entity.ActivityLog{
			UserID:    newUser.ID,
			Action:    entity.ActionRegister,
			IPAddress: input.IPAddress,
			Timestamp: time.Now(),
		})
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	token, err := srv.tokenService.GenerateToken(newUser.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate token after registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.AuthOutput{Token: token, User: newUser}, nil
}

// Login orchestrates the login process.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			// Same error as a password mismatch so account existence is not leaked.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if user.Status != entity.StatusActive {
		srv.log(ctx).Warn("Login rejected for inactive account", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrAccountInactive
	}

	token, err := srv.tokenService.GenerateToken(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate token during login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate token")
	}

	// Single insert, no transaction needed.
	if err := srv.activityRepo.Create(ctx, &entity.ActivityLog{
		UserID:    user.ID,
		Action:    entity.ActionLogin,
		IPAddress: input.IPAddress,
		Timestamp: time.Now(),
	}); err != nil {
		srv.log(ctx).Error("Failed to record login activity", slog.Any("error", err), slog.Any("userID", user.ID))

		return nil, errors.Wrap(err, "failed to record login activity")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// Logout records the logout event. Bearer tokens are stateless, so there is
// no server-side session to destroy.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Logging out", slog.Any("userID", input.UserID))

	if err := srv.activityRepo.Create(ctx, &entity.ActivityLog{
		UserID:    input.UserID,
		Action:    entity.ActionLogout,
		IPAddress: input.IPAddress,
		Timestamp: time.Now(),
	}); err != nil {
		srv.log(ctx).Error("Failed to record logout activity", slog.Any("error", err), slog.Any("userID", input.UserID))

		return errors.Wrap(err, "failed to record logout activity")
	}

	return nil
}

// GetProfile retrieves the authenticated user's own account.
func (srv *authService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}

// ForgotPassword issues a password reset token. The response is identical
// whether or not the email is known, so account existence is not leaked.
func (srv *authService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) (*usecase.ForgotPasswordOutput, error) {
	srv.log(ctx).Info("Password reset requested", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Pretend success.
			return &usecase.ForgotPasswordOutput{}, nil
		}

		return nil, errors.Wrap(err, "failed to load user for password reset")
	}

	tokenValue, err := generateResetToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate reset token")
	}

	resetToken := &entity.PasswordResetToken{
		UserID:    user.ID,
		Token:     tokenValue,
		ExpiresAt: time.Now().Add(srv.resetTokenTTL),
	}

	// Delete-then-create keeps at most one active token per user.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		resetRepo := repoFactory.ResetTokenRepo()

		if delErr := resetRepo.DeleteByUserID(ctx, user.ID); delErr != nil {
			return errors.Wrap(delErr, "failed to invalidate prior reset tokens")
		}

		return resetRepo.Create(ctx, resetToken)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to store reset token", slog.Any("error", err), slog.Any("userID", user.ID))

		return nil, err
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", srv.resetBaseURL, tokenValue)

	if srv.mailService.IsEnabled() {
		if mailErr := srv.mailService.SendPasswordReset(ctx, user.Email, resetURL); mailErr != nil {
			srv.log(ctx).Error("Failed to send reset mail", slog.Any("error", mailErr), slog.Any("userID", user.ID))

			return nil, errors.Wrap(mailErr, "failed to send reset mail")
		}

		return &usecase.ForgotPasswordOutput{}, nil
	}

	// No mail server configured: hand the link back so development flows work.
	return &usecase.ForgotPasswordOutput{ResetURL: resetURL}, nil
}

// ResetPassword redeems a reset token and replaces the user's password hash.
// Tokens are single use.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	srv.log(ctx).Info("Resetting password")

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		resetRepo := repoFactory.ResetTokenRepo()
		userRepo := repoFactory.UserRepo()

		resetToken, findErr := resetRepo.FindValidByToken(ctx, input.Token)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrResetTokenNotFound) || errors.Is(findErr, repository.ErrResetTokenExpired) {
				return domainerrors.ErrInvalidOrExpiredToken
			}

			return errors.Wrap(findErr, "failed to load reset token")
		}

		user, userErr := userRepo.FindByID(ctx, resetToken.UserID)
		if userErr != nil {
			return errors.Wrap(userErr, "failed to load user for password reset")
		}

		user.PasswordHash = hashedPassword
		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update password")
		}

		return resetRepo.Delete(ctx, resetToken.ID)
	})
	if err != nil {
		srv.log(ctx).Warn("Password reset failed", slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Password reset completed")

	return nil
}

// generateResetToken returns a hex-encoded random token value.
func generateResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.WithStack(err)
	}

	return hex.EncodeToString(buf), nil
}
