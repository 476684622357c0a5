package impl

import (
	"context"
	"strings"
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

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service        usecase.AuthUsecase
	txManager      *mockRepo.MockTransactionManager
	userRepo       *mockRepo.MockUserRepository
	activityRepo   *mockRepo.MockActivityLogRepository
	resetTokenRepo *mockRepo.MockPasswordResetTokenRepository
	hasher         *mockSvc.MockPasswordHasher
	tokenService   *mockSvc.MockTokenService
	mailService    *mockSvc.MockMailService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	activityRepo := mockRepo.NewMockActivityLogRepository(t)
	resetTokenRepo := mockRepo.NewMockPasswordResetTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	mailService := mockSvc.NewMockMailService(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:      txManager,
		UserRepo:       userRepo,
		ActivityRepo:   activityRepo,
		ResetTokenRepo: resetTokenRepo,
		Hasher:         hasher,
		TokenService:   tokenService,
		MailService:    mailService,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})

	return authServiceFixtures{
		service:        service,
		txManager:      txManager,
		userRepo:       userRepo,
		activityRepo:   activityRepo,
		resetTokenRepo: resetTokenRepo,
		hasher:         hasher,
		tokenService:   tokenService,
		mailService:    mailService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RegisterInput{
		Name:      "Asha Provider",
		Email:     "asha@example.com",
		Password:  "Password123!",
		Role:      entity.RoleProvider,
		IPAddress: "10.0.0.1",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockActivityRepo := mockRepo.NewMockActivityLogRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().ActivityLogRepo().Return(mockActivityRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = userID
				}).
				Return(nil)

			mockActivityRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.ActivityLog")).
				Run(func(ctx context.Context, log *entity.ActivityLog) {
					assert.Equal(t, entity.ActionRegister, log.Action)
					assert.Equal(t, input.IPAddress, log.IPAddress)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.tokenService.EXPECT().GenerateToken(userID).Return("signed_token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed_token", output.Token)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, entity.RoleProvider, output.User.Role)
	assert.Equal(t, entity.StatusActive, output.User.Status)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Asha Provider",
		Email:    "taken@example.com",
		Password: "Password123!",
		Role:     entity.RolePurchaser,
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrDuplicateEmail)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))
}

func TestAuthService_Register_UnknownRole(t *testing.T) {
	fx := createTestAuthService(t)

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Nobody",
		Email:    "nobody@example.com",
		Password: "Password123!",
		Role:     entity.Role("superuser"),
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "asha@example.com",
		PasswordHash: "hashed_password",
		Role:         entity.RolePurchaser,
		Status:       entity.StatusActive,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().GenerateToken(user.ID).Return("signed_token", nil)
	fx.activityRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ActivityLog")).
		Run(func(ctx context.Context, log *entity.ActivityLog) {
			assert.Equal(t, user.ID, log.UserID)
			assert.Equal(t, entity.ActionLogin, log.Action)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed_token", output.Token)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "asha@example.com",
		PasswordHash: "hashed_password",
		Status:       entity.StatusActive,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", user.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "dormant@example.com",
		PasswordHash: "hashed_password",
		Status:       entity.StatusInactive,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", user.PasswordHash).Return(true)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "Password123!",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountInactive))
}

func TestAuthService_Logout_RecordsActivity(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.activityRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ActivityLog")).
		Run(func(ctx context.Context, log *entity.ActivityLog) {
			assert.Equal(t, userID, log.UserID)
			assert.Equal(t, entity.ActionLogout, log.Action)
			assert.Equal(t, "10.0.0.9", log.IPAddress)
		}).
		Return(nil)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{
		UserID:    userID,
		IPAddress: "10.0.0.9",
	})

	require.NoError(t, err)
}

func TestAuthService_GetProfile_NotFound(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAuthService_ForgotPassword_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	// Account existence must not leak: unknown emails report success too.
	output, err := fx.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{
		Email: "ghost@example.com",
	})

	require.NoError(t, err)
	assert.Empty(t, output.ResetURL)
}

func TestAuthService_ForgotPassword_MailDisabled(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "asha@example.com"}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockResetRepo := mockRepo.NewMockPasswordResetTokenRepository(t)

			mockFactory.EXPECT().ResetTokenRepo().Return(mockResetRepo)

			mockResetRepo.EXPECT().DeleteByUserID(ctx, user.ID).Return(nil)
			mockResetRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.PasswordResetToken")).
				Run(func(ctx context.Context, token *entity.PasswordResetToken) {
					assert.Equal(t, user.ID, token.UserID)
					assert.Len(t, token.Token, 64)
					assert.WithinDuration(t, time.Now().Add(10*time.Minute), token.ExpiresAt, 5*time.Second)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.mailService.EXPECT().IsEnabled().Return(false)

	output, err := fx.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{
		Email: user.Email,
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(output.ResetURL, "http://localhost:3000/reset-password?token="))
}

func TestAuthService_ForgotPassword_MailEnabled(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "asha@example.com"}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockResetRepo := mockRepo.NewMockPasswordResetTokenRepository(t)

			mockFactory.EXPECT().ResetTokenRepo().Return(mockResetRepo)

			mockResetRepo.EXPECT().DeleteByUserID(ctx, user.ID).Return(nil)
			mockResetRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.PasswordResetToken")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.mailService.EXPECT().IsEnabled().Return(true)
	fx.mailService.EXPECT().
		SendPasswordReset(ctx, user.Email, mock.AnythingOfType("string")).
		Return(nil)

	output, err := fx.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{
		Email: user.Email,
	})

	require.NoError(t, err)
	assert.Empty(t, output.ResetURL)
}

func TestAuthService_ResetPassword_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), PasswordHash: "old_hash"}
	resetToken := &entity.PasswordResetToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		Token:     "abcdef",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}

	fx.hasher.EXPECT().Hash("NewPassword123!").Return("new_hash", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockResetRepo := mockRepo.NewMockPasswordResetTokenRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().ResetTokenRepo().Return(mockResetRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockResetRepo.EXPECT().FindValidByToken(ctx, resetToken.Token).Return(resetToken, nil)
			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, updated *entity.User) {
					assert.Equal(t, "new_hash", updated.PasswordHash)
				}).
				Return(nil)
			mockResetRepo.EXPECT().Delete(ctx, resetToken.ID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Token:       resetToken.Token,
		NewPassword: "NewPassword123!",
	})

	require.NoError(t, err)
}

func TestAuthService_ResetPassword_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("NewPassword123!").Return("new_hash", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockResetRepo := mockRepo.NewMockPasswordResetTokenRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().ResetTokenRepo().Return(mockResetRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockResetRepo.EXPECT().
				FindValidByToken(ctx, "bogus").
				Return(nil, repository.ErrResetTokenNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrInvalidOrExpiredToken)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Token:       "bogus",
		NewPassword: "NewPassword123!",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOrExpiredToken))
}
