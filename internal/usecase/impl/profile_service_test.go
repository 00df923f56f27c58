package impl

import (
	"context"
	"testing"

	"oxylink/internal/domain/entity"
	domainerrors "oxylink/internal/domain/errors"
	"oxylink/internal/domain/repository"
	mockRepo "oxylink/internal/mocks/repository"
	mockSvc "oxylink/internal/mocks/service"
	"oxylink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
	hasher    *mockSvc.MockPasswordHasher
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewProfileService(ProfileServiceParams{
		TxManager: txManager,
		Hasher:    hasher,
		Logger:    newDiscardLogger(),
	})

	return profileServiceFixtures{
		service:   service,
		txManager: txManager,
		hasher:    hasher,
	}
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	expectedUser := &entity.User{
		ID:    userID,
		Email: "test@example.com",
		Name:  "Test User",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(expectedUser, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	user, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expectedUser, user)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrUserNotFound, "user not found"))

	user, err := fx.service.GetProfile(ctx, userID)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_UpdateProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	name := "New Name"
	phone := "555-0300"
	address := "7 Cylinder Road"
	input := &usecase.UpdateProfileInput{
		Name:    &name,
		Phone:   &phone,
		Address: &address,
	}

	existingUser := &entity.User{
		ID:    userID,
		Name:  "Old Name",
		Phone: "555-0000",
		Role:  entity.RoleBuyer,
		BuyerProfile: &entity.BuyerProfile{
			UserID:  userID,
			Address: "Old Address",
		},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existingUser, nil)
			mockUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
			mockUserRepo.EXPECT().UpdateBuyerProfile(ctx, mock.AnythingOfType("*entity.BuyerProfile")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.UpdateProfile(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, name, existingUser.Name)
	assert.Equal(t, phone, existingUser.Phone)
	assert.Equal(t, address, existingUser.BuyerProfile.Address)
}

func TestProfileService_UpdateProfile_AddressWithoutBuyerProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	address := "7 Cylinder Road"
	input := &usecase.UpdateProfileInput{Address: &address}

	existingUser := &entity.User{
		ID:            userID,
		Role:          entity.RoleSeller,
		SellerProfile: &entity.SellerProfile{UserID: userID},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existingUser, nil)
			mockUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrValidationFailed, "account has no delivery address"))

	err := fx.service.UpdateProfile(ctx, userID, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProfileService_ChangePassword_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.ChangePasswordInput{
		CurrentPassword: "OldPassword123!",
		NewPassword:     "NewPassword123!",
	}

	existingUser := &entity.User{ID: userID, Email: "test@example.com"}
	authRecord := &entity.Authentication{
		UserID:       userID,
		Provider:     entity.ProviderTypeEmail,
		PasswordHash: "old_hash",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.NewPassword).Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existingUser, nil)
			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, existingUser.Email).
				Return(authRecord, nil)

			fx.hasher.EXPECT().Check(input.CurrentPassword, "old_hash").Return(true)
			fx.hasher.EXPECT().Hash(input.NewPassword).Return("new_hash", nil)

			mockAuthRepo.EXPECT().
				UpdateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.ChangePassword(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "new_hash", authRecord.PasswordHash)
}

func TestProfileService_ChangePassword_WrongCurrentPassword(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.ChangePasswordInput{
		CurrentPassword: "wrong",
		NewPassword:     "NewPassword123!",
	}

	existingUser := &entity.User{ID: userID, Email: "test@example.com"}
	authRecord := &entity.Authentication{
		UserID:       userID,
		Provider:     entity.ProviderTypeEmail,
		PasswordHash: "old_hash",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.NewPassword).Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existingUser, nil)
			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, existingUser.Email).
				Return(authRecord, nil)

			fx.hasher.EXPECT().Check(input.CurrentPassword, "old_hash").Return(false)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrWrongPassword, "current password is incorrect"))

	err := fx.service.ChangePassword(ctx, userID, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrWrongPassword))
}
