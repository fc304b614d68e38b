package app

import (
	"context"
	"fmt"

	"recipeshare/internal/domain/entities"
	"recipeshare/internal/ports/api"
	"recipeshare/internal/ports/repositories"
	"recipeshare/pkg/logger"

	"go.uber.org/zap"
)

const (
	methodGetUserProfile = "GetUserProfile"
	methodUpdateUserName = "UpdateUserName"

	msgRequestingProfile   = "requesting user profile"
	msgEmptyUserIDProvided = "empty user ID provided"
	msgProfileRetrieved    = "user profile successfully retrieved"
	msgUpdatingUserName    = "updating user name"
	msgUserNameUpdated     = "user name updated"

	msgErrFindingUserByID = "failed to find user by ID"
	msgErrUpdatingUser    = "failed to update user"

	errCtxValidatingUserID = "validating user ID"
	errCtxFetchingProfile  = "fetching user profile"
	errCtxUpdatingUser     = "updating user"
)

// errEmptyUserID возвращается при пустом идентификаторе пользователя.
var errEmptyUserID = fmt.Errorf("user ID cannot be empty")

// UserUseCaseImpl реализует интерфейс UserUseCase.
type UserUseCaseImpl struct {
	userRepo repositories.UserRepository
}

// NewUserUseCase создает новый экземпляр сервиса пользователя.
func NewUserUseCase(userRepo repositories.UserRepository) api.UserUseCase {
	return &UserUseCaseImpl{
		userRepo: userRepo,
	}
}

// GetUserProfile получает профиль пользователя по ID.
func (u *UserUseCaseImpl) GetUserProfile(ctx context.Context, userID string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetUserProfile), zap.String("userID", userID))
	log.Debug(ctx, msgRequestingProfile)

	if userID == "" {
		log.Debug(ctx, msgEmptyUserIDProvided)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUserID, errEmptyUserID)
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		log.Error(ctx, msgErrFindingUserByID, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFetchingProfile, err)
	}

	log.Info(ctx, msgProfileRetrieved)
	return user, nil
}

// UpdateUserName изменяет отображаемое имя пользователя.
func (u *UserUseCaseImpl) UpdateUserName(ctx context.Context, userID, name string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateUserName), zap.String("userID", userID))
	log.Debug(ctx, msgUpdatingUserName)

	if userID == "" {
		log.Debug(ctx, msgEmptyUserIDProvided)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUserID, errEmptyUserID)
	}
	if name == "" {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUserID, entities.ErrEmptyUserName)
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		log.Error(ctx, msgErrFindingUserByID, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFetchingProfile, err)
	}

	user.Name = name

	updated, err := u.userRepo.Update(ctx, user)
	if err != nil {
		log.Error(ctx, msgErrUpdatingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingUser, err)
	}

	log.Info(ctx, msgUserNameUpdated)
	return updated, nil
}
