package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"recipeshare/internal/app"
	"recipeshare/internal/domain/entities"
	"recipeshare/internal/domain/services"
	"recipeshare/internal/domain/valueobjects"
)

const (
	testEmail    = "test@example.com"
	testName     = "testuser"
	testPassword = "password123"
)

func testUser(t *testing.T) *entities.User {
	t.Helper()

	email, err := valueobjects.NewEmail(testEmail)
	require.NoError(t, err)
	password, err := valueobjects.NewPassword(testPassword)
	require.NoError(t, err)

	now := time.Now().UTC()
	return &entities.User{
		ID:        "user-id-123",
		Name:      testName,
		Email:     email,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		inputName   string
		email       string
		password    string
		setupMocks  func(userRepo *mockUserRepository)
		expectedErr error
	}{
		{
			name:      "Success - user registered",
			inputName: testName,
			email:     testEmail,
			password:  testPassword,
			setupMocks: func(userRepo *mockUserRepository) {
				userRepo.On("FindByEmail", mock.Anything, mock.Anything).
					Return(nil, entities.ErrUserNotFound).Once()
				userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
					return u.Name == testName && u.Email.String() == testEmail && u.Password.Verify(testPassword)
				})).Return(testUser(t), nil).Once()
			},
			expectedErr: nil,
		},
		{
			name:        "Error - invalid email format",
			inputName:   testName,
			email:       "invalid-email",
			password:    testPassword,
			setupMocks:  func(userRepo *mockUserRepository) {},
			expectedErr: valueobjects.ErrInvalidEmail,
		},
		{
			name:        "Error - empty name",
			inputName:   "",
			email:       testEmail,
			password:    testPassword,
			setupMocks:  func(userRepo *mockUserRepository) {},
			expectedErr: entities.ErrEmptyUserName,
		},
		{
			name:        "Error - password too short",
			inputName:   testName,
			email:       testEmail,
			password:    "short1",
			setupMocks:  func(userRepo *mockUserRepository) {},
			expectedErr: valueobjects.ErrPasswordTooShort,
		},
		{
			name:        "Error - password without digits",
			inputName:   testName,
			email:       testEmail,
			password:    "passwordonly",
			setupMocks:  func(userRepo *mockUserRepository) {},
			expectedErr: valueobjects.ErrPasswordTooWeak,
		},
		{
			name:      "Error - email already registered",
			inputName: testName,
			email:     testEmail,
			password:  testPassword,
			setupMocks: func(userRepo *mockUserRepository) {
				userRepo.On("FindByEmail", mock.Anything, mock.Anything).
					Return(testUser(t), nil).Once()
			},
			expectedErr: services.ErrEmailAlreadyExists,
		},
		{
			name:      "Error - concurrent registration loses the race",
			inputName: testName,
			email:     testEmail,
			password:  testPassword,
			setupMocks: func(userRepo *mockUserRepository) {
				userRepo.On("FindByEmail", mock.Anything, mock.Anything).
					Return(nil, entities.ErrUserNotFound).Once()
				userRepo.On("Create", mock.Anything, mock.Anything).
					Return(nil, services.ErrEmailAlreadyExists).Once()
			},
			expectedErr: services.ErrEmailAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(mockUserRepository)
			tokenSvc := new(mockTokenService)
			tt.setupMocks(userRepo)

			useCase := app.NewAuthUseCase(userRepo, tokenSvc)
			user, err := useCase.Register(ctx, tt.inputName, tt.email, tt.password)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, testName, user.Name)
			}

			userRepo.AssertExpectations(t)
			tokenSvc.AssertExpectations(t)
		})
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	accessToken := "access-token-123"
	expiresAt := time.Now().Add(30 * time.Minute)

	t.Run("Success - token issued", func(t *testing.T) {
		user := testUser(t)
		userRepo := new(mockUserRepository)
		tokenSvc := new(mockTokenService)

		userRepo.On("FindByEmail", mock.Anything, mock.Anything).Return(user, nil).Once()
		tokenSvc.On("Issue", mock.Anything, user.ID).Return(accessToken, expiresAt, nil).Once()

		useCase := app.NewAuthUseCase(userRepo, tokenSvc)
		token, err := useCase.Login(ctx, testEmail, testPassword)

		require.NoError(t, err)
		require.NotNil(t, token)
		assert.Equal(t, accessToken, token.AccessToken)
		assert.Equal(t, services.BearerTokenType, token.TokenType)
		assert.Equal(t, expiresAt, token.ExpiresAt)
		assert.Equal(t, user, token.User)

		userRepo.AssertExpectations(t)
		tokenSvc.AssertExpectations(t)
	})

	t.Run("Error - unknown email yields generic failure", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		tokenSvc := new(mockTokenService)

		userRepo.On("FindByEmail", mock.Anything, mock.Anything).
			Return(nil, entities.ErrUserNotFound).Once()

		useCase := app.NewAuthUseCase(userRepo, tokenSvc)
		token, err := useCase.Login(ctx, testEmail, testPassword)

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
		assert.Nil(t, token)
	})

	t.Run("Error - wrong password yields the same generic failure", func(t *testing.T) {
		user := testUser(t)
		userRepo := new(mockUserRepository)
		tokenSvc := new(mockTokenService)

		userRepo.On("FindByEmail", mock.Anything, mock.Anything).Return(user, nil).Once()

		useCase := app.NewAuthUseCase(userRepo, tokenSvc)
		token, err := useCase.Login(ctx, testEmail, "wrongpass9")

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
		assert.Nil(t, token)
	})

	t.Run("Error - malformed email yields the same generic failure", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		tokenSvc := new(mockTokenService)

		useCase := app.NewAuthUseCase(userRepo, tokenSvc)
		token, err := useCase.Login(ctx, "not-an-email", testPassword)

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
		assert.Nil(t, token)
	})

	t.Run("Error - token generation failure", func(t *testing.T) {
		user := testUser(t)
		userRepo := new(mockUserRepository)
		tokenSvc := new(mockTokenService)

		userRepo.On("FindByEmail", mock.Anything, mock.Anything).Return(user, nil).Once()
		tokenSvc.On("Issue", mock.Anything, user.ID).
			Return("", time.Time{}, errors.New("signing error")).Once()

		useCase := app.NewAuthUseCase(userRepo, tokenSvc)
		token, err := useCase.Login(ctx, testEmail, testPassword)

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrTokenGenerationFailed)
		assert.Nil(t, token)
	})
}
