package service

import (
	"context"
	"errors"
	"testing"

	"vastra/internal/auth"
	"vastra/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Get(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Upsert(ctx context.Context, user model.UpsertUser) (*model.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id string, patch model.UpdateUser) (*model.User, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateTx(ctx context.Context, tx pgx.Tx, id string, patch model.UpdateUser) (*model.User, error) {
	args := m.Called(ctx, tx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func TestUserService_Login(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	email := "priya@example.com"
	firstName := "Priya"

	identity := &auth.Identity{
		UserID:    "user-1",
		Email:     &email,
		FirstName: &firstName,
	}

	mockUserRepo := new(MockUserRepository)
	service := NewUserService(mockUserRepo, logger)

	mockUserRepo.On("Upsert", ctx, model.UpsertUser{
		ID:        "user-1",
		Email:     &email,
		FirstName: &firstName,
	}).Return(&model.User{ID: "user-1", Email: &email}, nil)

	user, err := service.Login(ctx, identity)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "user-1", user.ID)

	mockUserRepo.AssertExpectations(t)
}

func TestUserService_Get(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name        string
		mockUser    *model.User
		mockError   error
		expectedErr error
	}{
		{
			name:     "Found",
			mockUser: &model.User{ID: "user-1"},
		},
		{
			name:        "Not found",
			mockUser:    nil,
			expectedErr: model.ErrUserNotFound,
		},
		{
			name:      "Repository error",
			mockError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo := new(MockUserRepository)
			service := NewUserService(mockUserRepo, logger)

			if tt.mockUser == nil {
				mockUserRepo.On("Get", ctx, "user-1").Return(nil, tt.mockError)
			} else {
				mockUserRepo.On("Get", ctx, "user-1").Return(tt.mockUser, tt.mockError)
			}

			user, err := service.Get(ctx, "user-1")

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
			} else if tt.mockError != nil {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, "user-1", user.ID)
			}
		})
	}
}

func TestUserService_UpdateProfile(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	phone := "9876543210"
	patch := model.UpdateUser{Phone: &phone}

	mockUserRepo := new(MockUserRepository)
	service := NewUserService(mockUserRepo, logger)

	mockUserRepo.On("Update", ctx, "user-1", patch).
		Return(&model.User{ID: "user-1", Phone: &phone}, nil)

	user, err := service.UpdateProfile(ctx, "user-1", patch)

	require.NoError(t, err)
	require.NotNil(t, user)
	require.NotNil(t, user.Phone)
	assert.Equal(t, phone, *user.Phone)

	mockUserRepo.AssertExpectations(t)
}

func TestUserService_UpdateProfile_NotFound(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockUserRepo := new(MockUserRepository)
	service := NewUserService(mockUserRepo, logger)

	mockUserRepo.On("Update", ctx, "ghost", mock.AnythingOfType("model.UpdateUser")).Return(nil, nil)

	user, err := service.UpdateProfile(ctx, "ghost", model.UpdateUser{})

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUserNotFound)
	assert.Nil(t, user)
}
