package service

import (
	"context"
	"errors"
	"testing"

	"vastra/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCartRepository is a mock implementation of CartRepository.
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) GetByUser(ctx context.Context, userID string) ([]model.CartItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CartItem), args.Error(1)
}

func (m *MockCartRepository) GetByID(ctx context.Context, id int) (*model.CartItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartItem), args.Error(1)
}

func (m *MockCartRepository) Add(ctx context.Context, item model.InsertCartItem) (*model.CartItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartItem), args.Error(1)
}

func (m *MockCartRepository) Remove(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCartRepository) Clear(ctx context.Context, tx pgx.Tx, userID string) error {
	args := m.Called(ctx, tx, userID)
	return args.Error(0)
}

func TestCartService_Items(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	items := []model.CartItem{
		{ID: 1, UserID: "user-1", ProductID: 7, StartDate: day("2025-06-13"), EndDate: day("2025-06-15")},
		{ID: 2, UserID: "user-1", ProductID: 99, StartDate: day("2025-06-20"), EndDate: day("2025-06-22")},
	}

	mockCartRepo := new(MockCartRepository)
	mockProductRepo := new(MockProductRepository)

	service := NewCartService(mockCartRepo, mockProductRepo, logger)

	mockCartRepo.On("GetByUser", ctx, "user-1").Return(items, nil)
	mockProductRepo.On("GetByID", ctx, 7).
		Return(&model.Product{ID: 7, Name: "Anarkali Gown", BasePrice: decimal.NewFromInt(1200)}, nil)
	// Product 99 was deleted; the cart item still lists with a nil product
	mockProductRepo.On("GetByID", ctx, 99).Return(nil, nil)

	result, err := service.Items(ctx, "user-1")

	require.NoError(t, err)
	require.Len(t, result, 2)
	require.NotNil(t, result[0].Product)
	assert.Equal(t, "Anarkali Gown", result[0].Product.Name)
	assert.Nil(t, result[1].Product)

	mockCartRepo.AssertExpectations(t)
	mockProductRepo.AssertExpectations(t)
}

func TestCartService_Items_Empty(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockCartRepo := new(MockCartRepository)
	mockProductRepo := new(MockProductRepository)

	service := NewCartService(mockCartRepo, mockProductRepo, logger)

	mockCartRepo.On("GetByUser", ctx, "user-1").Return([]model.CartItem{}, nil)

	result, err := service.Items(ctx, "user-1")

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)

	mockProductRepo.AssertNotCalled(t, "GetByID")
}

func TestCartService_Add(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	item := model.InsertCartItem{
		UserID:    "user-1",
		ProductID: 7,
		StartDate: day("2025-06-13"),
		EndDate:   day("2025-06-15"),
	}

	mockCartRepo := new(MockCartRepository)
	mockProductRepo := new(MockProductRepository)

	service := NewCartService(mockCartRepo, mockProductRepo, logger)

	mockCartRepo.On("Add", ctx, item).
		Return(&model.CartItem{ID: 5, UserID: "user-1", ProductID: 7}, nil)

	persisted, err := service.Add(ctx, item)

	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, 5, persisted.ID)

	mockCartRepo.AssertExpectations(t)
}

func TestCartService_Add_ReversedDateRange(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	item := model.InsertCartItem{
		UserID:    "user-1",
		ProductID: 7,
		StartDate: day("2025-06-15"),
		EndDate:   day("2025-06-13"),
	}

	mockCartRepo := new(MockCartRepository)
	mockProductRepo := new(MockProductRepository)

	service := NewCartService(mockCartRepo, mockProductRepo, logger)

	persisted, err := service.Add(ctx, item)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidDateRange)
	assert.Nil(t, persisted)

	mockCartRepo.AssertNotCalled(t, "Add")
}

func TestCartService_Remove(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name      string
		mockError error
		expectErr bool
	}{
		{name: "Success", mockError: nil, expectErr: false},
		{name: "Repository error", mockError: errors.New("database error"), expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCartRepo := new(MockCartRepository)
			mockProductRepo := new(MockProductRepository)

			service := NewCartService(mockCartRepo, mockProductRepo, logger)

			mockCartRepo.On("Remove", ctx, 3).Return(tt.mockError)

			err := service.Remove(ctx, 3)

			if tt.expectErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			mockCartRepo.AssertExpectations(t)
		})
	}
}
