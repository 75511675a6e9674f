package service

import (
	"context"
	"fmt"

	"vastra/internal/model"
	"vastra/internal/repository"

	"github.com/rs/zerolog"
)

// cartService implements CartService.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "cart").Logger(),
	}
}

// Items lists a user's cart items with their products attached. Items whose
// product has been deleted carry a nil product.
func (s *cartService) Items(ctx context.Context, userID string) ([]model.CartItemWithProduct, error) {
	items, err := s.cartRepo.GetByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to get cart items")
		return nil, fmt.Errorf("failed to get cart items: %w", err)
	}

	populated := make([]model.CartItemWithProduct, 0, len(items))
	for _, item := range items {
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			s.logger.Error().Err(err).Int("product_id", item.ProductID).Msg("failed to populate cart item product")
			return nil, fmt.Errorf("failed to populate cart item: %w", err)
		}
		populated = append(populated, model.CartItemWithProduct{CartItem: item, Product: product})
	}

	s.logger.Debug().Str("user_id", userID).Int("count", len(populated)).Msg("retrieved cart items")

	return populated, nil
}

// Add places a reservation draft in the cart. Rejects a reversed date range.
func (s *cartService) Add(ctx context.Context, item model.InsertCartItem) (*model.CartItem, error) {
	if item.EndDate.Before(item.StartDate) {
		s.logger.Warn().
			Str("user_id", item.UserID).
			Time("start_date", item.StartDate).
			Time("end_date", item.EndDate).
			Msg("rejected reversed date range")
		return nil, model.ErrInvalidDateRange
	}

	persisted, err := s.cartRepo.Add(ctx, item)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", item.UserID).Msg("failed to add cart item")
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	s.logger.Info().
		Str("user_id", persisted.UserID).
		Int("cart_item_id", persisted.ID).
		Int("product_id", persisted.ProductID).
		Msg("cart item added")

	return persisted, nil
}

// Remove deletes a single cart item. Removing an absent ID is not an error.
func (s *cartService) Remove(ctx context.Context, id int) error {
	if err := s.cartRepo.Remove(ctx, id); err != nil {
		s.logger.Error().Err(err).Int("cart_item_id", id).Msg("failed to remove cart item")
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return nil
}
