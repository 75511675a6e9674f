package service

import (
	"context"
	"fmt"
	"time"

	"vastra/internal/model"
	"vastra/internal/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// bookingService implements BookingService.
type bookingService struct {
	bookingRepo repository.BookingRepository
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	logger      zerolog.Logger
}

// NewBookingService creates a new booking service.
func NewBookingService(
	bookingRepo repository.BookingRepository,
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	logger zerolog.Logger,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		logger:      logger.With().Str("service", "booking").Logger(),
	}
}

// rentalDays is the inclusive day count of a rental range. Dates are stored
// at midnight, so the division is exact.
func rentalDays(start, end time.Time) int {
	return int(end.Sub(start)/(24*time.Hour)) + 1
}

// Checkout converts the user's entire cart into pending bookings. The
// profile update, booking inserts and cart clearing run in one transaction;
// cart items whose product has been deleted are skipped without error.
func (s *bookingService) Checkout(ctx context.Context, userID string, req model.CheckoutRequest) (*model.CheckoutResponse, error) {
	items, err := s.cartRepo.GetByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to read cart for checkout")
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}

	if len(items) == 0 {
		s.logger.Warn().Str("user_id", userID).Msg("checkout attempted with empty cart")
		return nil, model.ErrCartEmpty
	}

	tx, err := s.bookingRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to create bookings: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	// Overwrite the delivery profile before any booking is created.
	_, err = s.userRepo.UpdateTx(ctx, tx, userID, model.UpdateUser{
		Phone:   &req.Phone,
		Address: &req.Address,
		Pincode: &req.Pincode,
		City:    &req.City,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to update delivery profile")
		return nil, fmt.Errorf("failed to update delivery profile: %w", err)
	}

	deliveryAddress := fmt.Sprintf("%s, %s - %s", req.Address, req.City, req.Pincode)

	created := []model.Booking{}
	for _, item := range items {
		var product *model.Product
		product, err = s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			s.logger.Error().Err(err).Int("product_id", item.ProductID).Msg("failed to resolve cart item product")
			return nil, fmt.Errorf("failed to resolve product: %w", err)
		}
		if product == nil {
			// The product was deleted after the item entered the cart.
			s.logger.Warn().
				Str("user_id", userID).
				Int("cart_item_id", item.ID).
				Int("product_id", item.ProductID).
				Msg("skipping cart item with missing product")
			continue
		}

		totalDays := rentalDays(item.StartDate, item.EndDate)
		rentalAmount := product.BasePrice.Mul(decimal.NewFromInt(int64(totalDays)))
		totalAmount := rentalAmount.Add(product.DepositAmount)

		var booking *model.Booking
		booking, err = s.bookingRepo.Create(ctx, tx, model.InsertBooking{
			UserID:          userID,
			ProductID:       item.ProductID,
			VariantID:       item.VariantID,
			StartDate:       item.StartDate,
			EndDate:         item.EndDate,
			TotalDays:       totalDays,
			RentalAmount:    rentalAmount,
			DepositAmount:   product.DepositAmount,
			TotalAmount:     totalAmount,
			Status:          model.BookingStatusPending,
			PaymentStatus:   "pending",
			Size:            item.Size,
			Color:           item.Color,
			DeliveryAddress: &deliveryAddress,
			Notes:           req.Notes,
		})
		if err != nil {
			s.logger.Error().Err(err).Int("cart_item_id", item.ID).Msg("failed to create booking")
			return nil, fmt.Errorf("failed to create booking: %w", err)
		}

		created = append(created, *booking)
	}

	// Cleared regardless of per-item skips, matching conversion semantics.
	if err = s.cartRepo.Clear(ctx, tx, userID); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to clear cart")
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to commit checkout transaction")
		return nil, fmt.Errorf("failed to create bookings: %w", err)
	}

	s.logger.Info().
		Str("user_id", userID).
		Int("cart_items", len(items)).
		Int("bookings_created", len(created)).
		Msg("cart converted to bookings")

	// A payment-gateway checkout session would be created here.
	return &model.CheckoutResponse{
		Success:  true,
		Bookings: created,
	}, nil
}

// BookingsForUser lists a user's bookings with products attached.
func (s *bookingService) BookingsForUser(ctx context.Context, userID string) ([]model.BookingWithProduct, error) {
	bookings, err := s.bookingRepo.GetByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to get bookings")
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	return s.populate(ctx, bookings)
}

// RecentForUser lists a user's most recent bookings with products attached.
func (s *bookingService) RecentForUser(ctx context.Context, userID string, limit int) ([]model.BookingWithProduct, error) {
	bookings, err := s.bookingRepo.GetRecentByUser(ctx, userID, limit)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to get recent bookings")
		return nil, fmt.Errorf("failed to get recent bookings: %w", err)
	}
	return s.populate(ctx, bookings)
}

// AllBookings lists every booking with products attached.
func (s *bookingService) AllBookings(ctx context.Context) ([]model.BookingWithProduct, error) {
	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all bookings")
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	return s.populate(ctx, bookings)
}

// Recent lists the most recent bookings across all users with products attached.
func (s *bookingService) Recent(ctx context.Context, limit int) ([]model.BookingWithProduct, error) {
	bookings, err := s.bookingRepo.GetRecent(ctx, limit)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get recent bookings")
		return nil, fmt.Errorf("failed to get recent bookings: %w", err)
	}
	return s.populate(ctx, bookings)
}

// UpcomingReturns lists bookings due back within the next 7 days with
// products attached.
func (s *bookingService) UpcomingReturns(ctx context.Context) ([]model.BookingWithProduct, error) {
	bookings, err := s.bookingRepo.UpcomingReturns(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get upcoming returns")
		return nil, fmt.Errorf("failed to get upcoming returns: %w", err)
	}
	return s.populate(ctx, bookings)
}

// UpdateStatus transitions a booking's lifecycle status. Only membership in
// the known status set is validated; ordering is not enforced.
func (s *bookingService) UpdateStatus(ctx context.Context, id int, status string) (*model.Booking, error) {
	if !model.KnownBookingStatus(status) {
		s.logger.Warn().Int("booking_id", id).Str("status", status).Msg("rejected unknown booking status")
		return nil, model.ErrInvalidStatus
	}

	booking, err := s.bookingRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		s.logger.Error().Err(err).Int("booking_id", id).Msg("failed to update booking status")
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	if booking == nil {
		return nil, model.ErrBookingNotFound
	}

	return booking, nil
}

// Stats computes the admin dashboard aggregates.
func (s *bookingService) Stats(ctx context.Context) (*model.AdminStats, error) {
	stats, err := s.bookingRepo.Stats(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to compute admin stats")
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	return stats, nil
}

// populate attaches the product to each booking. Bookings whose product has
// been deleted carry a nil product.
func (s *bookingService) populate(ctx context.Context, bookings []model.Booking) ([]model.BookingWithProduct, error) {
	populated := make([]model.BookingWithProduct, 0, len(bookings))
	for _, booking := range bookings {
		product, err := s.productRepo.GetByID(ctx, booking.ProductID)
		if err != nil {
			s.logger.Error().Err(err).Int("product_id", booking.ProductID).Msg("failed to populate booking product")
			return nil, fmt.Errorf("failed to populate booking: %w", err)
		}
		populated = append(populated, model.BookingWithProduct{Booking: booking, Product: product})
	}
	return populated, nil
}
