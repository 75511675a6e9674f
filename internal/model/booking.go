package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking lifecycle statuses. Transitions are admin-driven; no ordering is
// enforced (see DESIGN.md open questions).
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusDelivered = "delivered"
	BookingStatusReturned  = "returned"
	BookingStatusCancelled = "cancelled"
)

// KnownBookingStatus reports whether s is one of the recognised lifecycle
// statuses.
func KnownBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusDelivered,
		BookingStatusReturned, BookingStatusCancelled:
		return true
	}
	return false
}

// CartItem is a draft reservation awaiting conversion to a booking.
type CartItem struct {
	ID        int       `json:"id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	ProductID int       `json:"productId" db:"product_id"`
	VariantID *int      `json:"variantId" db:"variant_id"`
	Size      *string   `json:"size" db:"size"`
	Color     *string   `json:"color" db:"color"`
	StartDate time.Time `json:"startDate" db:"start_date"`
	EndDate   time.Time `json:"endDate" db:"end_date"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// InsertCartItem is the add-to-cart payload after date parsing.
type InsertCartItem struct {
	UserID    string
	ProductID int
	VariantID *int
	Size      *string
	Color     *string
	StartDate time.Time
	EndDate   time.Time
}

// CartItemWithProduct is the cart read shape with the product attached.
// Product is nil when the referenced product has been deleted.
type CartItemWithProduct struct {
	CartItem
	Product *Product `json:"product"`
}

// Booking is an immutable confirmed-reservation record with computed
// pricing and lifecycle status.
type Booking struct {
	ID              int             `json:"id" db:"id"`
	UserID          string          `json:"userId" db:"user_id"`
	ProductID       int             `json:"productId" db:"product_id"`
	VariantID       *int            `json:"variantId" db:"variant_id"`
	StartDate       time.Time       `json:"startDate" db:"start_date"`
	EndDate         time.Time       `json:"endDate" db:"end_date"`
	TotalDays       int             `json:"totalDays" db:"total_days"`
	RentalAmount    decimal.Decimal `json:"rentalAmount" db:"rental_amount"`
	DepositAmount   decimal.Decimal `json:"depositAmount" db:"deposit_amount"`
	TotalAmount     decimal.Decimal `json:"totalAmount" db:"total_amount"`
	Status          string          `json:"status" db:"status"`
	PaymentStatus   string          `json:"paymentStatus" db:"payment_status"`
	PaymentIntentID *string         `json:"paymentIntentId" db:"payment_intent_id"`
	Size            *string         `json:"size" db:"size"`
	Color           *string         `json:"color" db:"color"`
	DeliveryAddress *string         `json:"deliveryAddress" db:"delivery_address"`
	Notes           *string         `json:"notes" db:"notes"`
	CreatedAt       time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time       `json:"updatedAt" db:"updated_at"`
}

// InsertBooking is the row written by the conversion workflow.
type InsertBooking struct {
	UserID          string
	ProductID       int
	VariantID       *int
	StartDate       time.Time
	EndDate         time.Time
	TotalDays       int
	RentalAmount    decimal.Decimal
	DepositAmount   decimal.Decimal
	TotalAmount     decimal.Decimal
	Status          string
	PaymentStatus   string
	Size            *string
	Color           *string
	DeliveryAddress *string
	Notes           *string
}

// BookingWithProduct is the booking read shape with the product attached.
// Product is nil when the referenced product has been deleted.
type BookingWithProduct struct {
	Booking
	Product *Product `json:"product"`
}

// CheckoutRequest carries the delivery details supplied at checkout. The
// user profile is overwritten with these before any booking is created.
type CheckoutRequest struct {
	Phone   string  `json:"phone"`
	Address string  `json:"address"`
	Pincode string  `json:"pincode"`
	City    string  `json:"city"`
	Notes   *string `json:"notes"`
}

// CheckoutResponse is returned by cart conversion. A checkout URL would be
// attached here once a payment gateway is integrated.
type CheckoutResponse struct {
	Success  bool      `json:"success"`
	Bookings []Booking `json:"bookings"`
}

// AdminStats is a point-in-time snapshot of catalog and booking totals.
type AdminStats struct {
	TotalProducts   int             `json:"totalProducts"`
	TotalBookings   int             `json:"totalBookings"`
	PendingBookings int             `json:"pendingBookings"`
	ActiveBookings  int             `json:"activeBookings"`
	Revenue         decimal.Decimal `json:"revenue"`
}
