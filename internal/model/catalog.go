package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category groups products for browsing.
type Category struct {
	ID           int       `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Slug         string    `json:"slug" db:"slug"`
	Description  *string   `json:"description" db:"description"`
	ImageURL     *string   `json:"imageUrl" db:"image_url"`
	DisplayOrder int       `json:"displayOrder" db:"display_order"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// InsertCategory is the admin create payload. Slug is derived from the name
// when omitted.
type InsertCategory struct {
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	Description  *string `json:"description"`
	ImageURL     *string `json:"imageUrl"`
	DisplayOrder int     `json:"displayOrder"`
}

// UpdateCategory is a sparse patch; only non-nil fields are applied.
type UpdateCategory struct {
	Name         *string `json:"name"`
	Slug         *string `json:"slug"`
	Description  *string `json:"description"`
	ImageURL     *string `json:"imageUrl"`
	DisplayOrder *int    `json:"displayOrder"`
}

// Product is a rentable garment listing.
type Product struct {
	ID               int             `json:"id" db:"id"`
	Name             string          `json:"name" db:"name"`
	Slug             string          `json:"slug" db:"slug"`
	Description      *string         `json:"description" db:"description"`
	CategoryID       *int            `json:"categoryId" db:"category_id"`
	BasePrice        decimal.Decimal `json:"basePrice" db:"base_price"`
	DepositAmount    decimal.Decimal `json:"depositAmount" db:"deposit_amount"`
	MinRentalDays    int             `json:"minRentalDays" db:"min_rental_days"`
	Images           []string        `json:"images" db:"images"`
	Sizes            []string        `json:"sizes" db:"sizes"`
	Colors           []string        `json:"colors" db:"colors"`
	Occasions        []string        `json:"occasions" db:"occasions"`
	Fabric           *string         `json:"fabric" db:"fabric"`
	CareInstructions *string         `json:"careInstructions" db:"care_instructions"`
	IsActive         bool            `json:"isActive" db:"is_active"`
	IsFeatured       bool            `json:"isFeatured" db:"is_featured"`
	CreatedAt        time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time       `json:"updatedAt" db:"updated_at"`
}

// InsertProduct is the admin create payload.
type InsertProduct struct {
	Name             string          `json:"name"`
	Slug             string          `json:"slug"`
	Description      *string         `json:"description"`
	CategoryID       *int            `json:"categoryId"`
	BasePrice        decimal.Decimal `json:"basePrice"`
	DepositAmount    decimal.Decimal `json:"depositAmount"`
	MinRentalDays    int             `json:"minRentalDays"`
	Images           []string        `json:"images"`
	Sizes            []string        `json:"sizes"`
	Colors           []string        `json:"colors"`
	Occasions        []string        `json:"occasions"`
	Fabric           *string         `json:"fabric"`
	CareInstructions *string         `json:"careInstructions"`
	IsActive         *bool           `json:"isActive"`
	IsFeatured       *bool           `json:"isFeatured"`
}

// UpdateProduct is a sparse patch; only non-nil fields are applied.
type UpdateProduct struct {
	Name             *string          `json:"name"`
	Slug             *string          `json:"slug"`
	Description      *string          `json:"description"`
	CategoryID       *int             `json:"categoryId"`
	BasePrice        *decimal.Decimal `json:"basePrice"`
	DepositAmount    *decimal.Decimal `json:"depositAmount"`
	MinRentalDays    *int             `json:"minRentalDays"`
	Images           *[]string        `json:"images"`
	Sizes            *[]string        `json:"sizes"`
	Colors           *[]string        `json:"colors"`
	Occasions        *[]string        `json:"occasions"`
	Fabric           *string          `json:"fabric"`
	CareInstructions *string          `json:"careInstructions"`
	IsActive         *bool            `json:"isActive"`
	IsFeatured       *bool            `json:"isFeatured"`
}

// ProductFilter narrows a catalog listing. Zero-valued fields apply no
// constraint; supplied constraints combine with AND.
type ProductFilter struct {
	CategorySlug string
	Search       string
	IsActive     *bool
}

// ProductVariant is a size/colour inventory unit of a product.
type ProductVariant struct {
	ID        int     `json:"id" db:"id"`
	ProductID int     `json:"productId" db:"product_id"`
	Size      string  `json:"size" db:"size"`
	Color     string  `json:"color" db:"color"`
	Quantity  int     `json:"quantity" db:"quantity"`
	SKU       *string `json:"sku" db:"sku"`
}

// InsertProductVariant is the admin create payload.
type InsertProductVariant struct {
	ProductID int     `json:"productId"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
	Quantity  int     `json:"quantity"`
	SKU       *string `json:"sku"`
}

// BlackoutDate marks a calendar date a product (optionally a specific
// variant) cannot be rented.
type BlackoutDate struct {
	ID          int       `json:"id" db:"id"`
	ProductID   int       `json:"productId" db:"product_id"`
	VariantID   *int      `json:"variantId" db:"variant_id"`
	BlockedDate time.Time `json:"blockedDate" db:"blocked_date"`
	Reason      *string   `json:"reason" db:"reason"`
}

// InsertBlackoutDate is the admin create payload.
type InsertBlackoutDate struct {
	ProductID   int       `json:"productId"`
	VariantID   *int      `json:"variantId"`
	BlockedDate time.Time `json:"blockedDate"`
	Reason      *string   `json:"reason"`
}
