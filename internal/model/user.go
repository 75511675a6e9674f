package model

import "time"

// User is a customer profile. The identity itself comes from the external
// auth provider; rows are created by upsert on first login.
type User struct {
	ID              string    `json:"id" db:"id"`
	Email           *string   `json:"email" db:"email"`
	FirstName       *string   `json:"firstName" db:"first_name"`
	LastName        *string   `json:"lastName" db:"last_name"`
	ProfileImageURL *string   `json:"profileImageUrl" db:"profile_image_url"`
	Phone           *string   `json:"phone" db:"phone"`
	Address         *string   `json:"address" db:"address"`
	City            *string   `json:"city" db:"city"`
	Pincode         *string   `json:"pincode" db:"pincode"`
	IsAdmin         bool      `json:"isAdmin" db:"is_admin"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}

// UpsertUser carries the identity-provider claims written on login.
type UpsertUser struct {
	ID              string  `json:"id"`
	Email           *string `json:"email"`
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	ProfileImageURL *string `json:"profileImageUrl"`
}

// UpdateUser is a sparse profile patch; only non-nil fields are applied.
type UpdateUser struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	Pincode   *string `json:"pincode"`
}
