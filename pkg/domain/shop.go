// Package domain holds shop-scoped domain primitives shared across the
// storefront admin application. These are parse-validated at trust boundaries
// so downstream code can assume they are well formed.
package domain

import (
	"github.com/google/uuid"

	dErrors "storefront/pkg/domain-errors"
)

// ShopID identifies a shop. Typed to prevent cross-assignment with other
// uuid-backed IDs at compile time.
type ShopID uuid.UUID

// NewShopID returns a fresh random ShopID.
func NewShopID() ShopID {
	return ShopID(uuid.New())
}

// ParseShopID validates and returns a ShopID.
// IDs must be valid, non-empty, non-nil UUIDs.
func ParseShopID(s string) (ShopID, error) {
	if s == "" {
		return ShopID{}, dErrors.New(dErrors.CodeInvalidInput, "shop ID cannot be empty")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return ShopID{}, dErrors.Newf(dErrors.CodeInvalidInput, "invalid shop ID: %s", s).WithValue(s)
	}
	if u == uuid.Nil {
		return ShopID{}, dErrors.New(dErrors.CodeInvalidInput, "shop ID cannot be the nil UUID")
	}
	return ShopID(u), nil
}

// String returns the canonical UUID string.
func (id ShopID) String() string {
	return uuid.UUID(id).String()
}

// IsNil reports whether the ID is the zero value.
func (id ShopID) IsNil() bool {
	return uuid.UUID(id) == uuid.Nil
}

// Currency is an uppercase three-letter currency code.
type Currency string

// ParseCurrency validates and returns a Currency.
func ParseCurrency(s string) (Currency, error) {
	if len(s) != 3 {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "invalid currency code: %s", s).WithValue(s)
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return "", dErrors.Newf(dErrors.CodeInvalidInput, "invalid currency code: %s", s).WithValue(s)
		}
	}
	return Currency(s), nil
}

// String returns the currency code.
func (c Currency) String() string {
	return string(c)
}

// IsNil reports whether the currency is unset.
func (c Currency) IsNil() bool {
	return c == ""
}

// Shop is the shop an admin request operates on: its identity plus the
// currency all of its monetary values are denominated in.
type Shop struct {
	ID       ShopID
	Currency Currency
}
