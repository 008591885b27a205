package domain

import (
	"fmt"

	dErrors "storefront/pkg/domain-errors"
)

// Money is a monetary amount in minor units (cents) of a currency.
// Rendering assumes two decimal places.
type Money struct {
	Amount   int64
	Currency Currency
}

// NewMoney returns a Money value in the given currency.
func NewMoney(amount int64, currency Currency) Money {
	return Money{Amount: amount, Currency: currency}
}

// Add sums two amounts. Mixing currencies is an error, never a silent
// conversion.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, dErrors.Newf(dErrors.CodeTypeMismatch,
			"cannot add %s to %s", other.Currency, m.Currency)
	}
	return Money{Amount: m.Amount + other.Amount, Currency: m.Currency}, nil
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.Amount == 0
}

// String renders the amount with two decimals and the currency code,
// for example "149.90 EUR".
func (m Money) String() string {
	a := m.Amount
	sign := ""
	if a < 0 {
		sign = "-"
		a = -a
	}
	return fmt.Sprintf("%s%d.%02d %s", sign, a/100, a%100, m.Currency)
}
