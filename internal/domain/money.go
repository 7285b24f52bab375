package domain

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// maxAmount bounds prices to 10 integer digits.
var maxAmount = decimal.New(1, 10)

// Money is an immutable (amount, ISO-4217 currency) pair. Construct it with
// NewMoney; the zero value is not a valid amount.
type Money struct {
	amount       decimal.Decimal
	currencyCode string
}

func NewMoney(amount decimal.Decimal, currencyCode string) (Money, error) {
	if !amount.IsPositive() {
		return Money{}, NewValidationError("price", "Price must be greater than 0")
	}
	if !amount.Equal(amount.Round(2)) {
		return Money{}, NewValidationError("price", "Price format is invalid")
	}
	if amount.Cmp(maxAmount) >= 0 {
		return Money{}, NewValidationError("price", "Price format is invalid")
	}

	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	if len(code) != 3 || !isLetters(code) {
		return Money{}, NewValidationError("currency", "Currency must be a 3-letter code")
	}
	if _, err := currency.ParseISO(code); err != nil {
		return Money{}, NewValidationError("currency", "Currency is not a known ISO-4217 code")
	}

	return Money{amount: amount.Round(2), currencyCode: code}, nil
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) CurrencyCode() string {
	return m.currencyCode
}

func (m Money) Equal(other Money) bool {
	return m.currencyCode == other.currencyCode && m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return m.amount.StringFixed(2) + " " + m.currencyCode
}

func isLetters(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
