package handlers

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// FieldError is one (field, message) validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	Stock       *int            `json:"stock"`
	Category    string          `json:"category"`
}

func (r *CreateProductRequest) Validate() []FieldError {
	return validateProductFields(r.Name, r.Description, r.Price, r.Currency, r.Stock, r.Category)
}

type UpdateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	Stock       *int            `json:"stock"`
	Category    string          `json:"category"`
}

func (r *UpdateProductRequest) Validate() []FieldError {
	return validateProductFields(r.Name, r.Description, r.Price, r.Currency, r.Stock, r.Category)
}

const (
	StockDirectionAdd    = "add"
	StockDirectionRemove = "remove"
)

type StockRequest struct {
	Quantity  int    `json:"quantity"`
	Direction string `json:"direction"`
}

func (r *StockRequest) Validate() []FieldError {
	var errs []FieldError
	direction := strings.ToLower(strings.TrimSpace(r.Direction))
	if direction != StockDirectionAdd && direction != StockDirectionRemove {
		errs = append(errs, FieldError{Field: "direction", Message: "Direction must be \"add\" or \"remove\""})
	}
	// Quantity sign and stock-sufficiency are the aggregate's invariants.
	return errs
}

// tenIntegerDigits bounds the price to 10 integer digits.
var tenIntegerDigits = decimal.New(1, 10)

func validateProductFields(name, description string, price decimal.Decimal, currencyCode string, stock *int, category string) []FieldError {
	var errs []FieldError

	name = strings.TrimSpace(name)
	switch {
	case name == "":
		errs = append(errs, FieldError{Field: "name", Message: "Name is required"})
	case utf8.RuneCountInString(name) < 2 || utf8.RuneCountInString(name) > 100:
		errs = append(errs, FieldError{Field: "name", Message: "Name must be between 2 and 100 characters"})
	}

	if utf8.RuneCountInString(description) > 500 {
		errs = append(errs, FieldError{Field: "description", Message: "Description must not exceed 500 characters"})
	}

	switch {
	case price.IsZero():
		errs = append(errs, FieldError{Field: "price", Message: "Price is required"})
	case !price.IsPositive():
		errs = append(errs, FieldError{Field: "price", Message: "Price must be greater than 0"})
	case !price.Equal(price.Round(2)) || price.Cmp(tenIntegerDigits) >= 0:
		errs = append(errs, FieldError{Field: "price", Message: "Price format is invalid"})
	}

	currencyCode = strings.TrimSpace(currencyCode)
	switch {
	case currencyCode == "":
		errs = append(errs, FieldError{Field: "currency", Message: "Currency is required"})
	case len(currencyCode) != 3:
		errs = append(errs, FieldError{Field: "currency", Message: "Currency must be a 3-letter code"})
	}

	switch {
	case stock == nil:
		errs = append(errs, FieldError{Field: "stock", Message: "Stock is required"})
	case *stock < 0:
		errs = append(errs, FieldError{Field: "stock", Message: "Stock cannot be negative"})
	}

	category = strings.TrimSpace(category)
	switch {
	case category == "":
		errs = append(errs, FieldError{Field: "category", Message: "Category is required"})
	case utf8.RuneCountInString(category) < 2 || utf8.RuneCountInString(category) > 50:
		errs = append(errs, FieldError{Field: "category", Message: "Category must be between 2 and 50 characters"})
	}

	return errs
}
