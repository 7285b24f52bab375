package apierr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/yungbote/catalog-backend/internal/domain"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// FromDomain is the single outcome-to-status mapping at the transport
// boundary: argument-shaped failures map to 400, state-shaped failures to
// 409, unknown ids to 404 and anything unclassified to 500.
func FromDomain(err error) *Error {
	var validation *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return New(http.StatusNotFound, "not_found", err)
	case errors.As(err, &validation):
		return New(http.StatusBadRequest, "validation_failed", err)
	case errors.Is(err, domain.ErrInvalidQuantity):
		return New(http.StatusBadRequest, "invalid_quantity", err)
	case errors.Is(err, domain.ErrInactiveProduct):
		return New(http.StatusConflict, "inactive_product", err)
	case errors.Is(err, domain.ErrInsufficientStock):
		return New(http.StatusConflict, "insufficient_stock", err)
	case errors.Is(err, domain.ErrAlreadyActive):
		return New(http.StatusConflict, "already_active", err)
	case errors.Is(err, domain.ErrAlreadyInactive):
		return New(http.StatusConflict, "already_inactive", err)
	case errors.Is(err, domain.ErrVersionConflict):
		return New(http.StatusConflict, "version_conflict", err)
	default:
		return New(http.StatusInternalServerError, "internal_error", err)
	}
}
