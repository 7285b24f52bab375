package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/yungbote/catalog-backend/internal/domain"
)

func TestFromDomain(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "not_found", err: domain.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: "not_found"},
		{name: "wrapped_not_found", err: fmt.Errorf("load product: %w", domain.ErrNotFound), wantStatus: http.StatusNotFound, wantCode: "not_found"},
		{name: "validation", err: domain.NewValidationError("price", "Price must be greater than 0"), wantStatus: http.StatusBadRequest, wantCode: "validation_failed"},
		{name: "invalid_quantity", err: domain.ErrInvalidQuantity, wantStatus: http.StatusBadRequest, wantCode: "invalid_quantity"},
		{name: "inactive_product", err: domain.ErrInactiveProduct, wantStatus: http.StatusConflict, wantCode: "inactive_product"},
		{name: "insufficient_stock", err: domain.ErrInsufficientStock, wantStatus: http.StatusConflict, wantCode: "insufficient_stock"},
		{name: "already_active", err: domain.ErrAlreadyActive, wantStatus: http.StatusConflict, wantCode: "already_active"},
		{name: "already_inactive", err: domain.ErrAlreadyInactive, wantStatus: http.StatusConflict, wantCode: "already_inactive"},
		{name: "version_conflict", err: domain.ErrVersionConflict, wantStatus: http.StatusConflict, wantCode: "version_conflict"},
		{name: "unclassified", err: errors.New("connection reset"), wantStatus: http.StatusInternalServerError, wantCode: "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FromDomain(tc.err)
			if got.Status != tc.wantStatus {
				t.Fatalf("status=%d, want %d", got.Status, tc.wantStatus)
			}
			if got.Code != tc.wantCode {
				t.Fatalf("code=%q, want %q", got.Code, tc.wantCode)
			}
			if !errors.Is(got, tc.err) {
				t.Fatalf("mapped error must wrap the original")
			}
		})
	}
}
