package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/yungbote/catalog-backend/internal/domain"
	"github.com/yungbote/catalog-backend/internal/platform/apierr"
)

type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Active      bool            `json:"active"`
}

func NewProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.Amount(),
		Currency:    p.Price.CurrencyCode(),
		Stock:       p.Stock,
		Category:    p.Category,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Active:      p.Active,
	}
}

func NewProductResponseList(products []*domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductResponse(p))
	}
	return out
}

type ErrorResponse struct {
	Message   string    `json:"message"`
	Details   *string   `json:"details"`
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// RespondError writes the error body for a mapped domain failure. Internal
// failures get a generic message with the underlying detail in `details`.
func RespondError(c *gin.Context, apiErr *apierr.Error) {
	resp := ErrorResponse{
		Message:   apiErr.Error(),
		Status:    apiErr.Status,
		Timestamp: time.Now().UTC(),
	}
	if apiErr.Status == http.StatusInternalServerError {
		detail := apiErr.Error()
		resp.Message = "An unexpected error occurred"
		resp.Details = &detail
	}
	c.JSON(apiErr.Status, resp)
}

// RespondValidation reports request-shape failures with per-field messages
// joined into `details`.
func RespondValidation(c *gin.Context, fieldErrors []FieldError) {
	msgs := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	detail := strings.Join(msgs, "; ")
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Message:   "Validation failed",
		Details:   &detail,
		Status:    http.StatusBadRequest,
		Timestamp: time.Now().UTC(),
	})
}
