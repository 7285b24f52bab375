package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/catalog-backend/internal/platform/apierr"
	"github.com/yungbote/catalog-backend/internal/services"
)

type ProductHandler struct {
	productService services.ProductService
}

func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func (ph *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondValidation(c, []FieldError{{Field: "body", Message: "Request body is not valid JSON"}})
		return
	}
	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		RespondValidation(c, fieldErrors)
		return
	}

	product, err := ph.productService.Create(c.Request.Context(), services.ProductInput{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		Currency:    req.Currency,
		Stock:       *req.Stock,
		Category:    strings.TrimSpace(req.Category),
	})
	if err != nil {
		RespondError(c, apierr.FromDomain(err))
		return
	}
	c.JSON(http.StatusCreated, NewProductResponse(product))
}

func (ph *ProductHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	product, err := ph.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondError(c, apierr.FromDomain(err))
		return
	}
	c.JSON(http.StatusOK, NewProductResponse(product))
}

func (ph *ProductHandler) List(c *gin.Context) {
	filter := services.ListFilter{Category: strings.TrimSpace(c.Query("category"))}
	if raw := c.Query("active"); raw != "" {
		activeOnly, err := strconv.ParseBool(raw)
		if err != nil {
			RespondValidation(c, []FieldError{{Field: "active", Message: "Active filter must be a boolean"}})
			return
		}
		filter.ActiveOnly = activeOnly
	}

	products, err := ph.productService.List(c.Request.Context(), filter)
	if err != nil {
		RespondError(c, apierr.FromDomain(err))
		return
	}
	c.JSON(http.StatusOK, NewProductResponseList(products))
}

func (ph *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondValidation(c, []FieldError{{Field: "body", Message: "Request body is not valid JSON"}})
		return
	}
	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		RespondValidation(c, fieldErrors)
		return
	}

	product, err := ph.productService.Update(c.Request.Context(), id, services.ProductInput{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		Currency:    req.Currency,
		Stock:       *req.Stock,
		Category:    strings.TrimSpace(req.Category),
	})
	if err != nil {
		RespondError(c, apierr.FromDomain(err))
		return
	}
	c.JSON(http.StatusOK, NewProductResponse(product))
}

func (ph *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ph.productService.Delete(c.Request.Context(), id); err != nil {
		RespondError(c, apierr.FromDomain(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (ph *ProductHandler) AdjustStock(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req StockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondValidation(c, []FieldError{{Field: "body", Message: "Request body is not valid JSON"}})
		return
	}
	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		RespondValidation(c, fieldErrors)
		return
	}

	switch strings.ToLower(strings.TrimSpace(req.Direction)) {
	case StockDirectionAdd:
		updated, err := ph.productService.AddStock(c.Request.Context(), id, req.Quantity)
		if err != nil {
			RespondError(c, apierr.FromDomain(err))
			return
		}
		c.JSON(http.StatusOK, NewProductResponse(updated))
	case StockDirectionRemove:
		updated, err := ph.productService.RemoveStock(c.Request.Context(), id, req.Quantity)
		if err != nil {
			RespondError(c, apierr.FromDomain(err))
			return
		}
		c.JSON(http.StatusOK, NewProductResponse(updated))
	}
}

func (ph *ProductHandler) Activate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	product, err := ph.productService.Activate(c.Request.Context(), id)
	if err != nil {
		RespondError(c, apierr.FromDomain(err))
		return
	}
	c.JSON(http.StatusOK, NewProductResponse(product))
}

func (ph *ProductHandler) Deactivate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	product, err := ph.productService.Deactivate(c.Request.Context(), id)
	if err != nil {
		RespondError(c, apierr.FromDomain(err))
		return
	}
	c.JSON(http.StatusOK, NewProductResponse(product))
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondValidation(c, []FieldError{{Field: "id", Message: "Product id must be a valid UUID"}})
		return uuid.Nil, false
	}
	return id, true
}
