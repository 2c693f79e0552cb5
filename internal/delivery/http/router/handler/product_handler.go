package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for catalog-related handlers
type ProductHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	Name             string          `json:"name" validate:"required"`
	Price            decimal.Decimal `json:"price" validate:"required"`
	Minimum          uint64          `json:"minimum" validate:"required,min=1"`
	AmountPerPackage uint64          `json:"amount_per_package" validate:"required,min=1"`
	MaxAvailability  uint64          `json:"max_availability" validate:"required,min=1"`
}

// CreateProduct handles adding a product to the catalog
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "invalid_input", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "validation_failed", err.Error())
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Name:             req.Name,
		Price:            req.Price,
		Minimum:          req.Minimum,
		AmountPerPackage: req.AmountPerPackage,
		MaxAvailability:  req.MaxAvailability,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// GetProduct handles retrieving a single product by id
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "invalid_id", "Invalid product ID")
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// ListProducts handles listing the catalog, optionally filtered by name
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.catalogUC.ListProducts(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}
