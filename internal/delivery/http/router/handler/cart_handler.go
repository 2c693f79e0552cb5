package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for shopping cart handlers
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddItemRequest represents the request body for adding a product to the cart
type AddItemRequest struct {
	Product  uint64  `json:"product" validate:"required"`
	Quantity *uint64 `json:"quantity" validate:"required"`
}

// UpdateItemRequest represents the request body for replacing a line item quantity.
// Quantity is a pointer so a missing or malformed field is distinguishable
// from zero and rejected as a wrong-field error.
type UpdateItemRequest struct {
	Quantity *uint64 `json:"quantity"`
}

// AddProduct handles merging a quantity of a product into the user's cart
func (h *CartHandler) AddProduct(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "invalid_token", "Invalid user ID in token")
	}

	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrProductWrongField)
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrProductWrongField)
	}

	item, err := h.cartUC.AddProduct(c.Request().Context(), userID, req.Product, *req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item, "Product added to cart successfully")
}

// UpdateQuantity handles replacing the quantity of one of the user's line items
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "invalid_token", "Invalid user ID in token")
	}

	lineItemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "invalid_id", "Invalid line item ID")
	}

	var req UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrProductWrongField)
	}
	if req.Quantity == nil {
		return response.HandleAppError(c, domainerrors.ErrProductWrongField)
	}

	item, err := h.cartUC.UpdateQuantity(c.Request().Context(), userID, lineItemID, *req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item, "Line item updated successfully")
}

// RemoveLineItem handles deleting a line item from the user's cart
func (h *CartHandler) RemoveLineItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "invalid_token", "Invalid user ID in token")
	}

	lineItemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "invalid_id", "Invalid line item ID")
	}

	if err := h.cartUC.RemoveLineItem(c.Request().Context(), userID, lineItemID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Line item removed"}, "Line item removed successfully")
}

// GetCart handles retrieving the user's cart with its total price
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "invalid_token", "Invalid user ID in token")
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart retrieved successfully")
}
