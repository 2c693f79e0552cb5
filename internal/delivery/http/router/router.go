// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProductHandler  *handler.ProductHandler
	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	OrderHandler    *handler.OrderHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	productHandler  *handler.ProductHandler
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
	orderHandler    *handler.OrderHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		productHandler:  params.ProductHandler,
		cartHandler:     params.CartHandler,
		checkoutHandler: params.CheckoutHandler,
		orderHandler:    params.OrderHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Catalog routes require authentication like the rest of the API
	productGroup := e.Group("/products")
	productGroup.Use(r.authMiddleware.Authenticate)
	{
		productGroup.GET("", r.productHandler.ListProducts)
		productGroup.POST("", r.productHandler.CreateProduct)
		productGroup.GET("/:id", r.productHandler.GetProduct)
	}

	// Cart routes require authentication; every operation is scoped to the
	// cart of the token's user
	cartGroup := e.Group("/shopping_cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("", r.cartHandler.AddProduct)
		cartGroup.PATCH("/:id", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/:id", r.cartHandler.RemoveLineItem)
	}

	// Checkout converts the authenticated user's cart into an order
	e.POST("/checkout", r.checkoutHandler.Checkout, r.authMiddleware.Authenticate)

	// Order history routes require authentication
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
	}
}
