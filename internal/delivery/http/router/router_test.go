package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/infra/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *router {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	// Handlers are never reached in these tests; the auth middleware rejects
	// the request first.
	return NewRouter(RouterParams{
		ProductHandler:  handler.NewProductHandler(handler.ProductHandlerParams{}),
		CartHandler:     handler.NewCartHandler(handler.CartHandlerParams{}),
		CheckoutHandler: handler.NewCheckoutHandler(handler.CheckoutHandlerParams{}),
		OrderHandler:    handler.NewOrderHandler(handler.OrderHandlerParams{}),
		AuthMiddleware:  middleware.NewAuthMiddleware(tokenSvc, cfg),
	})
}

func TestRegisterRoutes_RejectsUnauthenticatedRequests(t *testing.T) {
	e := echo.New()
	newTestRouter(t).RegisterRoutes(e)

	routes := []struct {
		method string
		path   string
	}{
		{method: http.MethodGet, path: "/products"},
		{method: http.MethodPost, path: "/products"},
		{method: http.MethodGet, path: "/products/1"},
		{method: http.MethodGet, path: "/shopping_cart"},
		{method: http.MethodPost, path: "/shopping_cart"},
		{method: http.MethodPatch, path: "/shopping_cart/1"},
		{method: http.MethodDelete, path: "/shopping_cart/1"},
		{method: http.MethodPost, path: "/checkout"},
		{method: http.MethodGet, path: "/orders"},
	}

	for _, tt := range routes {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRegisterRoutes_HealthIsPublic(t *testing.T) {
	e := echo.New()
	newTestRouter(t).RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
