package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/delivery/http/response"
	httpvalidator "storefront/internal/delivery/http/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postAddProduct invokes AddProduct with the given JSON body and an
// authenticated context. The handler's use case is nil on purpose; every
// case here must fail before it is reached.
func postAddProduct(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := &CartHandler{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	e := echo.New()
	e.Validator = httpvalidator.New()

	req := httptest.NewRequest(http.MethodPost, "/shopping_cart", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	// Same context key the auth middleware sets.
	c.Set("userID", uuid.New())

	require.NoError(t, h.AddProduct(c))

	return rec
}

func assertWrongFieldResponse(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "product_wrong_field", resp.Error.Code)
}

func TestCartHandler_AddProduct_NonIntegerQuantity(t *testing.T) {
	rec := postAddProduct(t, `{"product": 7, "quantity": "twelve"}`)

	assertWrongFieldResponse(t, rec)
}

func TestCartHandler_AddProduct_MissingQuantity(t *testing.T) {
	rec := postAddProduct(t, `{"product": 7}`)

	assertWrongFieldResponse(t, rec)
}

func TestCartHandler_AddProduct_MalformedBody(t *testing.T) {
	rec := postAddProduct(t, `{"product": 7, "quantity":`)

	assertWrongFieldResponse(t, rec)
}
