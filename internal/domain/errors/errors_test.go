package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsKeepsPredefinedValueUntouched(t *testing.T) {
	detailed := ErrProductBelowMinimum.WithDetails("Dark beer bottle 0.5l - minimum: 12 - Requested: 6")

	assert.Equal(t, "Dark beer bottle 0.5l - minimum: 12 - Requested: 6", detailed.Details())
	assert.Empty(t, ErrProductBelowMinimum.Details())

	// The copy still matches its predefined value.
	assert.ErrorIs(t, detailed, ErrProductBelowMinimum)
}

func TestBaseError_IsDistinguishesCodes(t *testing.T) {
	assert.NotErrorIs(t, ErrProductPackageSplit, ErrProductQuantityExceeded)
	assert.NotErrorIs(t, ErrLineItemNotFound, ErrOrderNotFound)
}

func TestProductErrorSurface(t *testing.T) {
	cases := []struct {
		err  *BaseError
		code string
	}{
		{ErrProductRequestFail, "product_request_fail"},
		{ErrProductWrongField, "product_wrong_field"},
		{ErrProductBelowMinimum, "product_less_than_minimum"},
		{ErrProductPackageSplit, "product_package_split_error"},
		{ErrProductDoesNotExist, "product_does_not_exist"},
		{ErrProductQuantityExceeded, "product_quantity_exceed"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.code, tc.err.ErrorCode())
		// Every business rejection in the product surface is a 400.
		require.Equal(t, http.StatusBadRequest, tc.err.HTTPCode())
	}
}

func TestBaseError_WrapMessagePreservesIdentity(t *testing.T) {
	wrapped := ErrValidationFailed.WrapMessage("minimum and amount per package must be positive")

	assert.ErrorIs(t, wrapped, ErrValidationFailed)

	var appErr AppError
	require.ErrorAs(t, wrapped, &appErr)
	assert.Equal(t, "validation_failed", appErr.ErrorCode())
}
