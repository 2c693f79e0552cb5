package entity

import (
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func beerProduct() *Product {
	return &Product{
		ID:               1,
		Name:             "Dark beer bottle 0.5l",
		Price:            decimal.RequireFromString("40.00"),
		Minimum:          12,
		AmountPerPackage: 12,
		MaxAvailability:  5000,
	}
}

func TestValidateQuantity_ExactPackages(t *testing.T) {
	product := beerProduct()

	require.NoError(t, ValidateQuantity(product, 12))
	require.NoError(t, ValidateQuantity(product, 48))
	require.NoError(t, ValidateQuantity(product, 4992))
}

func TestValidateQuantity_PackageSplit(t *testing.T) {
	product := beerProduct()

	err := ValidateQuantity(product, 13)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductPackageSplit)
}

func TestValidateQuantity_ExceedsAvailability(t *testing.T) {
	product := beerProduct()

	err := ValidateQuantity(product, 5001)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductQuantityExceeded)
}

func TestValidateQuantity_AvailabilityCheckedBeforeIntegrity(t *testing.T) {
	product := beerProduct()

	// 5003 violates both constraints; availability wins.
	err := ValidateQuantity(product, 5003)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductQuantityExceeded)
}

func TestValidateQuantity_BelowMinimumStillPasses(t *testing.T) {
	product := beerProduct()
	product.Minimum = 24

	// The minimum only gates checkout, never cart mutations.
	require.NoError(t, ValidateQuantity(product, 12))
}

func TestValidateQuantity_ZeroQuantity(t *testing.T) {
	product := beerProduct()

	// Zero is a multiple of any package size and below any availability.
	require.NoError(t, ValidateQuantity(product, 0))
}
