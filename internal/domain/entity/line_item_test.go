package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLineItem_PartialPrice(t *testing.T) {
	item := &LineItem{
		Quantity: 24,
		Product: &Product{
			Price: decimal.RequireFromString("1000.00"),
		},
	}

	// Exact decimal arithmetic, no float drift.
	assert.True(t, item.PartialPrice().Equal(decimal.RequireFromString("24000.00")))
}

func TestLineItem_PartialPrice_FractionalPrice(t *testing.T) {
	item := &LineItem{
		Quantity: 3,
		Product: &Product{
			Price: decimal.RequireFromString("0.10"),
		},
	}

	assert.True(t, item.PartialPrice().Equal(decimal.RequireFromString("0.30")))
}

func TestLineItem_PackageIntegrity(t *testing.T) {
	product := &Product{AmountPerPackage: 6}

	whole := &LineItem{Quantity: 18, Product: product}
	assert.True(t, whole.PackageIntegrity())

	split := &LineItem{Quantity: 20, Product: product}
	assert.False(t, split.PackageIntegrity())
}
