package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	ierr "github.com/stewardly/stewardly/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func level(onHand, available string) *StockLevel {
	return &StockLevel{
		ItemID:            "item_1",
		LocationID:        "loc_1",
		QuantityOnHand:    dec(onHand),
		QuantityAvailable: dec(available),
	}
}

func TestApplyStockDeltaUsage(t *testing.T) {
	l := level("10", "8")

	err := ApplyStockDelta(l, dec("-3"))
	require.NoError(t, err)

	assert.True(t, l.QuantityOnHand.Equal(dec("7")))
	assert.True(t, l.QuantityAvailable.Equal(dec("5")))
}

func TestApplyStockDeltaInsufficientLeavesLevelUnchanged(t *testing.T) {
	l := level("10", "2")

	err := ApplyStockDelta(l, dec("-3"))
	require.Error(t, err)
	assert.True(t, ierr.IsInsufficientStock(err))

	assert.True(t, l.QuantityOnHand.Equal(dec("10")))
	assert.True(t, l.QuantityAvailable.Equal(dec("2")))
}

func TestApplyStockDeltaExactDrain(t *testing.T) {
	l := level("5", "5")

	err := ApplyStockDelta(l, dec("-5"))
	require.NoError(t, err)

	assert.True(t, l.QuantityOnHand.IsZero())
	assert.True(t, l.QuantityAvailable.IsZero())
}

// A reversal applies the exact inverse delta and restores the starting
// quantities.
func TestApplyStockDeltaReversalIsExactInverse(t *testing.T) {
	l := level("10", "8")
	qty := dec("3.5")

	require.NoError(t, ApplyStockDelta(l, qty.Neg()))
	require.NoError(t, ApplyStockDelta(l, qty))

	assert.True(t, l.QuantityOnHand.Equal(dec("10")))
	assert.True(t, l.QuantityAvailable.Equal(dec("8")))
}

func TestApplyStockDeltaPositiveNeverFails(t *testing.T) {
	l := level("0", "0")

	err := ApplyStockDelta(l, dec("12"))
	require.NoError(t, err)

	assert.True(t, l.QuantityOnHand.Equal(dec("12")))
	assert.True(t, l.QuantityAvailable.Equal(dec("12")))
}

func TestNewStockLevel(t *testing.T) {
	lot := "LOT-9"
	l := NewStockLevel("item_1", "loc_1", &lot, nil)

	assert.Equal(t, "item_1", l.ItemID)
	assert.Equal(t, "loc_1", l.LocationID)
	require.NotNil(t, l.LotNumber)
	assert.Equal(t, "LOT-9", *l.LotNumber)
	assert.Nil(t, l.SerialNumber)
	assert.True(t, l.QuantityOnHand.IsZero())
	assert.True(t, l.QuantityAvailable.IsZero())
}
