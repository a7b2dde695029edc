package invoice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeTotals(t *testing.T) {
	taxRate := dec("10")
	lines := []*LineItem{
		{Quantity: dec("2"), UnitPrice: dec("10"), IsTaxable: true, TaxRate: &taxRate},
		{Quantity: dec("1"), UnitPrice: dec("5")},
	}

	totals := ComputeTotals(lines, dec("3"))

	assert.True(t, totals.Subtotal.Equal(dec("25")), "subtotal %s", totals.Subtotal)
	assert.True(t, totals.TaxAmount.Equal(dec("2")), "tax %s", totals.TaxAmount)
	assert.True(t, totals.TotalAmount.Equal(dec("24")), "total %s", totals.TotalAmount)
}

func TestComputeTotalsNoLines(t *testing.T) {
	totals := ComputeTotals(nil, decimal.Zero)

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.TaxAmount.IsZero())
	assert.True(t, totals.TotalAmount.IsZero())
}

func TestComputeTotalsTaxableWithoutRate(t *testing.T) {
	lines := []*LineItem{
		{Quantity: dec("4"), UnitPrice: dec("2.50"), IsTaxable: true},
	}

	totals := ComputeTotals(lines, decimal.Zero)

	assert.True(t, totals.Subtotal.Equal(dec("10")))
	assert.True(t, totals.TaxAmount.IsZero())
	assert.True(t, totals.TotalAmount.Equal(dec("10")))
}

func TestComputeTotalsFractionalQuantities(t *testing.T) {
	taxRate := dec("8.25")
	lines := []*LineItem{
		{Quantity: dec("1.5"), UnitPrice: dec("19.99"), IsTaxable: true, TaxRate: &taxRate},
	}

	totals := ComputeTotals(lines, decimal.Zero)

	assert.True(t, totals.Subtotal.Equal(dec("29.985")))
	assert.True(t, totals.TaxAmount.Equal(dec("2.47376250")), "tax %s", totals.TaxAmount)
}

// Recomputation is idempotent: feeding the same inputs twice yields the
// identical snapshot.
func TestComputeTotalsDeterministic(t *testing.T) {
	taxRate := dec("7")
	lines := []*LineItem{
		{Quantity: dec("3"), UnitPrice: dec("9.99"), IsTaxable: true, TaxRate: &taxRate},
		{Quantity: dec("2"), UnitPrice: dec("4.50")},
	}

	first := ComputeTotals(lines, dec("1"))
	second := ComputeTotals(lines, dec("1"))

	assert.True(t, first.Subtotal.Equal(second.Subtotal))
	assert.True(t, first.TaxAmount.Equal(second.TaxAmount))
	assert.True(t, first.TotalAmount.Equal(second.TotalAmount))
}

func TestRefreshTotals(t *testing.T) {
	inv := &Invoice{
		Discount: dec("5"),
		LineItems: []*LineItem{
			{Quantity: dec("10"), UnitPrice: dec("3")},
		},
	}

	inv.RefreshTotals()

	assert.True(t, inv.Subtotal.Equal(dec("30")))
	assert.True(t, inv.TotalAmount.Equal(dec("25")))
}
