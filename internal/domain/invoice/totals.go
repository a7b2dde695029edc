package invoice

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Totals is the derived aggregate snapshot of an invoice
type Totals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// ComputeTotals recomputes the aggregate totals in full from the given line
// items and discount. All monetary arithmetic is fixed-point; repeated
// recomputation of the same inputs yields identical results.
//
// Per line: lineTotal = quantity * unitPrice, accumulated into the subtotal.
// Taxable lines with a rate contribute lineTotal * rate/100 to the tax amount.
// TotalAmount = subtotal - discount + taxAmount.
func ComputeTotals(lines []*LineItem, discount decimal.Decimal) Totals {
	subtotal := decimal.Zero
	taxAmount := decimal.Zero

	for _, line := range lines {
		lineTotal := line.Quantity.Mul(line.UnitPrice)
		subtotal = subtotal.Add(lineTotal)

		if line.IsTaxable && line.TaxRate != nil {
			taxAmount = taxAmount.Add(lineTotal.Mul(line.TaxRate.Div(hundred)))
		}
	}

	return Totals{
		Subtotal:    subtotal,
		TaxAmount:   taxAmount,
		TotalAmount: subtotal.Sub(discount).Add(taxAmount),
	}
}
