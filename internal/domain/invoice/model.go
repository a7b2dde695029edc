package invoice

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stewardly/stewardly/internal/types"
)

// Invoice represents the invoice domain model. Subtotal, TaxAmount,
// TotalAmount and BalanceDue are a derived snapshot and are never mutated
// independently; they are recomputed in full whenever the line items change.
type Invoice struct {
	ID            string                     `db:"id" json:"id"`
	InvoiceNumber string                     `db:"invoice_number" json:"invoice_number"`
	CustomerID    string                     `db:"customer_id" json:"customer_id"`
	JobID         *string                    `db:"job_id" json:"job_id,omitempty"`
	InvoiceStatus types.InvoiceStatus        `db:"invoice_status" json:"invoice_status"`
	PaymentStatus types.InvoicePaymentStatus `db:"payment_status" json:"payment_status"`
	Currency      string                     `db:"currency" json:"currency"`
	Subtotal      decimal.Decimal            `db:"subtotal" json:"subtotal"`
	TaxAmount     decimal.Decimal            `db:"tax_amount" json:"tax_amount"`
	Discount      decimal.Decimal            `db:"discount" json:"discount"`
	TotalAmount   decimal.Decimal            `db:"total_amount" json:"total_amount"`
	BalanceDue    decimal.Decimal            `db:"balance_due" json:"balance_due"`
	DueDate       *time.Time                 `db:"due_date" json:"due_date,omitempty"`
	Memo          string                     `db:"memo" json:"memo,omitempty"`
	LineItems     []*LineItem                `db:"-" json:"line_items,omitempty"`
	Metadata      types.Metadata             `db:"metadata" json:"metadata,omitempty"`
	types.BaseModel
}

// LineItem is one billable line on an invoice. Immutable once the totals
// snapshot has been computed for a given invoice version.
type LineItem struct {
	ID          string           `db:"id" json:"id"`
	InvoiceID   string           `db:"invoice_id" json:"invoice_id"`
	Description string           `db:"description" json:"description"`
	Quantity    decimal.Decimal  `db:"quantity" json:"quantity"`
	UnitPrice   decimal.Decimal  `db:"unit_price" json:"unit_price"`
	IsTaxable   bool             `db:"is_taxable" json:"is_taxable"`
	TaxRate     *decimal.Decimal `db:"tax_rate" json:"tax_rate,omitempty"`
	Amount      decimal.Decimal  `db:"amount" json:"amount"`
	types.BaseModel
}

// RefreshTotals recomputes the totals snapshot from the current line item set
func (i *Invoice) RefreshTotals() {
	totals := ComputeTotals(i.LineItems, i.Discount)
	i.Subtotal = totals.Subtotal
	i.TaxAmount = totals.TaxAmount
	i.TotalAmount = totals.TotalAmount
}
