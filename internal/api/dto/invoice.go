package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/samber/lo"
	"github.com/stewardly/stewardly/internal/domain/invoice"
	ierr "github.com/stewardly/stewardly/internal/errors"
	"github.com/stewardly/stewardly/internal/types"
	"github.com/stewardly/stewardly/internal/validator"
)

type InvoiceLineItemRequest struct {
	Description string           `json:"description" validate:"required"`
	Quantity    decimal.Decimal  `json:"quantity" validate:"required"`
	UnitPrice   decimal.Decimal  `json:"unit_price" validate:"required"`
	IsTaxable   bool             `json:"is_taxable"`
	TaxRate     *decimal.Decimal `json:"tax_rate,omitempty"`
}

func (r *InvoiceLineItemRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Quantity.IsNegative() {
		return ierr.NewError("quantity must be non-negative").
			WithHint("Quantity cannot be negative").
			Mark(ierr.ErrValidation)
	}
	if r.UnitPrice.IsNegative() {
		return ierr.NewError("unit_price must be non-negative").
			WithHint("Unit price cannot be negative").
			Mark(ierr.ErrValidation)
	}
	if r.TaxRate != nil && r.TaxRate.IsNegative() {
		return ierr.NewError("tax_rate must be non-negative").
			WithHint("Tax rate cannot be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *InvoiceLineItemRequest) ToLineItem(invoiceID string, baseModel types.BaseModel) *invoice.LineItem {
	return &invoice.LineItem{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE_LINE),
		InvoiceID:   invoiceID,
		Description: r.Description,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		IsTaxable:   r.IsTaxable,
		TaxRate:     r.TaxRate,
		Amount:      r.Quantity.Mul(r.UnitPrice),
		BaseModel:   baseModel,
	}
}

type CreateInvoiceRequest struct {
	CustomerID string                    `json:"customer_id" validate:"required"`
	JobID      *string                   `json:"job_id,omitempty"`
	Currency   string                    `json:"currency" validate:"required,len=3"`
	Discount   *decimal.Decimal          `json:"discount,omitempty"`
	DueDate    *time.Time                `json:"due_date,omitempty"`
	Memo       string                    `json:"memo,omitempty"`
	Year       int                       `json:"year,omitempty"`
	Lines      []*InvoiceLineItemRequest `json:"lines" validate:"required,min=1,dive"`
	Metadata   types.Metadata            `json:"metadata,omitempty"`
}

func (r *CreateInvoiceRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	for _, line := range r.Lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	if r.Discount != nil && r.Discount.IsNegative() {
		return ierr.NewError("discount must be non-negative").
			WithHint("Discount cannot be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ToInvoice builds the domain invoice with its line items and the totals
// snapshot recomputed; the invoice number is assigned inside the creation
// transaction.
func (r *CreateInvoiceRequest) ToInvoice(baseModel types.BaseModel) *invoice.Invoice {
	inv := &invoice.Invoice{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
		CustomerID:    r.CustomerID,
		JobID:         r.JobID,
		InvoiceStatus: types.InvoiceStatusDraft,
		PaymentStatus: types.InvoicePaymentStatusPending,
		Currency:      r.Currency,
		Discount:      lo.FromPtrOr(r.Discount, decimal.Zero),
		DueDate:       r.DueDate,
		Memo:          r.Memo,
		Metadata:      r.Metadata,
		BaseModel:     baseModel,
	}

	inv.LineItems = lo.Map(r.Lines, func(line *InvoiceLineItemRequest, _ int) *invoice.LineItem {
		return line.ToLineItem(inv.ID, baseModel)
	})

	inv.RefreshTotals()
	// The balance starts at the full total; payments mutate it elsewhere
	inv.BalanceDue = inv.TotalAmount
	return inv
}

type UpdateInvoiceLinesRequest struct {
	Lines    []*InvoiceLineItemRequest `json:"lines" validate:"required,min=1,dive"`
	Discount *decimal.Decimal          `json:"discount,omitempty"`
}

func (r *UpdateInvoiceLinesRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	for _, line := range r.Lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	if r.Discount != nil && r.Discount.IsNegative() {
		return ierr.NewError("discount must be non-negative").
			WithHint("Discount cannot be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}
