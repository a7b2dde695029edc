package types

// InvoiceStatus is the document lifecycle status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusFinalized InvoiceStatus = "finalized"
	InvoiceStatusVoided    InvoiceStatus = "voided"
)

// InvoicePaymentStatus tracks how much of the invoice has been settled.
// Balance mutation itself belongs to the payment process, not the invoice
// workflows.
type InvoicePaymentStatus string

const (
	InvoicePaymentStatusPending   InvoicePaymentStatus = "pending"
	InvoicePaymentStatusPartial   InvoicePaymentStatus = "partial"
	InvoicePaymentStatusSucceeded InvoicePaymentStatus = "succeeded"
)
