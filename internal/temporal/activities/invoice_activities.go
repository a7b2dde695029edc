package activities

import (
	"context"

	"github.com/stewardly/stewardly/internal/api/dto"
	"github.com/stewardly/stewardly/internal/service"
)

// InvoiceActivities contains all invoice-related activities
type InvoiceActivities struct {
	invoiceService service.InvoiceService
}

// NewInvoiceActivities creates a new InvoiceActivities instance
func NewInvoiceActivities(invoiceService service.InvoiceService) *InvoiceActivities {
	return &InvoiceActivities{invoiceService: invoiceService}
}

// ExecuteInvoiceAction dispatches one invoice action to the service layer
func (a *InvoiceActivities) ExecuteInvoiceAction(ctx context.Context, input dto.WorkflowInput) (*dto.InvoiceWorkflowResult, error) {
	result := a.invoiceService.Execute(ctx, input)
	return &result, nil
}
