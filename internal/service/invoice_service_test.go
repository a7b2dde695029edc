package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stewardly/stewardly/internal/api/dto"
	"github.com/stewardly/stewardly/internal/testutil"
	"github.com/stewardly/stewardly/internal/types"
	"github.com/stretchr/testify/suite"
)

type InvoiceServiceSuite struct {
	testutil.BaseServiceTestSuite
	service InvoiceService
}

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceSuite))
}

func (s *InvoiceServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewInvoiceService(testServiceParams(&s.BaseServiceTestSuite))
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func (s *InvoiceServiceSuite) createInvoice() dto.InvoiceWorkflowResult {
	taxRate := dec("10")
	input := workflowInput(types.ActionInvoiceCreate, "", dto.CreateInvoiceRequest{
		CustomerID: "cust_1",
		Currency:   "USD",
		Discount:   lo.ToPtr(dec("3")),
		Year:       2025,
		Lines: []*dto.InvoiceLineItemRequest{
			{Description: "Mowing", Quantity: dec("2"), UnitPrice: dec("10"), IsTaxable: true, TaxRate: &taxRate},
			{Description: "Edging", Quantity: dec("1"), UnitPrice: dec("5")},
		},
	})
	return s.service.Execute(s.GetContext(), input)
}

func (s *InvoiceServiceSuite) TestCreateInvoice() {
	result := s.createInvoice()

	s.True(result.Success, result.Error)
	s.Equal("INV-2025-000001", result.InvoiceNumber)

	created, err := s.GetStores().InvoiceRepo.Get(s.GetContext(), result.EntityID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusDraft, created.InvoiceStatus)
	s.Equal(types.InvoicePaymentStatusPending, created.PaymentStatus)
	s.Len(created.LineItems, 2)
	s.True(created.Subtotal.Equal(dec("25")), "subtotal %s", created.Subtotal)
	s.True(created.TaxAmount.Equal(dec("2")), "tax %s", created.TaxAmount)
	s.True(created.TotalAmount.Equal(dec("24")), "total %s", created.TotalAmount)
	s.True(created.BalanceDue.Equal(dec("24")), "balance %s", created.BalanceDue)
}

func (s *InvoiceServiceSuite) TestCreateInvoiceRequiresLines() {
	input := workflowInput(types.ActionInvoiceCreate, "", dto.CreateInvoiceRequest{
		CustomerID: "cust_1",
		Currency:   "USD",
	})

	result := s.service.Execute(s.GetContext(), input)

	s.False(result.Success)
	s.NotEmpty(result.Error)
}

func (s *InvoiceServiceSuite) TestUpdateLinesRecomputesTotals() {
	created := s.createInvoice()

	input := workflowInput(types.ActionInvoiceUpdateLines, created.EntityID, dto.UpdateInvoiceLinesRequest{
		Lines: []*dto.InvoiceLineItemRequest{
			{Description: "Mowing", Quantity: dec("4"), UnitPrice: dec("10")},
		},
		Discount: lo.ToPtr(decimal.Zero),
	})
	result := s.service.Execute(s.GetContext(), input)

	s.True(result.Success, result.Error)
	s.Equal("INV-2025-000001", result.InvoiceNumber)

	updated, err := s.GetStores().InvoiceRepo.Get(s.GetContext(), created.EntityID)
	s.NoError(err)
	s.Len(updated.LineItems, 1)
	s.True(updated.Subtotal.Equal(dec("40")))
	s.True(updated.TaxAmount.IsZero())
	s.True(updated.TotalAmount.Equal(dec("40")))
	s.True(updated.BalanceDue.Equal(dec("40")))
}

// The balance keeps payments already applied: only the total's delta shifts
// it.
func (s *InvoiceServiceSuite) TestUpdateLinesPreservesPayments() {
	created := s.createInvoice()

	paid, err := s.GetStores().InvoiceRepo.Get(s.GetContext(), created.EntityID)
	s.NoError(err)
	paid.BalanceDue = paid.BalanceDue.Sub(dec("10"))
	s.NoError(s.GetStores().InvoiceRepo.Update(s.GetContext(), paid))

	input := workflowInput(types.ActionInvoiceUpdateLines, created.EntityID, dto.UpdateInvoiceLinesRequest{
		Lines: []*dto.InvoiceLineItemRequest{
			{Description: "Mowing", Quantity: dec("3"), UnitPrice: dec("10")},
		},
	})
	result := s.service.Execute(s.GetContext(), input)
	s.True(result.Success, result.Error)

	updated, err := s.GetStores().InvoiceRepo.Get(s.GetContext(), created.EntityID)
	s.NoError(err)
	// total went 24 -> 30 (discount 3 still applies, new tax 0: 30-3=27)
	s.True(updated.TotalAmount.Equal(dec("27")), "total %s", updated.TotalAmount)
	// balance was 14 after the payment, shifted by the +3 delta
	s.True(updated.BalanceDue.Equal(dec("17")), "balance %s", updated.BalanceDue)
}

func (s *InvoiceServiceSuite) TestUpdateLinesNonDraftRejected() {
	created := s.createInvoice()

	finalized, err := s.GetStores().InvoiceRepo.Get(s.GetContext(), created.EntityID)
	s.NoError(err)
	finalized.InvoiceStatus = types.InvoiceStatusFinalized
	s.NoError(s.GetStores().InvoiceRepo.Update(s.GetContext(), finalized))

	input := workflowInput(types.ActionInvoiceUpdateLines, created.EntityID, dto.UpdateInvoiceLinesRequest{
		Lines: []*dto.InvoiceLineItemRequest{
			{Description: "Mowing", Quantity: dec("1"), UnitPrice: dec("10")},
		},
	})
	result := s.service.Execute(s.GetContext(), input)

	s.False(result.Success)
	s.Contains(result.Error, "cannot be modified")
}

func (s *InvoiceServiceSuite) TestDeleteDraftInvoice() {
	created := s.createInvoice()

	result := s.service.Execute(s.GetContext(), workflowInput(types.ActionInvoiceDelete, created.EntityID, nil))
	s.True(result.Success, result.Error)

	_, err := s.GetStores().InvoiceRepo.Get(s.GetContext(), created.EntityID)
	s.Error(err)
}

func (s *InvoiceServiceSuite) TestDeleteNonDraftRejected() {
	created := s.createInvoice()

	finalized, err := s.GetStores().InvoiceRepo.Get(s.GetContext(), created.EntityID)
	s.NoError(err)
	finalized.InvoiceStatus = types.InvoiceStatusFinalized
	s.NoError(s.GetStores().InvoiceRepo.Update(s.GetContext(), finalized))

	result := s.service.Execute(s.GetContext(), workflowInput(types.ActionInvoiceDelete, created.EntityID, nil))

	s.False(result.Success)
	s.Contains(result.Error, "cannot be deleted")
}

func (s *InvoiceServiceSuite) TestDeleteWithPaymentsRejected() {
	created := s.createInvoice()

	paid, err := s.GetStores().InvoiceRepo.Get(s.GetContext(), created.EntityID)
	s.NoError(err)
	paid.BalanceDue = paid.BalanceDue.Sub(dec("5"))
	s.NoError(s.GetStores().InvoiceRepo.Update(s.GetContext(), paid))

	result := s.service.Execute(s.GetContext(), workflowInput(types.ActionInvoiceDelete, created.EntityID, nil))

	s.False(result.Success)
	s.Contains(result.Error, "payments")
}

// Count-based numbering counts deleted rows too, so a deleted invoice's
// number still advances the sequence.
func (s *InvoiceServiceSuite) TestDeletedInvoiceNumberNotReissued() {
	first := s.createInvoice()
	s.Equal("INV-2025-000001", first.InvoiceNumber)

	deleted := s.service.Execute(s.GetContext(), workflowInput(types.ActionInvoiceDelete, first.EntityID, nil))
	s.True(deleted.Success, deleted.Error)

	second := s.createInvoice()
	s.Equal("INV-2025-000002", second.InvoiceNumber)
}

func (s *InvoiceServiceSuite) TestUnknownAction() {
	result := s.service.Execute(s.GetContext(), workflowInput("finalize", "", nil))

	s.False(result.Success)
	s.Equal("Unknown action: finalize", result.Error)
}
