package testutil

import (
	"context"
	"strings"

	"github.com/stewardly/stewardly/internal/domain/invoice"
	ierr "github.com/stewardly/stewardly/internal/errors"
	"github.com/stewardly/stewardly/internal/types"
)

// InMemoryInvoiceStore implements invoice.Repository
type InMemoryInvoiceStore struct {
	*InMemoryStore[*invoice.Invoice]
}

// NewInMemoryInvoiceStore creates a new in-memory invoice store
func NewInMemoryInvoiceStore() *InMemoryInvoiceStore {
	return &InMemoryInvoiceStore{
		InMemoryStore: NewInMemoryStore[*invoice.Invoice](),
	}
}

func copyInvoice(inv *invoice.Invoice) *invoice.Invoice {
	if inv == nil {
		return nil
	}
	out := *inv
	out.Metadata = copyMetadata(inv.Metadata)
	if inv.LineItems != nil {
		out.LineItems = make([]*invoice.LineItem, len(inv.LineItems))
		for i, item := range inv.LineItems {
			itemCopy := *item
			out.LineItems[i] = &itemCopy
		}
	}
	return &out
}

func (s *InMemoryInvoiceStore) CreateWithLineItems(ctx context.Context, inv *invoice.Invoice) error {
	if inv == nil {
		return ierr.NewError("invoice cannot be nil").Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, inv.ID, copyInvoice(inv))
}

func (s *InMemoryInvoiceStore) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	inv, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || !visibleInTenant(ctx, inv.BaseModel) {
		return nil, ierr.NewErrorf("invoice %s not found", id).
			WithHint("Invoice not found").
			Mark(ierr.ErrNotFound)
	}
	return copyInvoice(inv), nil
}

func (s *InMemoryInvoiceStore) Update(ctx context.Context, inv *invoice.Invoice) error {
	if _, err := s.Get(ctx, inv.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, inv.ID, copyInvoice(inv))
}

func (s *InMemoryInvoiceStore) Delete(ctx context.Context, id string) error {
	inv, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	markDeleted(ctx, &inv.BaseModel)
	return s.InMemoryStore.Update(ctx, id, inv)
}

// CountNumbersWithPrefix counts all rows regardless of status so deleted
// invoices still occupy their number
func (s *InMemoryInvoiceStore) CountNumbersWithPrefix(ctx context.Context, prefix string) (int64, error) {
	count, err := s.InMemoryStore.Count(ctx, func(ctx context.Context, inv *invoice.Invoice) bool {
		return inv.TenantID == types.GetTenantID(ctx) && strings.HasPrefix(inv.InvoiceNumber, prefix)
	})
	return int64(count), err
}

func (s *InMemoryInvoiceStore) MaxNumberWithPrefix(ctx context.Context, prefix string) (string, error) {
	matches, err := s.InMemoryStore.List(ctx, func(ctx context.Context, inv *invoice.Invoice) bool {
		return inv.TenantID == types.GetTenantID(ctx) && strings.HasPrefix(inv.InvoiceNumber, prefix)
	}, nil)
	if err != nil {
		return "", err
	}

	max := ""
	for _, inv := range matches {
		if inv.InvoiceNumber > max {
			max = inv.InvoiceNumber
		}
	}
	return max, nil
}
