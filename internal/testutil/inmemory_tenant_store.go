package testutil

import (
	"context"

	"github.com/stewardly/stewardly/internal/domain/tenant"
	ierr "github.com/stewardly/stewardly/internal/errors"
	"github.com/stewardly/stewardly/internal/types"
)

// InMemoryTenantStore implements tenant.Repository
type InMemoryTenantStore struct {
	*InMemoryStore[*tenant.Tenant]
}

// NewInMemoryTenantStore creates a new in-memory tenant store
func NewInMemoryTenantStore() *InMemoryTenantStore {
	return &InMemoryTenantStore{
		InMemoryStore: NewInMemoryStore[*tenant.Tenant](),
	}
}

func (s *InMemoryTenantStore) Create(ctx context.Context, t *tenant.Tenant) error {
	if t == nil {
		return ierr.NewError("tenant cannot be nil").Mark(ierr.ErrValidation)
	}
	tenantCopy := *t
	return s.InMemoryStore.Create(ctx, t.ID, &tenantCopy)
}

func (s *InMemoryTenantStore) Get(ctx context.Context, id string) (*tenant.Tenant, error) {
	t, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || t.Status != types.StatusPublished {
		return nil, ierr.NewErrorf("tenant %s not found", id).
			WithHint("Tenant not found").
			Mark(ierr.ErrNotFound)
	}
	tenantCopy := *t
	return &tenantCopy, nil
}

func (s *InMemoryTenantStore) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.Get(ctx, id)
	if err != nil {
		if ierr.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
