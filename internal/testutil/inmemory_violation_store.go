package testutil

import (
	"context"
	"strings"

	"github.com/stewardly/stewardly/internal/domain/violation"
	ierr "github.com/stewardly/stewardly/internal/errors"
	"github.com/stewardly/stewardly/internal/types"
)

// InMemoryViolationStore implements violation.Repository
type InMemoryViolationStore struct {
	*InMemoryStore[*violation.Violation]
}

// NewInMemoryViolationStore creates a new in-memory violation store
func NewInMemoryViolationStore() *InMemoryViolationStore {
	return &InMemoryViolationStore{
		InMemoryStore: NewInMemoryStore[*violation.Violation](),
	}
}

func copyViolation(v *violation.Violation) *violation.Violation {
	if v == nil {
		return nil
	}
	out := *v
	out.Metadata = copyMetadata(v.Metadata)
	return &out
}

func (s *InMemoryViolationStore) Create(ctx context.Context, v *violation.Violation) error {
	if v == nil {
		return ierr.NewError("violation cannot be nil").Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, v.ID, copyViolation(v))
}

func (s *InMemoryViolationStore) Get(ctx context.Context, id string) (*violation.Violation, error) {
	v, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || !visibleInTenant(ctx, v.BaseModel) {
		return nil, ierr.NewErrorf("violation %s not found", id).
			WithHint("Violation not found").
			Mark(ierr.ErrNotFound)
	}
	return copyViolation(v), nil
}

func (s *InMemoryViolationStore) Update(ctx context.Context, v *violation.Violation) error {
	if _, err := s.Get(ctx, v.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, v.ID, copyViolation(v))
}

func (s *InMemoryViolationStore) Delete(ctx context.Context, id string) error {
	v, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	markDeleted(ctx, &v.BaseModel)
	return s.InMemoryStore.Update(ctx, id, v)
}

// CountNumbersWithPrefix counts all rows regardless of status so deleted
// violations still occupy their number
func (s *InMemoryViolationStore) CountNumbersWithPrefix(ctx context.Context, prefix string) (int64, error) {
	count, err := s.InMemoryStore.Count(ctx, func(ctx context.Context, v *violation.Violation) bool {
		return v.TenantID == types.GetTenantID(ctx) && strings.HasPrefix(v.ViolationNumber, prefix)
	})
	return int64(count), err
}

func (s *InMemoryViolationStore) MaxNumberWithPrefix(ctx context.Context, prefix string) (string, error) {
	matches, err := s.InMemoryStore.List(ctx, func(ctx context.Context, v *violation.Violation) bool {
		return v.TenantID == types.GetTenantID(ctx) && strings.HasPrefix(v.ViolationNumber, prefix)
	}, nil)
	if err != nil {
		return "", err
	}

	max := ""
	for _, v := range matches {
		if v.ViolationNumber > max {
			max = v.ViolationNumber
		}
	}
	return max, nil
}
