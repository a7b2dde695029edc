package testutil

import (
	"context"
	"time"

	"github.com/stewardly/stewardly/internal/domain/signature"
	ierr "github.com/stewardly/stewardly/internal/errors"
	"github.com/stewardly/stewardly/internal/types"
)

// InMemorySignatureStore implements signature.Repository
type InMemorySignatureStore struct {
	*InMemoryStore[*signature.Signature]
}

// NewInMemorySignatureStore creates a new in-memory signature store
func NewInMemorySignatureStore() *InMemorySignatureStore {
	return &InMemorySignatureStore{
		InMemoryStore: NewInMemoryStore[*signature.Signature](),
	}
}

func copySignature(sig *signature.Signature) *signature.Signature {
	if sig == nil {
		return nil
	}
	out := *sig
	return &out
}

func (s *InMemorySignatureStore) Create(ctx context.Context, sig *signature.Signature) error {
	if sig == nil {
		return ierr.NewError("signature cannot be nil").Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, sig.ID, copySignature(sig))
}

func (s *InMemorySignatureStore) Get(ctx context.Context, id string) (*signature.Signature, error) {
	sig, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || !visibleInTenant(ctx, sig.BaseModel) {
		return nil, ierr.NewErrorf("signature %s not found", id).
			WithHint("Signature not found").
			Mark(ierr.ErrNotFound)
	}
	return copySignature(sig), nil
}

func (s *InMemorySignatureStore) Delete(ctx context.Context, id string) error {
	sig, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	markDeleted(ctx, &sig.BaseModel)
	return s.InMemoryStore.Update(ctx, id, sig)
}

// ListExpired spans all tenants, matching the cross-tenant sweep the
// scheduled cleanup performs
func (s *InMemorySignatureStore) ListExpired(ctx context.Context, cutoff time.Time, limit int) ([]*signature.Signature, error) {
	matches, err := s.InMemoryStore.List(ctx, func(ctx context.Context, sig *signature.Signature) bool {
		return sig.Status == types.StatusPublished &&
			sig.ExpiresAt != nil && sig.ExpiresAt.Before(cutoff)
	}, func(i, j *signature.Signature) bool {
		return i.ExpiresAt.Before(*j.ExpiresAt)
	})
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]*signature.Signature, len(matches))
	for i, sig := range matches {
		out[i] = copySignature(sig)
	}
	return out, nil
}
