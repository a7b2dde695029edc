package testutil

import (
	"context"

	"github.com/stewardly/stewardly/internal/domain/notification"
	ierr "github.com/stewardly/stewardly/internal/errors"
)

// InMemoryNotificationStore implements notification.Repository
type InMemoryNotificationStore struct {
	*InMemoryStore[*notification.Notification]
}

// NewInMemoryNotificationStore creates a new in-memory notification store
func NewInMemoryNotificationStore() *InMemoryNotificationStore {
	return &InMemoryNotificationStore{
		InMemoryStore: NewInMemoryStore[*notification.Notification](),
	}
}

func copyNotification(n *notification.Notification) *notification.Notification {
	if n == nil {
		return nil
	}
	out := *n
	return &out
}

func (s *InMemoryNotificationStore) Create(ctx context.Context, n *notification.Notification) error {
	if n == nil {
		return ierr.NewError("notification cannot be nil").Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, n.ID, copyNotification(n))
}

func (s *InMemoryNotificationStore) Get(ctx context.Context, id string) (*notification.Notification, error) {
	n, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || !visibleInTenant(ctx, n.BaseModel) {
		return nil, ierr.NewErrorf("notification %s not found", id).
			WithHint("Notification not found").
			Mark(ierr.ErrNotFound)
	}
	return copyNotification(n), nil
}

func (s *InMemoryNotificationStore) Update(ctx context.Context, n *notification.Notification) error {
	if _, err := s.Get(ctx, n.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, n.ID, copyNotification(n))
}
