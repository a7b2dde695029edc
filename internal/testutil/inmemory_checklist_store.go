package testutil

import (
	"context"
	"sort"

	"github.com/stewardly/stewardly/internal/domain/checklist"
	ierr "github.com/stewardly/stewardly/internal/errors"
)

// InMemoryChecklistStore implements checklist.Repository
type InMemoryChecklistStore struct {
	*InMemoryStore[*checklist.Checklist]
}

// NewInMemoryChecklistStore creates a new in-memory checklist store
func NewInMemoryChecklistStore() *InMemoryChecklistStore {
	return &InMemoryChecklistStore{
		InMemoryStore: NewInMemoryStore[*checklist.Checklist](),
	}
}

func copyChecklist(cl *checklist.Checklist) *checklist.Checklist {
	if cl == nil {
		return nil
	}
	out := *cl
	out.Metadata = copyMetadata(cl.Metadata)
	if cl.Items != nil {
		out.Items = make([]*checklist.Item, len(cl.Items))
		for i, item := range cl.Items {
			itemCopy := *item
			out.Items[i] = &itemCopy
		}
	}
	return &out
}

func (s *InMemoryChecklistStore) CreateWithItems(ctx context.Context, cl *checklist.Checklist) error {
	if cl == nil {
		return ierr.NewError("checklist cannot be nil").Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, cl.ID, copyChecklist(cl))
}

func (s *InMemoryChecklistStore) Get(ctx context.Context, id string) (*checklist.Checklist, error) {
	cl, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || !visibleInTenant(ctx, cl.BaseModel) {
		return nil, ierr.NewErrorf("checklist %s not found", id).
			WithHint("Checklist not found").
			Mark(ierr.ErrNotFound)
	}

	out := copyChecklist(cl)
	// Mirror the ordering the database layer guarantees
	sort.Slice(out.Items, func(i, j int) bool {
		return out.Items[i].Position < out.Items[j].Position
	})
	return out, nil
}

func (s *InMemoryChecklistStore) AddItems(ctx context.Context, checklistID string, items []*checklist.Item) error {
	cl, err := s.Get(ctx, checklistID)
	if err != nil {
		return err
	}

	for _, item := range items {
		itemCopy := *item
		itemCopy.ChecklistID = checklistID
		cl.Items = append(cl.Items, &itemCopy)
	}
	return s.InMemoryStore.Update(ctx, checklistID, cl)
}

func (s *InMemoryChecklistStore) UpdateItem(ctx context.Context, item *checklist.Item) error {
	cl, err := s.Get(ctx, item.ChecklistID)
	if err != nil {
		return err
	}

	for i, existing := range cl.Items {
		if existing.ID == item.ID {
			itemCopy := *item
			cl.Items[i] = &itemCopy
			return s.InMemoryStore.Update(ctx, cl.ID, cl)
		}
	}

	return ierr.NewErrorf("checklist item %s not found", item.ID).
		WithHint("Checklist item not found").
		Mark(ierr.ErrNotFound)
}

func (s *InMemoryChecklistStore) Delete(ctx context.Context, id string) error {
	cl, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	markDeleted(ctx, &cl.BaseModel)
	return s.InMemoryStore.Update(ctx, id, cl)
}
