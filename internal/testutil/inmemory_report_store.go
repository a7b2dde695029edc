package testutil

import (
	"context"

	"github.com/stewardly/stewardly/internal/domain/report"
	ierr "github.com/stewardly/stewardly/internal/errors"
)

// InMemoryReportStore implements report.Repository
type InMemoryReportStore struct {
	*InMemoryStore[*report.Execution]
}

// NewInMemoryReportStore creates a new in-memory report execution store
func NewInMemoryReportStore() *InMemoryReportStore {
	return &InMemoryReportStore{
		InMemoryStore: NewInMemoryStore[*report.Execution](),
	}
}

func copyExecution(execution *report.Execution) *report.Execution {
	if execution == nil {
		return nil
	}
	out := *execution
	out.Parameters = copyMetadata(execution.Parameters)
	return &out
}

func (s *InMemoryReportStore) Create(ctx context.Context, execution *report.Execution) error {
	if execution == nil {
		return ierr.NewError("report execution cannot be nil").Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, execution.ID, copyExecution(execution))
}

func (s *InMemoryReportStore) Get(ctx context.Context, id string) (*report.Execution, error) {
	execution, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || !visibleInTenant(ctx, execution.BaseModel) {
		return nil, ierr.NewErrorf("report execution %s not found", id).
			WithHint("Report execution not found").
			Mark(ierr.ErrNotFound)
	}
	return copyExecution(execution), nil
}

func (s *InMemoryReportStore) Update(ctx context.Context, execution *report.Execution) error {
	if _, err := s.Get(ctx, execution.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, execution.ID, copyExecution(execution))
}
