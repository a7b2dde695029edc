package testutil

import (
	"context"
	"strings"

	"github.com/stewardly/stewardly/internal/domain/job"
	ierr "github.com/stewardly/stewardly/internal/errors"
	"github.com/stewardly/stewardly/internal/types"
)

// InMemoryJobStore implements job.Repository
type InMemoryJobStore struct {
	*InMemoryStore[*job.Job]
}

// NewInMemoryJobStore creates a new in-memory job store
func NewInMemoryJobStore() *InMemoryJobStore {
	return &InMemoryJobStore{
		InMemoryStore: NewInMemoryStore[*job.Job](),
	}
}

func copyJob(j *job.Job) *job.Job {
	if j == nil {
		return nil
	}
	out := *j
	out.Metadata = copyMetadata(j.Metadata)
	return &out
}

func (s *InMemoryJobStore) Create(ctx context.Context, j *job.Job) error {
	if j == nil {
		return ierr.NewError("job cannot be nil").Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, j.ID, copyJob(j))
}

func (s *InMemoryJobStore) Get(ctx context.Context, id string) (*job.Job, error) {
	j, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || !visibleInTenant(ctx, j.BaseModel) {
		return nil, ierr.NewErrorf("job %s not found", id).
			WithHint("Job not found").
			Mark(ierr.ErrNotFound)
	}
	return copyJob(j), nil
}

func (s *InMemoryJobStore) Update(ctx context.Context, j *job.Job) error {
	if _, err := s.Get(ctx, j.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, j.ID, copyJob(j))
}

func (s *InMemoryJobStore) Delete(ctx context.Context, id string) error {
	j, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	markDeleted(ctx, &j.BaseModel)
	return s.InMemoryStore.Update(ctx, id, j)
}

// CountNumbersWithPrefix counts all rows regardless of status so deleted
// jobs still occupy their number
func (s *InMemoryJobStore) CountNumbersWithPrefix(ctx context.Context, prefix string) (int64, error) {
	count, err := s.InMemoryStore.Count(ctx, func(ctx context.Context, j *job.Job) bool {
		return j.TenantID == types.GetTenantID(ctx) && strings.HasPrefix(j.JobNumber, prefix)
	})
	return int64(count), err
}

func (s *InMemoryJobStore) MaxNumberWithPrefix(ctx context.Context, prefix string) (string, error) {
	matches, err := s.InMemoryStore.List(ctx, func(ctx context.Context, j *job.Job) bool {
		return j.TenantID == types.GetTenantID(ctx) && strings.HasPrefix(j.JobNumber, prefix)
	}, nil)
	if err != nil {
		return "", err
	}

	max := ""
	for _, j := range matches {
		if j.JobNumber > max {
			max = j.JobNumber
		}
	}
	return max, nil
}
