package service

import (
	"context"

	"github.com/stewardly/stewardly/internal/domain/invoice"
	"github.com/stewardly/stewardly/internal/domain/job"
	"github.com/stewardly/stewardly/internal/domain/violation"
	ierr "github.com/stewardly/stewardly/internal/errors"
	"github.com/stewardly/stewardly/internal/sequence"
	"github.com/stewardly/stewardly/internal/types"
)

// sequenceSource adapts the numbered-document repositories to the sequence
// allocator. The repositories run their queries on the transaction carried in
// the context, so allocation shares the creation transaction.
type sequenceSource struct {
	jobs       job.Repository
	invoices   invoice.Repository
	violations violation.Repository
}

var _ sequence.Source = (*sequenceSource)(nil)

func newSequenceSource(jobs job.Repository, invoices invoice.Repository, violations violation.Repository) *sequenceSource {
	return &sequenceSource{jobs: jobs, invoices: invoices, violations: violations}
}

func (s *sequenceSource) CountWithPrefix(ctx context.Context, kind types.DocumentKind, prefix string) (int64, error) {
	switch kind {
	case types.DocumentKindJob:
		return s.jobs.CountNumbersWithPrefix(ctx, prefix)
	case types.DocumentKindInvoice:
		return s.invoices.CountNumbersWithPrefix(ctx, prefix)
	case types.DocumentKindViolation:
		return s.violations.CountNumbersWithPrefix(ctx, prefix)
	default:
		return 0, ierr.NewErrorf("unknown document kind: %s", kind).
			Mark(ierr.ErrValidation)
	}
}

func (s *sequenceSource) MaxWithPrefix(ctx context.Context, kind types.DocumentKind, prefix string) (string, error) {
	switch kind {
	case types.DocumentKindJob:
		return s.jobs.MaxNumberWithPrefix(ctx, prefix)
	case types.DocumentKindInvoice:
		return s.invoices.MaxNumberWithPrefix(ctx, prefix)
	case types.DocumentKindViolation:
		return s.violations.MaxNumberWithPrefix(ctx, prefix)
	default:
		return "", ierr.NewErrorf("unknown document kind: %s", kind).
			Mark(ierr.ErrValidation)
	}
}
