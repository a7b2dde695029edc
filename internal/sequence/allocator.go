package sequence

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	ierr "github.com/stewardly/stewardly/internal/errors"
	"github.com/stewardly/stewardly/internal/logger"
	"github.com/stewardly/stewardly/internal/types"
)

// Strategy selects how the next sequence value is derived from existing
// document numbers. The two strategies diverge once documents are deleted:
// counting reuses numbers of deleted documents, max-suffix never does.
// The strategy is fixed per document kind and must not change, otherwise
// previously issued numbers can collide.
type Strategy string

const (
	// StrategyCount uses count(existing matching prefix) + 1
	StrategyCount Strategy = "count"
	// StrategyMaxSuffix parses the numeric suffix of the greatest existing
	// number and increments it
	StrategyMaxSuffix Strategy = "max_suffix"
)

// Source provides the lookups the allocator needs. Implementations must run
// the queries on the caller's transaction so that allocation and the document
// insert share one atomic scope.
type Source interface {
	// CountWithPrefix returns how many documents of the kind exist in the
	// current tenant whose number starts with prefix
	CountWithPrefix(ctx context.Context, kind types.DocumentKind, prefix string) (int64, error)
	// MaxWithPrefix returns the lexicographically greatest document number of
	// the kind in the current tenant matching prefix, or "" when none exists
	MaxWithPrefix(ctx context.Context, kind types.DocumentKind, prefix string) (string, error)
}

// Rule describes the number format of one document kind
type Rule struct {
	Prefix   string
	Width    int
	Strategy Strategy
}

var rules = map[types.DocumentKind]Rule{
	types.DocumentKindJob:       {Prefix: "JOB", Width: 5, Strategy: StrategyCount},
	types.DocumentKindInvoice:   {Prefix: "INV", Width: 6, Strategy: StrategyCount},
	types.DocumentKindViolation: {Prefix: "VIO", Width: 6, Strategy: StrategyMaxSuffix},
}

// RuleFor returns the formatting rule for a document kind
func RuleFor(kind types.DocumentKind) (Rule, bool) {
	r, ok := rules[kind]
	return r, ok
}

// Prefix builds the year-scoped prefix for a document kind, e.g. "INV-2025-"
func Prefix(kind types.DocumentKind, year int) (string, error) {
	rule, ok := rules[kind]
	if !ok {
		return "", ierr.NewErrorf("unknown document kind: %s", kind).
			Mark(ierr.ErrValidation)
	}
	return fmt.Sprintf("%s-%d-", rule.Prefix, year), nil
}

// Allocator computes the next human-readable document number within a
// (tenant, kind, year) scope. It is only collision-free when Allocate and the
// subsequent insert run inside the same transaction; concurrent creations
// outside that enclosure surface as unique-constraint violations from the
// store, which propagate as creation failures.
type Allocator struct {
	source Source
	logger *logger.Logger
}

// NewAllocator creates a sequence allocator over the given source
func NewAllocator(source Source, logger *logger.Logger) *Allocator {
	return &Allocator{source: source, logger: logger}
}

// Allocate returns the next formatted document number for the kind within the
// tenant in context. A zero year defaults to the current year.
func (a *Allocator) Allocate(ctx context.Context, kind types.DocumentKind, year int) (string, error) {
	if err := types.ValidateTenantContext(ctx); err != nil {
		return "", ierr.WithError(err).
			WithHint("tenant scope is required for sequence allocation").
			Mark(ierr.ErrValidation)
	}

	if year == 0 {
		year = time.Now().UTC().Year()
	}

	rule, ok := rules[kind]
	if !ok {
		return "", ierr.NewErrorf("unknown document kind: %s", kind).
			Mark(ierr.ErrValidation)
	}

	prefix, err := Prefix(kind, year)
	if err != nil {
		return "", err
	}

	var next int64
	switch rule.Strategy {
	case StrategyCount:
		count, err := a.source.CountWithPrefix(ctx, kind, prefix)
		if err != nil {
			return "", ierr.WithError(err).
				WithHint("sequence allocation failed").
				WithReportableDetails(map[string]any{
					"document_kind": kind,
					"prefix":        prefix,
				}).
				Mark(ierr.ErrDatabase)
		}
		next = count + 1
	case StrategyMaxSuffix:
		max, err := a.source.MaxWithPrefix(ctx, kind, prefix)
		if err != nil {
			return "", ierr.WithError(err).
				WithHint("sequence allocation failed").
				WithReportableDetails(map[string]any{
					"document_kind": kind,
					"prefix":        prefix,
				}).
				Mark(ierr.ErrDatabase)
		}
		if max == "" {
			next = 1
		} else {
			suffix, err := ParseSuffix(max, prefix)
			if err != nil {
				return "", err
			}
			next = suffix + 1
		}
	}

	formatted := Format(prefix, rule.Width, next)

	a.logger.Debugw("allocated document number",
		"tenant_id", types.GetTenantID(ctx),
		"document_kind", kind,
		"number", formatted,
	)

	return formatted, nil
}

// Format renders a sequence value as a zero-padded document number
func Format(prefix string, width int, n int64) string {
	return fmt.Sprintf("%s%0*d", prefix, width, n)
}

// ParseSuffix extracts the numeric suffix from a formatted document number
func ParseSuffix(number, prefix string) (int64, error) {
	suffix := strings.TrimPrefix(number, prefix)
	n, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHintf("malformed document number: %s", number).
			Mark(ierr.ErrSystem)
	}
	return n, nil
}
