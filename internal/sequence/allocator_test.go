package sequence

import (
	"context"
	"testing"

	"github.com/stewardly/stewardly/internal/logger"
	"github.com/stewardly/stewardly/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	counts map[string]int64
	maxes  map[string]string
	err    error
}

func (f *fakeSource) CountWithPrefix(ctx context.Context, kind types.DocumentKind, prefix string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.counts[prefix], nil
}

func (f *fakeSource) MaxWithPrefix(ctx context.Context, kind types.DocumentKind, prefix string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.maxes[prefix], nil
}

func testContext() context.Context {
	ctx := context.Background()
	ctx = types.SetTenantID(ctx, types.DefaultTenantID)
	ctx = types.SetUserID(ctx, types.DefaultUserID)
	return ctx
}

func TestAllocateCountStrategy(t *testing.T) {
	source := &fakeSource{counts: map[string]int64{}, maxes: map[string]string{}}
	allocator := NewAllocator(source, logger.L)
	ctx := testContext()

	number, err := allocator.Allocate(ctx, types.DocumentKindInvoice, 2025)
	require.NoError(t, err)
	assert.Equal(t, "INV-2025-000001", number)

	source.counts["INV-2025-"] = 1
	number, err = allocator.Allocate(ctx, types.DocumentKindInvoice, 2025)
	require.NoError(t, err)
	assert.Equal(t, "INV-2025-000002", number)

	source.counts["INV-2025-"] = 2
	number, err = allocator.Allocate(ctx, types.DocumentKindInvoice, 2025)
	require.NoError(t, err)
	assert.Equal(t, "INV-2025-000003", number)
}

func TestAllocateCountStrategyJobWidth(t *testing.T) {
	source := &fakeSource{counts: map[string]int64{"JOB-2025-": 41}}
	allocator := NewAllocator(source, logger.L)

	number, err := allocator.Allocate(testContext(), types.DocumentKindJob, 2025)
	require.NoError(t, err)
	assert.Equal(t, "JOB-2025-00042", number)
}

func TestAllocateMaxSuffixStrategy(t *testing.T) {
	source := &fakeSource{maxes: map[string]string{}}
	allocator := NewAllocator(source, logger.L)
	ctx := testContext()

	number, err := allocator.Allocate(ctx, types.DocumentKindViolation, 2025)
	require.NoError(t, err)
	assert.Equal(t, "VIO-2025-000001", number)

	source.maxes["VIO-2025-"] = "VIO-2025-000007"
	number, err = allocator.Allocate(ctx, types.DocumentKindViolation, 2025)
	require.NoError(t, err)
	assert.Equal(t, "VIO-2025-000008", number)
}

// The two strategies diverge when documents are deleted. Counting sees one
// fewer row and reissues the highest number; max-suffix still sees the
// greatest ever issued and never reuses it.
func TestStrategyDivergenceAfterDeletion(t *testing.T) {
	ctx := testContext()

	// Count source keeps deleted rows in the count, so the count only drops
	// when rows are physically removed. Simulate three issued, none removed.
	countSource := &fakeSource{counts: map[string]int64{"INV-2025-": 3}}
	allocator := NewAllocator(countSource, logger.L)
	number, err := allocator.Allocate(ctx, types.DocumentKindInvoice, 2025)
	require.NoError(t, err)
	assert.Equal(t, "INV-2025-000004", number)

	// Max-suffix keeps allocating past the highest number even if the row
	// holding it was soft-deleted.
	maxSource := &fakeSource{maxes: map[string]string{"VIO-2025-": "VIO-2025-000003"}}
	allocator = NewAllocator(maxSource, logger.L)
	number, err = allocator.Allocate(ctx, types.DocumentKindViolation, 2025)
	require.NoError(t, err)
	assert.Equal(t, "VIO-2025-000004", number)
}

func TestAllocateDefaultsYear(t *testing.T) {
	source := &fakeSource{counts: map[string]int64{}}
	allocator := NewAllocator(source, logger.L)

	number, err := allocator.Allocate(testContext(), types.DocumentKindInvoice, 0)
	require.NoError(t, err)
	assert.Regexp(t, `^INV-\d{4}-000001$`, number)
}

func TestAllocateUnknownKind(t *testing.T) {
	allocator := NewAllocator(&fakeSource{}, logger.L)

	_, err := allocator.Allocate(testContext(), types.DocumentKind("permit"), 2025)
	require.Error(t, err)
}

func TestAllocateRequiresTenant(t *testing.T) {
	allocator := NewAllocator(&fakeSource{}, logger.L)

	_, err := allocator.Allocate(context.Background(), types.DocumentKindInvoice, 2025)
	require.Error(t, err)
}

func TestAllocateMalformedMaxNumber(t *testing.T) {
	source := &fakeSource{maxes: map[string]string{"VIO-2025-": "VIO-2025-junk"}}
	allocator := NewAllocator(source, logger.L)

	_, err := allocator.Allocate(testContext(), types.DocumentKindViolation, 2025)
	require.Error(t, err)
}

func TestPrefix(t *testing.T) {
	prefix, err := Prefix(types.DocumentKindInvoice, 2025)
	require.NoError(t, err)
	assert.Equal(t, "INV-2025-", prefix)

	_, err = Prefix(types.DocumentKind("permit"), 2025)
	require.Error(t, err)
}

func TestFormatAndParseSuffix(t *testing.T) {
	formatted := Format("INV-2025-", 6, 42)
	assert.Equal(t, "INV-2025-000042", formatted)

	suffix, err := ParseSuffix(formatted, "INV-2025-")
	require.NoError(t, err)
	assert.Equal(t, int64(42), suffix)
}
