package testutil

import (
	"context"
	"time"

	"github.com/stewardly/stewardly/internal/types"
)

func nowUTC() time.Time {
	return time.Now().UTC()
}

// visibleInTenant reports whether a row belongs to the tenant in ctx and has
// not been soft-deleted
func visibleInTenant(ctx context.Context, base types.BaseModel) bool {
	return base.TenantID == types.GetTenantID(ctx) && base.Status == types.StatusPublished
}

func copyMetadata(m types.Metadata) types.Metadata {
	if m == nil {
		return nil
	}
	out := make(types.Metadata, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func markDeleted(ctx context.Context, base *types.BaseModel) {
	base.Status = types.StatusDeleted
	base.UpdatedAt = nowUTC()
	base.UpdatedBy = types.GetUserID(ctx)
}
