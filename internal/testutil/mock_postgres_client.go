package testutil

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/stewardly/stewardly/internal/logger"
	"github.com/stewardly/stewardly/internal/postgres"
	"github.com/stewardly/stewardly/internal/types"
)

var _ postgres.IClient = (*MockPostgresClient)(nil) // Ensure MockPostgresClient implements IClient

// MockPostgresClient is a mock implementation of postgres client for testing.
// Transactions are a pass-through; the in-memory stores have no rollback.
type MockPostgresClient struct {
	logger *logger.Logger
}

// NewMockPostgresClient creates a new mock postgres client
func NewMockPostgresClient(logger *logger.Logger) postgres.IClient {
	return &MockPostgresClient{
		logger: logger,
	}
}

// WithTx executes the given function without a real transaction
func (c *MockPostgresClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// WithTenantTx scopes the context to the tenant and executes the function
func (c *MockPostgresClient) WithTenantTx(ctx context.Context, tenantID string, auditReason string, fn func(context.Context) error) error {
	if tenantID == "" {
		return fmt.Errorf("tenant ID is required for a tenant-scoped transaction")
	}
	ctx = types.SetTenantID(ctx, tenantID)
	ctx = types.SetAuditReason(ctx, auditReason)
	return fn(ctx)
}

// Querier returns nil; the in-memory stores never touch SQL
func (c *MockPostgresClient) Querier(ctx context.Context) sqlx.ExtContext {
	return nil
}
