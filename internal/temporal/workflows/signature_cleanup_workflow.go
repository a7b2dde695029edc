package workflows

import (
	"github.com/stewardly/stewardly/internal/temporal/models"
	"go.temporal.io/sdk/workflow"
)

// SignatureCleanupWorkflow runs one scheduled sweep over expired signatures.
// The schedule fires it on a fixed cadence; each run is bounded by the batch
// limit so a backlog never produces an unbounded activity.
func SignatureCleanupWorkflow(ctx workflow.Context, input models.SignatureCleanupInput) (*models.SignatureCleanupResult, error) {
	logger := workflow.GetLogger(ctx)

	if input.BatchLimit <= 0 {
		input.BatchLimit = models.DefaultCleanupBatchLimit
	}

	ctx = workflow.WithActivityOptions(ctx, defaultActivityOptions())

	var result models.SignatureCleanupResult
	if err := workflow.ExecuteActivity(ctx, models.ActivityCleanupExpiredSignatures, input).Get(ctx, &result); err != nil {
		logger.Error("Signature cleanup failed", "error", err)
		return nil, err
	}

	logger.Info("Signature cleanup completed", "removed", result.Removed)
	return &result, nil
}
