package models

import (
	"context"

	"go.temporal.io/sdk/client"
)

// WorkflowRun represents a running workflow
type WorkflowRun interface {
	// GetID returns the workflow ID
	GetID() string
	// GetRunID returns the workflow run ID
	GetRunID() string
	// Get blocks until the workflow completes and returns the result
	Get(ctx context.Context, valuePtr interface{}) error
}

// workflowRun wraps the SDK workflow run
type workflowRun struct {
	run client.WorkflowRun
}

// NewWorkflowRun creates a new workflow run wrapper
func NewWorkflowRun(run client.WorkflowRun) WorkflowRun {
	return &workflowRun{
		run: run,
	}
}

func (w *workflowRun) GetID() string {
	return w.run.GetID()
}

func (w *workflowRun) GetRunID() string {
	return w.run.GetRunID()
}

func (w *workflowRun) Get(ctx context.Context, valuePtr interface{}) error {
	return w.run.Get(ctx, valuePtr)
}
