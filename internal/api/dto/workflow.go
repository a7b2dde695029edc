package dto

import (
	"encoding/json"
	"time"

	ierr "github.com/stewardly/stewardly/internal/errors"
	"github.com/stewardly/stewardly/internal/types"
)

// WorkflowInput is the uniform envelope every workflow entry point accepts.
// Data carries the raw per-action payload and is parsed into the action's
// typed request at the dispatch boundary.
type WorkflowInput struct {
	Action   types.WorkflowAction `json:"action"`
	TenantID string               `json:"tenant_id"`
	ActorID  string               `json:"actor_id"`
	EntityID string               `json:"entity_id,omitempty"`
	Data     json.RawMessage      `json:"data,omitempty"`
}

// Validate validates the envelope fields common to every action
func (i *WorkflowInput) Validate() error {
	if i.TenantID == "" {
		return ierr.NewError("tenant_id is required").
			WithHint("Tenant ID is required").
			Mark(ierr.ErrValidation)
	}
	if i.ActorID == "" {
		return ierr.NewError("actor_id is required").
			WithHint("Actor ID is required").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// WorkflowResult is the uniform result contract of every workflow entry
// point. Errors raised by an operation are caught at the dispatch boundary
// and reported here; they never propagate to the caller.
type WorkflowResult struct {
	Success  bool   `json:"success"`
	EntityID string `json:"entity_id,omitempty"`
	Error    string `json:"error,omitempty"`
}

// JobWorkflowResult adds the assigned job number on creation
type JobWorkflowResult struct {
	WorkflowResult
	JobNumber string `json:"job_number,omitempty"`
}

// InvoiceWorkflowResult adds the assigned invoice number on creation
type InvoiceWorkflowResult struct {
	WorkflowResult
	InvoiceNumber string `json:"invoice_number,omitempty"`
}

// ViolationWorkflowResult adds the assigned violation number on creation
type ViolationWorkflowResult struct {
	WorkflowResult
	ViolationNumber string `json:"violation_number,omitempty"`
}

// ChecklistWorkflowResult adds the number of items added
type ChecklistWorkflowResult struct {
	WorkflowResult
	AddedCount int `json:"added_count,omitempty"`
}

// ReportWorkflowResult adds the execution status and its timestamp
type ReportWorkflowResult struct {
	WorkflowResult
	Status    string     `json:"status,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// NotificationWorkflowResult adds the delivery timestamp
type NotificationWorkflowResult struct {
	WorkflowResult
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// FailureResult builds a failed result from an error message
func FailureResult(msg string) WorkflowResult {
	return WorkflowResult{Success: false, Error: msg}
}

// SuccessResult builds a successful result for an entity
func SuccessResult(entityID string) WorkflowResult {
	return WorkflowResult{Success: true, EntityID: entityID}
}
