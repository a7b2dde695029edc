package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stewardly/stewardly/internal/api/dto"
	ierr "github.com/stewardly/stewardly/internal/errors"
	"github.com/stewardly/stewardly/internal/types"
)

// Every workflow entry point shares the same boundary behavior: the envelope
// is validated, the action is looked up in a table, and any error raised by
// the handler is caught here and reported in the uniform result shape. An
// unknown action is a result, not an error. Nothing ever propagates to the
// caller as a failure of the workflow function itself.

// unknownActionError formats the uniform unknown-action message
func unknownActionError(action types.WorkflowAction) string {
	return fmt.Sprintf("Unknown action: %s", action)
}

// decodeRequest parses the raw action payload into the action's typed
// request and validates it. Malformed or missing payloads surface as
// validation errors, distinct from not-found and business-rule errors.
func decodeRequest[T any, PT interface {
	*T
	Validate() error
}](data json.RawMessage) (PT, error) {
	req := PT(new(T))
	if len(data) == 0 {
		return nil, ierr.NewError("payload is required").
			WithHint("Action payload is required").
			Mark(ierr.ErrValidation)
	}
	if err := json.Unmarshal(data, req); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Malformed action payload").
			Mark(ierr.ErrValidation)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

// actorContext stamps the invocation's tenant and actor onto the context so
// repositories and base models pick them up
func actorContext(ctx context.Context, input dto.WorkflowInput) context.Context {
	ctx = types.SetTenantID(ctx, input.TenantID)
	ctx = types.SetUserID(ctx, input.ActorID)
	return ctx
}

// errorReporter forwards unexpected errors to the error-recording
// collaborator; expected business errors are only returned to the caller
type errorReporter interface {
	CaptureException(err error)
}

// resolveError converts a handler error into the result error message,
// recording unexpected errors for observability first
func resolveError(err error, reporter errorReporter) string {
	if err == nil {
		return ""
	}
	if reporter != nil && ierr.IsUnexpected(err) {
		reporter.CaptureException(err)
	}
	return err.Error()
}

// requireEntityID validates that an action which targets an existing entity
// received one
func requireEntityID(input dto.WorkflowInput) error {
	if input.EntityID == "" {
		return ierr.NewError("entity_id is required").
			WithHintf("Action %s requires an entity ID", input.Action).
			Mark(ierr.ErrValidation)
	}
	return nil
}
