package temporal

import (
	"context"
	"fmt"
	"time"

	"github.com/stewardly/stewardly/internal/api/dto"
	"github.com/stewardly/stewardly/internal/config"
	ierr "github.com/stewardly/stewardly/internal/errors"
	"github.com/stewardly/stewardly/internal/logger"
	"github.com/stewardly/stewardly/internal/temporal/models"
	"go.temporal.io/sdk/client"
	temporalsdk "go.temporal.io/sdk/temporal"
)

const (
	// DefaultExecutionTimeout bounds a single action workflow run
	DefaultExecutionTimeout = time.Hour

	// signatureCleanupInterval is how often the scheduled sweep fires
	signatureCleanupInterval = time.Hour
)

// Service is the entry point for starting and querying workflows
type Service struct {
	client *TemporalClient
	cfg    *config.TemporalConfig
	log    *logger.Logger
}

// NewService creates a new Temporal service
func NewService(client *TemporalClient, cfg *config.TemporalConfig, log *logger.Logger) (*Service, error) {
	return &Service{
		client: client,
		cfg:    cfg,
		log:    log,
	}, nil
}

// ExecuteWorkflow starts the named action workflow with the given envelope
// and returns a handle the caller can block on or poll
func (s *Service) ExecuteWorkflow(ctx context.Context, workflowName string, input dto.WorkflowInput) (models.WorkflowRun, error) {
	if workflowName == "" {
		return nil, ierr.NewError("workflow name is required").
			WithHint("Workflow name is required").
			Mark(ierr.ErrValidation)
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	workflowOptions := client.StartWorkflowOptions{
		ID:                 s.generateWorkflowID(workflowName, input.TenantID),
		TaskQueue:          s.cfg.TaskQueue,
		WorkflowRunTimeout: DefaultExecutionTimeout,
		RetryPolicy: &temporalsdk.RetryPolicy{
			InitialInterval:    time.Second * 5,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute * 5,
			MaximumAttempts:    3,
		},
	}

	run, err := s.client.Client.ExecuteWorkflow(ctx, workflowOptions, workflowName, input)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to start workflow - check temporal server connectivity and task queue configuration").
			WithReportableDetails(map[string]any{
				"workflow_name": workflowName,
				"workflow_id":   workflowOptions.ID,
				"task_queue":    s.cfg.TaskQueue,
			}).
			Mark(ierr.ErrSystem)
	}

	s.log.Infow("started workflow",
		"workflow_name", workflowName,
		"workflow_id", run.GetID(),
		"run_id", run.GetRunID(),
	)

	return models.NewWorkflowRun(run), nil
}

// QueryWorkflowStatus queries the status handler of a running workflow
func (s *Service) QueryWorkflowStatus(ctx context.Context, workflowID, runID string) (string, error) {
	response, err := s.client.Client.QueryWorkflow(ctx, workflowID, runID, models.QueryWorkflowStatus)
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to query workflow status").
			WithReportableDetails(map[string]any{
				"workflow_id": workflowID,
			}).
			Mark(ierr.ErrSystem)
	}

	var status string
	if err := response.Get(&status); err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to decode workflow status").
			Mark(ierr.ErrSystem)
	}

	return status, nil
}

// RegisterSignatureCleanupSchedule ensures the recurring cleanup schedule
// exists. An already-registered schedule is left as is.
func (s *Service) RegisterSignatureCleanupSchedule(ctx context.Context) error {
	_, err := s.client.Client.ScheduleClient().Create(ctx, client.ScheduleOptions{
		ID: models.SignatureCleanupScheduleID,
		Spec: client.ScheduleSpec{
			Intervals: []client.ScheduleIntervalSpec{
				{Every: signatureCleanupInterval},
			},
		},
		Action: &client.ScheduleWorkflowAction{
			ID:        fmt.Sprintf("%s-run", models.SignatureCleanupScheduleID),
			Workflow:  models.WorkflowSignatureCleanup,
			TaskQueue: s.cfg.TaskQueue,
			Args: []interface{}{
				models.SignatureCleanupInput{BatchLimit: models.DefaultCleanupBatchLimit},
			},
		},
	})
	if err != nil {
		if err == temporalsdk.ErrScheduleAlreadyRunning {
			s.log.Debugw("signature cleanup schedule already registered")
			return nil
		}
		return ierr.WithError(err).
			WithHint("Failed to register signature cleanup schedule").
			Mark(ierr.ErrSystem)
	}

	s.log.Infow("registered signature cleanup schedule",
		"schedule_id", models.SignatureCleanupScheduleID,
		"interval", signatureCleanupInterval,
	)
	return nil
}

// Close closes the temporal client
func (s *Service) Close() {
	if s.client != nil {
		s.client.Close()
	}
}

func (s *Service) generateWorkflowID(workflowName, tenantID string) string {
	if tenantID == "" {
		tenantID = "unknown"
	}
	return fmt.Sprintf("%s-%s-%d", workflowName, tenantID, time.Now().UnixNano())
}
