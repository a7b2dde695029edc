package temporal

import (
	"github.com/stewardly/stewardly/internal/service"
	"github.com/stewardly/stewardly/internal/temporal/activities"
	"github.com/stewardly/stewardly/internal/temporal/workflows"
	"go.temporal.io/sdk/worker"
)

// RegisterWorkflowsAndActivities registers all workflows and activities with
// a Temporal worker. Names follow the function and method names.
func RegisterWorkflowsAndActivities(w worker.Worker, params service.ServiceParams) {
	w.RegisterWorkflow(workflows.JobWorkflow)
	w.RegisterWorkflow(workflows.InvoiceWorkflow)
	w.RegisterWorkflow(workflows.ViolationWorkflow)
	w.RegisterWorkflow(workflows.ChecklistWorkflow)
	w.RegisterWorkflow(workflows.InventoryWorkflow)
	w.RegisterWorkflow(workflows.SignatureWorkflow)
	w.RegisterWorkflow(workflows.NotificationWorkflow)
	w.RegisterWorkflow(workflows.ReportWorkflow)
	w.RegisterWorkflow(workflows.ReportGenerationWorkflow)
	w.RegisterWorkflow(workflows.SignatureCleanupWorkflow)

	jobActivities := activities.NewJobActivities(service.NewJobService(params))
	invoiceActivities := activities.NewInvoiceActivities(service.NewInvoiceService(params))
	violationActivities := activities.NewViolationActivities(service.NewViolationService(params))
	checklistActivities := activities.NewChecklistActivities(service.NewChecklistService(params))
	inventoryActivities := activities.NewInventoryActivities(service.NewInventoryService(params))
	signatureActivities := activities.NewSignatureActivities(service.NewSignatureService(params))
	notificationActivities := activities.NewNotificationActivities(service.NewNotificationService(params))
	reportActivities := activities.NewReportActivities(service.NewReportService(params))

	w.RegisterActivity(jobActivities.ExecuteJobAction)
	w.RegisterActivity(invoiceActivities.ExecuteInvoiceAction)
	w.RegisterActivity(violationActivities.ExecuteViolationAction)
	w.RegisterActivity(checklistActivities.ExecuteChecklistAction)
	w.RegisterActivity(inventoryActivities.ExecuteInventoryAction)
	w.RegisterActivity(signatureActivities.ExecuteSignatureAction)
	w.RegisterActivity(signatureActivities.CleanupExpiredSignatures)
	w.RegisterActivity(notificationActivities.ExecuteNotificationAction)
	w.RegisterActivity(reportActivities.ExecuteReportAction)
	w.RegisterActivity(reportActivities.MarkReportRunning)
	w.RegisterActivity(reportActivities.CompleteReport)
	w.RegisterActivity(reportActivities.FailReport)
}
