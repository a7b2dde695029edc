package models

// Workflow names - must match the registered function names
const (
	WorkflowJob              = "JobWorkflow"
	WorkflowInvoice          = "InvoiceWorkflow"
	WorkflowViolation        = "ViolationWorkflow"
	WorkflowChecklist        = "ChecklistWorkflow"
	WorkflowInventory        = "InventoryWorkflow"
	WorkflowSignature        = "SignatureWorkflow"
	WorkflowNotification     = "NotificationWorkflow"
	WorkflowReport           = "ReportWorkflow"
	WorkflowReportGeneration = "ReportGenerationWorkflow"
	WorkflowSignatureCleanup = "SignatureCleanupWorkflow"
)

// Activity names - must match the registered method names
const (
	ActivityExecuteJobAction          = "ExecuteJobAction"
	ActivityExecuteInvoiceAction      = "ExecuteInvoiceAction"
	ActivityExecuteViolationAction    = "ExecuteViolationAction"
	ActivityExecuteChecklistAction    = "ExecuteChecklistAction"
	ActivityExecuteInventoryAction    = "ExecuteInventoryAction"
	ActivityExecuteSignatureAction    = "ExecuteSignatureAction"
	ActivityExecuteNotificationAction = "ExecuteNotificationAction"
	ActivityExecuteReportAction       = "ExecuteReportAction"
	ActivityMarkReportRunning         = "MarkReportRunning"
	ActivityCompleteReport            = "CompleteReport"
	ActivityFailReport                = "FailReport"
	ActivityCleanupExpiredSignatures  = "CleanupExpiredSignatures"
)

// QueryWorkflowStatus is the query name exposing the current workflow phase
const QueryWorkflowStatus = "status"

// SignatureCleanupScheduleID identifies the recurring cleanup schedule
const SignatureCleanupScheduleID = "signature-cleanup"
