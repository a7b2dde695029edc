package types

// WorkflowAction identifies the operation a workflow invocation performs.
// Each workflow kind accepts its own subset of actions; dispatch is a pure
// table lookup and unknown actions are reported back to the caller without
// raising an error.
type WorkflowAction string

const (
	// Job actions
	ActionJobCreate WorkflowAction = "create"
	ActionJobUpdate WorkflowAction = "update"
	ActionJobDelete WorkflowAction = "delete"

	// Invoice actions
	ActionInvoiceCreate      WorkflowAction = "create"
	ActionInvoiceUpdateLines WorkflowAction = "update_lines"
	ActionInvoiceDelete      WorkflowAction = "delete"

	// Violation actions
	ActionViolationCreate WorkflowAction = "create"
	ActionViolationUpdate WorkflowAction = "update"
	ActionViolationDelete WorkflowAction = "delete"

	// Checklist actions
	ActionChecklistCreate       WorkflowAction = "create"
	ActionChecklistAddItems     WorkflowAction = "add_items"
	ActionChecklistCompleteItem WorkflowAction = "complete_item"
	ActionChecklistDelete       WorkflowAction = "delete"

	// Inventory actions
	ActionInventoryRecordUsage  WorkflowAction = "record_usage"
	ActionInventoryReverseUsage WorkflowAction = "reverse_usage"
	ActionInventoryAdjust       WorkflowAction = "adjust"

	// Signature actions
	ActionSignatureCapture WorkflowAction = "capture"
	ActionSignatureDelete  WorkflowAction = "delete"

	// Notification actions
	ActionNotificationSend     WorkflowAction = "send"
	ActionNotificationMarkRead WorkflowAction = "mark_read"

	// Report actions
	ActionReportStart     WorkflowAction = "start"
	ActionReportCancel    WorkflowAction = "cancel"
	ActionReportGetStatus WorkflowAction = "get_status"
)

// DocumentKind identifies a sequentially numbered business document.
type DocumentKind string

const (
	DocumentKindJob       DocumentKind = "job"
	DocumentKindInvoice   DocumentKind = "invoice"
	DocumentKindViolation DocumentKind = "violation"
)
