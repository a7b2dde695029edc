package service

import (
	"github.com/stewardly/stewardly/internal/config"
	"github.com/stewardly/stewardly/internal/domain/checklist"
	"github.com/stewardly/stewardly/internal/domain/inventory"
	"github.com/stewardly/stewardly/internal/domain/invoice"
	"github.com/stewardly/stewardly/internal/domain/job"
	"github.com/stewardly/stewardly/internal/domain/notification"
	"github.com/stewardly/stewardly/internal/domain/report"
	"github.com/stewardly/stewardly/internal/domain/signature"
	"github.com/stewardly/stewardly/internal/domain/tenant"
	"github.com/stewardly/stewardly/internal/domain/violation"
	"github.com/stewardly/stewardly/internal/logger"
	"github.com/stewardly/stewardly/internal/postgres"
	"github.com/stewardly/stewardly/internal/s3"
	"github.com/stewardly/stewardly/internal/sentry"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	DB     postgres.IClient
	Sentry *sentry.Service
	S3     s3.Service

	// Repositories
	JobRepo          job.Repository
	InvoiceRepo      invoice.Repository
	ViolationRepo    violation.Repository
	ChecklistRepo    checklist.Repository
	InventoryRepo    inventory.Repository
	SignatureRepo    signature.Repository
	NotificationRepo notification.Repository
	ReportRepo       report.Repository
	TenantRepo       tenant.Repository
}

// Common service params
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	db postgres.IClient,
	sentryService *sentry.Service,
	s3Service s3.Service,
	jobRepo job.Repository,
	invoiceRepo invoice.Repository,
	violationRepo violation.Repository,
	checklistRepo checklist.Repository,
	inventoryRepo inventory.Repository,
	signatureRepo signature.Repository,
	notificationRepo notification.Repository,
	reportRepo report.Repository,
	tenantRepo tenant.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:           logger,
		Config:           config,
		DB:               db,
		Sentry:           sentryService,
		S3:               s3Service,
		JobRepo:          jobRepo,
		InvoiceRepo:      invoiceRepo,
		ViolationRepo:    violationRepo,
		ChecklistRepo:    checklistRepo,
		InventoryRepo:    inventoryRepo,
		SignatureRepo:    signatureRepo,
		NotificationRepo: notificationRepo,
		ReportRepo:       reportRepo,
		TenantRepo:       tenantRepo,
	}
}
