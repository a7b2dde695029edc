package repository

import (
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
	postgresRepo "github.com/stewardly/stewardly/internal/repository/postgres"
)

func NewJobRepository(client postgres.IClient, logger *logger.Logger) job.Repository {
	return postgresRepo.NewJobRepository(client, logger)
}

func NewInvoiceRepository(client postgres.IClient, logger *logger.Logger) invoice.Repository {
	return postgresRepo.NewInvoiceRepository(client, logger)
}

func NewViolationRepository(client postgres.IClient, logger *logger.Logger) violation.Repository {
	return postgresRepo.NewViolationRepository(client, logger)
}

func NewChecklistRepository(client postgres.IClient, logger *logger.Logger) checklist.Repository {
	return postgresRepo.NewChecklistRepository(client, logger)
}

func NewInventoryRepository(client postgres.IClient, logger *logger.Logger) inventory.Repository {
	return postgresRepo.NewInventoryRepository(client, logger)
}

func NewSignatureRepository(client postgres.IClient, logger *logger.Logger) signature.Repository {
	return postgresRepo.NewSignatureRepository(client, logger)
}

func NewNotificationRepository(client postgres.IClient, logger *logger.Logger) notification.Repository {
	return postgresRepo.NewNotificationRepository(client, logger)
}

func NewReportRepository(client postgres.IClient, logger *logger.Logger) report.Repository {
	return postgresRepo.NewReportRepository(client, logger)
}

func NewTenantRepository(client postgres.IClient, logger *logger.Logger) tenant.Repository {
	return postgresRepo.NewTenantRepository(client, logger)
}
