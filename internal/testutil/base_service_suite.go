package testutil

import (
	"context"
	"time"

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
	"github.com/stewardly/stewardly/internal/sentry"
	"github.com/stewardly/stewardly/internal/types"
	"github.com/stewardly/stewardly/internal/validator"
	"github.com/stretchr/testify/suite"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
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

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	stores Stores
	db     postgres.IClient
	s3     *MockS3Service
	sentry *sentry.Service
	logger *logger.Logger
	config *config.Configuration
	now    time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	// Initialize validator
	validator.NewValidator()

	// Initialize logger with test config
	cfg := &config.Configuration{
		Logging: config.LoggingConfig{
			Level: types.LogLevelInfo,
		},
	}
	var err error
	s.config = cfg
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
	s.sentry = sentry.NewSentryService(cfg, s.logger)
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.setupContext()
	s.setupStores()
	s.now = time.Now().UTC()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.clearStores()
}

func (s *BaseServiceTestSuite) setupContext() {
	s.ctx = SetupContext()
}

func (s *BaseServiceTestSuite) setupStores() {
	s.stores = Stores{
		JobRepo:          NewInMemoryJobStore(),
		InvoiceRepo:      NewInMemoryInvoiceStore(),
		ViolationRepo:    NewInMemoryViolationStore(),
		ChecklistRepo:    NewInMemoryChecklistStore(),
		InventoryRepo:    NewInMemoryInventoryStore(),
		SignatureRepo:    NewInMemorySignatureStore(),
		NotificationRepo: NewInMemoryNotificationStore(),
		ReportRepo:       NewInMemoryReportStore(),
		TenantRepo:       NewInMemoryTenantStore(),
	}

	s.db = NewMockPostgresClient(s.logger)
	s.s3 = NewMockS3Service()
}

func (s *BaseServiceTestSuite) clearStores() {
	s.stores.JobRepo.(*InMemoryJobStore).Clear()
	s.stores.InvoiceRepo.(*InMemoryInvoiceStore).Clear()
	s.stores.ViolationRepo.(*InMemoryViolationStore).Clear()
	s.stores.ChecklistRepo.(*InMemoryChecklistStore).Clear()
	s.stores.InventoryRepo.(*InMemoryInventoryStore).Clear()
	s.stores.SignatureRepo.(*InMemorySignatureStore).Clear()
	s.stores.NotificationRepo.(*InMemoryNotificationStore).Clear()
	s.stores.ReportRepo.(*InMemoryReportStore).Clear()
	s.stores.TenantRepo.(*InMemoryTenantStore).Clear()
}

func (s *BaseServiceTestSuite) ClearStores() {
	s.clearStores()
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetStores returns all test repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetDB returns the test database client
func (s *BaseServiceTestSuite) GetDB() postgres.IClient {
	return s.db
}

// GetS3 returns the mock object storage service
func (s *BaseServiceTestSuite) GetS3() *MockS3Service {
	return s.s3
}

// GetSentry returns the test sentry service
func (s *BaseServiceTestSuite) GetSentry() *sentry.Service {
	return s.sentry
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetNow returns the current test time
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}
