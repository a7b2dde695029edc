package service

import (
	"testing"

	"github.com/stewardly/stewardly/internal/api/dto"
	ierr "github.com/stewardly/stewardly/internal/errors"
	"github.com/stewardly/stewardly/internal/testutil"
	"github.com/stewardly/stewardly/internal/types"
	"github.com/stretchr/testify/suite"
)

type ReportServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ReportService
}

func TestReportService(t *testing.T) {
	suite.Run(t, new(ReportServiceSuite))
}

func (s *ReportServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewReportService(testServiceParams(&s.BaseServiceTestSuite))
}

func (s *ReportServiceSuite) start() dto.ReportWorkflowResult {
	input := workflowInput(types.ActionReportStart, "", dto.StartReportRequest{
		ReportKey: "violations_by_month",
		Format:    types.ReportFormatPDF,
		Parameters: types.Metadata{
			"year": "2025",
		},
	})
	return s.service.Execute(s.GetContext(), input)
}

func (s *ReportServiceSuite) TestStartReport() {
	result := s.start()

	s.True(result.Success, result.Error)
	s.NotEmpty(result.EntityID)
	s.Equal(string(types.ReportExecutionStatusPending), result.Status)

	execution, err := s.GetStores().ReportRepo.Get(s.GetContext(), result.EntityID)
	s.NoError(err)
	s.Equal("violations_by_month", execution.ReportKey)
	s.Equal(types.ReportFormatPDF, execution.Format)
	s.Equal(types.DefaultUserID, execution.RequestedBy)
	s.Nil(execution.StartedAt)
	s.Nil(execution.CompletedAt)
}

func (s *ReportServiceSuite) TestStartRejectsUnknownFormat() {
	input := workflowInput(types.ActionReportStart, "", dto.StartReportRequest{
		ReportKey: "violations_by_month",
		Format:    types.ReportFormat("docx"),
	})
	result := s.service.Execute(s.GetContext(), input)

	s.False(result.Success)
	s.Contains(result.Error, "format")
}

func (s *ReportServiceSuite) TestCancelPendingExecution() {
	started := s.start()
	s.True(started.Success, started.Error)

	result := s.service.Execute(s.GetContext(), workflowInput(types.ActionReportCancel, started.EntityID, nil))

	s.True(result.Success, result.Error)
	s.Equal(string(types.ReportExecutionStatusCanceled), result.Status)
	s.NotNil(result.Timestamp)

	execution, err := s.GetStores().ReportRepo.Get(s.GetContext(), started.EntityID)
	s.NoError(err)
	s.Equal(types.ReportExecutionStatusCanceled, execution.State)
	s.NotNil(execution.CompletedAt)
}

func (s *ReportServiceSuite) TestCancelTerminalExecutionRejected() {
	started := s.start()
	s.True(started.Success, started.Error)
	s.NoError(s.service.MarkRunning(s.GetContext(), types.DefaultTenantID, started.EntityID))
	s.NoError(s.service.Complete(s.GetContext(), types.DefaultTenantID, started.EntityID, "https://storage.test/report.pdf"))

	result := s.service.Execute(s.GetContext(), workflowInput(types.ActionReportCancel, started.EntityID, nil))

	s.False(result.Success)
	s.Contains(result.Error, "already completed")
}

func (s *ReportServiceSuite) TestGetStatus() {
	started := s.start()
	s.True(started.Success, started.Error)

	result := s.service.Execute(s.GetContext(), workflowInput(types.ActionReportGetStatus, started.EntityID, nil))
	s.True(result.Success, result.Error)
	s.Equal(string(types.ReportExecutionStatusPending), result.Status)
	s.Nil(result.Timestamp)

	s.NoError(s.service.MarkRunning(s.GetContext(), types.DefaultTenantID, started.EntityID))

	result = s.service.Execute(s.GetContext(), workflowInput(types.ActionReportGetStatus, started.EntityID, nil))
	s.True(result.Success, result.Error)
	s.Equal(string(types.ReportExecutionStatusRunning), result.Status)
	s.NotNil(result.Timestamp)
}

// Once completed, the status timestamp reflects completion rather than start
func (s *ReportServiceSuite) TestGetStatusPrefersCompletionTime() {
	started := s.start()
	s.True(started.Success, started.Error)
	s.NoError(s.service.MarkRunning(s.GetContext(), types.DefaultTenantID, started.EntityID))
	s.NoError(s.service.Complete(s.GetContext(), types.DefaultTenantID, started.EntityID, "https://storage.test/report.pdf"))

	execution, err := s.GetStores().ReportRepo.Get(s.GetContext(), started.EntityID)
	s.NoError(err)

	result := s.service.Execute(s.GetContext(), workflowInput(types.ActionReportGetStatus, started.EntityID, nil))
	s.True(result.Success, result.Error)
	s.Equal(string(types.ReportExecutionStatusCompleted), result.Status)
	s.Equal(*execution.CompletedAt, *result.Timestamp)
}

func (s *ReportServiceSuite) TestMarkRunning() {
	started := s.start()
	s.True(started.Success, started.Error)

	s.NoError(s.service.MarkRunning(s.GetContext(), types.DefaultTenantID, started.EntityID))

	execution, err := s.GetStores().ReportRepo.Get(s.GetContext(), started.EntityID)
	s.NoError(err)
	s.Equal(types.ReportExecutionStatusRunning, execution.State)
	s.NotNil(execution.StartedAt)
}

func (s *ReportServiceSuite) TestMarkRunningNonPendingRejected() {
	started := s.start()
	s.True(started.Success, started.Error)
	s.NoError(s.service.MarkRunning(s.GetContext(), types.DefaultTenantID, started.EntityID))

	err := s.service.MarkRunning(s.GetContext(), types.DefaultTenantID, started.EntityID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *ReportServiceSuite) TestComplete() {
	started := s.start()
	s.True(started.Success, started.Error)
	s.NoError(s.service.MarkRunning(s.GetContext(), types.DefaultTenantID, started.EntityID))

	s.NoError(s.service.Complete(s.GetContext(), types.DefaultTenantID, started.EntityID, "https://storage.test/report.pdf"))

	execution, err := s.GetStores().ReportRepo.Get(s.GetContext(), started.EntityID)
	s.NoError(err)
	s.Equal(types.ReportExecutionStatusCompleted, execution.State)
	s.NotNil(execution.CompletedAt)
	s.NotNil(execution.FileURL)
	s.Equal("https://storage.test/report.pdf", *execution.FileURL)
}

// A cancel that lands before the generation finishes wins; the late
// completion and failure are silent no-ops.
func (s *ReportServiceSuite) TestCancelBeatsLateCompletion() {
	started := s.start()
	s.True(started.Success, started.Error)
	s.NoError(s.service.MarkRunning(s.GetContext(), types.DefaultTenantID, started.EntityID))

	canceled := s.service.Execute(s.GetContext(), workflowInput(types.ActionReportCancel, started.EntityID, nil))
	s.True(canceled.Success, canceled.Error)

	s.NoError(s.service.Complete(s.GetContext(), types.DefaultTenantID, started.EntityID, "https://storage.test/report.pdf"))
	s.NoError(s.service.Fail(s.GetContext(), types.DefaultTenantID, started.EntityID, "generator crashed"))

	execution, err := s.GetStores().ReportRepo.Get(s.GetContext(), started.EntityID)
	s.NoError(err)
	s.Equal(types.ReportExecutionStatusCanceled, execution.State)
	s.Nil(execution.FileURL)
	s.Nil(execution.ErrorMessage)
}

func (s *ReportServiceSuite) TestFail() {
	started := s.start()
	s.True(started.Success, started.Error)
	s.NoError(s.service.MarkRunning(s.GetContext(), types.DefaultTenantID, started.EntityID))

	s.NoError(s.service.Fail(s.GetContext(), types.DefaultTenantID, started.EntityID, "generator crashed"))

	execution, err := s.GetStores().ReportRepo.Get(s.GetContext(), started.EntityID)
	s.NoError(err)
	s.Equal(types.ReportExecutionStatusFailed, execution.State)
	s.NotNil(execution.ErrorMessage)
	s.Equal("generator crashed", *execution.ErrorMessage)
	s.NotNil(execution.CompletedAt)
}

func (s *ReportServiceSuite) TestUnknownAction() {
	result := s.service.Execute(s.GetContext(), workflowInput("restart", "", nil))

	s.False(result.Success)
	s.Equal("Unknown action: restart", result.Error)
}
