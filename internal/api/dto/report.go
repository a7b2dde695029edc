package dto

import (
	"github.com/stewardly/stewardly/internal/domain/report"
	"github.com/stewardly/stewardly/internal/types"
	"github.com/stewardly/stewardly/internal/validator"
)

type StartReportRequest struct {
	ReportKey  string             `json:"report_key" validate:"required"`
	Format     types.ReportFormat `json:"format" validate:"required"`
	Parameters types.Metadata     `json:"parameters,omitempty"`
}

func (r *StartReportRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.Format.Validate()
}

func (r *StartReportRequest) ToExecution(requestedBy string, baseModel types.BaseModel) *report.Execution {
	return &report.Execution{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_REPORT_EXECUTION),
		ReportKey:   r.ReportKey,
		Format:      r.Format,
		State:       types.ReportExecutionStatusPending,
		Parameters:  r.Parameters,
		RequestedBy: requestedBy,
		BaseModel:   baseModel,
	}
}
