package service

import (
	"encoding/json"

	"github.com/stewardly/stewardly/internal/api/dto"
	"github.com/stewardly/stewardly/internal/testutil"
	"github.com/stewardly/stewardly/internal/types"
)

// testServiceParams builds service params backed by the suite's in-memory
// stores and mocks
func testServiceParams(base *testutil.BaseServiceTestSuite) ServiceParams {
	stores := base.GetStores()
	return ServiceParams{
		Logger:           base.GetLogger(),
		Config:           base.GetConfig(),
		DB:               base.GetDB(),
		Sentry:           base.GetSentry(),
		S3:               base.GetS3(),
		JobRepo:          stores.JobRepo,
		InvoiceRepo:      stores.InvoiceRepo,
		ViolationRepo:    stores.ViolationRepo,
		ChecklistRepo:    stores.ChecklistRepo,
		InventoryRepo:    stores.InventoryRepo,
		SignatureRepo:    stores.SignatureRepo,
		NotificationRepo: stores.NotificationRepo,
		ReportRepo:       stores.ReportRepo,
		TenantRepo:       stores.TenantRepo,
	}
}

// workflowInput assembles the uniform envelope with a marshaled payload
func workflowInput(action types.WorkflowAction, entityID string, payload any) dto.WorkflowInput {
	input := dto.WorkflowInput{
		Action:   action,
		TenantID: types.DefaultTenantID,
		ActorID:  types.DefaultUserID,
		EntityID: entityID,
	}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			panic(err)
		}
		input.Data = data
	}
	return input
}
