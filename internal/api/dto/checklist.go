package dto

import (
	"github.com/samber/lo"
	"github.com/stewardly/stewardly/internal/domain/checklist"
	"github.com/stewardly/stewardly/internal/types"
	"github.com/stewardly/stewardly/internal/validator"
)

type ChecklistItemRequest struct {
	Title    string `json:"title" validate:"required"`
	Position int    `json:"position"`
}

func (r *ChecklistItemRequest) ToItem(checklistID string, position int, baseModel types.BaseModel) *checklist.Item {
	if r.Position > 0 {
		position = r.Position
	}
	return &checklist.Item{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CHECKLIST_ITEM),
		ChecklistID: checklistID,
		Title:       r.Title,
		Position:    position,
		BaseModel:   baseModel,
	}
}

type CreateChecklistRequest struct {
	Name     string                  `json:"name" validate:"required"`
	JobID    *string                 `json:"job_id,omitempty"`
	Items    []*ChecklistItemRequest `json:"items,omitempty" validate:"dive"`
	Metadata types.Metadata          `json:"metadata,omitempty"`
}

func (r *CreateChecklistRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateChecklistRequest) ToChecklist(baseModel types.BaseModel) *checklist.Checklist {
	cl := &checklist.Checklist{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CHECKLIST),
		JobID:     r.JobID,
		Name:      r.Name,
		Metadata:  r.Metadata,
		BaseModel: baseModel,
	}

	cl.Items = lo.Map(r.Items, func(item *ChecklistItemRequest, i int) *checklist.Item {
		return item.ToItem(cl.ID, i+1, baseModel)
	})

	return cl
}

type AddChecklistItemsRequest struct {
	Items []*ChecklistItemRequest `json:"items" validate:"required,min=1,dive"`
}

func (r *AddChecklistItemsRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type CompleteChecklistItemRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}

func (r *CompleteChecklistItemRequest) Validate() error {
	return validator.ValidateRequest(r)
}
