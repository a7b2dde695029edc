package service

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/stewardly/stewardly/internal/api/dto"
	"github.com/stewardly/stewardly/internal/domain/checklist"
	ierr "github.com/stewardly/stewardly/internal/errors"
	"github.com/stewardly/stewardly/internal/types"
)

// ChecklistService handles checklist workflow invocations
type ChecklistService interface {
	Execute(ctx context.Context, input dto.WorkflowInput) dto.ChecklistWorkflowResult
}

type checklistService struct {
	ServiceParams
	handlers map[types.WorkflowAction]func(ctx context.Context, input dto.WorkflowInput) (dto.ChecklistWorkflowResult, error)
}

func NewChecklistService(params ServiceParams) ChecklistService {
	s := &checklistService{ServiceParams: params}
	s.handlers = map[types.WorkflowAction]func(ctx context.Context, input dto.WorkflowInput) (dto.ChecklistWorkflowResult, error){
		types.ActionChecklistCreate:       s.create,
		types.ActionChecklistAddItems:     s.addItems,
		types.ActionChecklistCompleteItem: s.completeItem,
		types.ActionChecklistDelete:       s.delete,
	}
	return s
}

func (s *checklistService) Execute(ctx context.Context, input dto.WorkflowInput) dto.ChecklistWorkflowResult {
	if err := input.Validate(); err != nil {
		return dto.ChecklistWorkflowResult{WorkflowResult: dto.FailureResult(err.Error())}
	}

	handler, ok := s.handlers[input.Action]
	if !ok {
		return dto.ChecklistWorkflowResult{WorkflowResult: dto.FailureResult(unknownActionError(input.Action))}
	}

	result, err := handler(actorContext(ctx, input), input)
	if err != nil {
		return dto.ChecklistWorkflowResult{WorkflowResult: dto.FailureResult(resolveError(err, s.Sentry))}
	}
	return result
}

func (s *checklistService) create(ctx context.Context, input dto.WorkflowInput) (dto.ChecklistWorkflowResult, error) {
	req, err := decodeRequest[dto.CreateChecklistRequest](input.Data)
	if err != nil {
		return dto.ChecklistWorkflowResult{}, err
	}

	newChecklist := req.ToChecklist(types.GetDefaultBaseModel(ctx))

	err = s.DB.WithTenantTx(ctx, input.TenantID, "checklist.create", func(ctx context.Context) error {
		return s.ChecklistRepo.CreateWithItems(ctx, newChecklist)
	})
	if err != nil {
		return dto.ChecklistWorkflowResult{}, err
	}

	s.Logger.Infow("created checklist",
		"tenant_id", input.TenantID,
		"checklist_id", newChecklist.ID,
		"item_count", len(newChecklist.Items),
	)

	return dto.ChecklistWorkflowResult{
		WorkflowResult: dto.SuccessResult(newChecklist.ID),
		AddedCount:     len(newChecklist.Items),
	}, nil
}

func (s *checklistService) addItems(ctx context.Context, input dto.WorkflowInput) (dto.ChecklistWorkflowResult, error) {
	if err := requireEntityID(input); err != nil {
		return dto.ChecklistWorkflowResult{}, err
	}

	req, err := decodeRequest[dto.AddChecklistItemsRequest](input.Data)
	if err != nil {
		return dto.ChecklistWorkflowResult{}, err
	}

	var added int
	err = s.DB.WithTenantTx(ctx, input.TenantID, "checklist.add_items", func(ctx context.Context) error {
		existing, err := s.ChecklistRepo.Get(ctx, input.EntityID)
		if err != nil {
			return err
		}

		// New items slot in after the current highest position
		nextPosition := 0
		for _, item := range existing.Items {
			if item.Position > nextPosition {
				nextPosition = item.Position
			}
		}

		baseModel := types.GetDefaultBaseModel(ctx)
		items := lo.Map(req.Items, func(item *dto.ChecklistItemRequest, i int) *checklist.Item {
			return item.ToItem(existing.ID, nextPosition+i+1, baseModel)
		})

		if err := s.ChecklistRepo.AddItems(ctx, existing.ID, items); err != nil {
			return err
		}
		added = len(items)
		return nil
	})
	if err != nil {
		return dto.ChecklistWorkflowResult{}, err
	}

	return dto.ChecklistWorkflowResult{
		WorkflowResult: dto.SuccessResult(input.EntityID),
		AddedCount:     added,
	}, nil
}

func (s *checklistService) completeItem(ctx context.Context, input dto.WorkflowInput) (dto.ChecklistWorkflowResult, error) {
	if err := requireEntityID(input); err != nil {
		return dto.ChecklistWorkflowResult{}, err
	}

	req, err := decodeRequest[dto.CompleteChecklistItemRequest](input.Data)
	if err != nil {
		return dto.ChecklistWorkflowResult{}, err
	}

	err = s.DB.WithTenantTx(ctx, input.TenantID, "checklist.complete_item", func(ctx context.Context) error {
		existing, err := s.ChecklistRepo.Get(ctx, input.EntityID)
		if err != nil {
			return err
		}

		item, found := lo.Find(existing.Items, func(item *checklist.Item) bool {
			return item.ID == req.ItemID
		})
		if !found {
			return ierr.NewErrorf("checklist item %s not found in checklist %s", req.ItemID, existing.ID).
				WithHint("Checklist item not found").
				Mark(ierr.ErrNotFound)
		}

		// Completing an already-completed item is a no-op
		if item.IsCompleted() {
			return nil
		}

		now := time.Now().UTC()
		item.CompletedAt = &now
		item.CompletedBy = lo.ToPtr(input.ActorID)
		item.UpdatedAt = now
		item.UpdatedBy = input.ActorID
		return s.ChecklistRepo.UpdateItem(ctx, item)
	})
	if err != nil {
		return dto.ChecklistWorkflowResult{}, err
	}

	return dto.ChecklistWorkflowResult{WorkflowResult: dto.SuccessResult(input.EntityID)}, nil
}

func (s *checklistService) delete(ctx context.Context, input dto.WorkflowInput) (dto.ChecklistWorkflowResult, error) {
	if err := requireEntityID(input); err != nil {
		return dto.ChecklistWorkflowResult{}, err
	}

	err := s.DB.WithTenantTx(ctx, input.TenantID, "checklist.delete", func(ctx context.Context) error {
		if _, err := s.ChecklistRepo.Get(ctx, input.EntityID); err != nil {
			return err
		}
		return s.ChecklistRepo.Delete(ctx, input.EntityID)
	})
	if err != nil {
		return dto.ChecklistWorkflowResult{}, err
	}

	return dto.ChecklistWorkflowResult{WorkflowResult: dto.SuccessResult(input.EntityID)}, nil
}
