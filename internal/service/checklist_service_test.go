package service

import (
	"testing"

	"github.com/stewardly/stewardly/internal/api/dto"
	"github.com/stewardly/stewardly/internal/testutil"
	"github.com/stewardly/stewardly/internal/types"
	"github.com/stretchr/testify/suite"
)

type ChecklistServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ChecklistService
}

func TestChecklistService(t *testing.T) {
	suite.Run(t, new(ChecklistServiceSuite))
}

func (s *ChecklistServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewChecklistService(testServiceParams(&s.BaseServiceTestSuite))
}

func (s *ChecklistServiceSuite) createChecklist(titles ...string) dto.ChecklistWorkflowResult {
	items := make([]*dto.ChecklistItemRequest, len(titles))
	for i, title := range titles {
		items[i] = &dto.ChecklistItemRequest{Title: title}
	}
	input := workflowInput(types.ActionChecklistCreate, "", dto.CreateChecklistRequest{
		Name:  "Move-out inspection",
		Items: items,
	})
	return s.service.Execute(s.GetContext(), input)
}

func (s *ChecklistServiceSuite) TestCreateChecklistWithItems() {
	result := s.createChecklist("Check locks", "Check smoke detectors", "Read meters")

	s.True(result.Success, result.Error)
	s.Equal(3, result.AddedCount)

	created, err := s.GetStores().ChecklistRepo.Get(s.GetContext(), result.EntityID)
	s.NoError(err)
	s.Equal("Move-out inspection", created.Name)
	s.Len(created.Items, 3)
	for i, item := range created.Items {
		s.Equal(i+1, item.Position)
		s.False(item.IsCompleted())
	}
}

func (s *ChecklistServiceSuite) TestCreateEmptyChecklist() {
	result := s.createChecklist()

	s.True(result.Success, result.Error)
	s.Equal(0, result.AddedCount)
}

func (s *ChecklistServiceSuite) TestAddItemsAppendsAfterHighestPosition() {
	created := s.createChecklist("First", "Second")

	input := workflowInput(types.ActionChecklistAddItems, created.EntityID, dto.AddChecklistItemsRequest{
		Items: []*dto.ChecklistItemRequest{
			{Title: "Third"},
			{Title: "Fourth"},
		},
	})
	result := s.service.Execute(s.GetContext(), input)

	s.True(result.Success, result.Error)
	s.Equal(2, result.AddedCount)

	updated, err := s.GetStores().ChecklistRepo.Get(s.GetContext(), created.EntityID)
	s.NoError(err)
	s.Len(updated.Items, 4)
	s.Equal(3, updated.Items[2].Position)
	s.Equal(4, updated.Items[3].Position)
	s.Equal("Third", updated.Items[2].Title)
}

func (s *ChecklistServiceSuite) TestCompleteItem() {
	created := s.createChecklist("Inspect roof")
	checklist, err := s.GetStores().ChecklistRepo.Get(s.GetContext(), created.EntityID)
	s.NoError(err)
	itemID := checklist.Items[0].ID

	input := workflowInput(types.ActionChecklistCompleteItem, created.EntityID, dto.CompleteChecklistItemRequest{
		ItemID: itemID,
	})
	result := s.service.Execute(s.GetContext(), input)

	s.True(result.Success, result.Error)

	updated, err := s.GetStores().ChecklistRepo.Get(s.GetContext(), created.EntityID)
	s.NoError(err)
	s.True(updated.Items[0].IsCompleted())
	s.NotNil(updated.Items[0].CompletedBy)
	s.Equal(types.DefaultUserID, *updated.Items[0].CompletedBy)
}

// Completing an already-completed item is a no-op that keeps the original
// completion timestamp.
func (s *ChecklistServiceSuite) TestCompleteItemIdempotent() {
	created := s.createChecklist("Inspect roof")
	checklist, err := s.GetStores().ChecklistRepo.Get(s.GetContext(), created.EntityID)
	s.NoError(err)
	itemID := checklist.Items[0].ID

	input := workflowInput(types.ActionChecklistCompleteItem, created.EntityID, dto.CompleteChecklistItemRequest{
		ItemID: itemID,
	})
	first := s.service.Execute(s.GetContext(), input)
	s.True(first.Success, first.Error)

	afterFirst, err := s.GetStores().ChecklistRepo.Get(s.GetContext(), created.EntityID)
	s.NoError(err)
	completedAt := afterFirst.Items[0].CompletedAt

	second := s.service.Execute(s.GetContext(), input)
	s.True(second.Success, second.Error)

	afterSecond, err := s.GetStores().ChecklistRepo.Get(s.GetContext(), created.EntityID)
	s.NoError(err)
	s.Equal(completedAt, afterSecond.Items[0].CompletedAt)
}

func (s *ChecklistServiceSuite) TestCompleteMissingItem() {
	created := s.createChecklist("Inspect roof")

	input := workflowInput(types.ActionChecklistCompleteItem, created.EntityID, dto.CompleteChecklistItemRequest{
		ItemID: "chk_item_missing",
	})
	result := s.service.Execute(s.GetContext(), input)

	s.False(result.Success)
	s.Contains(result.Error, "not found")
}

func (s *ChecklistServiceSuite) TestDeleteChecklist() {
	created := s.createChecklist("Inspect roof")

	result := s.service.Execute(s.GetContext(), workflowInput(types.ActionChecklistDelete, created.EntityID, nil))
	s.True(result.Success, result.Error)

	_, err := s.GetStores().ChecklistRepo.Get(s.GetContext(), created.EntityID)
	s.Error(err)
}

func (s *ChecklistServiceSuite) TestUnknownAction() {
	result := s.service.Execute(s.GetContext(), workflowInput("reorder", "", nil))

	s.False(result.Success)
	s.Equal("Unknown action: reorder", result.Error)
}
