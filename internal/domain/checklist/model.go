package checklist

import (
	"time"

	"github.com/stewardly/stewardly/internal/types"
)

// Checklist is an ordered set of inspection or task items attached to a job
type Checklist struct {
	ID       string         `db:"id" json:"id"`
	JobID    *string        `db:"job_id" json:"job_id,omitempty"`
	Name     string         `db:"name" json:"name"`
	Items    []*Item        `db:"-" json:"items,omitempty"`
	Metadata types.Metadata `db:"metadata" json:"metadata,omitempty"`
	types.BaseModel
}

// Item is a single checklist entry
type Item struct {
	ID          string     `db:"id" json:"id"`
	ChecklistID string     `db:"checklist_id" json:"checklist_id"`
	Title       string     `db:"title" json:"title"`
	Position    int        `db:"position" json:"position"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	CompletedBy *string    `db:"completed_by" json:"completed_by,omitempty"`
	types.BaseModel
}

// IsCompleted reports whether the item has been checked off
func (i *Item) IsCompleted() bool {
	return i.CompletedAt != nil
}
