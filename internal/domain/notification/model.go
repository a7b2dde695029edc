package notification

import (
	"time"

	"github.com/stewardly/stewardly/internal/types"
)

// Notification is an outbound message to a user or resident
type Notification struct {
	ID          string                    `db:"id" json:"id"`
	RecipientID string                    `db:"recipient_id" json:"recipient_id"`
	Channel     types.NotificationChannel `db:"channel" json:"channel"`
	Subject     string                    `db:"subject" json:"subject"`
	Body        string                    `db:"body" json:"body"`
	State       types.NotificationStatus  `db:"state" json:"state"`
	SentAt      *time.Time                `db:"sent_at" json:"sent_at,omitempty"`
	ReadAt      *time.Time                `db:"read_at" json:"read_at,omitempty"`
	types.BaseModel
}
