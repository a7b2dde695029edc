package tenant

import (
	"time"

	"github.com/stewardly/stewardly/internal/types"
)

// Tenant is one customer organization; its ID is the row-level partition key
// isolating its data from every other tenant's.
type Tenant struct {
	ID        string       `db:"id" json:"id"`
	Name      string       `db:"name" json:"name"`
	Status    types.Status `db:"status" json:"status"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt time.Time    `db:"updated_at" json:"updated_at"`
}
