package entity

import (
	"github.com/google/uuid"
)

// Order groups one or more tickets bought together by one user.
// Orders are created atomically with their tickets and never updated.
type Order struct {
	BaseSimple
	UserID uuid.UUID `db:"user_id"`
}
