package entity

import (
	"github.com/google/uuid"
)

// Ticket reserves one seat for one session. (movie_session_id, row, seat)
// is unique across all tickets; both references are immutable.
type Ticket struct {
	BaseSimple
	MovieSessionID uuid.UUID `db:"movie_session_id"`
	OrderID        uuid.UUID `db:"order_id"`
	Row            int       `db:"row"`
	Seat           int       `db:"seat"`
}
