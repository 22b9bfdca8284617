package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuthSession is a server-side login token. Not to be confused with
// MovieSession, which is a scheduled screening.
type AuthSession struct {
	BaseSimple
	UserID    uuid.UUID  `db:"user_id"`
	Token     uuid.UUID  `db:"token"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}
