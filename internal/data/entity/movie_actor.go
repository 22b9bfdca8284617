package entity

import (
	"github.com/google/uuid"
)

type MovieActor struct {
	BaseSimple
	MovieID uuid.UUID `db:"movie_id"`
	ActorID uuid.UUID `db:"actor_id"`
}
