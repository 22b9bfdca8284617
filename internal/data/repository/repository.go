package repository

import (
	"cinema-api/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	AuthSession  AuthSessionRepository
	Genre        GenreRepository
	Actor        ActorRepository
	Hall         HallRepository
	Movie        MovieRepository
	MovieGenre   MovieGenreRepository
	MovieActor   MovieActorRepository
	MovieSession MovieSessionRepository
	Order        OrderRepository
	Ticket       TicketRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		AuthSession:  NewAuthSessionRepository(db, log),
		Genre:        NewGenreRepository(db, log),
		Actor:        NewActorRepository(db, log),
		Hall:         NewHallRepository(db, log),
		Movie:        NewMovieRepository(db, log),
		MovieGenre:   NewMovieGenreRepository(db, log),
		MovieActor:   NewMovieActorRepository(db, log),
		MovieSession: NewMovieSessionRepository(db, log),
		Order:        NewOrderRepository(db, log),
		Ticket:       NewTicketRepository(db, log),
	}
}
