package usecase

import (
	"context"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/data/repository"

	"github.com/google/uuid"
)

// Function-field stubs for the repository interfaces. Only the calls a test
// cares about get a function; anything else panics loudly.

type stubUserRepo struct {
	create      func(ctx context.Context, user *entity.User) error
	findByID    func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	findByEmail func(ctx context.Context, email string) (*entity.User, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *entity.User) error {
	return s.create(ctx, user)
}

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return s.findByID(ctx, id)
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return s.findByEmail(ctx, email)
}

type stubAuthSessionRepo struct {
	create           func(ctx context.Context, session *entity.AuthSession) error
	findValidSession func(ctx context.Context, token string) (*entity.AuthSession, error)
	revoke           func(ctx context.Context, token string) error
}

func (s *stubAuthSessionRepo) Create(ctx context.Context, session *entity.AuthSession) error {
	return s.create(ctx, session)
}

func (s *stubAuthSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.AuthSession, error) {
	return s.findValidSession(ctx, token)
}

func (s *stubAuthSessionRepo) Revoke(ctx context.Context, token string) error {
	return s.revoke(ctx, token)
}

type stubHallRepo struct {
	create   func(ctx context.Context, hall *entity.CinemaHall) error
	findAll  func(ctx context.Context) ([]*entity.CinemaHall, error)
	findByID func(ctx context.Context, id uuid.UUID) (*entity.CinemaHall, error)
}

func (s *stubHallRepo) Create(ctx context.Context, hall *entity.CinemaHall) error {
	return s.create(ctx, hall)
}

func (s *stubHallRepo) FindAll(ctx context.Context) ([]*entity.CinemaHall, error) {
	return s.findAll(ctx)
}

func (s *stubHallRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.CinemaHall, error) {
	return s.findByID(ctx, id)
}

type stubMovieRepo struct {
	create      func(ctx context.Context, movie *entity.Movie) error
	findAll     func(ctx context.Context, limit, offset int) ([]*entity.Movie, error)
	count       func(ctx context.Context) (int64, error)
	findByID    func(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	update      func(ctx context.Context, movie *entity.Movie) error
	updateImage func(ctx context.Context, id uuid.UUID, imageURL string) error
	delete      func(ctx context.Context, id uuid.UUID) error
}

func (s *stubMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	return s.create(ctx, movie)
}

func (s *stubMovieRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Movie, error) {
	return s.findAll(ctx, limit, offset)
}

func (s *stubMovieRepo) Count(ctx context.Context) (int64, error) {
	return s.count(ctx)
}

func (s *stubMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	return s.findByID(ctx, id)
}

func (s *stubMovieRepo) Update(ctx context.Context, movie *entity.Movie) error {
	return s.update(ctx, movie)
}

func (s *stubMovieRepo) UpdateImage(ctx context.Context, id uuid.UUID, imageURL string) error {
	return s.updateImage(ctx, id, imageURL)
}

func (s *stubMovieRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return s.delete(ctx, id)
}

type stubMovieGenreRepo struct {
	replaceForMovie     func(ctx context.Context, movieID uuid.UUID, genreIDs []uuid.UUID) error
	findGenresByMovieID func(ctx context.Context, movieID uuid.UUID) ([]*entity.Genre, error)
}

func (s *stubMovieGenreRepo) ReplaceForMovie(ctx context.Context, movieID uuid.UUID, genreIDs []uuid.UUID) error {
	return s.replaceForMovie(ctx, movieID, genreIDs)
}

func (s *stubMovieGenreRepo) FindGenresByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Genre, error) {
	return s.findGenresByMovieID(ctx, movieID)
}

type stubMovieActorRepo struct {
	replaceForMovie     func(ctx context.Context, movieID uuid.UUID, actorIDs []uuid.UUID) error
	findActorsByMovieID func(ctx context.Context, movieID uuid.UUID) ([]*entity.Actor, error)
}

func (s *stubMovieActorRepo) ReplaceForMovie(ctx context.Context, movieID uuid.UUID, actorIDs []uuid.UUID) error {
	return s.replaceForMovie(ctx, movieID, actorIDs)
}

func (s *stubMovieActorRepo) FindActorsByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Actor, error) {
	return s.findActorsByMovieID(ctx, movieID)
}

type stubMovieSessionRepo struct {
	create                  func(ctx context.Context, session *entity.MovieSession) error
	findByID                func(ctx context.Context, id uuid.UUID) (*entity.MovieSession, error)
	findAllWithAvailability func(ctx context.Context, filter repository.SessionFilter) ([]*repository.SessionWithAvailability, error)
	findByIDWithAvail       func(ctx context.Context, id uuid.UUID) (*repository.SessionWithAvailability, error)
	update                  func(ctx context.Context, session *entity.MovieSession) error
	delete                  func(ctx context.Context, id uuid.UUID) error
}

func (s *stubMovieSessionRepo) Create(ctx context.Context, session *entity.MovieSession) error {
	return s.create(ctx, session)
}

func (s *stubMovieSessionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.MovieSession, error) {
	return s.findByID(ctx, id)
}

func (s *stubMovieSessionRepo) FindAllWithAvailability(ctx context.Context, filter repository.SessionFilter) ([]*repository.SessionWithAvailability, error) {
	return s.findAllWithAvailability(ctx, filter)
}

func (s *stubMovieSessionRepo) FindByIDWithAvailability(ctx context.Context, id uuid.UUID) (*repository.SessionWithAvailability, error) {
	return s.findByIDWithAvail(ctx, id)
}

func (s *stubMovieSessionRepo) Update(ctx context.Context, session *entity.MovieSession) error {
	return s.update(ctx, session)
}

func (s *stubMovieSessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return s.delete(ctx, id)
}

type stubOrderRepo struct {
	createWithTickets func(ctx context.Context, order *entity.Order, tickets []*entity.Ticket) error
	findByUserID      func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error)
	countByUserID     func(ctx context.Context, userID uuid.UUID) (int64, error)
}

func (s *stubOrderRepo) CreateWithTickets(ctx context.Context, order *entity.Order, tickets []*entity.Ticket) error {
	return s.createWithTickets(ctx, order, tickets)
}

func (s *stubOrderRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	return s.findByUserID(ctx, userID, limit, offset)
}

func (s *stubOrderRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.countByUserID(ctx, userID)
}

type stubTicketRepo struct {
	findByOrderID  func(ctx context.Context, orderID uuid.UUID) ([]*repository.TicketDetail, error)
	findTakenSeats func(ctx context.Context, sessionID uuid.UUID) ([]repository.TakenSeat, error)
}

func (s *stubTicketRepo) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*repository.TicketDetail, error) {
	return s.findByOrderID(ctx, orderID)
}

func (s *stubTicketRepo) FindTakenSeats(ctx context.Context, sessionID uuid.UUID) ([]repository.TakenSeat, error) {
	return s.findTakenSeats(ctx, sessionID)
}
