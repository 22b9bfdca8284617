package repository

import (
	"context"
	"fmt"
	"time"

	"cinema-api/internal/data/entity"
	"cinema-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// SessionFilter narrows the availability listing. Both fields are optional
// and compose with AND.
type SessionFilter struct {
	Date    *time.Time
	MovieID *uuid.UUID
}

// SessionWithAvailability is the read model for the session list: the
// session joined to its movie and hall, annotated with the number of seats
// still free. TicketsAvailable is rows * seats_in_row minus booked tickets.
type SessionWithAvailability struct {
	Session          entity.MovieSession
	MovieTitle       string
	HallName         string
	HallRows         int
	HallSeats        int
	TicketsAvailable int
}

type MovieSessionRepository interface {
	Create(ctx context.Context, session *entity.MovieSession) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MovieSession, error)
	FindAllWithAvailability(ctx context.Context, filter SessionFilter) ([]*SessionWithAvailability, error)
	FindByIDWithAvailability(ctx context.Context, id uuid.UUID) (*SessionWithAvailability, error)
	Update(ctx context.Context, session *entity.MovieSession) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type movieSessionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieSessionRepository(db database.PgxIface, log *zap.Logger) MovieSessionRepository {
	return &movieSessionRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie_session")),
	}
}

func (r *movieSessionRepository) Create(ctx context.Context, session *entity.MovieSession) error {
	query := `
		INSERT INTO movie_sessions (id, movie_id, cinema_hall_id, show_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		session.ID,
		session.MovieID,
		session.CinemaHallID,
		session.ShowTime,
		session.CreatedAt,
		session.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create movie session",
			zap.Error(err),
			zap.String("movie_id", session.MovieID.String()),
			zap.String("cinema_hall_id", session.CinemaHallID.String()),
			zap.Time("show_time", session.ShowTime),
		)
		return fmt.Errorf("create movie session for movie %s hall %s: %w",
			session.MovieID.String(), session.CinemaHallID.String(), err)
	}

	return nil
}

func (r *movieSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MovieSession, error) {
	query := `
		SELECT id, movie_id, cinema_hall_id, show_time, created_at, updated_at
		FROM movie_sessions
		WHERE id = $1
	`

	var session entity.MovieSession
	err := r.db.QueryRow(ctx, query, id).Scan(
		&session.ID,
		&session.MovieID,
		&session.CinemaHallID,
		&session.ShowTime,
		&session.CreatedAt,
		&session.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie session by ID",
			zap.Error(err),
			zap.String("session_id", id.String()),
		)
		return nil, fmt.Errorf("find movie session by ID %s: %w", id.String(), err)
	}

	return &session, nil
}

// FindAllWithAvailability lists sessions annotated with free-seat counts.
// The count joins the hall for capacity and left-joins tickets so a session
// with no bookings still reports its full capacity.
func (r *movieSessionRepository) FindAllWithAvailability(ctx context.Context, filter SessionFilter) ([]*SessionWithAvailability, error) {
	query := `
		SELECT ms.id, ms.movie_id, ms.cinema_hall_id, ms.show_time, ms.created_at, ms.updated_at,
		       m.title, h.name, h.rows, h.seats_in_row,
		       h.rows * h.seats_in_row - COUNT(t.id) AS tickets_available
		FROM movie_sessions ms
		JOIN movies m ON m.id = ms.movie_id
		JOIN cinema_halls h ON h.id = ms.cinema_hall_id
		LEFT JOIN tickets t ON t.movie_session_id = ms.id
		WHERE ($1::date IS NULL OR ms.show_time::date = $1)
		  AND ($2::uuid IS NULL OR ms.movie_id = $2)
		GROUP BY ms.id, ms.movie_id, ms.cinema_hall_id, ms.show_time, ms.created_at, ms.updated_at,
		         m.title, h.name, h.rows, h.seats_in_row
		ORDER BY ms.show_time
	`

	var date *time.Time
	if filter.Date != nil {
		d := filter.Date.Truncate(24 * time.Hour)
		date = &d
	}

	rows, err := r.db.Query(ctx, query, date, filter.MovieID)
	if err != nil {
		r.log.Error("Failed to list movie sessions", zap.Error(err))
		return nil, fmt.Errorf("list movie sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*SessionWithAvailability
	for rows.Next() {
		var s SessionWithAvailability
		err := rows.Scan(
			&s.Session.ID,
			&s.Session.MovieID,
			&s.Session.CinemaHallID,
			&s.Session.ShowTime,
			&s.Session.CreatedAt,
			&s.Session.UpdatedAt,
			&s.MovieTitle,
			&s.HallName,
			&s.HallRows,
			&s.HallSeats,
			&s.TicketsAvailable,
		)
		if err != nil {
			r.log.Error("Failed to scan movie session row", zap.Error(err))
			return nil, fmt.Errorf("scan movie session row: %w", err)
		}
		sessions = append(sessions, &s)
	}

	return sessions, nil
}

func (r *movieSessionRepository) FindByIDWithAvailability(ctx context.Context, id uuid.UUID) (*SessionWithAvailability, error) {
	query := `
		SELECT ms.id, ms.movie_id, ms.cinema_hall_id, ms.show_time, ms.created_at, ms.updated_at,
		       m.title, h.name, h.rows, h.seats_in_row,
		       h.rows * h.seats_in_row - COUNT(t.id) AS tickets_available
		FROM movie_sessions ms
		JOIN movies m ON m.id = ms.movie_id
		JOIN cinema_halls h ON h.id = ms.cinema_hall_id
		LEFT JOIN tickets t ON t.movie_session_id = ms.id
		WHERE ms.id = $1
		GROUP BY ms.id, ms.movie_id, ms.cinema_hall_id, ms.show_time, ms.created_at, ms.updated_at,
		         m.title, h.name, h.rows, h.seats_in_row
	`

	var s SessionWithAvailability
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.Session.ID,
		&s.Session.MovieID,
		&s.Session.CinemaHallID,
		&s.Session.ShowTime,
		&s.Session.CreatedAt,
		&s.Session.UpdatedAt,
		&s.MovieTitle,
		&s.HallName,
		&s.HallRows,
		&s.HallSeats,
		&s.TicketsAvailable,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie session with availability",
			zap.Error(err),
			zap.String("session_id", id.String()),
		)
		return nil, fmt.Errorf("find movie session %s with availability: %w", id.String(), err)
	}

	return &s, nil
}

func (r *movieSessionRepository) Update(ctx context.Context, session *entity.MovieSession) error {
	query := `
		UPDATE movie_sessions
		SET movie_id = $2, cinema_hall_id = $3, show_time = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		session.ID,
		session.MovieID,
		session.CinemaHallID,
		session.ShowTime,
		session.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update movie session",
			zap.Error(err),
			zap.String("session_id", session.ID.String()),
		)
		return fmt.Errorf("update movie session %s: %w", session.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie session %s: %w", session.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *movieSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM movie_sessions WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete movie session",
			zap.Error(err),
			zap.String("session_id", id.String()),
		)
		return fmt.Errorf("delete movie session %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie session %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Movie session deleted", zap.String("session_id", id.String()))
	return nil
}
