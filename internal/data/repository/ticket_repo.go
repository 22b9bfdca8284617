package repository

import (
	"context"
	"fmt"
	"time"

	"cinema-api/internal/data/entity"
	"cinema-api/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TicketDetail joins a ticket to its session, movie and hall for display in
// order listings.
type TicketDetail struct {
	Ticket     entity.Ticket
	ShowTime   time.Time
	MovieTitle string
	HallName   string
}

// TakenSeat identifies an occupied place within one session's hall.
type TakenSeat struct {
	Row  int
	Seat int
}

type TicketRepository interface {
	FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*TicketDetail, error)
	FindTakenSeats(ctx context.Context, sessionID uuid.UUID) ([]TakenSeat, error)
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

func (r *ticketRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*TicketDetail, error) {
	query := `
		SELECT t.id, t.movie_session_id, t.order_id, t."row", t.seat, t.created_at,
		       ms.show_time, m.title, h.name
		FROM tickets t
		JOIN movie_sessions ms ON ms.id = t.movie_session_id
		JOIN movies m ON m.id = ms.movie_id
		JOIN cinema_halls h ON h.id = ms.cinema_hall_id
		WHERE t.order_id = $1
		ORDER BY t.created_at, t."row", t.seat
	`

	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		r.log.Error("Failed to find tickets by order ID",
			zap.Error(err),
			zap.String("order_id", orderID.String()),
		)
		return nil, fmt.Errorf("find tickets for order %s: %w", orderID.String(), err)
	}
	defer rows.Close()

	var tickets []*TicketDetail
	for rows.Next() {
		var t TicketDetail
		err := rows.Scan(
			&t.Ticket.ID,
			&t.Ticket.MovieSessionID,
			&t.Ticket.OrderID,
			&t.Ticket.Row,
			&t.Ticket.Seat,
			&t.Ticket.CreatedAt,
			&t.ShowTime,
			&t.MovieTitle,
			&t.HallName,
		)
		if err != nil {
			r.log.Error("Failed to scan ticket row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket row: %w", err)
		}
		tickets = append(tickets, &t)
	}

	return tickets, nil
}

func (r *ticketRepository) FindTakenSeats(ctx context.Context, sessionID uuid.UUID) ([]TakenSeat, error) {
	query := `
		SELECT "row", seat
		FROM tickets
		WHERE movie_session_id = $1
		ORDER BY "row", seat
	`

	rows, err := r.db.Query(ctx, query, sessionID)
	if err != nil {
		r.log.Error("Failed to find taken seats by session ID",
			zap.Error(err),
			zap.String("session_id", sessionID.String()),
		)
		return nil, fmt.Errorf("find taken seats for session %s: %w", sessionID.String(), err)
	}
	defer rows.Close()

	var seats []TakenSeat
	for rows.Next() {
		var s TakenSeat
		if err := rows.Scan(&s.Row, &s.Seat); err != nil {
			r.log.Error("Failed to scan taken seat row", zap.Error(err))
			return nil, fmt.Errorf("scan taken seat row: %w", err)
		}
		seats = append(seats, s)
	}

	return seats, nil
}
