package repository

import (
	"context"
	"errors"
	"fmt"

	"cinema-api/internal/data/entity"
	"cinema-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// createOrderMaxRetries bounds how many times a serialization failure is
// retried before the conflict is surfaced to the caller.
const createOrderMaxRetries = 3

type OrderRepository interface {
	// CreateWithTickets persists the order and all its tickets atomically.
	// Returns ErrSeatTaken when any requested seat is already occupied,
	// including when a concurrent transaction wins the race at commit time.
	CreateWithTickets(ctx context.Context, order *entity.Order, tickets []*entity.Ticket) error
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

func (r *orderRepository) CreateWithTickets(ctx context.Context, order *entity.Order, tickets []*entity.Ticket) error {
	var err error
	for attempt := 0; attempt < createOrderMaxRetries; attempt++ {
		err = r.createWithTicketsOnce(ctx, order, tickets)
		if err == nil || !isSerializationFailure(err) {
			return err
		}
		r.log.Warn("Order creation serialization failure, retrying",
			zap.Int("attempt", attempt+1),
			zap.String("order_id", order.ID.String()),
		)
	}

	// Seats raced away createOrderMaxRetries times in a row; treat as a
	// conflict the caller can resubmit.
	return fmt.Errorf("order %s: %w", order.ID.String(), ErrSeatTaken)
}

func (r *orderRepository) createWithTicketsOnce(ctx context.Context, order *entity.Order, tickets []*entity.Ticket) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("begin order transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Re-check each seat inside the transaction. The unique constraint on
	// (movie_session_id, row, seat) remains the last line of defense.
	for _, ticket := range tickets {
		var exists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM tickets WHERE movie_session_id = $1 AND "row" = $2 AND seat = $3)`,
			ticket.MovieSessionID, ticket.Row, ticket.Seat,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("check seat (%d, %d) for session %s: %w",
				ticket.Row, ticket.Seat, ticket.MovieSessionID.String(), err)
		}
		if exists {
			return fmt.Errorf("session %s row %d seat %d: %w",
				ticket.MovieSessionID.String(), ticket.Row, ticket.Seat, ErrSeatTaken)
		}
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO orders (id, user_id, created_at) VALUES ($1, $2, $3)`,
		order.ID, order.UserID, order.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("user_id", order.UserID.String()),
		)
		return fmt.Errorf("create order for user %s: %w", order.UserID.String(), err)
	}

	for _, ticket := range tickets {
		_, err := tx.Exec(ctx,
			`INSERT INTO tickets (id, movie_session_id, order_id, "row", seat, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			ticket.ID, ticket.MovieSessionID, ticket.OrderID, ticket.Row, ticket.Seat, ticket.CreatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("session %s row %d seat %d: %w",
					ticket.MovieSessionID.String(), ticket.Row, ticket.Seat, ErrSeatTaken)
			}
			r.log.Error("Failed to create ticket",
				zap.Error(err),
				zap.String("order_id", order.ID.String()),
				zap.String("session_id", ticket.MovieSessionID.String()),
				zap.Int("row", ticket.Row),
				zap.Int("seat", ticket.Seat),
			)
			return fmt.Errorf("create ticket for order %s: %w", order.ID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("order %s: %w", order.ID.String(), ErrSeatTaken)
		}
		return fmt.Errorf("commit order %s: %w", order.ID.String(), err)
	}

	return nil
}

func (r *orderRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, user_id, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find orders by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find orders by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		var order entity.Order
		if err := rows.Scan(&order.ID, &order.UserID, &order.CreatedAt); err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, &order)
	}

	return orders, nil
}

func (r *orderRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM orders WHERE user_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		r.log.Error("Failed to count orders by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count orders by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrUniqueViolation
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrSerializationFailure
}
