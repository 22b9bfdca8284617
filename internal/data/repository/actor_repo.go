package repository

import (
	"context"
	"fmt"

	"cinema-api/internal/data/entity"
	"cinema-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ActorRepository interface {
	Create(ctx context.Context, actor *entity.Actor) error
	FindAll(ctx context.Context) ([]*entity.Actor, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Actor, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Actor, error)
}

type actorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewActorRepository(db database.PgxIface, log *zap.Logger) ActorRepository {
	return &actorRepository{
		db:  db,
		log: log.With(zap.String("repository", "actor")),
	}
}

func (r *actorRepository) Create(ctx context.Context, actor *entity.Actor) error {
	query := `
		INSERT INTO actors (id, first_name, last_name, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, actor.ID, actor.FirstName, actor.LastName, actor.CreatedAt)
	if err != nil {
		r.log.Error("Failed to create actor",
			zap.Error(err),
			zap.String("first_name", actor.FirstName),
			zap.String("last_name", actor.LastName),
		)
		return fmt.Errorf("create actor %s %s: %w", actor.FirstName, actor.LastName, err)
	}

	return nil
}

func (r *actorRepository) FindAll(ctx context.Context) ([]*entity.Actor, error) {
	query := `
		SELECT id, first_name, last_name, created_at
		FROM actors
		ORDER BY last_name, first_name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list actors", zap.Error(err))
		return nil, fmt.Errorf("list actors: %w", err)
	}
	defer rows.Close()

	var actors []*entity.Actor
	for rows.Next() {
		var actor entity.Actor
		if err := rows.Scan(&actor.ID, &actor.FirstName, &actor.LastName, &actor.CreatedAt); err != nil {
			r.log.Error("Failed to scan actor row", zap.Error(err))
			return nil, fmt.Errorf("scan actor row: %w", err)
		}
		actors = append(actors, &actor)
	}

	return actors, nil
}

func (r *actorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Actor, error) {
	query := `
		SELECT id, first_name, last_name, created_at
		FROM actors
		WHERE id = $1
	`

	var actor entity.Actor
	err := r.db.QueryRow(ctx, query, id).Scan(&actor.ID, &actor.FirstName, &actor.LastName, &actor.CreatedAt)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find actor by ID",
			zap.Error(err),
			zap.String("actor_id", id.String()),
		)
		return nil, fmt.Errorf("find actor by ID %s: %w", id.String(), err)
	}

	return &actor, nil
}

func (r *actorRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Actor, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, first_name, last_name, created_at
		FROM actors
		WHERE id = ANY($1)
		ORDER BY last_name, first_name
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to find actors by IDs", zap.Error(err))
		return nil, fmt.Errorf("find actors by IDs: %w", err)
	}
	defer rows.Close()

	var actors []*entity.Actor
	for rows.Next() {
		var actor entity.Actor
		if err := rows.Scan(&actor.ID, &actor.FirstName, &actor.LastName, &actor.CreatedAt); err != nil {
			r.log.Error("Failed to scan actor row", zap.Error(err))
			return nil, fmt.Errorf("scan actor row: %w", err)
		}
		actors = append(actors, &actor)
	}

	return actors, nil
}
