package repository

import (
	"context"
	"fmt"

	"cinema-api/internal/data/entity"
	"cinema-api/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieActorRepository interface {
	ReplaceForMovie(ctx context.Context, movieID uuid.UUID, actorIDs []uuid.UUID) error
	FindActorsByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Actor, error)
}

type movieActorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieActorRepository(db database.PgxIface, log *zap.Logger) MovieActorRepository {
	return &movieActorRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie_actor")),
	}
}

func (r *movieActorRepository) ReplaceForMovie(ctx context.Context, movieID uuid.UUID, actorIDs []uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin replace actors for movie %s: %w", movieID.String(), err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM movie_actors WHERE movie_id = $1`, movieID); err != nil {
		r.log.Error("Failed to clear movie actors",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return fmt.Errorf("clear actors for movie %s: %w", movieID.String(), err)
	}

	for _, actorID := range actorIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO movie_actors (id, movie_id, actor_id, created_at) VALUES ($1, $2, $3, NOW())`,
			uuid.New(), movieID, actorID,
		)
		if err != nil {
			r.log.Error("Failed to link actor to movie",
				zap.Error(err),
				zap.String("movie_id", movieID.String()),
				zap.String("actor_id", actorID.String()),
			)
			return fmt.Errorf("link actor %s to movie %s: %w", actorID.String(), movieID.String(), err)
		}
	}

	return tx.Commit(ctx)
}

func (r *movieActorRepository) FindActorsByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Actor, error) {
	query := `
		SELECT a.id, a.first_name, a.last_name, a.created_at
		FROM actors a
		JOIN movie_actors ma ON ma.actor_id = a.id
		WHERE ma.movie_id = $1
		ORDER BY a.last_name, a.first_name
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find actors by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find actors for movie %s: %w", movieID.String(), err)
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
