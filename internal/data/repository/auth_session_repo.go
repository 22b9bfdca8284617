package repository

import (
	"context"
	"fmt"

	"cinema-api/internal/data/entity"
	"cinema-api/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AuthSessionRepository interface {
	Create(ctx context.Context, session *entity.AuthSession) error
	FindValidSession(ctx context.Context, token string) (*entity.AuthSession, error)
	Revoke(ctx context.Context, token string) error
}

type authSessionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAuthSessionRepository(db database.PgxIface, log *zap.Logger) AuthSessionRepository {
	return &authSessionRepository{
		db:  db,
		log: log.With(zap.String("repository", "auth_session")),
	}
}

func (r *authSessionRepository) Create(ctx context.Context, session *entity.AuthSession) error {
	query := `
		INSERT INTO auth_sessions (id, user_id, token, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		session.ID,
		session.UserID,
		session.Token,
		session.ExpiresAt,
		session.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create auth session",
			zap.Error(err),
			zap.String("user_id", session.UserID.String()),
		)
		return fmt.Errorf("create auth session for user %s: %w", session.UserID.String(), err)
	}

	return nil
}

func (r *authSessionRepository) FindValidSession(ctx context.Context, token string) (*entity.AuthSession, error) {
	query := `
		SELECT id, user_id, token, expires_at, revoked_at, created_at
		FROM auth_sessions
		WHERE token = $1
		  AND revoked_at IS NULL
		  AND expires_at > NOW()
	`

	var session entity.AuthSession
	err := r.db.QueryRow(ctx, query, token).Scan(
		&session.ID,
		&session.UserID,
		&session.Token,
		&session.ExpiresAt,
		&session.RevokedAt,
		&session.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find valid auth session", zap.Error(err))
		return nil, fmt.Errorf("find auth session: %w", err)
	}

	return &session, nil
}

func (r *authSessionRepository) Revoke(ctx context.Context, token string) error {
	query := `
		UPDATE auth_sessions
		SET revoked_at = NOW()
		WHERE token = $1 AND revoked_at IS NULL
	`

	result, err := r.db.Exec(ctx, query, token)
	if err != nil {
		r.log.Error("Failed to revoke auth session", zap.Error(err))
		return fmt.Errorf("revoke auth session: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("auth session: %w", ErrNotFound)
	}

	return nil
}
