package wire

import (
	"cinema-api/internal/adaptor"
	"cinema-api/internal/data/repository"
	"cinema-api/pkg/middleware"
	"cinema-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSession(
	r chi.Router,
	sessionHandler *adaptor.SessionHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/movie-sessions", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.AuthSession, repo.User, log))

		r.Get("/", sessionHandler.ListSessions)
		r.Get("/{id}", sessionHandler.GetSession)

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.Admin(log))

			r.Post("/", sessionHandler.CreateSession)
			r.Put("/{id}", sessionHandler.UpdateSession)
			r.Delete("/{id}", sessionHandler.DeleteSession)
		})
	})
}
