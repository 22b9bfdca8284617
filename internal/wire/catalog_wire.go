package wire

import (
	"cinema-api/internal/adaptor"
	"cinema-api/internal/data/repository"
	"cinema-api/pkg/middleware"
	"cinema-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// All catalog routes require authentication; writes require admin.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.AuthSession, repo.User, log))

		r.Get("/api/genres", catalogHandler.ListGenres)
		r.Get("/api/actors", catalogHandler.ListActors)
		r.Get("/api/cinema-halls", catalogHandler.ListHalls)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Admin(log))

			r.Post("/api/genres", catalogHandler.CreateGenre)
			r.Post("/api/actors", catalogHandler.CreateActor)
			r.Post("/api/cinema-halls", catalogHandler.CreateHall)
		})
	})
}
