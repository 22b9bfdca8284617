package wire

import (
	"cinema-api/internal/adaptor"
	"cinema-api/internal/data/repository"
	"cinema-api/pkg/middleware"
	"cinema-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/movies", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.AuthSession, repo.User, log))

		r.Get("/", movieHandler.ListMovies)
		r.Get("/{id}", movieHandler.GetMovie)

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.Admin(log))

			r.Post("/", movieHandler.CreateMovie)
			r.Put("/{id}", movieHandler.UpdateMovie)
			r.Patch("/{id}", movieHandler.PatchMovie)
			r.Delete("/{id}", movieHandler.DeleteMovie)
			r.Post("/{id}/upload_image", movieHandler.UploadImage)
		})
	})
}
