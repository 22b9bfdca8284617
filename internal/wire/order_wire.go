package wire

import (
	"cinema-api/internal/adaptor"
	"cinema-api/internal/data/repository"
	"cinema-api/pkg/middleware"
	"cinema-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Orders are always scoped to the authenticated user.
	r.Route("/api/orders", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.AuthSession, repo.User, log))

		r.Get("/", orderHandler.ListOrders)
		r.Post("/", orderHandler.CreateOrder)
	})
}
