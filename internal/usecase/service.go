package usecase

import (
	"cinema-api/internal/data/repository"
	"cinema-api/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Catalog CatalogService
	Movie   MovieService
	Session SessionService
	Order   OrderService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		Catalog: NewCatalogService(repo, log),
		Movie:   NewMovieService(repo, config, log),
		Session: NewSessionService(repo, log),
		Order:   NewOrderService(repo, log),
	}
}
