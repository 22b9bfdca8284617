package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/data/repository"
	"cinema-api/internal/dto/request"
	"cinema-api/internal/dto/response"
	"cinema-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogService covers the flat catalog entities: genres, actors and
// cinema halls. Movies have their own service because of the relation
// handling and image upload.
type CatalogService interface {
	ListGenres(ctx context.Context) ([]response.GenreResponse, error)
	CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error)

	ListActors(ctx context.Context) ([]response.ActorResponse, error)
	CreateActor(ctx context.Context, req *request.ActorRequest) (*response.ActorResponse, error)

	ListHalls(ctx context.Context) ([]response.CinemaHallResponse, error)
	CreateHall(ctx context.Context, req *request.CinemaHallRequest) (*response.CinemaHallResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListGenres(ctx context.Context) ([]response.GenreResponse, error) {
	genres, err := s.repo.Genre.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list genres", zap.Error(err))
		return nil, fmt.Errorf("list genres: %w", err)
	}

	responses := make([]response.GenreResponse, len(genres))
	for i, genre := range genres {
		responses[i] = response.GenreToResponse(genre)
	}

	return responses, nil
}

func (s *catalogService) CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create genre validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	genre := &entity.Genre{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name: req.Name,
	}

	if err := s.repo.Genre.Create(ctx, genre); err != nil {
		return nil, err
	}

	s.log.Info("Genre created",
		zap.String("genre_id", genre.ID.String()),
		zap.String("name", genre.Name),
	)

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *catalogService) ListActors(ctx context.Context) ([]response.ActorResponse, error) {
	actors, err := s.repo.Actor.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list actors", zap.Error(err))
		return nil, fmt.Errorf("list actors: %w", err)
	}

	responses := make([]response.ActorResponse, len(actors))
	for i, actor := range actors {
		responses[i] = response.ActorToResponse(actor)
	}

	return responses, nil
}

func (s *catalogService) CreateActor(ctx context.Context, req *request.ActorRequest) (*response.ActorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create actor validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	actor := &entity.Actor{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	if err := s.repo.Actor.Create(ctx, actor); err != nil {
		return nil, err
	}

	s.log.Info("Actor created",
		zap.String("actor_id", actor.ID.String()),
		zap.String("full_name", actor.FullName()),
	)

	resp := response.ActorToResponse(actor)
	return &resp, nil
}

func (s *catalogService) ListHalls(ctx context.Context) ([]response.CinemaHallResponse, error) {
	halls, err := s.repo.Hall.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list cinema halls", zap.Error(err))
		return nil, fmt.Errorf("list cinema halls: %w", err)
	}

	responses := make([]response.CinemaHallResponse, len(halls))
	for i, hall := range halls {
		responses[i] = response.CinemaHallToResponse(hall)
	}

	return responses, nil
}

func (s *catalogService) CreateHall(ctx context.Context, req *request.CinemaHallRequest) (*response.CinemaHallResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create cinema hall validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	hall := &entity.CinemaHall{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:       req.Name,
		Rows:       req.Rows,
		SeatsInRow: req.SeatsInRow,
	}

	if err := s.repo.Hall.Create(ctx, hall); err != nil {
		return nil, err
	}

	s.log.Info("Cinema hall created",
		zap.String("hall_id", hall.ID.String()),
		zap.String("name", hall.Name),
		zap.Int("capacity", hall.Capacity()),
	)

	resp := response.CinemaHallToResponse(hall)
	return &resp, nil
}
