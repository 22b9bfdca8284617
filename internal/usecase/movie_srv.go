package usecase

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/data/repository"
	"cinema-api/internal/dto/request"
	"cinema-api/internal/dto/response"
	"cinema-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieService interface {
	List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error)
	Get(ctx context.Context, movieID string) (*response.MovieDetailResponse, error)
	Create(ctx context.Context, req *request.MovieRequest) (*response.MovieDetailResponse, error)
	Update(ctx context.Context, movieID string, req *request.MovieRequest) (*response.MovieDetailResponse, error)
	Patch(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieDetailResponse, error)
	Delete(ctx context.Context, movieID string) error
	UploadImage(ctx context.Context, movieID, filename string, file io.Reader) (*response.MovieDetailResponse, error)
}

type movieService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewMovieService(repo *repository.Repository, config *utils.Config, log *zap.Logger) MovieService {
	return &movieService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	movies, err := s.repo.Movie.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list movies", zap.Error(err))
		return nil, fmt.Errorf("list movies: %w", err)
	}

	total, err := s.repo.Movie.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count movies", zap.Error(err))
		return nil, fmt.Errorf("count movies: %w", err)
	}

	movieResponses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		genres, err := s.repo.MovieGenre.FindGenresByMovieID(ctx, movie.ID)
		if err != nil {
			return nil, err
		}
		actors, err := s.repo.MovieActor.FindActorsByMovieID(ctx, movie.ID)
		if err != nil {
			return nil, err
		}
		movieResponses[i] = response.MovieToResponse(movie, genres, actors)
	}

	return response.NewPaginatedResponse(movieResponses, req.Page, req.PerPage, total), nil
}

func (s *movieService) Get(ctx context.Context, movieID string) (*response.MovieDetailResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID format %s: %w", movieID, err)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s: %w", movieID, repository.ErrNotFound)
	}

	return s.buildDetailResponse(ctx, movie)
}

func (s *movieService) Create(ctx context.Context, req *request.MovieRequest) (*response.MovieDetailResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	genreIDs, err := s.resolveGenreIDs(ctx, req.GenreIDs)
	if err != nil {
		return nil, err
	}
	actorIDs, err := s.resolveActorIDs(ctx, req.ActorIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:             req.Title,
		Description:       req.Description,
		DurationInMinutes: req.DurationInMinutes,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		return nil, err
	}

	if err := s.repo.MovieGenre.ReplaceForMovie(ctx, movie.ID, genreIDs); err != nil {
		return nil, err
	}
	if err := s.repo.MovieActor.ReplaceForMovie(ctx, movie.ID, actorIDs); err != nil {
		return nil, err
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
	)

	return s.buildDetailResponse(ctx, movie)
}

func (s *movieService) Update(ctx context.Context, movieID string, req *request.MovieRequest) (*response.MovieDetailResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID format %s: %w", movieID, err)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s: %w", movieID, repository.ErrNotFound)
	}

	genreIDs, err := s.resolveGenreIDs(ctx, req.GenreIDs)
	if err != nil {
		return nil, err
	}
	actorIDs, err := s.resolveActorIDs(ctx, req.ActorIDs)
	if err != nil {
		return nil, err
	}

	movie.Title = req.Title
	movie.Description = req.Description
	movie.DurationInMinutes = req.DurationInMinutes
	movie.UpdatedAt = time.Now()

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		return nil, err
	}

	if err := s.repo.MovieGenre.ReplaceForMovie(ctx, movie.ID, genreIDs); err != nil {
		return nil, err
	}
	if err := s.repo.MovieActor.ReplaceForMovie(ctx, movie.ID, actorIDs); err != nil {
		return nil, err
	}

	s.log.Info("Movie updated", zap.String("movie_id", movie.ID.String()))

	return s.buildDetailResponse(ctx, movie)
}

func (s *movieService) Patch(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieDetailResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Patch movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID format %s: %w", movieID, err)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s: %w", movieID, repository.ErrNotFound)
	}

	if req.Title != nil {
		movie.Title = *req.Title
	}
	if req.Description != nil {
		movie.Description = *req.Description
	}
	if req.DurationInMinutes != nil {
		movie.DurationInMinutes = *req.DurationInMinutes
	}
	movie.UpdatedAt = time.Now()

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		return nil, err
	}

	if req.GenreIDs != nil {
		genreIDs, err := s.resolveGenreIDs(ctx, *req.GenreIDs)
		if err != nil {
			return nil, err
		}
		if err := s.repo.MovieGenre.ReplaceForMovie(ctx, movie.ID, genreIDs); err != nil {
			return nil, err
		}
	}
	if req.ActorIDs != nil {
		actorIDs, err := s.resolveActorIDs(ctx, *req.ActorIDs)
		if err != nil {
			return nil, err
		}
		if err := s.repo.MovieActor.ReplaceForMovie(ctx, movie.ID, actorIDs); err != nil {
			return nil, err
		}
	}

	s.log.Info("Movie patched", zap.String("movie_id", movie.ID.String()))

	return s.buildDetailResponse(ctx, movie)
}

func (s *movieService) Delete(ctx context.Context, movieID string) error {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return fmt.Errorf("invalid movie ID format %s: %w", movieID, err)
	}

	return s.repo.Movie.Delete(ctx, id)
}

// UploadImage stores the file on disk under the configured upload dir and
// records the path on the movie. The filename is slugified from the title
// with a UUID suffix so re-uploads never collide.
func (s *movieService) UploadImage(ctx context.Context, movieID, filename string, file io.Reader) (*response.MovieDetailResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID format %s: %w", movieID, err)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s: %w", movieID, repository.ErrNotFound)
	}

	if err := os.MkdirAll(s.config.Storage.UploadDir, 0755); err != nil {
		s.log.Error("Failed to create upload dir", zap.Error(err))
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	ext := filepath.Ext(filename)
	storedName := fmt.Sprintf("%s-%s%s", utils.Slugify(movie.Title), uuid.New().String(), ext)
	storedPath := filepath.Join(s.config.Storage.UploadDir, storedName)

	dst, err := os.Create(storedPath)
	if err != nil {
		s.log.Error("Failed to create image file", zap.Error(err), zap.String("path", storedPath))
		return nil, fmt.Errorf("store image: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(storedPath)
		s.log.Error("Failed to write image file", zap.Error(err), zap.String("path", storedPath))
		return nil, fmt.Errorf("store image: %w", err)
	}

	if err := s.repo.Movie.UpdateImage(ctx, id, storedPath); err != nil {
		os.Remove(storedPath)
		return nil, err
	}

	movie.ImageURL = &storedPath

	s.log.Info("Movie image uploaded",
		zap.String("movie_id", movieID),
		zap.String("path", storedPath),
	)

	return s.buildDetailResponse(ctx, movie)
}

// ==================== HELPER METHODS ====================

func (s *movieService) buildDetailResponse(ctx context.Context, movie *entity.Movie) (*response.MovieDetailResponse, error) {
	genres, err := s.repo.MovieGenre.FindGenresByMovieID(ctx, movie.ID)
	if err != nil {
		return nil, err
	}
	actors, err := s.repo.MovieActor.FindActorsByMovieID(ctx, movie.ID)
	if err != nil {
		return nil, err
	}

	resp := response.MovieToDetailResponse(movie, genres, actors)
	return &resp, nil
}

func (s *movieService) resolveGenreIDs(ctx context.Context, raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, len(raw))
	for i, idStr := range raw {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("invalid genre ID format %s: %w", idStr, err)
		}
		ids[i] = id
	}

	found, err := s.repo.Genre.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(found) != len(ids) {
		return nil, fmt.Errorf("genre: %w", repository.ErrNotFound)
	}

	return ids, nil
}

func (s *movieService) resolveActorIDs(ctx context.Context, raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, len(raw))
	for i, idStr := range raw {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("invalid actor ID format %s: %w", idStr, err)
		}
		ids[i] = id
	}

	found, err := s.repo.Actor.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(found) != len(ids) {
		return nil, fmt.Errorf("actor: %w", repository.ErrNotFound)
	}

	return ids, nil
}
