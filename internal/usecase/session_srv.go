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

// sessionDateLayout is the accepted format of the ?date= filter.
const sessionDateLayout = "2006-01-02"

type SessionService interface {
	List(ctx context.Context, filter *request.SessionFilterRequest) ([]response.MovieSessionResponse, error)
	Get(ctx context.Context, sessionID string) (*response.MovieSessionDetailResponse, error)
	Create(ctx context.Context, req *request.MovieSessionRequest) (*response.MovieSessionDetailResponse, error)
	Update(ctx context.Context, sessionID string, req *request.MovieSessionRequest) (*response.MovieSessionDetailResponse, error)
	Delete(ctx context.Context, sessionID string) error
}

type sessionService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSessionService(repo *repository.Repository, log *zap.Logger) SessionService {
	return &sessionService{
		repo: repo,
		log:  log.With(zap.String("service", "session")),
	}
}

// List returns sessions annotated with free-seat counts. An unparseable
// date or movie filter yields an empty list rather than an error, so a bad
// query string degrades gracefully for browsing clients.
func (s *sessionService) List(ctx context.Context, filter *request.SessionFilterRequest) ([]response.MovieSessionResponse, error) {
	var repoFilter repository.SessionFilter

	if filter.Date != "" {
		date, err := time.Parse(sessionDateLayout, filter.Date)
		if err != nil {
			s.log.Debug("Unparseable date filter, returning empty list", zap.String("date", filter.Date))
			return []response.MovieSessionResponse{}, nil
		}
		repoFilter.Date = &date
	}

	if filter.MovieID != "" {
		movieID, err := uuid.Parse(filter.MovieID)
		if err != nil {
			s.log.Debug("Unparseable movie filter, returning empty list", zap.String("movie_id", filter.MovieID))
			return []response.MovieSessionResponse{}, nil
		}
		repoFilter.MovieID = &movieID
	}

	sessions, err := s.repo.MovieSession.FindAllWithAvailability(ctx, repoFilter)
	if err != nil {
		s.log.Error("Failed to list sessions", zap.Error(err))
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	responses := make([]response.MovieSessionResponse, len(sessions))
	for i, session := range sessions {
		responses[i] = response.SessionToResponse(session)
	}

	return responses, nil
}

func (s *sessionService) Get(ctx context.Context, sessionID string) (*response.MovieSessionDetailResponse, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, fmt.Errorf("invalid session ID format %s: %w", sessionID, err)
	}

	session, err := s.repo.MovieSession.FindByIDWithAvailability(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("movie session %s: %w", sessionID, repository.ErrNotFound)
	}

	return s.buildDetailResponse(ctx, session)
}

func (s *sessionService) Create(ctx context.Context, req *request.MovieSessionRequest) (*response.MovieSessionDetailResponse, error) {
	movie, hall, showTime, err := s.resolveSessionRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &entity.MovieSession{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		MovieID:      movie.ID,
		CinemaHallID: hall.ID,
		ShowTime:     showTime,
	}

	if err := s.repo.MovieSession.Create(ctx, session); err != nil {
		return nil, err
	}

	s.log.Info("Movie session created",
		zap.String("session_id", session.ID.String()),
		zap.String("movie_id", movie.ID.String()),
		zap.String("cinema_hall_id", hall.ID.String()),
		zap.Time("show_time", showTime),
	)

	return s.Get(ctx, session.ID.String())
}

func (s *sessionService) Update(ctx context.Context, sessionID string, req *request.MovieSessionRequest) (*response.MovieSessionDetailResponse, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, fmt.Errorf("invalid session ID format %s: %w", sessionID, err)
	}

	movie, hall, showTime, err := s.resolveSessionRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	session, err := s.repo.MovieSession.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("movie session %s: %w", sessionID, repository.ErrNotFound)
	}

	session.MovieID = movie.ID
	session.CinemaHallID = hall.ID
	session.ShowTime = showTime
	session.UpdatedAt = time.Now()

	if err := s.repo.MovieSession.Update(ctx, session); err != nil {
		return nil, err
	}

	s.log.Info("Movie session updated", zap.String("session_id", sessionID))

	return s.Get(ctx, sessionID)
}

func (s *sessionService) Delete(ctx context.Context, sessionID string) error {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return fmt.Errorf("invalid session ID format %s: %w", sessionID, err)
	}

	return s.repo.MovieSession.Delete(ctx, id)
}

// ==================== HELPER METHODS ====================

// resolveSessionRequest validates the payload and loads the referenced movie
// and hall, guaranteeing both exist before any write happens.
func (s *sessionService) resolveSessionRequest(ctx context.Context, req *request.MovieSessionRequest) (*entity.Movie, *entity.CinemaHall, time.Time, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Session validation failed", zap.Any("errors", errs))
		return nil, nil, time.Time{}, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	showTime, err := time.Parse(time.RFC3339, req.ShowTime)
	if err != nil {
		return nil, nil, time.Time{}, fmt.Errorf("validation failed: show_time must be RFC3339")
	}

	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, nil, time.Time{}, fmt.Errorf("invalid movie ID format %s: %w", req.MovieID, err)
	}
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, nil, time.Time{}, err
	}
	if movie == nil {
		return nil, nil, time.Time{}, fmt.Errorf("movie %s: %w", req.MovieID, repository.ErrNotFound)
	}

	hallID, err := uuid.Parse(req.CinemaHallID)
	if err != nil {
		return nil, nil, time.Time{}, fmt.Errorf("invalid cinema hall ID format %s: %w", req.CinemaHallID, err)
	}
	hall, err := s.repo.Hall.FindByID(ctx, hallID)
	if err != nil {
		return nil, nil, time.Time{}, err
	}
	if hall == nil {
		return nil, nil, time.Time{}, fmt.Errorf("cinema hall %s: %w", req.CinemaHallID, repository.ErrNotFound)
	}

	return movie, hall, showTime, nil
}

func (s *sessionService) buildDetailResponse(ctx context.Context, session *repository.SessionWithAvailability) (*response.MovieSessionDetailResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, session.Session.MovieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s: %w", session.Session.MovieID.String(), repository.ErrNotFound)
	}

	genres, err := s.repo.MovieGenre.FindGenresByMovieID(ctx, movie.ID)
	if err != nil {
		return nil, err
	}
	actors, err := s.repo.MovieActor.FindActorsByMovieID(ctx, movie.ID)
	if err != nil {
		return nil, err
	}

	hall, err := s.repo.Hall.FindByID(ctx, session.Session.CinemaHallID)
	if err != nil {
		return nil, err
	}
	if hall == nil {
		return nil, fmt.Errorf("cinema hall %s: %w", session.Session.CinemaHallID.String(), repository.ErrNotFound)
	}

	taken, err := s.repo.Ticket.FindTakenSeats(ctx, session.Session.ID)
	if err != nil {
		return nil, err
	}

	takenSeats := make([]response.TakenSeatResponse, len(taken))
	for i, seat := range taken {
		takenSeats[i] = response.TakenSeatResponse{Row: seat.Row, Seat: seat.Seat}
	}

	return &response.MovieSessionDetailResponse{
		ID:               session.Session.ID.String(),
		ShowTime:         session.Session.ShowTime,
		Movie:            response.MovieToDetailResponse(movie, genres, actors),
		CinemaHall:       response.CinemaHallToResponse(hall),
		TakenSeats:       takenSeats,
		TicketsAvailable: session.TicketsAvailable,
	}, nil
}
