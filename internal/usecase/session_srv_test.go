package usecase

import (
	"context"
	"testing"
	"time"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/data/repository"
	"cinema-api/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSessionTestService(sessionRepo *stubMovieSessionRepo) SessionService {
	repo := &repository.Repository{
		MovieSession: sessionRepo,
	}
	return NewSessionService(repo, zap.NewNop())
}

func availableSession(title string, available int) *repository.SessionWithAvailability {
	return &repository.SessionWithAvailability{
		Session: entity.MovieSession{
			Base:         entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
			MovieID:      uuid.New(),
			CinemaHallID: uuid.New(),
			ShowTime:     time.Date(2026, 9, 1, 19, 30, 0, 0, time.UTC),
		},
		MovieTitle:       title,
		HallName:         "Blue",
		HallRows:         10,
		HallSeats:        12,
		TicketsAvailable: available,
	}
}

func TestSessionListAnnotatesAvailability(t *testing.T) {
	sessionRepo := &stubMovieSessionRepo{
		findAllWithAvailability: func(ctx context.Context, filter repository.SessionFilter) ([]*repository.SessionWithAvailability, error) {
			assert.Nil(t, filter.Date)
			assert.Nil(t, filter.MovieID)
			return []*repository.SessionWithAvailability{
				availableSession("Inception", 118),
				availableSession("Arrival", 120),
			}, nil
		},
	}
	svc := newSessionTestService(sessionRepo)

	sessions, err := svc.List(context.Background(), &request.SessionFilterRequest{})

	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "Inception", sessions[0].MovieTitle)
	assert.Equal(t, 118, sessions[0].TicketsAvailable)
	assert.Equal(t, 120, sessions[0].CinemaHallCapacity)
	assert.Equal(t, 120, sessions[1].TicketsAvailable)
}

func TestSessionListPassesFiltersToRepository(t *testing.T) {
	movieID := uuid.New()

	var gotFilter repository.SessionFilter
	sessionRepo := &stubMovieSessionRepo{
		findAllWithAvailability: func(ctx context.Context, filter repository.SessionFilter) ([]*repository.SessionWithAvailability, error) {
			gotFilter = filter
			return nil, nil
		},
	}
	svc := newSessionTestService(sessionRepo)

	_, err := svc.List(context.Background(), &request.SessionFilterRequest{
		Date:    "2026-09-01",
		MovieID: movieID.String(),
	})

	require.NoError(t, err)
	require.NotNil(t, gotFilter.Date)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), *gotFilter.Date)
	require.NotNil(t, gotFilter.MovieID)
	assert.Equal(t, movieID, *gotFilter.MovieID)
}

func TestSessionListInvalidDateYieldsEmptyList(t *testing.T) {
	sessionRepo := &stubMovieSessionRepo{
		findAllWithAvailability: func(ctx context.Context, filter repository.SessionFilter) ([]*repository.SessionWithAvailability, error) {
			t.Fatal("repository should not be queried for an unparseable date")
			return nil, nil
		},
	}
	svc := newSessionTestService(sessionRepo)

	sessions, err := svc.List(context.Background(), &request.SessionFilterRequest{Date: "not-a-date"})

	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestSessionListInvalidMovieIDYieldsEmptyList(t *testing.T) {
	sessionRepo := &stubMovieSessionRepo{
		findAllWithAvailability: func(ctx context.Context, filter repository.SessionFilter) ([]*repository.SessionWithAvailability, error) {
			t.Fatal("repository should not be queried for an unparseable movie ID")
			return nil, nil
		},
	}
	svc := newSessionTestService(sessionRepo)

	sessions, err := svc.List(context.Background(), &request.SessionFilterRequest{MovieID: "42"})

	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestSessionGetNestsDetailAndTakenSeats(t *testing.T) {
	annotated := availableSession("Inception", 118)

	movie := &entity.Movie{
		Base:              entity.Base{ID: annotated.Session.MovieID},
		Title:             "Inception",
		Description:       "Dreams within dreams",
		DurationInMinutes: 148,
	}
	hall := &entity.CinemaHall{
		BaseSimple: entity.BaseSimple{ID: annotated.Session.CinemaHallID},
		Name:       "Blue",
		Rows:       10,
		SeatsInRow: 12,
	}

	sessionRepo := &stubMovieSessionRepo{
		findByIDWithAvail: func(ctx context.Context, id uuid.UUID) (*repository.SessionWithAvailability, error) {
			require.Equal(t, annotated.Session.ID, id)
			return annotated, nil
		},
	}
	repo := &repository.Repository{
		MovieSession: sessionRepo,
		Movie: &stubMovieRepo{
			findByID: func(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
				return movie, nil
			},
		},
		MovieGenre: &stubMovieGenreRepo{
			findGenresByMovieID: func(ctx context.Context, movieID uuid.UUID) ([]*entity.Genre, error) {
				return []*entity.Genre{{BaseSimple: entity.BaseSimple{ID: uuid.New()}, Name: "Sci-Fi"}}, nil
			},
		},
		MovieActor: &stubMovieActorRepo{
			findActorsByMovieID: func(ctx context.Context, movieID uuid.UUID) ([]*entity.Actor, error) {
				return nil, nil
			},
		},
		Hall: &stubHallRepo{
			findByID: func(ctx context.Context, id uuid.UUID) (*entity.CinemaHall, error) {
				return hall, nil
			},
		},
		Ticket: &stubTicketRepo{
			findTakenSeats: func(ctx context.Context, sessionID uuid.UUID) ([]repository.TakenSeat, error) {
				return []repository.TakenSeat{{Row: 1, Seat: 1}, {Row: 1, Seat: 2}}, nil
			},
		},
	}
	svc := NewSessionService(repo, zap.NewNop())

	detail, err := svc.Get(context.Background(), annotated.Session.ID.String())

	require.NoError(t, err)
	assert.Equal(t, "Inception", detail.Movie.Title)
	require.Len(t, detail.Movie.Genres, 1)
	assert.Equal(t, "Sci-Fi", detail.Movie.Genres[0].Name)
	assert.Equal(t, "Blue", detail.CinemaHall.Name)
	assert.Equal(t, 120, detail.CinemaHall.Capacity)
	assert.Equal(t, 118, detail.TicketsAvailable)
	require.Len(t, detail.TakenSeats, 2)
	assert.Equal(t, 1, detail.TakenSeats[0].Row)
	assert.Equal(t, 2, detail.TakenSeats[1].Seat)
}

func TestSessionGetUnknownIDReturnsNotFound(t *testing.T) {
	sessionRepo := &stubMovieSessionRepo{
		findByIDWithAvail: func(ctx context.Context, id uuid.UUID) (*repository.SessionWithAvailability, error) {
			return nil, nil
		},
	}
	svc := newSessionTestService(sessionRepo)

	_, err := svc.Get(context.Background(), uuid.New().String())

	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSessionDeleteRejectsMalformedID(t *testing.T) {
	svc := newSessionTestService(&stubMovieSessionRepo{})

	err := svc.Delete(context.Background(), "nope")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid session ID")
}
