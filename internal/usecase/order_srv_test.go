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

func newOrderTestService(sessionRepo *stubMovieSessionRepo, hallRepo *stubHallRepo, orderRepo *stubOrderRepo, ticketRepo *stubTicketRepo) OrderService {
	repo := &repository.Repository{
		MovieSession: sessionRepo,
		Hall:         hallRepo,
		Order:        orderRepo,
		Ticket:       ticketRepo,
	}
	return NewOrderService(repo, zap.NewNop())
}

func testSessionAndHall() (*entity.MovieSession, *entity.CinemaHall) {
	hall := &entity.CinemaHall{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Name:       "Blue",
		Rows:       10,
		SeatsInRow: 12,
	}
	session := &entity.MovieSession{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		MovieID:      uuid.New(),
		CinemaHallID: hall.ID,
		ShowTime:     time.Now().Add(24 * time.Hour),
	}
	return session, hall
}

func TestOrderCreateRejectsEmptyTicketList(t *testing.T) {
	svc := newOrderTestService(&stubMovieSessionRepo{}, &stubHallRepo{}, &stubOrderRepo{}, &stubTicketRepo{})

	_, err := svc.Create(context.Background(), uuid.New(), &request.CreateOrderRequest{Tickets: []request.TicketRequest{}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestOrderCreateRejectsUnknownSession(t *testing.T) {
	sessionRepo := &stubMovieSessionRepo{
		findByID: func(ctx context.Context, id uuid.UUID) (*entity.MovieSession, error) {
			return nil, nil
		},
	}
	svc := newOrderTestService(sessionRepo, &stubHallRepo{}, &stubOrderRepo{}, &stubTicketRepo{})

	_, err := svc.Create(context.Background(), uuid.New(), &request.CreateOrderRequest{
		Tickets: []request.TicketRequest{
			{MovieSessionID: uuid.New().String(), Row: 1, Seat: 1},
		},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestOrderCreateRejectsSeatOutsideHall(t *testing.T) {
	session, hall := testSessionAndHall()

	sessionRepo := &stubMovieSessionRepo{
		findByID: func(ctx context.Context, id uuid.UUID) (*entity.MovieSession, error) {
			return session, nil
		},
	}
	hallRepo := &stubHallRepo{
		findByID: func(ctx context.Context, id uuid.UUID) (*entity.CinemaHall, error) {
			return hall, nil
		},
	}
	svc := newOrderTestService(sessionRepo, hallRepo, &stubOrderRepo{}, &stubTicketRepo{})

	_, err := svc.Create(context.Background(), uuid.New(), &request.CreateOrderRequest{
		Tickets: []request.TicketRequest{
			{MovieSessionID: session.ID.String(), Row: 2, Seat: 3},
			{MovieSessionID: session.ID.String(), Row: hall.Rows + 1, Seat: 1},
		},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "tickets[1]")

	_, err = svc.Create(context.Background(), uuid.New(), &request.CreateOrderRequest{
		Tickets: []request.TicketRequest{
			{MovieSessionID: session.ID.String(), Row: 1, Seat: hall.SeatsInRow + 1},
		},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "seat")
}

func TestOrderCreateRejectsDuplicateSeatInRequest(t *testing.T) {
	session, hall := testSessionAndHall()

	sessionRepo := &stubMovieSessionRepo{
		findByID: func(ctx context.Context, id uuid.UUID) (*entity.MovieSession, error) {
			return session, nil
		},
	}
	hallRepo := &stubHallRepo{
		findByID: func(ctx context.Context, id uuid.UUID) (*entity.CinemaHall, error) {
			return hall, nil
		},
	}
	svc := newOrderTestService(sessionRepo, hallRepo, &stubOrderRepo{}, &stubTicketRepo{})

	_, err := svc.Create(context.Background(), uuid.New(), &request.CreateOrderRequest{
		Tickets: []request.TicketRequest{
			{MovieSessionID: session.ID.String(), Row: 4, Seat: 7},
			{MovieSessionID: session.ID.String(), Row: 4, Seat: 7},
		},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate seat")
}

func TestOrderCreatePropagatesSeatTaken(t *testing.T) {
	session, hall := testSessionAndHall()

	sessionRepo := &stubMovieSessionRepo{
		findByID: func(ctx context.Context, id uuid.UUID) (*entity.MovieSession, error) {
			return session, nil
		},
	}
	hallRepo := &stubHallRepo{
		findByID: func(ctx context.Context, id uuid.UUID) (*entity.CinemaHall, error) {
			return hall, nil
		},
	}
	orderRepo := &stubOrderRepo{
		createWithTickets: func(ctx context.Context, order *entity.Order, tickets []*entity.Ticket) error {
			return repository.ErrSeatTaken
		},
	}
	svc := newOrderTestService(sessionRepo, hallRepo, orderRepo, &stubTicketRepo{})

	_, err := svc.Create(context.Background(), uuid.New(), &request.CreateOrderRequest{
		Tickets: []request.TicketRequest{
			{MovieSessionID: session.ID.String(), Row: 1, Seat: 1},
		},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrSeatTaken)
}

func TestOrderCreateBooksAllSeatsAtomically(t *testing.T) {
	session, hall := testSessionAndHall()
	userID := uuid.New()

	sessionRepo := &stubMovieSessionRepo{
		findByID: func(ctx context.Context, id uuid.UUID) (*entity.MovieSession, error) {
			require.Equal(t, session.ID, id)
			return session, nil
		},
	}
	hallRepo := &stubHallRepo{
		findByID: func(ctx context.Context, id uuid.UUID) (*entity.CinemaHall, error) {
			require.Equal(t, hall.ID, id)
			return hall, nil
		},
	}

	var createdOrder *entity.Order
	var createdTickets []*entity.Ticket
	orderRepo := &stubOrderRepo{
		createWithTickets: func(ctx context.Context, order *entity.Order, tickets []*entity.Ticket) error {
			createdOrder = order
			createdTickets = tickets
			return nil
		},
	}
	ticketRepo := &stubTicketRepo{
		findByOrderID: func(ctx context.Context, orderID uuid.UUID) ([]*repository.TicketDetail, error) {
			details := make([]*repository.TicketDetail, len(createdTickets))
			for i, tk := range createdTickets {
				details[i] = &repository.TicketDetail{
					Ticket:     *tk,
					ShowTime:   session.ShowTime,
					MovieTitle: "Inception",
					HallName:   hall.Name,
				}
			}
			return details, nil
		},
	}
	svc := newOrderTestService(sessionRepo, hallRepo, orderRepo, ticketRepo)

	resp, err := svc.Create(context.Background(), userID, &request.CreateOrderRequest{
		Tickets: []request.TicketRequest{
			{MovieSessionID: session.ID.String(), Row: 3, Seat: 4},
			{MovieSessionID: session.ID.String(), Row: 3, Seat: 5},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, createdOrder)
	assert.Equal(t, userID, createdOrder.UserID)

	require.Len(t, createdTickets, 2)
	for _, tk := range createdTickets {
		assert.Equal(t, createdOrder.ID, tk.OrderID)
		assert.Equal(t, session.ID, tk.MovieSessionID)
	}

	require.Len(t, resp.Tickets, 2)
	assert.Equal(t, 3, resp.Tickets[0].Row)
	assert.Equal(t, 4, resp.Tickets[0].Seat)
	assert.Equal(t, "Inception", resp.Tickets[0].MovieTitle)
}

func TestOrderListReturnsOnlyOwnOrdersNewestFirst(t *testing.T) {
	userID := uuid.New()
	now := time.Now()

	newer := &entity.Order{BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now}, UserID: userID}
	older := &entity.Order{BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now.Add(-time.Hour)}, UserID: userID}

	orderRepo := &stubOrderRepo{
		findByUserID: func(ctx context.Context, gotUserID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
			require.Equal(t, userID, gotUserID)
			assert.Equal(t, 10, limit)
			assert.Equal(t, 0, offset)
			return []*entity.Order{newer, older}, nil
		},
		countByUserID: func(ctx context.Context, gotUserID uuid.UUID) (int64, error) {
			return 2, nil
		},
	}
	ticketRepo := &stubTicketRepo{
		findByOrderID: func(ctx context.Context, orderID uuid.UUID) ([]*repository.TicketDetail, error) {
			return nil, nil
		},
	}
	svc := newOrderTestService(&stubMovieSessionRepo{}, &stubHallRepo{}, orderRepo, ticketRepo)

	resp, err := svc.List(context.Background(), userID, &request.PaginatedRequest{Page: 1, PerPage: 10})

	require.NoError(t, err)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, newer.ID.String(), resp.Data[0].ID)
	assert.Equal(t, older.ID.String(), resp.Data[1].ID)
	assert.Equal(t, int64(2), resp.Pagination.Total)
}
