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

type OrderService interface {
	// Create books all requested seats atomically for the given user. Either
	// every ticket is created or none are.
	Create(ctx context.Context, userID uuid.UUID, req *request.CreateOrderRequest) (*response.OrderResponse, error)
	List(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error)
}

type orderService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		log:  log.With(zap.String("service", "order")),
	}
}

func (s *orderService) Create(ctx context.Context, userID uuid.UUID, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create order validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Sessions and halls repeat across tickets of one order, so resolve each
	// only once per request.
	sessions := make(map[uuid.UUID]*entity.MovieSession)
	halls := make(map[uuid.UUID]*entity.CinemaHall)

	seen := make(map[string]struct{}, len(req.Tickets))

	now := time.Now()
	order := &entity.Order{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID: userID,
	}

	tickets := make([]*entity.Ticket, len(req.Tickets))
	for i, tr := range req.Tickets {
		sessionID, err := uuid.Parse(tr.MovieSessionID)
		if err != nil {
			return nil, fmt.Errorf("validation failed: tickets[%d]: invalid movie session ID %s", i, tr.MovieSessionID)
		}

		session, ok := sessions[sessionID]
		if !ok {
			session, err = s.repo.MovieSession.FindByID(ctx, sessionID)
			if err != nil {
				return nil, err
			}
			if session == nil {
				return nil, fmt.Errorf("tickets[%d]: movie session %s: %w", i, tr.MovieSessionID, repository.ErrNotFound)
			}
			sessions[sessionID] = session
		}

		hall, ok := halls[session.CinemaHallID]
		if !ok {
			hall, err = s.repo.Hall.FindByID(ctx, session.CinemaHallID)
			if err != nil {
				return nil, err
			}
			if hall == nil {
				return nil, fmt.Errorf("cinema hall %s: %w", session.CinemaHallID.String(), repository.ErrNotFound)
			}
			halls[session.CinemaHallID] = hall
		}

		if tr.Row > hall.Rows {
			return nil, fmt.Errorf("validation failed: tickets[%d]: row %d exceeds hall rows %d", i, tr.Row, hall.Rows)
		}
		if tr.Seat > hall.SeatsInRow {
			return nil, fmt.Errorf("validation failed: tickets[%d]: seat %d exceeds seats in row %d", i, tr.Seat, hall.SeatsInRow)
		}

		key := fmt.Sprintf("%s:%d:%d", sessionID.String(), tr.Row, tr.Seat)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("validation failed: tickets[%d]: duplicate seat row %d seat %d for session %s", i, tr.Row, tr.Seat, tr.MovieSessionID)
		}
		seen[key] = struct{}{}

		tickets[i] = &entity.Ticket{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			MovieSessionID: sessionID,
			OrderID:        order.ID,
			Row:            tr.Row,
			Seat:           tr.Seat,
		}
	}

	if err := s.repo.Order.CreateWithTickets(ctx, order, tickets); err != nil {
		return nil, err
	}

	s.log.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Int("tickets", len(tickets)),
	)

	details, err := s.repo.Ticket.FindByOrderID(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	resp := response.OrderToResponse(order, details)
	return &resp, nil
}

func (s *orderService) List(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
	orders, err := s.repo.Order.FindByUserID(ctx, userID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list orders", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("list orders: %w", err)
	}

	total, err := s.repo.Order.CountByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count orders", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("count orders: %w", err)
	}

	orderResponses := make([]response.OrderResponse, len(orders))
	for i, order := range orders {
		details, err := s.repo.Ticket.FindByOrderID(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		orderResponses[i] = response.OrderToResponse(order, details)
	}

	return response.NewPaginatedResponse(orderResponses, req.Page, req.PerPage, total), nil
}
