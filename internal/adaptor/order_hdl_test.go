package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cinema-api/internal/data/repository"
	"cinema-api/internal/dto/request"
	"cinema-api/internal/dto/response"
	"cinema-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubOrderService struct {
	create func(ctx context.Context, userID uuid.UUID, req *request.CreateOrderRequest) (*response.OrderResponse, error)
	list   func(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error)
}

func (s *stubOrderService) Create(ctx context.Context, userID uuid.UUID, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	return s.create(ctx, userID, req)
}

func (s *stubOrderService) List(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
	return s.list(ctx, userID, req)
}

func authedRequest(t *testing.T, method, target string, body string) *http.Request {
	t.Helper()

	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	ctx := utils.SetUserContext(r.Context(), uuid.New(), "customer")
	return r.WithContext(ctx)
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()

	var resp utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestCreateOrderRequiresAuthentication(t *testing.T) {
	handler := NewOrderHandler(&stubOrderService{}, zap.NewNop())

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"tickets":[]}`))
	handler.CreateOrder(rec, r)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateOrderRejectsMalformedBody(t *testing.T) {
	handler := NewOrderHandler(&stubOrderService{}, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.CreateOrder(rec, authedRequest(t, http.MethodPost, "/api/orders", "{not json"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrderMapsSeatTakenToBadRequest(t *testing.T) {
	service := &stubOrderService{
		create: func(ctx context.Context, userID uuid.UUID, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
			return nil, fmt.Errorf("session x row 1 seat 1: %w", repository.ErrSeatTaken)
		},
	}
	handler := NewOrderHandler(service, zap.NewNop())

	rec := httptest.NewRecorder()
	body := `{"tickets":[{"movie_session":"` + uuid.New().String() + `","row":1,"seat":1}]}`
	handler.CreateOrder(rec, authedRequest(t, http.MethodPost, "/api/orders", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Status)
	assert.Contains(t, resp.Message, "seat")
}

func TestCreateOrderMapsUnknownSessionToNotFound(t *testing.T) {
	service := &stubOrderService{
		create: func(ctx context.Context, userID uuid.UUID, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
			return nil, fmt.Errorf("movie session x: %w", repository.ErrNotFound)
		},
	}
	handler := NewOrderHandler(service, zap.NewNop())

	rec := httptest.NewRecorder()
	body := `{"tickets":[{"movie_session":"` + uuid.New().String() + `","row":1,"seat":1}]}`
	handler.CreateOrder(rec, authedRequest(t, http.MethodPost, "/api/orders", body))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateOrderReturnsCreatedOrder(t *testing.T) {
	sessionID := uuid.New().String()
	service := &stubOrderService{
		create: func(ctx context.Context, userID uuid.UUID, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
			require.Len(t, req.Tickets, 1)
			assert.Equal(t, sessionID, req.Tickets[0].MovieSessionID)
			return &response.OrderResponse{
				ID:        uuid.New().String(),
				CreatedAt: time.Now(),
				Tickets: []response.TicketResponse{
					{Row: 2, Seat: 3, MovieSessionID: sessionID},
				},
			}, nil
		},
	}
	handler := NewOrderHandler(service, zap.NewNop())

	rec := httptest.NewRecorder()
	body := `{"tickets":[{"movie_session":"` + sessionID + `","row":2,"seat":3}]}`
	handler.CreateOrder(rec, authedRequest(t, http.MethodPost, "/api/orders", body))

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Status)
}

func TestListOrdersParsesPagination(t *testing.T) {
	service := &stubOrderService{
		list: func(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
			assert.Equal(t, 2, req.Page)
			assert.Equal(t, 5, req.PerPage)
			return response.NewPaginatedResponse([]response.OrderResponse{}, req.Page, req.PerPage, 0), nil
		},
	}
	handler := NewOrderHandler(service, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.ListOrders(rec, authedRequest(t, http.MethodGet, "/api/orders?page=2&per_page=5", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
}
