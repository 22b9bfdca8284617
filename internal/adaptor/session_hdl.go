package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"cinema-api/internal/data/repository"
	"cinema-api/internal/dto/request"
	"cinema-api/internal/usecase"
	"cinema-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SessionHandler struct {
	service usecase.SessionService
	log     *zap.Logger
}

func NewSessionHandler(service usecase.SessionService, log *zap.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		log:     log.With(zap.String("handler", "session")),
	}
}

// ListSessions handles GET /api/movie-sessions?date=&movie= (protected)
func (h *SessionHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := &request.SessionFilterRequest{
		Date:    query.Get("date"),
		MovieID: query.Get("movie"),
	}

	sessions, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.handleServiceError(w, err, "list movie sessions")
		return
	}

	utils.ResponseSuccess(w, "success", sessions)
}

// GetSession handles GET /api/movie-sessions/{id} (protected)
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	if sessionID == "" {
		utils.ResponseBadRequest(w, "Session ID is required", nil)
		return
	}

	session, err := h.service.Get(r.Context(), sessionID)
	if err != nil {
		h.handleServiceError(w, err, "get movie session")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// CreateSession handles POST /api/movie-sessions (admin only)
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req request.MovieSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	session, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create movie session")
		return
	}

	utils.ResponseCreated(w, "success", session)
}

// UpdateSession handles PUT /api/movie-sessions/{id} (admin only)
func (h *SessionHandler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	if sessionID == "" {
		utils.ResponseBadRequest(w, "Session ID is required", nil)
		return
	}

	var req request.MovieSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	session, err := h.service.Update(r.Context(), sessionID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update movie session")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// DeleteSession handles DELETE /api/movie-sessions/{id} (admin only)
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	if sessionID == "" {
		utils.ResponseBadRequest(w, "Session ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), sessionID); err != nil {
		h.handleServiceError(w, err, "delete movie session")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

func (h *SessionHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, repository.ErrNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
