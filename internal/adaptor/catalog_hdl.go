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

	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// ListGenres handles GET /api/genres (protected)
func (h *CatalogHandler) ListGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.ListGenres(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list genres")
		return
	}

	utils.ResponseSuccess(w, "success", genres)
}

// CreateGenre handles POST /api/genres (admin only)
func (h *CatalogHandler) CreateGenre(w http.ResponseWriter, r *http.Request) {
	var req request.GenreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	genre, err := h.service.CreateGenre(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create genre")
		return
	}

	utils.ResponseCreated(w, "success", genre)
}

// ListActors handles GET /api/actors (protected)
func (h *CatalogHandler) ListActors(w http.ResponseWriter, r *http.Request) {
	actors, err := h.service.ListActors(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list actors")
		return
	}

	utils.ResponseSuccess(w, "success", actors)
}

// CreateActor handles POST /api/actors (admin only)
func (h *CatalogHandler) CreateActor(w http.ResponseWriter, r *http.Request) {
	var req request.ActorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	actor, err := h.service.CreateActor(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create actor")
		return
	}

	utils.ResponseCreated(w, "success", actor)
}

// ListHalls handles GET /api/cinema-halls (protected)
func (h *CatalogHandler) ListHalls(w http.ResponseWriter, r *http.Request) {
	halls, err := h.service.ListHalls(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list cinema halls")
		return
	}

	utils.ResponseSuccess(w, "success", halls)
}

// CreateHall handles POST /api/cinema-halls (admin only)
func (h *CatalogHandler) CreateHall(w http.ResponseWriter, r *http.Request) {
	var req request.CinemaHallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	hall, err := h.service.CreateHall(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create cinema hall")
		return
	}

	utils.ResponseCreated(w, "success", hall)
}

func (h *CatalogHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, repository.ErrNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case errors.Is(err, repository.ErrDuplicate):
		h.log.Warn(operation+" failed - duplicate", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

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
