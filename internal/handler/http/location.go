package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hadirin/hadirin-backend-go/internal/domain/location"
	"github.com/hadirin/hadirin-backend-go/internal/handler/http/response"
)

type LocationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type locationHandlerImpl struct {
	locationService location.LocationService
}

func NewLocationHandler(locationService location.LocationService) LocationHandler {
	return &locationHandlerImpl{
		locationService: locationService,
	}
}

// Create implements LocationHandler.
func (h *locationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req location.CreateLocationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create location decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.locationService.CreateLocation(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Location registered", result)
}

// List implements LocationHandler.
func (h *locationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.locationService.ListLocations(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements LocationHandler.
func (h *locationHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.locationService.DeleteLocation(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Location deleted", nil)
}
