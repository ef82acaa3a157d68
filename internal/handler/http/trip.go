package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hadirin/hadirin-backend-go/internal/domain/trip"
	"github.com/hadirin/hadirin-backend-go/internal/handler/http/response"
)

type TripHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetMyTrips(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type tripHandlerImpl struct {
	tripService trip.TripService
}

func NewTripHandler(tripService trip.TripService) TripHandler {
	return &tripHandlerImpl{
		tripService: tripService,
	}
}

// Create implements TripHandler.
func (h *tripHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req trip.CreateTripRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create trip decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.tripService.CreateTrip(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Business trip created", result)
}

// List implements TripHandler.
func (h *tripHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := trip.TripFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Page:       queryInt(r, "page"),
		Limit:      queryInt(r, "limit"),
	}

	result, err := h.tripService.ListTrips(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Trips, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// GetMyTrips implements TripHandler.
func (h *tripHandlerImpl) GetMyTrips(w http.ResponseWriter, r *http.Request) {
	filter := trip.TripFilter{
		Page:  queryInt(r, "page"),
		Limit: queryInt(r, "limit"),
	}

	result, err := h.tripService.GetMyTrips(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Trips, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// Get implements TripHandler.
func (h *tripHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	tripResult, obligations, err := h.tripService.GetTrip(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"trip":        tripResult,
		"obligations": obligations,
	})
}

// Delete implements TripHandler.
func (h *tripHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.tripService.DeleteTrip(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Business trip deleted", nil)
}
