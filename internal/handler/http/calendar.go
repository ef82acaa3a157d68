package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hadirin/hadirin-backend-go/internal/domain/calendar"
	"github.com/hadirin/hadirin-backend-go/internal/handler/http/response"
)

type CalendarHandler interface {
	GetSchedule(w http.ResponseWriter, r *http.Request)
	UpdateSchedule(w http.ResponseWriter, r *http.Request)
	ListHolidays(w http.ResponseWriter, r *http.Request)
	UpsertHoliday(w http.ResponseWriter, r *http.Request)
	DeleteHoliday(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	calendarService calendar.CalendarService
}

func NewCalendarHandler(calendarService calendar.CalendarService) CalendarHandler {
	return &calendarHandlerImpl{
		calendarService: calendarService,
	}
}

// GetSchedule implements CalendarHandler.
func (h *calendarHandlerImpl) GetSchedule(w http.ResponseWriter, r *http.Request) {
	result, err := h.calendarService.GetSchedule(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateSchedule implements CalendarHandler.
func (h *calendarHandlerImpl) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	var req calendar.UpdateScheduleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateSchedule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.calendarService.UpdateSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work schedule updated", result)
}

// ListHolidays implements CalendarHandler.
func (h *calendarHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	result, err := h.calendarService.ListHolidays(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpsertHoliday implements CalendarHandler.
func (h *calendarHandlerImpl) UpsertHoliday(w http.ResponseWriter, r *http.Request) {
	var req calendar.UpsertHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpsertHoliday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.calendarService.UpsertHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday saved", result)
}

// DeleteHoliday implements CalendarHandler.
func (h *calendarHandlerImpl) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	if err := h.calendarService.DeleteHoliday(r.Context(), date); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted", nil)
}
