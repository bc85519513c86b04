package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fabtracko/fabtracko-backend-go/internal/domain/attendance"
	"github.com/fabtracko/fabtracko-backend-go/internal/handler/http/response"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/calendar"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Mark(w http.ResponseWriter, r *http.Request)
	WorkerMonth(w http.ResponseWriter, r *http.Request)
	WorkerDay(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	clock             calendar.Clock
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, clock calendar.Clock) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		clock:             clock,
	}
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var errs validator.ValidationErrors
	filter := attendance.AttendanceFilter{
		WorkerID: r.URL.Query().Get("worker_id"),
		Date:     r.URL.Query().Get("date"),
		Month:    intParam(r, "month", &errs),
		Year:     intParam(r, "year", &errs),
	}
	if err := errs.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.ListAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Mark implements AttendanceHandler.
func (h *attendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("MarkAttendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, created, err := h.attendanceService.MarkAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if created {
		response.Created(w, "Attendance marked", result)
		return
	}
	response.SuccessWithMessage(w, "Attendance updated", result)
}

// WorkerMonth implements AttendanceHandler.
func (h *attendanceHandlerImpl) WorkerMonth(w http.ResponseWriter, r *http.Request) {
	month, year, err := monthParams(r, h.clock)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.GetWorkerMonth(r.Context(), chi.URLParam(r, "id"), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// WorkerDay implements AttendanceHandler.
func (h *attendanceHandlerImpl) WorkerDay(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetAttendance(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
