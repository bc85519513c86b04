package http

import (
	"net/http"

	"github.com/fabtracko/fabtracko-backend-go/internal/domain/wage"
	"github.com/fabtracko/fabtracko-backend-go/internal/handler/http/response"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/calendar"
	"github.com/go-chi/chi/v5"
)

type WageHandler interface {
	// GetWorkerWages handles GET /workers/{id}/wages
	GetWorkerWages(w http.ResponseWriter, r *http.Request)
}

type wageHandlerImpl struct {
	wageService wage.WageService
	clock       calendar.Clock
}

func NewWageHandler(wageService wage.WageService, clock calendar.Clock) WageHandler {
	return &wageHandlerImpl{
		wageService: wageService,
		clock:       clock,
	}
}

// GetWorkerWages implements WageHandler.
func (h *wageHandlerImpl) GetWorkerWages(w http.ResponseWriter, r *http.Request) {
	month, year, err := monthParams(r, h.clock)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	req := wage.WageRequest{
		WorkerID: chi.URLParam(r, "id"),
		Month:    month,
		Year:     year,
	}

	result, err := h.wageService.GetBreakdown(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
