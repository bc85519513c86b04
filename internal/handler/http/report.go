package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/fabtracko/fabtracko-backend-go/internal/domain/report"
	"github.com/fabtracko/fabtracko-backend-go/internal/handler/http/response"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/calendar"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/export"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	// GetWorkerReport handles GET /workers/{id}/report
	GetWorkerReport(w http.ResponseWriter, r *http.Request)

	// GetMonthlyReport handles GET /reports/monthly
	GetMonthlyReport(w http.ResponseWriter, r *http.Request)

	GetTopPerformers(w http.ResponseWriter, r *http.Request)
	GetAdvanceSummary(w http.ResponseWriter, r *http.Request)

	// ExportMonthlyReport handles GET /reports/monthly/export
	ExportMonthlyReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
	clock         calendar.Clock
}

func NewReportHandler(reportService report.ReportService, clock calendar.Clock) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
		clock:         clock,
	}
}

func (h *reportHandlerImpl) monthRequest(r *http.Request) (report.MonthRequest, error) {
	month, year, err := monthParams(r, h.clock)
	if err != nil {
		return report.MonthRequest{}, err
	}
	return report.MonthRequest{Month: month, Year: year}, nil
}

// GetWorkerReport implements ReportHandler.
func (h *reportHandlerImpl) GetWorkerReport(w http.ResponseWriter, r *http.Request) {
	month, err := h.monthRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	req := report.WorkerReportRequest{
		WorkerID:     chi.URLParam(r, "id"),
		MonthRequest: month,
	}

	result, err := h.reportService.GetWorkerReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMonthlyReport implements ReportHandler.
func (h *reportHandlerImpl) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	req, err := h.monthRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.GetMonthlyReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetTopPerformers implements ReportHandler.
func (h *reportHandlerImpl) GetTopPerformers(w http.ResponseWriter, r *http.Request) {
	month, err := h.monthRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var errs validator.ValidationErrors
	req := report.TopPerformersRequest{MonthRequest: month}
	if limit := intParam(r, "limit", &errs); limit != nil {
		req.Limit = *limit
	}
	if err := errs.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.GetTopPerformers(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAdvanceSummary implements ReportHandler.
func (h *reportHandlerImpl) GetAdvanceSummary(w http.ResponseWriter, r *http.Request) {
	req, err := h.monthRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.GetAdvanceSummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportMonthlyReport implements ReportHandler.
func (h *reportHandlerImpl) ExportMonthlyReport(w http.ResponseWriter, r *http.Request) {
	req, err := h.monthRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.GetMonthlyReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	body, err := export.MonthlyReportXLSX(result)
	if err != nil {
		slog.Error("monthly report export failed", "month", req.Month, "year", req.Year, "error", err)
		response.HandleError(w, fmt.Errorf("%w: %v", report.ErrExportFailed, err))
		return
	}

	response.Attachment(w, export.XLSXContentType, export.MonthlyFilename(result), body)
}
