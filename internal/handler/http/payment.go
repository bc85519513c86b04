package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fabtracko/fabtracko-backend-go/internal/domain/payment"
	"github.com/fabtracko/fabtracko-backend-go/internal/handler/http/response"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type PaymentHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	WorkerPayments(w http.ResponseWriter, r *http.Request)
}

type paymentHandlerImpl struct {
	paymentService payment.PaymentService
}

func NewPaymentHandler(paymentService payment.PaymentService) PaymentHandler {
	return &paymentHandlerImpl{
		paymentService: paymentService,
	}
}

// List implements PaymentHandler.
func (h *paymentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, r.URL.Query().Get("worker_id"))
}

// WorkerPayments implements PaymentHandler.
func (h *paymentHandlerImpl) WorkerPayments(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, chi.URLParam(r, "id"))
}

func (h *paymentHandlerImpl) list(w http.ResponseWriter, r *http.Request, workerID string) {
	var errs validator.ValidationErrors
	filter := payment.PaymentFilter{
		WorkerID: workerID,
		Month:    intParam(r, "month", &errs),
		Year:     intParam(r, "year", &errs),
	}
	if err := errs.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.paymentService.ListPayments(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Create implements PaymentHandler.
func (h *paymentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req payment.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RecordPayment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.paymentService.RecordPayment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("payment recorded", "payment_id", result.ID, "worker_id", result.WorkerID)
	response.Created(w, "Payment recorded", result)
}

// Delete implements PaymentHandler.
func (h *paymentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.paymentService.DeletePayment(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payment deleted", nil)
}
