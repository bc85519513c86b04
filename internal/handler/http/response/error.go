package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fabtracko/fabtracko-backend-go/internal/domain/attendance"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/auth"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/payment"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/report"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/worker"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrWorkerNameExists):
		Conflict(w, "A worker with this name already exists")
	case errors.Is(err, worker.ErrInvalidPicture):
		BadRequest(w, err.Error(), nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidStatus):
		ValidationError(w, map[string]string{"status": attendance.ErrInvalidStatus.Error()})

	// Payment domain errors
	case errors.Is(err, payment.ErrPaymentNotFound):
		NotFound(w, "Payment not found")
	case errors.Is(err, payment.ErrInvalidType):
		ValidationError(w, map[string]string{"type": payment.ErrInvalidType.Error()})

	// Report errors
	case errors.Is(err, report.ErrExportFailed):
		InternalServerError(w, "Failed to export report")

	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
