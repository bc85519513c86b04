package attendance

import "context"

// AttendanceService defines business logic for the attendance register
type AttendanceService interface {
	// MarkAttendance records a status for a worker on a date, overwriting any earlier
	// mark for the same day. created is false when an existing record was updated.
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (resp AttendanceResponse, created bool, err error)

	GetAttendance(ctx context.Context, workerID string, date string) (AttendanceResponse, error)

	// ListAttendance retrieves records by worker, date or month
	ListAttendance(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, error)

	// GetWorkerMonth returns a worker's records in a month ordered by date
	GetWorkerMonth(ctx context.Context, workerID string, month, year int) ([]AttendanceResponse, error)
}
