package attendance

import (
	"context"
	"time"

	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/calendar"
)

// Query narrows a listing. Zero fields do not filter; Month and Year apply together.
type Query struct {
	WorkerID string
	Date     *calendar.Date
	Month    time.Month
	Year     int
}

// AttendanceRepository is the attendance collection of the state store.
type AttendanceRepository interface {
	// Upsert writes the record for (WorkerID, Date), replacing the status of an
	// existing one in place. created reports whether a new record was inserted.
	Upsert(ctx context.Context, record Attendance) (result Attendance, created bool, err error)

	// GetByWorkerAndDate returns nil when no record exists.
	GetByWorkerAndDate(ctx context.Context, workerID string, date calendar.Date) (*Attendance, error)

	// List returns matching records ordered by date, then worker id.
	List(ctx context.Context, q Query) ([]Attendance, error)
}
