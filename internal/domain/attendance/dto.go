package attendance

import (
	"time"

	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/calendar"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	WorkerID string `json:"workerId"`
	Date     string `json:"date"`
	Status   string `json:"status"`
}

// Validate checks the request against today in the workshop's zone.
func (r *MarkAttendanceRequest) Validate(today calendar.Date) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs.Add("workerId", "workerId is required")
	}

	if validator.IsEmpty(r.Date) {
		errs.Add("date", "date is required")
	} else if date, ok := validator.IsValidDate(r.Date); !ok {
		errs.Add("date", "date must be in YYYY-MM-DD format")
	} else if date.After(today) {
		errs.Add("date", "Cannot mark attendance for future dates")
	}

	if validator.IsEmpty(r.Status) {
		errs.Add("status", "status is required")
	} else if _, err := ParseStatus(r.Status); err != nil {
		errs.Add("status", ErrInvalidStatus.Error())
	}

	return errs.Err()
}

// AttendanceFilter mirrors the list endpoint's query string.
type AttendanceFilter struct {
	WorkerID string `json:"workerId,omitempty"`
	Date     string `json:"date,omitempty"`
	Month    *int   `json:"month,omitempty"`
	Year     *int   `json:"year,omitempty"`
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != "" {
		if _, ok := validator.IsValidDate(f.Date); !ok {
			errs.Add("date", "date must be in YYYY-MM-DD format")
		}
	}

	if (f.Month == nil) != (f.Year == nil) {
		errs.Add("month", "month and year must be provided together")
	}
	if f.Month != nil && !validator.IsValidMonth(*f.Month) {
		errs.Add("month", "month must be between 1 and 12")
	}
	if f.Year != nil && *f.Year < 1 {
		errs.Add("year", "year must be a positive number")
	}

	return errs.Err()
}

// Query converts a validated filter.
func (f AttendanceFilter) Query() Query {
	q := Query{WorkerID: f.WorkerID}
	if f.Date != "" {
		d := calendar.MustParse(f.Date)
		q.Date = &d
	}
	if f.Month != nil && f.Year != nil {
		q.Month = time.Month(*f.Month)
		q.Year = *f.Year
	}
	return q
}

type AttendanceResponse struct {
	ID        string `json:"id"`
	WorkerID  string `json:"workerId"`
	Date      string `json:"date"`
	Status    Status `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:        a.ID,
		WorkerID:  a.WorkerID,
		Date:      a.Date.String(),
		Status:    a.Status,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.Format(time.RFC3339),
	}
}
