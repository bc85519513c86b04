package attendance

import (
	"fmt"
	"time"

	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/calendar"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "halfday"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusHalfDay:
		return true
	}
	return false
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return status, nil
}

// Attendance is the single record of a worker on a calendar day.
// (WorkerID, Date) is unique across the store.
type Attendance struct {
	ID        string
	WorkerID  string
	Date      calendar.Date
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}
