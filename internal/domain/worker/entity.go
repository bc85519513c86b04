package worker

import (
	"time"

	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/calendar"
	"github.com/shopspring/decimal"
)

type Worker struct {
	ID             string
	Name           string
	JoiningDate    calendar.Date
	DailyWage      decimal.Decimal
	ProfilePicture *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// MinJoiningDate is the earliest accepted joining date.
var MinJoiningDate = calendar.New(1900, time.January, 1)
