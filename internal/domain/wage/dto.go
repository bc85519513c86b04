package wage

import (
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type WageRequest struct {
	WorkerID string `json:"workerId"`
	Month    int    `json:"month"`
	Year     int    `json:"year"`
}

func (r *WageRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs.Add("workerId", "workerId is required")
	}
	if !validator.IsValidMonth(r.Month) {
		errs.Add("month", "month must be between 1 and 12")
	}
	if r.Year < 1 {
		errs.Add("year", "year must be a positive number")
	}

	return errs.Err()
}

// Breakdown is the wage computation for one worker and month.
type Breakdown struct {
	WorkerID     string          `json:"workerId"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	WorkingDays  decimal.Decimal `json:"workingDays"`
	DailyWage    decimal.Decimal `json:"dailyWage"`
	GrossWages   decimal.Decimal `json:"grossWages"`
	TotalAdvance decimal.Decimal `json:"totalAdvance"`
	NetWages     decimal.Decimal `json:"netWages"`
}
