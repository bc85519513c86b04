package payment

import (
	"time"

	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/calendar"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreatePaymentRequest struct {
	WorkerID string          `json:"workerId"`
	Date     string          `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Type     string          `json:"type"`
}

// Validate defaults an empty type to advance.
func (r *CreatePaymentRequest) Validate(today calendar.Date) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs.Add("workerId", "workerId is required")
	}

	if validator.IsEmpty(r.Date) {
		errs.Add("date", "date is required")
	} else if date, ok := validator.IsValidDate(r.Date); !ok {
		errs.Add("date", "date must be in YYYY-MM-DD format")
	} else if date.After(today) {
		errs.Add("date", "Cannot record a payment for a future date")
	}

	if !validator.IsPositive(r.Amount) {
		errs.Add("amount", "Amount must be greater than 0")
	} else if !validator.IsStorableAmount(r.Amount) {
		errs.Add("amount", "Amount must have at most 2 decimal places and be less than 10000000000")
	}

	if r.Type == "" {
		r.Type = string(TypeAdvance)
	} else if _, err := ParseType(r.Type); err != nil {
		errs.Add("type", ErrInvalidType.Error())
	}

	return errs.Err()
}

type PaymentFilter struct {
	WorkerID string `json:"workerId,omitempty"`
	Month    *int   `json:"month,omitempty"`
	Year     *int   `json:"year,omitempty"`
}

func (f *PaymentFilter) Validate() error {
	var errs validator.ValidationErrors

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

func (f PaymentFilter) Query() Query {
	q := Query{WorkerID: f.WorkerID}
	if f.Month != nil && f.Year != nil {
		q.Month = time.Month(*f.Month)
		q.Year = *f.Year
	}
	return q
}

type PaymentResponse struct {
	ID        string          `json:"id"`
	WorkerID  string          `json:"workerId"`
	Date      string          `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Type      Type            `json:"type"`
	CreatedAt string          `json:"createdAt"`
}

func NewPaymentResponse(p Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID,
		WorkerID:  p.WorkerID,
		Date:      p.Date.String(),
		Amount:    p.Amount,
		Type:      p.Type,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}
