package payment

import (
	"fmt"
	"time"

	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/calendar"
	"github.com/shopspring/decimal"
)

type Type string

// TypeAdvance is money paid to a worker ahead of wage settlement.
const TypeAdvance Type = "advance"

func (t Type) IsValid() bool {
	return t == TypeAdvance
}

func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
	return t, nil
}

type Payment struct {
	ID        string
	WorkerID  string
	Date      calendar.Date
	Amount    decimal.Decimal
	Type      Type
	CreatedAt time.Time
	UpdatedAt time.Time
}
