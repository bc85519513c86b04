package wage

import (
	"context"

	"github.com/shopspring/decimal"
)

// WageService computes monthly pay from the attendance register and advances.
type WageService interface {
	// CalculateNetWages returns zero for an unknown worker.
	CalculateNetWages(ctx context.Context, workerID string, month, year int) (decimal.Decimal, error)

	GetBreakdown(ctx context.Context, req WageRequest) (Breakdown, error)
}
