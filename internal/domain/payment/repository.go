package payment

import (
	"context"
	"time"
)

// Query narrows a listing. Month and Year apply together.
type Query struct {
	WorkerID string
	Month    time.Month
	Year     int
}

// PaymentRepository is the payment collection of the state store.
type PaymentRepository interface {
	Create(ctx context.Context, p Payment) (Payment, error)
	GetByID(ctx context.Context, id string) (Payment, error)
	// List returns matching payments ordered by date, then creation time.
	List(ctx context.Context, q Query) ([]Payment, error)
	Delete(ctx context.Context, id string) error
}
