package payment

import "context"

// PaymentService defines business logic for advances
type PaymentService interface {
	RecordPayment(ctx context.Context, req CreatePaymentRequest) (PaymentResponse, error)
	ListPayments(ctx context.Context, filter PaymentFilter) ([]PaymentResponse, error)
	DeletePayment(ctx context.Context, id string) error
}
