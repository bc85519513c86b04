package payment

import (
	"context"
	"testing"
	"time"

	"github.com/fabtracko/fabtracko-backend-go/internal/domain/payment"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/worker"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/calendar"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/validator"
	"github.com/fabtracko/fabtracko-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (payment.PaymentService, worker.Worker) {
	t.Helper()
	store := memory.NewStore()
	clock := calendar.FixedClock(time.Date(2025, time.March, 15, 9, 0, 0, 0, time.UTC))
	w, err := store.Workers().Create(context.Background(), worker.Worker{Name: "Sunil Verma", JoiningDate: calendar.MustParse("2023-02-10"), DailyWage: decimal.NewFromInt(450)})
	require.NoError(t, err)
	return NewPaymentService(store.Payments(), store.Workers(), clock), w
}

func TestRecordPayment(t *testing.T) {
	svc, w := setup(t)
	ctx := context.Background()

	resp, err := svc.RecordPayment(ctx, payment.CreatePaymentRequest{WorkerID: w.ID, Date: "2025-03-05", Amount: decimal.NewFromInt(1000)})
	require.NoError(t, err)
	assert.Equal(t, payment.TypeAdvance, resp.Type)
	assert.True(t, resp.Amount.Equal(decimal.NewFromInt(1000)))

	month, year := 3, 2025
	list, err := svc.ListPayments(ctx, payment.PaymentFilter{WorkerID: w.ID, Month: &month, Year: &year})
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.DeletePayment(ctx, resp.ID))
	assert.ErrorIs(t, svc.DeletePayment(ctx, resp.ID), payment.ErrPaymentNotFound)
}

func TestRecordPayment_Rejects(t *testing.T) {
	svc, w := setup(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		req   payment.CreatePaymentRequest
		field string
	}{
		{"zero amount", payment.CreatePaymentRequest{WorkerID: w.ID, Date: "2025-03-05", Amount: decimal.Zero}, "amount"},
		{"negative amount", payment.CreatePaymentRequest{WorkerID: w.ID, Date: "2025-03-05", Amount: decimal.NewFromInt(-5)}, "amount"},
		{"sub-paisa amount", payment.CreatePaymentRequest{WorkerID: w.ID, Date: "2025-03-05", Amount: decimal.RequireFromString("0.001")}, "amount"},
		{"three decimal places", payment.CreatePaymentRequest{WorkerID: w.ID, Date: "2025-03-05", Amount: decimal.RequireFromString("12.345")}, "amount"},
		{"amount too large", payment.CreatePaymentRequest{WorkerID: w.ID, Date: "2025-03-05", Amount: decimal.RequireFromString("100000000000")}, "amount"},
		{"unknown type", payment.CreatePaymentRequest{WorkerID: w.ID, Date: "2025-03-05", Amount: decimal.NewFromInt(5), Type: "bonus"}, "type"},
		{"future date", payment.CreatePaymentRequest{WorkerID: w.ID, Date: "2025-03-16", Amount: decimal.NewFromInt(5)}, "date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RecordPayment(ctx, tt.req)
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.field)
		})
	}

	two, err := svc.RecordPayment(ctx, payment.CreatePaymentRequest{WorkerID: w.ID, Date: "2025-03-05", Amount: decimal.RequireFromString("99.50")})
	require.NoError(t, err)
	assert.True(t, two.Amount.Equal(decimal.RequireFromString("99.5")))

	_, err = svc.RecordPayment(ctx, payment.CreatePaymentRequest{WorkerID: "ghost", Date: "2025-03-05", Amount: decimal.NewFromInt(5)})
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}
