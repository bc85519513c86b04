package payment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fabtracko/fabtracko-backend-go/internal/domain/payment"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/worker"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/calendar"
)

type PaymentServiceImpl struct {
	paymentRepo payment.PaymentRepository
	workerRepo  worker.WorkerRepository
	clock       calendar.Clock
}

// RecordPayment implements payment.PaymentService.
func (s *PaymentServiceImpl) RecordPayment(ctx context.Context, req payment.CreatePaymentRequest) (payment.PaymentResponse, error) {
	if err := req.Validate(s.clock.Today()); err != nil {
		return payment.PaymentResponse{}, err
	}

	if _, err := s.workerRepo.GetByID(ctx, req.WorkerID); err != nil {
		return payment.PaymentResponse{}, err
	}

	created, err := s.paymentRepo.Create(ctx, payment.Payment{
		WorkerID: req.WorkerID,
		Date:     calendar.MustParse(req.Date),
		Amount:   req.Amount,
		Type:     payment.Type(req.Type),
	})
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	slog.Info("payment recorded",
		"payment_id", created.ID,
		"worker_id", created.WorkerID,
		"amount", created.Amount.String(),
		"type", created.Type,
	)

	return payment.NewPaymentResponse(created), nil
}

// ListPayments implements payment.PaymentService.
func (s *PaymentServiceImpl) ListPayments(ctx context.Context, filter payment.PaymentFilter) ([]payment.PaymentResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	if filter.WorkerID != "" {
		if _, err := s.workerRepo.GetByID(ctx, filter.WorkerID); err != nil {
			return nil, err
		}
	}

	payments, err := s.paymentRepo.List(ctx, filter.Query())
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	responses := make([]payment.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, payment.NewPaymentResponse(p))
	}
	return responses, nil
}

// DeletePayment implements payment.PaymentService.
func (s *PaymentServiceImpl) DeletePayment(ctx context.Context, id string) error {
	if err := s.paymentRepo.Delete(ctx, id); err != nil {
		return err
	}

	slog.Info("payment deleted", "payment_id", id)
	return nil
}

func NewPaymentService(
	paymentRepo payment.PaymentRepository,
	workerRepo worker.WorkerRepository,
	clock calendar.Clock,
) payment.PaymentService {
	return &PaymentServiceImpl{
		paymentRepo: paymentRepo,
		workerRepo:  workerRepo,
		clock:       clock,
	}
}
