package wage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fabtracko/fabtracko-backend-go/internal/domain/attendance"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/payment"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/wage"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/worker"
	"github.com/shopspring/decimal"
)

type WageServiceImpl struct {
	workerRepo     worker.WorkerRepository
	attendanceRepo attendance.AttendanceRepository
	paymentRepo    payment.PaymentRepository
}

// CalculateNetWages implements wage.WageService.
func (s *WageServiceImpl) CalculateNetWages(ctx context.Context, workerID string, month, year int) (decimal.Decimal, error) {
	b, err := s.breakdown(ctx, workerID, month, year)
	if err != nil {
		if errors.Is(err, worker.ErrWorkerNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}
	return b.NetWages, nil
}

// GetBreakdown implements wage.WageService.
func (s *WageServiceImpl) GetBreakdown(ctx context.Context, req wage.WageRequest) (wage.Breakdown, error) {
	if err := req.Validate(); err != nil {
		return wage.Breakdown{}, err
	}

	b, err := s.breakdown(ctx, req.WorkerID, req.Month, req.Year)
	if err != nil {
		if errors.Is(err, worker.ErrWorkerNotFound) {
			return wage.Breakdown{
				WorkerID:     req.WorkerID,
				Month:        req.Month,
				Year:         req.Year,
				WorkingDays:  decimal.Zero,
				DailyWage:    decimal.Zero,
				GrossWages:   decimal.Zero,
				TotalAdvance: decimal.Zero,
				NetWages:     decimal.Zero,
			}, nil
		}
		return wage.Breakdown{}, err
	}
	return b, nil
}

func (s *WageServiceImpl) breakdown(ctx context.Context, workerID string, month, year int) (wage.Breakdown, error) {
	w, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return wage.Breakdown{}, err
	}

	records, err := s.attendanceRepo.List(ctx, attendance.Query{WorkerID: workerID, Month: monthOf(month), Year: year})
	if err != nil {
		return wage.Breakdown{}, fmt.Errorf("failed to load attendance: %w", err)
	}

	payments, err := s.paymentRepo.List(ctx, payment.Query{WorkerID: workerID, Month: monthOf(month), Year: year})
	if err != nil {
		return wage.Breakdown{}, fmt.Errorf("failed to load payments: %w", err)
	}

	return Compute(w, month, year, records, payments), nil
}

func monthOf(month int) time.Month {
	return time.Month(month)
}

func NewWageService(
	workerRepo worker.WorkerRepository,
	attendanceRepo attendance.AttendanceRepository,
	paymentRepo payment.PaymentRepository,
) wage.WageService {
	return &WageServiceImpl{
		workerRepo:     workerRepo,
		attendanceRepo: attendanceRepo,
		paymentRepo:    paymentRepo,
	}
}
