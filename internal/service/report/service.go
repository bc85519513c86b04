package report

import (
	"context"
	"fmt"
	"time"

	"github.com/fabtracko/fabtracko-backend-go/internal/domain/attendance"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/payment"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/report"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/worker"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/calendar"
	"github.com/shopspring/decimal"
)

type ReportServiceImpl struct {
	workerRepo     worker.WorkerRepository
	attendanceRepo attendance.AttendanceRepository
	paymentRepo    payment.PaymentRepository
	clock          calendar.Clock
}

func NewReportService(
	workerRepo worker.WorkerRepository,
	attendanceRepo attendance.AttendanceRepository,
	paymentRepo payment.PaymentRepository,
	clock calendar.Clock,
) report.ReportService {
	return &ReportServiceImpl{
		workerRepo:     workerRepo,
		attendanceRepo: attendanceRepo,
		paymentRepo:    paymentRepo,
		clock:          clock,
	}
}

// GetWorkerReport implements report.ReportService.
func (s *ReportServiceImpl) GetWorkerReport(ctx context.Context, req report.WorkerReportRequest) (report.WorkerMonthReport, error) {
	if err := req.Validate(s.clock.Today()); err != nil {
		return report.WorkerMonthReport{}, err
	}

	w, err := s.workerRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		return report.WorkerMonthReport{}, err
	}

	month := time.Month(req.Month)
	records, err := s.attendanceRepo.List(ctx, attendance.Query{WorkerID: w.ID, Month: month, Year: req.Year})
	if err != nil {
		return report.WorkerMonthReport{}, fmt.Errorf("failed to load attendance: %w", err)
	}
	payments, err := s.paymentRepo.List(ctx, payment.Query{WorkerID: w.ID, Month: month, Year: req.Year})
	if err != nil {
		return report.WorkerMonthReport{}, fmt.Errorf("failed to load payments: %w", err)
	}

	paymentResponses := make([]payment.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		paymentResponses = append(paymentResponses, payment.NewPaymentResponse(p))
	}

	return report.WorkerMonthReport{
		Month:             req.Month,
		Year:              req.Year,
		MonthLabel:        calendar.MonthLabel(month, req.Year),
		DaysInMonth:       calendar.DaysInMonth(month, req.Year),
		ReportGeneratedAt: s.clock.Time().Format(time.RFC3339),
		Summary:           SummarizeWorkerMonth(w, req.Month, req.Year, records, payments),
		Payments:          paymentResponses,
	}, nil
}

// GetMonthlyReport implements report.ReportService.
func (s *ReportServiceImpl) GetMonthlyReport(ctx context.Context, req report.MonthRequest) (report.MonthlyReport, error) {
	if err := req.Validate(s.clock.Today()); err != nil {
		return report.MonthlyReport{}, err
	}

	summaries, totals, overall, err := s.fleet(ctx, req)
	if err != nil {
		return report.MonthlyReport{}, err
	}

	month := time.Month(req.Month)
	return report.MonthlyReport{
		Month:                       req.Month,
		Year:                        req.Year,
		MonthLabel:                  calendar.MonthLabel(month, req.Year),
		DaysInMonth:                 calendar.DaysInMonth(month, req.Year),
		ReportGeneratedAt:           s.clock.Time().Format(time.RFC3339),
		TotalWorkers:                len(summaries),
		Workers:                     summaries,
		Totals:                      totals,
		OverallAttendancePercentage: overall,
		TopPerformers:               TopPerformers(summaries, report.DefaultTopPerformers),
		AdvanceSummary:              AdvanceSummary(summaries),
	}, nil
}

// GetTopPerformers implements report.ReportService.
func (s *ReportServiceImpl) GetTopPerformers(ctx context.Context, req report.TopPerformersRequest) ([]report.RankedWorker, error) {
	if err := req.Validate(s.clock.Today()); err != nil {
		return nil, err
	}

	summaries, _, _, err := s.fleet(ctx, req.MonthRequest)
	if err != nil {
		return nil, err
	}
	return TopPerformers(summaries, req.Limit), nil
}

// GetAdvanceSummary implements report.ReportService.
func (s *ReportServiceImpl) GetAdvanceSummary(ctx context.Context, req report.MonthRequest) ([]report.AdvanceEntry, error) {
	if err := req.Validate(s.clock.Today()); err != nil {
		return nil, err
	}

	summaries, _, _, err := s.fleet(ctx, req)
	if err != nil {
		return nil, err
	}
	return AdvanceSummary(summaries), nil
}

func (s *ReportServiceImpl) fleet(ctx context.Context, req report.MonthRequest) ([]report.WorkerMonthSummary, report.Totals, decimal.Decimal, error) {
	workers, err := s.workerRepo.List(ctx)
	if err != nil {
		return nil, report.Totals{}, decimal.Zero, fmt.Errorf("failed to load workers: %w", err)
	}

	month := time.Month(req.Month)
	records, err := s.attendanceRepo.List(ctx, attendance.Query{Month: month, Year: req.Year})
	if err != nil {
		return nil, report.Totals{}, decimal.Zero, fmt.Errorf("failed to load attendance: %w", err)
	}
	payments, err := s.paymentRepo.List(ctx, payment.Query{Month: month, Year: req.Year})
	if err != nil {
		return nil, report.Totals{}, decimal.Zero, fmt.Errorf("failed to load payments: %w", err)
	}

	summaries, totals, overall := SummarizeFleetMonth(workers, req.Month, req.Year, records, payments)
	return summaries, totals, overall, nil
}
