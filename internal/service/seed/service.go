package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fabtracko/fabtracko-backend-go/internal/domain/attendance"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/payment"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/worker"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/calendar"
	"github.com/shopspring/decimal"
)

type sampleWorker struct {
	name        string
	joiningDate string
	dailyWage   int64
	advance     int64
}

var sampleWorkers = []sampleWorker{
	{name: "Rajesh Kumar", joiningDate: "2023-01-15", dailyWage: 500, advance: 1000},
	{name: "Sunil Verma", joiningDate: "2023-02-10", dailyWage: 450, advance: 500},
	{name: "Amit Singh", joiningDate: "2023-03-05", dailyWage: 550},
}

// Result describes what a seed run did.
type Result struct {
	Seeded     bool
	Workers    int
	Attendance int
	Payments   int
}

type Seeder struct {
	workerRepo     worker.WorkerRepository
	attendanceRepo attendance.AttendanceRepository
	paymentRepo    payment.PaymentRepository
	clock          calendar.Clock
}

func NewSeeder(
	workerRepo worker.WorkerRepository,
	attendanceRepo attendance.AttendanceRepository,
	paymentRepo payment.PaymentRepository,
	clock calendar.Clock,
) *Seeder {
	return &Seeder{
		workerRepo:     workerRepo,
		attendanceRepo: attendanceRepo,
		paymentRepo:    paymentRepo,
		clock:          clock,
	}
}

// Seed inserts sample workers with attendance and advances for the current month,
// up to today. It does nothing when the roster already has workers.
func (s *Seeder) Seed(ctx context.Context) (Result, error) {
	existing, err := s.workerRepo.List(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("failed to list workers: %w", err)
	}
	if len(existing) > 0 {
		slog.Info("seed skipped, roster not empty", "workers", len(existing))
		return Result{Workers: len(existing)}, nil
	}

	today := s.clock.Today()
	first, _ := calendar.MonthRange(today.Month(), today.Year())

	var result Result
	for i, sample := range sampleWorkers {
		w, err := s.workerRepo.Create(ctx, worker.Worker{
			Name:        sample.name,
			JoiningDate: calendar.MustParse(sample.joiningDate),
			DailyWage:   decimal.NewFromInt(sample.dailyWage),
		})
		if err != nil {
			return result, fmt.Errorf("failed to create worker %q: %w", sample.name, err)
		}
		result.Workers++

		for d := first; !d.After(today); d = d.AddDays(1) {
			_, _, err := s.attendanceRepo.Upsert(ctx, attendance.Attendance{
				WorkerID: w.ID,
				Date:     d,
				Status:   sampleStatus(i, d.Day()),
			})
			if err != nil {
				return result, fmt.Errorf("failed to mark attendance for %q: %w", sample.name, err)
			}
			result.Attendance++
		}

		if sample.advance > 0 {
			_, err := s.paymentRepo.Create(ctx, payment.Payment{
				WorkerID: w.ID,
				Date:     first,
				Amount:   decimal.NewFromInt(sample.advance),
				Type:     payment.TypeAdvance,
			})
			if err != nil {
				return result, fmt.Errorf("failed to record advance for %q: %w", sample.name, err)
			}
			result.Payments++
		}
	}

	result.Seeded = true
	slog.Info("seed completed",
		"workers", result.Workers,
		"attendance", result.Attendance,
		"payments", result.Payments,
	)
	return result, nil
}

// sampleStatus gives each worker a different weekly rhythm.
func sampleStatus(workerIndex, day int) attendance.Status {
	switch (day + workerIndex*2) % 7 {
	case 0:
		return attendance.StatusAbsent
	case 4:
		return attendance.StatusHalfDay
	default:
		return attendance.StatusPresent
	}
}
