package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fabtracko/fabtracko-backend-go/internal/domain/attendance"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/worker"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/calendar"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	workerRepo     worker.WorkerRepository
	clock          calendar.Clock
}

// MarkAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, bool, error) {
	if err := req.Validate(s.clock.Today()); err != nil {
		return attendance.AttendanceResponse{}, false, err
	}

	if _, err := s.workerRepo.GetByID(ctx, req.WorkerID); err != nil {
		return attendance.AttendanceResponse{}, false, err
	}

	record, created, err := s.attendanceRepo.Upsert(ctx, attendance.Attendance{
		WorkerID: req.WorkerID,
		Date:     calendar.MustParse(req.Date),
		Status:   attendance.Status(req.Status),
	})
	if err != nil {
		return attendance.AttendanceResponse{}, false, err
	}

	slog.Info("attendance marked",
		"worker_id", record.WorkerID,
		"date", record.Date.String(),
		"status", record.Status,
		"created", created,
	)

	return attendance.NewAttendanceResponse(record), created, nil
}

// GetAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, workerID string, date string) (attendance.AttendanceResponse, error) {
	d, ok := validator.IsValidDate(date)
	if !ok {
		return attendance.AttendanceResponse{}, validator.ValidationErrors{{Field: "date", Message: "date must be in YYYY-MM-DD format"}}
	}

	record, err := s.attendanceRepo.GetByWorkerAndDate(ctx, workerID, d)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	if record == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
	}

	return attendance.NewAttendanceResponse(*record), nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.List(ctx, filter.Query())
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	return toResponses(records), nil
}

// GetWorkerMonth implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetWorkerMonth(ctx context.Context, workerID string, month, year int) ([]attendance.AttendanceResponse, error) {
	filter := attendance.AttendanceFilter{WorkerID: workerID, Month: &month, Year: &year}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.workerRepo.GetByID(ctx, workerID); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.List(ctx, attendance.Query{WorkerID: workerID, Month: time.Month(month), Year: year})
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	return toResponses(records), nil
}

func toResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, attendance.NewAttendanceResponse(r))
	}
	return responses
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	workerRepo worker.WorkerRepository,
	clock calendar.Clock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		workerRepo:     workerRepo,
		clock:          clock,
	}
}
