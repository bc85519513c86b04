// Package memory is an in-process state store. All three collections share one
// lock, so a worker delete and its cascade are observed atomically.
package memory

import (
	"sync"
	"time"

	"github.com/fabtracko/fabtracko-backend-go/internal/domain/attendance"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/payment"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/worker"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/calendar"
	"github.com/google/uuid"
)

type attendanceKey struct {
	workerID string
	date     string
}

func keyOf(workerID string, date calendar.Date) attendanceKey {
	return attendanceKey{workerID: workerID, date: date.String()}
}

type Store struct {
	mu sync.RWMutex

	workers      map[string]worker.Worker
	attendance   map[string]attendance.Attendance
	attendanceBy map[attendanceKey]string
	payments     map[string]payment.Payment

	now   func() time.Time
	newID func() string
}

func NewStore() *Store {
	return &Store{
		workers:      make(map[string]worker.Worker),
		attendance:   make(map[string]attendance.Attendance),
		attendanceBy: make(map[attendanceKey]string),
		payments:     make(map[string]payment.Payment),
		now:          time.Now,
		newID:        func() string { return uuid.Must(uuid.NewV7()).String() },
	}
}

func (s *Store) Workers() worker.WorkerRepository {
	return &workerRepository{s: s}
}

func (s *Store) Attendance() attendance.AttendanceRepository {
	return &attendanceRepository{s: s}
}

func (s *Store) Payments() payment.PaymentRepository {
	return &paymentRepository{s: s}
}

func inMonth(d calendar.Date, month time.Month, year int) bool {
	if month == 0 || year == 0 {
		return true
	}
	return d.InMonth(month, year)
}

func copyString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
