package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/fabtracko/fabtracko-backend-go/internal/domain/attendance"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/worker"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/calendar"
)

type attendanceRepository struct {
	s *Store
}

func (r *attendanceRepository) Upsert(ctx context.Context, record attendance.Attendance) (attendance.Attendance, bool, error) {
	if !record.Status.IsValid() {
		return attendance.Attendance{}, false, fmt.Errorf("%w: %q", attendance.ErrInvalidStatus, record.Status)
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.workers[record.WorkerID]; !ok {
		return attendance.Attendance{}, false, worker.ErrWorkerNotFound
	}

	now := r.s.now()
	key := keyOf(record.WorkerID, record.Date)
	if id, ok := r.s.attendanceBy[key]; ok {
		existing := r.s.attendance[id]
		existing.Status = record.Status
		existing.UpdatedAt = now
		r.s.attendance[id] = existing
		return existing, false, nil
	}

	record.ID = r.s.newID()
	record.CreatedAt = now
	record.UpdatedAt = now
	r.s.attendance[record.ID] = record
	r.s.attendanceBy[key] = record.ID

	return record, true, nil
}

func (r *attendanceRepository) GetByWorkerAndDate(ctx context.Context, workerID string, date calendar.Date) (*attendance.Attendance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.attendanceBy[keyOf(workerID, date)]
	if !ok {
		return nil, nil
	}
	record := r.s.attendance[id]
	return &record, nil
}

func (r *attendanceRepository) List(ctx context.Context, q attendance.Query) ([]attendance.Attendance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	records := make([]attendance.Attendance, 0)
	for _, record := range r.s.attendance {
		if q.WorkerID != "" && record.WorkerID != q.WorkerID {
			continue
		}
		if q.Date != nil && !record.Date.Equal(*q.Date) {
			continue
		}
		if !inMonth(record.Date, q.Month, q.Year) {
			continue
		}
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.Before(records[j].Date)
		}
		return records[i].WorkerID < records[j].WorkerID
	})
	return records, nil
}
