package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fabtracko/fabtracko-backend-go/internal/domain/attendance"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/worker"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/calendar"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/database"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

const attendanceColumns = `id, worker_id, date, status, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var (
		a    attendance.Attendance
		date time.Time
	)
	if err := row.Scan(&a.ID, &a.WorkerID, &date, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return attendance.Attendance{}, err
	}
	a.Date = calendar.FromTime(date)
	return a, nil
}

// Upsert implements attendance.AttendanceRepository.
// xmax is zero only on a freshly inserted row version.
func (a *attendanceRepository) Upsert(ctx context.Context, record attendance.Attendance) (attendance.Attendance, bool, error) {
	if !record.Status.IsValid() {
		return attendance.Attendance{}, false, fmt.Errorf("%w: %q", attendance.ErrInvalidStatus, record.Status)
	}
	if !validator.IsValidUUID(record.WorkerID) {
		return attendance.Attendance{}, false, worker.ErrWorkerNotFound
	}
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance (id, worker_id, date, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (worker_id, date) DO UPDATE
		SET status = EXCLUDED.status, updated_at = NOW()
		RETURNING ` + attendanceColumns + `, (xmax = 0) AS inserted
	`

	var (
		result   attendance.Attendance
		date     time.Time
		inserted bool
	)
	err := q.QueryRow(ctx, query,
		uuid.Must(uuid.NewV7()).String(),
		record.WorkerID,
		record.Date.Time(),
		string(record.Status),
	).Scan(&result.ID, &result.WorkerID, &date, &result.Status, &result.CreatedAt, &result.UpdatedAt, &inserted)
	if err != nil {
		if isForeignKeyViolation(err) {
			return attendance.Attendance{}, false, worker.ErrWorkerNotFound
		}
		return attendance.Attendance{}, false, fmt.Errorf("failed to upsert attendance: %w", err)
	}
	result.Date = calendar.FromTime(date)

	return result, inserted, nil
}

// GetByWorkerAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByWorkerAndDate(ctx context.Context, workerID string, date calendar.Date) (*attendance.Attendance, error) {
	if !validator.IsValidUUID(workerID) {
		return nil, nil
	}
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE worker_id = $1 AND date = $2`

	record, err := scanAttendance(q.QueryRow(ctx, query, workerID, date.Time()))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}

	return &record, nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.Query) ([]attendance.Attendance, error) {
	if filter.WorkerID != "" && !validator.IsValidUUID(filter.WorkerID) {
		return []attendance.Attendance{}, nil
	}
	q := GetQuerier(ctx, a.db)

	var (
		conditions []string
		args       []interface{}
	)
	if filter.WorkerID != "" {
		args = append(args, filter.WorkerID)
		conditions = append(conditions, fmt.Sprintf("worker_id = $%d", len(args)))
	}
	if filter.Date != nil {
		args = append(args, filter.Date.Time())
		conditions = append(conditions, fmt.Sprintf("date = $%d", len(args)))
	}
	if filter.Month != 0 && filter.Year != 0 {
		first, last := calendar.MonthRange(filter.Month, filter.Year)
		args = append(args, first.Time(), last.Time())
		conditions = append(conditions, fmt.Sprintf("date BETWEEN $%d AND $%d", len(args)-1, len(args)))
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + attendanceColumns + ` FROM attendance`)
	if len(conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}
	sb.WriteString(" ORDER BY date, worker_id")

	rows, err := q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		record, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}

	return records, nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{
		db: db,
	}
}
