package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/fabtracko/fabtracko-backend-go/internal/domain/worker"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/calendar"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/database"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type workerRepository struct {
	db *database.DB
}

const workerColumns = `id, name, joining_date, daily_wage, profile_picture, created_at, updated_at`

func scanWorker(row pgx.Row) (worker.Worker, error) {
	var (
		w           worker.Worker
		joiningDate time.Time
	)
	err := row.Scan(&w.ID, &w.Name, &joiningDate, &w.DailyWage, &w.ProfilePicture, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return worker.Worker{}, err
	}
	w.JoiningDate = calendar.FromTime(joiningDate)
	return w, nil
}

// Create implements worker.WorkerRepository.
func (r *workerRepository) Create(ctx context.Context, newWorker worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workers (id, name, joining_date, daily_wage, profile_picture)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + workerColumns

	created, err := scanWorker(q.QueryRow(ctx, query,
		uuid.Must(uuid.NewV7()).String(),
		newWorker.Name,
		newWorker.JoiningDate.Time(),
		newWorker.DailyWage,
		newWorker.ProfilePicture,
	))
	if err != nil {
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}

	return created, nil
}

// GetByID implements worker.WorkerRepository.
func (r *workerRepository) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	if !validator.IsValidUUID(id) {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workerColumns + ` FROM workers WHERE id = $1`

	w, err := scanWorker(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker: %w", err)
	}

	return w, nil
}

// List implements worker.WorkerRepository.
func (r *workerRepository) List(ctx context.Context) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workerColumns + ` FROM workers ORDER BY LOWER(name), id`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	workers := make([]worker.Worker, 0)
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate workers: %w", err)
	}

	return workers, nil
}

// Update implements worker.WorkerRepository.
func (r *workerRepository) Update(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	if !validator.IsValidUUID(w.ID) {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workers
		SET name = $2, joining_date = $3, daily_wage = $4, profile_picture = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + workerColumns

	updated, err := scanWorker(q.QueryRow(ctx, query, w.ID, w.Name, w.JoiningDate.Time(), w.DailyWage, w.ProfilePicture))
	if err != nil {
		if err == pgx.ErrNoRows {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to update worker: %w", err)
	}

	return updated, nil
}

// ExistsByName implements worker.WorkerRepository.
func (r *workerRepository) ExistsByName(ctx context.Context, name string, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM workers
			WHERE LOWER(TRIM(name)) = LOWER(TRIM($1))
			  AND ($2 = '' OR id::text <> $2)
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check worker name: %w", err)
	}
	return exists, nil
}

// Delete implements worker.WorkerRepository.
// Attendance and payments are removed explicitly in the same transaction so the
// cascade does not depend on the FK action being present.
func (r *workerRepository) Delete(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return worker.ErrWorkerNotFound
	}

	return WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		if _, err := q.Exec(ctx, `DELETE FROM attendance WHERE worker_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete worker attendance: %w", err)
		}
		if _, err := q.Exec(ctx, `DELETE FROM payments WHERE worker_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete worker payments: %w", err)
		}

		tag, err := q.Exec(ctx, `DELETE FROM workers WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete worker: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return worker.ErrWorkerNotFound
		}
		return nil
	})
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepository{
		db: db,
	}
}
