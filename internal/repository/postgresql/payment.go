package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fabtracko/fabtracko-backend-go/internal/domain/payment"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/worker"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/calendar"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/database"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type paymentRepository struct {
	db *database.DB
}

const paymentColumns = `id, worker_id, date, amount, type, created_at, updated_at`

func scanPayment(row pgx.Row) (payment.Payment, error) {
	var (
		p    payment.Payment
		date time.Time
	)
	if err := row.Scan(&p.ID, &p.WorkerID, &date, &p.Amount, &p.Type, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return payment.Payment{}, err
	}
	p.Date = calendar.FromTime(date)
	return p, nil
}

// Create implements payment.PaymentRepository.
func (r *paymentRepository) Create(ctx context.Context, p payment.Payment) (payment.Payment, error) {
	if !p.Type.IsValid() {
		return payment.Payment{}, fmt.Errorf("%w: %q", payment.ErrInvalidType, p.Type)
	}
	if !validator.IsValidUUID(p.WorkerID) {
		return payment.Payment{}, worker.ErrWorkerNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payments (id, worker_id, date, amount, type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + paymentColumns

	created, err := scanPayment(q.QueryRow(ctx, query,
		uuid.Must(uuid.NewV7()).String(),
		p.WorkerID,
		p.Date.Time(),
		p.Amount,
		string(p.Type),
	))
	if err != nil {
		if isForeignKeyViolation(err) {
			return payment.Payment{}, worker.ErrWorkerNotFound
		}
		return payment.Payment{}, fmt.Errorf("failed to create payment: %w", err)
	}

	return created, nil
}

// GetByID implements payment.PaymentRepository.
func (r *paymentRepository) GetByID(ctx context.Context, id string) (payment.Payment, error) {
	if !validator.IsValidUUID(id) {
		return payment.Payment{}, payment.ErrPaymentNotFound
	}
	q := GetQuerier(ctx, r.db)

	p, err := scanPayment(q.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payment.Payment{}, payment.ErrPaymentNotFound
		}
		return payment.Payment{}, fmt.Errorf("failed to get payment: %w", err)
	}

	return p, nil
}

// List implements payment.PaymentRepository.
func (r *paymentRepository) List(ctx context.Context, filter payment.Query) ([]payment.Payment, error) {
	if filter.WorkerID != "" && !validator.IsValidUUID(filter.WorkerID) {
		return []payment.Payment{}, nil
	}
	q := GetQuerier(ctx, r.db)

	var (
		conditions []string
		args       []interface{}
	)
	if filter.WorkerID != "" {
		args = append(args, filter.WorkerID)
		conditions = append(conditions, fmt.Sprintf("worker_id = $%d", len(args)))
	}
	if filter.Month != 0 && filter.Year != 0 {
		first, last := calendar.MonthRange(filter.Month, filter.Year)
		args = append(args, first.Time(), last.Time())
		conditions = append(conditions, fmt.Sprintf("date BETWEEN $%d AND $%d", len(args)-1, len(args)))
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + paymentColumns + ` FROM payments`)
	if len(conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}
	sb.WriteString(" ORDER BY date, created_at, id")

	rows, err := q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	payments := make([]payment.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}

	return payments, nil
}

// Delete implements payment.PaymentRepository.
func (r *paymentRepository) Delete(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return payment.ErrPaymentNotFound
	}
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payment.ErrPaymentNotFound
	}
	return nil
}

func NewPaymentRepository(db *database.DB) payment.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}
