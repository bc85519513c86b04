package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/fabtracko/fabtracko-backend-go/internal/domain/payment"
	"github.com/fabtracko/fabtracko-backend-go/internal/domain/worker"
)

type paymentRepository struct {
	s *Store
}

func (r *paymentRepository) Create(ctx context.Context, p payment.Payment) (payment.Payment, error) {
	if !p.Type.IsValid() {
		return payment.Payment{}, fmt.Errorf("%w: %q", payment.ErrInvalidType, p.Type)
	}
	if !p.Amount.IsPositive() {
		return payment.Payment{}, fmt.Errorf("payment amount must be positive, got %s", p.Amount)
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.workers[p.WorkerID]; !ok {
		return payment.Payment{}, worker.ErrWorkerNotFound
	}

	now := r.s.now()
	p.ID = r.s.newID()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.s.payments[p.ID] = p

	return p, nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id string) (payment.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.payments[id]
	if !ok {
		return payment.Payment{}, payment.ErrPaymentNotFound
	}
	return p, nil
}

func (r *paymentRepository) List(ctx context.Context, q payment.Query) ([]payment.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	payments := make([]payment.Payment, 0)
	for _, p := range r.s.payments {
		if q.WorkerID != "" && p.WorkerID != q.WorkerID {
			continue
		}
		if !inMonth(p.Date, q.Month, q.Year) {
			continue
		}
		payments = append(payments, p)
	}
	sort.Slice(payments, func(i, j int) bool {
		a, b := payments[i], payments[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	return payments, nil
}

func (r *paymentRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.payments[id]; !ok {
		return payment.ErrPaymentNotFound
	}
	delete(r.s.payments, id)
	return nil
}
