package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/fabtracko/fabtracko-backend-go/internal/domain/worker"
)

type workerRepository struct {
	s *Store
}

func (r *workerRepository) Create(ctx context.Context, newWorker worker.Worker) (worker.Worker, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	newWorker.ID = r.s.newID()
	newWorker.ProfilePicture = copyString(newWorker.ProfilePicture)
	newWorker.CreatedAt = now
	newWorker.UpdatedAt = now
	r.s.workers[newWorker.ID] = newWorker

	return newWorker, nil
}

func (r *workerRepository) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	w, ok := r.s.workers[id]
	if !ok {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	w.ProfilePicture = copyString(w.ProfilePicture)
	return w, nil
}

func (r *workerRepository) List(ctx context.Context) ([]worker.Worker, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	workers := make([]worker.Worker, 0, len(r.s.workers))
	for _, w := range r.s.workers {
		w.ProfilePicture = copyString(w.ProfilePicture)
		workers = append(workers, w)
	}
	sort.Slice(workers, func(i, j int) bool {
		a, b := strings.ToLower(workers[i].Name), strings.ToLower(workers[j].Name)
		if a != b {
			return a < b
		}
		return workers[i].ID < workers[j].ID
	})
	return workers, nil
}

func (r *workerRepository) Update(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.workers[w.ID]
	if !ok {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}

	w.ProfilePicture = copyString(w.ProfilePicture)
	w.CreatedAt = existing.CreatedAt
	w.UpdatedAt = r.s.now()
	r.s.workers[w.ID] = w

	return w, nil
}

func (r *workerRepository) ExistsByName(ctx context.Context, name string, excludeID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for id, w := range r.s.workers {
		if id == excludeID {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(w.Name), strings.TrimSpace(name)) {
			return true, nil
		}
	}
	return false, nil
}

func (r *workerRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.workers[id]; !ok {
		return worker.ErrWorkerNotFound
	}

	for recordID, record := range r.s.attendance {
		if record.WorkerID == id {
			delete(r.s.attendanceBy, keyOf(record.WorkerID, record.Date))
			delete(r.s.attendance, recordID)
		}
	}
	for paymentID, p := range r.s.payments {
		if p.WorkerID == id {
			delete(r.s.payments, paymentID)
		}
	}
	delete(r.s.workers, id)

	return nil
}
