package worker

import "context"

// WorkerRepository is the worker collection of the state store.
type WorkerRepository interface {
	Create(ctx context.Context, newWorker Worker) (Worker, error)
	GetByID(ctx context.Context, id string) (Worker, error)
	// List returns the roster ordered by name (case-insensitive), then id.
	List(ctx context.Context) ([]Worker, error)
	Update(ctx context.Context, w Worker) (Worker, error)
	// ExistsByName compares names case-insensitively, ignoring excludeID when set.
	ExistsByName(ctx context.Context, name string, excludeID string) (bool, error)
	// Delete removes the worker together with all of its attendance and payments.
	Delete(ctx context.Context, id string) error
}
