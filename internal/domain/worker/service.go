package worker

import "context"

// WorkerService defines business logic for the worker roster
type WorkerService interface {
	CreateWorker(ctx context.Context, req CreateWorkerRequest) (WorkerResponse, error)
	GetWorker(ctx context.Context, id string) (WorkerResponse, error)
	ListWorkers(ctx context.Context) ([]WorkerResponse, error)

	// UpdateWorker replaces the full record
	UpdateWorker(ctx context.Context, req UpdateWorkerRequest) (WorkerResponse, error)

	// DeleteWorker removes the worker and cascades to attendance and payments
	DeleteWorker(ctx context.Context, id string) error

	UploadPicture(ctx context.Context, req UploadPictureRequest) (WorkerResponse, error)
}
