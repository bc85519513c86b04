package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fabtracko/fabtracko-backend-go/internal/domain/worker"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/calendar"
	"github.com/fabtracko/fabtracko-backend-go/internal/service/file"
)

type WorkerServiceImpl struct {
	workerRepo  worker.WorkerRepository
	fileService file.FileService
	clock       calendar.Clock
}

// CreateWorker implements worker.WorkerService.
func (s *WorkerServiceImpl) CreateWorker(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(s.clock.Today()); err != nil {
		return worker.WorkerResponse{}, err
	}

	exists, err := s.workerRepo.ExistsByName(ctx, req.Name, "")
	if err != nil {
		return worker.WorkerResponse{}, fmt.Errorf("failed to check worker name: %w", err)
	}
	if exists {
		return worker.WorkerResponse{}, worker.ErrWorkerNameExists
	}

	created, err := s.workerRepo.Create(ctx, worker.Worker{
		Name:           req.Name,
		JoiningDate:    calendar.MustParse(req.JoiningDate),
		DailyWage:      req.DailyWage,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	slog.Info("worker created", "worker_id", created.ID, "name", created.Name)
	return worker.NewWorkerResponse(created), nil
}

// GetWorker implements worker.WorkerService.
func (s *WorkerServiceImpl) GetWorker(ctx context.Context, id string) (worker.WorkerResponse, error) {
	w, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return worker.NewWorkerResponse(w), nil
}

// ListWorkers implements worker.WorkerService.
func (s *WorkerServiceImpl) ListWorkers(ctx context.Context) ([]worker.WorkerResponse, error) {
	workers, err := s.workerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}

	responses := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		responses = append(responses, worker.NewWorkerResponse(w))
	}
	return responses, nil
}

// UpdateWorker implements worker.WorkerService.
func (s *WorkerServiceImpl) UpdateWorker(ctx context.Context, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(s.clock.Today()); err != nil {
		return worker.WorkerResponse{}, err
	}

	if _, err := s.workerRepo.GetByID(ctx, req.ID); err != nil {
		return worker.WorkerResponse{}, err
	}

	exists, err := s.workerRepo.ExistsByName(ctx, req.Name, req.ID)
	if err != nil {
		return worker.WorkerResponse{}, fmt.Errorf("failed to check worker name: %w", err)
	}
	if exists {
		return worker.WorkerResponse{}, worker.ErrWorkerNameExists
	}

	updated, err := s.workerRepo.Update(ctx, worker.Worker{
		ID:             req.ID,
		Name:           req.Name,
		JoiningDate:    calendar.MustParse(req.JoiningDate),
		DailyWage:      req.DailyWage,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	slog.Info("worker updated", "worker_id", updated.ID)
	return worker.NewWorkerResponse(updated), nil
}

// DeleteWorker implements worker.WorkerService.
func (s *WorkerServiceImpl) DeleteWorker(ctx context.Context, id string) error {
	if err := s.workerRepo.Delete(ctx, id); err != nil {
		return err
	}

	slog.Info("worker deleted", "worker_id", id)
	return nil
}

// UploadPicture implements worker.WorkerService.
func (s *WorkerServiceImpl) UploadPicture(ctx context.Context, req worker.UploadPictureRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	w, err := s.workerRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	stored, err := s.fileService.UploadWorkerPicture(ctx, w.ID, req.File, req.FileHeader.Filename)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	w.ProfilePicture = &stored.URL
	updated, err := s.workerRepo.Update(ctx, w)
	if err != nil {
		if delErr := s.fileService.DeleteFile(ctx, stored.Key); delErr != nil {
			slog.Error("failed to remove orphaned picture", "worker_id", w.ID, "key", stored.Key, "error", delErr)
		}
		return worker.WorkerResponse{}, err
	}

	slog.Info("worker picture uploaded", "worker_id", updated.ID)
	return worker.NewWorkerResponse(updated), nil
}

func NewWorkerService(
	workerRepo worker.WorkerRepository,
	fileService file.FileService,
	clock calendar.Clock,
) worker.WorkerService {
	return &WorkerServiceImpl{
		workerRepo:  workerRepo,
		fileService: fileService,
		clock:       clock,
	}
}
