package worker

import "errors"

var (
	ErrWorkerNotFound   = errors.New("worker not found")
	ErrWorkerNameExists = errors.New("a worker with this name already exists")
	ErrInvalidPicture   = errors.New("invalid profile picture")
)
