package file

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // Import for PNG decoding support
	"io"
	"log/slog"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/fabtracko/fabtracko-backend-go/internal/domain/worker"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/storage"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

const (
	// MaxPictureDimension bounds the longer side of a stored profile picture.
	MaxPictureDimension = 512
	pictureQuality      = 85
	pictureURLExpiry    = 7 * 24 * time.Hour
)

// StoredFile locates an uploaded object by storage key and by the URL clients use.
type StoredFile struct {
	Key string
	URL string
}

type FileService interface {
	// UploadWorkerPicture stores a resized JPEG
	UploadWorkerPicture(ctx context.Context, workerID string, file io.Reader, filename string) (StoredFile, error)

	// Generic operations
	DeleteFile(ctx context.Context, path string) error
	GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// UploadWorkerPicture implements FileService.
func (s *fileServiceImpl) UploadWorkerPicture(ctx context.Context, workerID string, file io.Reader, filename string) (StoredFile, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return StoredFile{}, fmt.Errorf("%w: only jpg, jpeg, png allowed", worker.ErrInvalidPicture)
	}

	buffer, err := io.ReadAll(io.LimitReader(file, worker.MaxPictureSize+1))
	if err != nil {
		return StoredFile{}, fmt.Errorf("failed to read image: %w", err)
	}
	if len(buffer) > worker.MaxPictureSize {
		return StoredFile{}, fmt.Errorf("%w: image must be less than 5MB", worker.ErrInvalidPicture)
	}

	encoded, err := fitPicture(buffer, MaxPictureDimension)
	if err != nil {
		return StoredFile{}, err
	}

	// workers/{workerID}/{uuid}.jpg, always JPEG after re-encoding
	key := path.Join("workers", workerID, uuid.New().String()+".jpg")

	uploadedPath, err := s.storage.Upload(ctx, bytes.NewReader(encoded), key, "image/jpeg")
	if err != nil {
		return StoredFile{}, fmt.Errorf("failed to upload picture: %w", err)
	}

	url, err := s.storage.GetURL(ctx, uploadedPath, pictureURLExpiry)
	if err != nil {
		if delErr := s.storage.Delete(ctx, uploadedPath); delErr != nil {
			slog.Error("failed to remove picture after URL error", "key", uploadedPath, "error", delErr)
		}
		return StoredFile{}, fmt.Errorf("failed to get picture url: %w", err)
	}

	return StoredFile{Key: uploadedPath, URL: url}, nil
}

// DeleteFile deletes a file
func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

// GetFileURL generates URL to access file
func (s *fileServiceImpl) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return s.storage.GetURL(ctx, path, expiry)
}

// ==================== HELPER FUNCTIONS ====================

// fitPicture decodes a JPEG or PNG, scales it down so neither side exceeds maxSide
// and re-encodes it as JPEG.
func fitPicture(buffer []byte, maxSide int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(buffer))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode image: %v", worker.ErrInvalidPicture, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width > maxSide || height > maxSide {
		if width >= height {
			height = height * maxSide / width
			width = maxSide
		} else {
			width = width * maxSide / height
			height = maxSide
		}
		img = resizeImage(img, max(width, 1), max(height, 1))
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: pictureQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

// resizeImage resizes an image to the specified dimensions using high-quality interpolation
func resizeImage(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
