package file

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/fabtracko/fabtracko-backend-go/internal/domain/worker"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestUploadWorkerPicture_ResizesAndStores(t *testing.T) {
	dir := t.TempDir()
	local, err := storage.NewLocalStorage(dir, "http://localhost:8080/uploads")
	require.NoError(t, err)
	svc := NewFileService(local)

	stored, err := svc.UploadWorkerPicture(context.Background(), "w1", bytes.NewReader(pngBytes(t, 1024, 256)), "photo.PNG")
	require.NoError(t, err)
	url := stored.URL
	require.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/workers/w1/"), url)
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	key := strings.TrimPrefix(url, "http://localhost:8080/uploads/")
	assert.Equal(t, key, stored.Key)
	rc, err := local.Download(context.Background(), key)
	require.NoError(t, err)
	defer rc.Close()

	cfg, err := jpeg.DecodeConfig(rc)
	require.NoError(t, err)
	assert.Equal(t, MaxPictureDimension, cfg.Width)
	assert.Equal(t, 128, cfg.Height)
}

func TestUploadWorkerPicture_Rejects(t *testing.T) {
	local, err := storage.NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)
	svc := NewFileService(local)

	_, err = svc.UploadWorkerPicture(context.Background(), "w1", strings.NewReader("gif"), "photo.gif")
	assert.ErrorIs(t, err, worker.ErrInvalidPicture)

	_, err = svc.UploadWorkerPicture(context.Background(), "w1", strings.NewReader("not an image"), "photo.jpg")
	assert.ErrorIs(t, err, worker.ErrInvalidPicture)
}
