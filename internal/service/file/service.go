package file

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoding support
	"io"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hadirin/hadirin-backend-go/internal/pkg/storage"
	"golang.org/x/image/draw"
)

type FileService interface {
	// UploadAttendanceProof stores a check-in/check-out proof photo,
	// compressed to a bounded size
	UploadAttendanceProof(ctx context.Context, employeeID string, date time.Time, file io.Reader, filename string, checkKind string) (string, error)

	// UploadRequestAttachment stores a supporting document for a
	// leave/overtime/correction request
	UploadRequestAttachment(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error)

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

// UploadAttendanceProof compresses the photo to between 50KB and 150KB and
// stores it under attendance/{date}/. Output is always JPEG.
func (s *fileServiceImpl) UploadAttendanceProof(ctx context.Context, employeeID string, date time.Time, file io.Reader, filename string, checkKind string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return "", fmt.Errorf("invalid file type: only jpg, jpeg, png allowed")
	}

	buffer, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	compressed, err := compressImage(buffer, 150*1024, 50*1024)
	if err != nil {
		return "", fmt.Errorf("failed to compress image: %w", err)
	}

	dateStr := date.Format("2006-01-02")
	newFilename := fmt.Sprintf("%s-%s-%d.jpg", employeeID, checkKind, time.Now().Unix())
	path := filepath.Join("attendance", dateStr, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, bytes.NewReader(compressed), path, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("failed to upload attendance proof: %w", err)
	}

	return uploadedPath, nil
}

// UploadRequestAttachment stores the document as-is under requests/{employeeID}/.
func (s *fileServiceImpl) UploadRequestAttachment(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	newFilename := fmt.Sprintf("%s-%d%s", uuid.New().String(), time.Now().Unix(), ext)
	path := filepath.Join("requests", employeeID, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, file, path, "application/octet-stream")
	if err != nil {
		return "", fmt.Errorf("failed to upload request attachment: %w", err)
	}

	return uploadedPath, nil
}

func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

func (s *fileServiceImpl) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return s.storage.GetURL(ctx, path, expiry)
}

// compressImage re-encodes the image until it lands inside [minSize, maxSize],
// first by lowering JPEG quality and then by downscaling.
func compressImage(buffer []byte, maxSize int, minSize int) ([]byte, error) {
	if len(buffer) <= maxSize && len(buffer) >= minSize {
		return buffer, nil
	}

	img, _, err := image.Decode(bytes.NewReader(buffer))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	originalWidth := bounds.Dx()
	originalHeight := bounds.Dy()

	quality := 85
	var compressed []byte

	for quality >= 50 {
		buf := new(bytes.Buffer)
		if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("failed to encode JPEG: %w", err)
		}
		compressed = buf.Bytes()

		if len(compressed) <= maxSize && len(compressed) >= minSize {
			return compressed, nil
		}
		if len(compressed) > maxSize {
			quality -= 5
			continue
		}
		if len(compressed) < minSize && quality <= 60 {
			return compressed, nil
		}
		break
	}

	if len(compressed) > maxSize {
		targetSize := 100 * 1024
		ratio := math.Sqrt(float64(targetSize) / float64(len(compressed)))
		newWidth := int(float64(originalWidth) * ratio)
		newHeight := int(float64(originalHeight) * ratio)

		if newWidth < 600 {
			newWidth = 600
		}
		if newHeight < 400 {
			newHeight = 400
		}

		resized := resizeImage(img, newWidth, newHeight)

		buf := new(bytes.Buffer)
		if err := jpeg.Encode(buf, resized, &jpeg.Options{Quality: 70}); err != nil {
			return nil, fmt.Errorf("failed to encode resized image: %w", err)
		}
		compressed = buf.Bytes()
	}

	return compressed, nil
}

func resizeImage(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
