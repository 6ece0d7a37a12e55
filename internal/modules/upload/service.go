package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"guesthouse/internal/domain"

	"github.com/google/uuid"
)

// MaxFileSize is the per-image cap the admin client enforces; the server
// enforces it too.
const MaxFileSize = 5 * 1024 * 1024

var allowedMimeTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// Service saves room images to local disk and hands back the URLs the
// static route serves them from. A batch is all-or-nothing: any failing
// file removes everything already written for the request.
type Service struct {
	baseDir    string
	staticBase string
}

func NewService(baseDir, staticBase string) *Service {
	return &Service{baseDir: baseDir, staticBase: staticBase}
}

func (s *Service) SaveImages(files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	if len(files) > domain.MaxRoomImages {
		return nil, ErrTooManyFiles
	}

	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	var saved []string
	urls := make([]string, 0, len(files))
	for _, fh := range files {
		path, url, err := s.saveOne(fh)
		if err != nil {
			for _, p := range saved {
				_ = os.Remove(p)
			}
			return nil, err
		}
		saved = append(saved, path)
		urls = append(urls, url)
	}
	return urls, nil
}

func (s *Service) saveOne(fh *multipart.FileHeader) (path, url string, err error) {
	if fh.Size == 0 {
		return "", "", ErrEmptyFile
	}
	if fh.Size > MaxFileSize {
		return "", "", ErrFileTooLarge
	}

	file, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Sniff the real content type from the first 512 bytes rather than
	// trusting the client-supplied header.
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := strings.Split(http.DetectContentType(buf[:n]), ";")[0]

	ext, ok := allowedMimeTypes[mimeType]
	if !ok {
		return "", "", ErrInvalidMimeType
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", "", fmt.Errorf("failed to rewind file: %w", err)
	}

	filename := uuid.New().String() + ext
	absPath := filepath.Join(s.baseDir, filename)

	dst, err := os.Create(absPath)
	if err != nil {
		return "", "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(absPath)
		return "", "", fmt.Errorf("failed to write file: %w", err)
	}

	return absPath, s.staticBase + "/" + filename, nil
}
