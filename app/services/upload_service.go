package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// UploadService stores proof documents on local disk and hands back an
// opaque reference. Nothing downstream ever reads the bytes again; the
// record catalog stores references, not files.
type UploadService struct{ dir string }

func NewUploadService(dir string) (*UploadService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &UploadService{dir: dir}, nil
}

// Save writes the bytes under a collision-free name derived from the
// suggested one and returns (filename, stored path).
func (s *UploadService) Save(r io.Reader, suggested string) (string, string, error) {
	name := uuid.NewString() + "-" + filepath.Base(suggested)
	path := filepath.Join(s.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", "", fmt.Errorf("write upload file: %w", err)
	}
	return name, path, nil
}
