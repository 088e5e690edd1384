package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrFileTooLarge    = errors.New("file exceeds the maximum upload size")
	ErrUnsupportedType = errors.New("unsupported file type")
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// DiskStore persists uploaded objects on the local filesystem under a
// per-user path prefix. Stored objects are publicly readable through the
// configured base URL.
type DiskStore struct {
	basePath      string
	publicBaseURL string
	maxSize       int64
}

// NewDiskStore creates a disk-backed object store rooted at basePath
func NewDiskStore(basePath, publicBaseURL string, maxSize int64) (*DiskStore, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{
		basePath:      basePath,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		maxSize:       maxSize,
	}, nil
}

// BasePath returns the filesystem root of the store
func (s *DiskStore) BasePath() string {
	return s.basePath
}

// SaveProfilePhoto writes an uploaded image under <userID>/ and returns the
// stored object's relative path
func (s *DiskStore) SaveProfilePhoto(userID uuid.UUID, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedType
	}

	dir := filepath.Join(s.basePath, userID.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	objectName := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(dir, objectName))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	// Copy one byte past the limit to detect oversized uploads
	written, err := io.Copy(dst, io.LimitReader(r, s.maxSize+1))
	if err != nil {
		return "", err
	}
	if written > s.maxSize {
		_ = os.Remove(dst.Name())
		return "", ErrFileTooLarge
	}

	return userID.String() + "/" + objectName, nil
}

// PublicURL returns the publicly served URL for a stored object path
func (s *DiskStore) PublicURL(objectPath string) string {
	return s.publicBaseURL + "/" + strings.TrimLeft(objectPath, "/")
}
