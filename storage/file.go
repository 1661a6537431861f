package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"sreepix-backend/models"
)

// FileStore keeps the catalog in a single JSON file, the default backend.
type FileStore struct {
	mu   sync.RWMutex
	path string
}

// NewFileStore creates a file-backed catalog store. The file itself is
// created lazily on first List or Replace.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = filepath.Join("data", "services.json")
	}
	return &FileStore{path: path}
}

// Path returns the location of the live catalog file.
func (s *FileStore) Path() string {
	return s.path
}

// List reads the full catalog. A missing file is not an error: the store
// initializes an empty catalog on disk and returns an empty slice.
func (s *FileStore) List() ([]models.ServiceItem, error) {
	s.mu.RLock()
	content, err := os.ReadFile(s.path)
	s.mu.RUnlock()

	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		if err := s.Replace([]models.ServiceItem{}); err != nil {
			return nil, err
		}
		return []models.ServiceItem{}, nil
	}

	items := []models.ServiceItem{}
	if len(content) > 0 {
		if err := json.Unmarshal(content, &items); err != nil {
			return nil, fmt.Errorf("parse catalog: %w", err)
		}
	}
	if err := validateAll(items); err != nil {
		return nil, fmt.Errorf("catalog integrity: %w", err)
	}
	return items, nil
}

// Replace overwrites the catalog with the given items. Callers submit the
// complete desired catalog, unmodified items included.
func (s *FileStore) Replace(items []models.ServiceItem) error {
	if err := validateAll(items); err != nil {
		return err
	}
	if items == nil {
		items = []models.ServiceItem{}
	}

	content, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create catalog dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, content, 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}
