package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"tripplanner/internal/domain"
)

// FileStore keeps the trip collection in one JSON document on disk.
// Writes go through a temp file and rename, so a crash mid-save leaves the
// previous document intact rather than a truncated one.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore rooted at dir, creating the directory if
// needed. The document is named after the slot key.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("repo.NewFileStore: create %s: %w", dir, err)
	}
	return &FileStore{path: filepath.Join(dir, SlotKey+".json")}, nil
}

// Load reads the stored trip collection.
// A missing document means nothing has been saved yet and yields an empty slice.
func (s *FileStore) Load(_ context.Context) ([]domain.Trip, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Trip{}, nil
		}
		return nil, fmt.Errorf("repo.FileStore.Load: %w", err)
	}

	var trips []domain.Trip
	if err := json.Unmarshal(data, &trips); err != nil {
		return nil, fmt.Errorf("repo.FileStore.Load: decode %s: %w", s.path, err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, nil
}

// Save replaces the stored collection with trips.
func (s *FileStore) Save(_ context.Context, trips []domain.Trip) error {
	if trips == nil {
		trips = []domain.Trip{}
	}
	data, err := json.MarshalIndent(trips, "", "  ")
	if err != nil {
		return fmt.Errorf("repo.FileStore.Save: encode: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("repo.FileStore.Save: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("repo.FileStore.Save: rename: %w", err)
	}
	return nil
}

// compile-time check: FileStore must satisfy TripStore.
var _ TripStore = (*FileStore)(nil)
