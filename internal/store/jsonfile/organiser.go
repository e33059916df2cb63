package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/colonyops/cadence/internal/core/organiser"
)

var (
	// ErrStoreLoad wraps failures reading or decoding the organiser file.
	ErrStoreLoad = errors.New("load organiser")
	// ErrStoreSave wraps failures encoding or writing the organiser file.
	ErrStoreSave = errors.New("save organiser")

	errMissingDates = errors.New("current_date and previous_date are required")
)

// OrganiserStore persists an organiser as a single JSON document.
type OrganiserStore struct {
	path string
	mu   sync.Mutex
}

// NewOrganiserStore creates a store backed by the file at path.
func NewOrganiserStore(path string) *OrganiserStore {
	return &OrganiserStore{path: path}
}

// Path returns the file the store reads and writes.
func (s *OrganiserStore) Path() string {
	return s.path
}

// Load reads the organiser from disk. found is false when the file does not
// exist or is empty.
func (s *OrganiserStore) Load(ctx context.Context) (o *organiser.Organiser, found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: %s: %w", ErrStoreLoad, s.path, err)
	}

	if len(data) == 0 {
		return nil, false, nil
	}

	var file organiser.Organiser
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, false, fmt.Errorf("%w: %s: %w", ErrStoreLoad, s.path, err)
	}
	if file.CurrentDate.IsZero() || file.PreviousDate.IsZero() {
		return nil, false, fmt.Errorf("%w: %s: %w", ErrStoreLoad, s.path, errMissingDates)
	}
	if file.Tasks == nil {
		file.Tasks = []organiser.Task{}
	}

	return &file, true, nil
}

// Save writes the organiser to disk atomically.
func (s *OrganiserStore) Save(ctx context.Context, o *organiser.Organiser) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.save(o); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrStoreSave, s.path, err)
	}
	return nil
}

func (s *OrganiserStore) save(o *organiser.Organiser) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tmp, s.path)
}
