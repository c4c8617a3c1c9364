package scan

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/requinsolutions/aidetect/internal/api"
)

// ErrNoResult means no analysis result is cached; export and copy actions
// require a prior scan.
var ErrNoResult = errors.New("no analysis cached: run `aidetect scan` first")

// LastScan is the cached result of the most recent analysis. It is the only
// state shared between the scan command and the report command; scan is the
// single writer, clear is the only other mutation.
type LastScan struct {
	Prediction api.Prediction `json:"prediction"`
	SourceText string         `json:"source_text"`
	SourceName string         `json:"source_name,omitempty"`
	SavedAt    time.Time      `json:"saved_at"`
}

// Store reads and writes the last-scan cache under Dir.
type Store struct {
	Dir string
}

// DefaultStore returns a Store rooted at ~/.aidetect.
func DefaultStore() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting home directory: %w", err)
	}
	return &Store{Dir: filepath.Join(home, ".aidetect")}, nil
}

// Path returns the cache file path.
func (s *Store) Path() string {
	return filepath.Join(s.Dir, "lastscan.json")
}

// Save overwrites the cached result.
func (s *Store) Save(last *LastScan) error {
	if err := os.MkdirAll(s.Dir, 0700); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}
	last.SavedAt = time.Now()

	data, err := json.MarshalIndent(last, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling last scan: %w", err)
	}
	if err := os.WriteFile(s.Path(), data, 0600); err != nil {
		return fmt.Errorf("writing last scan: %w", err)
	}
	return nil
}

// Load returns the cached result, or ErrNoResult when nothing usable is
// cached. A corrupted cache file is removed and reported as ErrNoResult.
func (s *Store) Load() (*LastScan, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoResult
		}
		return nil, fmt.Errorf("reading last scan: %w", err)
	}

	var last LastScan
	if err := json.Unmarshal(data, &last); err != nil {
		_ = os.Remove(s.Path())
		return nil, ErrNoResult
	}
	return &last, nil
}

// Clear invalidates the cache. Clearing an empty cache is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.Path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing last scan: %w", err)
	}
	return nil
}
