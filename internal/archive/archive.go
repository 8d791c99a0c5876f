// Package archive persists completed assessment records to a single flat
// JSON document. Every save reads the whole file, appends one record, and
// rewrites the whole document; there is no partial update.
package archive

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/solacehq/solace-server/internal/model"
)

// ProfileArchive owns one array-of-objects JSON file of assessment records.
type ProfileArchive struct {
	mu   sync.Mutex
	path string
}

// New ensures the data directory and file exist and returns the archive.
// A missing file is initialized to an empty JSON array.
func New(path string) (*ProfileArchive, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}
	return &ProfileArchive{path: path}, nil
}

// Save appends one assessment record and rewrites the whole document.
func (a *ProfileArchive) Save(rec *model.Assessment) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	records, err := a.load()
	if err != nil {
		return err
	}
	records = append(records, *rec)

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(a.path, data, 0o644)
}

// List returns every archived record.
func (a *ProfileArchive) List() ([]model.Assessment, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.load()
}

func (a *ProfileArchive) load() ([]model.Assessment, error) {
	data, err := os.ReadFile(a.path)
	if err != nil {
		return nil, err
	}
	records := make([]model.Assessment, 0)
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}
