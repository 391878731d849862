package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// DiskStore writes RunResult as JSON files to a directory, retaining
// only the newest runs.
type DiskStore struct {
	mu   sync.Mutex
	dir  string
	keep int
}

// NewDiskStore creates a store rooted at dir, retaining at most keep
// runs. The directory is created lazily on the first Save.
func NewDiskStore(dir string, keep int) *DiskStore {
	if keep < 1 {
		keep = 1
	}
	return &DiskStore{dir: dir, keep: keep}
}

// DefaultDir returns the per-user run report directory.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determining home directory: %w", err)
	}
	return filepath.Join(home, ".spotlaunch", "runs"), nil
}

// Save writes a RunResult as a JSON file and prunes runs beyond the
// retention cap, oldest first.
func (s *DiskStore) Save(result *RunResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating run directory: %w", err)
	}
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshalling run %s: %w", result.ID, err)
	}
	path := filepath.Join(s.dir, result.ID+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing run %s: %w", result.ID, err)
	}
	return s.prune()
}

// Load reads a RunResult by ID.
func (s *DiskStore) Load(runID string) (*RunResult, error) {
	path := filepath.Join(s.dir, runID+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run %s: %w", runID, err)
	}
	var result RunResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("unmarshalling run %s: %w", runID, err)
	}
	return &result, nil
}

// List returns all stored runs, newest first. Unreadable files are
// skipped so a single corrupt report cannot hide the rest.
func (s *DiskStore) List() ([]*RunResult, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading run directory: %w", err)
	}

	var runs []*RunResult
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		r, err := s.Load(strings.TrimSuffix(e.Name(), ".json"))
		if err != nil {
			continue
		}
		runs = append(runs, r)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Started.After(runs[j].Started)
	})
	return runs, nil
}

// prune removes the oldest runs beyond the retention cap.
// Caller holds the lock.
func (s *DiskStore) prune() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("reading run directory: %w", err)
	}

	type aged struct {
		name string
		mod  int64
	}
	var files []aged
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, aged{name: e.Name(), mod: info.ModTime().UnixNano()})
	}

	if len(files) <= s.keep {
		return nil
	}

	sort.Slice(files, func(i, j int) bool { return files[i].mod < files[j].mod })
	for _, f := range files[:len(files)-s.keep] {
		if err := os.Remove(filepath.Join(s.dir, f.name)); err != nil {
			return fmt.Errorf("pruning run %s: %w", f.name, err)
		}
	}
	return nil
}
