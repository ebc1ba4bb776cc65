package snapshot

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Store persists named JSON snapshots under a single directory. Each snapshot
// is one serialized collection, rewritten whole after every mutation and read
// back on startup. A data_version marker lets callers invalidate a snapshot
// when its embedded seed schema changes.
type Store struct {
	dir string
}

// NewStore creates the snapshot directory if needed and returns a Store.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Load reads the named snapshot into v. A missing or malformed snapshot is not
// an error: v is left untouched and the caller falls back to its default
// collection. Only I/O failures other than not-exist are returned.
func (s *Store) Load(name string, v any) error {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read snapshot %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Snapshot %s is malformed, falling back to default: %v", name, err)
		return nil
	}
	return nil
}

// Save serializes v and rewrites the named snapshot. The write goes through a
// temp file and rename so a crash mid-write cannot truncate the previous copy.
func (s *Store) Save(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot %s: %w", name, err)
	}
	tmp := s.path(name) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", name, err)
	}
	if err := os.Rename(tmp, s.path(name)); err != nil {
		return fmt.Errorf("failed to replace snapshot %s: %w", name, err)
	}
	return nil
}

// Remove deletes the named snapshot. Missing snapshots are a no-op.
func (s *Store) Remove(name string) error {
	if err := os.Remove(s.path(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove snapshot %s: %w", name, err)
	}
	return nil
}

// Version returns the stored data version marker, or "" when none exists.
func (s *Store) Version() string {
	data, err := os.ReadFile(filepath.Join(s.dir, "data_version"))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// SetVersion records the data version marker.
func (s *Store) SetVersion(v string) error {
	if err := os.WriteFile(filepath.Join(s.dir, "data_version"), []byte(v), 0o644); err != nil {
		return fmt.Errorf("failed to write data_version: %w", err)
	}
	return nil
}
