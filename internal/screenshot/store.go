// Package screenshot keeps the PNG files produced by browser sessions. The
// file name is the only registry: {requesterID}-{unixMillis}.png.
package screenshot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Store struct {
	dir string
	now func() time.Time
}

func New(dir string) *Store {
	return &Store{dir: dir, now: time.Now}
}

func (s *Store) Dir() string {
	return s.dir
}

// NewPath returns the path the next screenshot for requesterID should be
// written to, creating the directory when needed.
func (s *Store) NewPath(requesterID string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create screenshot dir: %w", err)
	}
	name := fmt.Sprintf("%s-%d.png", sanitize(requesterID), s.now().UnixMilli())
	return filepath.Join(s.dir, name), nil
}

// Clean removes everything inside the screenshot directory and reports how
// many entries were removed. A missing directory is not an error.
func (s *Store) Clean() (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read screenshot dir: %w", err)
	}

	removed := 0
	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(s.dir, entry.Name())); err != nil {
			return removed, fmt.Errorf("failed to remove %s: %w", entry.Name(), err)
		}
		removed++
	}
	return removed, nil
}

// sanitize keeps requester IDs from escaping the screenshot directory.
func sanitize(id string) string {
	id = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, id)
	if id == "" {
		return "anonymous"
	}
	return id
}
