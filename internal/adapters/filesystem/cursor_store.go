// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/example/inkcycle/internal/core/ring"
	"github.com/example/inkcycle/internal/logging"
	"github.com/example/inkcycle/internal/ports/secondary"
)

// CursorFileName is the cursor record kept inside the gallery root.
const CursorFileName = "cursor.json"

// cursorRecord is the on-disk shape of the persisted cursor.
type cursorRecord struct {
	Version   int    `json:"version"`
	Cursor    int    `json:"cursor"`
	UpdatedAt string `json:"updated_at"`
}

// CursorStore implements secondary.CursorStore on a JSON record in the
// gallery root. Reads degrade to 0 on any problem; writes go through a
// temp file and rename so a crash mid-write cannot leave a torn record.
type CursorStore struct {
	path   string
	logger *logging.Logger
}

// NewCursorStore creates a cursor store for the given gallery root.
func NewCursorStore(galleryDir string, logger *logging.Logger) *CursorStore {
	if logger == nil {
		logger = logging.Nop()
	}
	return &CursorStore{
		path:   filepath.Join(galleryDir, CursorFileName),
		logger: logger,
	}
}

// Load reads the persisted cursor. An absent, unreadable, malformed, or
// out-of-range record degrades to 0 so a fresh or damaged gallery always
// restarts cleanly.
func (s *CursorStore) Load(ctx context.Context) int {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("cursor record unreadable, treating as fresh", "path", s.path, "error", err.Error())
		}
		return 0
	}

	var rec cursorRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		s.logger.Warn("cursor record malformed, treating as fresh", "path", s.path, "error", err.Error())
		return 0
	}

	if !ring.InRange(rec.Cursor) {
		s.logger.Warn("cursor record out of range, treating as fresh", "path", s.path, "cursor", rec.Cursor)
		return 0
	}

	return rec.Cursor
}

// Save durably writes the cursor, creating the gallery root if missing.
func (s *CursorStore) Save(ctx context.Context, cursor int) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create gallery directory: %w", err)
	}

	rec := cursorRecord{
		Version:   1,
		Cursor:    cursor,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cursor record: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), CursorFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp cursor file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write cursor record: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync cursor record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp cursor file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace cursor record: %w", err)
	}

	return nil
}

// Path returns the cursor record location.
func (s *CursorStore) Path() string {
	return s.path
}

var _ secondary.CursorStore = (*CursorStore)(nil)
