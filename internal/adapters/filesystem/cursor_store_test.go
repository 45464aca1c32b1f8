package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/inkcycle/internal/core/ring"
	"github.com/example/inkcycle/internal/logging"
)

func newTestStore(t *testing.T) (*CursorStore, string) {
	t.Helper()
	dir := t.TempDir()
	return NewCursorStore(dir, logging.Nop()), dir
}

func TestLoadDegradesToZero(t *testing.T) {
	tests := []struct {
		name    string
		content string // empty means no file at all
	}{
		{
			name: "absent record",
		},
		{
			name:    "malformed json",
			content: `{"cursor": 12`,
		},
		{
			name:    "wrong field type",
			content: `{"version":1,"cursor":"twelve"}`,
		},
		{
			name:    "cursor beyond the ring",
			content: `{"version":1,"cursor":99}`,
		},
		{
			name:    "negative cursor",
			content: `{"version":1,"cursor":-3}`,
		},
		{
			name:    "empty file",
			content: " ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, dir := newTestStore(t)
			if tt.content != "" {
				path := filepath.Join(dir, CursorFileName)
				if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
					t.Fatalf("failed to write record: %v", err)
				}
			}

			if got := store.Load(context.Background()); got != 0 {
				t.Errorf("Load() = %d, want 0", got)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		cursor int
	}{
		{name: "zero", cursor: 0},
		{name: "first slot", cursor: 1},
		{name: "mid ring", cursor: 27},
		{name: "last slot", cursor: ring.Slots},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := newTestStore(t)
			ctx := context.Background()

			if err := store.Save(ctx, tt.cursor); err != nil {
				t.Fatalf("Save(%d) failed: %v", tt.cursor, err)
			}
			if got := store.Load(ctx); got != tt.cursor {
				t.Errorf("Load() after Save(%d) = %d", tt.cursor, got)
			}
		})
	}
}

func TestSaveCreatesGalleryRoot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "gallery")
	store := NewCursorStore(dir, logging.Nop())

	if err := store.Save(context.Background(), 5); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, CursorFileName)); err != nil {
		t.Errorf("cursor record not created: %v", err)
	}
}

func TestSaveOverwrites(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	for _, cursor := range []int{1, 2, 3} {
		if err := store.Save(ctx, cursor); err != nil {
			t.Fatalf("Save(%d) failed: %v", cursor, err)
		}
	}

	if got := store.Load(ctx); got != 3 {
		t.Errorf("Load() = %d, want 3", got)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	store, dir := newTestStore(t)

	if err := store.Save(context.Background(), 7); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read gallery dir: %v", err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}
