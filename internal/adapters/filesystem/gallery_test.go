package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGalleryPaths(t *testing.T) {
	g := NewGallery("/var/lib/inkcycle/gallery")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{
			name: "slot 1",
			got:  g.SlotPath(1),
			want: "/var/lib/inkcycle/gallery/output1.png",
		},
		{
			name: "slot 50",
			got:  g.SlotPath(50),
			want: "/var/lib/inkcycle/gallery/output50.png",
		},
		{
			name: "shared path carries no slot number",
			got:  g.SharedPath(),
			want: "/var/lib/inkcycle/gallery/output.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestGalleryExists(t *testing.T) {
	dir := t.TempDir()
	g := NewGallery(dir)

	if g.Exists(g.SlotPath(1)) {
		t.Error("Exists = true for a missing artifact")
	}

	if err := os.WriteFile(g.SlotPath(1), []byte("png"), 0644); err != nil {
		t.Fatalf("failed to write artifact: %v", err)
	}
	if !g.Exists(g.SlotPath(1)) {
		t.Error("Exists = false for a present artifact")
	}

	subdir := filepath.Join(dir, "output2.png")
	if err := os.Mkdir(subdir, 0755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if g.Exists(subdir) {
		t.Error("Exists = true for a directory")
	}
}

func TestEnsureRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "gallery")
	g := NewGallery(root)

	if err := g.EnsureRoot(); err != nil {
		t.Fatalf("EnsureRoot failed: %v", err)
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		t.Errorf("gallery root not created: %v", err)
	}

	// Idempotent on an existing root.
	if err := g.EnsureRoot(); err != nil {
		t.Errorf("EnsureRoot on existing root failed: %v", err)
	}
}

func TestRefresh(t *testing.T) {
	dir := t.TempDir()
	g := NewGallery(dir)

	src := g.SlotPath(3)
	if err := os.WriteFile(src, []byte("slot three"), 0644); err != nil {
		t.Fatalf("failed to write artifact: %v", err)
	}

	if err := g.Refresh(src); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	data, err := os.ReadFile(g.SharedPath())
	if err != nil {
		t.Fatalf("shared artifact missing: %v", err)
	}
	if string(data) != "slot three" {
		t.Errorf("shared artifact = %q, want copy of slot three", data)
	}
}

func TestRefreshMissingSource(t *testing.T) {
	g := NewGallery(t.TempDir())

	if err := g.Refresh(g.SlotPath(9)); err == nil {
		t.Error("Refresh with a missing source returned nil error")
	}
}
