package app

import (
	"context"

	"github.com/example/inkcycle/internal/core/ring"
	"github.com/example/inkcycle/internal/ports/primary"
	"github.com/example/inkcycle/internal/ports/secondary"
)

// GalleryServiceImpl implements the GalleryService interface.
type GalleryServiceImpl struct {
	cursorStore secondary.CursorStore
	gallery     secondary.Gallery
}

// NewGalleryService creates a new GalleryService with injected dependencies.
func NewGalleryService(cursorStore secondary.CursorStore, gallery secondary.Gallery) *GalleryServiceImpl {
	return &GalleryServiceImpl{
		cursorStore: cursorStore,
		gallery:     gallery,
	}
}

// Status reports the cursor, ring occupancy, and the artifact a display
// phase would resolve to right now. It runs the same recovery lookup the
// scheduler uses, so what it prints is what a display would show.
func (s *GalleryServiceImpl) Status(ctx context.Context) (*primary.GalleryStatus, error) {
	cursor := s.cursorStore.Load(ctx)

	slotExists := func(slot int) bool {
		return s.gallery.Exists(s.gallery.SlotPath(slot))
	}

	var present []int
	for slot := 1; slot <= ring.Slots; slot++ {
		if slotExists(slot) {
			present = append(present, slot)
		}
	}

	target := ring.Latest(cursor, slotExists)
	path := s.gallery.SharedPath()
	if !target.Shared() {
		path = s.gallery.SlotPath(target.Slot)
	}

	return &primary.GalleryStatus{
		Root:         s.gallery.Root(),
		Cursor:       cursor,
		RingSize:     ring.Slots,
		SlotsPresent: present,
		LatestSlot:   target.Slot,
		LatestPath:   path,
		LatestExists: s.gallery.Exists(path),
		SharedExists: s.gallery.Exists(s.gallery.SharedPath()),
	}, nil
}

// Ensure GalleryServiceImpl implements the interface
var _ primary.GalleryService = (*GalleryServiceImpl)(nil)
