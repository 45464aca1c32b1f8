package primary

import "context"

// GalleryService defines the primary port for inspecting the gallery.
type GalleryService interface {
	// Status reports the cursor, ring occupancy, and the artifact a
	// display phase would resolve to right now.
	Status(ctx context.Context) (*GalleryStatus, error)
}

// GalleryStatus is a snapshot of the gallery at the port boundary.
type GalleryStatus struct {
	Root         string
	Cursor       int
	RingSize     int
	SlotsPresent []int // Ascending slot numbers with an artifact on disk
	LatestSlot   int   // 0 means the shared path
	LatestPath   string
	LatestExists bool
	SharedExists bool
}
