package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/example/inkcycle/internal/ports/secondary"
)

// Ensure the mocks implement their interfaces
var (
	_ secondary.CursorStore       = (*mockCursorStore)(nil)
	_ secondary.Gallery           = (*mockGallery)(nil)
	_ secondary.Renderer          = (*mockRenderer)(nil)
	_ secondary.Viewer            = (*mockViewer)(nil)
	_ secondary.Clock             = (*mockClock)(nil)
	_ secondary.HistoryRepository = (*mockHistoryRepo)(nil)
)

// mockCursorStore implements secondary.CursorStore in memory.
type mockCursorStore struct {
	cursor  int
	saveErr error
	saves   []int // Every value passed to Save, in order
}

func (m *mockCursorStore) Load(ctx context.Context) int {
	return m.cursor
}

func (m *mockCursorStore) Save(ctx context.Context, cursor int) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.cursor = cursor
	m.saves = append(m.saves, cursor)
	return nil
}

// mockGallery implements secondary.Gallery over an in-memory file set.
type mockGallery struct {
	root       string
	files      map[string]bool
	ensureErr  error
	refreshErr error
	refreshes  []string // Every src passed to Refresh, in order
}

func newMockGallery() *mockGallery {
	return &mockGallery{
		root:  "/gallery",
		files: make(map[string]bool),
	}
}

// addSlot marks a slot's artifact as present on disk.
func (m *mockGallery) addSlot(slot int) {
	m.files[m.SlotPath(slot)] = true
}

func (m *mockGallery) Root() string {
	return m.root
}

func (m *mockGallery) SlotPath(slot int) string {
	return fmt.Sprintf("%s/output%d.png", m.root, slot)
}

func (m *mockGallery) SharedPath() string {
	return m.root + "/output.png"
}

func (m *mockGallery) Exists(path string) bool {
	return m.files[path]
}

func (m *mockGallery) EnsureRoot() error {
	return m.ensureErr
}

func (m *mockGallery) Refresh(src string) error {
	if m.refreshErr != nil {
		return m.refreshErr
	}
	m.refreshes = append(m.refreshes, src)
	m.files[m.SharedPath()] = true
	return nil
}

// mockRenderer implements secondary.Renderer. Unless writes is false it
// deposits the artifact into the gallery's file set the way the real
// renderer would.
type mockRenderer struct {
	gallery  *mockGallery
	err      error
	writes   bool
	requests []secondary.RenderRequest
}

func newMockRenderer(gallery *mockGallery) *mockRenderer {
	return &mockRenderer{gallery: gallery, writes: true}
}

func (m *mockRenderer) Render(ctx context.Context, req secondary.RenderRequest) error {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return m.err
	}
	if m.writes {
		m.gallery.files[req.OutputPath] = true
	}
	return nil
}

// mockViewer implements secondary.Viewer.
type mockViewer struct {
	err   error
	shown []string // Every path passed to Show, in order
}

func (m *mockViewer) Show(ctx context.Context, path string) error {
	if m.err != nil {
		return m.err
	}
	m.shown = append(m.shown, path)
	return nil
}

// mockClock implements secondary.Clock without real waiting. Sleeps are
// recorded and advance the fake time; setting cancelAfter makes the clock
// call cancelFn once that many sleeps have happened, which is how loop
// tests end a forever run.
type mockClock struct {
	now         time.Time
	sleeps      []time.Duration
	cancelAfter int
	cancelFn    context.CancelFunc
}

func newMockClock() *mockClock {
	return &mockClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (m *mockClock) Now() time.Time {
	return m.now
}

func (m *mockClock) Sleep(ctx context.Context, d time.Duration) error {
	m.sleeps = append(m.sleeps, d)
	m.now = m.now.Add(d)
	if m.cancelAfter > 0 && len(m.sleeps) >= m.cancelAfter && m.cancelFn != nil {
		m.cancelFn()
	}
	return ctx.Err()
}

// mockHistoryRepo implements secondary.HistoryRepository in memory.
type mockHistoryRepo struct {
	records   []*secondary.HistoryRecord
	appendErr error
	listErr   error
	pruneErr  error
	pruned    int
}

func (m *mockHistoryRepo) Append(ctx context.Context, record *secondary.HistoryRecord) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	record.ID = int64(len(m.records) + 1)
	m.records = append(m.records, record)
	return nil
}

func (m *mockHistoryRepo) List(ctx context.Context, filters secondary.HistoryFilters) ([]*secondary.HistoryRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.HistoryRecord
	for i := len(m.records) - 1; i >= 0; i-- {
		r := m.records[i]
		if filters.Kind != "" && r.Kind != filters.Kind {
			continue
		}
		if filters.RunID != "" && r.RunID != filters.RunID {
			continue
		}
		if filters.Status != "" && r.Status != filters.Status {
			continue
		}
		result = append(result, r)
		if filters.Limit > 0 && len(result) >= filters.Limit {
			break
		}
	}
	return result, nil
}

func (m *mockHistoryRepo) PruneOlderThan(ctx context.Context, days int) (int, error) {
	if m.pruneErr != nil {
		return 0, m.pruneErr
	}
	return m.pruned, nil
}

// lastRecord returns the most recently appended history record.
func (m *mockHistoryRepo) lastRecord() *secondary.HistoryRecord {
	if len(m.records) == 0 {
		return nil
	}
	return m.records[len(m.records)-1]
}

// testCycleService wires a CycleService to fresh mocks, a real two-group
// prompt library on disk, and deterministic randomness (randInt always
// returns 0: first fragment of each group, seed 1, so composed prompts
// are always "a single rose watercolor").
func testCycleService(t *testing.T) (*CycleServiceImpl, *cycleMocks) {
	t.Helper()

	promptsPath := filepath.Join(t.TempDir(), "prompts.json")
	library := `[["a single rose", "a field of tulips"], ["watercolor", "oil painting"]]`
	if err := os.WriteFile(promptsPath, []byte(library), 0644); err != nil {
		t.Fatalf("failed to write prompts fixture: %v", err)
	}

	mocks := &cycleMocks{
		cursorStore: &mockCursorStore{},
		gallery:     newMockGallery(),
		viewer:      &mockViewer{},
		clock:       newMockClock(),
		historyRepo: &mockHistoryRepo{},
	}
	mocks.renderer = newMockRenderer(mocks.gallery)

	service := NewCycleService(
		mocks.cursorStore,
		mocks.gallery,
		mocks.renderer,
		mocks.viewer,
		mocks.clock,
		mocks.historyRepo,
		CycleOptions{PromptsPath: promptsPath, Steps: 3, Width: 480, Height: 800},
	)
	service.randInt = func(n int) int { return 0 }

	return service, mocks
}

// cycleMocks bundles the mock ports behind one test fixture.
type cycleMocks struct {
	cursorStore *mockCursorStore
	gallery     *mockGallery
	renderer    *mockRenderer
	viewer      *mockViewer
	clock       *mockClock
	historyRepo *mockHistoryRepo
}
