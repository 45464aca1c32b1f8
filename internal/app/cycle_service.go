package app

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/example/inkcycle/internal/core/cycle"
	"github.com/example/inkcycle/internal/core/ring"
	"github.com/example/inkcycle/internal/ctxutil"
	"github.com/example/inkcycle/internal/logging"
	"github.com/example/inkcycle/internal/ports/primary"
	"github.com/example/inkcycle/internal/ports/secondary"
	"github.com/example/inkcycle/internal/prompt"
)

// CycleOptions carries the collaborator configuration the cycle needs
// beyond its ports.
type CycleOptions struct {
	PromptsPath string
	Steps       int
	Width       int
	Height      int
	Logger      *logging.Logger
}

// CycleServiceImpl implements the CycleService interface.
type CycleServiceImpl struct {
	cursorStore secondary.CursorStore
	gallery     secondary.Gallery
	renderer    secondary.Renderer
	viewer      secondary.Viewer
	clock       secondary.Clock
	historyRepo secondary.HistoryRepository
	opts        CycleOptions
	logger      *logging.Logger

	// randInt is the randomness seam for prompt picks and seeds.
	// Tests replace it with a deterministic function.
	randInt func(n int) int
}

// NewCycleService creates a new CycleService with injected dependencies.
func NewCycleService(
	cursorStore secondary.CursorStore,
	gallery secondary.Gallery,
	renderer secondary.Renderer,
	viewer secondary.Viewer,
	clock secondary.Clock,
	historyRepo secondary.HistoryRepository,
	opts CycleOptions,
) *CycleServiceImpl {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	return &CycleServiceImpl{
		cursorStore: cursorStore,
		gallery:     gallery,
		renderer:    renderer,
		viewer:      viewer,
		clock:       clock,
		historyRepo: historyRepo,
		opts:        opts,
		logger:      logger,
		randInt:     rand.Intn,
	}
}

// Run executes the cycle forever: generate into the next slot, show the
// newest artifact, sleep, repeat. Returns nil on context cancellation and
// the fatal failure otherwise.
func (s *CycleServiceImpl) Run(ctx context.Context) error {
	ctx = s.ensureRunID(ctx)
	logger := s.logger.WithRun(ctxutil.RunIDFromContext(ctx))

	logger.Info("cycle starting", "phase", string(cycle.PhaseBootstrapping))

	if err := s.gallery.EnsureRoot(); err != nil {
		return err
	}

	cursor := s.cursorStore.Load(ctx)
	step := cycle.Bootstrap(cursor)
	logger.Info("bootstrapped", "cursor", cursor, "first_phase", string(step.Next))

	for {
		if step.Delay > 0 {
			logger.Debug("sleeping", "duration", step.Delay.String(), "next_phase", string(step.Next))
			if err := s.clock.Sleep(ctx, step.Delay); err != nil {
				logger.Info("cycle stopped by cancellation")
				return nil
			}
		}

		var phaseErr error
		switch step.Next {
		case cycle.PhaseGenerating:
			_, phaseErr = s.Generate(ctx, primary.GenerateOptions{})
			step = cycle.AfterGenerate(phaseErr == nil)
		case cycle.PhaseDisplaying:
			_, phaseErr = s.Display(ctx)
			step = cycle.AfterDisplay(phaseErr == nil)
		}

		if cycle.Terminal(step.Next) {
			if ctx.Err() != nil {
				logger.Info("cycle stopped by cancellation")
				return nil
			}
			logger.Error("cycle stopped", "error", phaseErr.Error())
			return phaseErr
		}
	}
}

// Generate executes a single generate phase: allocate the next slot,
// render into it, verify the artifact exists, refresh the shared path.
func (s *CycleServiceImpl) Generate(ctx context.Context, opts primary.GenerateOptions) (*primary.GenerateResult, error) {
	ctx = s.ensureRunID(ctx)
	started := s.clock.Now()

	if err := s.gallery.EnsureRoot(); err != nil {
		return nil, &GenerationError{Err: err}
	}

	// Allocate first: cursor persistence happens-before the render
	// request, so a crash in between always leaves a state the recovery
	// scan resolves.
	slot := s.advance(ctx)
	path := s.gallery.SlotPath(slot)
	logger := s.logger.WithPhase(string(cycle.PhaseGenerating)).With("slot", slot)

	p, seed, err := s.renderInputs(opts)
	if err != nil {
		genErr := &GenerationError{Slot: slot, Path: path, Err: err}
		s.recordAttempt(ctx, attempt{kind: "generate", slot: slot, path: path, started: started, failure: genErr})
		return nil, genErr
	}

	steps := opts.Steps
	if steps <= 0 {
		steps = s.opts.Steps
	}

	logger.Info("generating artifact", "prompt", p, "seed", seed, "steps", steps)

	req := secondary.RenderRequest{
		OutputPath: path,
		Prompt:     p,
		Seed:       seed,
		Steps:      steps,
		Width:      s.opts.Width,
		Height:     s.opts.Height,
	}
	if err := s.renderer.Render(ctx, req); err != nil {
		genErr := &GenerationError{Slot: slot, Path: path, Err: err}
		s.recordAttempt(ctx, attempt{kind: "generate", slot: slot, path: path, prompt: p, seed: seed, started: started, failure: genErr})
		return nil, genErr
	}

	// The renderer exiting cleanly is not enough: the artifact itself is
	// the only evidence generation succeeded.
	if !s.gallery.Exists(path) {
		genErr := &GenerationError{Slot: slot, Path: path}
		s.recordAttempt(ctx, attempt{kind: "generate", slot: slot, path: path, prompt: p, seed: seed, started: started, failure: genErr})
		return nil, genErr
	}

	if err := s.gallery.Refresh(path); err != nil {
		logger.Warn("shared artifact refresh failed", "error", err.Error())
	}

	s.recordAttempt(ctx, attempt{kind: "generate", slot: slot, path: path, prompt: p, seed: seed, started: started})
	logger.Info("artifact written", "path", path)

	return &primary.GenerateResult{
		Slot:   slot,
		Path:   path,
		Prompt: p,
		Seed:   seed,
	}, nil
}

// Display executes a single display phase: locate the newest existing
// artifact and show it.
func (s *CycleServiceImpl) Display(ctx context.Context) (*primary.DisplayResult, error) {
	ctx = s.ensureRunID(ctx)
	started := s.clock.Now()
	logger := s.logger.WithPhase(string(cycle.PhaseDisplaying))

	cursor := s.cursorStore.Load(ctx)
	target := ring.Latest(cursor, func(slot int) bool {
		return s.gallery.Exists(s.gallery.SlotPath(slot))
	})

	path := s.gallery.SharedPath()
	if !target.Shared() {
		path = s.gallery.SlotPath(target.Slot)
	} else if cursor != 0 {
		logger.Warn("no slot artifact found, falling back to shared path", "cursor", cursor)
	}

	if !s.gallery.Exists(path) {
		dispErr := &DisplayError{Path: path}
		s.recordAttempt(ctx, attempt{kind: "display", slot: target.Slot, path: path, started: started, failure: dispErr})
		return nil, dispErr
	}

	logger.Info("displaying artifact", "slot", target.Slot, "path", path)

	if err := s.viewer.Show(ctx, path); err != nil {
		dispErr := &DisplayError{Path: path, Err: err}
		s.recordAttempt(ctx, attempt{kind: "display", slot: target.Slot, path: path, started: started, failure: dispErr})
		return nil, dispErr
	}

	s.recordAttempt(ctx, attempt{kind: "display", slot: target.Slot, path: path, started: started})

	return &primary.DisplayResult{
		Slot: target.Slot,
		Path: path,
	}, nil
}

// advance is the only cursor mutator: load, step the ring, persist. A
// failed save is logged and absorbed; the run continues with the slot it
// allocated, risking only duplicate numbering on the next run.
func (s *CycleServiceImpl) advance(ctx context.Context) int {
	current := s.cursorStore.Load(ctx)
	slot := ring.Next(current)

	if err := s.cursorStore.Save(ctx, slot); err != nil {
		s.logger.Warn("cursor save failed, continuing with allocated slot",
			"slot", slot, "error", err.Error())
	}

	return slot
}

// renderInputs resolves the prompt and seed for one generation.
func (s *CycleServiceImpl) renderInputs(opts primary.GenerateOptions) (string, int, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = 1 + s.randInt(10000)
	}

	if opts.Prompt != "" {
		return opts.Prompt, seed, nil
	}

	lib, err := prompt.Load(s.opts.PromptsPath)
	if err != nil {
		return "", 0, err
	}
	return lib.Compose(s.randInt), seed, nil
}

// attempt is one generate or display execution to be recorded.
type attempt struct {
	kind    string
	slot    int
	path    string
	prompt  string
	seed    int
	started time.Time
	failure error
}

// recordAttempt appends a history row. History is observability, not
// control flow: failures are logged and absorbed.
func (s *CycleServiceImpl) recordAttempt(ctx context.Context, a attempt) {
	status := "ok"
	detail := ""
	if a.failure != nil {
		status = "failed"
		detail = a.failure.Error()
	}

	record := &secondary.HistoryRecord{
		RunID:      ctxutil.RunIDFromContext(ctx),
		Kind:       a.kind,
		Slot:       a.slot,
		Path:       a.path,
		Prompt:     a.prompt,
		Seed:       a.seed,
		Status:     status,
		Detail:     detail,
		StartedAt:  a.started,
		FinishedAt: s.clock.Now(),
	}

	if err := s.historyRepo.Append(ctx, record); err != nil {
		s.logger.Warn("history append failed", "kind", a.kind, "error", err.Error())
	}
}

// ensureRunID stamps a fresh run ID on the context unless one is already
// present (the run loop sets it once; one-shot commands get their own).
func (s *CycleServiceImpl) ensureRunID(ctx context.Context) context.Context {
	if ctxutil.RunIDFromContext(ctx) != "" {
		return ctx
	}
	return ctxutil.WithRunID(ctx, uuid.New().String())
}

// Ensure CycleServiceImpl implements the interface
var _ primary.CycleService = (*CycleServiceImpl)(nil)
