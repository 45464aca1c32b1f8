// Package wire provides dependency injection for the inkcycle application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/example/inkcycle/internal/adapters/cli"
	"github.com/example/inkcycle/internal/adapters/clock"
	"github.com/example/inkcycle/internal/adapters/epd"
	"github.com/example/inkcycle/internal/adapters/filesystem"
	"github.com/example/inkcycle/internal/adapters/onnxstream"
	"github.com/example/inkcycle/internal/adapters/sqlite"
	"github.com/example/inkcycle/internal/app"
	"github.com/example/inkcycle/internal/config"
	"github.com/example/inkcycle/internal/db"
	"github.com/example/inkcycle/internal/logging"
	"github.com/example/inkcycle/internal/ports/primary"
)

var (
	configPath     string
	cfg            *config.Config
	logger         *logging.Logger
	cycleService   primary.CycleService
	galleryService primary.GalleryService
	historyService primary.HistoryService
	once           sync.Once
)

// SetConfigPath overrides the config file location (--config flag). Must
// be called before any service accessor.
func SetConfigPath(path string) {
	configPath = path
}

// ConfigPath returns the effective config file location.
func ConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultPath()
}

// Config returns the loaded configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// Logger returns the gallery-scoped cycle logger.
func Logger() *logging.Logger {
	once.Do(initServices)
	return logger
}

// CycleService returns the singleton CycleService instance.
func CycleService() primary.CycleService {
	once.Do(initServices)
	return cycleService
}

// GalleryService returns the singleton GalleryService instance.
func GalleryService() primary.GalleryService {
	once.Do(initServices)
	return galleryService
}

// HistoryService returns the singleton HistoryService instance.
func HistoryService() primary.HistoryService {
	once.Do(initServices)
	return historyService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	path, err := ConfigPath()
	if err != nil {
		log.Fatalf("failed to resolve config path: %v", err)
	}

	cfg, err = config.Load(path)
	if err != nil {
		log.Fatalf("failed to load config at %s: %v\nRun 'inkcycle init' to create one.", path, err)
	}

	logger, err = logging.New(cfg.GalleryDir, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to open cycle log: %v", err)
	}

	// Create adapters (secondary ports)
	cursorStore := filesystem.NewCursorStore(cfg.GalleryDir, logger)
	gallery := filesystem.NewGallery(cfg.GalleryDir)
	renderer := onnxstream.NewRenderer(cfg.Renderer.Binary, cfg.Renderer.ModelDir, logger)
	viewer, err := epd.NewViewer(cfg.Viewer.Command, logger)
	if err != nil {
		log.Fatalf("failed to configure viewer: %v", err)
	}

	database, err := db.Open(db.PathInGallery(cfg.GalleryDir))
	if err != nil {
		log.Fatalf("failed to initialize history database: %v", err)
	}
	historyRepo := sqlite.NewHistoryRepository(database)

	// Create services (primary ports implementation)
	cycleService = app.NewCycleService(cursorStore, gallery, renderer, viewer, clock.NewSystem(), historyRepo, app.CycleOptions{
		PromptsPath: cfg.PromptsPath,
		Steps:       cfg.Renderer.Steps,
		Width:       cfg.Renderer.Width,
		Height:      cfg.Renderer.Height,
		Logger:      logger,
	})
	galleryService = app.NewGalleryService(cursorStore, gallery)
	historyService = app.NewHistoryService(historyRepo)
}

// StatusRenderer returns a new StatusRenderer writing to stdout.
// Each call creates a new renderer (renderers are stateless translators).
func StatusRenderer() *cliadapter.StatusRenderer {
	return StatusRendererWithOutput(os.Stdout)
}

// StatusRendererWithOutput returns a new StatusRenderer writing to the given output.
// This variant allows testing or alternate output destinations.
func StatusRendererWithOutput(out io.Writer) *cliadapter.StatusRenderer {
	once.Do(initServices)
	return cliadapter.NewStatusRenderer(galleryService, out)
}

// HistoryRenderer returns a new HistoryRenderer writing to stdout.
// Each call creates a new renderer (renderers are stateless translators).
func HistoryRenderer() *cliadapter.HistoryRenderer {
	return HistoryRendererWithOutput(os.Stdout)
}

// HistoryRendererWithOutput returns a new HistoryRenderer writing to the given output.
// This variant allows testing or alternate output destinations.
func HistoryRendererWithOutput(out io.Writer) *cliadapter.HistoryRenderer {
	once.Do(initServices)
	return cliadapter.NewHistoryRenderer(historyService, out)
}
