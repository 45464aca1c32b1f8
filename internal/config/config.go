package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the flat inkcycle configuration.
type Config struct {
	Version     string         `json:"version"`
	GalleryDir  string         `json:"gallery_dir"`
	PromptsPath string         `json:"prompts_path"`
	LogLevel    string         `json:"log_level,omitempty"` // debug, info, warn, error
	Renderer    RendererConfig `json:"renderer"`
	Viewer      ViewerConfig   `json:"viewer"`
}

// RendererConfig holds the OnnxStream sd invocation settings.
type RendererConfig struct {
	Binary   string `json:"binary"`
	ModelDir string `json:"model_dir"`
	Steps    int    `json:"steps"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// ViewerConfig holds the display program invocation settings.
type ViewerConfig struct {
	// Command is the argv prefix; the artifact path is appended as the
	// final argument.
	Command []string `json:"command"`
}

// Load reads the config file at path.
// Returns error if no config found - caller should handle accordingly.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes the config to path, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// DefaultPath returns the default config location, ~/.inkcycle/config.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".inkcycle", "config.json"), nil
}

// Default returns a fresh configuration with the stock renderer and
// viewer settings.
func Default() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	base := filepath.Join(home, ".inkcycle")
	cfg := &Config{
		Version:     "1",
		GalleryDir:  filepath.Join(base, "gallery"),
		PromptsPath: filepath.Join(base, "prompts.json"),
		LogLevel:    "info",
	}
	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults fills in the stock collaborator settings for any field
// left empty, so a hand-trimmed config file still works.
func (c *Config) applyDefaults() {
	if c.Renderer.Binary == "" {
		c.Renderer.Binary = "OnnxStream/src/build/sd"
	}
	if c.Renderer.ModelDir == "" {
		c.Renderer.ModelDir = "models/stable-diffusion-xl-turbo-1.0-anyshape-onnxstream"
	}
	if c.Renderer.Steps == 0 {
		c.Renderer.Steps = 3
	}
	if c.Renderer.Width == 0 {
		c.Renderer.Width = 480
	}
	if c.Renderer.Height == 0 {
		c.Renderer.Height = 800
	}
	if len(c.Viewer.Command) == 0 {
		c.Viewer.Command = []string{"python3", "src/display_picture.py"}
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
