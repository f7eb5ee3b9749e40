// Package config holds user preferences for the viewer: window size, tile
// geometry, asset paths and which host to run.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	configDirName  = "tilewalk"
	configFileName = "config.json"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full set of settings. Zero-valued fields in a file keep
// their defaults.
type Config struct {
	WindowWidth  int     `json:"window_width"`
	WindowHeight int     `json:"window_height"`
	TileSize     int     `json:"tile_size"`
	TilesPerRow  int     `json:"tiles_per_row"`
	Scale        float64 `json:"scale"`
	StartX       int     `json:"start_x"`
	StartY       int     `json:"start_y"`

	MapPath    string `json:"map_path,omitempty"`
	AtlasPath  string `json:"atlas_path,omitempty"`
	SpritePath string `json:"sprite_path,omitempty"`

	Renderer    string `json:"renderer"` // "ebiten" or "tui"
	TerminalFPS int    `json:"terminal_fps"`
	InspectAddr string `json:"inspect_addr,omitempty"`
	Locale      string `json:"locale"`

	path string
}

// Default returns the stock settings: a 960x640 window showing 32 pixel
// tiles at 2x, actor starting at (7,5).
func Default() *Config {
	return &Config{
		WindowWidth:  960,
		WindowHeight: 640,
		TileSize:     32,
		TilesPerRow:  8,
		Scale:        2,
		StartX:       7,
		StartY:       5,
		Renderer:     "ebiten",
		TerminalFPS:  30,
		Locale:       "en_GB",
	}
}

// Validate checks that sizes and the host name are usable.
func (c *Config) Validate() error {
	switch {
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.WindowWidth, c.WindowHeight)
	case c.TileSize <= 0:
		return fmt.Errorf("%w: tile size %d", ErrInvalidConfig, c.TileSize)
	case c.TilesPerRow <= 0:
		return fmt.Errorf("%w: tiles per row %d", ErrInvalidConfig, c.TilesPerRow)
	case c.Scale <= 0:
		return fmt.Errorf("%w: scale %v", ErrInvalidConfig, c.Scale)
	case c.TerminalFPS <= 0:
		return fmt.Errorf("%w: terminal fps %d", ErrInvalidConfig, c.TerminalFPS)
	}
	switch c.Renderer {
	case "ebiten", "tui":
	default:
		return fmt.Errorf("%w: unknown renderer %q", ErrInvalidConfig, c.Renderer)
	}
	return nil
}

// Path returns the file this config was loaded from, or "" for defaults.
func (c *Config) Path() string {
	return c.path
}

// configBaseDir determines where preferences live.
// If TILEWALK_CONFIG_DIR is set, it is used as-is. Otherwise, use UserConfigDir()/tilewalk.
func configBaseDir() (string, error) {
	if env := os.Getenv("TILEWALK_CONFIG_DIR"); env != "" {
		return env, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, configDirName), nil
}

// DefaultPath returns the preferences file path.
func DefaultPath() (string, error) {
	dir, err := configBaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads settings from path on top of the defaults. An empty path means
// DefaultPath; a missing file there is not an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	cfg := Default()
	cfg.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the settings back to the file they came from, or to
// DefaultPath. The write goes through a temp file and a rename.
func (c *Config) Save() error {
	path := c.path
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		return err
	}
	c.path = path
	return nil
}

// SetScale changes the zoom and persists it. Only the scale is written:
// the file is re-read and saved with the new scale, so command-line
// overrides held in c never reach it.
func (c *Config) SetScale(scale float64) error {
	if scale <= 0 {
		return fmt.Errorf("%w: scale %v", ErrInvalidConfig, scale)
	}
	c.Scale = scale

	path := c.path
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	stored, err := readStored(path)
	if err != nil {
		return err
	}
	stored.Scale = scale
	if err := stored.Save(); err != nil {
		return err
	}
	c.path = path
	return nil
}

// readStored returns the settings saved at path on top of the defaults. A
// missing file yields the defaults.
func readStored(path string) (*Config, error) {
	cfg := Default()
	cfg.path = path
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

var (
	currentMu sync.RWMutex
	current   = Default()
)

// Current returns the process-wide settings.
func Current() *Config {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}

// SetCurrent replaces the process-wide settings.
func SetCurrent(c *Config) {
	currentMu.Lock()
	current = c
	currentMu.Unlock()
}
