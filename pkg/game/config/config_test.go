package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.WindowWidth != 960 || cfg.WindowHeight != 640 || cfg.TileSize != 32 || cfg.Scale != 2 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.StartX != 7 || cfg.StartY != 5 {
		t.Errorf("start = (%d,%d), want (7,5)", cfg.StartX, cfg.StartY)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.WindowWidth = 0 }},
		{"negative height", func(c *Config) { c.WindowHeight = -1 }},
		{"zero tile size", func(c *Config) { c.TileSize = 0 }},
		{"zero tiles per row", func(c *Config) { c.TilesPerRow = 0 }},
		{"zero scale", func(c *Config) { c.Scale = 0 }},
		{"zero fps", func(c *Config) { c.TerminalFPS = 0 }},
		{"unknown renderer", func(c *Config) { c.Renderer = "opengl" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Setenv("TILEWALK_CONFIG_DIR", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TileSize != 32 {
		t.Errorf("TileSize = %d, want default 32", cfg.TileSize)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want os.ErrNotExist", err)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"scale": 3, "renderer": "tui"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Scale != 3 || cfg.Renderer != "tui" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.WindowWidth != 960 || cfg.TilesPerRow != 8 {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}
}

func TestLoadRejectsBadFiles(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"garbage.json":  `{not json`,
		"invalid.json":  `{"tile_size": -4}`,
		"renderer.json": `{"renderer": "vulkan"}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load() succeeded, want error")
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	t.Setenv("TILEWALK_CONFIG_DIR", dir)

	cfg := Default()
	if err := cfg.SetScale(4); err != nil {
		t.Fatalf("SetScale() error = %v", err)
	}
	if want := filepath.Join(dir, "config.json"); cfg.Path() != want {
		t.Errorf("Path() = %q, want %q", cfg.Path(), want)
	}

	loaded, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Scale != 4 {
		t.Errorf("Scale = %v, want 4", loaded.Scale)
	}
}

func TestSetScaleKeepsOverridesOutOfFile(t *testing.T) {
	t.Setenv("TILEWALK_CONFIG_DIR", t.TempDir())
	orig := Current()
	t.Cleanup(func() { SetCurrent(orig) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	// One-off command-line overrides.
	cfg.MapPath = "/tmp/oneoff.json"
	cfg.InspectAddr = ":8089"
	cfg.Renderer = "tui"
	SetCurrent(cfg)

	if err := Current().SetScale(3); err != nil {
		t.Fatalf("SetScale() error = %v", err)
	}
	if cfg.Scale != 3 || cfg.Renderer != "tui" {
		t.Errorf("effective config = scale %v renderer %q, want 3 and tui", cfg.Scale, cfg.Renderer)
	}

	next, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if next.MapPath != "" || next.InspectAddr != "" || next.Renderer != "ebiten" {
		t.Errorf("next run MapPath=%q InspectAddr=%q Renderer=%q, want defaults", next.MapPath, next.InspectAddr, next.Renderer)
	}
	if next.Scale != 3 {
		t.Errorf("next run Scale = %v, want 3", next.Scale)
	}
}

func TestSetScaleKeepsStoredSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"tile_size": 16, "map_path": "maps/home.json"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	cfg.MapPath = "/tmp/oneoff.json"
	if err := cfg.SetScale(5); err != nil {
		t.Fatalf("SetScale() error = %v", err)
	}

	next, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if next.TileSize != 16 || next.MapPath != "maps/home.json" || next.Scale != 5 {
		t.Errorf("stored = tile_size %d map_path %q scale %v, want 16, maps/home.json, 5", next.TileSize, next.MapPath, next.Scale)
	}
}

func TestSetScaleRejectsZero(t *testing.T) {
	t.Setenv("TILEWALK_CONFIG_DIR", t.TempDir())
	cfg := Default()
	if err := cfg.SetScale(0); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("SetScale(0) = %v, want ErrInvalidConfig", err)
	}
	if cfg.Scale != 2 {
		t.Errorf("Scale changed to %v", cfg.Scale)
	}
}

func TestCurrent(t *testing.T) {
	orig := Current()
	t.Cleanup(func() { SetCurrent(orig) })

	cfg := Default()
	cfg.Scale = 5
	SetCurrent(cfg)
	if Current().Scale != 5 {
		t.Errorf("Current().Scale = %v, want 5", Current().Scale)
	}
}
