package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.GetScreenWidth() != 120 || cfg.GetScreenHeight() != 80 {
		t.Errorf("unexpected logical resolution %dx%d", cfg.GetScreenWidth(), cfg.GetScreenHeight())
	}
	if math.Abs(cfg.GetCameraFOV()-math.Pi/3) > 1e-12 {
		t.Errorf("FOV = %v, want π/3", cfg.GetCameraFOV())
	}
	if math.Abs(cfg.GetRayStep()*120-math.Pi/3) > 1e-12 {
		t.Errorf("ray step does not sweep the FOV across all columns")
	}
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "display:\n  window_title: \"Test\"\nmovement:\n  move_speed: 0.5\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Display.WindowTitle != "Test" {
		t.Errorf("window title = %q, want Test", cfg.Display.WindowTitle)
	}
	if cfg.GetMoveSpeed() != 0.5 {
		t.Errorf("move speed = %v, want 0.5", cfg.GetMoveSpeed())
	}
	if cfg.World.TileSize != 64 {
		t.Errorf("tile size should keep its default, got %d", cfg.World.TileSize)
	}
}

func TestLoadRepoConfig(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "..", "config.yaml"))
	if err != nil {
		t.Fatalf("load repo config: %v", err)
	}
	if cfg.Assets.Level == "" {
		t.Error("repo config should name a level")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero width", func(c *Config) { c.Display.ScreenWidth = 0 }, "screen size"},
		{"texture not power of two", func(c *Config) { c.Graphics.TextureSize = 30 }, "texture_size"},
		{"fov too wide", func(c *Config) { c.Camera.FieldOfView = 180 }, "field_of_view"},
		{"shade above one", func(c *Config) { c.Graphics.FloorShade = 1.5 }, "floor_shade"},
		{"dof zero", func(c *Config) { c.World.MaxDepthOfField = 0 }, "max_depth_of_field"},
		{"negative workers", func(c *Config) { c.Graphics.RenderWorkers = -1 }, "render_workers"},
		{"chroma out of range", func(c *Config) { c.Graphics.ChromaKey = [3]int{256, 0, 0} }, "chroma_key"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestMustLoadConfigPanicsOnMissingFile(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for missing config")
		}
	}()
	MustLoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
}
