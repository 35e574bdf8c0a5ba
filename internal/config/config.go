package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all engine configuration values
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	World    WorldConfig    `yaml:"world"`
	Camera   CameraConfig   `yaml:"camera"`
	Movement MovementConfig `yaml:"movement"`
	Actors   ActorConfig    `yaml:"actors"`
	Graphics GraphicsConfig `yaml:"graphics"`
	Timing   TimingConfig   `yaml:"timing"`
	Assets   AssetConfig    `yaml:"assets"`
	Audio    AudioConfig    `yaml:"audio"`
	Debug    DebugConfig    `yaml:"debug"`
}

// DisplayConfig separates the logical render resolution from the window size.
type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`  // Logical columns, one ray per column
	ScreenHeight int    `yaml:"screen_height"` // Logical rows
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
}

type WorldConfig struct {
	TileSize        int `yaml:"tile_size"`
	MaxDepthOfField int `yaml:"max_depth_of_field"` // Grid steps per ray pass
}

type CameraConfig struct {
	FieldOfView       float64 `yaml:"field_of_view"`       // Degrees
	FloorProjection   float64 `yaml:"floor_projection"`    // Inverse perspective constant for floor/ceiling
	SpriteFocalLength float64 `yaml:"sprite_focal_length"` // Camera-space to screen-space factor for billboards
	SpriteScale       float64 `yaml:"sprite_scale"`
}

type MovementConfig struct {
	MoveSpeed       float64 `yaml:"move_speed"`     // World units per millisecond
	RotationSpeed   float64 `yaml:"rotation_speed"` // Degrees per millisecond
	CollisionMargin int     `yaml:"collision_margin"`
	InteractMargin  int     `yaml:"interact_margin"`
}

type ActorConfig struct {
	PursuerSpeed  float64 `yaml:"pursuer_speed"` // World units per millisecond
	PursuerMargin int     `yaml:"pursuer_margin"`
	TriggerRadius float64 `yaml:"trigger_radius"` // Half side of the proximity square
}

type GraphicsConfig struct {
	TextureSize   int     `yaml:"texture_size"` // Texels per tile edge
	VerticalShade float64 `yaml:"vertical_shade"`
	FloorShade    float64 `yaml:"floor_shade"`
	ChromaKey     [3]int  `yaml:"chroma_key"`
	SkyHeight     int     `yaml:"sky_height"`
	RenderWorkers int     `yaml:"render_workers"` // Goroutines casting rays; 0 casts on the calling goroutine
}

type TimingConfig struct {
	TitleMs     float64 `yaml:"title_ms"`
	EndScreenMs float64 `yaml:"end_screen_ms"`
	FadePerMs   float64 `yaml:"fade_per_ms"`
}

// AssetConfig lists asset paths. Empty image paths fall back to generated art.
type AssetConfig struct {
	Level          string `yaml:"level"`
	WallTextures   string `yaml:"wall_textures"`
	SpriteTextures string `yaml:"sprite_textures"`
	Sky            string `yaml:"sky"`
	Title          string `yaml:"title"`
	Won            string `yaml:"won"`
	Lost           string `yaml:"lost"`
}

type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	SampleRate   int     `yaml:"sample_rate"`
	MasterVolume float64 `yaml:"master_volume"`
}

type DebugConfig struct {
	LogPerformance     bool `yaml:"log_performance"`
	LogIntervalSeconds int  `yaml:"log_interval_seconds"`
}

// Default returns the configuration the engine was tuned with.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  120,
			ScreenHeight: 80,
			WindowWidth:  640,
			WindowHeight: 400,
			WindowTitle:  "Raycaster",
		},
		World: WorldConfig{
			TileSize:        64,
			MaxDepthOfField: 8,
		},
		Camera: CameraConfig{
			FieldOfView:       60,
			FloorProjection:   158,
			SpriteFocalLength: 108,
			SpriteScale:       32,
		},
		Movement: MovementConfig{
			MoveSpeed:       0.2,
			RotationSpeed:   0.2,
			CollisionMargin: 20,
			InteractMargin:  25,
		},
		Actors: ActorConfig{
			PursuerSpeed:  0.03,
			PursuerMargin: 15,
			TriggerRadius: 30,
		},
		Graphics: GraphicsConfig{
			TextureSize:   32,
			VerticalShade: 0.5,
			FloorShade:    0.7,
			ChromaKey:     [3]int{255, 0, 255},
			SkyHeight:     40,
		},
		Timing: TimingConfig{
			TitleMs:     3000,
			EndScreenMs: 3000,
			FadePerMs:   0.0005,
		},
		Assets: AssetConfig{
			Level: "assets/level1.yaml",
		},
		Audio: AudioConfig{
			Enabled:      true,
			SampleRate:   44100,
			MasterVolume: 0.5,
		},
		Debug: DebugConfig{
			LogIntervalSeconds: 5,
		},
	}
}

// LoadConfig loads the configuration from a YAML file on top of Default
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config := Default()
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", filename, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}

	return config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Validate rejects values the renderer cannot work with.
func (c *Config) Validate() error {
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.World.TileSize <= 0 {
		return fmt.Errorf("tile_size must be positive, got %d", c.World.TileSize)
	}
	if c.World.MaxDepthOfField <= 0 {
		return fmt.Errorf("max_depth_of_field must be positive, got %d", c.World.MaxDepthOfField)
	}
	if ts := c.Graphics.TextureSize; ts < 8 || ts&(ts-1) != 0 {
		return fmt.Errorf("texture_size must be a power of two of at least 8, got %d", ts)
	}
	if c.Camera.FieldOfView <= 0 || c.Camera.FieldOfView >= 180 {
		return fmt.Errorf("field_of_view must be in (0, 180), got %v", c.Camera.FieldOfView)
	}
	for name, shade := range map[string]float64{
		"vertical_shade": c.Graphics.VerticalShade,
		"floor_shade":    c.Graphics.FloorShade,
	} {
		if shade < 0 || shade > 1 {
			return fmt.Errorf("%s must be in [0, 1], got %v", name, shade)
		}
	}
	if c.Graphics.SkyHeight < 0 || c.Graphics.SkyHeight > c.Display.ScreenHeight {
		return fmt.Errorf("sky_height must be in [0, %d], got %d", c.Display.ScreenHeight, c.Graphics.SkyHeight)
	}
	if c.Graphics.RenderWorkers < 0 {
		return fmt.Errorf("render_workers must not be negative, got %d", c.Graphics.RenderWorkers)
	}
	for _, ch := range c.Graphics.ChromaKey {
		if ch < 0 || ch > 255 {
			return fmt.Errorf("chroma_key channels must be in [0, 255], got %v", c.Graphics.ChromaKey)
		}
	}
	return nil
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetTileSize() float64 {
	return float64(c.World.TileSize)
}

func (c *Config) GetMoveSpeed() float64 {
	return c.Movement.MoveSpeed
}

// GetRotSpeed returns the rotation speed in radians per millisecond.
func (c *Config) GetRotSpeed() float64 {
	return c.Movement.RotationSpeed * math.Pi / 180
}

// GetCameraFOV returns the field of view in radians.
func (c *Config) GetCameraFOV() float64 {
	return c.Camera.FieldOfView * math.Pi / 180
}

// GetRayStep returns the angle between two adjacent screen columns.
func (c *Config) GetRayStep() float64 {
	return c.GetCameraFOV() / float64(c.Display.ScreenWidth)
}

// GetChromaKey returns the transparency key as bytes.
func (c *Config) GetChromaKey() (r, g, b uint8) {
	k := c.Graphics.ChromaKey
	return uint8(k[0]), uint8(k[1]), uint8(k[2])
}
