package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all engine configuration values
type Config struct {
	Display    DisplayConfig    `yaml:"display"`
	World      WorldConfig      `yaml:"world"`
	Camera     CameraConfig     `yaml:"camera"`
	Raycasting RaycastingConfig `yaml:"raycasting"`
	Textures   TextureConfig    `yaml:"textures"`
	Player     PlayerConfig     `yaml:"player"`
	Sprites    SpriteConfig     `yaml:"sprites"`
	Weapon     WeaponConfig     `yaml:"weapon"`
	Debug      DebugConfig      `yaml:"debug"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
	SkyColor     [3]int `yaml:"sky_color"`
	FloorColor   [3]int `yaml:"floor_color"`
}

type WorldConfig struct {
	TilePx       int    `yaml:"tile_px"` // minimap/debug scale only
	MapFile      string `yaml:"map_file"`
	EntitiesFile string `yaml:"entities_file"`
	NPCTypesFile string `yaml:"npc_types_file"`
}

type CameraConfig struct {
	FieldOfView float64 `yaml:"field_of_view"` // degrees
}

type RaycastingConfig struct {
	NumRays      int     `yaml:"num_rays"`
	MaxDepth     int     `yaml:"max_depth"`     // grid steps per sweep
	AngleEpsilon float64 `yaml:"angle_epsilon"` // once-per-frame nudge off the axes
	DepthEpsilon float64 `yaml:"depth_epsilon"`
	Workers      int     `yaml:"workers"` // <= 1 casts on the calling goroutine
}

type TextureConfig struct {
	Size         int    `yaml:"size"` // native wall texture size in px
	WallDir      string `yaml:"wall_dir"`
	SpriteDir    string `yaml:"sprite_dir"`
	MaxTextureID int    `yaml:"max_texture_id"`
}

type PlayerConfig struct {
	StartX        float64 `yaml:"start_x"`
	StartY        float64 `yaml:"start_y"`
	StartAngle    float64 `yaml:"start_angle"`
	Speed         float64 `yaml:"speed"`          // tiles per ms
	RotationSpeed float64 `yaml:"rotation_speed"` // radians per ms
	SizeScale     float64 `yaml:"size_scale"`
	MaxHealth     int     `yaml:"max_health"`
}

type SpriteConfig struct {
	MinDistance     float64 `yaml:"min_distance"`
	DefaultScale    float64 `yaml:"default_scale"`
	DefaultShift    float64 `yaml:"default_shift"`
	AnimationTimeMs int     `yaml:"animation_time_ms"`
}

type WeaponConfig struct {
	Damage          int     `yaml:"damage"`
	AnimationTimeMs int     `yaml:"animation_time_ms"`
	Frames          int     `yaml:"frames"`
	Scale           float64 `yaml:"scale"`
	Sprite          string  `yaml:"sprite"`
}

type DebugConfig struct {
	ShowFPS          bool    `yaml:"show_fps"`
	StatsIntervalSec int     `yaml:"stats_interval_sec"`
	PerfDebug        bool    `yaml:"perf_debug"`   // log snapshots while FPS stays low
	PerfLowFPS       float64 `yaml:"perf_low_fps"` // threshold for PerfDebug
}

// LoadConfig loads the configuration from a YAML file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", filename, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML on top of the defaults and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Default returns the stock 1280x720, 60° FOV setup.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  1280,
			ScreenHeight: 720,
			WindowTitle:  "gridcaster",
			SkyColor:     [3]int{30, 30, 30},
			FloorColor:   [3]int{70, 70, 70},
		},
		World: WorldConfig{
			TilePx:       80,
			MapFile:      "assets/level1.map",
			EntitiesFile: "assets/entities.yaml",
			NPCTypesFile: "assets/npcs.yaml",
		},
		Camera: CameraConfig{FieldOfView: 60},
		Raycasting: RaycastingConfig{
			NumRays:      640,
			MaxDepth:     20,
			AngleEpsilon: 0.0001,
			DepthEpsilon: 0.0001,
			Workers:      1,
		},
		Textures: TextureConfig{
			Size:         256,
			WallDir:      "assets/textures",
			SpriteDir:    "assets/sprites",
			MaxTextureID: 5,
		},
		Player: PlayerConfig{
			StartX:        1.5,
			StartY:        5,
			Speed:         0.004,
			RotationSpeed: 0.002,
			SizeScale:     60,
			MaxHealth:     100,
		},
		Sprites: SpriteConfig{
			MinDistance:     0.5,
			DefaultScale:    0.7,
			DefaultShift:    0.27,
			AnimationTimeMs: 120,
		},
		Weapon: WeaponConfig{
			Damage:          50,
			AnimationTimeMs: 90,
			Frames:          6,
			Scale:           0.4,
			Sprite:          "shotgun",
		},
		Debug: DebugConfig{StatsIntervalSec: 5, PerfLowFPS: 50},
	}
}

// Validate rejects settings the geometry code cannot work with.
func (c *Config) Validate() error {
	switch {
	case c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.Display.ScreenWidth, c.Display.ScreenHeight)
	case c.Camera.FieldOfView <= 0 || c.Camera.FieldOfView >= 180:
		return fmt.Errorf("%w: field_of_view %.2f must be in (0, 180)", ErrInvalidConfig, c.Camera.FieldOfView)
	case c.Raycasting.NumRays <= 0:
		return fmt.Errorf("%w: num_rays %d", ErrInvalidConfig, c.Raycasting.NumRays)
	case c.Raycasting.NumRays > c.Display.ScreenWidth:
		return fmt.Errorf("%w: num_rays %d exceeds screen width %d", ErrInvalidConfig, c.Raycasting.NumRays, c.Display.ScreenWidth)
	case c.Raycasting.MaxDepth <= 0:
		return fmt.Errorf("%w: max_depth %d", ErrInvalidConfig, c.Raycasting.MaxDepth)
	case c.Textures.MaxTextureID <= 0 || c.Textures.MaxTextureID > 255:
		return fmt.Errorf("%w: max_texture_id %d must be in [1, 255]", ErrInvalidConfig, c.Textures.MaxTextureID)
	case c.Textures.Size <= 0:
		return fmt.Errorf("%w: texture size %d", ErrInvalidConfig, c.Textures.Size)
	case c.Sprites.MinDistance <= 0:
		return fmt.Errorf("%w: sprites.min_distance must be positive", ErrInvalidConfig)
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

// GetFOV returns the field of view in radians.
func (c *Config) GetFOV() float64 {
	return c.Camera.FieldOfView * math.Pi / 180
}

// Projection derives the fixed per-frame constants from the config.
func (c *Config) Projection() Projection {
	return NewProjection(c.Display.ScreenWidth, c.Display.ScreenHeight, c.GetFOV(), c.Raycasting.NumRays)
}
