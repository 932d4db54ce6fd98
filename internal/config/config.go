package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file path, relative to the process working directory.
const DefaultPath = "config/backdrop.yaml"

// Variants select between the two versions of the backdrop.
// Classic spins the shell on a fixed clock and has no core, markers, or hover reaction.
const (
	VariantInteractive = "interactive"
	VariantClassic     = "classic"
)

// Config holds every tunable of the backdrop. Zero-valued fields in a loaded file keep their defaults.
type Config struct {
	Window    Window    `yaml:"window"`
	Variant   string    `yaml:"variant"`
	Seed      int64     `yaml:"seed,omitempty"`
	Particles Particles `yaml:"particles"`
	Shell     Shell     `yaml:"shell"`
	Core      Core      `yaml:"core"`
	Markers   Markers   `yaml:"markers"`
	Camera    Camera    `yaml:"camera"`
	Palette   Palette   `yaml:"palette"`
	Debug     Debug     `yaml:"debug"`
}

// Window sizes the raylib window. Fullscreen uses the monitor size instead of Width/Height.
type Window struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
	TargetFPS  int    `yaml:"target_fps"`
}

// Particles describes the point cloud scattered in a cube of side Spread around the origin.
type Particles struct {
	Count   int     `yaml:"count"`
	Spread  float32 `yaml:"spread"`
	Size    float32 `yaml:"size"`
	Color   string  `yaml:"color"`
	Opacity float32 `yaml:"opacity"`
}

// Shell is the wireframe icosphere. Detail is the number of subdivisions of the icosahedron.
type Shell struct {
	Radius float32 `yaml:"radius"`
	Detail int     `yaml:"detail"`
	Color  string  `yaml:"color"`
}

// Core is the opaque sphere inside the shell; hover is tested against it.
type Core struct {
	Radius float32 `yaml:"radius"`
	Rings  int     `yaml:"rings"`
	Slices int     `yaml:"slices"`
	Color  string  `yaml:"color"`
}

// MarkerSpot places one flash marker by percentage of the shell's projected disk, with a phase delay in seconds.
type MarkerSpot struct {
	X     float32 `yaml:"x"`
	Y     float32 `yaml:"y"`
	Delay float32 `yaml:"delay"`
}

// Markers configures the pulsing sprites on the shell surface.
type Markers struct {
	SurfaceRadius float32      `yaml:"surface_radius"`
	DepthOffset   float32      `yaml:"depth_offset"`
	BaseSize      float32      `yaml:"base_size"`
	Cycle         float32      `yaml:"cycle"`
	Saturation    float64      `yaml:"saturation"`
	Lightness     float64      `yaml:"lightness"`
	Layout        []MarkerSpot `yaml:"layout"`
}

// Camera is a perspective camera looking at the origin from Distance along +Z. Fovy is in degrees.
type Camera struct {
	Fovy     float32 `yaml:"fovy"`
	Near     float32 `yaml:"near"`
	Far      float32 `yaml:"far"`
	Distance float32 `yaml:"distance"`
}

// Palette configures the background color oscillator. Durations are in milliseconds.
// SeedCSS optionally names a stylesheet whose --gN custom properties give the starting colors.
// StyleOut optionally names a CSS file that mirrors the current --gN values.
type Palette struct {
	Stops         int     `yaml:"stops"`
	MinDurationMs float64 `yaml:"min_duration_ms"`
	MaxDurationMs float64 `yaml:"max_duration_ms"`
	Synchronized  bool    `yaml:"synchronized"`
	SeedCSS       string  `yaml:"seed_css,omitempty"`
	StyleOut      string  `yaml:"style_out,omitempty"`
}

// Debug toggles the overlays drawn on top of the scene.
// ShowStats adds frame, ray-test and pointer counters plus the latest log line.
type Debug struct {
	ShowFPS   bool `yaml:"show_fps"`
	ShowHover bool `yaml:"show_hover"`
	ShowStats bool `yaml:"show_stats"`
}

// DefaultLayout is the hand-placed marker table.
func DefaultLayout() []MarkerSpot {
	return []MarkerSpot{
		{X: 18, Y: 30, Delay: 0},
		{X: 40, Y: 20, Delay: 0.6},
		{X: 60, Y: 35, Delay: 1.2},
		{X: 72, Y: 50, Delay: 0.9},
		{X: 34, Y: 65, Delay: 1.5},
		{X: 20, Y: 48, Delay: 0.3},
		{X: 50, Y: 72, Delay: 1.0},
		{X: 80, Y: 22, Delay: 0.8},
		{X: 45, Y: 45, Delay: 1.8},
		{X: 30, Y: 40, Delay: 1.3},
	}
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "orbit backdrop",
			TargetFPS: 60,
		},
		Variant: VariantInteractive,
		Particles: Particles{
			Count:   1500,
			Spread:  15,
			Size:    0.03,
			Color:   "#00ff88",
			Opacity: 0.9,
		},
		Shell: Shell{
			Radius: 3,
			Detail: 1,
			Color:  "#004422",
		},
		Core: Core{
			Radius: 1.8,
			Rings:  32,
			Slices: 32,
			Color:  "#000000",
		},
		Markers: Markers{
			SurfaceRadius: 2.8,
			DepthOffset:   0.1,
			BaseSize:      0.2,
			Cycle:         3.6,
			Saturation:    0.8,
			Lightness:     0.6,
			Layout:        DefaultLayout(),
		},
		Camera: Camera{
			Fovy:     75,
			Near:     0.1,
			Far:      1000,
			Distance: 5,
		},
		Palette: Palette{
			Stops:         5,
			MinDurationMs: 9000,
			MaxDurationMs: 15000,
		},
	}
}

// Load reads the YAML config at path on top of Default(). A missing file is not an error.
// A malformed file returns Default() together with the parse error so the caller can log it.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Validate()
	return cfg, nil
}

// Save writes cfg as YAML to path, creating the parent directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate resets values that would make the scene degenerate back to their defaults.
func (c *Config) Validate() {
	def := Default()
	if c.Variant != VariantInteractive && c.Variant != VariantClassic {
		c.Variant = def.Variant
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		c.Window.Width, c.Window.Height = def.Window.Width, def.Window.Height
	}
	if c.Window.TargetFPS <= 0 {
		c.Window.TargetFPS = def.Window.TargetFPS
	}
	if c.Particles.Count < 0 {
		c.Particles.Count = def.Particles.Count
	}
	if c.Particles.Spread <= 0 {
		c.Particles.Spread = def.Particles.Spread
	}
	if c.Shell.Radius <= 0 {
		c.Shell.Radius = def.Shell.Radius
	}
	if c.Shell.Detail < 0 {
		c.Shell.Detail = 0
	}
	if c.Core.Radius <= 0 {
		c.Core.Radius = def.Core.Radius
	}
	if c.Core.Rings <= 0 || c.Core.Slices <= 0 {
		c.Core.Rings, c.Core.Slices = def.Core.Rings, def.Core.Slices
	}
	if c.Markers.SurfaceRadius <= 0 {
		c.Markers.SurfaceRadius = def.Markers.SurfaceRadius
	}
	if c.Markers.Cycle <= 0 {
		c.Markers.Cycle = def.Markers.Cycle
	}
	if c.Markers.BaseSize <= 0 {
		c.Markers.BaseSize = def.Markers.BaseSize
	}
	if c.Camera.Fovy <= 0 || c.Camera.Fovy >= 180 {
		c.Camera.Fovy = def.Camera.Fovy
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		c.Camera.Near, c.Camera.Far = def.Camera.Near, def.Camera.Far
	}
	if c.Camera.Distance <= 0 {
		c.Camera.Distance = def.Camera.Distance
	}
	if c.Palette.Stops <= 0 {
		c.Palette.Stops = def.Palette.Stops
	}
	if c.Palette.MinDurationMs <= 0 {
		c.Palette.MinDurationMs = def.Palette.MinDurationMs
	}
	if c.Palette.MaxDurationMs <= 0 {
		c.Palette.MaxDurationMs = def.Palette.MaxDurationMs
	}
	if c.Palette.MinDurationMs > c.Palette.MaxDurationMs {
		c.Palette.MinDurationMs, c.Palette.MaxDurationMs = c.Palette.MaxDurationMs, c.Palette.MinDurationMs
	}
}

// Interactive reports whether hover, core, and markers are enabled.
func (c Config) Interactive() bool {
	return c.Variant != VariantClassic
}
