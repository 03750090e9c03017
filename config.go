package gekko

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/gekko3d/gekko-particles/particlert/rt/core"
	"github.com/gekko3d/gekko-particles/particlert/rt/gpu"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Window WindowConfig `toml:"window"`
	Grid   GridConfig   `toml:"grid"`
	Camera CameraConfig `toml:"camera"`
	Render RenderConfig `toml:"render"`
	Log    LogConfig    `toml:"log"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// GridConfig sizes the particle instance grid. It is fixed once the
// renderer is built.
type GridConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type CameraConfig struct {
	FovDegrees float32    `toml:"fov_degrees"`
	Near       float32    `toml:"near"`
	Far        float32    `toml:"far"`
	Position   [3]float32 `toml:"position"`
	Target     [3]float32 `toml:"target"`
}

type RenderConfig struct {
	// Primitive is "triangle_strip" or "points".
	Primitive string `toml:"primitive"`
	// ConfigureDevice enables the depth test when the pipeline is built.
	ConfigureDevice bool `toml:"configure_device"`
}

type LogConfig struct {
	Debug  bool   `toml:"debug"`
	Prefix string `toml:"prefix"`
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{Width: 1280, Height: 720, Title: "Gekko Particles"},
		Grid:   GridConfig{Width: 256, Height: 256},
		Camera: CameraConfig{
			FovDegrees: 45,
			Near:       0.1,
			Far:        1000,
			Position:   [3]float32{0, 0, 300},
		},
		Render: RenderConfig{Primitive: gpu.TriangleStrip.String(), ConfigureDevice: true},
		Log:    LogConfig{Prefix: "particles"},
	}
}

// LoadConfig reads a TOML file over DefaultConfig. A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig decodes TOML over DefaultConfig and validates the result.
// Unknown keys are rejected.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := core.NewInstanceGrid(c.Grid.Width, c.Grid.Height); err != nil {
		return fmt.Errorf("%w: grid: %w", ErrInvalidConfig, err)
	}
	if c.Camera.FovDegrees <= 0 || c.Camera.FovDegrees >= 180 {
		return fmt.Errorf("%w: camera fov_degrees must be in (0, 180), got %v", ErrInvalidConfig, c.Camera.FovDegrees)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("%w: camera needs 0 < near < far, got near=%v far=%v", ErrInvalidConfig, c.Camera.Near, c.Camera.Far)
	}
	if c.Camera.position().Sub(c.Camera.target()).Len() < 1e-6 {
		return fmt.Errorf("%w: camera position and target coincide at %v", ErrInvalidConfig, c.Camera.Position)
	}
	if _, err := c.Render.primitive(); err != nil {
		return err
	}
	return nil
}

func (r RenderConfig) primitive() (gpu.Primitive, error) {
	switch r.Primitive {
	case "", gpu.TriangleStrip.String():
		return gpu.TriangleStrip, nil
	case gpu.Points.String():
		return gpu.Points, nil
	}
	return 0, fmt.Errorf("%w: unknown primitive %q", ErrInvalidConfig, r.Primitive)
}

func (c CameraConfig) position() mgl32.Vec3 { return mgl32.Vec3(c.Position) }
func (c CameraConfig) target() mgl32.Vec3   { return mgl32.Vec3(c.Target) }

// lensChanged reports whether the projection parameters differ.
func (c CameraConfig) lensChanged(other CameraConfig) bool {
	return c.FovDegrees != other.FovDegrees || c.Near != other.Near || c.Far != other.Far
}
