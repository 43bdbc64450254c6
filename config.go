package main

import (
	"embed"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/seqsense/pcgol/mat"
	"gopkg.in/yaml.v3"
)

const (
	defaultRotationSpeed         = 0.002
	defaultMoveSpeed             = 0.001
	defaultZoomSpeed             = 0.05
	defaultZoomMin               = 0.6
	defaultZoomMax               = 2.0
	defaultInitialCameraDistance = 2.0
	defaultReferenceWidth        = 800
	defaultFOV                   = 75
	defaultNear                  = 0.1
	defaultFar                   = 1000
)

//go:embed configs/*.yaml
var presets embed.FS

type lightConfig struct {
	Intensity float32   `yaml:"intensity"`
	Color     string    `yaml:"color"`
	Position  []float32 `yaml:"position,omitempty"`
}

type lightsConfig struct {
	Directional lightConfig `yaml:"directional"`
	Ambient     lightConfig `yaml:"ambient"`
}

// viewerConfig holds the options of one viewer instance.
type viewerConfig struct {
	ModelURL              string       `yaml:"model_url"`
	RotationSpeed         float32      `yaml:"rotation_speed"`
	MoveSpeed             float32      `yaml:"move_speed"`
	ZoomSpeed             float32      `yaml:"zoom_speed"`
	ZoomMin               float32      `yaml:"zoom_min"`
	ZoomMax               float32      `yaml:"zoom_max"`
	InitialCameraDistance float32      `yaml:"initial_camera_distance"`
	ReferenceWidth        float32      `yaml:"reference_width"`
	FOV                   float32      `yaml:"fov"`
	Near                  float32      `yaml:"near"`
	Far                   float32      `yaml:"far"`
	Lights                lightsConfig `yaml:"lights"`
	BackgroundColor       *string      `yaml:"background_color,omitempty"`
	BaseScale             *float32     `yaml:"base_scale,omitempty"`
	LogLevel              string       `yaml:"log_level,omitempty"`
}

func defaultConfig() *viewerConfig {
	return &viewerConfig{
		RotationSpeed:         defaultRotationSpeed,
		MoveSpeed:             defaultMoveSpeed,
		ZoomSpeed:             defaultZoomSpeed,
		ZoomMin:               defaultZoomMin,
		ZoomMax:               defaultZoomMax,
		InitialCameraDistance: defaultInitialCameraDistance,
		ReferenceWidth:        defaultReferenceWidth,
		FOV:                   defaultFOV,
		Near:                  defaultNear,
		Far:                   defaultFar,
		Lights: lightsConfig{
			Directional: lightConfig{
				Intensity: 2,
				Color:     "#ffffff",
				Position:  []float32{500, 500, 500},
			},
			Ambient: lightConfig{
				Intensity: 2,
				Color:     "#333333",
			},
		},
	}
}

// parseConfig decodes YAML on top of the defaults and validates the result.
func parseConfig(b []byte) (*viewerConfig, error) {
	c := defaultConfig()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidConfig, err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func presetConfig(name string) (*viewerConfig, error) {
	b, err := presets.ReadFile("configs/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", errUnknownPreset, name)
	}
	return parseConfig(b)
}

func presetNames() []string {
	entries, err := presets.ReadDir("configs")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	return names
}

func (c *viewerConfig) validate() error {
	invalid := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: "+format, append([]interface{}{errInvalidConfig}, args...)...)
	}
	switch {
	case c.ModelURL == "":
		return invalid("model_url is empty")
	case c.ZoomMin <= 0:
		return invalid("zoom_min must be positive, got %g", c.ZoomMin)
	case c.ZoomMin > c.ZoomMax:
		return invalid("zoom_min (%g) is larger than zoom_max (%g)", c.ZoomMin, c.ZoomMax)
	case c.ZoomSpeed <= 0:
		return invalid("zoom_speed must be positive, got %g", c.ZoomSpeed)
	case c.ReferenceWidth <= 0:
		return invalid("reference_width must be positive, got %g", c.ReferenceWidth)
	case c.FOV <= 0 || c.FOV >= 180:
		return invalid("fov must be in (0, 180), got %g", c.FOV)
	case c.Near <= 0 || c.Far <= c.Near:
		return invalid("near/far planes are invalid: %g/%g", c.Near, c.Far)
	case c.BaseScale != nil && *c.BaseScale <= 0:
		return invalid("base_scale must be positive, got %g", *c.BaseScale)
	case len(c.Lights.Directional.Position) != 0 && len(c.Lights.Directional.Position) != 3:
		return invalid("directional light position must have 3 elements")
	}
	if _, err := parseColor(c.Lights.Directional.Color); err != nil {
		return invalid("directional light: %v", err)
	}
	if _, err := parseColor(c.Lights.Ambient.Color); err != nil {
		return invalid("ambient light: %v", err)
	}
	if _, err := c.background(); err != nil {
		return invalid("background_color: %v", err)
	}
	if _, err := c.logLevel(); err != nil {
		return invalid("log_level: %v", err)
	}
	return nil
}

// background returns nil if the canvas should stay transparent.
func (c *viewerConfig) background() (*[4]float32, error) {
	if c.BackgroundColor == nil {
		return nil, nil
	}
	rgb, err := parseColor(*c.BackgroundColor)
	if err != nil {
		return nil, err
	}
	return &[4]float32{rgb[0], rgb[1], rgb[2], 1}, nil
}

func (c *viewerConfig) logLevel() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	err := l.UnmarshalText([]byte(c.LogLevel))
	return l, err
}

func (c *viewerConfig) lighting() lighting {
	dc, _ := parseColor(c.Lights.Directional.Color)
	ac, _ := parseColor(c.Lights.Ambient.Color)
	dir := mat.Vec3{0, 0, 1}
	if p := c.Lights.Directional.Position; len(p) == 3 {
		if v := (mat.Vec3{p[0], p[1], p[2]}); v.NormSq() > 0 {
			dir = v.Normalized()
		}
	}
	return lighting{
		direction:   dir,
		directional: dc.Mul(c.Lights.Directional.Intensity),
		ambient:     ac.Mul(c.Lights.Ambient.Intensity),
	}
}

func parseColor(s string) (mat.Vec3, error) {
	if s == "" {
		return mat.Vec3{1, 1, 1}, nil
	}
	col, err := colorful.Hex(s)
	if err != nil {
		return mat.Vec3{}, err
	}
	return mat.Vec3{float32(col.R), float32(col.G), float32(col.B)}, nil
}
