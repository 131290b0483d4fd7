// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/opd-ai/go-shooter/pkg/entity"
)

// Supported encodings for configuration files
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// GameConfig contains the startup configuration of the shooter. It is read
// once before the scene is created and never changes afterwards.
type GameConfig struct {
	Window  WindowConfig  `json:"window" yaml:"window"`
	Assets  AssetConfig   `json:"assets" yaml:"assets"`
	Ship    ShipConfig    `json:"ship" yaml:"ship"`
	Physics PhysicsConfig `json:"physics" yaml:"physics"`
	Audio   AudioConfig   `json:"audio" yaml:"audio"`
}

// WindowConfig describes the canvas the scene is drawn on
type WindowConfig struct {
	Title    string `json:"title" yaml:"title"`
	Width    int    `json:"width" yaml:"width"`
	Height   int    `json:"height" yaml:"height"`
	Renderer string `json:"renderer" yaml:"renderer"`
	VSync    bool   `json:"vsync" yaml:"vsync"`
}

// AssetConfig lists the images requested during preload
type AssetConfig struct {
	Root   string        `json:"root" yaml:"root"`
	Images []ImageConfig `json:"images" yaml:"images"`
}

// ImageConfig maps a logical asset name to a path below the asset root
type ImageConfig struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}

// ShipConfig contains the ship's movement and placement parameters.
// Speed is SpeedPixels covered every SpeedSeconds.
type ShipConfig struct {
	SpeedPixels    float64 `json:"speedPixels" yaml:"speed_pixels"`
	SpeedSeconds   float64 `json:"speedSeconds" yaml:"speed_seconds"`
	StartXRatio    float64 `json:"startXRatio" yaml:"start_x_ratio"`
	StartYRatio    float64 `json:"startYRatio" yaml:"start_y_ratio"`
	FallbackWidth  float64 `json:"fallbackWidth" yaml:"fallback_width"`
	FallbackHeight float64 `json:"fallbackHeight" yaml:"fallback_height"`
}

// PhysicsConfig selects the physics stub
type PhysicsConfig struct {
	Default string `json:"default" yaml:"default"`
}

// AudioConfig controls audio initialisation
type AudioConfig struct {
	NoAudio bool `json:"noAudio" yaml:"no_audio"`
}

// LoadConfig loads a configuration from a file. Files ending in .yaml or
// .yml are decoded as YAML, everything else as JSON. Fields missing from
// the file keep their default values.
func LoadConfig(path string) (*GameConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := decode(data, FormatFromPath(path), config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves a configuration to a file, encoded by its extension
func SaveConfig(config *GameConfig, path string) error {
	data, err := Marshal(config, FormatFromPath(path))
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Marshal encodes a configuration in the given format
func Marshal(config *GameConfig, format string) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(config)
	case FormatJSON:
		return json.MarshalIndent(config, "", "  ")
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
}

// FormatFromPath picks the encoding for a config file from its extension
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

func decode(data []byte, format string, config *GameConfig) error {
	if format == FormatYAML {
		return yaml.Unmarshal(data, config)
	}
	return json.Unmarshal(data, config)
}

// DefaultConfig returns the fixed configuration of the demo: a 512x512
// canvas, one scene, arcade physics, audio disabled, and a ship moving at
// 500 pixels per second.
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Window: WindowConfig{
			Title:    "Space Shooter",
			Width:    512,
			Height:   512,
			Renderer: "canvas",
			VSync:    true,
		},
		Assets: AssetConfig{
			Root: "assets",
			Images: []ImageConfig{
				{Name: entity.AssetSpace, Path: "images/deep-space.jpg"},
				{Name: entity.AssetBullet, Path: "images/scratch-laser.png"},
				{Name: entity.AssetShip, Path: "images/scratch-spaceship.png"},
				{Name: entity.AssetMeteor, Path: "images/scratch-meteor.png"},
			},
		},
		Ship: ShipConfig{
			SpeedPixels:    500,
			SpeedSeconds:   1,
			StartXRatio:    0.5,
			StartYRatio:    0.9,
			FallbackWidth:  64,
			FallbackHeight: 64,
		},
		Physics: PhysicsConfig{
			Default: "arcade",
		},
		Audio: AudioConfig{
			NoAudio: true,
		},
	}
}

// ImagePath returns the slash-separated path of a named image relative to
// the asset root, and whether the name is configured.
func (c *GameConfig) ImagePath(name string) (string, bool) {
	for _, img := range c.Assets.Images {
		if img.Name == name {
			return path.Clean(img.Path), true
		}
	}
	return "", false
}

// Validate checks that the configuration can drive the scene
func (c *GameConfig) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.Renderer != "canvas" {
		errs = append(errs, fmt.Errorf("unsupported renderer %q", c.Window.Renderer))
	}
	if c.Physics.Default != "arcade" {
		errs = append(errs, fmt.Errorf("unsupported physics %q", c.Physics.Default))
	}
	if !c.Audio.NoAudio {
		errs = append(errs, errors.New("audio is not supported"))
	}
	if c.Ship.SpeedPixels <= 0 || c.Ship.SpeedSeconds <= 0 {
		errs = append(errs, fmt.Errorf("ship speed must be positive, got %v px per %v s", c.Ship.SpeedPixels, c.Ship.SpeedSeconds))
	}
	if !inUnitRange(c.Ship.StartXRatio) || !inUnitRange(c.Ship.StartYRatio) {
		errs = append(errs, fmt.Errorf("ship start ratios must be in [0,1], got %v,%v", c.Ship.StartXRatio, c.Ship.StartYRatio))
	}
	if c.Ship.FallbackWidth <= 0 || c.Ship.FallbackHeight <= 0 {
		errs = append(errs, errors.New("ship fallback size must be positive"))
	}

	seen := make(map[string]bool, len(c.Assets.Images))
	for _, img := range c.Assets.Images {
		if img.Name == "" || img.Path == "" {
			errs = append(errs, fmt.Errorf("image entry %+v needs a name and a path", img))
			continue
		}
		if seen[img.Name] {
			errs = append(errs, fmt.Errorf("duplicate image name %q", img.Name))
		}
		seen[img.Name] = true
	}
	for _, required := range []string{entity.AssetSpace, entity.AssetShip} {
		if !seen[required] {
			errs = append(errs, fmt.Errorf("missing required image %q", required))
		}
	}

	return errors.Join(errs...)
}

func inUnitRange(v float64) bool {
	return v >= 0 && v <= 1
}

// ApplyEnvironmentOverrides replaces fields that are set in the
// environment: SHOOTER_ASSET_ROOT and SHOOTER_TITLE.
func ApplyEnvironmentOverrides(c *GameConfig) {
	if root := os.Getenv("SHOOTER_ASSET_ROOT"); root != "" {
		c.Assets.Root = root
	}
	if title := os.Getenv("SHOOTER_TITLE"); title != "" {
		c.Window.Title = title
	}
}
