// Package config holds the playground settings. Defaults are embedded from
// defaults.yaml; Load overlays a user file on top of them.
package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Render layers, usable wherever an ecs.LayerID is expected.
const (
	Default = iota
	Overlay
)

type Config struct {
	Window WindowConfig `yaml:"window"`
	Cursor CursorConfig `yaml:"cursor"`
	Level  LevelConfig  `yaml:"level"`
	Audio  AudioConfig  `yaml:"audio"`
	Debug  DebugConfig  `yaml:"debug"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

// LevelConfig points at the TMX scene inside the assets filesystem.
type LevelConfig struct {
	Path       string `yaml:"path"`
	CellSize   int    `yaml:"cell_size"`
	Background string `yaml:"background"`
}

// AudioConfig controls the hover cues. Volume is 0..1.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`
	SampleRate int     `yaml:"sample_rate"`
}

type DebugConfig struct {
	ShowBounds bool `yaml:"show_bounds"`
	ShowHUD    bool `yaml:"show_hud"`
	ShowPanel  bool `yaml:"show_panel"`
	LogEvents  bool `yaml:"log_events"`
	// EventLogSize is how many recent target events the HUD keeps.
	EventLogSize int `yaml:"event_log_size"`
}

// C is the active configuration. It starts with the embedded defaults.
var C *Config

func init() {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	C = cfg
}

// Init loads path over the defaults and makes the result active.
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	C = cfg
	return nil
}

// Load reads the embedded defaults, then overlays the YAML file at path. Only
// fields present in the file are overwritten. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("config: parse defaults: %w", err)
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// ParseColor reads "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("config: bad color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("config: bad color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
