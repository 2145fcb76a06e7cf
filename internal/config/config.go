// Package config loads the engine's startup configuration: a TOML file for
// simulation tunables and a YAML file for the brush palette and keybindings,
// mirroring how the wider example corpus splits machine-tuned engine
// settings from user-editable presentation data.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Engine holds the tunables the simulation itself needs at startup.
type Engine struct {
	TickHz int   `toml:"tick_hz"`
	Width  int   `toml:"width"`
	Height int   `toml:"height"`
	Scale  int   `toml:"scale"`
	Seed   int64 `toml:"seed"`

	Thermal ThermalConfig `toml:"thermal"`
}

// ThermalConfig holds the thermal-stage values read from the [thermal] table.
// They are only parsed and stored here: internal/sandbox uses its own
// compiled-in constants and does not read these fields.
type ThermalConfig struct {
	DiffusionRate  float64 `toml:"diffusion_rate"`
	AmbientTemp    float64 `toml:"ambient_temp"`
	CoolingRate    float64 `toml:"cooling_rate"`
}

// DefaultEngine returns the baked-in defaults, matching internal/sandbox's
// own constants (§6).
func DefaultEngine() Engine {
	return Engine{
		TickHz: 120,
		Width:  512,
		Height: 512,
		Scale:  1,
		Seed:   0,
		Thermal: ThermalConfig{
			DiffusionRate: 0.15,
			AmbientTemp:   20.0,
			CoolingRate:   0.001,
		},
	}
}

// LoadEngine reads a TOML engine config from path, starting from the
// defaults so a partial file only overrides what it mentions.
func LoadEngine(path string) (Engine, error) {
	cfg := DefaultEngine()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// PaletteEntry binds a hotbar slot to a material name and a display label.
type PaletteEntry struct {
	Key      string `yaml:"key"`
	Material string `yaml:"material"`
	Label    string `yaml:"label"`
}

// Palette is the user-editable brush hotbar and keybinding layout.
type Palette struct {
	Entries []PaletteEntry `yaml:"palette"`
}

// DefaultPalette mirrors the hotbar baked into internal/app.
func DefaultPalette() Palette {
	return Palette{Entries: []PaletteEntry{
		{Key: "1", Material: "Sand", Label: "Sand"},
		{Key: "2", Material: "Water", Label: "Water"},
		{Key: "3", Material: "Stone", Label: "Stone"},
		{Key: "4", Material: "Wood", Label: "Wood"},
		{Key: "5", Material: "Fire", Label: "Fire"},
		{Key: "6", Material: "Soil", Label: "Soil"},
		{Key: "7", Material: "Ice", Label: "Ice"},
		{Key: "8", Material: "Acid", Label: "Acid"},
		{Key: "9", Material: "Smoke", Label: "Smoke"},
		{Key: "0", Material: "Empty", Label: "Eraser"},
	}}
}

// LoadPalette reads a YAML palette from path, falling back to the default
// hotbar when path is empty.
func LoadPalette(path string) (Palette, error) {
	if path == "" {
		return DefaultPalette(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Palette{}, err
	}
	var p Palette
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Palette{}, err
	}
	return p, nil
}
