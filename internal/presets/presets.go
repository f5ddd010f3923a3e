// Package presets loads named game configurations from YAML files so the
// CLI can run any variant under a short, stable name.
package presets

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/numcog/gridgames/internal/game/controller"
)

// Preset is a named, serializable game configuration.
type Preset struct {
	Name         string `yaml:"name"`
	Variant      string `yaml:"variant"`
	GridRows     int    `yaml:"grid_rows"`
	GridCols     int    `yaml:"grid_cols"`
	PixelDensity int    `yaml:"pixel_density"`
	TargLow      int    `yaml:"targ_low"`
	TargHigh     int    `yaml:"targ_high"`
	Harsh        bool   `yaml:"harsh"`
	HoldOuts     []int  `yaml:"hold_outs,omitempty"`
}

// ControllerConfig converts the preset into a validated controller config.
func (p Preset) ControllerConfig() (controller.Config, error) {
	variant, err := controller.ParseVariant(p.Variant)
	if err != nil {
		return controller.Config{}, fmt.Errorf("preset %q: %w", p.Name, err)
	}
	cfg := controller.Config{
		Variant:      variant,
		GridRows:     p.GridRows,
		GridCols:     p.GridCols,
		PixelDensity: p.PixelDensity,
		TargLow:      p.TargLow,
		TargHigh:     p.TargHigh,
		Harsh:        p.Harsh,
		HoldOuts:     p.HoldOuts,
	}
	if err := cfg.Validate(); err != nil {
		return controller.Config{}, fmt.Errorf("preset %q: %w", p.Name, err)
	}
	return cfg, nil
}

// Load reads a YAML preset list.
func Load(r io.Reader) ([]Preset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading presets: %w", err)
	}
	var ps []Preset
	if err := yaml.Unmarshal(data, &ps); err != nil {
		return nil, fmt.Errorf("parsing presets: %w", err)
	}
	seen := make(map[string]struct{}, len(ps))
	for _, p := range ps {
		if p.Name == "" {
			return nil, fmt.Errorf("preset without a name")
		}
		if _, dup := seen[p.Name]; dup {
			return nil, fmt.Errorf("duplicate preset name %q", p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	return ps, nil
}

// LoadFile reads a YAML preset list from a file.
func LoadFile(path string) ([]Preset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening presets file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Find returns the preset with the given name.
func Find(ps []Preset, name string) (Preset, error) {
	for _, p := range ps {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("no preset named %q", name)
}

// Defaults lists one preset per variant under the canonical benchmark
// settings.
func Defaults() []Preset {
	ps := make([]Preset, 0, len(controller.Variants))
	for i, v := range controller.Variants {
		ps = append(ps, Preset{
			Name:         fmt.Sprintf("v%d", i),
			Variant:      v.String(),
			GridRows:     31,
			GridCols:     31,
			PixelDensity: 1,
			TargLow:      1,
			TargHigh:     10,
			Harsh:        true,
		})
	}
	return ps
}
