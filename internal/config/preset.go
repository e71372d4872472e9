// Package config loads named packing presets from TOML files, so a user can
// save a (pack_algo, sort_algo, rotation) combination under a name instead
// of repeating CLI flags (SPEC_FULL.md 6.5).
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/creasty/defaults"

	"github.com/loadbin/rectpack"
)

// Preset is a named packing configuration loadable from a TOML file.
type Preset struct {
	Name     string `toml:"name"`
	PackAlgo string `toml:"pack_algo" default:"MAXRECTS"`
	Policy   string `toml:"policy" default:"BAF"`
	Split    string `toml:"split" default:"SHORTER_LEFTOVER_AXIS"`
	SortAlgo string `toml:"sort_algo" default:"SORT_AREA"`
	Rotation bool   `toml:"rotation" default:"true"`
}

// Load parses a preset TOML file at path, applying field defaults to any
// key the file omits.
func Load(path string) (*Preset, error) {
	p := &Preset{}
	if err := defaults.Set(p); err != nil {
		return nil, fmt.Errorf("config: set defaults: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if _, err := toml.Decode(string(data), p); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if p.Name == "" {
		return nil, fmt.Errorf("config: %s: missing required field 'name'", path)
	}
	return p, nil
}

// Resolve translates the preset's string fields into a rectpack.Config,
// validating each against the enumerated policy sets (spec.md 6.3).
func (p *Preset) Resolve() (rectpack.Config, error) {
	algo, err := rectpack.ParseAlgorithmKind(p.PackAlgo)
	if err != nil {
		return rectpack.Config{}, err
	}
	policy, err := rectpack.ParseFitnessPolicy(p.Policy)
	if err != nil {
		return rectpack.Config{}, err
	}
	split, err := rectpack.ParseGuillotineSplit(p.Split)
	if err != nil {
		return rectpack.Config{}, err
	}
	sortAlgo, err := rectpack.ParseItemSortPolicy(p.SortAlgo)
	if err != nil {
		return rectpack.Config{}, err
	}
	return rectpack.Config{
		PackAlgo: algo,
		Policy:   policy,
		Split:    split,
		SortAlgo: sortAlgo,
		Rotation: p.Rotation,
	}, nil
}
