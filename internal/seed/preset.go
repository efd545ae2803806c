package seed

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed presets/*.yml
var presetFS embed.FS

// Preset describes the shape of a seeded social graph.
type Preset struct {
	Name               string  `yaml:"name"`
	Seed               int64   `yaml:"seed"`
	Users              int     `yaml:"users"`
	TripsPerUser       int     `yaml:"trips_per_user"`
	ShareRatio         float64 `yaml:"share_ratio"`
	FollowsPerUser     int     `yaml:"follows_per_user"`
	LikesPerSharedTrip int     `yaml:"likes_per_shared_trip"`
	MaxDays            int     `yaml:"max_days"`
}

// Validate rejects presets that cannot produce a consistent graph.
func (p Preset) Validate() error {
	if p.Users < 1 {
		return errors.New("users must be at least 1")
	}
	if p.TripsPerUser < 0 || p.FollowsPerUser < 0 || p.LikesPerSharedTrip < 0 {
		return errors.New("per-user counts must not be negative")
	}
	if p.ShareRatio < 0 || p.ShareRatio > 1 {
		return errors.New("share_ratio must be between 0 and 1")
	}
	if p.MaxDays < 0 {
		return errors.New("max_days must not be negative")
	}
	return nil
}

// ParsePreset decodes a YAML preset and validates it.
func ParsePreset(raw []byte) (Preset, error) {
	var p Preset
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return Preset{}, fmt.Errorf("decode preset: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Preset{}, fmt.Errorf("preset %q: %w", p.Name, err)
	}
	return p, nil
}

// LoadPreset resolves nameOrPath against the built-in presets first, then the filesystem.
func LoadPreset(nameOrPath string) (Preset, error) {
	if raw, err := presetFS.ReadFile("presets/" + nameOrPath + ".yml"); err == nil {
		return ParsePreset(raw)
	}
	raw, err := os.ReadFile(nameOrPath)
	if err != nil {
		return Preset{}, fmt.Errorf("unknown preset %q (built-ins: %s): %w",
			nameOrPath, strings.Join(BuiltinPresets(), ", "), err)
	}
	return ParsePreset(raw)
}

// BuiltinPresets lists the embedded preset names.
func BuiltinPresets() []string {
	entries, err := presetFS.ReadDir("presets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yml"))
	}
	sort.Strings(names)
	return names
}
