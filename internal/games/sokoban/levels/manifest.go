package levels

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Manifest is the optional pack.yaml of a level pack.
type Manifest struct {
	Name   string          `yaml:"name"`
	Author string          `yaml:"author,omitempty"`
	Levels []ManifestLevel `yaml:"levels"`
}

// ManifestLevel names one level.
type ManifestLevel struct {
	Number int    `yaml:"number"`
	Name   string `yaml:"name"`
}

// ParseManifest parses pack.yaml contents.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	seen := make(map[int]bool, len(m.Levels))
	for _, l := range m.Levels {
		if l.Number < 1 {
			return nil, fmt.Errorf("level number %d must be positive", l.Number)
		}
		if seen[l.Number] {
			return nil, fmt.Errorf("level %d listed twice", l.Number)
		}
		seen[l.Number] = true
	}
	return &m, nil
}

// LevelName returns the manifest name of level n, or "".
func (m *Manifest) LevelName(n int) string {
	for _, l := range m.Levels {
		if l.Number == n {
			return l.Name
		}
	}
	return ""
}
