package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// NPCType is one NPC archetype (soldier, caco_demon, ...).
type NPCType struct {
	Sprite          string  `yaml:"sprite"`
	Scale           float64 `yaml:"scale"`
	HeightShift     float64 `yaml:"height_shift"`
	AnimationTimeMs int     `yaml:"animation_time_ms"`
	Health          int     `yaml:"health"`
	Speed           float64 `yaml:"speed"` // tiles per ms
	Size            float64 `yaml:"size"`  // wall probe multiplier
	AttackDist      [2]int  `yaml:"attack_dist"`
	SearchDist      [2]int  `yaml:"search_dist"`
	Damage          [2]int  `yaml:"damage"`
	Accuracy        [2]int  `yaml:"accuracy"` // percent
}

// NPCTypesConfig is the root of npcs.yaml.
type NPCTypesConfig struct {
	Types map[string]NPCType `yaml:"npc_types"`
}

// LoadNPCTypes loads NPC archetypes from YAML.
func LoadNPCTypes(filename string) (*NPCTypesConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read npc types: %w", err)
	}

	var cfg NPCTypesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse npc types: %w", err)
	}
	for key, t := range cfg.Types {
		if err := t.validate(); err != nil {
			return nil, fmt.Errorf("npc type %q: %w", key, err)
		}
	}
	return &cfg, nil
}

// Get returns the archetype for key.
func (c *NPCTypesConfig) Get(key string) (NPCType, bool) {
	if c == nil {
		return NPCType{}, false
	}
	t, ok := c.Types[key]
	return t, ok
}

func (t NPCType) validate() error {
	for name, r := range map[string][2]int{
		"attack_dist": t.AttackDist,
		"search_dist": t.SearchDist,
		"damage":      t.Damage,
		"accuracy":    t.Accuracy,
	} {
		if r[0] > r[1] {
			return fmt.Errorf("%w: %s range [%d, %d] is reversed", ErrInvalidConfig, name, r[0], r[1])
		}
	}
	if t.Health <= 0 {
		return fmt.Errorf("%w: health must be positive", ErrInvalidConfig)
	}
	return nil
}
