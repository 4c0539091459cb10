package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/lbsim/internal/model"
)

// tablesFile is the YAML layout of a tables override file. Every section is
// optional; keys present in the file replace the built-in values.
type tablesFile struct {
	SkillEffects            map[string]float64 `yaml:"skill_effects"`
	BreakthroughMultipliers map[string]float64 `yaml:"breakthrough_multipliers"`
	ActivationProbabilities map[string]float64 `yaml:"activation_probabilities"`
	SupportDamageUps        map[string]float64 `yaml:"support_damage_ups"`
	ActivationFamilyFactors map[string]float64 `yaml:"activation_family_factors"`
	Defaults                yaml.Node          `yaml:"defaults"`
	Constants               yaml.Node          `yaml:"constants"`
	Unverified              []string           `yaml:"unverified"`
}

// LoadTables loads table overrides from a YAML file on top of DefaultTables.
// If path is empty or the file doesn't exist, returns defaults.
func LoadTables(path string) (*Tables, error) {
	t := DefaultTables()
	if path == "" {
		return t, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return t, fmt.Errorf("reading tables %s: %w", path, err)
	}

	if err := t.apply(raw); err != nil {
		return t, fmt.Errorf("parsing tables %s: %w", path, err)
	}
	return t, nil
}

// ParseTables applies YAML overrides held in memory on top of DefaultTables.
func ParseTables(raw []byte) (*Tables, error) {
	t := DefaultTables()
	if err := t.apply(raw); err != nil {
		return t, err
	}
	return t, nil
}

func (t *Tables) apply(raw []byte) error {
	var file tablesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return err
	}

	merges := []struct {
		name  string
		dst   map[string]float64
		src   map[string]float64
		parse func(string) (string, error)
	}{
		{"skill_effects", t.SkillEffects, file.SkillEffects, subtypeKey},
		{"breakthrough_multipliers", t.BreakthroughMultipliers, file.BreakthroughMultipliers, breakthroughKey},
		{"activation_probabilities", t.ActivationProbabilities, file.ActivationProbabilities, breakthroughKey},
		{"support_damage_ups", t.SupportDamageUps, file.SupportDamageUps, supportKey},
		{"activation_family_factors", t.ActivationFamilyFactors, file.ActivationFamilyFactors, supportKey},
	}
	for _, m := range merges {
		for name, v := range m.src {
			key, err := m.parse(name)
			if err != nil {
				return fmt.Errorf("%s: %w", m.name, err)
			}
			if v < 0 {
				return fmt.Errorf("%s: %s must not be negative, got %v", m.name, name, v)
			}
			m.dst[key] = v
		}
	}

	if !file.Defaults.IsZero() {
		if err := file.Defaults.Decode(&t.Defaults); err != nil {
			return fmt.Errorf("defaults: %w", err)
		}
	}
	if !file.Constants.IsZero() {
		if err := file.Constants.Decode(&t.Constants); err != nil {
			return fmt.Errorf("constants: %w", err)
		}
	}
	if file.Unverified != nil {
		t.Unverified = file.Unverified
	}
	return t.validate()
}

func (t *Tables) validate() error {
	c := t.Constants
	if c.VarianceMin <= 0 || c.VarianceMin > c.VarianceMax {
		return fmt.Errorf("constants: variance range [%v, %v] is invalid", c.VarianceMin, c.VarianceMax)
	}
	if c.StatusRatioThreshold <= 0 || c.StatusRatioThreshold > c.StatusRatioCapRatio {
		return fmt.Errorf("constants: status ratio thresholds %v/%v are invalid", c.StatusRatioThreshold, c.StatusRatioCapRatio)
	}
	if c.BuffLevelPercent <= 0 {
		return fmt.Errorf("constants: buff_level_percent must be positive, got %d", c.BuffLevelPercent)
	}
	if c.MinDamage < 0 {
		return fmt.Errorf("constants: min_damage must not be negative, got %d", c.MinDamage)
	}
	return nil
}

func subtypeKey(name string) (string, error) {
	s, err := model.ParseSubtype(name)
	return s.String(), err
}

func breakthroughKey(name string) (string, error) {
	b, err := model.ParseBreakthrough(name)
	return b.String(), err
}

func supportKey(name string) (string, error) {
	s, err := model.ParseSupportSkill(name)
	return s.String(), err
}
