package data

import (
	"github.com/udisondev/lbsim/internal/model"
)

// Lookup is the result of a table lookup. Defaulted is true when the key was
// missing and Value came from Defaults.
type Lookup struct {
	Value     float64
	Defaulted bool
}

// Defaults are the values returned for keys missing from a table.
type Defaults struct {
	SkillEffect            float64 `yaml:"skill_effect"`
	BreakthroughMultiplier float64 `yaml:"breakthrough_multiplier"`
	SupportBreakthrough    float64 `yaml:"support_breakthrough_multiplier"`
	ActivationProbability  float64 `yaml:"activation_probability"`
	SupportDamageUp        float64 `yaml:"support_damage_up"`
	ActivationFamilyFactor float64 `yaml:"activation_family_factor"`
}

// Constants are the fixed coefficients of the damage pipeline.
type Constants struct {
	LegionMatch          float64 `yaml:"legion_match"`
	Grace                float64 `yaml:"grace"`
	Neunwelt             float64 `yaml:"neunwelt"`
	StackMeteor          float64 `yaml:"stack_meteor"`
	StackBarrier         float64 `yaml:"stack_barrier"`
	MinDamage            int64   `yaml:"min_damage"`
	CriticalMultiplier   float64 `yaml:"critical_multiplier"`
	BuffLevelPercent     int     `yaml:"buff_level_percent"`
	StatusRatioThreshold float64 `yaml:"status_ratio_threshold"`
	StatusRatioCapRatio  float64 `yaml:"status_ratio_cap_ratio"`
	StatusRatioStep      float64 `yaml:"status_ratio_step"`
	StatusRatioMax       float64 `yaml:"status_ratio_max"`
	VarianceMin          float64 `yaml:"variance_min"`
	VarianceMax          float64 `yaml:"variance_max"`
}

// Tables holds every lookup table used by the damage pipeline. Map keys are
// the config keys of the model enums (model.Subtype.String() and so on).
type Tables struct {
	SkillEffects            map[string]float64
	BreakthroughMultipliers map[string]float64
	ActivationProbabilities map[string]float64
	SupportDamageUps        map[string]float64
	// ActivationFamilyFactors scales the activation probability of enhanced
	// support skills. It does not change the payout.
	ActivationFamilyFactors map[string]float64
	Defaults                Defaults
	Constants               Constants
	// Unverified lists "table/key" entries whose values are provisional.
	Unverified []string
}

// DefaultTables returns the in-game values known at the time of writing.
func DefaultTables() *Tables {
	return &Tables{
		SkillEffects: map[string]float64{
			model.SubtypeA4.String(): 0.15,
			model.SubtypeA5.String(): 0.165,
			model.SubtypeA6.String(): 0.18,
			model.SubtypeB3.String(): 0.10,
			model.SubtypeB4.String(): 0.11,
			model.SubtypeB5.String(): 0.12,
			model.SubtypeD3.String(): 0.085,
			model.SubtypeD4.String(): 0.10,
		},
		BreakthroughMultipliers: map[string]float64{
			model.Breakthrough0.String(): 1.35,
			model.Breakthrough1.String(): 1.375,
			model.Breakthrough2.String(): 1.4,
			model.Breakthrough3.String(): 1.425,
			model.Breakthrough4.String(): 1.5,
		},
		ActivationProbabilities: map[string]float64{
			model.Breakthrough0.String(): 0.12,
			model.Breakthrough1.String(): 0.125,
			model.Breakthrough2.String(): 0.13,
			model.Breakthrough3.String(): 0.135,
			model.Breakthrough4.String(): 0.15,
		},
		SupportDamageUps: map[string]float64{
			model.SupportNone.String():       0,
			model.DamageUp1.String():         0.10,
			model.DamageUp2.String():         0.15,
			model.DamageUp3.String():         0.18,
			model.DamageUp4.String():         0.21,
			model.DamageUp5.String():         0.24,
			model.DamageUp4Plus.String():     0.21,
			model.DamageUp5Plus.String():     0.24,
			model.DamageUp5PlusPlus.String(): 0.24,
		},
		ActivationFamilyFactors: map[string]float64{
			model.DamageUp4Plus.String():     1.5,
			model.DamageUp5Plus.String():     1.5,
			model.DamageUp5PlusPlus.String(): 2.0,
		},
		Defaults: Defaults{
			SkillEffect:            0.1,
			BreakthroughMultiplier: 1.35,
			SupportBreakthrough:    1.0,
			ActivationProbability:  0,
			SupportDamageUp:        0,
			ActivationFamilyFactor: 1,
		},
		Constants: Constants{
			LegionMatch:          1.28,
			Grace:                0.10,
			Neunwelt:             1.00,
			StackMeteor:          0.2,
			StackBarrier:         0.3,
			MinDamage:            2,
			CriticalMultiplier:   1.3,
			BuffLevelPercent:     5,
			StatusRatioThreshold: 2,
			StatusRatioCapRatio:  10,
			StatusRatioStep:      0.05,
			StatusRatioMax:       0.50,
			VarianceMin:          0.9,
			VarianceMax:          1.0,
		},
		Unverified: []string{
			"skill_effects/" + model.SubtypeA5.String(),
			"skill_effects/" + model.SubtypeA6.String(),
			"skill_effects/" + model.SubtypeB5.String(),
		},
	}
}

func lookup(m map[string]float64, key string, def float64) Lookup {
	if v, ok := m[key]; ok {
		return Lookup{Value: v}
	}
	return Lookup{Value: def, Defaulted: true}
}

// SkillEffect returns the skill-effect rate of an attack memoria subtype.
func (t *Tables) SkillEffect(s model.Subtype) Lookup {
	return lookup(t.SkillEffects, s.String(), t.Defaults.SkillEffect)
}

// BreakthroughMultiplier returns the multiplier of an attack memoria tier.
func (t *Tables) BreakthroughMultiplier(b model.Breakthrough) Lookup {
	return lookup(t.BreakthroughMultipliers, b.String(), t.Defaults.BreakthroughMultiplier)
}

// SupportBreakthroughMultiplier scales an activated support skill. It reads
// the same table as BreakthroughMultiplier; only the fallback differs.
func (t *Tables) SupportBreakthroughMultiplier(b model.Breakthrough) Lookup {
	return lookup(t.BreakthroughMultipliers, b.String(), t.Defaults.SupportBreakthrough)
}

// ActivationProbability returns the base activation chance of a support tier.
func (t *Tables) ActivationProbability(b model.Breakthrough) Lookup {
	return lookup(t.ActivationProbabilities, b.String(), t.Defaults.ActivationProbability)
}

// SupportDamageUp returns the amplification of an activated support skill.
func (t *Tables) SupportDamageUp(s model.SupportSkill) Lookup {
	return lookup(t.SupportDamageUps, s.String(), t.Defaults.SupportDamageUp)
}

// ActivationFamilyFactor returns the activation odds factor of a support
// skill. Skills outside an enhanced family report Defaulted.
func (t *Tables) ActivationFamilyFactor(s model.SupportSkill) Lookup {
	return lookup(t.ActivationFamilyFactors, s.String(), t.Defaults.ActivationFamilyFactor)
}

// IsUnverified reports whether table/key is flagged as provisional.
func (t *Tables) IsUnverified(table, key string) bool {
	want := table + "/" + key
	for _, u := range t.Unverified {
		if u == want {
			return true
		}
	}
	return false
}
