package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/lbsim/internal/model"
)

func TestTables_Lookups(t *testing.T) {
	tbl := DefaultTables()

	tests := []struct {
		name string
		got  Lookup
		want Lookup
	}{
		{"skill effect A4", tbl.SkillEffect(model.SubtypeA4), Lookup{Value: 0.15}},
		{"skill effect D3", tbl.SkillEffect(model.SubtypeD3), Lookup{Value: 0.085}},
		{"breakthrough 4", tbl.BreakthroughMultiplier(model.Breakthrough4), Lookup{Value: 1.5}},
		{"breakthrough unknown", tbl.BreakthroughMultiplier(model.Breakthrough(9)), Lookup{Value: 1.35, Defaulted: true}},
		{"support breakthrough unknown", tbl.SupportBreakthroughMultiplier(model.Breakthrough(9)), Lookup{Value: 1.0, Defaulted: true}},
		{"activation 0", tbl.ActivationProbability(model.Breakthrough0), Lookup{Value: 0.12}},
		{"activation unknown", tbl.ActivationProbability(model.Breakthrough(-1)), Lookup{Value: 0, Defaulted: true}},
		{"damage up 5++", tbl.SupportDamageUp(model.DamageUp5PlusPlus), Lookup{Value: 0.24}},
		{"family 4+", tbl.ActivationFamilyFactor(model.DamageUp4Plus), Lookup{Value: 1.5}},
		{"family 5++", tbl.ActivationFamilyFactor(model.DamageUp5PlusPlus), Lookup{Value: 2.0}},
		{"family plain", tbl.ActivationFamilyFactor(model.DamageUp3), Lookup{Value: 1.0, Defaulted: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want.Defaulted, tt.got.Defaulted)
			assert.InDelta(t, tt.want.Value, tt.got.Value, 1e-12)
		})
	}
}

func TestTables_MissingKeyFallsBack(t *testing.T) {
	tbl := DefaultTables()
	delete(tbl.SkillEffects, model.SubtypeA6.String())

	got := tbl.SkillEffect(model.SubtypeA6)
	assert.True(t, got.Defaulted)
	assert.InDelta(t, 0.1, got.Value, 1e-12)
}

func TestTables_Unverified(t *testing.T) {
	tbl := DefaultTables()
	assert.True(t, tbl.IsUnverified("skill_effects", "A5"))
	assert.True(t, tbl.IsUnverified("skill_effects", "B5"))
	assert.False(t, tbl.IsUnverified("skill_effects", "A4"))
}

func TestParseTables_Overrides(t *testing.T) {
	raw := []byte(`
skill_effects:
  AⅤ: 0.17
breakthrough_multipliers:
  "4凸": 1.55
constants:
  legion_match: 1.3
unverified: ["skill_effects/A6"]
`)
	tbl, err := ParseTables(raw)
	require.NoError(t, err)

	assert.InDelta(t, 0.17, tbl.SkillEffect(model.SubtypeA5).Value, 1e-12)
	assert.InDelta(t, 0.15, tbl.SkillEffect(model.SubtypeA4).Value, 1e-12, "untouched keys keep defaults")
	assert.InDelta(t, 1.55, tbl.BreakthroughMultiplier(model.Breakthrough4).Value, 1e-12)
	assert.InDelta(t, 1.3, tbl.Constants.LegionMatch, 1e-12)
	assert.InDelta(t, 1.3, tbl.Constants.CriticalMultiplier, 1e-12, "untouched constants keep defaults")
	assert.Equal(t, int64(2), tbl.Constants.MinDamage)
	assert.Equal(t, []string{"skill_effects/A6"}, tbl.Unverified)
}

func TestParseTables_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"unknown subtype", "skill_effects:\n  A9: 0.2\n"},
		{"negative value", "activation_probabilities:\n  lb1: -0.1\n"},
		{"bad variance", "constants:\n  variance_min: 1.2\n"},
		{"bad yaml", "skill_effects: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTables([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestLoadTables_MissingFileReturnsDefaults(t *testing.T) {
	tbl, err := LoadTables(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultTables(), tbl)

	tbl, err = LoadTables("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTables(), tbl)
}

func TestLoadTables_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte("support_damage_ups:\n  dmg-up-1: 0.11\n"), 0o644))

	tbl, err := LoadTables(path)
	require.NoError(t, err)
	assert.InDelta(t, 0.11, tbl.SupportDamageUp(model.DamageUp1).Value, 1e-12)
}
