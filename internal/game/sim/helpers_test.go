package sim

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/udisondev/lbsim/internal/model"
)

// captureLogs routes the default logger into a buffer for the rest of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

// testScenario is 700000 ATK vs 500000 DEF with A4 at lb4 and a small
// support deck so trials vary on both random sources.
func testScenario() model.Scenario {
	sc := model.Scenario{
		Stats: model.CombatantStats{
			Attack: 700000, SpAttack: 650000,
			Defense: 500000, SpDefense: 450000,
			TargetHP: 1500000,
		},
		Attack: model.AttackMemoria{
			Category:     model.CategoryNormalSingle,
			Subtype:      model.SubtypeA4,
			Breakthrough: model.Breakthrough4,
			Element:      model.ElementFire,
		},
		Costume: model.Costume{
			Role:              model.CategoryNormalSingle,
			RoleMultiplier:    1.15,
			ElementMultiplier: 1,
		},
		Corrections: model.NeutralCorrections(),
	}
	for i := range 5 {
		sc.Support[i] = model.SupportSlot{
			Skill:        model.DamageUp4Plus,
			Breakthrough: model.Breakthrough4,
			Element:      model.ElementFire,
		}
	}
	return sc
}
