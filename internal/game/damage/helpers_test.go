package damage

import (
	"github.com/udisondev/lbsim/internal/model"
)

// scriptedRand returns the queued values in order and then repeats the last
// one. Tests use it to control individual support activations.
type scriptedRand struct {
	values []float64
	calls  int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.values) == 0 {
		return 0
	}
	i := r.calls
	if i >= len(r.values) {
		i = len(r.values) - 1
	}
	r.calls++
	return r.values[i]
}

// neutralScenario is the worked example: 700000 ATK vs 500000 DEF, A4 at lb4,
// every correction neutral and no support memoria.
func neutralScenario() model.Scenario {
	return model.Scenario{
		Stats: model.CombatantStats{
			Attack: 700000, SpAttack: 700000,
			Defense: 500000, SpDefense: 500000,
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
			RoleMultiplier:    1,
			ElementMultiplier: 1,
		},
		Corrections: model.NeutralCorrections(),
	}
}
