package sim

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/udisondev/lbsim/internal/model"
)

// Buff gauge levels compared by the quick comparison grid.
var (
	AttackBuffLevels  = []model.BuffLevel{25, 20, 15, 10, 5, 0, -5, -10, -15, -20}
	DefenseBuffLevels = []model.BuffLevel{5, 0, -5, -10, -15, -20}
)

// gridSeedStream keys the stream that derives per-cell seeds.
const gridSeedStream = 0x67726964

// Cell is one buff combination of the grid.
type Cell struct {
	AttackLevel  model.BuffLevel
	DefenseLevel model.BuffLevel
	Mean         float64
	HPShaved     float64
}

// RoundedMean returns Mean rounded half to even.
func (c Cell) RoundedMean() int64 {
	return roundMean(c.Mean)
}

// Grid is the quick comparison table: one row per attack level, one column
// per defense level.
type Grid struct {
	TargetHP      int64
	Trials        int
	AttackLevels  []model.BuffLevel
	DefenseLevels []model.BuffLevel
	Cells         [][]Cell
}

// QuickComparison runs one batch per (attack, defense) gauge level with flat
// attribute buffs forced to 0, and reports the mean damage and HP shaved of
// each. Every cell draws from its own seed derived from the runner seed.
func QuickComparison(ctx context.Context, r *Runner, sc model.Scenario, trials int) (Grid, error) {
	return comparison(ctx, r, sc, trials, AttackBuffLevels, DefenseBuffLevels)
}

func comparison(ctx context.Context, r *Runner, sc model.Scenario, trials int, atkLevels, defLevels []model.BuffLevel) (Grid, error) {
	if trials <= 0 {
		return Grid{}, fmt.Errorf("%w, got %d", ErrInvalidTrials, trials)
	}

	pct := r.tables.Constants.BuffLevelPercent
	seeds := deriveSeeds(r.seed, gridSeedStream, len(atkLevels)*len(defLevels))
	grid := Grid{
		TargetHP:      sc.Stats.TargetHP,
		Trials:        trials,
		AttackLevels:  atkLevels,
		DefenseLevels: defLevels,
		Cells:         make([][]Cell, len(atkLevels)),
	}

	slog.Info("running quick comparison",
		"rows", len(atkLevels),
		"columns", len(defLevels),
		"trials", trials)

	// Lookups do not depend on buffs, so every cell has the same fallbacks.
	logged := false
	for i, atk := range atkLevels {
		grid.Cells[i] = make([]Cell, len(defLevels))
		for j, def := range defLevels {
			plan, err := r.prepare(sc.WithBuffs(model.FromLevels(atk, def, pct)))
			if err != nil {
				return Grid{}, fmt.Errorf("cell atk %+d def %+d: %w", atk, def, err)
			}
			if !logged {
				logFallbacks(plan.Fallbacks)
				logged = true
			}
			samples, err := r.RunPlan(ctx, plan, trials, seeds[i*len(defLevels)+j])
			if err != nil {
				return Grid{}, fmt.Errorf("cell atk %+d def %+d: %w", atk, def, err)
			}
			mean := Mean(samples)
			grid.Cells[i][j] = Cell{
				AttackLevel:  atk,
				DefenseLevel: def,
				Mean:         mean,
				HPShaved:     HPShaved(mean, sc.Stats.TargetHP),
			}
		}
	}
	return grid, nil
}
