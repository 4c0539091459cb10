package damage

import (
	"fmt"

	"github.com/udisondev/lbsim/internal/data"
	"github.com/udisondev/lbsim/internal/model"
)

// Fallback records a lookup that resolved to a default value.
type Fallback struct {
	Table string
	Key   string
	Value float64
}

func (f Fallback) String() string {
	return fmt.Sprintf("%s/%s=%v", f.Table, f.Key, f.Value)
}

// Plan is a scenario with every deterministic step resolved. A Plan is
// read-only after Prepare and safe to share between goroutines; each trial
// only needs its own Rand.
type Plan struct {
	FinalAttack  int64
	FinalDefense int64
	Multiplier   float64
	BaseDamage   int64
	TargetHP     int64

	Support    SupportPlan
	Correction CorrectionPlan
	Critical   bool

	// Fallbacks lists lookups that used default values.
	Fallbacks []Fallback

	constants data.Constants
}

// Prepare validates sc and resolves its deterministic steps.
func Prepare(sc model.Scenario, t *data.Tables) (*Plan, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	c := t.Constants
	baseAtk, baseDef := sc.AttackStats()
	finalAtk := ResolveStat(baseAtk, sc.Buffs.AttackPercent, sc.Buffs.AttributeAttack)
	finalDef := ResolveStat(baseDef, sc.Buffs.DefensePercent, sc.Buffs.AttributeDefense)

	var fallbacks []Fallback
	note := func(table, key string, l data.Lookup) float64 {
		if l.Defaulted {
			fallbacks = append(fallbacks, Fallback{Table: table, Key: key, Value: l.Value})
		}
		return l.Value
	}
	skill := note("skill_effects", sc.Attack.Subtype.String(), t.SkillEffect(sc.Attack.Subtype))
	lb := note("breakthrough_multipliers", sc.Attack.Breakthrough.String(), t.BreakthroughMultiplier(sc.Attack.Breakthrough))
	mult := MemoriaMultiplier(skill, lb)

	support, supportFallbacks := NewSupportPlan(sc, t)
	fallbacks = append(fallbacks, supportFallbacks...)

	return &Plan{
		FinalAttack:  finalAtk,
		FinalDefense: finalDef,
		Multiplier:   mult,
		BaseDamage:   BaseDamage(finalAtk, finalDef, mult),
		TargetHP:     sc.Stats.TargetHP,
		Support:      support,
		Correction:   NewCorrectionPlan(sc, finalAtk, finalDef, c),
		Critical:     sc.Corrections.Critical,
		Fallbacks:    fallbacks,
		constants:    c,
	}, nil
}

// Roll runs one trial: support activations, correction, variance roll and
// floor. Draw order is the support slots first, then the variance roll.
func (p *Plan) Roll(rng Rand) int64 {
	support := p.Support.Roll(rng)
	factor := p.Correction.Factor(support)
	return Finalize(p.BaseDamage, factor, rng.Float64(), p.Critical, p.constants)
}

// Bounds returns an inclusive range every trial falls within: no support
// activation with the lowest variance, and every possible activation with the
// highest variance.
func (p *Plan) Bounds() (lo, hi int64) {
	c := p.constants
	minSupport := p.Support.Roll(constRand(1))
	maxSupport := p.Support.Roll(constRand(0))
	lo = Finalize(p.BaseDamage, p.Correction.Factor(minSupport), 0, p.Critical, c)
	hi = Finalize(p.BaseDamage, p.Correction.Factor(maxSupport), 1, p.Critical, c)
	return lo, hi
}

// Compute prepares sc and runs a single trial.
func Compute(sc model.Scenario, t *data.Tables, rng Rand) (int64, error) {
	p, err := Prepare(sc, t)
	if err != nil {
		return 0, fmt.Errorf("preparing scenario: %w", err)
	}
	return p.Roll(rng), nil
}

// constRand always returns the same value. 0 activates every slot with a
// positive probability; 1 activates none.
type constRand float64

func (r constRand) Float64() float64 { return float64(r) }
