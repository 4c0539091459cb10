package model

import (
	"errors"
	"fmt"
)

// SupportSlots is the fixed number of support memoria in a deck.
const SupportSlots = 25

// BuffLevel is a step on the in-game buff gauge. One level is a fixed number
// of percent (5 by default, see data.Constants.BuffLevelPercent).
type BuffLevel int

const (
	MinBuffLevel BuffLevel = -20
	MaxBuffLevel BuffLevel = 20
)

// Percent converts the level to a percentage buff.
func (l BuffLevel) Percent(percentPerLevel int) int {
	return int(l) * percentPerLevel
}

// CombatantStats are the base stats of the attacker and the defender.
type CombatantStats struct {
	Attack    int64
	SpAttack  int64
	Defense   int64
	SpDefense int64
	TargetHP  int64
}

// BuffState holds percentage buffs and flat attribute buffs. The flat values
// are added after the percentage is applied.
type BuffState struct {
	AttackPercent    int
	DefensePercent   int
	AttributeAttack  int64
	AttributeDefense int64
}

// FromLevels builds a BuffState from gauge levels without attribute buffs.
func FromLevels(atk, def BuffLevel, percentPerLevel int) BuffState {
	return BuffState{
		AttackPercent:  atk.Percent(percentPerLevel),
		DefensePercent: def.Percent(percentPerLevel),
	}
}

// AttackMemoria is the memoria whose skill drives the main damage formula.
type AttackMemoria struct {
	Category     Category
	Subtype      Subtype
	Breakthrough Breakthrough
	Element      Element
}

// SupportSlot is one of the 25 support memoria.
type SupportSlot struct {
	Skill        SupportSkill
	Breakthrough Breakthrough
	Element      Element
}

// ProbabilityAmplification raises the activation probability of support
// skills whose element equals Element.
type ProbabilityAmplification struct {
	Element Element
	Boost   float64
}

// Costume is the attacker's Lily costume.
type Costume struct {
	Role              Category
	RoleMultiplier    float64
	Element           Element
	ElementMultiplier float64
}

// OpponentCostume reduces damage of attacks matching its element.
type OpponentCostume struct {
	Element       Element
	ReductionRate float64
}

// Corrections are the remaining named correction sources.
type Corrections struct {
	Charm    ElementRates
	Order    float64
	Counter  float64
	Theme    ElementRates
	Grace    bool
	Neunwelt bool
	Meteor   bool
	Barrier  bool
	Critical bool
	Opponent OpponentCostume
}

// NeutralCorrections returns corrections that leave damage unchanged.
func NeutralCorrections() Corrections {
	return Corrections{
		Charm:   UniformRates(1),
		Order:   1,
		Counter: 1,
		Theme:   UniformRates(1),
	}
}

// Scenario is the complete immutable input of one trial. It is a plain value:
// copying it never shares state with the original.
type Scenario struct {
	Stats          CombatantStats
	Buffs          BuffState
	Attack         AttackMemoria
	Support        [SupportSlots]SupportSlot
	Legendary      ElementRates
	ProbabilityAmp ProbabilityAmplification
	Costume        Costume
	Corrections    Corrections
}

// WithBuffs returns a copy of the scenario using b.
func (s Scenario) WithBuffs(b BuffState) Scenario {
	s.Buffs = b
	return s
}

// AttackStats returns the attacker and defender base stats selected by the
// attack category.
func (s Scenario) AttackStats() (atk, def int64) {
	if s.Attack.Category.IsSpecial() {
		return s.Stats.SpAttack, s.Stats.SpDefense
	}
	return s.Stats.Attack, s.Stats.Defense
}

// AttributeBuffLimits returns the largest allowed absolute flat attribute
// buffs: a quarter of the summed attack (resp. defense) stats.
func (s Scenario) AttributeBuffLimits() (atk, def int64) {
	return (s.Stats.Attack + s.Stats.SpAttack) / 4, (s.Stats.Defense + s.Stats.SpDefense) / 4
}

// ErrInvalidScenario is wrapped by every Validate failure.
var ErrInvalidScenario = errors.New("invalid scenario")

// Validate checks the invariants the damage engine relies on.
func (s Scenario) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidScenario}, args...)...))
	}

	st := s.Stats
	if st.Attack <= 0 || st.SpAttack <= 0 || st.Defense <= 0 || st.SpDefense <= 0 {
		fail("base stats must be positive (atk=%d spatk=%d def=%d spdef=%d)",
			st.Attack, st.SpAttack, st.Defense, st.SpDefense)
	}
	if st.TargetHP <= 0 {
		fail("target hp must be positive, got %d", st.TargetHP)
	}

	a := s.Attack
	if !a.Category.Valid() {
		fail("unknown attack category %d", a.Category)
	} else if !a.Category.Allows(a.Subtype) {
		fail("subtype %s is not available for %s", a.Subtype, a.Category)
	}
	if !a.Element.Valid() {
		fail("attack element must be set")
	}

	for i, slot := range s.Support {
		if slot.Skill == SupportNone {
			continue
		}
		if !slot.Element.Valid() {
			fail("support slot %d: element must be set", i+1)
		}
	}

	for _, e := range Elements {
		if s.Legendary.Get(e) < 0 {
			fail("legendary amplification for %s is negative", e)
		}
		if s.Corrections.Charm.Get(e) < 0 || s.Corrections.Theme.Get(e) < 0 {
			fail("charm/theme rate for %s is negative", e)
		}
	}
	if s.ProbabilityAmp.Boost < 0 {
		fail("probability amplification is negative")
	}

	c := s.Costume
	if !c.Role.Valid() {
		fail("unknown costume role %d", c.Role)
	}
	if c.RoleMultiplier < 1 || c.ElementMultiplier < 1 {
		fail("costume multipliers must be >= 1 (role=%.2f element=%.2f)", c.RoleMultiplier, c.ElementMultiplier)
	}

	corr := s.Corrections
	if corr.Order < 0 || corr.Counter < 0 {
		fail("order/counter rates must not be negative")
	}
	if r := corr.Opponent.ReductionRate; r < 0 || r > 1 {
		fail("opponent reduction rate %.2f outside [0,1]", r)
	}

	return errors.Join(errs...)
}

// ValidateBuffs checks that buff percentages come from the gauge and flat
// attribute buffs stay within AttributeBuffLimits.
func (s Scenario) ValidateBuffs(percentPerLevel int) error {
	var errs []error
	checkLevel := func(name string, pct int) {
		if percentPerLevel <= 0 {
			return
		}
		lvl := BuffLevel(pct / percentPerLevel)
		if pct%percentPerLevel != 0 || lvl < MinBuffLevel || lvl > MaxBuffLevel {
			errs = append(errs, fmt.Errorf("%w: %s buff %d%% is not a gauge level", ErrInvalidScenario, name, pct))
		}
	}
	checkLevel("attack", s.Buffs.AttackPercent)
	checkLevel("defense", s.Buffs.DefensePercent)

	maxAtk, maxDef := s.AttributeBuffLimits()
	if v := s.Buffs.AttributeAttack; v < -maxAtk || v > maxAtk {
		errs = append(errs, fmt.Errorf("%w: attribute attack buff %d outside ±%d", ErrInvalidScenario, v, maxAtk))
	}
	if v := s.Buffs.AttributeDefense; v < -maxDef || v > maxDef {
		errs = append(errs, fmt.Errorf("%w: attribute defense buff %d outside ±%d", ErrInvalidScenario, v, maxDef))
	}
	return errors.Join(errs...)
}
