package damage

import (
	"github.com/udisondev/lbsim/internal/data"
	"github.com/udisondev/lbsim/internal/model"
)

// supportSlot is a resolved non-empty support slot.
type supportSlot struct {
	probability float64
	payout      float64
}

// SupportPlan holds the activation odds and payouts of the support deck. The
// deterministic part is resolved once; Roll samples one trial.
type SupportPlan struct {
	slots     []supportSlot
	legendary float64
}

// NewSupportPlan resolves the 25 support slots of sc.
//
// For each non-empty slot the activation probability is the tier probability,
// scaled by the enhanced-family factor, plus the probability amplification
// when the slot element matches its target. An activated slot pays
// damageUp(skill) × breakthroughMultiplier(tier), the attack memoria table.
func NewSupportPlan(sc model.Scenario, t *data.Tables) (SupportPlan, []Fallback) {
	var (
		plan      SupportPlan
		fallbacks []Fallback
	)
	note := func(table, key string, l data.Lookup) float64 {
		if l.Defaulted {
			fallbacks = append(fallbacks, Fallback{Table: table, Key: key, Value: l.Value})
		}
		return l.Value
	}

	for _, slot := range sc.Support {
		if slot.Skill == model.SupportNone {
			continue
		}

		p := note("activation_probabilities", slot.Breakthrough.String(), t.ActivationProbability(slot.Breakthrough))
		// Plain skills have no family factor, so a default here is expected.
		p *= t.ActivationFamilyFactor(slot.Skill).Value
		if slot.Element == sc.ProbabilityAmp.Element {
			p += sc.ProbabilityAmp.Boost
		}

		rate := note("support_damage_ups", slot.Skill.String(), t.SupportDamageUp(slot.Skill))
		mult := note("breakthrough_multipliers", slot.Breakthrough.String(), t.SupportBreakthroughMultiplier(slot.Breakthrough))

		plan.slots = append(plan.slots, supportSlot{probability: p, payout: rate * mult})
	}

	plan.legendary = sc.Legendary.Get(sc.Attack.Element)
	return plan, fallbacks
}

// Active returns the number of non-empty slots, which is also the number of
// draws Roll consumes.
func (p SupportPlan) Active() int {
	return len(p.slots)
}

// Roll draws one uniform value per non-empty slot and returns
// 1 + sum of activated payouts + legendary amplification.
func (p SupportPlan) Roll(rng Rand) float64 {
	total := 0.0
	for _, s := range p.slots {
		if rng.Float64() < s.probability {
			total += s.payout
		}
	}
	total += p.legendary
	return 1 + total
}

// Expected returns the mean support factor over all possible rolls.
func (p SupportPlan) Expected() float64 {
	total := 0.0
	for _, s := range p.slots {
		prob := s.probability
		if prob > 1 {
			prob = 1
		}
		if prob < 0 {
			prob = 0
		}
		total += prob * s.payout
	}
	return 1 + total + p.legendary
}
