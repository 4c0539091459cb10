package damage

import (
	"github.com/udisondev/lbsim/internal/data"
	"github.com/udisondev/lbsim/internal/model"
)

// CorrectionPlan holds every correction factor except the support factor,
// which is re-sampled per trial.
type CorrectionPlan struct {
	Role        float64
	Element     float64
	Charm       float64
	Order       float64
	StatusRatio float64
	Counter     float64
	Theme       float64
	LegionMatch float64
	Stack       float64
	Opponent    float64
	Grace       float64
}

// NewCorrectionPlan resolves the correction sources of sc for the given
// final stats.
func NewCorrectionPlan(sc model.Scenario, finalAtk, finalDef int64, c data.Constants) CorrectionPlan {
	atk := sc.Attack
	costume := sc.Costume
	corr := sc.Corrections

	p := CorrectionPlan{
		Role:        1,
		Element:     1,
		Charm:       corr.Charm.Get(atk.Element),
		Order:       corr.Order,
		StatusRatio: StatusRatioCorrection(finalAtk, finalDef, c),
		Counter:     corr.Counter,
		Theme:       corr.Theme.Get(atk.Element),
		LegionMatch: c.LegionMatch,
		Stack:       StackCorrection(corr.Meteor, corr.Barrier, c),
		Opponent:    1,
		Grace:       GraceCorrection(corr.Grace, corr.Neunwelt, c),
	}

	if costume.Role == atk.Category {
		p.Role = costume.RoleMultiplier
	}
	if costume.Element != model.ElementNone && costume.Element == atk.Element {
		p.Element = costume.ElementMultiplier
	}
	if opp := corr.Opponent; opp.Element != model.ElementNone && opp.Element == atk.Element {
		p.Opponent = 1 - opp.ReductionRate
	}
	return p
}

// Factor multiplies every correction with the sampled support factor. The
// order is fixed so results are reproducible to the last bit.
func (p CorrectionPlan) Factor(support float64) float64 {
	f := 1.0
	f *= p.Role
	f *= p.Element
	f *= p.Charm
	f *= p.Order
	f *= support
	f *= p.StatusRatio
	f *= p.Counter
	f *= p.Theme
	f *= p.LegionMatch
	f *= p.Stack
	f *= p.Opponent
	f *= p.Grace
	return f
}
