package damage

import (
	"math"

	"github.com/udisondev/lbsim/internal/data"
)

// Rand is the random source consumed by the stochastic steps. *rand.Rand
// from math/rand/v2 satisfies it. Float64 must return values in [0, 1).
type Rand interface {
	Float64() float64
}

// ResolveStat applies a percentage buff and then a flat attribute buff:
// floor(base × (1 + pct/100)) + flat. The result may be zero or negative.
func ResolveStat(base int64, pct int, flat int64) int64 {
	return int64(math.Floor(float64(base)*(1+float64(pct)/100))) + flat
}

// MemoriaMultiplier combines the skill-effect rate and the breakthrough
// multiplier of the attack memoria.
func MemoriaMultiplier(skillEffect, breakthrough float64) float64 {
	return skillEffect * breakthrough
}

// BaseDamage computes floor(max(0, atk − floor(2/3 × def)) × multiplier).
// Always >= 0.
func BaseDamage(atk, def int64, multiplier float64) int64 {
	raw := atk - int64(math.Floor(2.0/3.0*float64(def)))
	if raw < 0 {
		raw = 0
	}
	return int64(math.Floor(float64(raw) * multiplier))
}

// StatusRatioCorrection returns the multiplicative status-ratio factor.
// Non-positive defense yields the maximum; below the threshold there is no
// correction; between the threshold and the cap the rate is
// floor(atk/def) × step; at or above the cap the rate is the maximum.
func StatusRatioCorrection(atk, def int64, c data.Constants) float64 {
	if def <= 0 {
		return 1 + c.StatusRatioMax
	}

	ratio := float64(atk) / float64(def)
	rate := 0.0
	switch {
	case ratio < c.StatusRatioThreshold:
		rate = 0
	case ratio < c.StatusRatioCapRatio:
		rate = math.Floor(ratio) * c.StatusRatioStep
	default:
		rate = c.StatusRatioMax
	}
	return 1 + rate
}

// StackCorrection combines meteor and barrier stacks additively into one factor.
func StackCorrection(meteor, barrier bool, c data.Constants) float64 {
	f := 1.0
	if meteor {
		f += c.StackMeteor
	}
	if barrier {
		f -= c.StackBarrier
	}
	return f
}

// GraceCorrection sums the grace and Neunwelt bonuses into one factor.
func GraceCorrection(grace, neunwelt bool, c data.Constants) float64 {
	total := 0.0
	if grace {
		total += c.Grace
	}
	if neunwelt {
		total += c.Neunwelt
	}
	return 1 + total
}

// Finalize turns base damage into the damage of one trial.
//
//	corrected  = floor(base × factor)
//	randomized = floor(corrected × variance)
//	final      = floor(minDamage + max(0, randomized) × crit)
//
// variance is mapped from u ∈ [0, 1) into [VarianceMin, VarianceMax).
func Finalize(base int64, factor, u float64, critical bool, c data.Constants) int64 {
	corrected := math.Floor(float64(base) * factor)

	variance := c.VarianceMin + (c.VarianceMax-c.VarianceMin)*u
	randomized := math.Floor(corrected * variance)
	if randomized < 0 {
		randomized = 0
	}

	crit := 1.0
	if critical {
		crit = c.CriticalMultiplier
	}
	return int64(math.Floor(float64(c.MinDamage) + randomized*crit))
}
