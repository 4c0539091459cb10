package sim

import (
	"math"
	"slices"
)

// Summary is the reduction of a damage sample against a target HP.
type Summary struct {
	Trials int
	Mean   float64
	// RoundedMean is Mean rounded half to even, as shown in reports.
	RoundedMean int64
	Min         int64
	Max         int64
	StdDev      float64
	P50         int64
	P90         int64
	P99         int64
	// HPShaved is mean/targetHP as a percentage clamped to [0, 100].
	HPShaved float64
	// OneShotRate is the percentage of trials with damage >= targetHP.
	OneShotRate float64
}

// Summarize reduces samples. The result does not depend on sample order. An
// empty sample yields a zero Summary.
func Summarize(samples []int64, targetHP int64) Summary {
	n := len(samples)
	if n == 0 {
		return Summary{}
	}

	var (
		sum   float64
		kills int
	)
	lo, hi := samples[0], samples[0]
	for _, d := range samples {
		sum += float64(d)
		lo = min(lo, d)
		hi = max(hi, d)
		if d >= targetHP {
			kills++
		}
	}
	mean := sum / float64(n)

	var acc float64
	for _, d := range samples {
		diff := float64(d) - mean
		acc += diff * diff
	}

	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	return Summary{
		Trials:      n,
		Mean:        mean,
		RoundedMean: roundMean(mean),
		Min:         lo,
		Max:         hi,
		StdDev:      math.Sqrt(acc / float64(n)),
		P50:         percentile(sorted, 50),
		P90:         percentile(sorted, 90),
		P99:         percentile(sorted, 99),
		HPShaved:    HPShaved(mean, targetHP),
		OneShotRate: float64(kills) / float64(n) * 100,
	}
}

// HPShaved returns mean/targetHP × 100 clamped to [0, 100].
func HPShaved(mean float64, targetHP int64) float64 {
	if targetHP <= 0 {
		return 100
	}
	pct := mean / float64(targetHP) * 100
	return math.Min(100, math.Max(0, pct))
}

// Mean returns the arithmetic mean of samples, 0 for an empty sample.
func Mean(samples []int64) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, d := range samples {
		sum += float64(d)
	}
	return sum / float64(len(samples))
}

// roundMean rounds half to even.
func roundMean(m float64) int64 {
	return int64(math.RoundToEven(m))
}

// percentile returns the nearest-rank percentile of a sorted sample.
func percentile(sorted []int64, p float64) int64 {
	rank := int(math.Ceil(p / 100 * float64(len(sorted))))
	rank = max(1, min(rank, len(sorted)))
	return sorted[rank-1]
}
