package sim

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/udisondev/lbsim/internal/model"
)

// LargeHistogramBins is the bin count above which Detail warns. The bin
// count grows with max damage over target HP, so a tiny HP against a strong
// attacker produces a very long histogram.
const LargeHistogramBins = 1000

// DetailResult is the distribution of one specific buff combination.
type DetailResult struct {
	Buffs     model.BuffState
	Samples   []int64
	Summary   Summary
	Histogram Histogram
	// Lower and Upper bound every possible trial of the scenario.
	Lower int64
	Upper int64
}

// Detail runs a batch for the buffs of sc, including flat attribute buffs,
// and reduces it to a summary and a histogram. Buffs must sit on the gauge
// and within the attribute buff limits.
func Detail(ctx context.Context, r *Runner, sc model.Scenario, trials int) (DetailResult, error) {
	if trials <= 0 {
		return DetailResult{}, fmt.Errorf("%w, got %d", ErrInvalidTrials, trials)
	}
	if err := sc.ValidateBuffs(r.tables.Constants.BuffLevelPercent); err != nil {
		return DetailResult{}, err
	}

	plan, err := r.Prepare(sc)
	if err != nil {
		return DetailResult{}, err
	}
	samples, err := r.RunPlan(ctx, plan, trials, r.seed)
	if err != nil {
		return DetailResult{}, err
	}

	res := DetailResult{
		Buffs:     sc.Buffs,
		Samples:   samples,
		Summary:   Summarize(samples, sc.Stats.TargetHP),
		Histogram: BuildHistogram(samples, sc.Stats.TargetHP),
	}
	res.Lower, res.Upper = plan.Bounds()

	if n := len(res.Histogram.Bins); n > LargeHistogramBins {
		slog.Warn("histogram is very long, target HP is small against the damage",
			"bins", n,
			"target_hp", sc.Stats.TargetHP,
			"max", res.Summary.Max)
	}

	slog.Info("detail run complete",
		"trials", trials,
		"mean", res.Summary.RoundedMean,
		"min", res.Summary.Min,
		"max", res.Summary.Max,
		"one_shot_pct", res.Summary.OneShotRate)
	return res, nil
}
