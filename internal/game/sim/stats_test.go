package sim

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	s := Summarize([]int64{30, 10, 40, 20}, 100)

	assert.Equal(t, 4, s.Trials)
	assert.InDelta(t, 25.0, s.Mean, 1e-12)
	assert.Equal(t, int64(25), s.RoundedMean)
	assert.Equal(t, int64(10), s.Min)
	assert.Equal(t, int64(40), s.Max)
	assert.InDelta(t, math.Sqrt(125), s.StdDev, 1e-9)
	assert.Equal(t, int64(20), s.P50)
	assert.Equal(t, int64(40), s.P90)
	assert.Equal(t, int64(40), s.P99)
	assert.InDelta(t, 25.0, s.HPShaved, 1e-12)
	assert.Zero(t, s.OneShotRate)
}

func TestSummarize_OneShotRate(t *testing.T) {
	s := Summarize([]int64{10, 20, 30, 40}, 30)
	assert.InDelta(t, 50.0, s.OneShotRate, 1e-12)
	assert.InDelta(t, 83.333333, s.HPShaved, 1e-5)

	s = Summarize([]int64{500, 400}, 100)
	assert.InDelta(t, 100.0, s.OneShotRate, 1e-12)
	assert.InDelta(t, 100.0, s.HPShaved, 1e-12, "HP shaved is clamped")
}

func TestSummarize_RoundsHalfToEven(t *testing.T) {
	assert.Equal(t, int64(2), Summarize([]int64{1, 2}, 10).RoundedMean)
	assert.Equal(t, int64(2), Summarize([]int64{2, 3}, 10).RoundedMean)
	assert.Equal(t, int64(3), Summarize([]int64{2, 3, 3}, 10).RoundedMean)
}

func TestSummarize_OrderIndependent(t *testing.T) {
	a := Summarize([]int64{5, 9, 1, 7, 3, 3, 8}, 6)
	b := Summarize([]int64{8, 3, 3, 7, 1, 9, 5}, 6)
	assert.Equal(t, a, b)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil, 100))
	assert.Zero(t, Mean(nil))
}

func TestHPShaved(t *testing.T) {
	assert.InDelta(t, 0.0, HPShaved(-5, 100), 1e-12)
	assert.InDelta(t, 42.0, HPShaved(42, 100), 1e-12)
	assert.InDelta(t, 100.0, HPShaved(1e9, 100), 1e-12)
}

func TestSummarize_EveryTrialKills(t *testing.T) {
	sc := testScenario()
	sc.Stats.TargetHP = 1000

	samples, err := NewRunner(Options{Seed: 3}).Run(context.Background(), sc, 1000)
	require.NoError(t, err)

	s := Summarize(samples, sc.Stats.TargetHP)
	assert.Equal(t, 1000, s.Trials)
	assert.InDelta(t, 100.0, s.OneShotRate, 1e-12)
	assert.InDelta(t, 100.0, s.HPShaved, 1e-12)
	assert.LessOrEqual(t, s.Min, s.P50)
	assert.LessOrEqual(t, s.P50, s.P90)
	assert.LessOrEqual(t, s.P90, s.P99)
	assert.LessOrEqual(t, s.P99, s.Max)
}
