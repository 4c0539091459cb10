package sim

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/lbsim/internal/model"
)

func TestDetail(t *testing.T) {
	sc := testScenario().WithBuffs(model.BuffState{
		AttackPercent:   50,
		DefensePercent:  -30,
		AttributeAttack: 120000,
	})
	r := NewRunner(Options{Seed: 99})

	res, err := Detail(context.Background(), r, sc, 1000)
	require.NoError(t, err)

	assert.Equal(t, sc.Buffs, res.Buffs)
	require.Len(t, res.Samples, 1000)
	assert.Equal(t, 1000, res.Summary.Trials)
	assert.Equal(t, 1000, res.Histogram.Total())
	assert.Equal(t, sc.Stats.TargetHP, res.Histogram.TargetHP)

	assert.LessOrEqual(t, res.Lower, res.Summary.Min)
	assert.GreaterOrEqual(t, res.Upper, res.Summary.Max)

	again, err := r.Run(context.Background(), sc, 1000)
	require.NoError(t, err)
	assert.Equal(t, again, res.Samples, "detail uses the runner seed")
}

func TestDetail_AttributeBuffsCount(t *testing.T) {
	r := NewRunner(Options{Seed: 4})

	plain, err := Detail(context.Background(), r, testScenario(), 300)
	require.NoError(t, err)
	buffed, err := Detail(context.Background(), r,
		testScenario().WithBuffs(model.BuffState{AttributeAttack: 300000}), 300)
	require.NoError(t, err)

	assert.Greater(t, buffed.Summary.Mean, plain.Summary.Mean)
}

func TestDetail_OneShot(t *testing.T) {
	sc := testScenario()
	sc.Stats.TargetHP = 1000

	res, err := Detail(context.Background(), NewRunner(Options{Seed: 1}), sc, 1000)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, res.Summary.OneShotRate, 1e-12)
	assert.Zero(t, res.Histogram.Bins[0].Count)
}

func TestDetail_Errors(t *testing.T) {
	r := NewRunner(Options{})

	tests := []struct {
		name  string
		buffs model.BuffState
	}{
		{name: "off gauge", buffs: model.BuffState{AttackPercent: 7}},
		{name: "above gauge", buffs: model.BuffState{DefensePercent: 105}},
		{name: "attribute attack", buffs: model.BuffState{AttributeAttack: 337501}},
		{name: "attribute defense", buffs: model.BuffState{AttributeDefense: -237501}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Detail(context.Background(), r, testScenario().WithBuffs(tt.buffs), 10)
			assert.ErrorIs(t, err, model.ErrInvalidScenario)
		})
	}

	_, err := Detail(context.Background(), r, testScenario(), 0)
	assert.ErrorIs(t, err, ErrInvalidTrials)
}

func TestDetail_WarnsOnLargeHistogram(t *testing.T) {
	tests := []struct {
		name     string
		targetHP int64
		warn     bool
	}{
		{name: "default hp", targetHP: 1500000, warn: false},
		{name: "tiny hp", targetHP: 100, warn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := captureLogs(t)
			sc := testScenario()
			sc.Stats.TargetHP = tt.targetHP

			res, err := Detail(context.Background(), NewRunner(Options{Seed: 6}), sc, 200)
			require.NoError(t, err)

			warned := strings.Contains(logs.String(), "histogram is very long")
			assert.Equal(t, tt.warn, warned)
			assert.Equal(t, tt.warn, len(res.Histogram.Bins) > LargeHistogramBins)
		})
	}
}
