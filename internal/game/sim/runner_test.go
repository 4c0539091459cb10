package sim

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/lbsim/internal/data"
	"github.com/udisondev/lbsim/internal/game/damage"
	"github.com/udisondev/lbsim/internal/model"
)

func TestRunBatch(t *testing.T) {
	plan, err := damage.Prepare(testScenario(), data.DefaultTables())
	require.NoError(t, err)

	assert.Empty(t, RunBatch(plan, 0, rand.New(rand.NewPCG(1, 1))))
	assert.Empty(t, RunBatch(plan, -5, rand.New(rand.NewPCG(1, 1))))

	a := RunBatch(plan, 500, rand.New(rand.NewPCG(9, 3)))
	b := RunBatch(plan, 500, rand.New(rand.NewPCG(9, 3)))
	require.Len(t, a, 500)
	assert.Equal(t, a, b, "same seed must give the same sample")

	lo, hi := plan.Bounds()
	for _, d := range a {
		require.GreaterOrEqual(t, d, lo)
		require.LessOrEqual(t, d, hi)
	}
}

func TestRunner_DeterministicAcrossWorkers(t *testing.T) {
	sc := testScenario()

	serial := NewRunner(Options{Workers: 1, ChunkSize: 100, Seed: 2024})
	parallel := NewRunner(Options{Workers: 8, ChunkSize: 100, Seed: 2024})

	a, err := serial.Run(context.Background(), sc, 1050)
	require.NoError(t, err)
	b, err := parallel.Run(context.Background(), sc, 1050)
	require.NoError(t, err)

	require.Len(t, a, 1050)
	assert.Equal(t, a, b)
}

func TestRunner_SingleChunkMatchesRunBatch(t *testing.T) {
	sc := testScenario()
	r := NewRunner(Options{ChunkSize: 1000, Seed: 77})

	got, err := r.Run(context.Background(), sc, 1000)
	require.NoError(t, err)

	plan, err := damage.Prepare(sc, data.DefaultTables())
	require.NoError(t, err)
	want := RunBatch(plan, 1000, rand.New(rand.NewPCG(77, 0)))

	assert.Equal(t, want, got)
}

func TestRunner_SeedsDiffer(t *testing.T) {
	sc := testScenario()

	a, err := NewRunner(Options{Seed: 1}).Run(context.Background(), sc, 300)
	require.NoError(t, err)
	b, err := NewRunner(Options{Seed: 2}).Run(context.Background(), sc, 300)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestRunner_InvalidTrials(t *testing.T) {
	r := NewRunner(Options{})

	_, err := r.Run(context.Background(), testScenario(), 0)
	assert.ErrorIs(t, err, ErrInvalidTrials)

	_, err = r.Run(context.Background(), testScenario(), -1)
	assert.ErrorIs(t, err, ErrInvalidTrials)
}

func TestRunner_InvalidScenario(t *testing.T) {
	sc := testScenario()
	sc.Stats.TargetHP = 0

	_, err := NewRunner(Options{}).Run(context.Background(), sc, 10)
	assert.ErrorIs(t, err, model.ErrInvalidScenario)
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := NewRunner(Options{ChunkSize: 10}).Run(ctx, testScenario(), 1000)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, out)
}

func TestRunner_MinimumDamage(t *testing.T) {
	sc := testScenario()
	sc.Stats.Attack = 1

	out, err := NewRunner(Options{Seed: 5}).Run(context.Background(), sc, 2000)
	require.NoError(t, err)
	for _, d := range out {
		require.GreaterOrEqual(t, d, data.DefaultTables().Constants.MinDamage)
	}
}

func BenchmarkRunner_Run(b *testing.B) {
	sc := testScenario()
	r := NewRunner(Options{Seed: 1})
	ctx := context.Background()

	b.ReportAllocs()
	for range b.N {
		if _, err := r.Run(ctx, sc, 10000); err != nil {
			b.Fatal(err)
		}
	}
}
