package sim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/lbsim/internal/data"
	"github.com/udisondev/lbsim/internal/game/damage"
	"github.com/udisondev/lbsim/internal/model"
)

// DefaultChunkSize is the number of trials sharing one random stream.
const DefaultChunkSize = 1024

// ErrInvalidTrials is returned for a non-positive trial count.
var ErrInvalidTrials = errors.New("trial count must be positive")

// RunBatch runs n independent trials of plan sequentially on a caller-owned
// random source. n <= 0 yields an empty sample.
func RunBatch(plan *damage.Plan, n int, rng damage.Rand) []int64 {
	if n <= 0 {
		return []int64{}
	}
	out := make([]int64, n)
	for i := range out {
		out[i] = plan.Roll(rng)
	}
	return out
}

// Options configures a Runner.
type Options struct {
	Tables *data.Tables
	// Workers limits concurrent chunks. Zero means runtime.NumCPU().
	Workers int
	// ChunkSize is the number of trials per random stream. Zero means
	// DefaultChunkSize. Changing it changes the sample for a given seed.
	ChunkSize int
	Seed      uint64
}

// Runner executes batches in parallel. Trials are grouped into chunks, each
// drawing from its own PCG stream keyed by (seed, chunk index), so the sample
// only depends on the seed and the chunk size, never on the worker count.
type Runner struct {
	tables    *data.Tables
	workers   int
	chunkSize int
	seed      uint64
}

// NewRunner creates a Runner.
func NewRunner(opts Options) *Runner {
	r := &Runner{
		tables:    opts.Tables,
		workers:   opts.Workers,
		chunkSize: opts.ChunkSize,
		seed:      opts.Seed,
	}
	if r.tables == nil {
		r.tables = data.DefaultTables()
	}
	if r.workers <= 0 {
		r.workers = runtime.NumCPU()
	}
	if r.chunkSize <= 0 {
		r.chunkSize = DefaultChunkSize
	}
	return r
}

// Tables returns the lookup tables used by the runner.
func (r *Runner) Tables() *data.Tables {
	return r.tables
}

// Seed returns the base seed.
func (r *Runner) Seed() uint64 {
	return r.seed
}

// Prepare resolves sc against the runner tables and logs every lookup that
// fell back to a default.
func (r *Runner) Prepare(sc model.Scenario) (*damage.Plan, error) {
	plan, err := r.prepare(sc)
	if err != nil {
		return nil, err
	}
	logFallbacks(plan.Fallbacks)
	return plan, nil
}

func (r *Runner) prepare(sc model.Scenario) (*damage.Plan, error) {
	plan, err := damage.Prepare(sc, r.tables)
	if err != nil {
		return nil, fmt.Errorf("preparing scenario: %w", err)
	}
	return plan, nil
}

func logFallbacks(fallbacks []damage.Fallback) {
	for _, fb := range fallbacks {
		slog.Warn("lookup fell back to default", "table", fb.Table, "key", fb.Key, "value", fb.Value)
	}
}

// Run prepares sc and runs n trials with the runner seed.
func (r *Runner) Run(ctx context.Context, sc model.Scenario, n int) ([]int64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidTrials, n)
	}
	plan, err := r.Prepare(sc)
	if err != nil {
		return nil, err
	}
	return r.RunPlan(ctx, plan, n, r.seed)
}

// RunPlan runs n trials of an already prepared plan. On cancellation no
// partial sample is returned.
func (r *Runner) RunPlan(ctx context.Context, plan *damage.Plan, n int, seed uint64) ([]int64, error) {
	if n <= 0 {
		return []int64{}, nil
	}

	start := time.Now()
	out := make([]int64, n)
	chunks := (n + r.chunkSize - 1) / r.chunkSize

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for c := range chunks {
		lo := c * r.chunkSize
		hi := min(lo+r.chunkSize, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewPCG(seed, uint64(c)))
			for i := lo; i < hi; i++ {
				out[i] = plan.Roll(rng)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("running batch: %w", err)
	}

	slog.Debug("batch complete",
		"trials", n,
		"chunks", chunks,
		"workers", r.workers,
		"seed", seed,
		"elapsed", time.Since(start))
	return out, nil
}

// deriveSeeds returns count seeds drawn from a stream keyed by the base seed,
// one per independent batch of a multi-batch run.
func deriveSeeds(base uint64, stream uint64, count int) []uint64 {
	rng := rand.New(rand.NewPCG(base, stream))
	seeds := make([]uint64, count)
	for i := range seeds {
		seeds[i] = rng.Uint64()
	}
	return seeds
}
