package background

import (
	"context"
	"runtime"
	"time"

	"github.com/cwbudde/algo-xrd/curve"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Outcome is the per-curve result of a batch run.
type Outcome struct {
	CurveID curve.ID
	Result  Result
	Err     error
}

// Batch runs one request template over many curves in parallel. Each
// worker touches only its own curve; the store serialises the swaps.
type Batch struct {
	engine  *Engine
	logger  *zap.Logger
	metrics *Metrics
	workers int
}

// BatchOption configures a Batch.
type BatchOption func(*Batch)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) BatchOption {
	return func(b *Batch) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithMetrics records every computation in m.
func WithMetrics(m *Metrics) BatchOption {
	return func(b *Batch) {
		b.metrics = m
	}
}

// WithWorkers bounds the number of concurrent computations. Values < 1 are
// ignored.
func WithWorkers(n int) BatchOption {
	return func(b *Batch) {
		if n >= 1 {
			b.workers = n
		}
	}
}

// NewBatch returns a batch runner on top of engine.
func NewBatch(engine *Engine, opts ...BatchOption) *Batch {
	b := &Batch{
		engine:  engine,
		logger:  zap.NewNop(),
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// Run computes req for every curve in ids, or for every curve in the store
// when ids is empty. Outcomes are returned in ids order. A failing curve
// does not stop the others; cancelling ctx stops scheduling new curves,
// marks them with the context error and makes Run return it.
//
// Store notifications for the whole run are coalesced into one event.
func (b *Batch) Run(ctx context.Context, req Request, ids ...curve.ID) ([]Outcome, error) {
	store := b.engine.Store()
	if store == nil {
		return nil, ErrNoStore
	}
	if len(ids) == 0 {
		ids = store.IDs()
	}

	store.BeginBatch()
	defer store.EndBatch()

	outcomes := make([]Outcome, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)

	for i, id := range ids {
		outcomes[i].CurveID = id
		if err := gctx.Err(); err != nil {
			outcomes[i].Err = err
			continue
		}

		g.Go(func() error {
			one := req
			one.CurveID = id

			start := time.Now()
			res, err := b.engine.Compute(one)
			elapsed := time.Since(start)

			method := res.Method
			if one.Estimator != nil {
				method = one.Estimator.Method()
			}
			b.metrics.observe(method, elapsed, res, err)

			if err != nil {
				b.logger.Warn("baseline computation failed",
					zap.String("curve", string(id)),
					zap.Stringer("method", method),
					zap.Error(err))
			}

			outcomes[i] = Outcome{CurveID: id, Result: res, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
		}
	}
	b.logger.Info("baseline batch finished",
		zap.Int("curves", len(ids)),
		zap.Int("failed", failed),
		zap.Int("workers", b.workers))

	return outcomes, ctx.Err()
}
