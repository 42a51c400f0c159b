package model

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Evaluator maps a model over a sequence of scattering vectors. Each worker
// writes only the output slots of the indices it receives.
type Evaluator struct {
	model   Model
	threads int
	logger  *zap.Logger

	boundsOnce sync.Once
}

type Option func(*Evaluator)

func WithThreads(n int) Option {
	return func(e *Evaluator) {
		if n > 0 {
			e.threads = n
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(e *Evaluator) {
		if logger != nil {
			e.logger = logger
		}
	}
}

func NewEvaluator(m Model, opts ...Option) *Evaluator {
	e := &Evaluator{
		model:   m,
		threads: runtime.GOMAXPROCS(0),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With(zap.String("model", m.Name()))
	return e
}

func (e *Evaluator) Model() Model { return e.model }

func (e *Evaluator) Threads() int { return e.threads }

// Intensity evaluates a single scattering vector.
func (e *Evaluator) Intensity(q float64) (float64, error) {
	e.checkBounds()
	return e.model.Intensity(q)
}

// Evaluate returns I(q) for every element of qs, in order. The first error
// in index order is returned with no data.
func (e *Evaluator) Evaluate(qs []float64) ([]float64, error) {
	e.checkBounds()
	start := time.Now()
	threads := min(e.threads, len(qs))
	e.logger.Debug("evaluating", zap.Int("points", len(qs)), zap.Int("threads", threads))

	values := make([]float64, len(qs))
	errs := make([]error, len(qs))

	var wg sync.WaitGroup
	indices := make(chan int, len(qs))
	for i := range qs {
		indices <- i
	}
	close(indices)
	for range threads {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				values[i], errs[i] = e.model.Intensity(qs[i])
			}
		}()
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			e.logger.Debug("evaluation failed", zap.Int("index", i), zap.Float64("q", qs[i]), zap.Error(err))
			return nil, fmt.Errorf("%s at q[%d] = %v: %w", e.model.Name(), i, qs[i], err)
		}
	}
	e.logger.Debug("evaluated", zap.Int("points", len(qs)), zap.Duration("elapsed", time.Since(start)))
	return values, nil
}

// Sample evaluates qs into a Curve.
func (e *Evaluator) Sample(qs []float64) (Curve, error) {
	values, err := e.Evaluate(qs)
	if err != nil {
		return Curve{}, err
	}
	c := Curve{Model: e.model.Name(), Points: make([]Point, len(qs))}
	for i := range qs {
		c.Points[i] = Point{Q: qs[i], I: values[i]}
	}
	return c, nil
}

func (e *Evaluator) checkBounds() {
	e.boundsOnce.Do(func() {
		outside, err := e.model.Schema().OutOfBounds(e.model)
		if err != nil {
			e.logger.Warn("parameter bounds not checked", zap.Error(err))
			return
		}
		if len(outside) > 0 {
			e.logger.Warn("parameters outside their bounds, results may be unphysical", zap.Strings("parameters", outside))
		}
	})
}
