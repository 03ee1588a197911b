package pricer

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ErrWorkerFailed is returned when any worker aborts. The run produces no price.
var ErrWorkerFailed = errors.New("worker failed")

// simulateFunc matches SimulatePartial; swapped in tests.
type simulateFunc func(p Params, count int64, rng *rand.Rand) Partial

// Engine drives one pricing configuration. Create with NewEngine.
type Engine struct {
	cfg      Config
	plan     Plan
	key      RunKey
	simulate simulateFunc
}

// NewEngine validates cfg and fixes the run key and partition plan.
// A nil cfg.Seed selects an entropy-derived key.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	key := EntropyRunKey()
	if cfg.Seed != nil {
		key = NewRunKey(*cfg.Seed)
	}
	return &Engine{
		cfg:      cfg,
		plan:     NewPlan(cfg.TotalPaths, cfg.Workers),
		key:      key,
		simulate: SimulatePartial,
	}, nil
}

// Key returns the run key every worker seed is derived from.
func (e *Engine) Key() RunKey {
	return e.key
}

// Plan returns the static partition used by Run.
func (e *Engine) Plan() Plan {
	return e.plan
}

// Run simulates every slice of the plan and returns the discounted price
// estimate. With one worker the slice runs on the calling goroutine;
// otherwise each slice gets its own goroutine and Run waits for all of them
// before reading the accumulator. Any worker failure fails the whole run.
func (e *Engine) Run() (Result, error) {
	runID := uuid.NewString()
	log := logrus.WithFields(logrus.Fields{
		"run_id":  runID,
		"seed":    int64(e.key),
		"paths":   e.plan.TotalPaths,
		"workers": e.plan.Workers,
	})
	log.Info("starting pricing run")

	start := time.Now()
	acc := &Accumulator{}

	if e.plan.Workers == 1 {
		if err := e.runWorker(0, acc); err != nil {
			return Result{}, err
		}
	} else {
		var g errgroup.Group
		for i := range e.plan.Slices {
			g.Go(func() error {
				return e.runWorker(i, acc)
			})
		}
		if err := g.Wait(); err != nil {
			log.WithError(err).Error("pricing run aborted")
			return Result{}, err
		}
	}

	elapsed := time.Since(start)
	tally := acc.Snapshot()
	if tally.Contributions != e.plan.Workers {
		return Result{}, fmt.Errorf("%w: %d of %d workers contributed", ErrWorkerFailed, tally.Contributions, e.plan.Workers)
	}

	if math.IsNaN(tally.Price) || math.IsInf(tally.Price, 0) {
		log.Warnf("numeric instability: price estimate is %v; check volatility and maturity", tally.Price)
	}

	res := Result{
		RunID:   runID,
		Price:   tally.Price,
		StdErr:  tally.StdErr(e.cfg.Params.Discount()),
		Paths:   tally.Paths,
		Workers: e.plan.Workers,
		Seed:    e.key,
		Elapsed: elapsed,
	}
	log.WithFields(logrus.Fields{
		"price":      res.Price,
		"std_err":    res.StdErr,
		"elapsed_ms": elapsed.Milliseconds(),
	}).Info("pricing run complete")
	return res, nil
}

// runWorker simulates worker id's slice with a private generator and adds
// the result to acc once. A panic is reported as ErrWorkerFailed.
func (e *Engine) runWorker(id int, acc *Accumulator) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: worker %d: %v", ErrWorkerFailed, id, r)
		}
	}()

	rng := NewWorkerRand(e.key, id)
	part := e.simulate(e.cfg.Params, e.plan.Slices[id], rng)
	logrus.Debugf("worker %d finished %d paths, discounted average %v", id, part.Count, part.Discounted)
	acc.Add(part, e.plan.TotalPaths)
	return nil
}
