// Package sa - the annealing engine.
//
// Engine keeps a single trajectory: the current tour random-walks through
// the 2-opt neighborhood under the Metropolis criterion while the best-ever
// tour records the low-water mark. One mutex guards all mutable state so a
// driver can snapshot mid-run; Step itself is single-writer.
package sa

import (
	"context"
	"math"
	"math/rand"
	"sync"

	"github.com/tsplab/tsplab/opt"
	"github.com/tsplab/tsplab/tsp"
)

// improveEps guards best-ever updates against floating-point false positives.
const improveEps = 1e-9

// Snapshot is a consistent copy of the engine's observable state.
type Snapshot struct {
	Best        tsp.Tour // best-ever tour
	Current     tsp.Tour // trajectory head
	Temperature float64
	Iterations  int // total Metropolis proposals so far
	Stall       int // consecutive improvement-free proposals
	Finished    bool
}

// Engine is the Simulated Annealing run state. Construct with New; drive
// with Step; read with the accessor methods. Not reentrant: Step must not be
// called concurrently with itself on one instance.
type Engine struct {
	mu   sync.Mutex
	cfg  Config
	prob *tsp.Problem
	rng  *rand.Rand

	cur  tsp.Tour
	cand tsp.Tour // scratch neighbor, reused every proposal
	best tsp.Tour

	temp     float64
	iters    int
	stall    int
	finished bool
}

// Compile-time check: Engine satisfies the driver contract.
var _ opt.Engine = (*Engine)(nil)

// New validates cfg and returns an initialized engine positioned on a random
// tour at InitialTemp. rng must be non-nil.
//
// Errors: ErrNilProblem, tsp.ErrNilRNG, or a Config sentinel.
func New(p *tsp.Problem, cfg Config, rng *rand.Rand) (*Engine, error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	if rng == nil {
		return nil, tsp.ErrNilRNG
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n := p.N()
	e := &Engine{
		cfg:  cfg,
		prob: p,
		rng:  rng,
		cur:  tsp.NewTour(make([]int, n)),
		cand: tsp.NewTour(make([]int, n)),
		best: tsp.NewTour(make([]int, n)),
	}
	e.initLocked()

	return e, nil
}

// initLocked places the trajectory on a fresh random tour and resets the
// schedule. Callers hold the lock (or, in New, own the engine exclusively).
func (e *Engine) initLocked() {
	var (
		n = e.prob.N()
		i int
	)
	for i = 0; i < n; i++ {
		e.cur.Order[i] = i
	}
	tsp.ShuffleInPlace(e.cur.Order, e.rng)
	e.cur.Length = e.prob.TourLength(e.cur.Order)

	copy(e.best.Order, e.cur.Order)
	e.best.Length = e.cur.Length

	e.temp = e.cfg.InitialTemp
	e.iters = 0
	e.stall = 0
	e.finished = false
}

// Step runs one temperature epoch and reports whether the engine is still
// running. Finished engines return false without mutating state.
//
// An epoch is NeighborsPerTemp Metropolis proposals at the current
// temperature: a 2-opt neighbor is accepted when it is shorter, or with
// probability exp(-delta/T) when longer. Each proposal updates the best-ever
// tour and the stall counter. The epoch closes with one cooling update
// T = T / (1 + alpha*T); the engine finishes when T drops below FinalTemp or
// the stall counter reaches StallLimit. The terminating epoch's moves and
// best updates are kept.
//
// Complexity: O(NeighborsPerTemp · N).
func (e *Engine) Step() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.finished {
		return false
	}

	var (
		k       int
		candLen float64
		delta   float64
	)
	for k = 0; k < e.cfg.NeighborsPerTemp; k++ {
		twoOptNeighbor(e.cur.Order, e.cand.Order, e.rng)
		candLen = e.prob.TourLength(e.cand.Order)
		delta = candLen - e.cur.Length

		if delta < 0 || e.rng.Float64() < math.Exp(-delta/e.temp) {
			e.cur.Order, e.cand.Order = e.cand.Order, e.cur.Order
			e.cur.Length = candLen
		}

		if e.cur.Length+improveEps < e.best.Length {
			copy(e.best.Order, e.cur.Order)
			e.best.Length = e.cur.Length
			e.stall = 0
		} else {
			e.stall++
		}
		e.iters++
	}

	e.temp = e.temp / (1 + e.cfg.Alpha*e.temp)

	if e.temp < e.cfg.FinalTemp || e.stall >= e.cfg.StallLimit {
		e.finished = true
	}

	return !e.finished
}

// Best returns a copy of the best-ever tour.
func (e *Engine) Best() tsp.Tour {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.best.Clone()
}

// Current returns a copy of the trajectory head, which may be longer than
// Best after uphill acceptances.
func (e *Engine) Current() tsp.Tour {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.cur.Clone()
}

// Temperature returns the current temperature.
func (e *Engine) Temperature() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.temp
}

// Iterations returns the total number of Metropolis proposals so far.
func (e *Engine) Iterations() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.iters
}

// Stall returns the consecutive improvement-free proposal count.
func (e *Engine) Stall() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.stall
}

// Finished reports whether the engine reached a terminal state.
func (e *Engine) Finished() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.finished
}

// Snapshot returns a consistent copy of the observable state, taken under
// the same lock Step uses.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return Snapshot{
		Best:        e.best.Clone(),
		Current:     e.cur.Clone(),
		Temperature: e.temp,
		Iterations:  e.iters,
		Stall:       e.stall,
		Finished:    e.finished,
	}
}

// Reset re-seeds the engine (seed 0 selects the deterministic default
// stream) and restarts from a fresh random tour at InitialTemp. It takes
// the step lock, so it is safe whenever the driver is not scheduling steps.
func (e *Engine) Reset(seed int64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.rng = tsp.NewRNG(seed)
	e.initLocked()
}

// Solve drives Step until the engine finishes or ctx is cancelled, appending
// one (iterations, best-ever length) record per step to sink (nil means
// discard). It returns a copy of the best-ever tour together with ctx's
// error, if any.
func (e *Engine) Solve(ctx context.Context, sink opt.Sink) (tsp.Tour, error) {
	if sink == nil {
		sink = opt.Discard
	}

	for e.Step() {
		if err := ctx.Err(); err != nil {
			return e.Best(), err
		}

		s := e.Snapshot()
		if err := sink.Append(s.Iterations, s.Best.Length); err != nil {
			return e.Best(), err
		}
	}

	return e.Best(), ctx.Err()
}
