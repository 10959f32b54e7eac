// Package ga - the generational engine.
//
// Engine owns its run state exclusively; the only shared input is the
// read-only tsp.Problem. One mutex guards everything mutable so an external
// reader (display, logger) can snapshot the best tour while a step is in
// flight. Population storage is two preallocated slabs (current and next
// generation) swapped each step, so stepping allocates only inside sort.
package ga

import (
	"context"
	"math"
	"math/rand"
	"sort"
	"sync"

	"github.com/tsplab/tsplab/opt"
	"github.com/tsplab/tsplab/tsp"
)

// improveEps guards best-ever updates against floating-point false positives:
// a new best must undercut the old one by more than this to count.
const improveEps = 1e-9

// Phase is the engine's lifecycle state.
type Phase uint8

const (
	// Running - the engine still accepts work.
	Running Phase = iota

	// Converged - the stall limit was reached (no improvement for
	// StallLimit consecutive generations).
	Converged

	// Exhausted - the generation budget was spent.
	Exhausted
)

// String implements fmt.Stringer for logs and test failures.
func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Converged:
		return "converged"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Snapshot is a consistent copy of the engine's observable state.
type Snapshot struct {
	Best        tsp.Tour // best-ever tour
	CurrentBest tsp.Tour // best of the current population (index 0)
	Generation  int
	Stall       int
	Phase       Phase
}

// Engine is the Genetic Algorithm run state. Construct with New; drive with
// Step; read with the accessor methods. Not reentrant: Step must not be
// called concurrently with itself on one instance.
type Engine struct {
	mu   sync.Mutex
	cfg  Config
	prob *tsp.Problem
	rng  *rand.Rand

	pop  []tsp.Tour // sorted ascending by length after every generation
	next []tsp.Tour // scratch generation, swapped with pop each step

	best  tsp.Tour
	gen   int
	stall int
	phase Phase

	// Crossover scratch: stamp-marked gene set, never cleared.
	mark  []int
	stamp int
}

// Compile-time check: Engine satisfies the driver contract.
var _ opt.Engine = (*Engine)(nil)

// New validates cfg and returns an initialized engine: a fully random,
// evaluated, sorted population with best-ever recorded. rng must be non-nil;
// engines never fall back to a shared or time-based source.
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

	e := &Engine{
		cfg:  cfg,
		prob: p,
		rng:  rng,
		mark: make([]int, p.N()),
	}
	e.allocPopulations()
	e.initLocked()

	return e, nil
}

// allocPopulations carves the two generations out of two contiguous backing
// arrays so a step touches memory sequentially.
func (e *Engine) allocPopulations() {
	var (
		n    = e.prob.N()
		size = e.cfg.PopulationSize
	)

	carve := func() []tsp.Tour {
		backing := make([]int, size*n)
		tours := make([]tsp.Tour, size)
		var i int
		for i = 0; i < size; i++ {
			tours[i] = tsp.NewTour(backing[i*n : (i+1)*n])
		}

		return tours
	}
	e.pop = carve()
	e.next = carve()
	e.best = tsp.NewTour(make([]int, n))
}

// initLocked seeds a fresh random population and resets all counters.
// Callers hold the lock (or, in New, own the engine exclusively).
func (e *Engine) initLocked() {
	var (
		n = e.prob.N()
		i int
		j int
	)
	for i = range e.pop {
		order := e.pop[i].Order
		for j = 0; j < n; j++ {
			order[j] = j
		}
		tsp.ShuffleInPlace(order, e.rng)
		e.pop[i].Length = math.Inf(1)
		e.next[i].Length = math.Inf(1)
	}

	e.evaluateAndSort(e.pop)

	copy(e.best.Order, e.pop[0].Order)
	e.best.Length = e.pop[0].Length

	e.gen = 0
	e.stall = 0
	e.phase = Running
	e.stamp = 0
	for i = range e.mark {
		e.mark[i] = 0
	}
}

// evaluateAndSort scores every tour and sorts the population ascending, so
// index 0 is the current best.
func (e *Engine) evaluateAndSort(pop []tsp.Tour) {
	var i int
	for i = range pop {
		pop[i].Length = e.prob.TourLength(pop[i].Order)
	}
	sort.Slice(pop, func(a, b int) bool { return pop[a].Length < pop[b].Length })
}

// Step advances the engine by exactly one generation and reports whether it
// is still running. Finished engines return false without mutating state.
//
// One generation: copy the top Elitism tours unchanged; fill the remaining
// slots with mutate(crossover(select, select)); evaluate and re-sort; update
// best-ever under the 1e-9 epsilon; bump generation and stall counters;
// transition to Converged or Exhausted when a limit is hit.
//
// Complexity: O(PopulationSize · N) plus the sort.
func (e *Engine) Step() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != Running {
		return false
	}

	var (
		size = e.cfg.PopulationSize
		i    int
	)

	// Elitism: the current top tours survive verbatim.
	for i = 0; i < e.cfg.Elitism; i++ {
		copy(e.next[i].Order, e.pop[i].Order)
	}

	// Offspring: tournament → OX → swap mutation. The same parent index may
	// win both tournaments; OX of a tour with itself yields that tour, which
	// is a valid (if unproductive) outcome.
	for i = e.cfg.Elitism; i < size; i++ {
		p1 := e.pop[tournamentSelect(e.pop, e.rng, e.cfg.TournamentK)]
		p2 := e.pop[tournamentSelect(e.pop, e.rng, e.cfg.TournamentK)]
		orderCrossover(p1.Order, p2.Order, e.next[i].Order, e.rng, e.mark, &e.stamp)
		mutateSwap(e.next[i].Order, e.cfg.MutationRate, e.rng)
	}

	e.pop, e.next = e.next, e.pop
	e.evaluateAndSort(e.pop)

	if e.pop[0].Length+improveEps < e.best.Length {
		copy(e.best.Order, e.pop[0].Order)
		e.best.Length = e.pop[0].Length
		e.stall = 0
	} else {
		e.stall++
	}

	e.gen++

	if e.stall >= e.cfg.StallLimit {
		e.phase = Converged
	} else if e.gen >= e.cfg.Generations {
		e.phase = Exhausted
	}

	return e.phase == Running
}

// Best returns a copy of the best-ever tour.
func (e *Engine) Best() tsp.Tour {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.best.Clone()
}

// CurrentBest returns a copy of the best tour in the current population
// (index 0 of the sorted population).
func (e *Engine) CurrentBest() tsp.Tour {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.pop[0].Clone()
}

// Generation returns the number of completed generations.
func (e *Engine) Generation() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.gen
}

// Stall returns the consecutive improvement-free generation count.
func (e *Engine) Stall() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.stall
}

// Phase returns the lifecycle state.
func (e *Engine) Phase() Phase {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.phase
}

// Finished reports whether the engine reached a terminal phase.
func (e *Engine) Finished() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.phase != Running
}

// Snapshot returns a consistent copy of the observable state, taken under
// the same lock Step uses.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return Snapshot{
		Best:        e.best.Clone(),
		CurrentBest: e.pop[0].Clone(),
		Generation:  e.gen,
		Stall:       e.stall,
		Phase:       e.phase,
	}
}

// Reset re-seeds the engine (seed 0 selects the deterministic default
// stream) and reinitializes the population and all counters. It takes the
// step lock, so it is safe whenever the driver is not scheduling steps.
func (e *Engine) Reset(seed int64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.rng = tsp.NewRNG(seed)
	e.initLocked()
}

// Solve drives Step until the engine finishes or ctx is cancelled, appending
// one (generation, best-ever length) record per step to sink (nil means
// discard).
// It returns a copy of the best-ever tour together with ctx's error, if any.
//
// Solve is a convenience for headless runs; interactive drivers call Step
// directly on their own cadence.
func (e *Engine) Solve(ctx context.Context, sink opt.Sink) (tsp.Tour, error) {
	if sink == nil {
		sink = opt.Discard
	}

	for e.Step() {
		if err := ctx.Err(); err != nil {
			return e.Best(), err
		}

		s := e.Snapshot()
		if err := sink.Append(s.Generation, s.Best.Length); err != nil {
			return e.Best(), err
		}
	}

	return e.Best(), ctx.Err()
}
