package pricer

import (
	"math"
	"sync"
)

// Accumulator is the run-scoped total that workers contribute into.
// Each worker calls Add exactly once; the driver reads it after all
// workers have returned.
type Accumulator struct {
	mu            sync.Mutex
	price         float64
	sum           float64
	sumSq         float64
	paths         int64
	contributions int
}

// Add folds one worker's partial into the total. The slice's discounted
// average is weighted by its share of totalPaths.
func (a *Accumulator) Add(part Partial, totalPaths int64) {
	weighted := part.Discounted * (float64(part.Count) / float64(totalPaths))

	a.mu.Lock()
	a.price += weighted
	a.sum += part.Sum
	a.sumSq += part.SumSq
	a.paths += part.Count
	a.contributions++
	a.mu.Unlock()
}

// Tally is a point-in-time copy of an Accumulator.
type Tally struct {
	Price         float64 // discounted mean payoff over all paths
	Sum           float64
	SumSq         float64
	Paths         int64
	Contributions int
}

// Snapshot returns the current totals.
func (a *Accumulator) Snapshot() Tally {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Tally{
		Price:         a.price,
		Sum:           a.sum,
		SumSq:         a.sumSq,
		Paths:         a.paths,
		Contributions: a.contributions,
	}
}

// StdErr returns the standard error of the discounted price estimate.
// Returns 0 when fewer than two paths were simulated.
func (t Tally) StdErr(discount float64) float64 {
	if t.Paths < 2 {
		return 0
	}
	n := float64(t.Paths)
	mean := t.Sum / n
	variance := (t.SumSq - n*mean*mean) / (n - 1)
	if variance < 0 {
		// cancellation when every payoff is (nearly) identical
		variance = 0
	}
	return discount * math.Sqrt(variance/n)
}
