package pricer

// Plan is the static partition of a run's paths across workers.
// Computed once before any worker starts and never mutated.
type Plan struct {
	TotalPaths int64
	Workers    int
	Slices     []int64 // Slices[i] is the path count for worker i
}

// NewPlan splits totalPaths across workers. The first totalPaths mod workers
// slices receive one extra path, so the slices always sum to totalPaths.
// Callers must validate inputs first (see Config.Validate).
func NewPlan(totalPaths int64, workers int) Plan {
	base := totalPaths / int64(workers)
	remainder := totalPaths % int64(workers)

	slices := make([]int64, workers)
	for i := range slices {
		slices[i] = base
		if int64(i) < remainder {
			slices[i]++
		}
	}
	return Plan{TotalPaths: totalPaths, Workers: workers, Slices: slices}
}
