package pricer

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// RunKey uniquely identifies a reproducible pricing run.
// Two runs with the same RunKey and identical Config MUST draw
// identical paths in every worker.
type RunKey int64

// NewRunKey creates a RunKey from a seed value.
func NewRunKey(seed int64) RunKey {
	return RunKey(seed)
}

// EntropyRunKey draws a RunKey from the runtime's randomly seeded generator.
func EntropyRunKey() RunKey {
	return RunKey(rand.Int64())
}

// WorkerName returns the stream name for worker N.
func WorkerName(id int) string {
	return fmt.Sprintf("worker_%d", id)
}

// WorkerSeed derives worker id's seed as key XOR fnv1a64(WorkerName(id)).
// Derivation depends only on the key and the index, never on the order
// in which workers start.
func WorkerSeed(key RunKey, id int) int64 {
	return int64(key) ^ fnv1a64(WorkerName(id))
}

// NewWorkerRand returns a PCG-backed generator for worker id.
// The result is not safe for concurrent use; each worker owns its own.
func NewWorkerRand(key RunKey, id int) *rand.Rand {
	seed := WorkerSeed(key, id)
	return rand.New(rand.NewPCG(uint64(seed), uint64(key)))
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
