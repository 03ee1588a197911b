// Package pricer estimates European call option prices by Monte Carlo
// simulation under Black-Scholes risk-neutral dynamics.
//
// # Reading Guide
//
// Start with these files:
//   - path.go: the per-slice path simulator (terminal price, payoff, discounting)
//   - engine.go: the driver that partitions paths, fans out workers and joins them
//   - accumulator.go: the run-scoped shared total written once per worker
//
// # Randomness
//
// Every worker owns a private generator seeded from WorkerSeed(key, index).
// The run key is either supplied by the caller (reproducible runs) or drawn
// from the runtime's entropy-seeded generator. Two runs with the same key and
// identical Config draw identical paths; with more than one worker the final
// sum may differ in the last bits because workers finish in any order.
//
// # Partitioning
//
// NewPlan splits N paths over W workers. The N mod W remainder paths go one
// each to the lowest-indexed workers, so exactly N paths are simulated.
package pricer
