package pricer

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned (wrapped) for any rejected run configuration.
var ErrInvalidConfig = errors.New("invalid configuration")

// Params are the Black-Scholes model inputs for a European call.
// Shared read-only by all workers during a run.
type Params struct {
	Spot       float64 // S, underlying price (must be > 0)
	Strike     float64 // K (must be > 0)
	Maturity   float64 // T, years (must be > 0)
	Rate       float64 // r, continuously compounded risk-free rate
	Volatility float64 // σ, annualized (must be >= 0)
}

// Discount returns exp(-r·T).
func (p Params) Discount() float64 {
	return math.Exp(-p.Rate * p.Maturity)
}

// Validate checks that the parameters describe a well-posed run.
func (p Params) Validate() error {
	if err := validateFinitePositive("spot", p.Spot); err != nil {
		return err
	}
	if err := validateFinitePositive("strike", p.Strike); err != nil {
		return err
	}
	if err := validateFinitePositive("maturity", p.Maturity); err != nil {
		return err
	}
	if math.IsNaN(p.Rate) || math.IsInf(p.Rate, 0) {
		return fmt.Errorf("%w: rate must be finite, got %v", ErrInvalidConfig, p.Rate)
	}
	if math.IsNaN(p.Volatility) || math.IsInf(p.Volatility, 0) || p.Volatility < 0 {
		return fmt.Errorf("%w: volatility must be finite and non-negative, got %v", ErrInvalidConfig, p.Volatility)
	}
	return nil
}

// Config groups everything one run needs.
type Config struct {
	Params     Params
	TotalPaths int64  // N, total simulated paths (must be > 0)
	Workers    int    // W, parallel workers (must be in [1, N])
	Seed       *int64 // run key; nil means entropy-seeded
}

// Validate checks the configuration. All failures wrap ErrInvalidConfig.
func (c Config) Validate() error {
	if c.TotalPaths <= 0 {
		return fmt.Errorf("%w: total paths must be positive, got %d", ErrInvalidConfig, c.TotalPaths)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	}
	if int64(c.Workers) > c.TotalPaths {
		return fmt.Errorf("%w: workers (%d) exceed total paths (%d)", ErrInvalidConfig, c.Workers, c.TotalPaths)
	}
	return c.Params.Validate()
}

func validateFinitePositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w: %s must be a finite positive number, got %v", ErrInvalidConfig, name, v)
	}
	return nil
}
