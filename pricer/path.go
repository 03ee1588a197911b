package pricer

import (
	"math"
	"math/rand/v2"
)

// Partial is one worker's result over its slice of paths.
type Partial struct {
	Count      int64   // paths simulated
	Sum        float64 // undiscounted payoff sum
	SumSq      float64 // undiscounted payoff sum of squares
	Discounted float64 // exp(-r·T) · Sum / Count
}

// SimulatePartial draws count terminal prices from rng and returns the
// slice's payoff tally. Inputs are not validated; NaN and Inf propagate.
func SimulatePartial(p Params, count int64, rng *rand.Rand) Partial {
	drift := (p.Rate - 0.5*p.Volatility*p.Volatility) * p.Maturity
	diffusion := p.Volatility * math.Sqrt(p.Maturity)

	var sum, sumSq float64
	for i := int64(0); i < count; i++ {
		z := rng.NormFloat64()
		st := p.Spot * math.Exp(drift+diffusion*z)
		payoff := math.Max(st-p.Strike, 0)
		sum += payoff
		sumSq += payoff * payoff
	}

	return Partial{
		Count:      count,
		Sum:        sum,
		SumSq:      sumSq,
		Discounted: p.Discount() * (sum / float64(count)),
	}
}
