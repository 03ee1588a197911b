package pricer

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// BlackScholesCall returns the closed-form Black-Scholes price of a European
// call. With zero volatility the price is the discounted forward intrinsic value.
func BlackScholesCall(p Params) float64 {
	discount := p.Discount()
	if p.Volatility == 0 {
		return discount * math.Max(p.Spot*math.Exp(p.Rate*p.Maturity)-p.Strike, 0)
	}

	volSqrtT := p.Volatility * math.Sqrt(p.Maturity)
	d1 := (math.Log(p.Spot/p.Strike) + (p.Rate+0.5*p.Volatility*p.Volatility)*p.Maturity) / volSqrtT
	d2 := d1 - volSqrtT
	return p.Spot*distuv.UnitNormal.CDF(d1) - p.Strike*discount*distuv.UnitNormal.CDF(d2)
}
