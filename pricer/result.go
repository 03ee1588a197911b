package pricer

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// PriceDecimals is the number of decimal places used when rendering prices.
const PriceDecimals = 6

// Result is the outcome of one successful run.
type Result struct {
	RunID   string
	Price   float64 // discounted price estimate
	StdErr  float64 // standard error of Price
	Paths   int64   // paths actually simulated
	Workers int
	Seed    RunKey
	Elapsed time.Duration
}

// Label names the estimation method in the report header.
func (r Result) Label() string {
	if r.Workers > 1 {
		return "Monte Carlo with Multithreading"
	}
	return "Monte Carlo"
}

// Print writes the two-line price and timing report.
func (r Result) Print(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Estimated Call Option Price (%s): %s\n", r.Label(), FormatPrice(r.Price)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Execution Time: %d milliseconds\n", r.Elapsed.Milliseconds())
	return err
}

// FormatPrice renders v with PriceDecimals fixed places. Non-finite values
// render as NaN, +Inf or -Inf.
func FormatPrice(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(PriceDecimals)
}
