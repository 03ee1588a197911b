package pricer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccumulator_ConcurrentAdds(t *testing.T) {
	const workers = 64
	const perWorker = 10
	acc := &Accumulator{}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			acc.Add(Partial{Count: perWorker, Sum: 20, SumSq: 40, Discounted: 2}, workers*perWorker)
		}()
	}
	wg.Wait()

	tally := acc.Snapshot()
	assert.Equal(t, workers, tally.Contributions)
	assert.Equal(t, int64(workers*perWorker), tally.Paths)
	assert.InDelta(t, 2.0, tally.Price, 1e-12)
	assert.InDelta(t, 20.0*workers, tally.Sum, 1e-9)
}

func TestAccumulator_WeightsBySliceShare(t *testing.T) {
	acc := &Accumulator{}
	acc.Add(Partial{Count: 3, Discounted: 4}, 4)
	acc.Add(Partial{Count: 1, Discounted: 8}, 4)

	// (3·4 + 1·8) / 4
	assert.InDelta(t, 5.0, acc.Snapshot().Price, 1e-12)
}

func TestTally_StdErr(t *testing.T) {
	tests := []struct {
		name  string
		tally Tally
		want  float64
	}{
		{"single path", Tally{Sum: 3, SumSq: 9, Paths: 1}, 0},
		{"identical payoffs", Tally{Sum: 30, SumSq: 90, Paths: 10}, 0},
		// payoffs {0, 2}: mean 1, sample variance 2, se = sqrt(2/2)
		{"two payoffs", Tally{Sum: 2, SumSq: 4, Paths: 2}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.tally.StdErr(1), 1e-12)
		})
	}
}

func TestTally_StdErrIsDiscounted(t *testing.T) {
	tally := Tally{Sum: 2, SumSq: 4, Paths: 2}
	assert.InDelta(t, 0.5, tally.StdErr(0.5), 1e-12)
}
