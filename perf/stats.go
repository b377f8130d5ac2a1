package perf

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Percentiles are nearest-rank estimates over a counter's sample window.
type Percentiles struct {
	P50 float64 `json:"p50"`
	P90 float64 `json:"p90"`
	P95 float64 `json:"p95"`
	P99 float64 `json:"p99"`
}

// percentiles computes nearest-rank percentiles by direct indexing into
// the ascending sort, no interpolation. Returns nil below two samples:
// the guard keeps the index arithmetic in range (at n=1 the p99 index
// would still be 0, but n=0 would read out of bounds) and is part of the
// exported contract.
func percentiles(samples []float64) *Percentiles {
	n := len(samples)
	if n < 2 {
		return nil
	}

	sorted := make([]float64, n)
	copy(sorted, samples)
	sort.Float64s(sorted)

	return &Percentiles{
		P50: sorted[n/2],
		P90: sorted[n*9/10],
		P95: sorted[n*95/100],
		P99: sorted[n*99/100],
	}
}

// movingAverage computes the trailing simple moving average: one mean per
// window start position, length len(samples)-window+1.
func movingAverage(samples []float64, window int) []float64 {
	if window <= 0 || len(samples) < window {
		return nil
	}

	out := make([]float64, 0, len(samples)-window+1)
	for i := 0; i+window <= len(samples); i++ {
		out = append(out, stat.Mean(samples[i:i+window], nil))
	}
	return out
}
