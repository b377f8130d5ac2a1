package perf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentilesExactIndexing(t *testing.T) {
	tests := []struct {
		name    string
		samples []float64
		want    *Percentiles
	}{
		{
			name:    "empty",
			samples: nil,
			want:    nil,
		},
		{
			name:    "single sample below guard",
			samples: []float64{5},
			want:    nil,
		},
		{
			name:    "two samples",
			samples: []float64{2, 1},
			want:    &Percentiles{P50: 2, P90: 2, P95: 2, P99: 2},
		},
		{
			name:    "one through ten",
			samples: []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			want:    &Percentiles{P50: 6, P90: 10, P95: 10, P99: 10},
		},
		{
			name:    "twenty samples",
			samples: seq(20),
			want:    &Percentiles{P50: 11, P90: 19, P95: 20, P99: 20},
		},
		{
			name:    "hundred samples",
			samples: seq(100),
			want:    &Percentiles{P50: 51, P90: 91, P95: 96, P99: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := percentiles(tt.samples)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPercentilesDoNotReorderInput(t *testing.T) {
	samples := []float64{9, 1, 5, 3}
	_ = percentiles(samples)
	assert.Equal(t, []float64{9, 1, 5, 3}, samples)
}

func TestMovingAverageShapes(t *testing.T) {
	tests := []struct {
		name    string
		samples []float64
		window  int
		want    []float64
	}{
		{"standard", []float64{2, 4, 6, 8}, 3, []float64{4, 6}},
		{"window equals length", []float64{1, 2, 3}, 3, []float64{2}},
		{"window longer than input", []float64{1, 2}, 3, nil},
		{"zero window", []float64{1, 2, 3}, 0, nil},
		{"negative window", []float64{1, 2, 3}, -1, nil},
		{"empty input", nil, 3, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := movingAverage(tt.samples, tt.window)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.InDelta(t, tt.want[i], got[i], 1e-9)
			}
		})
	}
}

// seq returns [1..n] as float64s.
func seq(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i + 1)
	}
	return out
}
