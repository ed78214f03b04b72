package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindExtrema(t *testing.T) {
	tests := []struct {
		name        string
		values      []float64
		wantPeaks   []int
		wantTroughs []int
	}{
		{
			name:        "single interior maximum",
			values:      []float64{1, 2, 5, 3, 2},
			wantPeaks:   []int{2},
			wantTroughs: []int{},
		},
		{
			name:        "single interior minimum",
			values:      []float64{5, 4, 1, 3, 4},
			wantPeaks:   []int{},
			wantTroughs: []int{2},
		},
		{
			name:        "constant series",
			values:      []float64{7, 7, 7, 7, 7},
			wantPeaks:   []int{},
			wantTroughs: []int{},
		},
		{
			name:        "boundaries are never extrema",
			values:      []float64{10, 1, 10},
			wantPeaks:   []int{},
			wantTroughs: []int{1},
		},
		{
			name:        "plateau yields nothing",
			values:      []float64{1, 3, 3, 1, 0, 0, 2},
			wantPeaks:   []int{},
			wantTroughs: []int{},
		},
		{
			name:        "zigzag",
			values:      []float64{1, 3, 2, 4, 1, 5, 0},
			wantPeaks:   []int{1, 3, 5},
			wantTroughs: []int{2, 4},
		},
		{name: "empty", values: nil, wantPeaks: []int{}, wantTroughs: []int{}},
		{name: "single value", values: []float64{1}, wantPeaks: []int{}, wantTroughs: []int{}},
		{name: "two values", values: []float64{1, 2}, wantPeaks: []int{}, wantTroughs: []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindExtrema(tt.values)
			assert.Equal(t, tt.wantPeaks, got.Peaks)
			assert.Equal(t, tt.wantTroughs, got.Troughs)
		})
	}
}

func TestFindExtrema_PeakNotInTroughs(t *testing.T) {
	got := FindExtrema([]float64{2, 2.5, 9, 2.5, 2})
	assert.Equal(t, []int{2}, got.Peaks)
	assert.NotContains(t, got.Troughs, 2)
}
