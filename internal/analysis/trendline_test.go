package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrendLines(t *testing.T) {
	values := []float64{1, 3, 2, 4, 1, 5, 0}
	ex := FindExtrema(values)

	lines := TrendLines(values, ex)
	require.Len(t, lines, 3)

	assert.Equal(t, TrendLine{Kind: TrendPeak, Start: Point{1, 3}, End: Point{3, 4}}, lines[0])
	assert.Equal(t, TrendLine{Kind: TrendPeak, Start: Point{3, 4}, End: Point{5, 5}}, lines[1])
	assert.Equal(t, TrendLine{Kind: TrendTrough, Start: Point{2, 2}, End: Point{4, 1}}, lines[2])
}

func TestTrendLines_SegmentCount(t *testing.T) {
	values := make([]float64, 20)
	for i := range values {
		values[i] = float64(i)
	}

	tests := []struct {
		name    string
		peaks   []int
		troughs []int
		want    int
	}{
		{name: "no extrema", want: 0},
		{name: "one peak", peaks: []int{3}, want: 0},
		{name: "two peaks", peaks: []int{3, 7}, want: 1},
		{name: "five peaks one trough", peaks: []int{1, 3, 5, 7, 9}, troughs: []int{2}, want: 4},
		{name: "three each", peaks: []int{1, 5, 9}, troughs: []int{3, 7, 11}, want: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := TrendLines(values, Extrema{Peaks: tt.peaks, Troughs: tt.troughs})
			assert.Len(t, lines, tt.want)
			for _, l := range lines {
				assert.Less(t, l.Start.Index, l.End.Index)
			}
		})
	}
}

func TestTrendLines_NeverMixesClasses(t *testing.T) {
	values := []float64{5, 9, 1, 8, 2, 7, 3, 6, 4}
	ex := FindExtrema(values)
	isPeak := map[int]bool{}
	for _, p := range ex.Peaks {
		isPeak[p] = true
	}

	for _, l := range TrendLines(values, ex) {
		assert.Equal(t, isPeak[l.Start.Index], isPeak[l.End.Index])
		assert.Equal(t, l.Kind == TrendPeak, isPeak[l.Start.Index])
	}
}
