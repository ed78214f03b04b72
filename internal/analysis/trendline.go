package analysis

type TrendKind string

const (
	TrendPeak   TrendKind = "peak"
	TrendTrough TrendKind = "trough"
)

type Point struct {
	Index int     `json:"index"`
	Price float64 `json:"price"`
}

type TrendLine struct {
	Kind  TrendKind `json:"kind"`
	Start Point     `json:"start"`
	End   Point     `json:"end"`
}

// TrendLines joins every pair of consecutive peaks, then every pair of
// consecutive troughs, with a straight segment. A class with fewer than two
// members contributes nothing and a peak is never joined to a trough.
func TrendLines(values []float64, ex Extrema) []TrendLine {
	lines := make([]TrendLine, 0, segmentCount(ex.Peaks)+segmentCount(ex.Troughs))
	lines = appendSegments(lines, values, ex.Peaks, TrendPeak)
	lines = appendSegments(lines, values, ex.Troughs, TrendTrough)
	return lines
}

func appendSegments(lines []TrendLine, values []float64, idx []int, kind TrendKind) []TrendLine {
	for i := 0; i+1 < len(idx); i++ {
		a, b := idx[i], idx[i+1]
		lines = append(lines, TrendLine{
			Kind:  kind,
			Start: Point{Index: a, Price: values[a]},
			End:   Point{Index: b, Price: values[b]},
		})
	}
	return lines
}

func segmentCount(idx []int) int {
	if len(idx) < 2 {
		return 0
	}
	return len(idx) - 1
}
