package analysis

// Extrema holds the indices of local maxima (Peaks) and minima (Troughs) of a
// series, each in increasing order.
type Extrema struct {
	Peaks   []int `json:"peaks"`
	Troughs []int `json:"troughs"`
}

// FindExtrema returns the strict local extrema of values. Index i is a peak
// when values[i] is greater than both neighbours and a trough when it is less
// than both. The first and last index are never extrema, and a plateau
// (equal adjacent values) yields no extremum at all.
func FindExtrema(values []float64) Extrema {
	ex := Extrema{Peaks: []int{}, Troughs: []int{}}
	for i := 1; i < len(values)-1; i++ {
		prev, cur, next := values[i-1], values[i], values[i+1]
		switch {
		case cur > prev && cur > next:
			ex.Peaks = append(ex.Peaks, i)
		case cur < prev && cur < next:
			ex.Troughs = append(ex.Troughs, i)
		}
	}
	return ex
}
