package analysis

const (
	Fib0   = "0.0%"
	Fib236 = "23.6%"
	Fib382 = "38.2%"
	Fib50  = "50.0%"
	Fib618 = "61.8%"
	Fib100 = "100.0%"
	Fib161 = "161.8%"
	Fib261 = "261.8%"
)

type FibonacciLevel struct {
	Label string  `json:"label"`
	Ratio float64 `json:"ratio"`
	Price float64 `json:"price"`
}

// FibonacciLevels is always ordered from 0.0% down to 261.8%.
type FibonacciLevels []FibonacciLevel

// Price returns the price of the level with the given label.
func (l FibonacciLevels) Price(label string) (float64, bool) {
	for _, lvl := range l {
		if lvl.Label == label {
			return lvl.Price, true
		}
	}
	return 0, false
}

// Fibonacci derives the retracement and extension levels from the high-low
// range of values. A flat series collapses every level to the same price.
func Fibonacci(values []float64) FibonacciLevels {
	hi, lo := maxMin(values)
	diff := hi - lo

	return FibonacciLevels{
		{Label: Fib0, Ratio: 0, Price: hi},
		{Label: Fib236, Ratio: 0.236, Price: hi - 0.236*diff},
		{Label: Fib382, Ratio: 0.382, Price: hi - 0.382*diff},
		{Label: Fib50, Ratio: 0.5, Price: hi - 0.5*diff},
		{Label: Fib618, Ratio: 0.618, Price: hi - 0.618*diff},
		{Label: Fib100, Ratio: 1, Price: lo},
		{Label: Fib161, Ratio: 1.618, Price: lo - 0.618*diff},
		{Label: Fib261, Ratio: 2.618, Price: lo - 1.618*diff},
	}
}

// maxMin returns zeros for an empty slice.
func maxMin(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	hi, lo := values[0], values[0]
	for _, v := range values[1:] {
		if v > hi {
			hi = v
		}
		if v < lo {
			lo = v
		}
	}
	return hi, lo
}
