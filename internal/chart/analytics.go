package chart

import (
	"crypto-analysis/internal/analysis"
	"fmt"
	"time"
)

const (
	LabelClose        = "Close Price"
	LabelPeaks        = "Peaks"
	LabelTroughs      = "Troughs"
	LabelExpected     = "Expected Value"
	LabelBreakeven    = "Breakeven Line"
	LabelPositionSize = "Position Size"
	LabelRiskAmount   = "Risk Amount"
)

var (
	dateAxis  = Axis{Label: "Date", Type: AxisTime}
	closeAxis = Axis{Label: "Close Price", Type: AxisLinear}
)

func unixMillis(times []time.Time) []float64 {
	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = float64(t.UnixMilli())
	}
	return out
}

func closeSeries(x, closes []float64) Series {
	return Series{Label: LabelClose, Type: SeriesLine, X: x, Y: closes}
}

func pick(x, y []float64, idx []int) ([]float64, []float64) {
	px := make([]float64, 0, len(idx))
	py := make([]float64, 0, len(idx))
	for _, i := range idx {
		if i < 0 || i >= len(x) || i >= len(y) {
			continue
		}
		px = append(px, x[i])
		py = append(py, y[i])
	}
	return px, py
}

// PriceExtrema draws the close price with peak and trough markers.
func PriceExtrema(symbol string, times []time.Time, closes []float64, ex analysis.Extrema) Chart {
	x := unixMillis(times)
	peakX, peakY := pick(x, closes, ex.Peaks)
	troughX, troughY := pick(x, closes, ex.Troughs)

	return Chart{
		ID:     IDPriceExtrema,
		Title:  fmt.Sprintf("Crypto Price and Peaks for %s", symbol),
		XAxis:  dateAxis,
		YAxis:  closeAxis,
		Legend: "best",
		Series: []Series{
			closeSeries(x, closes),
			{Label: LabelPeaks, Type: SeriesScatter, X: peakX, Y: peakY, Style: Style{Color: "green", Marker: "circle"}},
			{Label: LabelTroughs, Type: SeriesScatter, X: troughX, Y: troughY, Style: Style{Color: "red", Marker: "circle"}},
		},
	}
}

// Fibonacci draws the close price under one dashed horizontal line per level.
func Fibonacci(symbol string, times []time.Time, closes []float64, levels analysis.FibonacciLevels) Chart {
	hlines := make([]HLine, 0, len(levels))
	for _, l := range levels {
		hlines = append(hlines, HLine{Y: l.Price, Label: l.Label, Style: Style{Dashed: true}})
	}

	return Chart{
		ID:     IDFibonacci,
		Title:  fmt.Sprintf("Fibonacci Retracement and Extensions for %s", symbol),
		XAxis:  dateAxis,
		YAxis:  closeAxis,
		Legend: "best",
		Series: []Series{closeSeries(unixMillis(times), closes)},
		HLines: hlines,
	}
}

// TrendLines draws the close price and one dashed two-point segment per line.
func TrendLines(symbol string, times []time.Time, closes []float64, lines []analysis.TrendLine) Chart {
	x := unixMillis(times)
	series := make([]Series, 0, len(lines)+1)
	series = append(series, closeSeries(x, closes))

	for _, l := range lines {
		if l.Start.Index >= len(x) || l.End.Index >= len(x) {
			continue
		}
		color := "green"
		if l.Kind == analysis.TrendTrough {
			color = "red"
		}
		series = append(series, Series{
			Type:  SeriesLine,
			X:     []float64{x[l.Start.Index], x[l.End.Index]},
			Y:     []float64{l.Start.Price, l.End.Price},
			Style: Style{Color: color, Dashed: true},
		})
	}

	return Chart{
		ID:     IDTrendLines,
		Title:  fmt.Sprintf("Trend Lines and Channels for %s", symbol),
		XAxis:  dateAxis,
		YAxis:  closeAxis,
		Legend: "best",
		Series: series,
	}
}

// RiskCurve draws expected value against win rate with a zero breakeven line.
func RiskCurve(profile analysis.RiskProfile, curve []analysis.ProfitabilityPoint) Chart {
	x := make([]float64, len(curve))
	y := make([]float64, len(curve))
	for i, p := range curve {
		x[i] = p.WinRate
		y[i] = p.ExpectedValue
	}

	return Chart{
		ID:     IDRiskCurve,
		Title:  fmt.Sprintf("Risk Management and Pro Trading Math (R:R=%g)", profile.RewardRatio),
		XAxis:  Axis{Label: "Winning Percentage", Type: AxisLinear},
		YAxis:  Axis{Label: "Expected Value", Type: AxisLinear},
		Legend: "best",
		Series: []Series{{Label: LabelExpected, Type: SeriesLine, X: x, Y: y}},
		HLines: []HLine{{Y: 0, Label: LabelBreakeven, Style: Style{Color: "red", Dashed: true}}},
	}
}

// TradeParameters draws position size and risk amount as two bars.
func TradeParameters(params analysis.TradeParameters) Chart {
	return Chart{
		ID:    IDTradeParameters,
		Title: "Trade Parameters",
		XAxis: Axis{Type: AxisCategory},
		YAxis: Axis{Label: "Value", Type: AxisLinear},
		Series: []Series{{
			Type:       SeriesBar,
			Categories: []string{LabelPositionSize, LabelRiskAmount},
			Y:          []float64{params.PositionSize, params.RiskAmount},
			Style:      Style{Colors: []string{"blue", "orange"}},
		}},
	}
}
