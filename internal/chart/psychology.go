package chart

import "crypto-analysis/internal/analysis"

const (
	bandOpacity      = 0.5
	annotationOffset = 0.5
)

// Psychology lays out the fixed market cycle: shaded phase bands, the price
// path with point markers and an emotion label above each labelled point.
func Psychology(cycle analysis.PsychologyCycle) Chart {
	bands := make([]Band, len(cycle.Phases))
	for i, p := range cycle.Phases {
		bands[i] = Band{
			From:    float64(p.Start),
			To:      float64(p.End),
			Label:   p.Name,
			Color:   p.Color,
			Opacity: bandOpacity,
		}
	}

	x := make([]float64, len(cycle.Prices))
	for i := range cycle.Prices {
		x[i] = float64(i)
	}

	notes := make([]Annotation, 0, len(cycle.Emotions))
	for i, emotion := range cycle.Emotions {
		if i >= len(cycle.Prices) {
			break
		}
		notes = append(notes, Annotation{
			X:     float64(i),
			Y:     cycle.Prices[i] + annotationOffset,
			Text:  emotion,
			Align: "center",
		})
	}

	return Chart{
		ID:          IDPsychology,
		Title:       "Psychological Trend Analysis",
		XAxis:       Axis{Label: "Market Phases", Type: AxisLinear},
		YAxis:       Axis{Label: "Price", Type: AxisLinear},
		Legend:      "upper left",
		Grid:        true,
		Series:      []Series{{Type: SeriesLine, X: x, Y: cycle.Prices, Style: Style{Color: "black", Marker: "circle"}}},
		Bands:       bands,
		Annotations: notes,
	}
}
