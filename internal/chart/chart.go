// Package chart turns analysis results into renderer-neutral draw
// instructions. A renderer reads a Chart and draws it; nothing is read back.
package chart

const (
	IDPriceExtrema    = "price_extrema"
	IDFibonacci       = "fibonacci"
	IDTrendLines      = "trend_lines"
	IDRiskCurve       = "risk_curve"
	IDTradeParameters = "trade_parameters"
	IDPsychology      = "psychology"
)

type SeriesType string

const (
	SeriesLine    SeriesType = "line"
	SeriesScatter SeriesType = "scatter"
	SeriesBar     SeriesType = "bar"
)

type AxisType string

const (
	// AxisTime values are unix milliseconds.
	AxisTime     AxisType = "time"
	AxisLinear   AxisType = "linear"
	AxisCategory AxisType = "category"
)

type Axis struct {
	Label string   `json:"label"`
	Type  AxisType `json:"type"`
}

type Style struct {
	Color  string   `json:"color,omitempty"`
	Colors []string `json:"colors,omitempty"`
	Dashed bool     `json:"dashed,omitempty"`
	Marker string   `json:"marker,omitempty"`
}

// Series is one draw call. Bar series use Categories instead of X.
// An empty Label keeps the series out of the legend.
type Series struct {
	Label      string     `json:"label"`
	Type       SeriesType `json:"type"`
	X          []float64  `json:"x,omitempty"`
	Categories []string   `json:"categories,omitempty"`
	Y          []float64  `json:"y"`
	Style      Style      `json:"style"`
}

type HLine struct {
	Y     float64 `json:"y"`
	Label string  `json:"label"`
	Style Style   `json:"style"`
}

// Band shades the x range [From, To).
type Band struct {
	From    float64 `json:"from"`
	To      float64 `json:"to"`
	Label   string  `json:"label"`
	Color   string  `json:"color"`
	Opacity float64 `json:"opacity"`
}

type Annotation struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Text  string  `json:"text"`
	Align string  `json:"align"`
}

type Chart struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	XAxis       Axis         `json:"x_axis"`
	YAxis       Axis         `json:"y_axis"`
	Legend      string       `json:"legend,omitempty"`
	Grid        bool         `json:"grid"`
	Series      []Series     `json:"series"`
	HLines      []HLine      `json:"hlines,omitempty"`
	Bands       []Band       `json:"bands,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
}

// SeriesByLabel returns the first series with the given label.
func (c Chart) SeriesByLabel(label string) (Series, bool) {
	for _, s := range c.Series {
		if s.Label == label {
			return s, true
		}
	}
	return Series{}, false
}
